package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	vlbconfig "github.com/mediabeam/video-link-bot/internal/config"
	"github.com/mediabeam/video-link-bot/internal/models"
	"github.com/mediabeam/video-link-bot/internal/utils"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

func (s *SQLiteStore) Init(config *vlbconfig.Config) error {
	db, err := sql.Open("sqlite", config.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createTables(); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (s *SQLiteStore) createTables() error {
	_, err := s.db.Exec(`
        CREATE TABLE IF NOT EXISTS DistributionRecords (
            ID TEXT PRIMARY KEY,
            SOURCE_URL TEXT NOT NULL,
            VIDEO_LOCATOR TEXT NOT NULL,
            AUDIO_LOCATOR TEXT,
            COMPOSITE INTEGER NOT NULL DEFAULT 0 CHECK (COMPOSITE IN (0, 1)),
            SHORT_LINK TEXT,
            REQUESTER_ID INTEGER,
            CREATED_AT TIMESTAMP NOT NULL
        );
    `)
	if err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}
	return nil
}

// SaveRecord persists one record and returns the store-assigned id. The
// creation timestamp is kept if the caller set one, otherwise assigned here.
func (s *SQLiteStore) SaveRecord(ctx context.Context, record models.DistributionRecord) (string, error) {
	id := uuid.NewString()
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO DistributionRecords
            (ID, SOURCE_URL, VIDEO_LOCATOR, AUDIO_LOCATOR, COMPOSITE, SHORT_LINK, REQUESTER_ID, CREATED_AT)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `,
		id,
		record.SourceURL,
		record.VideoLocator,
		nullableString(record.AudioLocator),
		record.Composite,
		nullableString(record.ShortLink),
		record.RequesterID,
		createdAt,
	)
	if err != nil {
		return "", utils.WrapError(err, "failed to insert distribution record", map[string]any{
			"source_url": record.SourceURL,
		})
	}
	return id, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
