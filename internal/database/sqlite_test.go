package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	vlbconfig "github.com/mediabeam/video-link-bot/internal/config"
	"github.com/mediabeam/video-link-bot/internal/models"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore()
	cfg := &vlbconfig.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	if err := store.Init(cfg); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestSaveRecordAssignsID(t *testing.T) {
	store := testStore(t)

	record := models.DistributionRecord{
		SourceURL:    "https://www.youtube.com/watch?v=abc",
		VideoLocator: "https://cdn.example.com/video",
		RequesterID:  42,
	}

	id, err := store.SaveRecord(context.Background(), record)
	if err != nil {
		t.Fatalf("SaveRecord returned error: %v", err)
	}
	if id == "" {
		t.Error("expected a store-assigned id")
	}

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM DistributionRecords").Scan(&count); err != nil {
		t.Fatalf("failed to count records: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 record, got %d", count)
	}
}

func TestSaveRecordIsAppendOnly(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	record := models.DistributionRecord{
		SourceURL:    "https://youtu.be/abc",
		VideoLocator: "https://cdn.example.com/video",
		CreatedAt:    time.Now().UTC(),
	}

	firstID, err := store.SaveRecord(ctx, record)
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	secondID, err := store.SaveRecord(ctx, record)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if firstID == secondID {
		t.Error("each save must create a new record with its own id")
	}
}

func TestSaveCompositeRecord(t *testing.T) {
	store := testStore(t)

	record := models.DistributionRecord{
		SourceURL:    "https://youtu.be/abc",
		VideoLocator: "https://cdn.example.com/video",
		AudioLocator: "https://cdn.example.com/audio",
		Composite:    true,
		ShortLink:    "https://sho.rt/v",
	}

	id, err := store.SaveRecord(context.Background(), record)
	if err != nil {
		t.Fatalf("SaveRecord returned error: %v", err)
	}

	var composite bool
	var audio, short string
	row := store.db.QueryRow(
		"SELECT COMPOSITE, AUDIO_LOCATOR, SHORT_LINK FROM DistributionRecords WHERE ID = ?", id)
	if err := row.Scan(&composite, &audio, &short); err != nil {
		t.Fatalf("failed to read record back: %v", err)
	}
	if !composite || audio != record.AudioLocator || short != record.ShortLink {
		t.Errorf("persisted fields differ: composite=%v audio=%q short=%q", composite, audio, short)
	}
}
