package database

import (
	"context"

	vlbconfig "github.com/mediabeam/video-link-bot/internal/config"
	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/models"
)

// Store is the metadata persistence capability. The collection is
// append-only: records are created once per successful resolution and never
// read back, updated or deleted by this system.
type Store interface {
	SaveRecord(ctx context.Context, record models.DistributionRecord) (string, error)
	Close() error
}

func NewStore(config *vlbconfig.Config) (Store, error) {
	store := NewSQLiteStore()
	if err := store.Init(config); err != nil {
		logutils.Log.WithError(err).Error("Failed to initialize the metadata store")
		return nil, err
	}

	logutils.Log.Info("Metadata store initialized successfully")
	return store, nil
}
