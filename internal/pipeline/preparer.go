package pipeline

import (
	"context"
	"time"

	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/models"
)

// Shortener is the optional link-shortening capability.
type Shortener interface {
	Enabled() bool
	Shorten(ctx context.Context, longURL string) (string, error)
}

// RecordStore persists distribution records, append-only.
type RecordStore interface {
	SaveRecord(ctx context.Context, record models.DistributionRecord) (string, error)
}

// Preparer assembles the DistributionRecord for a resolved locator. Shortening
// and persistence failures degrade gracefully: the resolved link is always
// delivered, and neither failure changes the resolution outcome.
type Preparer struct {
	shortener Shortener
	store     RecordStore
}

func NewPreparer(shortener Shortener, store RecordStore) *Preparer {
	return &Preparer{shortener: shortener, store: store}
}

// Prepare always returns a record. ShortLink is set only when shortening is
// configured and succeeded; ID is set only when persistence succeeded.
// Composite resolutions shorten the video locator and keep the audio locator
// as an explicit separate field.
func (p *Preparer) Prepare(
	ctx context.Context,
	resolved models.ResolvedLocator,
	sourceURL string,
	requesterID int64,
) models.DistributionRecord {
	record := models.DistributionRecord{
		SourceURL:    sourceURL,
		VideoLocator: resolved.VideoURL,
		AudioLocator: resolved.AudioURL,
		Composite:    resolved.Composite,
		RequesterID:  requesterID,
		CreatedAt:    time.Now().UTC(),
	}

	if p.shortener != nil && p.shortener.Enabled() {
		shortLink, err := p.shortener.Shorten(ctx, resolved.VideoURL)
		if err != nil {
			logutils.Log.WithError(err).Warn("Link shortening failed, using the raw locator")
		} else {
			record.ShortLink = shortLink
		}
	}

	if p.store != nil {
		id, err := p.store.SaveRecord(ctx, record)
		if err != nil {
			logutils.Log.WithError(err).WithField("source_url", sourceURL).
				Warn("Failed to persist distribution record, delivering the link anyway")
		} else {
			record.ID = id
		}
	}

	return record
}
