package pipeline

import (
	"context"

	"github.com/mediabeam/video-link-bot/internal/catalog"
	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/models"
)

// Resolver turns a selected quality tier into playable addresses. Resolution
// is an explicit three-step sequence: pre-muxed address, video+audio pair,
// failure. It holds no state between calls; resolution is idempotent modulo
// upstream address volatility.
type Resolver struct {
	fetcher catalog.Fetcher
}

func NewResolver(fetcher catalog.Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve produces one ResolvedLocator for the tier, or a StageError when no
// playable address can be produced. A merged result leaves AudioURL empty and
// Composite false; the fallback sets both addresses and Composite true.
func (r *Resolver) Resolve(ctx context.Context, sourceURL string, tier models.QualityTier) (models.ResolvedLocator, error) {
	muxedSel := catalog.Selector{
		Kind:   catalog.SelectMuxed,
		Label:  tier.Label,
		Height: tier.Height,
	}
	muxedURL, err := r.fetcher.ResolveStream(ctx, sourceURL, muxedSel)
	if err == nil && muxedURL != "" {
		return models.ResolvedLocator{VideoURL: muxedURL}, nil
	}
	if ctx.Err() != nil {
		return models.ResolvedLocator{}, NewStageError(StageResolution, ctx.Err())
	}
	logutils.Log.WithError(err).WithField("tier", tier.Label).
		Debug("No pre-muxed stream, falling back to separate video and audio")

	videoURL, err := r.fetcher.ResolveStream(ctx, sourceURL, catalog.Selector{
		Kind:     catalog.SelectByID,
		StreamID: tier.StreamID,
	})
	if err != nil {
		return models.ResolvedLocator{}, NewStageError(StageResolution, err)
	}

	audioURL, err := r.fetcher.ResolveStream(ctx, sourceURL, catalog.Selector{
		Kind: catalog.SelectBestAudio,
	})
	if err != nil {
		logutils.Log.WithError(err).WithField("tier", tier.Label).Warn("No audio track could be resolved")
		return models.ResolvedLocator{}, NewStageError(StageResolution, ErrNoAudio)
	}

	return models.ResolvedLocator{
		VideoURL:  videoURL,
		AudioURL:  audioURL,
		Composite: true,
	}, nil
}
