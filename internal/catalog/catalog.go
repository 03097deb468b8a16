package catalog

import (
	"context"
	"errors"

	"github.com/mediabeam/video-link-bot/internal/models"
)

// ErrNoMatch is returned by ResolveStream when the source offers no stream
// satisfying the selector. Callers use it to drive fallback, so it must stay
// distinguishable from transport failures.
var ErrNoMatch = errors.New("no stream matches the selector")

// Catalog is one fetch of the source's stream list.
type Catalog struct {
	Title   string
	Streams []models.StreamDescriptor
}

type SelectorKind int

const (
	// SelectMuxed asks for a single pre-muxed audio+video address matching
	// the tier. Fails with ErrNoMatch when the source only serves the
	// quality as separate tracks.
	SelectMuxed SelectorKind = iota
	// SelectByID asks for the exact stream's address.
	SelectByID
	// SelectBestAudio asks for the best available audio-only address,
	// ranked by declared bitrate, catalog order breaking ties.
	SelectBestAudio
)

// Selector identifies which stream address to resolve.
type Selector struct {
	Kind     SelectorKind
	StreamID string
	Label    string
	Height   int
}

// Fetcher is the extraction-engine capability. Implementations talk to the
// source service; everything downstream treats them as opaque.
type Fetcher interface {
	ListStreams(ctx context.Context, url string) (Catalog, error)
	ResolveStream(ctx context.Context, url string, sel Selector) (string, error)
}
