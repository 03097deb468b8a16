package models

import (
	"fmt"
	"time"
)

const bytesPerMegabyte = 1024 * 1024

// AudioOnlyCodec is the video codec sentinel the catalog reports for streams
// that carry no video track.
const AudioOnlyCodec = "none"

// StreamDescriptor is one encoded stream offered by the source.
// Height is 0 for audio-only or unknown streams. FileSize may be exact or
// approximate and is 0 when the source does not report one.
type StreamDescriptor struct {
	ID           string
	Height       int
	Container    string
	VideoCodec   string
	FileSize     int64
	QualityLabel string
	AudioQuality string
	Bitrate      int
}

// IsVideo reports whether the stream carries a video track.
func (s StreamDescriptor) IsVideo() bool {
	return s.Height > 0 && s.VideoCodec != AudioOnlyCodec
}

// QualityTier is a deduplicated, user-selectable quality option. Within one
// reduction result tiers are unique by Label.
type QualityTier struct {
	Label     string
	StreamID  string
	Height    int
	SizeBytes int64
}

// DisplaySize formats the approximate size for button labels.
func (t QualityTier) DisplaySize() string {
	if t.SizeBytes <= 0 {
		return "size unknown"
	}
	return fmt.Sprintf("%.1f MB", float64(t.SizeBytes)/bytesPerMegabyte)
}

// ResolvedLocator is the outcome of resolving one tier to fetchable addresses.
// When Composite is true, VideoURL and AudioURL form a paired unit and must be
// fetched and combined by the consumer; otherwise VideoURL alone is playable.
type ResolvedLocator struct {
	VideoURL  string
	AudioURL  string
	Composite bool
}

// DistributionRecord is the persisted metadata for one successful resolution.
// Records are append-only and never read back by this system.
type DistributionRecord struct {
	ID           string
	SourceURL    string
	VideoLocator string
	AudioLocator string
	Composite    bool
	ShortLink    string
	RequesterID  int64
	CreatedAt    time.Time
}
