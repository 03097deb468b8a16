package pipeline

import (
	"fmt"
	"sort"

	"github.com/mediabeam/video-link-bot/internal/models"
)

// Reduce collapses a raw stream catalog into the deduplicated quality tiers
// shown to the user. Audio-only streams are excluded, tiers are ordered by
// ascending height with the catalog order breaking ties, and the first stream
// per distinct label becomes the tier's representative. An empty result means
// no offer is available; it is not an error.
func Reduce(streams []models.StreamDescriptor) []models.QualityTier {
	video := make([]models.StreamDescriptor, 0, len(streams))
	for _, s := range streams {
		if s.IsVideo() {
			video = append(video, s)
		}
	}

	sort.SliceStable(video, func(i, j int) bool {
		return video[i].Height < video[j].Height
	})

	seen := make(map[string]bool, len(video))
	tiers := make([]models.QualityTier, 0, len(video))
	for _, s := range video {
		label := s.QualityLabel
		if label == "" {
			label = fmt.Sprintf("%dp", s.Height)
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		tiers = append(tiers, models.QualityTier{
			Label:     label,
			StreamID:  s.ID,
			Height:    s.Height,
			SizeBytes: s.FileSize,
		})
	}
	return tiers
}
