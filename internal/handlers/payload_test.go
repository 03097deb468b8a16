package handlers

import (
	"strings"
	"testing"

	"github.com/mediabeam/video-link-bot/internal/models"
)

func TestFormatAndParseSelection(t *testing.T) {
	tier := models.QualityTier{
		Label:     "720p60",
		StreamID:  "298",
		Height:    720,
		SizeBytes: 100 << 20,
	}
	sourceURL := "https://youtu.be/dQw4w9WgXcQ"

	payload, err := FormatSelection(tier, sourceURL)
	if err != nil {
		t.Fatalf("FormatSelection returned error: %v", err)
	}
	if !strings.HasPrefix(payload, "dl|") {
		t.Errorf("unexpected payload prefix: %q", payload)
	}

	parsed, parsedURL, err := ParseSelection(payload)
	if err != nil {
		t.Fatalf("ParseSelection returned error: %v", err)
	}
	if parsedURL != sourceURL {
		t.Errorf("source url round-trip failed: got %q", parsedURL)
	}
	if parsed.StreamID != tier.StreamID || parsed.Height != tier.Height || parsed.Label != tier.Label {
		t.Errorf("tier round-trip failed: got %+v", parsed)
	}
}

func TestFormatSelectionRejectsSeparatorCollisions(t *testing.T) {
	tests := []struct {
		name string
		tier models.QualityTier
		url  string
	}{
		{
			name: "pipe in label",
			tier: models.QualityTier{Label: "720p|hd", StreamID: "22", Height: 720},
			url:  "https://youtu.be/abc",
		},
		{
			name: "colon in stream id",
			tier: models.QualityTier{Label: "720p", StreamID: "a:b", Height: 720},
			url:  "https://youtu.be/abc",
		},
		{
			name: "pipe in url",
			tier: models.QualityTier{Label: "720p", StreamID: "22", Height: 720},
			url:  "https://youtu.be/abc|x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FormatSelection(tt.tier, tt.url); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFormatSelectionRejectsOversizedPayload(t *testing.T) {
	tier := models.QualityTier{Label: "1080p", StreamID: "137", Height: 1080}
	longURL := "https://www.youtube.com/watch?v=" + strings.Repeat("x", 80)

	if _, err := FormatSelection(tier, longURL); err == nil {
		t.Error("payload over the Telegram limit must be rejected")
	}
}

func TestParseSelectionRejectsMalformedData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"wrong prefix", "rm|22:720:720p|https://youtu.be/abc"},
		{"missing url", "dl|22:720:720p"},
		{"missing selector fields", "dl|22:720|https://youtu.be/abc"},
		{"non-numeric height", "dl|22:tall:720p|https://youtu.be/abc"},
		{"zero height", "dl|22:0:720p|https://youtu.be/abc"},
		{"empty stream id", "dl|:720:720p|https://youtu.be/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseSelection(tt.data); err == nil {
				t.Errorf("expected an error for %q", tt.data)
			}
		})
	}
}
