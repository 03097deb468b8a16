package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mediabeam/video-link-bot/internal/catalog"
	"github.com/mediabeam/video-link-bot/internal/lang"
	"github.com/mediabeam/video-link-bot/internal/models"
)

const testLink = "https://youtu.be/dQw4w9WgXcQ"

func TestHandleVideoLinkCatalogFailure(t *testing.T) {
	f := newFixture(t)
	f.fetcher.ListErr = errors.New("video unavailable")

	f.handler.HandleVideoLink(context.Background(), 1, testLink)

	if len(f.store.Saved) != 0 {
		t.Error("no record may be created when the catalog fetch fails")
	}
	last := f.bot.GetLastMessage()
	if last == nil || last.Text != lang.GetMessage(lang.CatalogErrorMsgID) {
		t.Errorf("expected catalog error message, got %+v", last)
	}
	var errorCount int
	for _, msg := range f.bot.SentMessages {
		if msg.Text == lang.GetMessage(lang.CatalogErrorMsgID) {
			errorCount++
		}
	}
	if errorCount != 1 {
		t.Errorf("expected exactly one error report, got %d", errorCount)
	}
}

func TestHandleVideoLinkNoFormats(t *testing.T) {
	f := newFixture(t)
	f.fetcher.Catalog = catalog.Catalog{
		Title: "Podcast",
		Streams: []models.StreamDescriptor{
			{ID: "140", VideoCodec: models.AudioOnlyCodec, AudioQuality: "AUDIO_QUALITY_MEDIUM", Bitrate: 128_000},
		},
	}

	f.handler.HandleVideoLink(context.Background(), 1, testLink)

	last := f.bot.GetLastMessage()
	if last == nil || last.Text != lang.GetMessage(lang.NoFormatsMsgID) {
		t.Errorf("expected no-formats message, got %+v", last)
	}
}

func TestHandleVideoLinkPresentsQualityButtons(t *testing.T) {
	f := newFixture(t)
	f.fetcher.Catalog = catalog.Catalog{
		Title: "Test Video",
		Streams: []models.StreamDescriptor{
			{ID: "22", Height: 720, VideoCodec: "avc1", QualityLabel: "720p", FileSize: 50 << 20},
			{ID: "18", Height: 360, VideoCodec: "avc1", QualityLabel: "360p", FileSize: 20 << 20},
			{ID: "298", Height: 720, VideoCodec: "avc1", QualityLabel: "720p", FileSize: 60 << 20},
			{ID: "140", VideoCodec: models.AudioOnlyCodec, Bitrate: 128_000},
		},
	}

	f.handler.HandleVideoLink(context.Background(), 1, testLink)

	last := f.bot.GetLastMessage()
	if last == nil || last.Markup == nil {
		t.Fatalf("expected a message with an inline keyboard, got %+v", last)
	}
	if !strings.Contains(last.Text, "Test Video") {
		t.Errorf("options message should carry the title, got %q", last.Text)
	}

	rows := last.Markup.InlineKeyboard
	if len(rows) != 2 {
		t.Fatalf("expected 2 deduplicated tiers, got %d rows", len(rows))
	}

	first := rows[0][0]
	second := rows[1][0]
	if !strings.HasPrefix(first.Text, "360p") || !strings.HasPrefix(second.Text, "720p") {
		t.Errorf("tiers must be ordered by ascending height, got %q then %q", first.Text, second.Text)
	}
	if !strings.Contains(first.Text, "20.0 MB") {
		t.Errorf("button should show the approximate size, got %q", first.Text)
	}

	tier, sourceURL, err := ParseSelection(*second.CallbackData)
	if err != nil {
		t.Fatalf("button payload must parse back: %v", err)
	}
	if tier.StreamID != "22" {
		t.Errorf("the first stream per label is the representative, got %q", tier.StreamID)
	}
	if sourceURL != testLink {
		t.Errorf("payload must carry the source url, got %q", sourceURL)
	}
}

func TestHandleVideoLinkSkipsUnencodableTiers(t *testing.T) {
	f := newFixture(t)
	f.fetcher.Catalog = catalog.Catalog{
		Title: "Test Video",
		Streams: []models.StreamDescriptor{
			{ID: "22", Height: 720, VideoCodec: "avc1", QualityLabel: "720p|hd"},
		},
	}

	f.handler.HandleVideoLink(context.Background(), 1, testLink)

	last := f.bot.GetLastMessage()
	if last == nil || last.Text != lang.GetMessage(lang.NoFormatsMsgID) {
		t.Errorf("expected no-formats message when no tier can be encoded, got %+v", last)
	}
}

func TestHandleVideoLinkTitleFallsBackToURL(t *testing.T) {
	f := newFixture(t)
	f.fetcher.Catalog = catalog.Catalog{
		Streams: []models.StreamDescriptor{
			{ID: "18", Height: 360, VideoCodec: "avc1", QualityLabel: "360p"},
		},
	}

	f.handler.HandleVideoLink(context.Background(), 1, testLink)

	last := f.bot.GetLastMessage()
	expected := lang.GetMessage(lang.ChooseQualityMsgID, testLink)
	if last == nil || last.Text != expected {
		t.Errorf("expected %q, got %+v", expected, last)
	}
}

func TestHandleVideoLinkMarkupSendFailure(t *testing.T) {
	f := newFixture(t)
	f.fetcher.Catalog = catalog.Catalog{
		Title: "Test Video",
		Streams: []models.StreamDescriptor{
			{ID: "18", Height: 360, VideoCodec: "avc1", QualityLabel: "360p"},
		},
	}
	f.bot.SendMarkupError = fmt.Errorf("telegram: bad request")

	f.handler.HandleVideoLink(context.Background(), 1, testLink)

	for _, msg := range f.bot.SentMessages {
		if msg.Markup != nil {
			t.Fatal("the failing markup send must not be recorded as delivered")
		}
	}
}
