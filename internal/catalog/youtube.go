package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/models"
	"github.com/mediabeam/video-link-bot/internal/utils"
)

// YouTubeFetcher resolves catalogs and stream addresses through the YouTube
// extraction engine. Addresses it returns are time-limited by the source.
type YouTubeFetcher struct {
	client youtube.Client
}

func NewYouTubeFetcher(timeout time.Duration) *YouTubeFetcher {
	return &YouTubeFetcher{
		client: youtube.Client{
			HTTPClient: &http.Client{Timeout: timeout},
		},
	}
}

func (f *YouTubeFetcher) ListStreams(ctx context.Context, rawURL string) (Catalog, error) {
	video, err := f.client.GetVideoContext(ctx, rawURL)
	if err != nil {
		return Catalog{}, utils.WrapError(err, "failed to fetch stream catalog", map[string]any{
			"url": rawURL,
		})
	}

	streams := make([]models.StreamDescriptor, 0, len(video.Formats))
	for i := range video.Formats {
		streams = append(streams, descriptorFromFormat(&video.Formats[i]))
	}

	logutils.Log.WithField("url", rawURL).Infof("Catalog fetch returned %d streams", len(streams))
	return Catalog{Title: video.Title, Streams: streams}, nil
}

func (f *YouTubeFetcher) ResolveStream(ctx context.Context, rawURL string, sel Selector) (string, error) {
	video, err := f.client.GetVideoContext(ctx, rawURL)
	if err != nil {
		return "", utils.WrapError(err, "failed to fetch video for resolution", map[string]any{
			"url": rawURL,
		})
	}

	var format *youtube.Format
	switch sel.Kind {
	case SelectByID:
		itag, convErr := strconv.Atoi(sel.StreamID)
		if convErr != nil {
			return "", fmt.Errorf("stream id %q is not a valid itag: %w", sel.StreamID, ErrNoMatch)
		}
		format = video.Formats.FindByItag(itag)
	case SelectBestAudio:
		format = bestAudioFormat(video.Formats)
	case SelectMuxed:
		format = muxedFormat(video.Formats, sel)
	}
	if format == nil {
		return "", ErrNoMatch
	}

	streamURL, err := f.client.GetStreamURLContext(ctx, video, format)
	if err != nil {
		return "", utils.WrapError(err, "failed to resolve stream address", map[string]any{
			"url":  rawURL,
			"itag": format.ItagNo,
		})
	}
	if streamURL == "" {
		return "", ErrNoMatch
	}
	return streamURL, nil
}

func descriptorFromFormat(fm *youtube.Format) models.StreamDescriptor {
	return models.StreamDescriptor{
		ID:           strconv.Itoa(fm.ItagNo),
		Height:       fm.Height,
		Container:    containerFromMimeType(fm.MimeType),
		VideoCodec:   videoCodecFromMimeType(fm.MimeType),
		FileSize:     fm.ContentLength,
		QualityLabel: fm.QualityLabel,
		AudioQuality: fm.AudioQuality,
		Bitrate:      fm.Bitrate,
	}
}

// containerFromMimeType extracts the container tag from a MIME type such as
// `video/mp4; codecs="avc1.42001E, mp4a.40.2"`.
func containerFromMimeType(mimeType string) string {
	base := mimeType
	if idx := strings.Index(base, ";"); idx >= 0 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "/"); idx >= 0 {
		return strings.TrimSpace(base[idx+1:])
	}
	return strings.TrimSpace(base)
}

// videoCodecFromMimeType returns the first declared codec, or the audio-only
// sentinel for audio/* streams.
func videoCodecFromMimeType(mimeType string) string {
	if strings.HasPrefix(mimeType, "audio/") {
		return models.AudioOnlyCodec
	}
	const marker = `codecs="`
	idx := strings.Index(mimeType, marker)
	if idx < 0 {
		return ""
	}
	codecs := mimeType[idx+len(marker):]
	if end := strings.Index(codecs, `"`); end >= 0 {
		codecs = codecs[:end]
	}
	if comma := strings.Index(codecs, ","); comma >= 0 {
		codecs = codecs[:comma]
	}
	return strings.TrimSpace(codecs)
}

func isAudioOnly(fm *youtube.Format) bool {
	return strings.HasPrefix(fm.MimeType, "audio/")
}

// bestAudioFormat picks the audio-only stream with the highest declared
// bitrate. Strict comparison keeps catalog order on ties.
func bestAudioFormat(list youtube.FormatList) *youtube.Format {
	var best *youtube.Format
	for i := range list {
		fm := &list[i]
		if !isAudioOnly(fm) {
			continue
		}
		if best == nil || fm.Bitrate > best.Bitrate {
			best = fm
		}
	}
	return best
}

// muxedFormat finds a pre-muxed audio+video stream matching the tier, by
// label when one is set, otherwise by height.
func muxedFormat(list youtube.FormatList, sel Selector) *youtube.Format {
	for i := range list {
		fm := &list[i]
		if fm.Height == 0 || fm.AudioChannels == 0 || isAudioOnly(fm) {
			continue
		}
		if sel.Label != "" {
			if fm.QualityLabel == sel.Label {
				return fm
			}
			continue
		}
		if sel.Height > 0 && fm.Height == sel.Height {
			return fm
		}
	}
	return nil
}
