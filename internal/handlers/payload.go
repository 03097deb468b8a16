package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mediabeam/video-link-bot/internal/models"
	"github.com/mediabeam/video-link-bot/internal/pipeline"
)

// Callback payloads carry the selection through Telegram as
// "dl|<streamID>:<height>:<label>|<sourceURL>". Telegram caps callback data
// at 64 bytes, and the field separators must not appear inside the fields.
const (
	selectionPrefix    = "dl"
	payloadSeparator   = "|"
	selectorSeparator  = ":"
	maxCallbackPayload = 64
)

// FormatSelection encodes a tier selection into callback data. It fails when
// a field would collide with a separator or the payload exceeds the Telegram
// limit; callers skip such tiers rather than offering a broken button.
func FormatSelection(tier models.QualityTier, sourceURL string) (string, error) {
	if strings.Contains(tier.StreamID, payloadSeparator) || strings.Contains(tier.StreamID, selectorSeparator) {
		return "", pipeline.NewStageError(pipeline.StageValidation,
			fmt.Errorf("stream id %q contains a separator", tier.StreamID))
	}
	if strings.Contains(tier.Label, payloadSeparator) || strings.Contains(tier.Label, selectorSeparator) {
		return "", pipeline.NewStageError(pipeline.StageValidation,
			fmt.Errorf("label %q contains a separator", tier.Label))
	}
	if strings.Contains(sourceURL, payloadSeparator) {
		return "", pipeline.NewStageError(pipeline.StageValidation,
			fmt.Errorf("source url contains a separator"))
	}

	payload := strings.Join([]string{
		selectionPrefix,
		strings.Join([]string{tier.StreamID, strconv.Itoa(tier.Height), tier.Label}, selectorSeparator),
		sourceURL,
	}, payloadSeparator)

	if len(payload) > maxCallbackPayload {
		return "", pipeline.NewStageError(pipeline.StageValidation,
			fmt.Errorf("payload is %d bytes, limit is %d", len(payload), maxCallbackPayload))
	}
	return payload, nil
}

// ParseSelection decodes callback data produced by FormatSelection.
func ParseSelection(data string) (models.QualityTier, string, error) {
	parts := strings.SplitN(data, payloadSeparator, 3)
	if len(parts) != 3 || parts[0] != selectionPrefix {
		return models.QualityTier{}, "", pipeline.NewStageError(pipeline.StageValidation,
			errors.New("malformed selection payload"))
	}

	fields := strings.SplitN(parts[1], selectorSeparator, 3)
	if len(fields) != 3 || fields[0] == "" || fields[2] == "" {
		return models.QualityTier{}, "", pipeline.NewStageError(pipeline.StageValidation,
			errors.New("malformed selector"))
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height <= 0 {
		return models.QualityTier{}, "", pipeline.NewStageError(pipeline.StageValidation,
			fmt.Errorf("invalid height %q", fields[1]))
	}

	sourceURL := parts[2]
	if sourceURL == "" {
		return models.QualityTier{}, "", pipeline.NewStageError(pipeline.StageValidation,
			errors.New("missing source url"))
	}

	tier := models.QualityTier{
		StreamID: fields[0],
		Height:   height,
		Label:    fields[2],
	}
	return tier, sourceURL, nil
}
