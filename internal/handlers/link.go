package handlers

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mediabeam/video-link-bot/internal/lang"
	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/pipeline"
)

// HandleVideoLink fetches the stream catalog for a link and presents the
// deduplicated quality tiers as inline buttons.
func (h *Handler) HandleVideoLink(ctx context.Context, chatID int64, sourceURL string) {
	h.bot.SendMessage(chatID, lang.GetMessage(lang.FetchingOptionsMsgID))

	// Fixed pause before every catalog fetch to stay under the source's
	// request thresholds.
	if h.config.CatalogDelay > 0 {
		select {
		case <-time.After(h.config.CatalogDelay):
		case <-ctx.Done():
			return
		}
	}

	cat, err := h.fetcher.ListStreams(ctx, sourceURL)
	if err != nil {
		logutils.Log.WithError(err).WithField("source_url", sourceURL).Error("Failed to fetch the stream catalog")
		h.bot.SendMessage(chatID, lang.GetMessage(lang.CatalogErrorMsgID))
		return
	}

	tiers := pipeline.Reduce(cat.Streams)
	if len(tiers) == 0 {
		h.bot.SendMessage(chatID, lang.GetMessage(lang.NoFormatsMsgID))
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, tier := range tiers {
		payload, err := FormatSelection(tier, sourceURL)
		if err != nil {
			logutils.Log.WithError(err).WithField("tier", tier.Label).Warn("Skipping tier with unencodable selection")
			continue
		}
		text := fmt.Sprintf("%s (%s)", tier.Label, tier.DisplaySize())
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, payload),
		))
	}
	if len(rows) == 0 {
		h.bot.SendMessage(chatID, lang.GetMessage(lang.NoFormatsMsgID))
		return
	}

	title := cat.Title
	if title == "" {
		title = sourceURL
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	if err := h.bot.SendMessageWithMarkup(chatID, lang.GetMessage(lang.ChooseQualityMsgID, title), markup); err != nil {
		logutils.Log.WithError(err).Errorf("Failed to send quality options to chat %d", chatID)
	}
}
