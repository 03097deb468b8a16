package handlers

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mediabeam/video-link-bot/internal/lang"
	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/pipeline"
	"github.com/mediabeam/video-link-bot/internal/utils"
)

// HandleCallbackQuery resolves the selected quality tier and delivers the
// final link. The resolved link is delivered even when shortening or
// persistence fails.
func (h *Handler) HandleCallbackQuery(ctx context.Context, update tgbotapi.Update) {
	defer h.bot.AnswerCallbackQuery(tgbotapi.NewCallback(update.CallbackQuery.ID, ""))

	chatID := update.CallbackQuery.Message.Chat.ID
	requesterID := update.CallbackQuery.From.ID

	tier, sourceURL, err := ParseSelection(update.CallbackQuery.Data)
	if err != nil {
		logutils.Log.WithError(err).Warnf("Rejected callback payload: %q", update.CallbackQuery.Data)
		h.bot.SendMessage(chatID, lang.GetMessage(lang.InvalidCallbackMsgID))
		return
	}

	h.bot.SendMessage(chatID, lang.GetMessage(lang.ResolvingMsgID, tier.Label))

	resolved, err := h.resolver.Resolve(ctx, sourceURL, tier)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoAudio) {
			h.bot.SendMessage(chatID, lang.GetMessage(lang.NoAudioMsgID))
			return
		}
		logutils.Log.WithError(err).WithField("tier", tier.Label).Error("Resolution failed")
		h.bot.SendMessage(chatID, lang.GetMessage(lang.ResolutionErrorMsgID, utils.RootError(err)))
		return
	}

	record := h.preparer.Prepare(ctx, resolved, sourceURL, requesterID)

	videoLink := record.VideoLocator
	if record.ShortLink != "" {
		videoLink = record.ShortLink
	}

	if resolved.Composite {
		h.bot.SendMessage(chatID, lang.GetMessage(lang.CompositeLinkMsgID, videoLink, record.AudioLocator))
	} else {
		h.bot.SendMessage(chatID, lang.GetMessage(lang.LinkReadyMsgID, tier.Label, videoLink))
	}

	if record.ID != "" {
		h.bot.SendMessage(chatID, lang.GetMessage(lang.RecordReferenceMsgID, record.ID))
	}
}
