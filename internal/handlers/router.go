package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mediabeam/video-link-bot/internal/lang"
	"github.com/mediabeam/video-link-bot/internal/logutils"
)

// Router dispatches one Telegram update. It is safe for concurrent use; the
// application runs one goroutine per update.
func (h *Handler) Router(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.HandleCallbackQuery(ctx, update)
		return
	}

	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		command := strings.ToLower(update.Message.Command())
		switch command {
		case "start", "help":
			h.bot.SendMessage(chatID, lang.GetMessage(lang.StartMsgID))
		default:
			logutils.Log.Warnf("Unknown command: %s", command)
			h.bot.SendMessage(chatID, lang.GetMessage(lang.UnknownCommandMsgID))
		}
		return
	}

	if !h.limiter.Allow(chatID) {
		h.bot.SendMessage(chatID, lang.GetMessage(lang.RateLimitedMsgID))
		return
	}

	if IsVideoHostLink(update.Message.Text, h.config.AllowedHosts) {
		h.HandleVideoLink(ctx, chatID, strings.TrimSpace(update.Message.Text))
		return
	}

	logutils.Log.Debugf("Ignoring non-link message in chat %d", chatID)
	h.bot.SendMessage(chatID, lang.GetMessage(lang.NotVideoLinkMsgID))
}
