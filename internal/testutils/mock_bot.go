package testutils

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// MockMessage captures a single message sent by MockBot.
type MockMessage struct {
	ChatID int64
	Text   string
	Markup *tgbotapi.InlineKeyboardMarkup
}

// MockBot implements bot.Service for testing.
// SentMessages collects every message sent via SendMessage and
// SendMessageWithMarkup in order.
type MockBot struct {
	SentMessages      []MockMessage
	AnsweredCallbacks []tgbotapi.CallbackConfig

	// SendMarkupError, if set, is returned by SendMessageWithMarkup.
	SendMarkupError error
}

func (m *MockBot) SendMessage(chatID int64, text string) {
	m.SentMessages = append(m.SentMessages, MockMessage{ChatID: chatID, Text: text})
}

func (m *MockBot) SendMessageWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	if m.SendMarkupError != nil {
		return m.SendMarkupError
	}
	m.SentMessages = append(m.SentMessages, MockMessage{ChatID: chatID, Text: text, Markup: &markup})
	return nil
}

func (m *MockBot) AnswerCallbackQuery(callbackConfig tgbotapi.CallbackConfig) {
	m.AnsweredCallbacks = append(m.AnsweredCallbacks, callbackConfig)
}

// GetLastMessage returns the most recently sent message, or nil if none.
func (m *MockBot) GetLastMessage() *MockMessage {
	if len(m.SentMessages) == 0 {
		return nil
	}
	return &m.SentMessages[len(m.SentMessages)-1]
}

// ClearMessages resets the captured messages.
func (m *MockBot) ClearMessages() {
	m.SentMessages = nil
	m.AnsweredCallbacks = nil
}
