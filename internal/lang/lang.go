package lang

import (
	"fmt"
	"log"

	vlbconfig "github.com/mediabeam/video-link-bot/internal/config"
)

var lang string

func SetupLang(config *vlbconfig.Config) {
	lang = config.Lang
}

func GetMessage(id MessageID, args ...interface{}) string {
	if m, ok := messages[id]; ok {
		if msg, ok := m[lang]; ok {
			return fmt.Sprintf(msg, args...)
		}
		if msg, ok := m["en"]; ok {
			return fmt.Sprintf(msg, args...)
		}
	}
	log.Printf("Message not found for ID: %s", id)
	return "Message not found"
}
