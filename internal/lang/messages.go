package lang

type MessageID string

const (
	StartMsgID            MessageID = "start"
	NotVideoLinkMsgID     MessageID = "not_video_link"
	RateLimitedMsgID      MessageID = "rate_limited"
	UnknownCommandMsgID   MessageID = "unknown_command"
	FetchingOptionsMsgID  MessageID = "fetching_options"
	CatalogErrorMsgID     MessageID = "catalog_error"
	NoFormatsMsgID        MessageID = "no_formats"
	ChooseQualityMsgID    MessageID = "choose_quality"
	ResolvingMsgID        MessageID = "resolving"
	ResolutionErrorMsgID  MessageID = "resolution_error"
	NoAudioMsgID          MessageID = "no_audio"
	InvalidCallbackMsgID  MessageID = "invalid_callback"
	LinkReadyMsgID        MessageID = "link_ready"
	CompositeLinkMsgID    MessageID = "composite_link"
	RecordReferenceMsgID  MessageID = "record_reference"
)

var messages = map[MessageID]map[string]string{
	StartMsgID: {
		"en": "Send me a video link to get download options!",
		"ru": "Отправьте ссылку на видео, чтобы получить варианты загрузки!",
	},
	NotVideoLinkMsgID: {
		"en": "Please send a valid video link.",
		"ru": "Пожалуйста, отправьте корректную ссылку на видео.",
	},
	RateLimitedMsgID: {
		"en": "Too many requests, please wait a bit and try again.",
		"ru": "Слишком много запросов, подождите немного и попробуйте снова.",
	},
	UnknownCommandMsgID: {
		"en": "Unknown command.",
		"ru": "Неизвестная команда.",
	},
	FetchingOptionsMsgID: {
		"en": "Fetching download options...",
		"ru": "Получаю варианты загрузки...",
	},
	CatalogErrorMsgID: {
		"en": "Could not fetch options for this link.",
		"ru": "Не удалось получить варианты для этой ссылки.",
	},
	NoFormatsMsgID: {
		"en": "No suitable video formats found.",
		"ru": "Подходящие видеоформаты не найдены.",
	},
	ChooseQualityMsgID: {
		"en": "%s\nChoose a quality:",
		"ru": "%s\nВыберите качество:",
	},
	ResolvingMsgID: {
		"en": "Resolving %s link...",
		"ru": "Получаю ссылку для %s...",
	},
	ResolutionErrorMsgID: {
		"en": "Could not resolve a playable link: %s",
		"ru": "Не удалось получить рабочую ссылку: %s",
	},
	NoAudioMsgID: {
		"en": "No audio track is available for this quality.",
		"ru": "Для этого качества нет аудиодорожки.",
	},
	InvalidCallbackMsgID: {
		"en": "This selection is no longer valid, send the link again.",
		"ru": "Этот выбор больше недействителен, отправьте ссылку заново.",
	},
	LinkReadyMsgID: {
		"en": "Your %s link:\n%s",
		"ru": "Ваша ссылка (%s):\n%s",
	},
	CompositeLinkMsgID: {
		"en": "This quality has separate video and audio streams.\nVideo: %s\nAudio: %s",
		"ru": "Для этого качества видео и аудио раздельны.\nВидео: %s\nАудио: %s",
	},
	RecordReferenceMsgID: {
		"en": "Saved as record %s",
		"ru": "Сохранено как запись %s",
	},
}
