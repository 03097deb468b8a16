package handlers

import (
	vlbbot "github.com/mediabeam/video-link-bot/internal/bot"
	"github.com/mediabeam/video-link-bot/internal/catalog"
	vlbconfig "github.com/mediabeam/video-link-bot/internal/config"
	"github.com/mediabeam/video-link-bot/internal/pipeline"
	"github.com/mediabeam/video-link-bot/internal/ratelimit"
)

// Handler carries the dependencies shared by all update handlers.
type Handler struct {
	bot      vlbbot.Service
	config   *vlbconfig.Config
	fetcher  catalog.Fetcher
	resolver *pipeline.Resolver
	preparer *pipeline.Preparer
	limiter  ratelimit.Limiter
}

func NewHandler(
	bot vlbbot.Service,
	config *vlbconfig.Config,
	fetcher catalog.Fetcher,
	resolver *pipeline.Resolver,
	preparer *pipeline.Preparer,
	limiter ratelimit.Limiter,
) *Handler {
	return &Handler{
		bot:      bot,
		config:   config,
		fetcher:  fetcher,
		resolver: resolver,
		preparer: preparer,
		limiter:  limiter,
	}
}
