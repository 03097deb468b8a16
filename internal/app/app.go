package app

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	vlbbot "github.com/mediabeam/video-link-bot/internal/bot"
	"github.com/mediabeam/video-link-bot/internal/catalog"
	vlbconfig "github.com/mediabeam/video-link-bot/internal/config"
	"github.com/mediabeam/video-link-bot/internal/database"
	"github.com/mediabeam/video-link-bot/internal/handlers"
	"github.com/mediabeam/video-link-bot/internal/lang"
	"github.com/mediabeam/video-link-bot/internal/logutils"
	"github.com/mediabeam/video-link-bot/internal/pipeline"
	"github.com/mediabeam/video-link-bot/internal/ratelimit"
	"github.com/mediabeam/video-link-bot/internal/shortener"
)

const updateTimeoutSeconds = 60

// Application wires the bot, the resolution pipeline and the metadata store.
type Application struct {
	bot     *vlbbot.Bot
	handler *handlers.Handler
	store   database.Store
}

func New(config *vlbconfig.Config) (*Application, error) {
	logutils.InitLogger(config.LogLevel)
	lang.SetupLang(config)

	botInstance, err := vlbbot.InitBot(config)
	if err != nil {
		return nil, err
	}

	store, err := database.NewStore(config)
	if err != nil {
		return nil, err
	}

	fetcher := catalog.NewYouTubeFetcher(config.RequestTimeout)
	shortenerClient := shortener.New(config.ShortenerURL, config.ShortenerAPIKey, config.RequestTimeout)
	limiter := ratelimit.NewTokenBucketLimiter(
		config.RateSettings.RequestsPerWindow,
		config.RateSettings.RefillInterval,
	)

	handler := handlers.NewHandler(
		botInstance,
		config,
		fetcher,
		pipeline.NewResolver(fetcher),
		pipeline.NewPreparer(shortenerClient, store),
		limiter,
	)

	return &Application{
		bot:     botInstance,
		handler: handler,
		store:   store,
	}, nil
}

// Run processes updates until the context is canceled, one goroutine per
// update. Handlers share no mutable state, so updates need no ordering.
func (app *Application) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds
	updates := app.bot.GetUpdatesChan(u)

	logutils.Log.Info("Video link bot started successfully")

	var wg sync.WaitGroup
	for {
		select {
		case update := <-updates:
			wg.Add(1)
			go func(update tgbotapi.Update) {
				defer wg.Done()
				app.handler.Router(ctx, update)
			}(update)
		case <-ctx.Done():
			logutils.Log.Info("Stopping update processing")
			wg.Wait()
			return
		}
	}
}

// Close releases held resources after Run has returned.
func (app *Application) Close() {
	if err := app.store.Close(); err != nil {
		logutils.Log.WithError(err).Error("Failed to close the metadata store")
	}
}
