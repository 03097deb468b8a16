package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mediabeam/video-link-bot/internal/app"
	vlbconfig "github.com/mediabeam/video-link-bot/internal/config"
	"github.com/mediabeam/video-link-bot/internal/logutils"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	config, err := vlbconfig.NewConfig()
	if err != nil {
		logutils.Log.WithError(err).Fatal("Failed to initialize configuration")
	}

	application, err := app.New(config)
	if err != nil {
		logutils.Log.WithError(err).Fatal("Failed to initialize the application")
	}

	logutils.Log.WithFields(map[string]any{
		"version":    Version,
		"build_time": BuildTime,
	}).Info("Starting Video Link Bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logutils.Log.Info("Received shutdown signal, starting graceful shutdown...")
		cancel()
	}()

	application.Run(ctx)
	application.Close()

	logutils.Log.Info("Video Link Bot shutdown complete")
}
