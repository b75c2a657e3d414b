package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/polyglot/translator/internal/app"
	"github.com/polyglot/translator/internal/pkg/config"
	"github.com/polyglot/translator/pkg/logger"
)

// @title Translator API
// @version 1.0
// @description Account sessions, language detection with translation, and translation history.
// @BasePath /
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "translator",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
