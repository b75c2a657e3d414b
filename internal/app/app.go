// Package app assembles the translator server from configuration and runs it
// until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/polyglot/translator/internal/api"
	"github.com/polyglot/translator/internal/core/ports"
	"github.com/polyglot/translator/internal/core/service"
	"github.com/polyglot/translator/internal/infrastructure/db/redis"
	"github.com/polyglot/translator/internal/infrastructure/llm"
	"github.com/polyglot/translator/internal/infrastructure/memory"
	"github.com/polyglot/translator/internal/infrastructure/queue"
	"github.com/polyglot/translator/internal/pkg/config"
	"github.com/polyglot/translator/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg        *config.Config
	log        zerolog.Logger
	echo       *echo.Echo
	redis      *goredis.Client
	sweeper    *memory.Sweeper
	dispatcher *queue.Dispatcher
}

// New wires stores, services and the router. Redis is connected only when
// REDIS_ADDR is set.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	var (
		rdb   *goredis.Client
		cache ports.TranslationCache
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		rdb = client
		cache = redis.NewTranslationCache(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("translation cache enabled")
	}

	if cfg.OpenAI.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set; translate requests will fail")
	}
	model := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})

	accounts := memory.NewAccountStore()
	sessions := memory.NewSessionStore(cfg.Auth.SessionTTL)
	history := memory.NewHistoryStore(cfg.History.Retention)

	authService := service.NewAuthService(accounts, sessions, cfg.Auth.BcryptCost, logger.Component(log, "auth"))
	translationService := service.NewTranslationService(model, cache, cfg.Translation.CacheTTL, logger.Component(log, "translate"))
	historyService := service.NewHistoryService(history, logger.Component(log, "history"))

	dispatcher := queue.NewDispatcher(cfg.History.Workers, historyService, logger.Component(log, "dispatcher"))

	e := api.NewRouter(api.Deps{
		Auth:        authService,
		Translation: translationService,
		History:     historyService,
		Recorder:    dispatcher,
		Redis:       rdb,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	return &App{
		cfg:        cfg,
		log:        log,
		echo:       e,
		redis:      rdb,
		sweeper:    memory.NewSweeper(sessions, cfg.Auth.SweepInterval, logger.Component(log, "sweeper")),
		dispatcher: dispatcher,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.sweeper.Start(ctx)

	// History workers outlive ctx so that saves from requests still in flight
	// during Shutdown are applied; they are stopped and drained afterwards.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	a.dispatcher.Start(workerCtx)
	defer func() {
		stopWorkers()
		a.dispatcher.Wait()
	}()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + a.cfg.Port
		a.log.Info().Str("addr", addr).Str("env", a.cfg.Env).Msg("starting server")
		if err := a.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.echo.Shutdown(shutdownCtx)
	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil {
			a.log.Error().Err(cerr).Msg("redis close failed")
		}
	}
	return err
}
