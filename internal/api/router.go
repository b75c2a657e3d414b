package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/polyglot/translator/internal/api/handler"
	"github.com/polyglot/translator/internal/api/middleware"
	"github.com/polyglot/translator/internal/core/ports"

	_ "github.com/polyglot/translator/docs"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Auth        ports.AuthService
	Translation ports.TranslationService
	History     ports.HistoryService
	// Recorder saves translate results asynchronously; nil disables save.
	Recorder handler.HistoryRecorder
	// Redis is only used by the readiness probe and may be nil.
	Redis       *redis.Client
	CORSOrigins []string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	if len(d.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: d.CORSOrigins,
		}))
	}

	authHandler := handler.NewAuthHandler(d.Auth)
	translationHandler := handler.NewTranslationHandler(d.Translation, d.Recorder)
	historyHandler := handler.NewHistoryHandler(d.History)

	// --- API routes ---
	// The session header is optional on translate and history; /auth carries
	// its session id in the body.
	session := middleware.Session(d.Auth)
	g := e.Group("/api")
	g.POST("/auth", authHandler.Handle)
	g.POST("/translate", translationHandler.Translate, session)
	g.GET("/history", historyHandler.List, session)
	g.POST("/history", historyHandler.Create, session)
	g.DELETE("/history", historyHandler.Delete, session)

	// --- Operational ---
	healthHandler := handler.NewHealthHandler(d.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
