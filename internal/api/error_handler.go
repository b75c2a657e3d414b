package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/polyglot/translator/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain errors
// to status codes and renders {"error": "<message>"}. Unexpected errors are
// logged and reported as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, bad auth header).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, "Invalid action"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusBadRequest, "User with this email or username already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, "Session expired"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrTranslationNotFound):
		return http.StatusNotFound, "Translation not found or access denied"
	case errors.Is(err, domain.ErrTranslationFailed):
		// Provider details stay in the log; the client gets a fixed message.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("translation failed")
		return http.StatusInternalServerError, "An error occurred during translation"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// validationMessage strips the sentinel prefix so clients see only the detail,
// e.g. "email is required".
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
	if msg == "" || msg == domain.ErrValidation.Error() {
		return "Invalid request"
	}
	return msg
}
