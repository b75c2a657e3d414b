package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/polyglot/translator/internal/core/domain"
)

// SessionVerifier resolves a session token to the account that owns it.
type SessionVerifier interface {
	Verify(ctx context.Context, sessionID string) (*domain.PublicAccount, error)
}

// Session reads an optional "Authorization: Bearer <sessionId>" header and
// injects the owning account into the context as "user_id" and "username".
// Requests without the header pass through untouched.
func Session(verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Anonymous requests are allowed; handlers fall back to the body's userId.
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := verifier.Verify(c.Request().Context(), strings.TrimSpace(parts[1]))
			switch {
			case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrAccountNotFound):
				return domain.ErrSessionExpired
			case err != nil:
				return err
			}

			// Handlers read these through ctxUserID.
			c.Set("user_id", user.ID)
			c.Set("username", user.Username)
			return next(c)
		}
	}
}
