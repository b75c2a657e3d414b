package ports

import (
	"context"

	"github.com/polyglot/translator/internal/core/domain"
)

// SessionRepository issues and resolves bearer session tokens.
type SessionRepository interface {
	Issue(ctx context.Context, accountID string) (*domain.Session, error)
	// Revoke removes every session with the given id. Unknown ids are not an error.
	Revoke(ctx context.Context, sessionID string) error
	// FindValid returns domain.ErrSessionExpired when the session is unknown or past
	// its expiry. Expired records are left in place.
	FindValid(ctx context.Context, sessionID string) (*domain.Session, error)
}
