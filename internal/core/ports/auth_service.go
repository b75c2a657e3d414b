package ports

import (
	"context"

	"github.com/polyglot/translator/internal/core/domain"
)

// AuthResult is returned by register and login.
type AuthResult struct {
	User      domain.PublicAccount
	SessionID string
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Verify(ctx context.Context, sessionID string) (*domain.PublicAccount, error)
}
