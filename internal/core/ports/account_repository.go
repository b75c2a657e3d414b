package ports

import (
	"context"

	"github.com/polyglot/translator/internal/core/domain"
)

// AccountRepository stores accounts. Username and email are each unique.
type AccountRepository interface {
	// Create assigns ID and CreatedAt and inserts the account, or returns
	// domain.ErrAccountExists if the username or the email is taken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// FindByIdentifier returns accounts whose email or username equals identifier,
	// in insertion order.
	FindByIdentifier(ctx context.Context, identifier string) ([]*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
