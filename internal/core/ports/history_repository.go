package ports

import (
	"context"

	"github.com/polyglot/translator/internal/core/domain"
)

// HistoryRepository is a bounded log of past translations.
type HistoryRepository interface {
	Append(ctx context.Context, t *domain.Translation) error
	// List returns the owner's entries, or the most recent anonymous window when
	// ownerID is empty. Order is insertion order; sorting is the caller's job.
	List(ctx context.Context, ownerID string) ([]*domain.Translation, error)
	// Delete removes the entry with id. A non-empty ownerID restricts deletion to
	// entries owned by it. Returns domain.ErrTranslationNotFound if nothing was removed.
	Delete(ctx context.Context, id, ownerID string) error
}
