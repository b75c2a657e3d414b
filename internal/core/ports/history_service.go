package ports

import (
	"context"

	"github.com/polyglot/translator/internal/core/domain"
)

// CreateTranslationInput carries the fields of a new history entry.
type CreateTranslationInput struct {
	OriginalText   string
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
	UserID         string // optional
}

type HistoryService interface {
	Create(ctx context.Context, input CreateTranslationInput) (*domain.Translation, error)
	// List returns entries newest first.
	List(ctx context.Context, ownerID string) ([]*domain.Translation, error)
	Delete(ctx context.Context, id, ownerID string) error
}
