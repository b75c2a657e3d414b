package ports

import (
	"context"
	"time"

	"github.com/polyglot/translator/internal/core/domain"
)

// CompletionRequest is a single system+user prompt sent to the language model.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// LanguageModel is the external chat completion provider.
type LanguageModel interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// TranslationCache stores finished translations keyed by text and target language.
type TranslationCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, text, targetLanguage string) (*domain.TranslationResult, error)
	Set(ctx context.Context, text, targetLanguage string, result *domain.TranslationResult, ttl time.Duration) error
}

type TranslationService interface {
	Translate(ctx context.Context, text, targetLanguage string) (*domain.TranslationResult, error)
}
