package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
)

type HistoryService struct {
	repo ports.HistoryRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewHistoryService(repo ports.HistoryRepository, log zerolog.Logger) *HistoryService {
	return &HistoryService{repo: repo, now: time.Now, log: log}
}

func (s *HistoryService) Create(ctx context.Context, in ports.CreateTranslationInput) (*domain.Translation, error) {
	if in.OriginalText == "" || in.TranslatedText == "" || in.SourceLanguage == "" || in.TargetLanguage == "" {
		return nil, fmt.Errorf("%w: all translation fields are required", domain.ErrValidation)
	}

	t := &domain.Translation{
		ID:             uuid.NewString(),
		OriginalText:   in.OriginalText,
		TranslatedText: in.TranslatedText,
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		Timestamp:      s.now().UTC(),
		UserID:         in.UserID,
	}
	if err := s.repo.Append(ctx, t); err != nil {
		return nil, fmt.Errorf("append translation: %w", err)
	}

	s.log.Debug().Str("translation_id", t.ID).Str("user_id", t.UserID).Msg("translation recorded")
	return t, nil
}

func (s *HistoryService) List(ctx context.Context, ownerID string) ([]*domain.Translation, error) {
	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

func (s *HistoryService) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" {
		return fmt.Errorf("%w: translation ID is required", domain.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.log.Debug().Str("translation_id", id).Str("user_id", ownerID).Msg("translation deleted")
	return nil
}
