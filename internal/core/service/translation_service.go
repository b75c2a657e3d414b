package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
	"github.com/polyglot/translator/internal/pkg/metrics"
)

const (
	detectionPrompt = "You are a language detection specialist. Your task is to identify the language of the provided text. Only respond with the language name in English, nothing else."
	translatePrompt = "You are a professional translator. Translate the following text from %s to %s. Only respond with the translated text, no explanations or additional comments."

	detectionTemperature = 0.1
	detectionMaxTokens   = 50
	translateTemperature = 0.3
	translateMaxTokens   = 1000
)

// TranslationService detects the source language and then translates, in two
// sequential model calls. Results are cached when a cache is configured.
type TranslationService struct {
	model    ports.LanguageModel
	cache    ports.TranslationCache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewTranslationService builds the service. cache may be nil.
func NewTranslationService(model ports.LanguageModel, cache ports.TranslationCache, cacheTTL time.Duration, log zerolog.Logger) *TranslationService {
	return &TranslationService{model: model, cache: cache, cacheTTL: cacheTTL, log: log}
}

func (s *TranslationService) Translate(ctx context.Context, text, targetLanguage string) (*domain.TranslationResult, error) {
	if text == "" || targetLanguage == "" {
		return nil, fmt.Errorf("%w: text and target language are required", domain.ErrValidation)
	}

	if cached := s.lookup(ctx, text, targetLanguage); cached != nil {
		return cached, nil
	}

	start := time.Now()
	result, err := s.translate(ctx, text, targetLanguage)
	if err != nil {
		metrics.TranslationsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("target_language", targetLanguage).Msg("translation failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrTranslationFailed, err)
	}
	metrics.TranslationDuration.Observe(time.Since(start).Seconds())
	metrics.TranslationsTotal.WithLabelValues("ok").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, text, targetLanguage, result, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache translation")
		}
	}

	s.log.Info().
		Str("source_language", result.SourceLanguage).
		Str("target_language", targetLanguage).
		Int("chars", len(text)).
		Msg("text translated")

	return result, nil
}

func (s *TranslationService) translate(ctx context.Context, text, targetLanguage string) (*domain.TranslationResult, error) {
	detected, err := s.model.Complete(ctx, ports.CompletionRequest{
		System:      detectionPrompt,
		User:        fmt.Sprintf("What language is this text written in: \"%s\"", text),
		Temperature: detectionTemperature,
		MaxTokens:   detectionMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("detect language: %w", err)
	}
	detected = strings.TrimSpace(detected)
	if detected == "" {
		detected = domain.UnknownLanguage
	}

	translated, err := s.model.Complete(ctx, ports.CompletionRequest{
		System:      fmt.Sprintf(translatePrompt, detected, targetLanguage),
		User:        text,
		Temperature: translateTemperature,
		MaxTokens:   translateMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	return &domain.TranslationResult{
		SourceLanguage: detected,
		TranslatedText: strings.TrimSpace(translated),
	}, nil
}

// lookup never fails the request; a broken cache is treated as a miss.
func (s *TranslationService) lookup(ctx context.Context, text, targetLanguage string) *domain.TranslationResult {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, text, targetLanguage)
	if err != nil {
		s.log.Warn().Err(err).Msg("translation cache lookup failed")
		metrics.TranslationCacheTotal.WithLabelValues("error").Inc()
		return nil
	}
	if cached == nil {
		metrics.TranslationCacheTotal.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.TranslationCacheTotal.WithLabelValues("hit").Inc()
	return cached
}
