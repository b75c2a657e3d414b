package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/polyglot/translator/internal/core/domain"
)

const defaultCacheTTL = time.Hour

// TranslationCache stores finished translations in Redis.
// Key format: translation:<sha256(target_language "\x00" text)>
type TranslationCache struct {
	client redis.Cmdable
}

// NewTranslationCache creates a TranslationCache wrapping the given Redis client.
func NewTranslationCache(client redis.Cmdable) *TranslationCache {
	return &TranslationCache{client: client}
}

// Get returns (nil, nil) when nothing is cached for the pair.
func (c *TranslationCache) Get(ctx context.Context, text, targetLanguage string) (*domain.TranslationResult, error) {
	raw, err := c.client.Get(ctx, cacheKey(text, targetLanguage)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("translation cache get: %w", err)
	}

	var result domain.TranslationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("translation cache decode: %w", err)
	}
	return &result, nil
}

// Set caches result for ttl (defaultCacheTTL when ttl <= 0).
func (c *TranslationCache) Set(ctx context.Context, text, targetLanguage string, result *domain.TranslationResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("translation cache encode: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(text, targetLanguage), raw, ttl).Err(); err != nil {
		return fmt.Errorf("translation cache set: %w", err)
	}
	return nil
}

func cacheKey(text, targetLanguage string) string {
	sum := sha256.Sum256([]byte(targetLanguage + "\x00" + text))
	return "translation:" + hex.EncodeToString(sum[:])
}
