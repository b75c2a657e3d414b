package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglot/translator/internal/core/domain"
)

func TestCacheKey(t *testing.T) {
	k := cacheKey("hello", "German")

	assert.True(t, strings.HasPrefix(k, "translation:"))
	assert.Len(t, k, len("translation:")+64)
	assert.Equal(t, k, cacheKey("hello", "German"))
	assert.NotEqual(t, k, cacheKey("hello", "French"))
	assert.NotEqual(t, k, cacheKey("Germanhello", ""))
}

// Unreachable Redis surfaces as an error, never as a cached value.
func TestTranslationCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	cache := NewTranslationCache(client)

	got, err := cache.Get(context.Background(), "hello", "German")
	assert.Error(t, err)
	assert.Nil(t, got)

	err = cache.Set(context.Background(), "hello", "German", &domain.TranslationResult{SourceLanguage: "English", TranslatedText: "Hallo"}, time.Minute)
	require.Error(t, err)
}

func TestConfigOptions(t *testing.T) {
	opts := Config{Addr: "cache:6379", DB: 2}.options()
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, dialTimeout, opts.DialTimeout)
	assert.Equal(t, clientName, opts.ClientName)

	opts = Config{Timeout: time.Second}.options()
	assert.Equal(t, time.Second, opts.ReadTimeout)
}

func TestConnect_FailsFast(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 100 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
