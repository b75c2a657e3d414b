// Package redis holds the Redis-backed adapters: the connection helper and the
// translation cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second
	clientName  = "translator"
)

// Config is the subset of connection settings the server exposes through
// REDIS_* variables.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds dialing, each command and the startup ping.
	// Zero means dialTimeout.
	Timeout time.Duration
}

func (c Config) options() *redis.Options {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = dialTimeout
	}
	return &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		ClientName:   clientName,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
}

// Connect opens a client and pings it once. The client is closed again when
// the ping fails, so callers only own it on success.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := cfg.options()
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
