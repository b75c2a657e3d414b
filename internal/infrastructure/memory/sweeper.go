package memory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/polyglot/translator/internal/pkg/metrics"
)

// Sweepable is a store that can drop its expired entries.
type Sweepable interface {
	Sweep(ctx context.Context) (int, error)
}

// Sweeper periodically removes expired sessions so memory stays bounded.
type Sweeper struct {
	store    Sweepable
	interval time.Duration
	log      zerolog.Logger
}

func NewSweeper(store Sweepable, interval time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{store: store, interval: interval, log: log}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
// A non-positive interval disables sweeping.
func (s *Sweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.log.Info().Msg("session sweeper disabled")
		return
	}
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) int {
	removed, err := s.store.Sweep(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("session sweep failed")
		return 0
	}
	if removed > 0 {
		metrics.SessionsSweptTotal.Add(float64(removed))
		s.log.Debug().Int("removed", removed).Msg("expired sessions swept")
	}
	return removed
}
