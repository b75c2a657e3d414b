package memory

import (
	"context"
	"sync"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/pkg/metrics"
)

const (
	DefaultHistoryRetention = 100
	anonymousWindow         = 10
)

// HistoryStore is an append-only log capped at retention entries; the oldest
// entries are dropped first.
type HistoryStore struct {
	mu        sync.RWMutex
	items     []*domain.Translation
	retention int
}

// NewHistoryStore creates a store keeping at most retention entries.
// If retention <= 0, DefaultHistoryRetention is used.
func NewHistoryStore(retention int) *HistoryStore {
	if retention <= 0 {
		retention = DefaultHistoryRetention
	}
	return &HistoryStore{retention: retention}
}

func (s *HistoryStore) Append(_ context.Context, t *domain.Translation) error {
	stored := *t

	s.mu.Lock()
	s.items = append(s.items, &stored)
	if over := len(s.items) - s.retention; over > 0 {
		s.items = append([]*domain.Translation(nil), s.items[over:]...)
	}
	n := len(s.items)
	s.mu.Unlock()

	metrics.HistoryEntries.Set(float64(n))
	return nil
}

// List returns copies of the owner's entries. Without an owner it returns the
// last anonymousWindow entries of the whole log.
func (s *HistoryStore) List(_ context.Context, ownerID string) ([]*domain.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.items
	if ownerID == "" && len(src) > anonymousWindow {
		src = src[len(src)-anonymousWindow:]
	}

	out := make([]*domain.Translation, 0, len(src))
	for _, t := range src {
		if ownerID != "" && t.UserID != ownerID {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (s *HistoryStore) Delete(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	kept := s.items[:0]
	removed := false
	for _, t := range s.items {
		if t.ID == id && (ownerID == "" || t.UserID == ownerID) {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	n := len(s.items)
	s.mu.Unlock()

	if !removed {
		return domain.ErrTranslationNotFound
	}
	metrics.HistoryEntries.Set(float64(n))
	return nil
}

// Len returns the number of stored entries.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
