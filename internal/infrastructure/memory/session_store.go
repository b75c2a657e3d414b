package memory

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/pkg/metrics"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	sessionTokenBytes = 32
)

// SessionStore holds issued sessions in memory. Expired sessions stay in the
// map until Revoke or Sweep removes them.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store whose sessions live for ttl.
// If ttl <= 0, DefaultSessionTTL is used.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return NewSessionStoreWithClock(ttl, time.Now)
}

func NewSessionStoreWithClock(ttl time.Duration, now func() time.Time) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      now,
	}
}

func (s *SessionStore) Issue(_ context.Context, accountID string) (*domain.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &domain.Session{
		ID:        token,
		AccountID: accountID,
		CreatedAt: now.UTC(),
		ExpiresAt: now.Add(s.ttl).UTC(),
	}

	s.mu.Lock()
	s.sessions[token] = session
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsStored.Set(float64(n))
	out := *session
	return &out, nil
}

func (s *SessionStore) Revoke(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsStored.Set(float64(n))
	return nil
}

func (s *SessionStore) FindValid(_ context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || !session.ValidAt(s.now()) {
		return nil, domain.ErrSessionExpired
	}
	out := *session
	return &out, nil
}

// Sweep deletes every session whose expiry has passed and returns how many were removed.
func (s *SessionStore) Sweep(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for id, session := range s.sessions {
		if !session.ValidAt(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsStored.Set(float64(n))
	return removed, nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// newToken returns 256 bits from crypto/rand, hex encoded.
func newToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
