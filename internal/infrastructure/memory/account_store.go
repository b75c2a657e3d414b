package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/polyglot/translator/internal/core/domain"
)

// AccountStore keeps accounts for the lifetime of the process.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []*domain.Account
	byID     map[string]*domain.Account
	now      func() time.Time
}

func NewAccountStore() *AccountStore {
	return &AccountStore{byID: make(map[string]*domain.Account), now: time.Now}
}

// Create rejects the account when either its username or its email is already
// registered. The check and the insert happen under one lock.
func (s *AccountStore) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Username == account.Username || a.Email == account.Email {
			return nil, domain.ErrAccountExists
		}
	}

	stored := *account
	stored.ID = uuid.NewString()
	stored.CreatedAt = s.now().UTC()

	s.accounts = append(s.accounts, &stored)
	s.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (s *AccountStore) FindByIdentifier(_ context.Context, identifier string) ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Account
	for _, a := range s.accounts {
		if a.Matches(identifier) {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *AccountStore) FindByID(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

// Len returns the number of stored accounts.
func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
