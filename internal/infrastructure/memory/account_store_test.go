package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglot/translator/internal/core/domain"
)

func TestAccountStore_Create(t *testing.T) {
	s := NewAccountStore()

	a, err := s.Create(context.Background(), &domain.Account{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	b, err := s.Create(context.Background(), &domain.Account{Username: "bob", Email: "b@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAccountStore_Create_Conflicts(t *testing.T) {
	s := NewAccountStore()
	_, err := s.Create(context.Background(), &domain.Account{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"same email", "bob", "a@x.com"},
		{"same username", "alice", "other@x.com"},
		{"both", "alice", "a@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), &domain.Account{Username: tt.username, Email: tt.email})
			assert.ErrorIs(t, err, domain.ErrAccountExists)
			assert.Equal(t, 1, s.Len())
		})
	}

	// uniqueness is case-sensitive
	_, err = s.Create(context.Background(), &domain.Account{Username: "Alice", Email: "A@x.com"})
	assert.NoError(t, err)
}

func TestAccountStore_Create_Concurrent(t *testing.T) {
	s := NewAccountStore()

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Create(context.Background(), &domain.Account{
				Username: fmt.Sprintf("user-%d", i),
				Email:    "shared@x.com",
			})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, s.Len())
}

func TestAccountStore_FindByIdentifier(t *testing.T) {
	s := NewAccountStore()
	a, _ := s.Create(context.Background(), &domain.Account{Username: "alice", Email: "a@x.com"})

	byName, err := s.FindByIdentifier(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, a.ID, byName[0].ID)

	byEmail, err := s.FindByIdentifier(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	none, err := s.FindByIdentifier(context.Background(), "ALICE")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAccountStore_FindByIdentifier_ReturnsCopies(t *testing.T) {
	s := NewAccountStore()
	_, _ = s.Create(context.Background(), &domain.Account{Username: "alice", Email: "a@x.com"})

	found, _ := s.FindByIdentifier(context.Background(), "alice")
	found[0].Username = "mallory"

	again, _ := s.FindByIdentifier(context.Background(), "alice")
	require.Len(t, again, 1)
	assert.Equal(t, "alice", again[0].Username)
}

func TestAccountStore_FindByID(t *testing.T) {
	s := NewAccountStore()
	a, _ := s.Create(context.Background(), &domain.Account{Username: "alice", Email: "a@x.com"})

	got, err := s.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = s.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
