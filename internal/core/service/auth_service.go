package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
	"github.com/polyglot/translator/internal/pkg/metrics"
)

// AuthService implements registration, login, logout and session verification.
type AuthService struct {
	accounts   ports.AccountRepository
	sessions   ports.SessionRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionRepository, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{accounts: accounts, sessions: sessions, bcryptCost: bcryptCost, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*ports.AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return nil, s.fail("register", fmt.Errorf("%w: username, email and password are required", domain.ErrValidation))
	}

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), s.bcryptCost)
	if err != nil {
		return nil, s.fail("register", fmt.Errorf("hash password: %w", err))
	}

	account, err := s.accounts.Create(ctx, &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, s.fail("register", err)
	}

	result, err := s.openSession(ctx, account)
	if err != nil {
		return nil, s.fail("register", err)
	}

	s.log.Info().Str("account_id", account.ID).Str("username", account.Username).Msg("account registered")
	metrics.AuthOperationsTotal.WithLabelValues("register", "ok").Inc()
	return result, nil
}

// Login accepts either the email or the username as identifier.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.AuthResult, error) {
	if identifier == "" || password == "" {
		return nil, s.fail("login", fmt.Errorf("%w: email and password are required", domain.ErrValidation))
	}

	candidates, err := s.accounts.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, s.fail("login", err)
	}

	// Several accounts can match one identifier (alice's username may be bob's
	// email); the first whose hash verifies wins.
	var account *domain.Account
	for _, c := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), passwordDigest(password)) == nil {
			account = c
			break
		}
	}
	if account == nil {
		return nil, s.fail("login", domain.ErrInvalidCredentials)
	}

	result, err := s.openSession(ctx, account)
	if err != nil {
		return nil, s.fail("login", err)
	}

	s.log.Info().Str("account_id", account.ID).Msg("login succeeded")
	metrics.AuthOperationsTotal.WithLabelValues("login", "ok").Inc()
	return result, nil
}

// Logout is idempotent: revoking an unknown session succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return s.fail("logout", fmt.Errorf("%w: sessionId is required", domain.ErrValidation))
	}
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return s.fail("logout", err)
	}
	metrics.AuthOperationsTotal.WithLabelValues("logout", "ok").Inc()
	return nil
}

func (s *AuthService) Verify(ctx context.Context, sessionID string) (*domain.PublicAccount, error) {
	if sessionID == "" {
		return nil, s.fail("verify", fmt.Errorf("%w: sessionId is required", domain.ErrValidation))
	}

	session, err := s.sessions.FindValid(ctx, sessionID)
	if err != nil {
		return nil, s.fail("verify", err)
	}

	account, err := s.accounts.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, s.fail("verify", err)
	}

	metrics.AuthOperationsTotal.WithLabelValues("verify", "ok").Inc()
	pub := account.Public()
	return &pub, nil
}

func (s *AuthService) openSession(ctx context.Context, account *domain.Account) (*ports.AuthResult, error) {
	session, err := s.sessions.Issue(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	metrics.SessionsIssuedTotal.Inc()
	return &ports.AuthResult{User: account.Public(), SessionID: session.ID}, nil
}

// passwordDigest feeds bcrypt a fixed 44-byte input so secrets of any length
// hash without hitting its 72-byte limit.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// fail records the failed operation and passes err through unchanged.
func (s *AuthService) fail(action string, err error) error {
	reason := failureReason(err)
	metrics.AuthOperationsTotal.WithLabelValues(action, reason).Inc()
	if reason == "error" {
		s.log.Error().Err(err).Str("action", action).Msg("auth operation failed")
	} else {
		s.log.Debug().Err(err).Str("action", action).Msg("auth operation rejected")
	}
	return err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "invalid_request"
	case errors.Is(err, domain.ErrAccountExists):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrSessionExpired):
		return "session_expired"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	default:
		return "error"
	}
}
