package domain

import "time"

// SessionState is the lifecycle state of a session as observed at a point in time.
type SessionState string

const (
	SessionActive  SessionState = "active"
	SessionExpired SessionState = "expired"
)

// Session binds an opaque bearer token to an account until ExpiresAt.
// Revoked sessions are removed from the store, so they have no state here.
type Session struct {
	ID        string    `json:"session_id"`
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StateAt reports the session state at now. The boundary instant counts as expired.
func (s *Session) StateAt(now time.Time) SessionState {
	if now.Before(s.ExpiresAt) {
		return SessionActive
	}
	return SessionExpired
}

// ValidAt reports whether the session is still active at now.
func (s *Session) ValidAt(now time.Time) bool {
	return s.StateAt(now) == SessionActive
}
