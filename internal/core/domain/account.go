package domain

import "time"

// Account models a registered user of the translator.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicAccount is the only account shape that leaves the service layer.
type PublicAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the redacted view of the account.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
	}
}

// Matches reports whether identifier equals the account's email or username.
func (a *Account) Matches(identifier string) bool {
	return a.Email == identifier || a.Username == identifier
}
