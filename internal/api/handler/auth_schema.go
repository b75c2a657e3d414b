package handler

import "github.com/polyglot/translator/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

const (
	actionRegister = "register"
	actionLogin    = "login"
	actionLogout   = "logout"
	actionVerify   = "verify"
)

// authRequest is the single body shape accepted by POST /api/auth; which
// fields are required depends on Action.
type authRequest struct {
	Action    string `json:"action"    example:"login"`
	Username  string `json:"username"  example:"alice"`
	Email     string `json:"email"     example:"a@x.com"`
	Password  string `json:"password"  example:"pw1"`
	SessionID string `json:"sessionId"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginRequest.Email holds either an email or a username.
type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type authResponse struct {
	Success   bool                  `json:"success"`
	User      *domain.PublicAccount `json:"user,omitempty"`
	SessionID string                `json:"sessionId,omitempty"`
}
