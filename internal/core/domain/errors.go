package domain

import "errors"

var (
	ErrAccountExists       = errors.New("user with this email or username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionExpired      = errors.New("session expired")
	ErrAccountNotFound     = errors.New("user not found")
	ErrValidation          = errors.New("validation failed")
	ErrInvalidAction       = errors.New("invalid action")
	ErrTranslationNotFound = errors.New("translation not found or access denied")
	ErrTranslationFailed   = errors.New("an error occurred during translation")
)
