package models

import "errors"

// Common errors used across services and repositories.
var (
	// Users / auth
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")

	// Tokens
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")

	// Sessions / stories. Ownership mismatches surface as not-found on purpose
	// so session ids cannot be enumerated.
	ErrStoryNotFound    = errors.New("story not found")
	ErrScenarioNotFound = errors.New("scenario not found")

	// Validation
	ErrInvalidInput = errors.New("invalid input data")
)
