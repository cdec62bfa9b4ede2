package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrMissingFields signals login input rejected before any credential lookup.
	ErrMissingFields = errors.New("username and password are required")
	// ErrInvalidCredentials hides whether the username or the password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken collapses malformed, expired, and bad-signature tokens
	// into one verification failure; callers never learn which check failed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoToken is returned when a protected endpoint is called without a bearer token.
	ErrNoToken = errors.New("no token provided")
	// ErrAccountLocked signals temporary server-side lockout after repeated failed attempts.
	ErrAccountLocked = errors.New("account locked")
	// ErrNetwork marks transport-level failures. It is the only retryable
	// class; retry policy belongs to the caller, never to this core.
	ErrNetwork = errors.New("network error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict")
)
