package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the single provisioned administrator identity.
// It is created at startup seeding and read-only afterwards; login only ever
// looks it up by exact, case-sensitive username.
type Admin struct {
	AdminID      uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoginAttempt records authentication outcomes for audit.
// Persisting these keeps the server-side lockout signal reconstructable even
// though the live counter is cache-backed.
type LoginAttempt struct {
	ID            int64
	Username      string
	AttemptAt     time.Time
	IPAddress     string
	Status        string
	FailureReason string
	UserAgent     string
}
