package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xviridev-art/Portofolio/internal/domain"
	"github.com/xviridev-art/Portofolio/internal/ports"
)

// Login validates admin credentials, enforces server-side lockout, and issues
// a signed session token. Unknown-username and wrong-password failures are
// deliberately indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return LoginResponse{}, domain.ErrMissingFields
	}
	// The lookup is exact and case-sensitive; "admin " is not "admin".
	username := req.Username

	lockKey := "login:" + username
	if s.cfg.ServerLockoutEnabled {
		lockState, err := s.lockouts.Get(ctx, lockKey)
		if err == nil && lockState.LockedUntil != nil && lockState.LockedUntil.After(s.nowFn()) {
			slog.Default().WarnContext(ctx, "login lockout active",
				"service", serviceName,
				"module", "application",
				"operation", "login",
				"outcome", "blocked",
				"username", username,
				"locked_until", lockState.LockedUntil,
			)
			return LoginResponse{}, domain.ErrAccountLocked
		}
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		s.recordFailure(ctx, req, "ADMIN_NOT_FOUND")
		s.recordLockoutFailure(ctx, lockKey)
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(admin.PasswordHash, req.Password); err != nil {
		s.recordFailure(ctx, req, "INVALID_PASSWORD")
		s.recordLockoutFailure(ctx, lockKey)
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	if s.cfg.ServerLockoutEnabled {
		_ = s.lockouts.Clear(ctx, lockKey)
	}

	now := s.nowFn()
	_ = s.loginAttempts.Insert(ctx, domain.LoginAttempt{
		Username:  username,
		AttemptAt: now,
		IPAddress: req.IPAddress,
		Status:    "SUCCESS",
		UserAgent: req.UserAgent,
	})

	token, err := s.tokenSigner.Sign(ports.AuthClaims{
		AdminID:   admin.AdminID,
		Username:  admin.Username,
		Role:      "admin",
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token: token,
		Admin: AdminView{ID: admin.AdminID, Username: admin.Username},
	}, nil
}

// VerifyToken validates signature and expiry of a bearer token and returns
// the embedded identity for session re-hydration.
func (s *Service) VerifyToken(_ context.Context, token string) (AdminView, error) {
	if strings.TrimSpace(token) == "" {
		return AdminView{}, domain.ErrNoToken
	}
	claims, err := s.tokenSigner.ParseAndValidate(token)
	if err != nil {
		return AdminView{}, domain.ErrInvalidToken
	}
	return AdminView{
		ID:       claims.AdminID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// LoginHistory returns recent login attempts, newest first.
func (s *Service) LoginHistory(ctx context.Context, limit int) ([]domain.LoginAttempt, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.loginAttempts.ListRecent(ctx, limit)
}

// recordFailure stores failed login context for audit.
func (s *Service) recordFailure(ctx context.Context, req LoginRequest, reason string) {
	if err := s.loginAttempts.Insert(ctx, domain.LoginAttempt{
		Username:      req.Username,
		AttemptAt:     s.nowFn(),
		IPAddress:     req.IPAddress,
		Status:        "FAILED",
		FailureReason: reason,
		UserAgent:     req.UserAgent,
	}); err != nil {
		slog.Default().WarnContext(ctx, "failed to persist login attempt",
			"service", serviceName,
			"module", "application",
			"operation", "record_login_failure",
			"outcome", "failure",
			"reason", reason,
			"error", err,
		)
	}
}

// recordLockoutFailure advances the cache-backed failure counter.
// Lockout state unavailability never turns a credential failure into a 500.
func (s *Service) recordLockoutFailure(ctx context.Context, lockKey string) {
	if !s.cfg.ServerLockoutEnabled {
		return
	}
	if _, err := s.lockouts.RecordFailure(ctx, lockKey, s.nowFn(), s.cfg.FailedLoginThreshold, s.cfg.LockoutDuration); err != nil {
		slog.Default().WarnContext(ctx, "failed to update lockout state",
			"service", serviceName,
			"module", "application",
			"operation", "login",
			"outcome", "warning",
			"error", err,
		)
	}
}
