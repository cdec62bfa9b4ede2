// Package session holds the client-side admin session state machine: login,
// restore, lockout-after-failed-attempts, and the countdown/extend lifecycle
// consumed by admin tooling.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

// State is the controller's lifecycle position.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
	StateLockedOut
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateLockedOut:
		return "locked_out"
	default:
		return "unknown"
	}
}

var (
	// ErrLockedOut rejects login attempts locally while the cooldown window runs;
	// no remote call is made in this state.
	ErrLockedOut = errors.New("too many failed attempts")
	// ErrNotAuthenticated guards session-only operations such as extend.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrStaleResponse marks a remote response that arrived after the session
	// generation moved on; the result was discarded, state is untouched.
	ErrStaleResponse = errors.New("stale response discarded")
)

// Identity is the authenticated admin view held by the controller.
type Identity struct {
	ID       uuid.UUID
	Username string
	Role     string
}

// Authenticator is the remote login/verify surface the controller talks to.
// Implementations are short-lived blocking calls; the controller never retries.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, Identity, error)
	Verify(ctx context.Context, token string) (Identity, error)
}

// TokenStore persists only the raw token string across restarts.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Config carries the controller's policy values. Zero fields fall back to the
// reference behavior: 30 min session window, 15 min extension, 3 attempts,
// 5 min lockout, 1 s tick.
type Config struct {
	SessionWindow   time.Duration
	ExtendIncrement time.Duration
	FailedThreshold int
	LockoutDuration time.Duration
	TickInterval    time.Duration
}

func (c Config) withDefaults() Config {
	if c.SessionWindow <= 0 {
		c.SessionWindow = 30 * time.Minute
	}
	if c.ExtendIncrement <= 0 {
		c.ExtendIncrement = 15 * time.Minute
	}
	if c.FailedThreshold <= 0 {
		c.FailedThreshold = 3
	}
	if c.LockoutDuration <= 0 {
		c.LockoutDuration = 5 * time.Minute
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	return c
}

// Controller owns all client-side session state. It is an explicit object
// handed to consumers; there is no package-level singleton.
type Controller struct {
	cfg    Config
	auth   Authenticator
	tokens TokenStore
	nowFn  func() time.Time

	// onExpire runs outside the lock after a deadline-driven auto-logout.
	onExpire func()

	mu              sync.Mutex
	state           State
	identity        Identity
	token           string
	failedAttempts  int
	lockoutDeadline time.Time
	sessionDeadline time.Time
	generation      uint64
}

// NewController builds an unauthenticated controller.
func NewController(auth Authenticator, tokens TokenStore, cfg Config) *Controller {
	return &Controller{
		cfg:    cfg.withDefaults(),
		auth:   auth,
		tokens: tokens,
		nowFn:  func() time.Time { return time.Now().UTC() },
		state:  StateUnauthenticated,
	}
}

// SetExpiryHandler registers a callback invoked after deadline-driven logout.
func (c *Controller) SetExpiryHandler(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpire = fn
}

// Login authenticates against the remote Authenticator. While locked out it
// fails locally without a remote call. Credential failures advance the
// failed-attempt counter; transport failures do not.
func (c *Controller) Login(ctx context.Context, username, password string) (Identity, error) {
	c.mu.Lock()
	now := c.nowFn()
	c.refreshLockoutLocked(now)
	if c.state == StateLockedOut {
		remaining := c.lockoutDeadline.Sub(now)
		c.mu.Unlock()
		return Identity{}, fmt.Errorf("%w: retry in %s", ErrLockedOut, remaining.Round(time.Second))
	}
	c.state = StateAuthenticating
	gen := c.generation
	c.mu.Unlock()

	token, identity, err := c.auth.Login(ctx, username, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// A logout (or a newer login) won the race; this result is obsolete.
		return Identity{}, ErrStaleResponse
	}

	if err != nil {
		if isCredentialFailure(err) {
			c.failedAttempts++
			if c.failedAttempts >= c.cfg.FailedThreshold {
				c.state = StateLockedOut
				c.lockoutDeadline = c.nowFn().Add(c.cfg.LockoutDuration)
				return Identity{}, fmt.Errorf("%w: retry in %s", ErrLockedOut, c.cfg.LockoutDuration)
			}
			c.state = StateUnauthenticated
			return Identity{}, err
		}
		c.state = StateUnauthenticated
		return Identity{}, err
	}

	c.becomeAuthenticatedLocked(token, identity)
	if c.tokens != nil {
		_ = c.tokens.Save(token)
	}
	return identity, nil
}

// Restore re-hydrates a session from a previously stored token. Verification
// failure discards the stored token; transport failure keeps it for a later
// retry decided by the caller.
func (c *Controller) Restore(ctx context.Context) (Identity, error) {
	if c.tokens == nil {
		return Identity{}, domain.ErrNoToken
	}
	token, err := c.tokens.Load()
	if err != nil || token == "" {
		return Identity{}, domain.ErrNoToken
	}

	c.mu.Lock()
	c.state = StateAuthenticating
	gen := c.generation
	c.mu.Unlock()

	identity, err := c.auth.Verify(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return Identity{}, ErrStaleResponse
	}

	if err != nil {
		c.state = StateUnauthenticated
		if errors.Is(err, domain.ErrNetwork) {
			return Identity{}, err
		}
		_ = c.tokens.Clear()
		return Identity{}, domain.ErrInvalidToken
	}

	c.becomeAuthenticatedLocked(token, identity)
	return identity, nil
}

// Logout discards the token and returns to the unauthenticated state. It also
// bumps the generation so in-flight remote responses are discarded.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logoutLocked()
}

// ExtendSession pushes the deadline out by the configured increment, additive
// to the previous deadline rather than reset-to-now.
func (c *Controller) ExtendSession() (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return time.Time{}, ErrNotAuthenticated
	}
	c.sessionDeadline = c.sessionDeadline.Add(c.cfg.ExtendIncrement)
	return c.sessionDeadline, nil
}

// SessionTimeRemaining derives the countdown from the stored deadline; it is
// never a decremented counter, so it survives clock pauses between ticks.
func (c *Controller) SessionTimeRemaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return 0
	}
	remaining := c.sessionDeadline.Sub(c.nowFn())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LockoutRemaining reports how long local login rejection still applies.
func (c *Controller) LockoutRemaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLockoutLocked(c.nowFn())
	if c.state != StateLockedOut {
		return 0
	}
	return c.lockoutDeadline.Sub(c.nowFn())
}

// State reports the current lifecycle position, applying lockout expiry first.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLockoutLocked(c.nowFn())
	return c.state
}

func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateAuthenticated
}

// CurrentIdentity returns the authenticated identity, if any.
func (c *Controller) CurrentIdentity() (Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return Identity{}, false
	}
	return c.identity, true
}

// FailedAttempts reports consecutive credential failures since the last success.
func (c *Controller) FailedAttempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLockoutLocked(c.nowFn())
	return c.failedAttempts
}

// Token returns the raw session token while authenticated, for bearer calls
// made by admin tooling.
func (c *Controller) Token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return "", false
	}
	return c.token, true
}

// Run drives the periodic tick until ctx is canceled. Deadlines are re-read at
// each tick, so an extend that lands between ticks always wins.
func (c *Controller) Run(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Tick applies deadline-driven transitions: lockout expiry and session expiry.
// Expiry behaves identically to an explicit logout.
func (c *Controller) Tick() {
	c.mu.Lock()
	now := c.nowFn()
	c.refreshLockoutLocked(now)

	var expired func()
	if c.state == StateAuthenticated && !now.Before(c.sessionDeadline) {
		c.logoutLocked()
		expired = c.onExpire
	}
	c.mu.Unlock()

	if expired != nil {
		expired()
	}
}

func (c *Controller) becomeAuthenticatedLocked(token string, identity Identity) {
	c.state = StateAuthenticated
	c.token = token
	c.identity = identity
	c.failedAttempts = 0
	c.lockoutDeadline = time.Time{}
	c.sessionDeadline = c.nowFn().Add(c.cfg.SessionWindow)
}

func (c *Controller) logoutLocked() {
	c.generation++
	c.state = StateUnauthenticated
	c.token = ""
	c.identity = Identity{}
	c.failedAttempts = 0
	c.lockoutDeadline = time.Time{}
	c.sessionDeadline = time.Time{}
	if c.tokens != nil {
		_ = c.tokens.Clear()
	}
}

// refreshLockoutLocked releases an expired lockout, clearing the attempt
// counter and any displayed error state.
func (c *Controller) refreshLockoutLocked(now time.Time) {
	if c.state == StateLockedOut && !now.Before(c.lockoutDeadline) {
		c.state = StateUnauthenticated
		c.failedAttempts = 0
		c.lockoutDeadline = time.Time{}
	}
}

// isCredentialFailure separates attempt-counting failures from retryable
// transport faults and server-side throttling.
func isCredentialFailure(err error) bool {
	return errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrMissingFields)
}
