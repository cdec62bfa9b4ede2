package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

type fakeAuthenticator struct {
	mu          sync.Mutex
	loginCalls  int
	verifyCalls int
	loginErr    error
	verifyErr   error
	token       string
	identity    Identity
	loginGate   chan struct{}
}

func (f *fakeAuthenticator) Login(_ context.Context, _, _ string) (string, Identity, error) {
	f.mu.Lock()
	f.loginCalls++
	gate := f.loginGate
	err := f.loginErr
	token, identity := f.token, f.identity
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return "", Identity{}, err
	}
	return token, identity, nil
}

func (f *fakeAuthenticator) Verify(_ context.Context, _ string) (Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	if f.verifyErr != nil {
		return Identity{}, f.verifyErr
	}
	return f.identity, nil
}

func (f *fakeAuthenticator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginCalls
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestController(auth *fakeAuthenticator) (*Controller, *MemoryTokenStore, *fakeClock) {
	store := &MemoryTokenStore{}
	clock := newFakeClock()
	ctrl := NewController(auth, store, Config{})
	ctrl.nowFn = clock.Now
	return ctrl, store, clock
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{
		token:    "tok-1",
		identity: Identity{ID: uuid.New(), Username: "admin", Role: "admin"},
	}
	ctrl, store, _ := newTestController(auth)

	identity, err := ctrl.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if identity.Username != "admin" {
		t.Fatalf("identity.Username = %q, want admin", identity.Username)
	}
	if got := ctrl.State(); got != StateAuthenticated {
		t.Fatalf("State() = %v, want authenticated", got)
	}
	if stored, _ := store.Load(); stored != "tok-1" {
		t.Fatalf("stored token = %q, want tok-1", stored)
	}
	if remaining := ctrl.SessionTimeRemaining(); remaining != 30*time.Minute {
		t.Fatalf("SessionTimeRemaining() = %v, want 30m", remaining)
	}
}

func TestLoginLockoutAfterThreeFailures(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{loginErr: domain.ErrInvalidCredentials}
	ctrl, _, _ := newTestController(auth)

	for i := 1; i <= 2; i++ {
		_, err := ctrl.Login(context.Background(), "admin", "wrong")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: error = %v, want invalid credentials", i, err)
		}
		if got := ctrl.FailedAttempts(); got != i {
			t.Fatalf("attempt %d: FailedAttempts() = %d, want %d", i, got, i)
		}
	}

	_, err := ctrl.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrLockedOut) {
		t.Fatalf("third attempt: error = %v, want locked out", err)
	}
	if got := ctrl.State(); got != StateLockedOut {
		t.Fatalf("State() = %v, want locked_out", got)
	}

	// While locked out, login is rejected locally with no remote call.
	before := auth.calls()
	_, err = ctrl.Login(context.Background(), "admin", "right-this-time")
	if !errors.Is(err, ErrLockedOut) {
		t.Fatalf("locked attempt: error = %v, want locked out", err)
	}
	if after := auth.calls(); after != before {
		t.Fatalf("remote login calls = %d, want %d (no call while locked)", after, before)
	}
}

func TestLockoutExpiryResetsAttempts(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{loginErr: domain.ErrInvalidCredentials}
	ctrl, _, clock := newTestController(auth)

	for i := 0; i < 3; i++ {
		_, _ = ctrl.Login(context.Background(), "admin", "wrong")
	}
	if got := ctrl.State(); got != StateLockedOut {
		t.Fatalf("State() = %v, want locked_out", got)
	}

	clock.Advance(5*time.Minute + time.Second)

	if got := ctrl.State(); got != StateUnauthenticated {
		t.Fatalf("after cooldown: State() = %v, want unauthenticated", got)
	}
	if got := ctrl.FailedAttempts(); got != 0 {
		t.Fatalf("after cooldown: FailedAttempts() = %d, want 0", got)
	}

	auth.mu.Lock()
	auth.loginErr = nil
	auth.token = "tok-2"
	auth.identity = Identity{ID: uuid.New(), Username: "admin", Role: "admin"}
	auth.mu.Unlock()

	if _, err := ctrl.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("login after cooldown: error = %v", err)
	}
	if got := ctrl.State(); got != StateAuthenticated {
		t.Fatalf("State() = %v, want authenticated", got)
	}
}

func TestTransportFailureDoesNotCountAttempt(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{loginErr: fmt.Errorf("%w: connection refused", domain.ErrNetwork)}
	ctrl, _, _ := newTestController(auth)

	for i := 0; i < 5; i++ {
		_, err := ctrl.Login(context.Background(), "admin", "secret")
		if !errors.Is(err, domain.ErrNetwork) {
			t.Fatalf("error = %v, want network error", err)
		}
	}
	if got := ctrl.FailedAttempts(); got != 0 {
		t.Fatalf("FailedAttempts() = %d, want 0 after transport failures", got)
	}
	if got := ctrl.State(); got != StateUnauthenticated {
		t.Fatalf("State() = %v, want unauthenticated", got)
	}
}

func TestExtendSessionIsAdditive(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{token: "tok", identity: Identity{Username: "admin"}}
	ctrl, _, clock := newTestController(auth)

	if _, err := ctrl.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	clock.Advance(10 * time.Minute)
	if remaining := ctrl.SessionTimeRemaining(); remaining != 20*time.Minute {
		t.Fatalf("SessionTimeRemaining() = %v, want 20m", remaining)
	}

	if _, err := ctrl.ExtendSession(); err != nil {
		t.Fatalf("ExtendSession() error = %v", err)
	}
	if _, err := ctrl.ExtendSession(); err != nil {
		t.Fatalf("second ExtendSession() error = %v", err)
	}
	if remaining := ctrl.SessionTimeRemaining(); remaining != 50*time.Minute {
		t.Fatalf("after two extensions: SessionTimeRemaining() = %v, want 50m", remaining)
	}

	// Past the original 30 minute deadline but inside the extended one.
	clock.Advance(25 * time.Minute)
	ctrl.Tick()
	if got := ctrl.State(); got != StateAuthenticated {
		t.Fatalf("past original deadline: State() = %v, want authenticated", got)
	}
	if remaining := ctrl.SessionTimeRemaining(); remaining != 25*time.Minute {
		t.Fatalf("SessionTimeRemaining() = %v, want 25m", remaining)
	}
}

func TestExtendSessionRequiresAuthentication(t *testing.T) {
	t.Parallel()

	ctrl, _, _ := newTestController(&fakeAuthenticator{})
	if _, err := ctrl.ExtendSession(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("ExtendSession() error = %v, want not authenticated", err)
	}
}

func TestTickExpiresSession(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{token: "tok", identity: Identity{Username: "admin"}}
	ctrl, store, clock := newTestController(auth)

	expired := make(chan struct{}, 1)
	ctrl.SetExpiryHandler(func() { expired <- struct{}{} })

	if _, err := ctrl.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	clock.Advance(29 * time.Minute)
	ctrl.Tick()
	if got := ctrl.State(); got != StateAuthenticated {
		t.Fatalf("before deadline: State() = %v, want authenticated", got)
	}

	clock.Advance(time.Minute)
	ctrl.Tick()
	if got := ctrl.State(); got != StateUnauthenticated {
		t.Fatalf("past deadline: State() = %v, want unauthenticated", got)
	}
	select {
	case <-expired:
	default:
		t.Fatal("expiry handler was not invoked")
	}
	if stored, _ := store.Load(); stored != "" {
		t.Fatalf("stored token = %q, want discarded", stored)
	}
	if _, ok := ctrl.Token(); ok {
		t.Fatal("Token() still available after expiry")
	}
}

func TestCountdownDerivedFromDeadline(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{token: "tok", identity: Identity{Username: "admin"}}
	ctrl, _, clock := newTestController(auth)

	if _, err := ctrl.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// A large jump between ticks must be reflected fully, not one second per tick.
	clock.Advance(17 * time.Minute)
	if remaining := ctrl.SessionTimeRemaining(); remaining != 13*time.Minute {
		t.Fatalf("SessionTimeRemaining() = %v, want 13m", remaining)
	}

	clock.Advance(time.Hour)
	if remaining := ctrl.SessionTimeRemaining(); remaining != 0 {
		t.Fatalf("SessionTimeRemaining() = %v, want 0 when past deadline", remaining)
	}
}

func TestLogoutDiscardsInFlightLogin(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	auth := &fakeAuthenticator{
		token:     "tok",
		identity:  Identity{Username: "admin"},
		loginGate: gate,
	}
	ctrl, store, _ := newTestController(auth)

	result := make(chan error, 1)
	go func() {
		_, err := ctrl.Login(context.Background(), "admin", "secret")
		result <- err
	}()

	// Wait for the remote call to be in flight, then log out underneath it.
	for auth.calls() == 0 {
		time.Sleep(time.Millisecond)
	}
	ctrl.Logout()
	close(gate)

	if err := <-result; !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("in-flight login error = %v, want stale response", err)
	}
	if got := ctrl.State(); got != StateUnauthenticated {
		t.Fatalf("State() = %v, want unauthenticated", got)
	}
	if stored, _ := store.Load(); stored != "" {
		t.Fatalf("stored token = %q, want empty", stored)
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	t.Run("valid token re-authenticates with a fresh window", func(t *testing.T) {
		t.Parallel()
		auth := &fakeAuthenticator{identity: Identity{Username: "admin", Role: "admin"}}
		ctrl, store, _ := newTestController(auth)
		_ = store.Save("stored-tok")

		identity, err := ctrl.Restore(context.Background())
		if err != nil {
			t.Fatalf("Restore() error = %v", err)
		}
		if identity.Username != "admin" {
			t.Fatalf("identity.Username = %q, want admin", identity.Username)
		}
		if remaining := ctrl.SessionTimeRemaining(); remaining != 30*time.Minute {
			t.Fatalf("SessionTimeRemaining() = %v, want 30m", remaining)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()
		ctrl, _, _ := newTestController(&fakeAuthenticator{})
		if _, err := ctrl.Restore(context.Background()); !errors.Is(err, domain.ErrNoToken) {
			t.Fatalf("Restore() error = %v, want no token", err)
		}
	})

	t.Run("rejected token is discarded", func(t *testing.T) {
		t.Parallel()
		auth := &fakeAuthenticator{verifyErr: domain.ErrInvalidToken}
		ctrl, store, _ := newTestController(auth)
		_ = store.Save("dead-tok")

		if _, err := ctrl.Restore(context.Background()); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Restore() error = %v, want invalid token", err)
		}
		if stored, _ := store.Load(); stored != "" {
			t.Fatalf("stored token = %q, want discarded", stored)
		}
	})

	t.Run("transport failure keeps the stored token", func(t *testing.T) {
		t.Parallel()
		auth := &fakeAuthenticator{verifyErr: fmt.Errorf("%w: timeout", domain.ErrNetwork)}
		ctrl, store, _ := newTestController(auth)
		_ = store.Save("maybe-fine-tok")

		if _, err := ctrl.Restore(context.Background()); !errors.Is(err, domain.ErrNetwork) {
			t.Fatalf("Restore() error = %v, want network error", err)
		}
		if stored, _ := store.Load(); stored != "maybe-fine-tok" {
			t.Fatalf("stored token = %q, want kept", stored)
		}
	})
}

func TestSuccessfulLoginResetsFailedAttempts(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{loginErr: domain.ErrInvalidCredentials}
	ctrl, _, _ := newTestController(auth)

	for i := 0; i < 2; i++ {
		_, _ = ctrl.Login(context.Background(), "admin", "wrong")
	}
	if got := ctrl.FailedAttempts(); got != 2 {
		t.Fatalf("FailedAttempts() = %d, want 2", got)
	}

	auth.mu.Lock()
	auth.loginErr = nil
	auth.token = "tok"
	auth.identity = Identity{Username: "admin"}
	auth.mu.Unlock()

	if _, err := ctrl.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got := ctrl.FailedAttempts(); got != 0 {
		t.Fatalf("FailedAttempts() = %d, want 0 after success", got)
	}
}
