package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

func TestClientLogin(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case body["username"] == "" || body["password"] == "":
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "Username and password are required"})
		case body["password"] != "admin123":
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "Invalid credentials"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"token":   "issued-token",
				"user":    map[string]string{"id": adminID.String(), "username": "admin"},
			})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	token, identity, err := client.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "issued-token" {
		t.Fatalf("token = %q, want issued-token", token)
	}
	if identity.ID != adminID || identity.Username != "admin" {
		t.Fatalf("identity = %+v, want admin/%v", identity, adminID)
	}

	if _, _, err := client.Login(context.Background(), "admin", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want invalid credentials", err)
	}
	if _, _, err := client.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("empty fields error = %v, want missing fields", err)
	}
}

func TestClientLoginLockedOut(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "Too many failed attempts. Try again later."})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	if _, _, err := client.Login(context.Background(), "admin", "admin123"); !errors.Is(err, domain.ErrAccountLocked) {
		t.Fatalf("throttled login error = %v, want account locked", err)
	}
}

func TestClientTransportFailure(t *testing.T) {
	t.Parallel()

	// Nothing listens here; the dial itself fails.
	client := NewClient("http://127.0.0.1:1", nil)

	if _, _, err := client.Login(context.Background(), "admin", "admin123"); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("Login() error = %v, want network error", err)
	}
	if _, err := client.Verify(context.Background(), "tok"); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("Verify() error = %v, want network error", err)
	}
}

func TestClientVerify(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "Invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user":    map[string]string{"id": adminID.String(), "username": "admin", "role": "admin"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	identity, err := client.Verify(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.Role != "admin" {
		t.Fatalf("identity.Role = %q, want admin", identity.Role)
	}

	if _, err := client.Verify(context.Background(), "bad-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("bad token error = %v, want invalid token", err)
	}
}
