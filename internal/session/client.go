package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

// Client implements Authenticator over the backend's HTTP auth endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an HTTP authenticator client. A nil httpClient gets a
// sane default timeout; the controller itself enforces none.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
	Error   string      `json:"error"`
}

func (c *Client) Login(ctx context.Context, username, password string) (string, Identity, error) {
	body, err := json.Marshal(loginPayload{Username: username, Password: password})
	if err != nil {
		return "", Identity{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", Identity{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", Identity{}, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer res.Body.Close()

	var parsed authResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", Identity{}, fmt.Errorf("%w: decode response: %v", domain.ErrNetwork, err)
	}

	if res.StatusCode != http.StatusOK {
		return "", Identity{}, mapLoginStatus(res.StatusCode, parsed.Error)
	}

	identity, err := toIdentity(parsed.User)
	if err != nil {
		return "", Identity{}, err
	}
	return parsed.Token, identity, nil
}

func (c *Client) Verify(ctx context.Context, token string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/verify", nil)
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer res.Body.Close()

	var parsed authResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return Identity{}, fmt.Errorf("%w: decode response: %v", domain.ErrNetwork, err)
	}

	if res.StatusCode != http.StatusOK {
		return Identity{}, domain.ErrInvalidToken
	}
	return toIdentity(parsed.User)
}

func mapLoginStatus(statusCode int, message string) error {
	switch statusCode {
	case http.StatusBadRequest:
		return domain.ErrMissingFields
	case http.StatusUnauthorized:
		return domain.ErrInvalidCredentials
	case http.StatusTooManyRequests:
		return domain.ErrAccountLocked
	default:
		if message == "" {
			message = "internal server error"
		}
		return fmt.Errorf("login failed: %s", message)
	}
}

func toIdentity(user userPayload) (Identity, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return Identity{}, fmt.Errorf("parse user id: %w", err)
	}
	return Identity{ID: id, Username: user.Username, Role: user.Role}, nil
}
