// Package api is the typed HTTP client for the account system. It mirrors the
// server's /api/auth surface and attaches the bearer token set via
// SetAuthToken to every subsequent request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/vidstream/account-system/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// APIError is the normalized error for any non-2xx server response. Message
// carries the server-provided message verbatim. Transport failures are not
// wrapped in APIError; they propagate unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// AuthResult is the outcome of a successful login or register call.
type AuthResult struct {
	User    *domain.User
	Token   string
	Message string
}

// Client issues HTTP calls to the auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client for the server at baseURL (e.g.
// "http://localhost:4000").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL + "/api/auth",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SetAuthToken stores token as the default Authorization credential for all
// subsequent calls.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearAuthToken removes the default Authorization credential.
func (c *Client) ClearAuthToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// authEnvelope matches the server's signup/login response body.
type authEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

type userEnvelope struct {
	User *domain.User `json:"user"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authEnvelope
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp, "Failed to login"); err != nil {
		return nil, err
	}
	return &AuthResult{User: resp.User, Token: resp.Token, Message: resp.Message}, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	body := map[string]string{"username": username, "email": email, "password": password}

	var resp authEnvelope
	if err := c.do(ctx, http.MethodPost, "/signup", body, &resp, "Failed to register"); err != nil {
		return nil, err
	}
	return &AuthResult{User: resp.User, Token: resp.Token, Message: resp.Message}, nil
}

// GetUsers fetches all accounts (passwords excluded server-side).
func (c *Client) GetUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/login", nil, &users, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return users, nil
}

// CheckAuth resolves the current token to its account.
func (c *Client) CheckAuth(ctx context.Context) (*domain.User, error) {
	var resp userEnvelope
	if err := c.do(ctx, http.MethodGet, "/check-auth", nil, &resp, "Failed to check auth"); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Signout acknowledges signout with the server. The token stays valid until
// expiry; discarding it is the caller's responsibility.
func (c *Client) Signout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/signout", nil, nil, "Failed to sign out")
}

// do issues one request and decodes the response into out (when non-nil).
// Non-2xx responses become an *APIError carrying the server message, falling
// back to fallbackMsg when the body has none. Transport errors are returned
// as-is.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallbackMsg string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp, fallbackMsg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func normalizeError(resp *http.Response, fallbackMsg string) error {
	var envelope struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &envelope)

	msg := envelope.Message
	if msg == "" {
		msg = fallbackMsg
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
