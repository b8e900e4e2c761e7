package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Authenticator defines the auth service surface consumed by the UI.
// Implemented by *Client; fakes implement it in tests.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (*User, error)
	Register(ctx context.Context, reg Registration) (*User, error)
	VerifyToken(ctx context.Context, token string) (*User, error)
}

var _ Authenticator = (*Client)(nil)

// Client talks to the dummyjson-style auth service. Unlike the catalog
// client, failures here surface as errors with human-readable messages that
// the UI shows on the form.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

const (
	requestTimeout   = 10 * time.Second
	defaultUserAgent = "streambox/0.1"

	// sessionMinutes is passed to the login endpoint as the requested
	// token lifetime.
	sessionMinutes = 30

	genericNetworkError = "Network error. Please check your connection."
	genericLoginError   = "Login failed. Please check your credentials."
	genericSignupError  = "Registration failed. Please try again."
)

// NewClient builds an auth Client for the given service base URL.
func NewClient(baseURL string, logger *zap.Logger) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("auth base URL is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse auth base %q: %w", baseURL, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    logger,
	}, nil
}

// userPayload mirrors the provider's auth responses. The session token
// arrives as accessToken on newer API versions and token on older ones.
type userPayload struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	Image       string `json:"image"`
	AccessToken string `json:"accessToken"`
	Token       string `json:"token"`
}

func (p userPayload) toUser() *User {
	token := p.AccessToken
	if token == "" {
		token = p.Token
	}
	return &User{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
		Image:     p.Image,
		Token:     token,
	}
}

// errorPayload mirrors the provider's error bodies.
type errorPayload struct {
	Message string `json:"message"`
}

// Login authenticates the user and returns the normalized account with its
// session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*User, error) {
	body := map[string]any{
		"username":      strings.TrimSpace(creds.Username),
		"password":      creds.Password,
		"expiresInMins": sessionMinutes,
	}
	var payload userPayload
	if err := c.post(ctx, "/auth/login", body, &payload, genericLoginError); err != nil {
		return nil, err
	}
	return payload.toUser(), nil
}

// Register creates a new account. The provider's add-user endpoint does not
// return a usable session token, so the returned user carries a synthesized
// stub token that downstream code can recognize via IsStubToken. This is a
// known stand-in for a missing backend capability, not a credential.
func (c *Client) Register(ctx context.Context, reg Registration) (*User, error) {
	body := map[string]any{
		"firstName": strings.TrimSpace(reg.FirstName),
		"lastName":  strings.TrimSpace(reg.LastName),
		"email":     strings.TrimSpace(reg.Email),
		"username":  strings.TrimSpace(reg.Username),
		"password":  reg.Password,
	}
	var payload userPayload
	if err := c.post(ctx, "/users/add", body, &payload, genericSignupError); err != nil {
		return nil, err
	}
	user := payload.toUser()
	if user.Token == "" {
		user.Token = NewStubToken()
	}
	return user, nil
}

// VerifyToken revalidates a session token against the auth service. Stub
// tokens are rejected client-side; they were never issued by the service.
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	if IsStubToken(token) {
		return nil, fmt.Errorf("stub session token cannot be verified")
	}
	reqURL := c.baseURL.JoinPath("/auth/me")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed: status %d", resp.StatusCode)
	}
	var payload userPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode verification response: %w", err)
	}
	return payload.toUser(), nil
}

// post sends a JSON body and decodes the response. HTTP error statuses are
// converted to the message carried in the error body when one is present,
// else to the provided generic message. Transport failures always map to the
// generic network message; the wrapped cause goes to the log.
func (c *Client) post(ctx context.Context, path string, body any, dest any, genericMsg string) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("auth request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s", genericNetworkError)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var errBody errorPayload
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && strings.TrimSpace(errBody.Message) != "" {
			return fmt.Errorf("%s", errBody.Message)
		}
		return fmt.Errorf("%s", genericMsg)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.logger.Warn("auth response malformed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s", genericNetworkError)
	}
	return nil
}
