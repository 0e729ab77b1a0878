package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Identity mirrors the server's decoded token subject.
type Identity struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Role strings as they appear on the wire.
const (
	RoleAdmin       = "ADMIN"
	RoleSalesperson = "SALESPERSON"
	RoleDistributor = "DISTRIBUTOR"
)

// SignUpProfile carries the fields required by POST /api/auth/signup.
type SignUpProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResult is the successful response of both auth endpoints.
type AuthResult struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// API is the remote authenticator the store signs in against.
type API interface {
	SignIn(ctx context.Context, email, password string) (AuthResult, error)
	SignUp(ctx context.Context, profile SignUpProfile) (AuthResult, error)
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is the default HTTP implementation of API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Client for the given base URL (e.g. "http://localhost:8080").
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	return c.post(ctx, "/api/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) SignUp(ctx context.Context, profile SignUpProfile) (AuthResult, error) {
	return c.post(ctx, "/api/auth/signup", profile)
}

func (c *Client) post(ctx context.Context, path string, body any) (AuthResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return AuthResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return AuthResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return AuthResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return AuthResult{}, &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	var result AuthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return AuthResult{}, fmt.Errorf("decode auth response: %w", err)
	}
	return result, nil
}
