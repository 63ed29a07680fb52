// Package client is the Go client for the recruiting platform API.
//
// The Client makes unauthenticated calls (login, signup, public job
// browsing). Private wraps it with a session and transparently refreshes
// the access token once when a request answers 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codepioneers/recruiting/internal/logger"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger enables diagnostics, discarded by default
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSession wraps the client into its authenticated counterpart
func (c *Client) WithSession(session *Session) *Private {
	return &Private{pub: c, session: session}
}

// do sends one JSON request and decodes the response into out (when out is
// not nil). Non-2xx responses are returned as *APIError carrying the message
// key from the error envelope.
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any, authorization string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Key: "unexpectedErrorOccurred"}

		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
			apiErr.Key = envelope.Message
		}

		c.logger.Debug("api error", "method", method, "path", path, "status", apiErr.Status, "key", apiErr.Key)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// LoginResult is the answer of a successful login
type LoginResult struct {
	UserID          string `json:"userId"`
	Username        string `json:"username"`
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken"`
	Role            string `json:"role"`
	PasswordChanged bool   `json:"passwordChanged"`
}

// Login authenticates and stores the issued tokens in the given session
func (c *Client) Login(ctx context.Context, session *Session, username string, password string) (LoginResult, error) {
	var result LoginResult

	err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"username": username,
		"password": password,
	}, &result, "")
	if err != nil {
		return result, err
	}

	session.SetTokens(result.AccessToken, result.RefreshToken)
	return result, nil
}

// SignupRequest registers a new applicant account.
// Birthdate uses the dd-MM-yyyy display format.
type SignupRequest struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Gender    string `json:"gender,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
}

// Signup creates an account; the temporary password arrives by email
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", nil, req, nil, "")
}

// ResendTempPassword asks for a fresh temporary password
func (c *Client) ResendTempPassword(ctx context.Context, username string) error {
	query := url.Values{"username": {username}}
	return c.do(ctx, http.MethodPost, "/auth/resend", query, nil, nil, "")
}
