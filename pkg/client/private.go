package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
)

// Private is the authenticated client. Every call attaches the session's
// access token and, when the service answers 401, refreshes the token once
// and replays the request. A second 401 is returned to the caller as is.
type Private struct {
	pub     *Client
	session *Session

	bootstrapOnce sync.Once
}

func NewPrivate(baseURL string, session *Session, opts ...Option) *Private {
	return New(baseURL, opts...).WithSession(session)
}

// Session exposes the underlying session
func (p *Private) Session() *Session {
	return p.session
}

func (p *Private) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	return p.doRetry(ctx, method, path, query, body, out, false)
}

// doRetry carries the retried marker through the recovery path. The marker
// travels as a parameter so concurrent calls never share retry state.
func (p *Private) doRetry(ctx context.Context, method string, path string, query url.Values, body any, out any, retried bool) error {
	err := p.pub.do(ctx, method, path, query, body, out, "Bearer "+p.session.AccessToken())
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized || retried {
		return err
	}

	if refreshErr := p.Refresh(ctx); refreshErr != nil {
		// the original 401 is the caller's signal to re-authenticate
		return err
	}

	return p.doRetry(ctx, method, path, query, body, out, true)
}

// Refresh exchanges the stored refresh token for a new access token.
// The refresh token itself is not rotated and stays valid until it expires.
func (p *Private) Refresh(ctx context.Context) error {
	refresh := p.session.RefreshToken()
	if refresh == "" {
		return &APIError{Status: http.StatusUnauthorized, Key: "unauthorized"}
	}

	var result struct {
		AccessToken string `json:"accessToken"`
	}
	err := p.pub.do(ctx, http.MethodPost, "/auth/refresh", nil, map[string]string{
		"refreshToken": refresh,
	}, &result, "")
	if err != nil {
		return err
	}

	p.session.SetAccessToken(result.AccessToken)
	return nil
}

// Bootstrap restores a session at process start. It runs its attempt at most
// once for the lifetime of the client: when the session already holds an
// access token it is left alone, otherwise one refresh is tried and a failure
// clears the session for good. Safe to call from concurrent goroutines; all
// callers observe the same outcome.
func (p *Private) Bootstrap(ctx context.Context) {
	p.bootstrapOnce.Do(func() {
		if p.session.LoggedIn() {
			return
		}
		if err := p.Refresh(ctx); err != nil {
			p.session.Clear()
		}
	})
}

// Logout drops the session. The service keeps no per-session state beyond the
// refresh token, which simply expires.
func (p *Private) Logout() {
	p.session.Clear()
}
