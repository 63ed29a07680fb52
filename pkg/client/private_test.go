package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// tokenServer answers /user/currentUser only for the token it currently
// considers valid and rotates that token on every /auth/refresh call
type tokenServer struct {
	mu          sync.Mutex
	validToken  string
	refreshed   atomic.Int32
	denyRefresh bool
}

func (s *tokenServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshed.Add(1)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if s.denyRefresh || body["refreshToken"] != "refresh-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
			return
		}

		s.mu.Lock()
		s.validToken = forgeToken(t, `{"sub":"nk","uid":"u-1","role":"USER"}`)
		token := s.validToken
		s.mu.Unlock()

		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": token})
	})

	mux.HandleFunc("GET /user/currentUser", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		valid := "Bearer " + s.validToken
		s.mu.Unlock()

		if s.validToken == "" || r.Header.Get("Authorization") != valid {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u-1", "username": "nk", "role": "USER"})
	})

	return mux
}

func Test_RetryAfterRefresh(t *testing.T) {
	t.Parallel()

	t.Run("expired access token is refreshed once and the call replayed", func(t *testing.T) {
		ts := &tokenServer{validToken: "server-side-current"}
		srv := httptest.NewServer(ts.handler(t))
		defer srv.Close()

		session := NewSession()
		session.SetTokens(forgeToken(t, `{"sub":"nk","uid":"u-1","role":"USER"}`), "refresh-1")

		p := NewPrivate(srv.URL, session)

		user, err := p.CurrentUser(t.Context())

		require.NoError(t, err)
		require.Equal(t, "nk", user.Username)
		require.Equal(t, int32(1), ts.refreshed.Load(), "exactly one refresh call")
	})

	t.Run("second 401 is returned to the caller", func(t *testing.T) {
		// refresh succeeds but the server never accepts any access token,
		// so the replay answers 401 again and the client gives up
		var refreshes, calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/refresh" {
				refreshes.Add(1)
				_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": forgeToken(t, `{"sub":"nk"}`)})
				return
			}
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
		}))
		defer srv.Close()

		session := NewSession()
		session.SetTokens("stale", "refresh-1")

		p := NewPrivate(srv.URL, session)

		_, err := p.CurrentUser(t.Context())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.Status)
		require.Equal(t, int32(2), calls.Load(), "original call plus one replay")
		require.Equal(t, int32(1), refreshes.Load())
	})

	t.Run("refresh failure propagates the original 401", func(t *testing.T) {
		ts := &tokenServer{validToken: "server-side-current", denyRefresh: true}
		srv := httptest.NewServer(ts.handler(t))
		defer srv.Close()

		session := NewSession()
		session.SetTokens("stale", "refresh-1")

		p := NewPrivate(srv.URL, session)

		_, err := p.CurrentUser(t.Context())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.Status)
		require.Equal(t, int32(1), ts.refreshed.Load(), "refresh tried once, no retry loop")
	})

	t.Run("no refresh token short circuits", func(t *testing.T) {
		ts := &tokenServer{}
		srv := httptest.NewServer(ts.handler(t))
		defer srv.Close()

		p := NewPrivate(srv.URL, NewSession())

		_, err := p.CurrentUser(t.Context())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.Status)
		require.Equal(t, int32(0), ts.refreshed.Load(), "no refresh call without a refresh token")
	})

	t.Run("non 401 errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "alreadyAppliedForThisJob"})
		}))
		defer srv.Close()

		session := NewSession()
		session.SetTokens(forgeToken(t, `{"sub":"nk","role":"USER"}`), "refresh-1")

		p := NewPrivate(srv.URL, session)

		_, err := p.Apply(t.Context(), "p-1")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "alreadyAppliedForThisJob", apiErr.Key)
		require.Equal(t, int32(1), calls.Load())
	})
}

func Test_Bootstrap(t *testing.T) {
	t.Parallel()

	t.Run("restores the session from the refresh token", func(t *testing.T) {
		ts := &tokenServer{}
		srv := httptest.NewServer(ts.handler(t))
		defer srv.Close()

		session := NewSession()
		session.SetTokens("", "refresh-1")

		p := NewPrivate(srv.URL, session)
		p.Bootstrap(t.Context())

		require.True(t, session.LoggedIn())
		require.Equal(t, "USER", session.Role())
	})

	t.Run("runs its attempt at most once", func(t *testing.T) {
		ts := &tokenServer{}
		srv := httptest.NewServer(ts.handler(t))
		defer srv.Close()

		session := NewSession()
		session.SetTokens("", "refresh-1")

		p := NewPrivate(srv.URL, session)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.Bootstrap(t.Context())
			}()
		}
		wg.Wait()

		require.Equal(t, int32(1), ts.refreshed.Load(), "concurrent bootstraps share one attempt")
		require.True(t, session.LoggedIn())
	})

	t.Run("logged in session is left alone", func(t *testing.T) {
		ts := &tokenServer{}
		srv := httptest.NewServer(ts.handler(t))
		defer srv.Close()

		session := NewSession()
		session.SetTokens(forgeToken(t, `{"sub":"nk","role":"USER"}`), "refresh-1")

		p := NewPrivate(srv.URL, session)
		p.Bootstrap(t.Context())

		require.Equal(t, int32(0), ts.refreshed.Load())
		require.True(t, session.LoggedIn())
	})

	t.Run("failed refresh clears the session terminally", func(t *testing.T) {
		ts := &tokenServer{denyRefresh: true}
		srv := httptest.NewServer(ts.handler(t))
		defer srv.Close()

		session := NewSession()
		session.SetTokens("", "refresh-1")

		p := NewPrivate(srv.URL, session)
		p.Bootstrap(t.Context())
		p.Bootstrap(t.Context())

		require.False(t, session.LoggedIn())
		require.Empty(t, session.RefreshToken())
		require.Equal(t, int32(1), ts.refreshed.Load(), "second bootstrap does not retry")
	})
}
