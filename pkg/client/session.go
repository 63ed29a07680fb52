package client

import "sync"

// Session holds the authenticated identity in memory. Nothing is ever
// persisted: a fresh process starts logged out and recovers through the
// refresh token if the caller still has one.
//
// Role, user id and username are derived exclusively from the current access
// token's payload on every mutation, never stored independently.
type Session struct {
	mu sync.RWMutex

	access   string
	refresh  string
	userID   string
	username string
	role     string
}

func NewSession() *Session {
	return &Session{}
}

// SetTokens replaces both tokens and re-derives the identity from the new
// access token
func (s *Session) SetTokens(access string, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh = refresh
	s.setAccessLocked(access)
}

// SetAccessToken replaces the access token only, keeping the refresh token.
// Used after a refresh, which reissues just the access part.
func (s *Session) SetAccessToken(access string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setAccessLocked(access)
}

// Clear drops the whole session. Called on logout and on unrecoverable
// refresh failure.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""
	s.userID = ""
	s.username = ""
	s.role = ""
}

func (s *Session) setAccessLocked(access string) {
	s.access = access
	s.userID = ""
	s.username = ""
	s.role = ""

	if claims := DecodeTokenPayload(access); claims != nil {
		s.userID = claims.UID
		s.username = claims.Sub
		s.role = claims.Role
	}
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Role is empty when logged out or when the access token carries no role
func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// LoggedIn reports whether an access token is present
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}
