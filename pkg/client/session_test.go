package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Session(t *testing.T) {
	t.Parallel()

	t.Run("login derives identity from token", func(t *testing.T) {
		s := NewSession()
		require.False(t, s.LoggedIn())

		s.SetTokens(forgeToken(t, `{"sub":"maria","uid":"u-1","role":"ADMIN"}`), "refresh-1")

		require.True(t, s.LoggedIn())
		require.Equal(t, "maria", s.Username())
		require.Equal(t, "u-1", s.UserID())
		require.Equal(t, "ADMIN", s.Role())
		require.Equal(t, "refresh-1", s.RefreshToken())
	})

	t.Run("refresh keeps the refresh token", func(t *testing.T) {
		s := NewSession()
		s.SetTokens(forgeToken(t, `{"sub":"maria","uid":"u-1","role":"ADMIN"}`), "refresh-1")

		s.SetAccessToken(forgeToken(t, `{"sub":"maria","uid":"u-1","role":"RECRUITER"}`))

		require.Equal(t, "refresh-1", s.RefreshToken())
		require.Equal(t, "RECRUITER", s.Role(), "identity follows the current access token")
	})

	t.Run("undecodable token clears identity but keeps login", func(t *testing.T) {
		s := NewSession()
		s.SetTokens("opaque-not-a-jwt", "refresh-1")

		require.True(t, s.LoggedIn())
		require.Empty(t, s.Role())
		require.Empty(t, s.Username())
	})

	t.Run("clear drops everything", func(t *testing.T) {
		s := NewSession()
		s.SetTokens(forgeToken(t, `{"sub":"maria","uid":"u-1","role":"ADMIN"}`), "refresh-1")

		s.Clear()

		require.False(t, s.LoggedIn())
		require.Empty(t, s.AccessToken())
		require.Empty(t, s.RefreshToken())
		require.Empty(t, s.UserID())
		require.Empty(t, s.Username())
		require.Empty(t, s.Role())
	})
}
