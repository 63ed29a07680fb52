package e2e

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository/postgres"
	"github.com/codepioneers/recruiting/internal/service/auth"
)

// CreateUser seeds an account with a known password straight in the db, so
// tests may log in through the http api without going through the mailed
// temporary password flow
func CreateUser(t *testing.T, tx pgx.Tx, username string, password string, role models.Role) models.User {
	t.Helper()

	hash, err := auth.DefaultHasher.Hash(password)
	require.NoError(t, err)

	user, err := (&postgres.UserRepo{DB: tx}).CreateUser(t.Context(), models.User{
		Username:         username,
		Firstname:        "Test",
		Lastname:         "User",
		Email:            username + "@example.com",
		Role:             role,
		HashedPassword:   hash,
		PasswordChanged:  true,
		PasswordIssuedAt: time.Now(),
	})
	require.NoError(t, err, "failed to seed user %q", username)
	return user
}
