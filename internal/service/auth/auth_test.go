package auth

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository/postgres"
	"github.com/codepioneers/recruiting/internal/testutil"
)

func Test_Auth(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	// Begin new db transaction and create new AuthService
	// Rollback transaction when test stops
	withTx := func(dbpool *pgxpool.Pool, cfg Config, t *testing.T, fn func(s *AuthService, users *postgres.UserRepo)) {
		testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
			userRepo := &postgres.UserRepo{DB: tx}
			refreshRepo := &postgres.RefreshTokenRepo{DB: tx}

			if cfg.SecretKey == "" {
				cfg.SecretKey = "test-secret-key"
			}

			s, err := NewService(cfg, userRepo, refreshRepo)
			require.NoError(t, err, "auth service couldn't be started")

			fn(s, userRepo)
		})
	}

	// seed an account the way signup does: hashed temp password, not yet changed
	seedUser := func(t *testing.T, users *postgres.UserRepo, username string, password string, changed bool, issuedAt time.Time) models.User {
		hash, err := DefaultHasher.Hash(password)
		require.NoError(t, err)

		user, err := users.CreateUser(t.Context(), models.User{
			Username:         username,
			Firstname:        "Test",
			Lastname:         "User",
			Email:            username + "@example.com",
			Role:             models.RoleUser,
			HashedPassword:   hash,
			PasswordChanged:  changed,
			PasswordIssuedAt: issuedAt,
		})
		require.NoError(t, err)
		return user
	}

	t.Run("Login", func(t *testing.T) {
		t.Run("existing user ok", func(t *testing.T) {
			withTx(pg.Pool, Config{}, t, func(s *AuthService, users *postgres.UserRepo) {
				seedUser(t, users, "nk", "pwd", true, time.Now())

				pair, user, err := s.Login(t.Context(), "nk", "pwd")

				require.NoError(t, err)
				require.NotEmpty(t, pair.Access.Value, "access token should not be empty")
				require.NotEmpty(t, pair.Refresh.Value, "refresh token should not be empty")
				require.Equal(t, "nk", user.Username)
			})
		})

		t.Run("fresh temporary password ok", func(t *testing.T) {
			withTx(pg.Pool, Config{}, t, func(s *AuthService, users *postgres.UserRepo) {
				seedUser(t, users, "nk", "temp-pwd", false, time.Now())

				_, user, err := s.Login(t.Context(), "nk", "temp-pwd")

				require.NoError(t, err)
				require.False(t, user.PasswordChanged, "caller learns the password still must be changed")
			})
		})

		t.Run("expired temporary password fails", func(t *testing.T) {
			withTx(pg.Pool, Config{TempPasswordTTL: time.Hour}, t, func(s *AuthService, users *postgres.UserRepo) {
				seedUser(t, users, "nk", "temp-pwd", false, time.Now().Add(-2*time.Hour))

				_, _, err := s.Login(t.Context(), "nk", "temp-pwd")

				require.ErrorIs(t, err, apperrors.ErrTemporaryPasswordExpired)
			})
		})

		t.Run("old password survives when changed", func(t *testing.T) {
			withTx(pg.Pool, Config{TempPasswordTTL: time.Hour}, t, func(s *AuthService, users *postgres.UserRepo) {
				seedUser(t, users, "nk", "pwd", true, time.Now().Add(-48*time.Hour))

				_, _, err := s.Login(t.Context(), "nk", "pwd")

				require.NoError(t, err, "temp password TTL only applies before the first change")
			})
		})

		tests := []struct {
			name     string
			username string
			password string
		}{
			{"wrong password", "nk", "wrong"},
			{"unknown user", "never-registered", "pwd"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				withTx(pg.Pool, Config{}, t, func(s *AuthService, users *postgres.UserRepo) {
					seedUser(t, users, "nk", "pwd", true, time.Now())

					_, _, err := s.Login(t.Context(), tt.username, tt.password)

					require.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "both cases answer the same error")
				})
			})
		}
	})

	t.Run("Refresh", func(t *testing.T) {
		t.Run("reissues access and keeps refresh usable", func(t *testing.T) {
			withTx(pg.Pool, Config{}, t, func(s *AuthService, users *postgres.UserRepo) {
				seedUser(t, users, "nk", "pwd", true, time.Now())
				pair, _, err := s.Login(t.Context(), "nk", "pwd")
				require.NoError(t, err)

				access, err := s.Refresh(t.Context(), pair.Refresh.Value)
				require.NoError(t, err)
				require.NotEmpty(t, access.Value)

				// The same refresh token works again, it is not consumed
				again, err := s.Refresh(t.Context(), pair.Refresh.Value)
				require.NoError(t, err)
				require.NotEmpty(t, again.Value)
			})
		})

		t.Run("unknown token fails", func(t *testing.T) {
			withTx(pg.Pool, Config{}, t, func(s *AuthService, users *postgres.UserRepo) {
				_, err := s.Refresh(t.Context(), "never-issued")

				require.ErrorIs(t, err, apperrors.ErrRefreshTokenNotFound)
			})
		})

		t.Run("expired token fails", func(t *testing.T) {
			withTx(pg.Pool, Config{RefreshTokenTTL: time.Second}, t, func(s *AuthService, users *postgres.UserRepo) {
				seedUser(t, users, "nk", "pwd", true, time.Now())
				pair, _, err := s.Login(t.Context(), "nk", "pwd")
				require.NoError(t, err)

				time.Sleep(time.Second)

				_, err = s.Refresh(t.Context(), pair.Refresh.Value)
				require.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
			})
		})
	})

	t.Run("Authenticate", func(t *testing.T) {
		t.Run("valid access token restores the user", func(t *testing.T) {
			withTx(pg.Pool, Config{}, t, func(s *AuthService, users *postgres.UserRepo) {
				created := seedUser(t, users, "nk", "pwd", true, time.Now())
				pair, _, err := s.Login(t.Context(), "nk", "pwd")
				require.NoError(t, err)

				user, err := s.Authenticate(t.Context(), pair.Access.Value)

				require.NoError(t, err)
				require.Equal(t, created.ID, user.ID)
			})
		})

		t.Run("garbage token fails", func(t *testing.T) {
			withTx(pg.Pool, Config{}, t, func(s *AuthService, users *postgres.UserRepo) {
				_, err := s.Authenticate(t.Context(), "garbage")

				require.ErrorIs(t, err, apperrors.ErrUnauthorized)
			})
		})

		t.Run("token signed with other key fails", func(t *testing.T) {
			withTx(pg.Pool, Config{SecretKey: "other-key"}, t, func(other *AuthService, users *postgres.UserRepo) {
				seedUser(t, users, "nk", "pwd", true, time.Now())
				pair, _, err := other.Login(t.Context(), "nk", "pwd")
				require.NoError(t, err)

				withTx(pg.Pool, Config{SecretKey: "test-secret-key"}, t, func(s *AuthService, _ *postgres.UserRepo) {
					_, err := s.Authenticate(t.Context(), pair.Access.Value)

					require.ErrorIs(t, err, apperrors.ErrUnauthorized)
				})
			})
		})
	})
}
