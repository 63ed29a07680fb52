// Package auth implements login and token refresh on top of the token manager
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
	"github.com/codepioneers/recruiting/internal/service/auth/tokenmanager"
)

const defaultTempPasswordTTL = 24 * time.Hour

type Config struct {
	// Secret key to sign user access token payload
	SecretKey string

	// Hasher used during login, bcrypt when not set
	Hasher PasswordHasher

	// Access and refresh token lifetimes
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// How long the auto-generated signup password stays usable
	TempPasswordTTL time.Duration
}

type AuthService struct {
	token  *tokenmanager.TokenManager
	hasher PasswordHasher
	users  repository.UserRepo

	tempPasswordTTL time.Duration
}

func NewService(cfg Config, users repository.UserRepo, refresh repository.RefreshTokenRepo) (*AuthService, error) {
	if users == nil || refresh == nil {
		return nil, errors.New("repos must not be nil")
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = DefaultHasher
	}

	if cfg.TempPasswordTTL == 0 {
		cfg.TempPasswordTTL = defaultTempPasswordTTL
	}

	token, err := tokenmanager.New(tokenmanager.Config{
		SecretKey:  cfg.SecretKey,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}, refresh)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		token:           token,
		hasher:          hasher,
		users:           users,
		tempPasswordTTL: cfg.TempPasswordTTL,
	}, nil
}

// Login checks the credentials and issues a token pair.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username string, password string) (models.TokenPair, models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		// Burn comparable time so unknown usernames don't answer faster
		_ = s.hasher.Compare("$2a$10$000000000000000000000u1r1czXiZYnhbOTQkP3Cdc0QEYTIdCPa", password)
		return models.TokenPair{}, user, apperrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return models.TokenPair{}, user, apperrors.ErrInvalidCredentials
	}

	// A temporary password only opens the door while it is fresh. Once expired
	// the user has to ask for a new one to be mailed.
	if !user.PasswordChanged && time.Since(user.PasswordIssuedAt) > s.tempPasswordTTL {
		return models.TokenPair{}, user, apperrors.ErrTemporaryPasswordExpired
	}

	pair, err := s.token.GeneratePair(ctx, user)
	if err != nil {
		return models.TokenPair{}, user, fmt.Errorf("token could not be generated. Err: %w", err)
	}

	return pair, user, nil
}

// Refresh reissues the access token for a still valid refresh token.
// The refresh token itself is left untouched, so the call may be repeated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (models.IssuedToken, error) {
	stored, err := s.token.ValidateRefresh(ctx, refreshToken)
	if err != nil {
		return models.IssuedToken{}, err
	}

	user, err := s.users.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("refresh token owner lookup failed. Err: %w", err)
	}

	return s.token.IssueAccess(user)
}

// Authenticate restores the user from a bearer access token
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	claims, err := s.token.ParseAccess(accessToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: token owner not found", apperrors.ErrUnauthorized)
	}

	return user, nil
}
