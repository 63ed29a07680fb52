// Package user implements signup, employee management and profile updates
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/logger"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
	"github.com/codepioneers/recruiting/internal/service/auth"
	"github.com/codepioneers/recruiting/internal/service/mailer"
)

const tempPasswordLength = 12

type UserService struct {
	hasher auth.PasswordHasher
	users  repository.UserRepo
	mail   mailer.Mailer
	logger logger.Logger
}

func NewService(hasher auth.PasswordHasher, users repository.UserRepo, mail mailer.Mailer, l logger.Logger) *UserService {
	if hasher == nil {
		hasher = auth.DefaultHasher
	}
	if mail == nil {
		mail = mailer.NoOpMailer{}
	}
	if l == nil {
		l = logger.NewNoOpLogger()
	}

	return &UserService{
		hasher: hasher,
		users:  users,
		mail:   mail,
		logger: l,
	}
}

type SignupParams struct {
	Username  string
	Firstname string
	Lastname  string
	Email     string
	Gender    models.Gender
	Birthdate *time.Time
}

// Signup registers an applicant account. The password is auto-generated and
// mailed; the user must change it after the first login.
func (s *UserService) Signup(ctx context.Context, params SignupParams) (models.User, error) {
	return s.createWithTempPassword(ctx, models.User{
		Username:  params.Username,
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Email:     params.Email,
		Gender:    params.Gender,
		Birthdate: params.Birthdate,
		Role:      models.RoleUser,
	})
}

type CreateEmployeeParams struct {
	Username  string
	Firstname string
	Lastname  string
	Email     string
	Role      models.Role
}

// CreateEmployee registers a recruiter or admin account on behalf of an admin
func (s *UserService) CreateEmployee(ctx context.Context, params CreateEmployeeParams) (models.User, error) {
	return s.createWithTempPassword(ctx, models.User{
		Username:  params.Username,
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Email:     params.Email,
		Role:      params.Role,
	})
}

func (s *UserService) createWithTempPassword(ctx context.Context, user models.User) (models.User, error) {
	tempPassword, err := auth.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return user, err
	}

	hash, err := s.hasher.Hash(tempPassword)
	if err != nil {
		return user, fmt.Errorf("can't use this as password. Err: %w", err)
	}

	user.HashedPassword = hash
	user.PasswordChanged = false
	user.PasswordIssuedAt = time.Now()

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return created, err
	}

	// Mail delivery is best effort, the account exists either way and the
	// password may be resent
	if err := s.mail.SendTempPassword(ctx, created, tempPassword); err != nil {
		s.logger.Warn("temp password mail not sent", "username", created.Username, "error", err)
	}

	return created, nil
}

// ResendTempPassword replaces the user's password with a fresh temporary one
// and mails it
func (s *UserService) ResendTempPassword(ctx context.Context, username string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	tempPassword, err := auth.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(tempPassword)
	if err != nil {
		return fmt.Errorf("can't use this as password. Err: %w", err)
	}

	if err := s.users.SetPassword(ctx, user.ID, hash, false); err != nil {
		return err
	}

	if err := s.mail.SendTempPassword(ctx, user, tempPassword); err != nil {
		s.logger.Warn("temp password mail not sent", "username", user.Username, "error", err)
	}

	return nil
}

// ChangePassword sets a user chosen password and clears the temporary flag
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidPassword, err)
	}

	return s.users.SetPassword(ctx, userID, hash, true)
}

// UpdateProfile updates the user's own mutable fields
func (s *UserService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	return s.users.UpdateProfile(ctx, user)
}

func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

// ListApplicants returns every applicant account
func (s *UserService) ListApplicants(ctx context.Context) ([]models.User, error) {
	return s.users.ListByRoles(ctx, []models.Role{models.RoleUser})
}

// PagePrivileged pages recruiter and admin accounts
func (s *UserService) PagePrivileged(ctx context.Context, page models.PageRequest) (models.Page[models.User], error) {
	return s.users.PageByRoles(ctx, []models.Role{models.RoleRecruiter, models.RoleAdmin}, page)
}
