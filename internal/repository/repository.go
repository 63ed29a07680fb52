// Package repository declares the storage interfaces the services depend on.
// The postgres subpackage is the production implementation.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/models"
)

// User repository interface
type UserRepo interface {
	// Create user
	// Returns apperrors.ErrUsernameExists or apperrors.ErrEmailExists on
	// unique violations, depending on the violated constraint
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// Get user by id or username
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// Update the mutable profile fields (names, username, email, gender, birthdate)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// Replace the password hash; changed marks whether the user picked it themselves
	SetPassword(ctx context.Context, userID uuid.UUID, hash string, changed bool) error

	// All users holding one of the given roles, ordered by creation time
	ListByRoles(ctx context.Context, roles []models.Role) ([]models.User, error)

	// Page of users holding one of the given roles
	PageByRoles(ctx context.Context, roles []models.Role, page models.PageRequest) (models.Page[models.User], error)
}

// RefreshToken repository interface
type RefreshTokenRepo interface {
	Save(ctx context.Context, token models.RefreshToken) error

	// Return the token only while it is still valid at the given instant.
	// Unknown token: apperrors.ErrRefreshTokenNotFound
	// Expired token: apperrors.ErrRefreshTokenExpired
	GetValid(ctx context.Context, tokenString string, at time.Time) (models.RefreshToken, error)
}

// ListPostingsOpts filters the posting listing; nil/empty fields are skipped
type ListPostingsOpts struct {
	Closed     *bool
	TitleQuery string
}

type JobPostingRepo interface {
	Create(ctx context.Context, posting models.JobPosting) (models.JobPosting, error)

	// Update all editable fields, apperrors.ErrJobPostingNotFound when missing
	Update(ctx context.Context, posting models.JobPosting) (models.JobPosting, error)

	Get(ctx context.Context, id uuid.UUID) (models.JobPosting, error)
	SetClosed(ctx context.Context, id uuid.UUID, closed bool) (models.JobPosting, error)
	List(ctx context.Context, opts ListPostingsOpts, page models.PageRequest) (models.Page[models.JobPosting], error)
}

// ApplicationFilter narrows the recruiter facing application listing.
// Zero values mean "no constraint".
type ApplicationFilter struct {
	FullName         string
	JobTitle         string
	Closed           *bool
	Status           models.ApplicationStatus
	ApplicantID      uuid.UUID
	JobApplicationID uuid.UUID
}

type ApplicationRepo interface {
	// Create application, apperrors.ErrAlreadyApplied when the user already
	// applied for the posting
	Create(ctx context.Context, app models.JobApplication) (models.JobApplication, error)

	Get(ctx context.Context, id uuid.UUID) (models.JobApplication, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (models.JobApplication, error)

	// Applications of one applicant joined with posting data
	PageByApplicant(ctx context.Context, applicantID uuid.UUID, page models.PageRequest) (models.Page[models.ApplicationRow], error)

	// Filtered listing across all applicants
	PageFiltered(ctx context.Context, filter ApplicationFilter, page models.PageRequest) (models.Page[models.ApplicationRow], error)
}

type WorkExperienceRepo interface {
	Create(ctx context.Context, exp models.WorkExperience) (models.WorkExperience, error)
	Update(ctx context.Context, exp models.WorkExperience) (models.WorkExperience, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (models.WorkExperience, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WorkExperience, error)
}

type EducationRepo interface {
	Create(ctx context.Context, edu models.Education) (models.Education, error)
	Update(ctx context.Context, edu models.Education) (models.Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (models.Education, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Education, error)
}

type SkillRepo interface {
	Create(ctx context.Context, skill models.Skill) (models.Skill, error)
	Update(ctx context.Context, skill models.Skill) (models.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (models.Skill, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Skill, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, project models.Project) (models.Project, error)
	Update(ctx context.Context, project models.Project) (models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (models.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
}

type EnglishLevelRepo interface {
	Create(ctx context.Context, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error)
	Update(ctx context.Context, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (models.ApplicantEnglishLevel, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ApplicantEnglishLevel, error)
}

// Storage aggregates all repositories backed by the same connection
type Storage interface {
	User() UserRepo
	Refresh() RefreshTokenRepo
	JobPosting() JobPostingRepo
	Application() ApplicationRepo
	WorkExperience() WorkExperienceRepo
	Education() EducationRepo
	Skill() SkillRepo
	Project() ProjectRepo
	EnglishLevel() EnglishLevelRepo

	// Run fn within a transaction; rollback on error
	InTx(ctx context.Context, fn func(Storage) error) error
}
