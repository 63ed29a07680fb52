// Package application implements applying for postings and reviewing
// applications
package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/logger"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
	"github.com/codepioneers/recruiting/internal/service/mailer"
)

type ApplicationService struct {
	storage repository.Storage
	mail    mailer.Mailer
	logger  logger.Logger
}

func NewService(storage repository.Storage, mail mailer.Mailer, l logger.Logger) *ApplicationService {
	if mail == nil {
		mail = mailer.NoOpMailer{}
	}
	if l == nil {
		l = logger.NewNoOpLogger()
	}

	return &ApplicationService{
		storage: storage,
		mail:    mail,
		logger:  l,
	}
}

// Apply creates a pending application with the fit score computed from the
// applicant's current profile
func (s *ApplicationService) Apply(ctx context.Context, applicantID uuid.UUID, jobPostingID uuid.UUID) (models.JobApplication, error) {
	var created models.JobApplication

	err := s.storage.InTx(ctx, func(store repository.Storage) error {
		posting, err := store.JobPosting().Get(ctx, jobPostingID)
		if err != nil {
			return err
		}
		if posting.Closed {
			return apperrors.ErrJobPostingClosed
		}

		profile, err := loadProfile(ctx, store, applicantID)
		if err != nil {
			return err
		}

		created, err = store.Application().Create(ctx, models.JobApplication{
			JobPostingID: jobPostingID,
			ApplicantID:  applicantID,
			Status:       models.ApplicationPending,
			Score:        ComputeScore(posting, profile, time.Now()),
		})
		return err
	})

	return created, err
}

// ChangeStatus accepts or rejects an application and notifies the applicant
func (s *ApplicationService) ChangeStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (models.JobApplication, error) {
	updated, err := s.storage.Application().SetStatus(ctx, id, status)
	if err != nil {
		return updated, err
	}

	// Everything needed for the mail is in the filtered row
	page, err := s.storage.Application().PageFiltered(ctx,
		repository.ApplicationFilter{JobApplicationID: id},
		models.PageRequest{Size: 1},
	)
	if err != nil || len(page.Content) == 0 {
		s.logger.Warn("status mail skipped, application row not loaded", "applicationID", id, "error", err)
		return updated, nil
	}

	row := page.Content[0]
	if err := s.mail.SendApplicationStatus(ctx, row.Email, row.FullName, row.JobTitle, status); err != nil {
		s.logger.Warn("status mail not sent", "applicationID", id, "error", err)
	}

	return updated, nil
}

// MyApplications pages the applicant's own applications
func (s *ApplicationService) MyApplications(ctx context.Context, applicantID uuid.UUID, page models.PageRequest) (models.Page[models.ApplicationRow], error) {
	return s.storage.Application().PageByApplicant(ctx, applicantID, page)
}

// Filter pages applications across all applicants for review
func (s *ApplicationService) Filter(ctx context.Context, filter repository.ApplicationFilter, page models.PageRequest) (models.Page[models.ApplicationRow], error) {
	return s.storage.Application().PageFiltered(ctx, filter, page)
}

func loadProfile(ctx context.Context, store repository.Storage, userID uuid.UUID) (Profile, error) {
	var profile Profile
	var err error

	if profile.Experiences, err = store.WorkExperience().ListByUser(ctx, userID); err != nil {
		return profile, err
	}
	if profile.Educations, err = store.Education().ListByUser(ctx, userID); err != nil {
		return profile, err
	}
	if profile.Skills, err = store.Skill().ListByUser(ctx, userID); err != nil {
		return profile, err
	}
	if profile.EnglishLevels, err = store.EnglishLevel().ListByUser(ctx, userID); err != nil {
		return profile, err
	}

	return profile, nil
}
