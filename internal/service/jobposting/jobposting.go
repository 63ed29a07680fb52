// Package jobposting implements posting management and public browsing
package jobposting

import (
	"context"

	"github.com/google/uuid"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
)

type JobPostingService struct {
	postings repository.JobPostingRepo
}

func NewService(postings repository.JobPostingRepo) *JobPostingService {
	return &JobPostingService{postings: postings}
}

// Create stores a new posting after the location rule check
func (s *JobPostingService) Create(ctx context.Context, posting models.JobPosting) (models.JobPosting, error) {
	if err := checkLocation(posting); err != nil {
		return models.JobPosting{}, err
	}
	return s.postings.Create(ctx, posting)
}

// Edit replaces every editable field of an existing posting
func (s *JobPostingService) Edit(ctx context.Context, posting models.JobPosting) (models.JobPosting, error) {
	if err := checkLocation(posting); err != nil {
		return models.JobPosting{}, err
	}
	return s.postings.Update(ctx, posting)
}

func (s *JobPostingService) Get(ctx context.Context, id uuid.UUID) (models.JobPosting, error) {
	return s.postings.Get(ctx, id)
}

// ChangeStatus opens or closes a posting
func (s *JobPostingService) ChangeStatus(ctx context.Context, id uuid.UUID, closed bool) (models.JobPosting, error) {
	return s.postings.SetClosed(ctx, id, closed)
}

// List pages postings, optionally restricted to open or closed ones
func (s *JobPostingService) List(ctx context.Context, closed *bool, page models.PageRequest) (models.Page[models.JobPosting], error) {
	return s.postings.List(ctx, repository.ListPostingsOpts{Closed: closed}, page)
}

// SearchByTitle pages postings whose title contains the query, case insensitive
func (s *JobPostingService) SearchByTitle(ctx context.Context, title string, page models.PageRequest) (models.Page[models.JobPosting], error) {
	return s.postings.List(ctx, repository.ListPostingsOpts{TitleQuery: title}, page)
}

// Onsite and hybrid postings describe a physical office, so they must say
// where it is
func checkLocation(posting models.JobPosting) error {
	if posting.WorkingType.RequiresOffice() && (posting.City == "" || posting.Country == "") {
		return apperrors.ErrOfficeNeedsLocation
	}
	return nil
}
