package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
)

type ApplicationRepo struct {
	DB DBTX
}

const applicationColumns = `a.id, a.job_posting_id, a.applicant_id, a.status, a.application_date, a.english_score, a.skills_score, a.education_score, a.experience_years_score, a.experience_similarity_score, a.general_score`

const createApplication = `-- name: CreateApplication
INSERT INTO job_applications AS a (job_posting_id, applicant_id, status, english_score, skills_score, education_score, experience_years_score, experience_similarity_score, general_score)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + applicationColumns

func (r *ApplicationRepo) Create(ctx context.Context, app models.JobApplication) (models.JobApplication, error) {
	rows, _ := r.DB.Query(ctx, createApplication,
		app.JobPostingID, app.ApplicantID, app.Status,
		app.Score.English, app.Score.Skills, app.Score.Education,
		app.Score.ExperienceYears, app.Score.ExperienceSimilarity, app.Score.General,
	)
	created, err := pgx.CollectOneRow(rows, rowToApplication)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return created, apperrors.ErrAlreadyApplied
		}
		return created, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

const getApplication = `-- name: GetApplication
SELECT ` + applicationColumns + ` FROM job_applications a
WHERE a.id = $1
`

func (r *ApplicationRepo) Get(ctx context.Context, id uuid.UUID) (models.JobApplication, error) {
	rows, _ := r.DB.Query(ctx, getApplication, id)
	return collectApplication(rows)
}

const setApplicationStatus = `-- name: SetApplicationStatus
UPDATE job_applications a
SET status = $2
WHERE a.id = $1
RETURNING ` + applicationColumns

func (r *ApplicationRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (models.JobApplication, error) {
	rows, _ := r.DB.Query(ctx, setApplicationStatus, id, status)
	return collectApplication(rows)
}

const applicationRowColumns = applicationColumns + `, trim(u.firstname || ' ' || u.lastname) AS full_name, u.email, p.job_title, p.closed`

const pageByApplicant = `-- name: PageApplicationsByApplicant
SELECT ` + applicationRowColumns + `, count(*) OVER () AS total
FROM job_applications a
JOIN users u ON u.id = a.applicant_id
JOIN job_postings p ON p.id = a.job_posting_id
WHERE a.applicant_id = $1
ORDER BY a.application_date DESC
LIMIT $2 OFFSET $3
`

func (r *ApplicationRepo) PageByApplicant(ctx context.Context, applicantID uuid.UUID, page models.PageRequest) (models.Page[models.ApplicationRow], error) {
	page = page.Normalize()

	rows, _ := r.DB.Query(ctx, pageByApplicant, applicantID, page.Size, page.Offset())
	return collectApplicationPage(rows, page)
}

const pageFiltered = `-- name: PageApplicationsFiltered
SELECT ` + applicationRowColumns + `, count(*) OVER () AS total
FROM job_applications a
JOIN users u ON u.id = a.applicant_id
JOIN job_postings p ON p.id = a.job_posting_id
WHERE ($1::text = '' OR trim(u.firstname || ' ' || u.lastname) ILIKE '%' || $1 || '%')
  AND ($2::text = '' OR p.job_title ILIKE '%' || $2 || '%')
  AND ($3::boolean IS NULL OR p.closed = $3)
  AND ($4::text = '' OR a.status = $4)
  AND ($5::uuid IS NULL OR a.applicant_id = $5)
  AND ($6::uuid IS NULL OR a.id = $6)
ORDER BY a.application_date DESC
LIMIT $7 OFFSET $8
`

func (r *ApplicationRepo) PageFiltered(ctx context.Context, filter repository.ApplicationFilter, page models.PageRequest) (models.Page[models.ApplicationRow], error) {
	page = page.Normalize()

	rows, _ := r.DB.Query(ctx, pageFiltered,
		filter.FullName, filter.JobTitle, filter.Closed, string(filter.Status),
		nilIfZero(filter.ApplicantID), nilIfZero(filter.JobApplicationID),
		page.Size, page.Offset(),
	)
	return collectApplicationPage(rows, page)
}

func nilIfZero(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func collectApplication(rows pgx.Rows) (models.JobApplication, error) {
	app, err := pgx.CollectOneRow(rows, rowToApplication)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return app, apperrors.ErrApplicationNotFound
	}
	return app, err
}

func collectApplicationPage(rows pgx.Rows, page models.PageRequest) (models.Page[models.ApplicationRow], error) {
	var total int64
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ApplicationRow, error) {
		var a models.ApplicationRow
		err := row.Scan(
			&a.ID, &a.JobPostingID, &a.ApplicantID, &a.Status, &a.ApplicationDate,
			&a.Score.English, &a.Score.Skills, &a.Score.Education,
			&a.Score.ExperienceYears, &a.Score.ExperienceSimilarity, &a.Score.General,
			&a.FullName, &a.Email, &a.JobTitle, &a.JobClosed, &total,
		)
		return a, err
	})
	if err != nil {
		return models.Page[models.ApplicationRow]{}, fmt.Errorf("db error: %w", err)
	}
	return models.NewPage(items, page, total), nil
}

func rowToApplication(row pgx.CollectableRow) (models.JobApplication, error) {
	var a models.JobApplication
	err := row.Scan(
		&a.ID, &a.JobPostingID, &a.ApplicantID, &a.Status, &a.ApplicationDate,
		&a.Score.English, &a.Score.Skills, &a.Score.Education,
		&a.Score.ExperienceYears, &a.Score.ExperienceSimilarity, &a.Score.General,
	)
	return a, err
}
