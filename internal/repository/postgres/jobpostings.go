package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
)

type JobPostingRepo struct {
	DB DBTX
}

const postingColumns = `id, created_at, created_by, job_title, job_description, city, country, working_type, employment_type, min_salary, max_salary, required_skills, required_experience_years, required_english_level, closed`

const createPosting = `-- name: CreateJobPosting
INSERT INTO job_postings (created_by, job_title, job_description, city, country, working_type, employment_type, min_salary, max_salary, required_skills, required_experience_years, required_english_level, closed)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + postingColumns

func (r *JobPostingRepo) Create(ctx context.Context, p models.JobPosting) (models.JobPosting, error) {
	rows, _ := r.DB.Query(ctx, createPosting,
		p.CreatedBy, p.JobTitle, p.JobDescription, p.City, p.Country, p.WorkingType, p.EmploymentType,
		p.MinSalary, p.MaxSalary, p.RequiredSkills, p.RequiredExperienceYears, p.RequiredEnglishLevel, p.Closed,
	)
	created, err := pgx.CollectOneRow(rows, rowToPosting)
	if err != nil {
		return created, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

const updatePosting = `-- name: UpdateJobPosting
UPDATE job_postings
SET job_title = $2, job_description = $3, city = $4, country = $5, working_type = $6, employment_type = $7,
    min_salary = $8, max_salary = $9, required_skills = $10, required_experience_years = $11,
    required_english_level = $12, closed = $13
WHERE id = $1
RETURNING ` + postingColumns

func (r *JobPostingRepo) Update(ctx context.Context, p models.JobPosting) (models.JobPosting, error) {
	rows, _ := r.DB.Query(ctx, updatePosting,
		p.ID, p.JobTitle, p.JobDescription, p.City, p.Country, p.WorkingType, p.EmploymentType,
		p.MinSalary, p.MaxSalary, p.RequiredSkills, p.RequiredExperienceYears, p.RequiredEnglishLevel, p.Closed,
	)
	return collectPosting(rows)
}

const getPosting = `-- name: GetJobPosting
SELECT ` + postingColumns + ` FROM job_postings
WHERE id = $1
`

func (r *JobPostingRepo) Get(ctx context.Context, id uuid.UUID) (models.JobPosting, error) {
	rows, _ := r.DB.Query(ctx, getPosting, id)
	return collectPosting(rows)
}

const setPostingClosed = `-- name: SetJobPostingClosed
UPDATE job_postings
SET closed = $2
WHERE id = $1
RETURNING ` + postingColumns

func (r *JobPostingRepo) SetClosed(ctx context.Context, id uuid.UUID, closed bool) (models.JobPosting, error) {
	rows, _ := r.DB.Query(ctx, setPostingClosed, id, closed)
	return collectPosting(rows)
}

const listPostings = `-- name: ListJobPostings
SELECT ` + postingColumns + `, count(*) OVER () AS total
FROM job_postings
WHERE ($1::boolean IS NULL OR closed = $1)
  AND ($2::text = '' OR job_title ILIKE '%' || $2 || '%')
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

func (r *JobPostingRepo) List(ctx context.Context, opts repository.ListPostingsOpts, page models.PageRequest) (models.Page[models.JobPosting], error) {
	page = page.Normalize()

	rows, _ := r.DB.Query(ctx, listPostings, opts.Closed, opts.TitleQuery, page.Size, page.Offset())

	var total int64
	postings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.JobPosting, error) {
		return scanPosting(row, &total)
	})
	if err != nil {
		return models.Page[models.JobPosting]{}, fmt.Errorf("db error: %w", err)
	}

	return models.NewPage(postings, page, total), nil
}

func collectPosting(rows pgx.Rows) (models.JobPosting, error) {
	posting, err := pgx.CollectOneRow(rows, rowToPosting)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return posting, apperrors.ErrJobPostingNotFound
	}
	return posting, err
}

func rowToPosting(row pgx.CollectableRow) (models.JobPosting, error) {
	return scanPosting(row, nil)
}

func scanPosting(row pgx.Row, total *int64) (models.JobPosting, error) {
	var p models.JobPosting
	dest := []any{
		&p.ID, &p.CreatedAt, &p.CreatedBy, &p.JobTitle, &p.JobDescription, &p.City, &p.Country,
		&p.WorkingType, &p.EmploymentType, &p.MinSalary, &p.MaxSalary, &p.RequiredSkills,
		&p.RequiredExperienceYears, &p.RequiredEnglishLevel, &p.Closed,
	}
	if total != nil {
		dest = append(dest, total)
	}
	err := row.Scan(dest...)
	return p, err
}
