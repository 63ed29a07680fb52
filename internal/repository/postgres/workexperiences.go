package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
)

type WorkExperienceRepo struct {
	DB DBTX
}

const workExpColumns = `id, user_id, job_title, company_name, employment_type, description, start_date, end_date, finished`

const createWorkExp = `-- name: CreateWorkExperience
INSERT INTO work_experiences (user_id, job_title, company_name, employment_type, description, start_date, end_date, finished)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + workExpColumns

func (r *WorkExperienceRepo) Create(ctx context.Context, exp models.WorkExperience) (models.WorkExperience, error) {
	rows, _ := r.DB.Query(ctx, createWorkExp,
		exp.UserID, exp.JobTitle, exp.CompanyName, exp.EmploymentType,
		exp.Description, exp.StartDate, exp.EndDate, exp.Finished,
	)
	created, err := pgx.CollectOneRow(rows, rowToWorkExp)
	if err != nil {
		return created, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

const updateWorkExp = `-- name: UpdateWorkExperience
UPDATE work_experiences
SET job_title = $2, company_name = $3, employment_type = $4, description = $5, start_date = $6, end_date = $7, finished = $8
WHERE id = $1
RETURNING ` + workExpColumns

func (r *WorkExperienceRepo) Update(ctx context.Context, exp models.WorkExperience) (models.WorkExperience, error) {
	rows, _ := r.DB.Query(ctx, updateWorkExp,
		exp.ID, exp.JobTitle, exp.CompanyName, exp.EmploymentType,
		exp.Description, exp.StartDate, exp.EndDate, exp.Finished,
	)
	return collectWorkExp(rows)
}

const deleteWorkExp = `-- name: DeleteWorkExperience
DELETE FROM work_experiences
WHERE id = $1
`

func (r *WorkExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, deleteWorkExp, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrWorkExperienceNotFound
	}
	return nil
}

const getWorkExp = `-- name: GetWorkExperience
SELECT ` + workExpColumns + ` FROM work_experiences
WHERE id = $1
`

func (r *WorkExperienceRepo) Get(ctx context.Context, id uuid.UUID) (models.WorkExperience, error) {
	rows, _ := r.DB.Query(ctx, getWorkExp, id)
	return collectWorkExp(rows)
}

const listWorkExpByUser = `-- name: ListWorkExperiencesByUser
SELECT ` + workExpColumns + ` FROM work_experiences
WHERE user_id = $1
ORDER BY start_date DESC
`

func (r *WorkExperienceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WorkExperience, error) {
	rows, _ := r.DB.Query(ctx, listWorkExpByUser, userID)
	exps, err := pgx.CollectRows(rows, rowToWorkExp)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return exps, nil
}

func collectWorkExp(rows pgx.Rows) (models.WorkExperience, error) {
	exp, err := pgx.CollectOneRow(rows, rowToWorkExp)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return exp, apperrors.ErrWorkExperienceNotFound
	}
	return exp, err
}

func rowToWorkExp(row pgx.CollectableRow) (models.WorkExperience, error) {
	var e models.WorkExperience
	err := row.Scan(
		&e.ID, &e.UserID, &e.JobTitle, &e.CompanyName, &e.EmploymentType,
		&e.Description, &e.StartDate, &e.EndDate, &e.Finished,
	)
	return e, err
}
