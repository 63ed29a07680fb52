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

type EducationRepo struct {
	DB DBTX
}

const educationColumns = `id, user_id, education_level, field_of_study, institution, achievements_description, started_date, graduation_date, finished`

const createEducation = `-- name: CreateEducation
INSERT INTO educations (user_id, education_level, field_of_study, institution, achievements_description, started_date, graduation_date, finished)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + educationColumns

func (r *EducationRepo) Create(ctx context.Context, edu models.Education) (models.Education, error) {
	rows, _ := r.DB.Query(ctx, createEducation,
		edu.UserID, edu.EducationLevel, edu.FieldOfStudy, edu.Institution,
		edu.AchievementsDescription, edu.StartedDate, edu.GraduationDate, edu.Finished,
	)
	created, err := pgx.CollectOneRow(rows, rowToEducation)
	if err != nil {
		return created, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

const updateEducation = `-- name: UpdateEducation
UPDATE educations
SET education_level = $2, field_of_study = $3, institution = $4, achievements_description = $5, started_date = $6, graduation_date = $7, finished = $8
WHERE id = $1
RETURNING ` + educationColumns

func (r *EducationRepo) Update(ctx context.Context, edu models.Education) (models.Education, error) {
	rows, _ := r.DB.Query(ctx, updateEducation,
		edu.ID, edu.EducationLevel, edu.FieldOfStudy, edu.Institution,
		edu.AchievementsDescription, edu.StartedDate, edu.GraduationDate, edu.Finished,
	)
	return collectEducation(rows)
}

const deleteEducation = `-- name: DeleteEducation
DELETE FROM educations
WHERE id = $1
`

func (r *EducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, deleteEducation, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEducationNotFound
	}
	return nil
}

const getEducation = `-- name: GetEducation
SELECT ` + educationColumns + ` FROM educations
WHERE id = $1
`

func (r *EducationRepo) Get(ctx context.Context, id uuid.UUID) (models.Education, error) {
	rows, _ := r.DB.Query(ctx, getEducation, id)
	return collectEducation(rows)
}

const listEducationsByUser = `-- name: ListEducationsByUser
SELECT ` + educationColumns + ` FROM educations
WHERE user_id = $1
ORDER BY started_date DESC
`

func (r *EducationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Education, error) {
	rows, _ := r.DB.Query(ctx, listEducationsByUser, userID)
	edus, err := pgx.CollectRows(rows, rowToEducation)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return edus, nil
}

func collectEducation(rows pgx.Rows) (models.Education, error) {
	edu, err := pgx.CollectOneRow(rows, rowToEducation)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return edu, apperrors.ErrEducationNotFound
	}
	return edu, err
}

func rowToEducation(row pgx.CollectableRow) (models.Education, error) {
	var e models.Education
	err := row.Scan(
		&e.ID, &e.UserID, &e.EducationLevel, &e.FieldOfStudy, &e.Institution,
		&e.AchievementsDescription, &e.StartedDate, &e.GraduationDate, &e.Finished,
	)
	return e, err
}
