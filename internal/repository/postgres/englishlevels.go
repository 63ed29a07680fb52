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

type EnglishLevelRepo struct {
	DB DBTX
}

const createEnglishLevel = `-- name: CreateEnglishLevel
INSERT INTO applicant_english_levels (user_id, level, certificate)
VALUES ($1, $2, $3)
RETURNING id, user_id, level, certificate
`

func (r *EnglishLevelRepo) Create(ctx context.Context, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error) {
	rows, _ := r.DB.Query(ctx, createEnglishLevel, level.UserID, level.Level, level.Certificate)
	created, err := pgx.CollectOneRow(rows, rowToEnglishLevel)
	if err != nil {
		return created, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

const updateEnglishLevel = `-- name: UpdateEnglishLevel
UPDATE applicant_english_levels
SET level = $2, certificate = $3
WHERE id = $1
RETURNING id, user_id, level, certificate
`

func (r *EnglishLevelRepo) Update(ctx context.Context, level models.ApplicantEnglishLevel) (models.ApplicantEnglishLevel, error) {
	rows, _ := r.DB.Query(ctx, updateEnglishLevel, level.ID, level.Level, level.Certificate)
	return collectEnglishLevel(rows)
}

const deleteEnglishLevel = `-- name: DeleteEnglishLevel
DELETE FROM applicant_english_levels
WHERE id = $1
`

func (r *EnglishLevelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, deleteEnglishLevel, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnglishLevelNotFound
	}
	return nil
}

const getEnglishLevel = `-- name: GetEnglishLevel
SELECT id, user_id, level, certificate FROM applicant_english_levels
WHERE id = $1
`

func (r *EnglishLevelRepo) Get(ctx context.Context, id uuid.UUID) (models.ApplicantEnglishLevel, error) {
	rows, _ := r.DB.Query(ctx, getEnglishLevel, id)
	return collectEnglishLevel(rows)
}

const listEnglishLevelsByUser = `-- name: ListEnglishLevelsByUser
SELECT id, user_id, level, certificate FROM applicant_english_levels
WHERE user_id = $1
ORDER BY level
`

func (r *EnglishLevelRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ApplicantEnglishLevel, error) {
	rows, _ := r.DB.Query(ctx, listEnglishLevelsByUser, userID)
	levels, err := pgx.CollectRows(rows, rowToEnglishLevel)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return levels, nil
}

func collectEnglishLevel(rows pgx.Rows) (models.ApplicantEnglishLevel, error) {
	level, err := pgx.CollectOneRow(rows, rowToEnglishLevel)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return level, apperrors.ErrEnglishLevelNotFound
	}
	return level, err
}

func rowToEnglishLevel(row pgx.CollectableRow) (models.ApplicantEnglishLevel, error) {
	var l models.ApplicantEnglishLevel
	err := row.Scan(&l.ID, &l.UserID, &l.Level, &l.Certificate)
	return l, err
}
