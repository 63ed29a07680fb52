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

type SkillRepo struct {
	DB DBTX
}

const createSkill = `-- name: CreateSkill
INSERT INTO skills (user_id, skill_name)
VALUES ($1, $2)
RETURNING id, user_id, skill_name
`

func (r *SkillRepo) Create(ctx context.Context, skill models.Skill) (models.Skill, error) {
	rows, _ := r.DB.Query(ctx, createSkill, skill.UserID, skill.SkillName)
	created, err := pgx.CollectOneRow(rows, rowToSkill)
	if err != nil {
		return created, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

const updateSkill = `-- name: UpdateSkill
UPDATE skills
SET skill_name = $2
WHERE id = $1
RETURNING id, user_id, skill_name
`

func (r *SkillRepo) Update(ctx context.Context, skill models.Skill) (models.Skill, error) {
	rows, _ := r.DB.Query(ctx, updateSkill, skill.ID, skill.SkillName)
	return collectSkill(rows)
}

const deleteSkill = `-- name: DeleteSkill
DELETE FROM skills
WHERE id = $1
`

func (r *SkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, deleteSkill, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSkillNotFound
	}
	return nil
}

const getSkill = `-- name: GetSkill
SELECT id, user_id, skill_name FROM skills
WHERE id = $1
`

func (r *SkillRepo) Get(ctx context.Context, id uuid.UUID) (models.Skill, error) {
	rows, _ := r.DB.Query(ctx, getSkill, id)
	return collectSkill(rows)
}

const listSkillsByUser = `-- name: ListSkillsByUser
SELECT id, user_id, skill_name FROM skills
WHERE user_id = $1
ORDER BY skill_name
`

func (r *SkillRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Skill, error) {
	rows, _ := r.DB.Query(ctx, listSkillsByUser, userID)
	skills, err := pgx.CollectRows(rows, rowToSkill)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return skills, nil
}

func collectSkill(rows pgx.Rows) (models.Skill, error) {
	skill, err := pgx.CollectOneRow(rows, rowToSkill)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return skill, apperrors.ErrSkillNotFound
	}
	return skill, err
}

func rowToSkill(row pgx.CollectableRow) (models.Skill, error) {
	var s models.Skill
	err := row.Scan(&s.ID, &s.UserID, &s.SkillName)
	return s, err
}
