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

type ProjectRepo struct {
	DB DBTX
}

const projectColumns = `id, user_id, project_name, description, technologies, start_date, end_date, finished`

const createProject = `-- name: CreateProject
INSERT INTO projects (user_id, project_name, description, technologies, start_date, end_date, finished)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + projectColumns

func (r *ProjectRepo) Create(ctx context.Context, project models.Project) (models.Project, error) {
	rows, _ := r.DB.Query(ctx, createProject,
		project.UserID, project.ProjectName, project.Description, project.Technologies,
		project.StartDate, project.EndDate, project.Finished,
	)
	created, err := pgx.CollectOneRow(rows, rowToProject)
	if err != nil {
		return created, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

const updateProject = `-- name: UpdateProject
UPDATE projects
SET project_name = $2, description = $3, technologies = $4, start_date = $5, end_date = $6, finished = $7
WHERE id = $1
RETURNING ` + projectColumns

func (r *ProjectRepo) Update(ctx context.Context, project models.Project) (models.Project, error) {
	rows, _ := r.DB.Query(ctx, updateProject,
		project.ID, project.ProjectName, project.Description, project.Technologies,
		project.StartDate, project.EndDate, project.Finished,
	)
	return collectProject(rows)
}

const deleteProject = `-- name: DeleteProject
DELETE FROM projects
WHERE id = $1
`

func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, deleteProject, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

const getProject = `-- name: GetProject
SELECT ` + projectColumns + ` FROM projects
WHERE id = $1
`

func (r *ProjectRepo) Get(ctx context.Context, id uuid.UUID) (models.Project, error) {
	rows, _ := r.DB.Query(ctx, getProject, id)
	return collectProject(rows)
}

const listProjectsByUser = `-- name: ListProjectsByUser
SELECT ` + projectColumns + ` FROM projects
WHERE user_id = $1
ORDER BY start_date DESC
`

func (r *ProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	rows, _ := r.DB.Query(ctx, listProjectsByUser, userID)
	projects, err := pgx.CollectRows(rows, rowToProject)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return projects, nil
}

func collectProject(rows pgx.Rows) (models.Project, error) {
	project, err := pgx.CollectOneRow(rows, rowToProject)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return project, apperrors.ErrProjectNotFound
	}
	return project, err
}

func rowToProject(row pgx.CollectableRow) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.UserID, &p.ProjectName, &p.Description, &p.Technologies,
		&p.StartDate, &p.EndDate, &p.Finished,
	)
	return p, err
}
