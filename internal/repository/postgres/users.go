package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
)

type UserRepo struct {
	DB DBTX
}

const userColumns = `id, created_at, username, firstname, lastname, email, gender, birthdate, role, password_hash, password_changed, password_issued_at`

const createUser = `-- name: CreateUser
INSERT INTO users (username, firstname, lastname, email, gender, birthdate, role, password_hash, password_changed, password_issued_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + userColumns

func (r *UserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	rows, _ := r.DB.Query(ctx, createUser,
		user.Username, user.Firstname, user.Lastname, user.Email, user.Gender,
		user.Birthdate, user.Role, user.HashedPassword, user.PasswordChanged, user.PasswordIssuedAt,
	)
	created, err := pgx.CollectOneRow(rows, rowToUser)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return created, apperrors.ErrEmailExists
			}
			return created, apperrors.ErrUsernameExists
		}
		return created, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

const getUserByID = `-- name: GetUserByID
SELECT ` + userColumns + ` FROM users
WHERE id = $1
`

func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	rows, _ := r.DB.Query(ctx, getUserByID, userID)
	return collectUser(rows)
}

const getUserByUsername = `-- name: GetUserByUsername
SELECT ` + userColumns + ` FROM users
WHERE username = $1
`

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	rows, _ := r.DB.Query(ctx, getUserByUsername, username)
	return collectUser(rows)
}

const updateProfile = `-- name: UpdateProfile
UPDATE users
SET username = $2, firstname = $3, lastname = $4, email = $5, gender = $6, birthdate = $7
WHERE id = $1
RETURNING ` + userColumns

func (r *UserRepo) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	rows, _ := r.DB.Query(ctx, updateProfile,
		user.ID, user.Username, user.Firstname, user.Lastname, user.Email, user.Gender, user.Birthdate,
	)
	updated, err := collectUser(rows)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return updated, apperrors.ErrEmailExists
			}
			return updated, apperrors.ErrUsernameExists
		}
	}
	return updated, err
}

const setPassword = `-- name: SetPassword
UPDATE users
SET password_hash = $2, password_changed = $3, password_issued_at = now()
WHERE id = $1
`

func (r *UserRepo) SetPassword(ctx context.Context, userID uuid.UUID, hash string, changed bool) error {
	tag, err := r.DB.Exec(ctx, setPassword, userID, hash, changed)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

const listByRoles = `-- name: ListByRoles
SELECT ` + userColumns + ` FROM users
WHERE role = ANY ($1)
ORDER BY created_at
`

func (r *UserRepo) ListByRoles(ctx context.Context, roles []models.Role) ([]models.User, error) {
	rows, _ := r.DB.Query(ctx, listByRoles, roles)
	users, err := pgx.CollectRows(rows, rowToUser)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

const pageByRoles = `-- name: PageByRoles
SELECT ` + userColumns + `, count(*) OVER () AS total
FROM users
WHERE role = ANY ($1)
ORDER BY created_at
LIMIT $2 OFFSET $3
`

func (r *UserRepo) PageByRoles(ctx context.Context, roles []models.Role, page models.PageRequest) (models.Page[models.User], error) {
	page = page.Normalize()

	rows, _ := r.DB.Query(ctx, pageByRoles, roles, page.Size, page.Offset())

	var total int64
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		u, err := scanUser(row, &total)
		return u, err
	})
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("db error: %w", err)
	}

	return models.NewPage(users, page, total), nil
}

func collectUser(rows pgx.Rows) (models.User, error) {
	user, err := pgx.CollectOneRow(rows, rowToUser)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return user, apperrors.ErrUserNotFound
	}
	return user, err
}

func rowToUser(row pgx.CollectableRow) (models.User, error) {
	return scanUser(row, nil)
}

// scanUser reads the shared user column list, optionally plus a trailing
// count(*) OVER () window column
func scanUser(row pgx.Row, total *int64) (models.User, error) {
	var u models.User
	dest := []any{
		&u.ID, &u.CreatedAt, &u.Username, &u.Firstname, &u.Lastname, &u.Email,
		&u.Gender, &u.Birthdate, &u.Role, &u.HashedPassword, &u.PasswordChanged, &u.PasswordIssuedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}
	err := row.Scan(dest...)
	return u, err
}
