package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/codepioneers/recruiting/internal/repository"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx, so the same repositories
// serve production pools and test transactions
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Storage struct {
	db DBTX
}

func NewStorage(db DBTX) repository.Storage {
	return &Storage{db: db}
}

func (s *Storage) User() repository.UserRepo                     { return &UserRepo{DB: s.db} }
func (s *Storage) Refresh() repository.RefreshTokenRepo          { return &RefreshTokenRepo{DB: s.db} }
func (s *Storage) JobPosting() repository.JobPostingRepo         { return &JobPostingRepo{DB: s.db} }
func (s *Storage) Application() repository.ApplicationRepo       { return &ApplicationRepo{DB: s.db} }
func (s *Storage) WorkExperience() repository.WorkExperienceRepo { return &WorkExperienceRepo{DB: s.db} }
func (s *Storage) Education() repository.EducationRepo           { return &EducationRepo{DB: s.db} }
func (s *Storage) Skill() repository.SkillRepo                   { return &SkillRepo{DB: s.db} }
func (s *Storage) Project() repository.ProjectRepo               { return &ProjectRepo{DB: s.db} }
func (s *Storage) EnglishLevel() repository.EnglishLevelRepo     { return &EnglishLevelRepo{DB: s.db} }

func (s *Storage) InTx(ctx context.Context, fn func(repository.Storage) error) (err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db tx error: %w", err)
	}

	defer func() {
		switch err {
		case nil:
			err = tx.Commit(ctx)
		default:
			_ = tx.Rollback(ctx)
		}
	}()

	err = fn(NewStorage(tx))

	return err
}
