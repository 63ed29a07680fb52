package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository/postgres"
	"github.com/codepioneers/recruiting/internal/testutil"
)

func Test_ProfileService(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	start := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	seedUser := func(t *testing.T, tx pgx.Tx, role models.Role) models.User {
		user, err := (&postgres.UserRepo{DB: tx}).CreateUser(t.Context(), models.User{
			Username:         "u-" + uuid.NewString()[:8],
			Firstname:        "Test",
			Lastname:         "User",
			Email:            uuid.NewString()[:8] + "@example.com",
			Role:             role,
			HashedPassword:   "hashedpassword123",
			PasswordChanged:  true,
			PasswordIssuedAt: time.Now(),
		})
		require.NoError(t, err)
		return user
	}

	withTx := func(dbpool *pgxpool.Pool, t *testing.T, fn func(s *ProfileService, tx pgx.Tx)) {
		testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
			fn(NewService(postgres.NewStorage(tx)), tx)
		})
	}

	experience := func(finished bool) models.WorkExperience {
		exp := models.WorkExperience{
			JobTitle:       "Go Developer",
			CompanyName:    "Acme",
			EmploymentType: models.EmploymentFullTime,
			StartDate:      start,
			Finished:       finished,
		}
		if finished {
			exp.EndDate = &end
		}
		return exp
	}

	t.Run("owner manages own records", func(t *testing.T) {
		withTx(pg.Pool, t, func(s *ProfileService, tx pgx.Tx) {
			owner := seedUser(t, tx, models.RoleUser)

			created, err := s.CreateWorkExperience(t.Context(), owner, experience(true))
			require.NoError(t, err)
			assert.Equal(t, owner.ID, created.UserID, "record is always bound to the caller")

			created.JobTitle = "Lead Developer"
			updated, err := s.EditWorkExperience(t.Context(), owner, created)
			require.NoError(t, err)
			assert.Equal(t, "Lead Developer", updated.JobTitle)

			require.NoError(t, s.DeleteWorkExperience(t.Context(), owner, created.ID))
		})
	})

	t.Run("records cannot be written for someone else", func(t *testing.T) {
		withTx(pg.Pool, t, func(s *ProfileService, tx pgx.Tx) {
			owner := seedUser(t, tx, models.RoleUser)
			other := seedUser(t, tx, models.RoleUser)

			created, err := s.CreateWorkExperience(t.Context(), owner, experience(true))
			require.NoError(t, err)

			_, err = s.EditWorkExperience(t.Context(), other, created)
			assert.ErrorIs(t, err, apperrors.ErrAccessDenied)

			err = s.DeleteWorkExperience(t.Context(), other, created.ID)
			assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
		})
	})

	t.Run("staff may read, applicants may not", func(t *testing.T) {
		withTx(pg.Pool, t, func(s *ProfileService, tx pgx.Tx) {
			owner := seedUser(t, tx, models.RoleUser)
			other := seedUser(t, tx, models.RoleUser)
			recruiter := seedUser(t, tx, models.RoleRecruiter)

			created, err := s.CreateWorkExperience(t.Context(), owner, experience(true))
			require.NoError(t, err)

			exps, err := s.ListWorkExperiences(t.Context(), recruiter, owner.ID)
			require.NoError(t, err)
			assert.Len(t, exps, 1)

			got, err := s.GetWorkExperience(t.Context(), recruiter, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.ID, got.ID)

			_, err = s.ListWorkExperiences(t.Context(), other, owner.ID)
			assert.ErrorIs(t, err, apperrors.ErrWorkExperiencesForbidden)

			_, err = s.GetWorkExperience(t.Context(), other, created.ID)
			assert.ErrorIs(t, err, apperrors.ErrWorkExperienceForbidden)
		})
	})

	t.Run("date rules", func(t *testing.T) {
		withTx(pg.Pool, t, func(s *ProfileService, tx pgx.Tx) {
			s.now = func() time.Time { return end }
			owner := seedUser(t, tx, models.RoleUser)

			t.Run("start date in the future", func(t *testing.T) {
				exp := experience(false)
				exp.StartDate = end.AddDate(1, 0, 0)

				_, err := s.CreateWorkExperience(t.Context(), owner, exp)
				assert.ErrorIs(t, err, apperrors.ErrStartDateInFuture)
			})

			t.Run("finished needs an end date", func(t *testing.T) {
				exp := experience(true)
				exp.EndDate = nil

				_, err := s.CreateWorkExperience(t.Context(), owner, exp)
				assert.ErrorIs(t, err, apperrors.ErrEndDateRequiredFinished)
			})

			t.Run("end must come after start", func(t *testing.T) {
				exp := experience(true)
				before := start.AddDate(-1, 0, 0)
				exp.EndDate = &before

				_, err := s.CreateWorkExperience(t.Context(), owner, exp)
				assert.ErrorIs(t, err, apperrors.ErrEndBeforeStart)
			})

			t.Run("finished project needs an end date", func(t *testing.T) {
				_, err := s.CreateProject(t.Context(), owner, models.Project{
					ProjectName: "Side Project",
					StartDate:   start,
					Finished:    true,
				})
				assert.ErrorIs(t, err, apperrors.ErrProjectEndDateRequired)
			})
		})
	})

	t.Run("skills and english levels", func(t *testing.T) {
		withTx(pg.Pool, t, func(s *ProfileService, tx pgx.Tx) {
			owner := seedUser(t, tx, models.RoleUser)
			other := seedUser(t, tx, models.RoleUser)

			skill, err := s.CreateSkill(t.Context(), owner, models.Skill{SkillName: "Go"})
			require.NoError(t, err)

			_, err = s.EditSkill(t.Context(), other, skill)
			assert.ErrorIs(t, err, apperrors.ErrAccessDenied)

			level, err := s.CreateEnglishLevel(t.Context(), owner, models.ApplicantEnglishLevel{
				Level: models.EnglishB2,
			})
			require.NoError(t, err)

			levels, err := s.ListEnglishLevels(t.Context(), owner, owner.ID)
			require.NoError(t, err)
			require.Len(t, levels, 1)
			assert.Equal(t, level.ID, levels[0].ID)

			_, err = s.ListEnglishLevels(t.Context(), other, owner.ID)
			assert.ErrorIs(t, err, apperrors.ErrEnglishLevelForbidden)
		})
	})
}
