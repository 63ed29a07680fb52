package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/testutil"
)

func Test_WorkExperienceRepo(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	start := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	createOwner := func(t *testing.T, tx pgx.Tx) models.User {
		user, err := (&UserRepo{DB: tx}).CreateUser(t.Context(), newTestUser("owner-"+uuid.NewString()[:8]))
		require.NoError(t, err)
		return user
	}

	t.Run("create and get", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := WorkExperienceRepo{DB: tx}
			owner := createOwner(t, tx)

			created, err := r.Create(t.Context(), models.WorkExperience{
				UserID:         owner.ID,
				JobTitle:       "Go Developer",
				CompanyName:    "Acme",
				EmploymentType: models.EmploymentFullTime,
				StartDate:      start,
				EndDate:        &end,
				Finished:       true,
			})
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)

			got, err := r.Get(t.Context(), created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Go Developer", got.JobTitle)
			assert.Equal(t, owner.ID, got.UserID)
			require.NotNil(t, got.EndDate)
			assert.Equal(t, end, got.EndDate.UTC())
		})
	})

	t.Run("update", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := WorkExperienceRepo{DB: tx}
			owner := createOwner(t, tx)

			created, err := r.Create(t.Context(), models.WorkExperience{
				UserID:         owner.ID,
				JobTitle:       "Developer",
				CompanyName:    "Acme",
				EmploymentType: models.EmploymentFullTime,
				StartDate:      start,
			})
			require.NoError(t, err)

			created.JobTitle = "Lead Developer"
			created.EndDate = &end
			created.Finished = true

			updated, err := r.Update(t.Context(), created)

			require.NoError(t, err)
			assert.Equal(t, "Lead Developer", updated.JobTitle)
			assert.True(t, updated.Finished)
		})
	})

	t.Run("delete", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := WorkExperienceRepo{DB: tx}
			owner := createOwner(t, tx)

			created, err := r.Create(t.Context(), models.WorkExperience{
				UserID:         owner.ID,
				JobTitle:       "Developer",
				CompanyName:    "Acme",
				EmploymentType: models.EmploymentContract,
				StartDate:      start,
			})
			require.NoError(t, err)

			require.NoError(t, r.Delete(t.Context(), created.ID))

			_, err = r.Get(t.Context(), created.ID)
			assert.ErrorIs(t, err, apperrors.ErrWorkExperienceNotFound)

			err = r.Delete(t.Context(), created.ID)
			assert.ErrorIs(t, err, apperrors.ErrWorkExperienceNotFound, "second delete reports not found")
		})
	})

	t.Run("list by user is scoped and ordered", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := WorkExperienceRepo{DB: tx}
			owner := createOwner(t, tx)
			other := createOwner(t, tx)

			older := models.WorkExperience{
				UserID: owner.ID, JobTitle: "Junior", CompanyName: "Acme",
				EmploymentType: models.EmploymentFullTime, StartDate: start.AddDate(-3, 0, 0),
			}
			newer := models.WorkExperience{
				UserID: owner.ID, JobTitle: "Senior", CompanyName: "Acme",
				EmploymentType: models.EmploymentFullTime, StartDate: start,
			}
			foreign := models.WorkExperience{
				UserID: other.ID, JobTitle: "Unrelated", CompanyName: "Elsewhere",
				EmploymentType: models.EmploymentFullTime, StartDate: start,
			}
			for _, exp := range []models.WorkExperience{older, newer, foreign} {
				_, err := r.Create(t.Context(), exp)
				require.NoError(t, err)
			}

			exps, err := r.ListByUser(t.Context(), owner.ID)

			require.NoError(t, err)
			require.Len(t, exps, 2)
			assert.Equal(t, "Senior", exps[0].JobTitle, "most recent first")
			assert.Equal(t, "Junior", exps[1].JobTitle)
		})
	})
}
