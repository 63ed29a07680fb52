package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
	"github.com/codepioneers/recruiting/internal/testutil"
)

func Test_ApplicationRepo(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	// every application needs an applicant and a posting to refer to
	type fixture struct {
		applicant models.User
		posting   models.JobPosting
	}

	setup := func(t *testing.T, tx pgx.Tx) fixture {
		suffix := uuid.NewString()[:8]

		applicant := newTestUser("applicant-" + suffix)
		applicant.Firstname = "Anna"
		applicant.Lastname = "Schmidt"
		applicant, err := (&UserRepo{DB: tx}).CreateUser(t.Context(), applicant)
		require.NoError(t, err)

		recruiter := newTestUser("recruiter-" + suffix)
		recruiter.Role = models.RoleRecruiter
		recruiter, err = (&UserRepo{DB: tx}).CreateUser(t.Context(), recruiter)
		require.NoError(t, err)

		posting, err := (&JobPostingRepo{DB: tx}).Create(t.Context(), newTestPosting(recruiter.ID, "Go Developer"))
		require.NoError(t, err)

		return fixture{applicant: applicant, posting: posting}
	}

	apply := func(t *testing.T, tx pgx.Tx, f fixture) models.JobApplication {
		created, err := (&ApplicationRepo{DB: tx}).Create(t.Context(), models.JobApplication{
			JobPostingID: f.posting.ID,
			ApplicantID:  f.applicant.ID,
			Status:       models.ApplicationPending,
			Score:        models.Score{English: 80, Skills: 50, Education: 70, ExperienceYears: 100, ExperienceSimilarity: 67, General: 73},
		})
		require.NoError(t, err)
		return created
	}

	t.Run("create stores the score", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			f := setup(t, tx)

			created := apply(t, tx, f)

			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, models.ApplicationPending, created.Status)
			assert.Equal(t, 73, created.Score.General)
			assert.False(t, created.ApplicationDate.IsZero())
		})
	})

	t.Run("second application for the same posting fails", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			f := setup(t, tx)
			apply(t, tx, f)

			_, err := (&ApplicationRepo{DB: tx}).Create(t.Context(), models.JobApplication{
				JobPostingID: f.posting.ID,
				ApplicantID:  f.applicant.ID,
				Status:       models.ApplicationPending,
			})

			assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
		})
	})

	t.Run("get and set status", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := ApplicationRepo{DB: tx}
			f := setup(t, tx)
			created := apply(t, tx, f)

			got, err := r.Get(t.Context(), created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.ID, got.ID)

			updated, err := r.SetStatus(t.Context(), created.ID, models.ApplicationAccepted)
			require.NoError(t, err)
			assert.Equal(t, models.ApplicationAccepted, updated.Status)
			assert.Equal(t, 73, updated.Score.General, "score survives status changes")
		})
	})

	t.Run("get not found", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := ApplicationRepo{DB: tx}

			_, err := r.Get(t.Context(), uuid.New())

			assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
		})
	})

	t.Run("page by applicant joins posting data", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := ApplicationRepo{DB: tx}
			f := setup(t, tx)
			apply(t, tx, f)

			page, err := r.PageByApplicant(t.Context(), f.applicant.ID, models.PageRequest{Size: 10})

			require.NoError(t, err)
			require.Len(t, page.Content, 1)
			row := page.Content[0]
			assert.Equal(t, "Anna Schmidt", row.FullName)
			assert.Equal(t, f.applicant.Email, row.Email)
			assert.Equal(t, "Go Developer", row.JobTitle)
			assert.False(t, row.JobClosed)
		})
	})

	t.Run("page filtered", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := ApplicationRepo{DB: tx}
			f := setup(t, tx)
			created := apply(t, tx, f)

			page := models.PageRequest{Size: 10}

			byName, err := r.PageFiltered(t.Context(), repository.ApplicationFilter{FullName: "schmidt"}, page)
			require.NoError(t, err)
			require.Len(t, byName.Content, 1)

			byTitle, err := r.PageFiltered(t.Context(), repository.ApplicationFilter{JobTitle: "go"}, page)
			require.NoError(t, err)
			require.Len(t, byTitle.Content, 1)

			byStatus, err := r.PageFiltered(t.Context(), repository.ApplicationFilter{Status: models.ApplicationRejected}, page)
			require.NoError(t, err)
			assert.Empty(t, byStatus.Content)

			byID, err := r.PageFiltered(t.Context(), repository.ApplicationFilter{JobApplicationID: created.ID}, page)
			require.NoError(t, err)
			require.Len(t, byID.Content, 1)
			assert.Equal(t, created.ID, byID.Content[0].ID)

			byApplicant, err := r.PageFiltered(t.Context(), repository.ApplicationFilter{ApplicantID: uuid.New()}, page)
			require.NoError(t, err)
			assert.Empty(t, byApplicant.Content)
		})
	})
}
