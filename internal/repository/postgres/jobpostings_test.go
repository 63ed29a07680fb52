package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/apperrors"
	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/repository"
	"github.com/codepioneers/recruiting/internal/testutil"
)

func newTestPosting(createdBy uuid.UUID, title string) models.JobPosting {
	return models.JobPosting{
		CreatedBy:               createdBy,
		JobTitle:                title,
		JobDescription:          "Build backend services",
		WorkingType:             models.WorkingRemote,
		EmploymentType:          models.EmploymentFullTime,
		MinSalary:               decimal.NewFromInt(3000),
		MaxSalary:               decimal.NewFromInt(5000),
		RequiredSkills:          "Go, PostgreSQL",
		RequiredExperienceYears: 2,
		RequiredEnglishLevel:    models.EnglishB2,
	}
}

func Test_JobPostingRepo(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	// postings need a creating recruiter
	createRecruiter := func(t *testing.T, tx pgx.Tx) models.User {
		u := newTestUser("recruiter-" + uuid.NewString()[:8])
		u.Role = models.RoleRecruiter
		created, err := (&UserRepo{DB: tx}).CreateUser(t.Context(), u)
		require.NoError(t, err)
		return created
	}

	t.Run("create and get", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := JobPostingRepo{DB: tx}
			recruiter := createRecruiter(t, tx)

			created, err := r.Create(t.Context(), newTestPosting(recruiter.ID, "Go Developer"))
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.False(t, created.Closed, "postings start open")

			got, err := r.Get(t.Context(), created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Go Developer", got.JobTitle)
			assert.True(t, got.MinSalary.Equal(decimal.NewFromInt(3000)))
			assert.Equal(t, models.EnglishB2, got.RequiredEnglishLevel)
		})
	})

	t.Run("get not found", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := JobPostingRepo{DB: tx}

			_, err := r.Get(t.Context(), uuid.New())

			assert.ErrorIs(t, err, apperrors.ErrJobPostingNotFound)
		})
	})

	t.Run("update", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := JobPostingRepo{DB: tx}
			recruiter := createRecruiter(t, tx)

			created, err := r.Create(t.Context(), newTestPosting(recruiter.ID, "Go Developer"))
			require.NoError(t, err)

			created.JobTitle = "Senior Go Developer"
			created.RequiredExperienceYears = 5

			updated, err := r.Update(t.Context(), created)

			require.NoError(t, err)
			assert.Equal(t, "Senior Go Developer", updated.JobTitle)
			assert.Equal(t, 5, updated.RequiredExperienceYears)
		})
	})

	t.Run("update not found", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := JobPostingRepo{DB: tx}
			recruiter := createRecruiter(t, tx)

			missing := newTestPosting(recruiter.ID, "Ghost")
			missing.ID = uuid.New()

			_, err := r.Update(t.Context(), missing)

			assert.ErrorIs(t, err, apperrors.ErrJobPostingNotFound)
		})
	})

	t.Run("set closed", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := JobPostingRepo{DB: tx}
			recruiter := createRecruiter(t, tx)

			created, err := r.Create(t.Context(), newTestPosting(recruiter.ID, "Go Developer"))
			require.NoError(t, err)

			closed, err := r.SetClosed(t.Context(), created.ID, true)
			require.NoError(t, err)
			assert.True(t, closed.Closed)

			reopened, err := r.SetClosed(t.Context(), created.ID, false)
			require.NoError(t, err)
			assert.False(t, reopened.Closed)
		})
	})

	t.Run("list filters", func(t *testing.T) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			r := JobPostingRepo{DB: tx}
			recruiter := createRecruiter(t, tx)

			open, err := r.Create(t.Context(), newTestPosting(recruiter.ID, "Go Developer"))
			require.NoError(t, err)
			toClose, err := r.Create(t.Context(), newTestPosting(recruiter.ID, "Java Developer"))
			require.NoError(t, err)
			_, err = r.SetClosed(t.Context(), toClose.ID, true)
			require.NoError(t, err)

			page := models.PageRequest{Number: 0, Size: 10}

			all, err := r.List(t.Context(), repository.ListPostingsOpts{}, page)
			require.NoError(t, err)
			assert.Equal(t, int64(2), all.TotalElements)

			openOnly := false
			onlyOpen, err := r.List(t.Context(), repository.ListPostingsOpts{Closed: &openOnly}, page)
			require.NoError(t, err)
			require.Len(t, onlyOpen.Content, 1)
			assert.Equal(t, open.ID, onlyOpen.Content[0].ID)

			byTitle, err := r.List(t.Context(), repository.ListPostingsOpts{TitleQuery: "java"}, page)
			require.NoError(t, err)
			require.Len(t, byTitle.Content, 1)
			assert.Equal(t, "Java Developer", byTitle.Content[0].JobTitle)

			nothing, err := r.List(t.Context(), repository.ListPostingsOpts{TitleQuery: "rust"}, page)
			require.NoError(t, err)
			assert.Empty(t, nothing.Content)
			assert.Equal(t, int64(0), nothing.TotalElements)
		})
	})
}
