package jobpostings

import (
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/models"
	"github.com/codepioneers/recruiting/internal/testutil"
	"github.com/codepioneers/recruiting/pkg/client"
	"github.com/codepioneers/recruiting/tests/e2e"
)

func Test_JobPostings(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	draft := func(title string) client.JobPostingDraft {
		return client.JobPostingDraft{
			JobTitle:                title,
			JobDescription:          "Backend services in Go",
			WorkingType:             "REMOTE",
			EmploymentType:          "FULL_TIME",
			MinSalary:               decimal.NewFromInt(3000),
			MaxSalary:               decimal.NewFromInt(5000),
			RequiredSkills:          "Go, PostgreSQL",
			RequiredExperienceYears: 2,
			RequiredEnglishLevel:    "B2",
		}
	}

	e2e.ServeWithTx(pg.Pool, t, func(tx pgx.Tx, srvURL string, s e2e.Services) {
		e2e.CreateUser(t, tx, "recruiter", "pwd", models.RoleRecruiter)
		e2e.CreateUser(t, tx, "applicant", "pwd", models.RoleUser)

		login := func(t *testing.T, username string) *client.Private {
			t.Helper()
			session := client.NewSession()
			c := client.New(srvURL)
			_, err := c.Login(t.Context(), session, username, "pwd")
			require.NoError(t, err, "failed to login %q", username)
			return c.WithSession(session)
		}

		pub := client.New(srvURL)

		t.Run("recruiter creates and edits a posting", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")

				created, err := recruiter.CreateJobPosting(t.Context(), draft("Go Developer"))
				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
				assert.False(t, created.Closed, "postings start open")
				assert.True(t, created.MinSalary.Equal(decimal.NewFromInt(3000)))

				edit := draft("Senior Go Developer")
				edit.ID = created.ID
				updated, err := recruiter.EditJobPosting(t.Context(), edit)
				require.NoError(t, err)
				assert.Equal(t, "Senior Go Developer", updated.JobTitle)

				// Anyone may read it back, no session needed
				got, err := pub.JobPosting(t.Context(), created.ID)
				require.NoError(t, err)
				assert.Equal(t, "Senior Go Developer", got.JobTitle)
			})
		})

		t.Run("applicant cannot create postings", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				applicant := login(t, "applicant")

				_, err := applicant.CreateJobPosting(t.Context(), draft("Go Developer"))

				var apiErr *client.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusForbidden, apiErr.Status)
				assert.Equal(t, "accessDenied", apiErr.Key)
			})
		})

		t.Run("onsite posting needs a location", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")

				onsite := draft("Office Manager")
				onsite.WorkingType = "ONSITE"

				_, err := recruiter.CreateJobPosting(t.Context(), onsite)

				var apiErr *client.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "officesShouldHaveALocation", apiErr.Key)

				onsite.City = "Berlin"
				onsite.Country = "Germany"
				_, err = recruiter.CreateJobPosting(t.Context(), onsite)
				require.NoError(t, err, "posting with a location should be accepted")
			})
		})

		t.Run("public listing pages and filters by status", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")

				var closedID string
				for _, title := range []string{"Go Developer", "Java Developer", "Data Engineer"} {
					created, err := recruiter.CreateJobPosting(t.Context(), draft(title))
					require.NoError(t, err)
					closedID = created.ID
				}
				_, err := recruiter.ChangeJobPostingStatus(t.Context(), closedID, true)
				require.NoError(t, err)

				page, err := pub.JobPostings(t.Context(), nil, client.PageQuery{Size: 2})
				require.NoError(t, err)
				assert.Len(t, page.Content, 2)
				assert.EqualValues(t, 3, page.TotalElements)
				assert.True(t, page.HasNext())
				assert.Equal(t, "Showing 1 to 2 of 3", page.ShowingText())

				open := false
				openPage, err := pub.JobPostings(t.Context(), &open, client.PageQuery{})
				require.NoError(t, err)
				assert.EqualValues(t, 2, openPage.TotalElements, "the closed posting is filtered out")
			})
		})

		t.Run("recruiter searches by title", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")

				for _, title := range []string{"Go Developer", "Java Developer"} {
					_, err := recruiter.CreateJobPosting(t.Context(), draft(title))
					require.NoError(t, err)
				}

				page, err := recruiter.SearchJobPostings(t.Context(), "java", client.PageQuery{})
				require.NoError(t, err)
				require.Len(t, page.Content, 1, "search is a case insensitive substring match")
				assert.Equal(t, "Java Developer", page.Content[0].JobTitle)
			})
		})

		t.Run("unknown posting answers not found", func(t *testing.T) {
			_, err := pub.JobPosting(t.Context(), "7b68112b-3bfa-41a5-a0fe-a82fcf2b5849")

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusNotFound, apiErr.Status)
			assert.Equal(t, "jobPostingNotFound", apiErr.Key)
		})
	})
}
