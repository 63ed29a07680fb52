package applications

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

func Test_Applications(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

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

		createPosting := func(t *testing.T, recruiter *client.Private) client.JobPosting {
			t.Helper()
			created, err := recruiter.CreateJobPosting(t.Context(), client.JobPostingDraft{
				JobTitle:                "Go Developer",
				WorkingType:             "REMOTE",
				EmploymentType:          "FULL_TIME",
				MinSalary:               decimal.NewFromInt(3000),
				MaxSalary:               decimal.NewFromInt(5000),
				RequiredSkills:          "Go, PostgreSQL",
				RequiredExperienceYears: 2,
				RequiredEnglishLevel:    "B2",
			})
			require.NoError(t, err)
			return created
		}

		// fillProfile gives the applicant a profile the scoring can work with
		fillProfile := func(t *testing.T, applicant *client.Private) {
			t.Helper()

			_, err := applicant.CreateSkill(t.Context(), client.Skill{SkillName: "Go"})
			require.NoError(t, err)

			_, err = applicant.CreateEnglishLevel(t.Context(), client.EnglishLevel{Level: "B2"})
			require.NoError(t, err)

			_, err = applicant.CreateWorkExperience(t.Context(), client.WorkExperience{
				JobTitle:       "Go Developer",
				CompanyName:    "Acme",
				EmploymentType: "FULL_TIME",
				StartDate:      "2020-01-15",
				EndDate:        "2023-06-30",
				Finished:       true,
			})
			require.NoError(t, err)
		}

		t.Run("apply computes the fit score", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")
				applicant := login(t, "applicant")
				posting := createPosting(t, recruiter)
				fillProfile(t, applicant)

				application, err := applicant.Apply(t.Context(), posting.ID)

				require.NoError(t, err)
				assert.Equal(t, client.StatusPending, application.Status)
				assert.Equal(t, posting.ID, application.JobPostingID)
				assert.Equal(t, 100, application.EnglishScore, "required level is met exactly")
				assert.Equal(t, 50, application.SkillsScore, "one of the two required skills")
				assert.Positive(t, application.GeneralScore)
			})
		})

		t.Run("second application is rejected", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")
				applicant := login(t, "applicant")
				posting := createPosting(t, recruiter)

				_, err := applicant.Apply(t.Context(), posting.ID)
				require.NoError(t, err)

				_, err = applicant.Apply(t.Context(), posting.ID)

				var apiErr *client.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusConflict, apiErr.Status)
				assert.Equal(t, "alreadyAppliedForThisJob", apiErr.Key)
				assert.Equal(t, "You have already applied for this job.", apiErr.Message())
			})
		})

		t.Run("closed posting rejects applications", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")
				applicant := login(t, "applicant")
				posting := createPosting(t, recruiter)

				_, err := recruiter.ChangeJobPostingStatus(t.Context(), posting.ID, true)
				require.NoError(t, err)

				_, err = applicant.Apply(t.Context(), posting.ID)

				var apiErr *client.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "jobPostingClosed", apiErr.Key)
			})
		})

		t.Run("applicant pages own applications", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")
				applicant := login(t, "applicant")
				posting := createPosting(t, recruiter)

				_, err := applicant.Apply(t.Context(), posting.ID)
				require.NoError(t, err)

				page, err := applicant.MyApplications(t.Context(), client.PageQuery{})

				require.NoError(t, err)
				require.Len(t, page.Content, 1)
				row := page.Content[0]
				assert.Equal(t, "Go Developer", row.JobTitle)
				assert.Equal(t, "Test User", row.FullName)
				assert.False(t, row.JobClosed)
			})
		})

		t.Run("recruiter reviews and decides", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")
				applicant := login(t, "applicant")
				posting := createPosting(t, recruiter)

				created, err := applicant.Apply(t.Context(), posting.ID)
				require.NoError(t, err)

				page, err := recruiter.Applications(t.Context(), client.ApplicationFilter{
					FullName: "test",
					Status:   client.StatusPending,
				}, client.PageQuery{})
				require.NoError(t, err)
				require.Len(t, page.Content, 1, "name filter is a case insensitive substring match")
				assert.Equal(t, created.ID, page.Content[0].ID)

				updated, err := recruiter.ChangeApplicationStatus(t.Context(), created.ID, client.StatusAccepted)
				require.NoError(t, err)
				assert.Equal(t, client.StatusAccepted, updated.Status)
				assert.Equal(t, created.GeneralScore, updated.GeneralScore, "scores are frozen at application time")
			})
		})

		t.Run("applicant cannot decide applications", func(t *testing.T) {
			testutil.WithTx(tx, t, func(_ pgx.Tx) {
				recruiter := login(t, "recruiter")
				applicant := login(t, "applicant")
				posting := createPosting(t, recruiter)

				created, err := applicant.Apply(t.Context(), posting.ID)
				require.NoError(t, err)

				_, err = applicant.ChangeApplicationStatus(t.Context(), created.ID, client.StatusAccepted)

				var apiErr *client.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusForbidden, apiErr.Status)
				assert.Equal(t, "accessDenied", apiErr.Key)
			})
		})
	})
}
