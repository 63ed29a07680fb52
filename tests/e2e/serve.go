package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stretchr/testify/require"

	"github.com/codepioneers/recruiting/internal/handlers"
	"github.com/codepioneers/recruiting/internal/logger"
	"github.com/codepioneers/recruiting/internal/repository/postgres"
	"github.com/codepioneers/recruiting/internal/service/application"
	"github.com/codepioneers/recruiting/internal/service/auth"
	"github.com/codepioneers/recruiting/internal/service/jobposting"
	"github.com/codepioneers/recruiting/internal/service/mailer"
	"github.com/codepioneers/recruiting/internal/service/profile"
	"github.com/codepioneers/recruiting/internal/service/user"
	"github.com/codepioneers/recruiting/internal/testutil"
)

type Services struct {
	AuthService        *auth.AuthService
	UserService        *user.UserService
	JobPostingService  *jobposting.JobPostingService
	ApplicationService *application.ApplicationService
	ProfileService     *profile.ProfileService
}

// Create db transaction and run server with that connection (one connection cause one transaction)
// The created transaction passed to inner function: so, you can safely use testutil.WithTx with it
func ServeWithTx(dbpool *pgxpool.Pool, t *testing.T, fn func(tx pgx.Tx, srvURL string, services Services)) {
	testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
		storage := postgres.NewStorage(tx)

		as, err := auth.NewService(auth.Config{SecretKey: "test-secret"}, storage.User(), storage.Refresh())
		require.NoError(t, err, "auth service starting error")

		noLog := logger.NewNoOpLogger()
		mail := mailer.NoOpMailer{}

		us := user.NewService(auth.DefaultHasher, storage.User(), mail, noLog)
		ps := jobposting.NewService(storage.JobPosting())
		aps := application.NewService(storage, mail, noLog)
		prs := profile.NewService(storage)

		router := handlers.NewRouter(handlers.RouterServices{
			Auth:         as,
			AuthBearer:   as,
			Signup:       us,
			Users:        us,
			JobPostings:  ps,
			Applications: aps,
			Profile:      prs,
		}, noLog)

		// Run http server with the router in transaction
		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(tx, srv.URL, Services{
			AuthService:        as,
			UserService:        us,
			JobPostingService:  ps,
			ApplicationService: aps,
			ProfileService:     prs,
		})
	})
}
