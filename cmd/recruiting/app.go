package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/codepioneers/recruiting/internal/db"
	"github.com/codepioneers/recruiting/internal/handlers"
	"github.com/codepioneers/recruiting/internal/logger"
	"github.com/codepioneers/recruiting/internal/repository/postgres"
	"github.com/codepioneers/recruiting/internal/service/application"
	"github.com/codepioneers/recruiting/internal/service/auth"
	"github.com/codepioneers/recruiting/internal/service/jobposting"
	"github.com/codepioneers/recruiting/internal/service/mailer"
	"github.com/codepioneers/recruiting/internal/service/profile"
	"github.com/codepioneers/recruiting/internal/service/user"
)

type ServerApp struct {
	ListenAddr string
	Handler    http.Handler

	mail mailer.Mailer
}

func NewServerApp(ctx context.Context, c *Config) (*ServerApp, error) {
	l, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	// Connect to the database and run migrations
	pool, err := db.ConnectAndMigrate(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error while connecting to db. Err: %w", err)
	}

	storage := postgres.NewStorage(pool)
	mail := mailer.New(mailer.Config{Brokers: c.KafkaBrokers})

	authService, err := auth.NewService(auth.Config{SecretKey: c.SecretKey}, storage.User(), storage.Refresh())
	if err != nil {
		return nil, fmt.Errorf("error while creating auth service. Err: %w", err)
	}
	userService := user.NewService(auth.DefaultHasher, storage.User(), mail, l)
	postingService := jobposting.NewService(storage.JobPosting())
	applicationService := application.NewService(storage, mail, l)
	profileService := profile.NewService(storage)

	router := handlers.NewRouter(handlers.RouterServices{
		Auth:         authService,
		AuthBearer:   authService,
		Signup:       userService,
		Users:        userService,
		JobPostings:  postingService,
		Applications: applicationService,
		Profile:      profileService,
	}, l)

	return &ServerApp{
		ListenAddr: c.ListenAddr,
		Handler:    router,
		mail:       mail,
	}, nil
}

// Run starts the http server and closes gracefully on context cancellation
func (s *ServerApp) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.ListenAddr,
		Handler: s.Handler,
	}

	idleConnsClosed := make(chan struct{})
	srvCtx, srvCtxCancel := context.WithCancel(ctx)
	defer srvCtxCancel()

	go func() {
		<-srvCtx.Done()

		timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(timeoutCtx); err == context.DeadlineExceeded {
			slog.Error("HTTP server shutdown timeout exceeded, forcing shutdown...")
		}
		if err := s.mail.Close(); err != nil {
			slog.Error("mailer close failed", "error", err.Error())
		}
		slog.Info("HTTP server stopped")
		close(idleConnsClosed)
	}()

	// Listen and serve until the context is cancelled, then drain connections
	slog.Info("Starting server", "address", s.ListenAddr)
	err := httpServer.ListenAndServe()
	srvCtxCancel()
	<-idleConnsClosed

	return err
}
