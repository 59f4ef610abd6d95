package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/api"
	"github.com/folio-labs/portfolio/internal/api/handlers"
	"github.com/folio-labs/portfolio/internal/mailer"
	"github.com/folio-labs/portfolio/internal/repository"
	"github.com/folio-labs/portfolio/internal/services"
	"github.com/folio-labs/portfolio/pkg/config"
	"github.com/folio-labs/portfolio/pkg/database"
	"github.com/folio-labs/portfolio/pkg/logger"

	_ "github.com/folio-labs/portfolio/docs"
)

// @title           Portfolio API
// @version         1.0
// @description     Project listing and contact form relay for the portfolio site.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting portfolio API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Opened on first use; a store that is down at boot does not stop the server.
	conn := database.NewConn(cfg.DatabaseURL, database.Options{AppEnv: cfg.AppEnv, Retries: 2})
	defer conn.Close()

	projectRepo := repository.NewProjectRepository(conn)
	contactRepo := repository.NewContactRepository(conn)

	if cfg.EmailUser == "" {
		log.Warn("EMAIL_USER not set, relay will be used without authentication")
	}
	transport := mailer.NewSMTPTransport(mailer.SMTPConfig{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
	})
	dispatcher := mailer.NewDispatcher(transport, cfg.EmailUser, cfg.ContactEmail)

	projectSvc := services.NewProjectService(projectRepo)
	contactSvc := services.NewContactService(contactRepo, dispatcher)

	router := api.NewRouter(api.Dependencies{
		CORSOrigin:      cfg.CORSOrigin,
		HealthHandler:   handlers.NewHealthHandler(conn),
		ProjectsHandler: handlers.NewProjectsHandler(projectSvc),
		ContactHandler:  handlers.NewContactHandler(contactSvc),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
