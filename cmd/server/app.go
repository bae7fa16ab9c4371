package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskify/taskify-api/internal/config"
	"github.com/taskify/taskify-api/internal/platform/postgres"
	"github.com/taskify/taskify-api/internal/service"
	"github.com/taskify/taskify-api/internal/service/auth"
	"github.com/taskify/taskify-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore         store.UserStore
	categoryStore     store.CategoryStore
	taskStore         store.TaskStore
	notificationStore store.NotificationStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	taskService      *service.TaskService
	analyticsService *service.AnalyticsService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	bcryptVerifier := auth.NewBcryptVerifier()
	app.passwordHasher = bcryptVerifier
	app.passwordVerifier = bcryptVerifier

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.notificationStore = postgres.NewPostgresNotificationStore(db, logger)

	app.taskService = service.NewTaskService(app.taskStore, app.notificationStore, logger)
	app.analyticsService = service.NewAnalyticsService(app.taskStore, app.categoryStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
