package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskify/taskify-api/internal/api"
	apiMiddleware "github.com/taskify/taskify-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	categoryHandler := api.NewCategoryHandler(app.categoryStore)
	taskHandler := api.NewTaskHandler(app.taskService)
	notificationHandler := api.NewNotificationHandler(app.notificationStore)
	analyticsHandler := api.NewAnalyticsHandler(app.analyticsService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			// Category endpoints
			r.Post("/categories", categoryHandler.Create)
			r.Get("/categories", categoryHandler.List)
			r.Delete("/categories/{id}", categoryHandler.Delete)

			// Task endpoints
			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks", taskHandler.List)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)

			// Analytics endpoint
			r.Get("/analytics", analyticsHandler.Get)

			// Notification endpoints
			r.Get("/notifications", notificationHandler.List)
			r.Put("/notifications/{id}/read", notificationHandler.MarkRead)
			r.Delete("/notifications/{id}", notificationHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
