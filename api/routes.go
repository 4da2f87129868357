package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires every endpoint into the router. Registration, login and
// the health probe are public; everything else requires a bearer token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/register", handlers.userHandler.register())
		r.Post("/login", handlers.userHandler.login())
		r.Get("/health", healthHandler(startupTime))
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/logout", handlers.userHandler.logout())
		r.Get("/me", handlers.userHandler.me())
		r.Put("/me/profile", handlers.userHandler.upsertProfile())

		// User endpoints
		r.Get("/users", handlers.userHandler.getAllUsers())
		r.Get("/user/{userID}", handlers.userHandler.getUser())
		r.Delete("/user/{userID}", handlers.userHandler.deleteUser())

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Issue endpoints
		r.Get("/project/{projectID}/issues", handlers.issueHandler.getProjectIssues())
		r.Post("/project/{projectID}/issue", handlers.issueHandler.createIssue())
		r.Get("/issue/{issueID}", handlers.issueHandler.getIssue())
		r.Put("/issue/{issueID}", handlers.issueHandler.updateIssue())
		r.Delete("/issue/{issueID}", handlers.issueHandler.deleteIssue())

		// Comment endpoints
		r.Get("/issue/{issueID}/comments", handlers.commentHandler.getIssueComments())
		r.Post("/issue/{issueID}/comment", handlers.commentHandler.createComment())
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		// Task board endpoints
		r.Get("/tasks", handlers.taskHandler.getAllTasks())
		r.Get("/task/{taskID}", handlers.taskHandler.getTask())
		r.Post("/task", handlers.taskHandler.createTask())
		r.Put("/task/{taskID}", handlers.taskHandler.updateTask())
		r.Delete("/task/{taskID}", handlers.taskHandler.deleteTask())
	})
}

// healthHandler reports liveness and uptime.
func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.Logger)
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status":         "ok",
			"uptime_seconds": int(time.Since(startupTime).Seconds()),
		})
	}
}
