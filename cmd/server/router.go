package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/tutor-api/internal/api"
	apiMiddleware "github.com/phrazzld/tutor-api/internal/api/middleware"
	"github.com/phrazzld/tutor-api/internal/metrics"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.jwtService, app.keyVerifier, &app.config.Auth)
	chatHandler := api.NewChatHandler(app.tutorService)
	imageHandler := api.NewImageHandler(app.tutorService)
	quizHandler := api.NewQuizHandler(app.tutorService)
	gradingHandler := api.NewGradingHandler(app.tutorService)
	examHandler := api.NewExamHandler(app.tutorService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Access key exchange (public)
		r.Post("/auth/token", authHandler.Token)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/chat", chatHandler.Chat)
			r.Post("/images", imageHandler.GenerateOrEdit)
			r.Post("/quizzes", quizHandler.Generate)
			r.Post("/submissions/grade", gradingHandler.GradeSubmission)
			r.Post("/code/analyze", gradingHandler.AnalyzeCode)
			r.Post("/exams", examHandler.GeneratePaper)
			r.Post("/exams/grade", examHandler.GradePaper)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
