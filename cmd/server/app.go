package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/metrics"
	"github.com/phrazzld/tutor-api/internal/platform/gemini"
	"github.com/phrazzld/tutor-api/internal/service/auth"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	metrics *metrics.Metrics

	jwtService  auth.JWTService
	keyVerifier auth.PasswordVerifier

	tutorService tutor.Service
}

// newApplication creates a new application instance with all dependencies
// initialized. The context is used for outbound client construction.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	m := metrics.New()

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	tutorService, err := gemini.NewGeminiTutor(ctx, logger, cfg.LLM, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create tutor service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		metrics:      m,
		jwtService:   jwtService,
		keyVerifier:  auth.NewBcryptVerifier(),
		tutorService: tutorService,
	}, nil
}

// cleanup releases application resources before shutdown. The Gemini client
// holds no connections that need explicit teardown; the hook exists so
// future dependencies have a place to release.
func (app *application) cleanup() {
	app.logger.Debug("application cleanup completed")
}
