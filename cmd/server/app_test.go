package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/metrics"
	"github.com/phrazzld/tutor-api/internal/mocks"
	"github.com/phrazzld/tutor-api/internal/service/auth"
)

const testAccessKey = "open-sesame"

// newTestApplication builds an application around a mock tutor service and
// a real JWT service, suitable for exercising the full router.
func newTestApplication(t *testing.T, tutorService *mocks.MockTutorService) *application {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAccessKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		Auth: config.AuthConfig{
			JWTSecret:            "this-is-a-test-secret-at-least-32-chars",
			TokenLifetimeMinutes: 60,
			AccessKeyHash:        string(hash),
		},
		LLM: config.LLMConfig{GeminiAPIKey: "test-key"},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:       cfg,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:      metrics.NewForTesting(),
		jwtService:   jwtService,
		keyVerifier:  auth.NewBcryptVerifier(),
		tutorService: tutorService,
	}
}

func obtainToken(t *testing.T, server *httptest.Server, accessKey string) (string, int) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"access_key": accessKey})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/auth/token", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokenResp))
	return tokenResp.Token, resp.StatusCode
}

func TestRouterAuthFlow(t *testing.T) {
	t.Parallel()

	mockTutor := &mocks.MockTutorService{
		Reply: &domain.ChatReply{Text: "hello from the tutor"},
	}
	app := newTestApplication(t, mockTutor)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	t.Run("wrong access key is rejected", func(t *testing.T) {
		_, status := obtainToken(t, server, "wrong-key")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("chat without a token is rejected", func(t *testing.T) {
		body := bytes.NewReader([]byte(`{"message":"hi","persona":"standard","language":"en"}`))
		resp, err := http.Post(server.URL+"/api/chat", "application/json", body)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, mockTutor.Calls.ChatMessages)
	})

	t.Run("token exchange then chat succeeds", func(t *testing.T) {
		token, status := obtainToken(t, server, testAccessKey)
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, token)

		body := bytes.NewReader([]byte(`{"message":"hi","persona":"standard","language":"en"}`))
		req, err := http.NewRequest(http.MethodPost, server.URL+"/api/chat", body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var chatResp struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&chatResp))
		assert.Equal(t, "hello from the tutor", chatResp.Text)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodPost,
			server.URL+"/api/chat",
			bytes.NewReader([]byte(`{"message":"hi","persona":"standard","language":"en"}`)),
		)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer not.a.token")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRouterProtectedRoutes(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t, &mocks.MockTutorService{})
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	routes := []string{
		"/api/chat",
		"/api/images",
		"/api/quizzes",
		"/api/submissions/grade",
		"/api/code/analyze",
		"/api/exams",
		"/api/exams/grade",
	}

	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			resp, err := http.Post(server.URL+route, "application/json", bytes.NewReader([]byte(`{}`)))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRouterHealthAndMetrics(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t, &mocks.MockTutorService{})
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	t.Run("health is public", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "OK", string(body))
	})

	t.Run("metrics is public", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestNewApplicationValidation(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := newApplication(context.Background(), nil, logger)
		assert.Error(t, err)
	})

	t.Run("nil logger is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := newApplication(context.Background(), &config.Config{}, nil)
		assert.Error(t, err)
	})
}
