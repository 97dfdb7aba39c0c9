package gemini

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"google.golang.org/genai"

	"github.com/phrazzld/tutor-api/internal/config"
)

// mockCaller implements contentCaller for tests. It records every call and
// returns canned responses or custom function results.
type mockCaller struct {
	// GenerateContentFn allows test cases to mock GenerateContent behavior
	GenerateContentFn func(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)

	// GenerateImagesFn allows test cases to mock GenerateImages behavior
	GenerateImagesFn func(
		ctx context.Context,
		model string,
		prompt string,
		config *genai.GenerateImagesConfig,
	) (*genai.GenerateImagesResponse, error)

	// Default responses when no function is provided
	ContentResponse *genai.GenerateContentResponse
	ImagesResponse  *genai.GenerateImagesResponse
	Err             error

	// Call tracking for verification
	mu             sync.Mutex
	Models         []string
	Contents       [][]*genai.Content
	Configs        []*genai.GenerateContentConfig
	ImageModels    []string
	ImagePrompts   []string
	ImageConfigs   []*genai.GenerateImagesConfig
	ContentCalls   int
	ImageCallCount int
}

func (m *mockCaller) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	m.ContentCalls++
	m.Models = append(m.Models, model)
	m.Contents = append(m.Contents, contents)
	m.Configs = append(m.Configs, config)
	m.mu.Unlock()

	if m.GenerateContentFn != nil {
		return m.GenerateContentFn(ctx, model, contents, config)
	}
	return m.ContentResponse, m.Err
}

func (m *mockCaller) GenerateImages(
	ctx context.Context,
	model string,
	prompt string,
	config *genai.GenerateImagesConfig,
) (*genai.GenerateImagesResponse, error) {
	m.mu.Lock()
	m.ImageCallCount++
	m.ImageModels = append(m.ImageModels, model)
	m.ImagePrompts = append(m.ImagePrompts, prompt)
	m.ImageConfigs = append(m.ImageConfigs, config)
	m.mu.Unlock()

	if m.GenerateImagesFn != nil {
		return m.GenerateImagesFn(ctx, model, prompt, config)
	}
	return m.ImagesResponse, m.Err
}

// newTestTutor builds a GeminiTutor around the mock with a discard logger.
func newTestTutor(caller *mockCaller) *GeminiTutor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newTutorWithCaller(logger, caller, nil)
}

// configWithKey builds an LLMConfig carrying only the API key.
func configWithKey(key string) config.LLMConfig {
	return config.LLMConfig{GeminiAPIKey: key}
}

// textResponse builds a minimal successful response carrying the given text.
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}
