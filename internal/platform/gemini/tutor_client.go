package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/metrics"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

// GeminiTutor implements the tutor.Service interface using Google's Gemini
// API. The embedded client handle is constructed once and reused read-only
// by every call; the struct itself holds no per-request state.
type GeminiTutor struct {
	// logger is used for structured logging
	logger *slog.Logger

	// caller issues the actual SDK requests
	caller contentCaller

	// metrics records per-call counters and durations; may be nil in tests
	metrics *metrics.Metrics
}

// Ensure GeminiTutor implements the tutor.Service interface
var _ tutor.Service = (*GeminiTutor)(nil)

// NewGeminiTutor creates a new GeminiTutor with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client construction, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the Gemini API key
//   - m: Prometheus collectors for upstream call instrumentation
//
// Returns a properly initialized GeminiTutor or an error if initialization
// fails.
func NewGeminiTutor(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	m *metrics.Metrics,
) (*GeminiTutor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", tutor.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", tutor.ErrInvalidConfig, err)
	}

	return &GeminiTutor{
		logger:  logger,
		caller:  client.Models,
		metrics: m,
	}, nil
}

// newTutorWithCaller wires a GeminiTutor around an arbitrary caller. Tests
// use it to substitute a mock for the SDK.
func newTutorWithCaller(logger *slog.Logger, caller contentCaller, m *metrics.Metrics) *GeminiTutor {
	return &GeminiTutor{
		logger:  logger,
		caller:  caller,
		metrics: m,
	}
}

// Chat implements tutor.Service.
func (g *GeminiTutor) Chat(
	ctx context.Context,
	history []string,
	message string,
	attachments []domain.Attachment,
	persona domain.Persona,
	language domain.Language,
	opts domain.ChatOptions,
) (*domain.ChatReply, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if err := validateAudience(persona, language); err != nil {
		return nil, err
	}
	for i := range attachments {
		if err := attachments[i].Validate(); err != nil {
			return nil, fmt.Errorf("attachment %d: %w", i, err)
		}
	}

	// Content order: history block (only when history exists), one inline
	// part per attachment, then the message itself.
	parts := make([]*genai.Part, 0, len(attachments)+2)
	if len(history) > 0 {
		parts = append(parts, genai.NewPartFromText("History:\n"+strings.Join(history, "\n")))
	}
	for _, a := range attachments {
		parts = append(parts, genai.NewPartFromBytes(a.Data, a.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(message))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	model, cfg := chatModelConfig(persona, language, opts)

	g.logger.DebugContext(ctx, "Starting chat turn",
		"model", model,
		"persona", persona,
		"language", language,
		"history_len", len(history),
		"attachments", len(attachments),
		"use_thinking", opts.UseThinking,
		"use_search", opts.UseSearch)

	resp, err := g.generate(ctx, "chat", model, contents, cfg)
	if err != nil {
		return nil, err
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: no text in response", tutor.ErrInvalidResponse)
	}

	return &domain.ChatReply{
		Text:    text,
		Sources: extractGroundingSources(resp),
	}, nil
}

// chatModelConfig resolves the model and request configuration for a chat
// turn. Thinking takes priority over search when both toggles are set.
func chatModelConfig(
	persona domain.Persona,
	language domain.Language,
	opts domain.ChatOptions,
) (string, *genai.GenerateContentConfig) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(persona, language), genai.RoleUser),
	}

	switch {
	case opts.UseThinking:
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(thinkingBudget),
		}
		return modelThinking, cfg
	case opts.UseSearch:
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
		return modelFast, cfg
	default:
		return modelChat, cfg
	}
}

// GenerateOrEditImage implements tutor.Service.
func (g *GeminiTutor) GenerateOrEditImage(
	ctx context.Context,
	prompt string,
	image *domain.Attachment,
	opts domain.ImageOptions,
	language domain.Language,
) (*domain.GeneratedImage, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("%w: unknown language %q", tutor.ErrInvalidConfig, language)
	}

	// Edit path: source image plus the prompt as combined input.
	if image != nil {
		if err := image.Validate(); err != nil {
			return nil, err
		}

		parts := []*genai.Part{
			genai.NewPartFromBytes(image.Data, image.MIMEType),
			genai.NewPartFromText(prompt),
		}
		contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

		resp, err := g.generate(ctx, "image_edit", modelImageEdit, contents, nil)
		if err != nil {
			return nil, err
		}

		edited := extractInlineImage(resp)
		if edited == nil {
			return nil, tutor.ErrNoImageData
		}
		return edited, nil
	}

	// Generation path: explicit aspect-ratio/size configuration. The size
	// tier selects the model variant.
	effective, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	model := modelImageGenerate
	if effective.Size == domain.ImageSizeLarge {
		model = modelImageGenerateLarge
	}

	imgCfg := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    string(effective.AspectRatio),
		OutputMIMEType: "image/png",
	}

	start := time.Now()
	resp, err := g.caller.GenerateImages(ctx, model, imagePreamble[language]+prompt, imgCfg)
	g.observe(ctx, "image_generate", model, start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tutor.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 ||
		resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, tutor.ErrNoImageData
	}

	generated := resp.GeneratedImages[0].Image
	mimeType := generated.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &domain.GeneratedImage{
		MIMEType: mimeType,
		Data:     generated.ImageBytes,
	}, nil
}

// GenerateQuizQuestions implements tutor.Service.
func (g *GeminiTutor) GenerateQuizQuestions(
	ctx context.Context,
	topics []string,
	language domain.Language,
) ([]domain.QuizQuestion, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("%w: unknown language %q", tutor.ErrInvalidConfig, language)
	}

	prompt := fmt.Sprintf(
		"Generate 5 multiple-choice questions covering the following 9618 Computer Science topics: %s.\n"+
			"Each question must have exactly 4 options and exactly one correct option, "+
			"identified by its zero-based index. %s",
		strings.Join(topics, ", "),
		languageInstruction(language),
	)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(corePrompt(language), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    quizResponseSchema,
	}

	resp, err := g.generate(ctx, "quiz", modelChat, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}

	cleaned := cleanJSONFence(resp.Text())
	if err := validateAgainstSchema(quizSchemaLoader, cleaned); err != nil {
		return nil, err
	}

	var payload []quizQuestionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse quiz JSON: %v", tutor.ErrInvalidResponse, err)
	}

	questions := make([]domain.QuizQuestion, 0, len(payload))
	for i, q := range payload {
		question := domain.QuizQuestion{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", tutor.ErrInvalidResponse, i, err)
		}
		questions = append(questions, question)
	}

	g.logger.InfoContext(ctx, "Generated quiz questions",
		"topics", len(topics),
		"questions", len(questions))

	return questions, nil
}

// GradeSubmission implements tutor.Service. An empty return with a nil
// error means the model produced no feedback text.
func (g *GeminiTutor) GradeSubmission(
	ctx context.Context,
	text string,
	files []domain.Attachment,
	language domain.Language,
) (string, error) {
	if text == "" && len(files) == 0 {
		return "", ErrEmptySubmission
	}
	if !language.IsValid() {
		return "", fmt.Errorf("%w: unknown language %q", tutor.ErrInvalidConfig, language)
	}

	parts := make([]*genai.Part, 0, len(files)+1)
	for _, f := range files {
		if err := f.Validate(); err != nil {
			return "", err
		}
		parts = append(parts, genai.NewPartFromBytes(f.Data, f.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(
		"Grade the following student submission against the 9618 mark scheme conventions. "+
			"Point out what earns marks and what loses them.\n\nSubmission:\n"+text,
	))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(corePrompt(language), genai.RoleUser),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.generate(ctx, "grade_submission", modelChat, contents, cfg)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// AnalyzeCode implements tutor.Service. An empty return with a nil error
// means the model produced no analysis text.
func (g *GeminiTutor) AnalyzeCode(
	ctx context.Context,
	code string,
	codeLang string,
	userLang domain.Language,
) (string, error) {
	if code == "" {
		return "", ErrEmptyCode
	}
	if !userLang.IsValid() {
		return "", fmt.Errorf("%w: unknown language %q", tutor.ErrInvalidConfig, userLang)
	}

	prompt := fmt.Sprintf(
		"Analyze the following %s code for correctness, style, and efficiency, "+
			"relating any issues to 9618 concepts where relevant.\n\n```%s\n%s\n```",
		codeLang, codeLang, code,
	)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(corePrompt(userLang), genai.RoleUser),
	}

	resp, err := g.generate(ctx, "analyze_code", modelChat, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// GenerateMockPaper implements tutor.Service.
func (g *GeminiTutor) GenerateMockPaper(
	ctx context.Context,
	paperType domain.PaperType,
	language domain.Language,
) (*domain.MockExamPaper, error) {
	if !paperType.IsValid() {
		return nil, domain.ErrPaperTypeInvalid
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("%w: unknown language %q", tutor.ErrInvalidConfig, language)
	}

	var focus string
	switch paperType {
	case domain.PaperTypeTheory:
		focus = "theory fundamentals: data representation, networks, hardware, system software, and security"
	case domain.PaperTypePseudocode:
		focus = "problem solving and programming: pseudocode tracing, writing, and algorithm design"
	}

	prompt := fmt.Sprintf(
		"Create a short 9618 mock exam paper on %s. "+
			"Produce a title and 4 to 6 numbered questions with a mark allocation each, "+
			"sized for a 30-minute sitting. %s",
		focus,
		languageInstruction(language),
	)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(corePrompt(language), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    paperResponseSchema,
	}

	resp, err := g.generate(ctx, "mock_paper", modelChat, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}

	cleaned := cleanJSONFence(resp.Text())
	if err := validateAgainstSchema(paperSchemaLoader, cleaned); err != nil {
		return nil, err
	}

	var payload paperPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse paper JSON: %v", tutor.ErrInvalidResponse, err)
	}

	questions := make([]domain.MockExamQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		questions = append(questions, domain.MockExamQuestion{
			ID:       q.ID,
			Question: q.Question,
			Marks:    q.Marks,
		})
	}

	paper, err := domain.NewMockExamPaper(paperType, payload.Title, questions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tutor.ErrInvalidResponse, err)
	}

	g.logger.InfoContext(ctx, "Generated mock paper",
		"paper_id", paper.ID,
		"paper_type", paper.Type,
		"questions", len(paper.Questions))

	return paper, nil
}

// GradeMockPaper implements tutor.Service.
func (g *GeminiTutor) GradeMockPaper(
	ctx context.Context,
	paper *domain.MockExamPaper,
	answers map[int]string,
	language domain.Language,
) (*domain.MockExamResult, error) {
	if paper == nil {
		return nil, ErrNilPaper
	}
	if err := paper.Validate(); err != nil {
		return nil, err
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("%w: unknown language %q", tutor.ErrInvalidConfig, language)
	}

	paperJSON, err := json.Marshal(paper)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize paper: %w", err)
	}

	// Answers sorted by question ID so the prompt is deterministic.
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var answerLines strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&answerLines, "Q%d: %s\n", id, answers[id])
	}

	prompt := fmt.Sprintf(
		"Mark the student's answers to this mock paper using 9618 marking conventions. "+
			"Award marks per question, compute totals, and assign a grade from A to U. %s\n\n"+
			"Paper:\n%s\n\nAnswers:\n%s",
		languageInstruction(language),
		paperJSON,
		answerLines.String(),
	)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(domain.PersonaExaminer, language), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    resultResponseSchema,
	}

	resp, err := g.generate(ctx, "grade_paper", modelChat, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}

	cleaned := cleanJSONFence(resp.Text())
	if err := validateAgainstSchema(resultSchemaLoader, cleaned); err != nil {
		return nil, err
	}

	var payload resultPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse grading JSON: %v", tutor.ErrInvalidResponse, err)
	}

	feedback := make([]domain.QuestionFeedback, 0, len(payload.QuestionFeedback))
	for _, f := range payload.QuestionFeedback {
		feedback = append(feedback, domain.QuestionFeedback{
			ID:           f.ID,
			Feedback:     f.Feedback,
			MarksAwarded: f.MarksAwarded,
		})
	}

	return &domain.MockExamResult{
		TotalMarks:       payload.TotalMarks,
		UserMarks:        payload.UserMarks,
		Grade:            payload.Grade,
		Feedback:         payload.Feedback,
		QuestionFeedback: feedback,
	}, nil
}

// generate issues one GenerateContent call and normalizes transport and
// response-shape failures into the tutor sentinel errors. Exactly one
// outbound request per invocation; no retries.
func (g *GeminiTutor) generate(
	ctx context.Context,
	operation string,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	start := time.Now()
	resp, err := g.caller.GenerateContent(ctx, model, contents, cfg)
	g.observe(ctx, operation, model, start, err)

	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"operation", operation,
			"model", model,
			"error", err)
		return nil, fmt.Errorf("%w: %v", tutor.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", tutor.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: finish reason safety", tutor.ErrContentBlocked)
	}

	if resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: empty content in response", tutor.ErrInvalidResponse)
	}

	return resp, nil
}

// observe records one upstream call in the metrics, when metrics are wired.
func (g *GeminiTutor) observe(ctx context.Context, operation, model string, start time.Time, err error) {
	duration := time.Since(start)
	status := "success"
	if err != nil {
		status = "error"
	}
	if g.metrics != nil {
		g.metrics.ObserveGeminiRequest(operation, model, status, duration)
	}
	g.logger.DebugContext(ctx, "Gemini API call finished",
		"operation", operation,
		"model", model,
		"status", status,
		"duration_ms", duration.Milliseconds())
}

// validateAudience checks the persona and language enums together.
func validateAudience(persona domain.Persona, language domain.Language) error {
	if !persona.IsValid() {
		return fmt.Errorf("%w: unknown persona %q", tutor.ErrInvalidConfig, persona)
	}
	if !language.IsValid() {
		return fmt.Errorf("%w: unknown language %q", tutor.ErrInvalidConfig, language)
	}
	return nil
}

// languageInstruction tells the model which language generated content must
// be written in.
func languageInstruction(language domain.Language) string {
	if language == domain.LanguageChinese {
		return "Write all generated content in Simplified Chinese."
	}
	return "Write all generated content in English."
}

// extractGroundingSources collects web citations from the first candidate's
// grounding metadata. The result is empty, never nil, when no grounding
// occurred.
func extractGroundingSources(resp *genai.GenerateContentResponse) []domain.GroundingSource {
	sources := []domain.GroundingSource{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		sources = append(sources, domain.GroundingSource{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	return sources
}

// extractInlineImage returns the first inline-data part of the response, or
// nil when the response carries no inline image.
func extractInlineImage(resp *genai.GenerateContentResponse) *domain.GeneratedImage {
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return &domain.GeneratedImage{
				MIMEType: mimeType,
				Data:     part.InlineData.Data,
			}
		}
	}
	return nil
}
