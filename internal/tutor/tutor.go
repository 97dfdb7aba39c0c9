package tutor

import (
	"context"

	"github.com/phrazzld/tutor-api/internal/domain"
)

// Service defines the interface for the tutoring operations backed by an
// external generative-AI service. This interface serves as a boundary
// between the application core and the Gemini integration, following the
// hexagonal architecture pattern.
//
// Every operation is stateless and issues exactly one outbound request; no
// operation retries or fans out. Failures are reported as errors (see
// errors.go); the HTTP layer maps them to the fixed fallback bodies the
// tutoring clients expect.
type Service interface {
	// Chat runs a single tutoring turn. The system instruction is selected
	// by (persona, language); history, attachments, and the message are
	// assembled into one content sequence. When opts.UseThinking is set the
	// thinking model is used regardless of UseSearch; otherwise UseSearch
	// selects the fast model with the web-search tool. Sources holds any
	// grounding citations, empty when none were returned.
	Chat(
		ctx context.Context,
		history []string,
		message string,
		attachments []domain.Attachment,
		persona domain.Persona,
		language domain.Language,
		opts domain.ChatOptions,
	) (*domain.ChatReply, error)

	// GenerateOrEditImage creates an image from the prompt, or edits the
	// provided source image when image is non-nil. Returns ErrNoImageData
	// when the response carries no inline image.
	GenerateOrEditImage(
		ctx context.Context,
		prompt string,
		image *domain.Attachment,
		opts domain.ImageOptions,
		language domain.Language,
	) (*domain.GeneratedImage, error)

	// GenerateQuizQuestions produces multiple-choice questions covering the
	// given topics via schema-constrained generation.
	GenerateQuizQuestions(
		ctx context.Context,
		topics []string,
		language domain.Language,
	) ([]domain.QuizQuestion, error)

	// GradeSubmission marks a free-form submission (text plus any uploaded
	// files) and returns the feedback text.
	GradeSubmission(
		ctx context.Context,
		text string,
		files []domain.Attachment,
		language domain.Language,
	) (string, error)

	// AnalyzeCode reviews the given source code, written in codeLang, and
	// returns the analysis in the user's language.
	AnalyzeCode(
		ctx context.Context,
		code string,
		codeLang string,
		userLang domain.Language,
	) (string, error)

	// GenerateMockPaper produces a complete practice paper of the given
	// type with a fresh unique ID and the fixed 30-minute duration.
	GenerateMockPaper(
		ctx context.Context,
		paperType domain.PaperType,
		language domain.Language,
	) (*domain.MockExamPaper, error)

	// GradeMockPaper marks the answers to a previously generated paper.
	// answers maps question ID to the submitted answer text.
	GradeMockPaper(
		ctx context.Context,
		paper *domain.MockExamPaper,
		answers map[int]string,
		language domain.Language,
	) (*domain.MockExamResult, error)
}
