package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tutor-api/internal/domain"
)

// MockTutorService implements tutor.Service for testing
type MockTutorService struct {
	// Per-method function hooks; when nil the default values below are used
	ChatFn func(
		ctx context.Context,
		history []string,
		message string,
		attachments []domain.Attachment,
		persona domain.Persona,
		language domain.Language,
		opts domain.ChatOptions,
	) (*domain.ChatReply, error)
	GenerateOrEditImageFn func(
		ctx context.Context,
		prompt string,
		image *domain.Attachment,
		opts domain.ImageOptions,
		language domain.Language,
	) (*domain.GeneratedImage, error)
	GenerateQuizQuestionsFn func(
		ctx context.Context,
		topics []string,
		language domain.Language,
	) ([]domain.QuizQuestion, error)
	GradeSubmissionFn func(
		ctx context.Context,
		text string,
		files []domain.Attachment,
		language domain.Language,
	) (string, error)
	AnalyzeCodeFn func(
		ctx context.Context,
		code string,
		codeLang string,
		userLang domain.Language,
	) (string, error)
	GenerateMockPaperFn func(
		ctx context.Context,
		paperType domain.PaperType,
		language domain.Language,
	) (*domain.MockExamPaper, error)
	GradeMockPaperFn func(
		ctx context.Context,
		paper *domain.MockExamPaper,
		answers map[int]string,
		language domain.Language,
	) (*domain.MockExamResult, error)

	// Default response values
	Reply    *domain.ChatReply
	Image    *domain.GeneratedImage
	Quiz     []domain.QuizQuestion
	Feedback string
	Analysis string
	Paper    *domain.MockExamPaper
	Result   *domain.MockExamResult
	Err      error

	// Call tracking for verification
	Calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		ChatMessages []string
		ChatPersonas []domain.Persona
		ChatOpts     []domain.ChatOptions
		ImagePrompts []string
		QuizTopics   [][]string
		Submissions  []string
		Code         []string
		PaperTypes   []domain.PaperType
		GradedPapers []*domain.MockExamPaper
		Answers      []map[int]string
		Languages    []domain.Language
	}
}

func (m *MockTutorService) track(language domain.Language, fn func()) {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	m.Calls.Languages = append(m.Calls.Languages, language)
	fn()
}

// Chat implements the tutor.Service interface
func (m *MockTutorService) Chat(
	ctx context.Context,
	history []string,
	message string,
	attachments []domain.Attachment,
	persona domain.Persona,
	language domain.Language,
	opts domain.ChatOptions,
) (*domain.ChatReply, error) {
	m.track(language, func() {
		m.Calls.ChatMessages = append(m.Calls.ChatMessages, message)
		m.Calls.ChatPersonas = append(m.Calls.ChatPersonas, persona)
		m.Calls.ChatOpts = append(m.Calls.ChatOpts, opts)
	})
	if m.ChatFn != nil {
		return m.ChatFn(ctx, history, message, attachments, persona, language, opts)
	}
	return m.Reply, m.Err
}

// GenerateOrEditImage implements the tutor.Service interface
func (m *MockTutorService) GenerateOrEditImage(
	ctx context.Context,
	prompt string,
	image *domain.Attachment,
	opts domain.ImageOptions,
	language domain.Language,
) (*domain.GeneratedImage, error) {
	m.track(language, func() {
		m.Calls.ImagePrompts = append(m.Calls.ImagePrompts, prompt)
	})
	if m.GenerateOrEditImageFn != nil {
		return m.GenerateOrEditImageFn(ctx, prompt, image, opts, language)
	}
	return m.Image, m.Err
}

// GenerateQuizQuestions implements the tutor.Service interface
func (m *MockTutorService) GenerateQuizQuestions(
	ctx context.Context,
	topics []string,
	language domain.Language,
) ([]domain.QuizQuestion, error) {
	m.track(language, func() {
		m.Calls.QuizTopics = append(m.Calls.QuizTopics, topics)
	})
	if m.GenerateQuizQuestionsFn != nil {
		return m.GenerateQuizQuestionsFn(ctx, topics, language)
	}
	return m.Quiz, m.Err
}

// GradeSubmission implements the tutor.Service interface
func (m *MockTutorService) GradeSubmission(
	ctx context.Context,
	text string,
	files []domain.Attachment,
	language domain.Language,
) (string, error) {
	m.track(language, func() {
		m.Calls.Submissions = append(m.Calls.Submissions, text)
	})
	if m.GradeSubmissionFn != nil {
		return m.GradeSubmissionFn(ctx, text, files, language)
	}
	return m.Feedback, m.Err
}

// AnalyzeCode implements the tutor.Service interface
func (m *MockTutorService) AnalyzeCode(
	ctx context.Context,
	code string,
	codeLang string,
	userLang domain.Language,
) (string, error) {
	m.track(userLang, func() {
		m.Calls.Code = append(m.Calls.Code, code)
	})
	if m.AnalyzeCodeFn != nil {
		return m.AnalyzeCodeFn(ctx, code, codeLang, userLang)
	}
	return m.Analysis, m.Err
}

// GenerateMockPaper implements the tutor.Service interface
func (m *MockTutorService) GenerateMockPaper(
	ctx context.Context,
	paperType domain.PaperType,
	language domain.Language,
) (*domain.MockExamPaper, error) {
	m.track(language, func() {
		m.Calls.PaperTypes = append(m.Calls.PaperTypes, paperType)
	})
	if m.GenerateMockPaperFn != nil {
		return m.GenerateMockPaperFn(ctx, paperType, language)
	}
	return m.Paper, m.Err
}

// GradeMockPaper implements the tutor.Service interface
func (m *MockTutorService) GradeMockPaper(
	ctx context.Context,
	paper *domain.MockExamPaper,
	answers map[int]string,
	language domain.Language,
) (*domain.MockExamResult, error) {
	m.track(language, func() {
		m.Calls.GradedPapers = append(m.Calls.GradedPapers, paper)
		m.Calls.Answers = append(m.Calls.Answers, answers)
	})
	if m.GradeMockPaperFn != nil {
		return m.GradeMockPaperFn(ctx, paper, answers, language)
	}
	return m.Result, m.Err
}

// NewMockTutorServiceWithError creates a MockTutorService whose every
// operation returns the specified error
func NewMockTutorServiceWithError(err error) *MockTutorService {
	return &MockTutorService{Err: err}
}
