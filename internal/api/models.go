package api

import (
	"encoding/base64"
	"fmt"

	"github.com/phrazzld/tutor-api/internal/domain"
)

// AttachmentPayload is an inline file in a request, base64-encoded.
type AttachmentPayload struct {
	MIMEType string `json:"mime_type" validate:"required"`
	Data     string `json:"data"      validate:"required,base64"`
}

// toAttachment decodes the payload into a domain attachment.
func (p AttachmentPayload) toAttachment() (*domain.Attachment, error) {
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 attachment data: %w", err)
	}
	return domain.NewAttachment(p.MIMEType, data)
}

// decodeAttachments converts a slice of payloads, reporting the index of
// the first invalid one.
func decodeAttachments(payloads []AttachmentPayload) ([]domain.Attachment, error) {
	attachments := make([]domain.Attachment, 0, len(payloads))
	for i, p := range payloads {
		a, err := p.toAttachment()
		if err != nil {
			return nil, fmt.Errorf("attachment %d: %w", i, err)
		}
		attachments = append(attachments, *a)
	}
	return attachments, nil
}

// TokenRequest represents the request body for exchanging the access key
// for a session token.
type TokenRequest struct {
	AccessKey string `json:"access_key" validate:"required"`
}

// TokenResponse carries the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ChatRequest represents the request body for a chat turn.
type ChatRequest struct {
	History     []string            `json:"history"`
	Message     string              `json:"message"  validate:"required,min=1"`
	Attachments []AttachmentPayload `json:"attachments" validate:"dive"`
	Persona     string              `json:"persona"  validate:"required,oneof=standard socratic examiner"`
	Language    string              `json:"language" validate:"required,oneof=en zh"`
	UseSearch   bool                `json:"use_search"`
	UseThinking bool                `json:"use_thinking"`
}

// GroundingSourceResponse is one web citation in a chat response.
type GroundingSourceResponse struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatResponse represents the response data for a chat turn.
type ChatResponse struct {
	Text    string                    `json:"text"`
	Sources []GroundingSourceResponse `json:"sources"`
}

// ImageRequest represents the request body for image generation or editing.
type ImageRequest struct {
	Prompt      string             `json:"prompt" validate:"required,min=1"`
	Image       *AttachmentPayload `json:"image,omitempty"`
	AspectRatio string             `json:"aspect_ratio" validate:"omitempty,oneof=1:1 16:9 9:16 4:3 3:4"`
	Size        string             `json:"size"         validate:"omitempty,oneof=1K 2K"`
	Language    string             `json:"language"     validate:"required,oneof=en zh"`
}

// ImagePayload is an inline image in a response, base64-encoded.
type ImagePayload struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// ImageResponse represents the response data for an image request. Image is
// null when the model returned no image data.
type ImageResponse struct {
	Image *ImagePayload `json:"image"`
}

// QuizRequest represents the request body for quiz generation.
type QuizRequest struct {
	Topics   []string `json:"topics"   validate:"required,min=1,dive,required"`
	Language string   `json:"language" validate:"required,oneof=en zh"`
}

// QuizQuestionResponse is one generated multiple-choice question.
type QuizQuestionResponse struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// QuizResponse represents the response data for quiz generation.
type QuizResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
}

// GradeSubmissionRequest represents the request body for grading a
// free-form submission. Text may be empty when files carry the work.
type GradeSubmissionRequest struct {
	Text     string              `json:"text"`
	Files    []AttachmentPayload `json:"files"    validate:"dive"`
	Language string              `json:"language" validate:"required,oneof=en zh"`
}

// FeedbackResponse carries grading feedback text.
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// AnalyzeCodeRequest represents the request body for code analysis.
type AnalyzeCodeRequest struct {
	Code         string `json:"code"          validate:"required,min=1"`
	CodeLanguage string `json:"code_language" validate:"required,min=1"`
	Language     string `json:"language"      validate:"required,oneof=en zh"`
}

// AnalysisResponse carries code analysis text.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// MockPaperRequest represents the request body for generating a mock paper.
type MockPaperRequest struct {
	Type     string `json:"type"     validate:"required,oneof=paper1 paper2"`
	Language string `json:"language" validate:"required,oneof=en zh"`
}

// MockExamQuestionDTO is one question of a mock paper, in requests and
// responses alike.
type MockExamQuestionDTO struct {
	ID       int    `json:"id"       validate:"required"`
	Question string `json:"question" validate:"required"`
	Marks    int    `json:"marks"    validate:"required,gt=0"`
}

// MockPaperResponse represents a generated mock paper.
type MockPaperResponse struct {
	ID              string                `json:"id"`
	Type            string                `json:"type"`
	Title           string                `json:"title"`
	DurationMinutes int                   `json:"duration_minutes"`
	Questions       []MockExamQuestionDTO `json:"questions"`
}

// MockPaperPayload is the paper being graded, echoed back by the client.
type MockPaperPayload struct {
	ID              string                `json:"id"    validate:"required"`
	Type            string                `json:"type"  validate:"required,oneof=paper1 paper2"`
	Title           string                `json:"title" validate:"required"`
	DurationMinutes int                   `json:"duration_minutes"`
	Questions       []MockExamQuestionDTO `json:"questions" validate:"required,min=1,dive"`
}

// AnswerPayload is one submitted answer, keyed by question ID.
type AnswerPayload struct {
	ID     int    `json:"id"`
	Answer string `json:"answer"`
}

// GradeMockPaperRequest represents the request body for grading a mock paper.
type GradeMockPaperRequest struct {
	Paper    MockPaperPayload `json:"paper"    validate:"required"`
	Answers  []AnswerPayload  `json:"answers"  validate:"dive"`
	Language string           `json:"language" validate:"required,oneof=en zh"`
}

// QuestionFeedbackDTO is the per-question portion of a grading response.
type QuestionFeedbackDTO struct {
	ID           int    `json:"id"`
	Feedback     string `json:"feedback"`
	MarksAwarded int    `json:"marks_awarded"`
}

// MockExamResultResponse represents a graded mock paper.
type MockExamResultResponse struct {
	TotalMarks       int                   `json:"total_marks"`
	UserMarks        int                   `json:"user_marks"`
	Grade            string                `json:"grade"`
	Feedback         string                `json:"feedback"`
	QuestionFeedback []QuestionFeedbackDTO `json:"question_feedback"`
}

// paperToDTOResponse converts a domain.MockExamPaper to its response form.
func paperToDTOResponse(paper *domain.MockExamPaper) MockPaperResponse {
	questions := make([]MockExamQuestionDTO, 0, len(paper.Questions))
	for _, q := range paper.Questions {
		questions = append(questions, MockExamQuestionDTO{
			ID:       q.ID,
			Question: q.Question,
			Marks:    q.Marks,
		})
	}
	return MockPaperResponse{
		ID:              paper.ID,
		Type:            string(paper.Type),
		Title:           paper.Title,
		DurationMinutes: paper.DurationMinutes,
		Questions:       questions,
	}
}

// resultToDTOResponse converts a domain.MockExamResult to its response form.
func resultToDTOResponse(result *domain.MockExamResult) MockExamResultResponse {
	feedback := make([]QuestionFeedbackDTO, 0, len(result.QuestionFeedback))
	for _, f := range result.QuestionFeedback {
		feedback = append(feedback, QuestionFeedbackDTO{
			ID:           f.ID,
			Feedback:     f.Feedback,
			MarksAwarded: f.MarksAwarded,
		})
	}
	return MockExamResultResponse{
		TotalMarks:       result.TotalMarks,
		UserMarks:        result.UserMarks,
		Grade:            result.Grade,
		Feedback:         result.Feedback,
		QuestionFeedback: feedback,
	}
}
