package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Exam-specific validation errors
var (
	// ErrPaperTypeInvalid is returned when a paper type is not one of the
	// declared values.
	ErrPaperTypeInvalid = errors.New("paper type must be paper1 or paper2")

	// ErrPaperTitleEmpty is returned when a mock exam paper has no title.
	ErrPaperTitleEmpty = errors.New("mock exam paper title cannot be empty")

	// ErrPaperQuestionsEmpty is returned when a mock exam paper has no questions.
	ErrPaperQuestionsEmpty = errors.New("mock exam paper must have at least one question")
)

// PaperDurationMinutes is the fixed duration of every generated mock paper.
const PaperDurationMinutes = 30

// PaperType identifies which Cambridge 9618 paper a mock exam imitates.
type PaperType string

const (
	// PaperTypeTheory is the theory fundamentals paper.
	PaperTypeTheory PaperType = "paper1"

	// PaperTypePseudocode is the problem-solving and pseudocode paper.
	PaperTypePseudocode PaperType = "paper2"
)

// IsValid reports whether t is one of the declared paper types.
func (t PaperType) IsValid() bool {
	switch t {
	case PaperTypeTheory, PaperTypePseudocode:
		return true
	}
	return false
}

// MockExamQuestion is a single question on a generated mock paper.
type MockExamQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Marks    int    `json:"marks"`
}

// MockExamPaper is a generated practice test. The ID is unique per call and
// the duration is always PaperDurationMinutes, whatever the generating model
// implied.
type MockExamPaper struct {
	ID              string             `json:"id"`
	Type            PaperType          `json:"type"`
	Title           string             `json:"title"`
	DurationMinutes int                `json:"duration_minutes"`
	Questions       []MockExamQuestion `json:"questions"`
}

// NewMockExamPaper creates a MockExamPaper with a fresh unique ID and the
// fixed duration. Returns an error if validation fails.
func NewMockExamPaper(paperType PaperType, title string, questions []MockExamQuestion) (*MockExamPaper, error) {
	paper := &MockExamPaper{
		ID:              uuid.New().String(),
		Type:            paperType,
		Title:           title,
		DurationMinutes: PaperDurationMinutes,
		Questions:       questions,
	}

	if err := paper.Validate(); err != nil {
		return nil, err
	}

	return paper, nil
}

// Validate checks if the MockExamPaper has valid data.
func (p *MockExamPaper) Validate() error {
	if !p.Type.IsValid() {
		return ErrPaperTypeInvalid
	}
	if p.Title == "" {
		return ErrPaperTitleEmpty
	}
	if len(p.Questions) == 0 {
		return ErrPaperQuestionsEmpty
	}
	return nil
}

// QuestionFeedback is the per-question portion of a graded mock paper.
type QuestionFeedback struct {
	ID           int    `json:"id"`
	Feedback     string `json:"feedback"`
	MarksAwarded int    `json:"marks_awarded"`
}

// MockExamResult is the graded outcome of a mock paper submission. All
// fields round-trip the grading response without transformation.
type MockExamResult struct {
	TotalMarks       int                `json:"total_marks"`
	UserMarks        int                `json:"user_marks"`
	Grade            string             `json:"grade"`
	Feedback         string             `json:"feedback"`
	QuestionFeedback []QuestionFeedback `json:"question_feedback"`
}
