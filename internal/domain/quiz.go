package domain

import "errors"

// Quiz-specific validation errors
var (
	// ErrQuizQuestionEmpty is returned when a quiz question has no text.
	ErrQuizQuestionEmpty = errors.New("quiz question text cannot be empty")

	// ErrQuizOptionsEmpty is returned when a quiz question has no options.
	ErrQuizOptionsEmpty = errors.New("quiz question must have at least one option")

	// ErrQuizCorrectIndexRange is returned when the correct answer index does
	// not point into the options slice.
	ErrQuizCorrectIndexRange = errors.New("quiz correct index out of range")
)

// QuizQuestion is a single multiple-choice question produced by the quiz
// generator. Four options are expected but not required; CorrectIndex always
// indexes into Options. Never mutated after creation.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Validate checks if the QuizQuestion has valid data.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return ErrQuizQuestionEmpty
	}
	if len(q.Options) == 0 {
		return ErrQuizOptionsEmpty
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ErrQuizCorrectIndexRange
	}
	return nil
}
