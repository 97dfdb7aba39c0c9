package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyMessage is returned when a chat message is empty.
	ErrEmptyMessage = errors.New("chat message cannot be empty")

	// ErrEmptyPrompt is returned when an image prompt is empty.
	ErrEmptyPrompt = errors.New("image prompt cannot be empty")

	// ErrNoTopics is returned when quiz generation is requested without topics.
	ErrNoTopics = errors.New("at least one quiz topic is required")

	// ErrEmptySubmission is returned when a submission has neither text nor files.
	ErrEmptySubmission = errors.New("submission cannot be empty")

	// ErrEmptyCode is returned when code analysis is requested without code.
	ErrEmptyCode = errors.New("code cannot be empty")

	// ErrNilPaper is returned when grading is requested without a paper.
	ErrNilPaper = errors.New("mock exam paper cannot be nil")
)
