package api

// Fixed fallback bodies returned when the tutor service fails. The tutoring
// clients rely on a non-throwing contract: callers cannot distinguish
// failure causes from the return value alone, so every failure looks like
// an empty or sentinel result. The real error is logged with its trace ID
// via shared.LogHandlerError.

const (
	// fallbackChatText replaces the chat reply on any failure.
	fallbackChatText = "Connection error."

	// fallbackGradeFeedback replaces submission feedback on failure;
	// emptyGradeFeedback stands in when the model returned no text.
	fallbackGradeFeedback = "Error grading."
	emptyGradeFeedback    = "No feedback."

	// fallbackAnalysis replaces code analysis on failure; emptyAnalysis
	// stands in when the model returned no text.
	fallbackAnalysis = "Error analyzing code."
	emptyAnalysis    = "Analysis failed."

	// fallbackPaperID marks the sentinel paper returned on failure.
	// Detect it by ID or by empty questions plus zero duration.
	fallbackPaperID = "error"
)

// fallbackChatResponse is the chat fallback body.
func fallbackChatResponse() ChatResponse {
	return ChatResponse{
		Text:    fallbackChatText,
		Sources: []GroundingSourceResponse{},
	}
}

// fallbackQuizResponse is the quiz fallback body: an empty sequence, never
// an error.
func fallbackQuizResponse() QuizResponse {
	return QuizResponse{Questions: []QuizQuestionResponse{}}
}

// fallbackPaperResponse is the mock paper sentinel body.
func fallbackPaperResponse(paperType string) MockPaperResponse {
	return MockPaperResponse{
		ID:              fallbackPaperID,
		Type:            paperType,
		Title:           "Error",
		DurationMinutes: 0,
		Questions:       []MockExamQuestionDTO{},
	}
}

// fallbackResultResponse is the grading sentinel body.
func fallbackResultResponse() MockExamResultResponse {
	return MockExamResultResponse{
		Grade:            "U",
		Feedback:         "Error",
		QuestionFeedback: []QuestionFeedbackDTO{},
	}
}
