package api

import (
	"net/http"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

// QuizHandler handles quiz generation requests.
type QuizHandler struct {
	tutorService tutor.Service
}

// NewQuizHandler creates a new QuizHandler with the given dependencies.
func NewQuizHandler(tutorService tutor.Service) *QuizHandler {
	return &QuizHandler{tutorService: tutorService}
}

// Generate handles the /api/quizzes endpoint. Tutor failures respond 200
// with an empty question list.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	questions, err := h.tutorService.GenerateQuizQuestions(
		r.Context(),
		req.Topics,
		domain.Language(req.Language),
	)
	if err != nil {
		shared.LogHandlerError(r, "generate_quiz", err)
		shared.RespondWithJSON(w, r, http.StatusOK, fallbackQuizResponse())
		return
	}

	out := make([]QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuizQuestionResponse{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizResponse{Questions: out})
}
