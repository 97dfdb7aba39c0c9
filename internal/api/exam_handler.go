package api

import (
	"net/http"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

// ExamHandler handles mock exam paper generation and grading.
type ExamHandler struct {
	tutorService tutor.Service
}

// NewExamHandler creates a new ExamHandler with the given dependencies.
func NewExamHandler(tutorService tutor.Service) *ExamHandler {
	return &ExamHandler{tutorService: tutorService}
}

// GeneratePaper handles the /api/exams endpoint. Tutor failures respond
// 200 with the sentinel error paper so clients can render it like any
// other paper.
func (h *ExamHandler) GeneratePaper(w http.ResponseWriter, r *http.Request) {
	var req MockPaperRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	paper, err := h.tutorService.GenerateMockPaper(
		r.Context(),
		domain.PaperType(req.Type),
		domain.Language(req.Language),
	)
	if err != nil {
		shared.LogHandlerError(r, "generate_mock_paper", err)
		shared.RespondWithJSON(w, r, http.StatusOK, fallbackPaperResponse(req.Type))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, paperToDTOResponse(paper))
}

// GradePaper handles the /api/exams/grade endpoint. The client echoes the
// paper back alongside the answers; answers for unknown question IDs are
// passed through untouched. Tutor failures respond 200 with the sentinel
// ungraded result.
func (h *ExamHandler) GradePaper(w http.ResponseWriter, r *http.Request) {
	var req GradeMockPaperRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	questions := make([]domain.MockExamQuestion, 0, len(req.Paper.Questions))
	for _, q := range req.Paper.Questions {
		questions = append(questions, domain.MockExamQuestion{
			ID:       q.ID,
			Question: q.Question,
			Marks:    q.Marks,
		})
	}
	paper := &domain.MockExamPaper{
		ID:              req.Paper.ID,
		Type:            domain.PaperType(req.Paper.Type),
		Title:           req.Paper.Title,
		DurationMinutes: req.Paper.DurationMinutes,
		Questions:       questions,
	}
	if err := paper.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid paper: "+err.Error())
		return
	}

	answers := make(map[int]string, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.ID] = a.Answer
	}

	result, err := h.tutorService.GradeMockPaper(
		r.Context(),
		paper,
		answers,
		domain.Language(req.Language),
	)
	if err != nil {
		shared.LogHandlerError(r, "grade_mock_paper", err)
		shared.RespondWithJSON(w, r, http.StatusOK, fallbackResultResponse())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resultToDTOResponse(result))
}
