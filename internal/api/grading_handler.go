package api

import (
	"net/http"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

// GradingHandler handles free-form submission grading and code analysis.
type GradingHandler struct {
	tutorService tutor.Service
}

// NewGradingHandler creates a new GradingHandler with the given dependencies.
func NewGradingHandler(tutorService tutor.Service) *GradingHandler {
	return &GradingHandler{tutorService: tutorService}
}

// GradeSubmission handles the /api/submissions/grade endpoint. A submission
// must carry text, files, or both. An empty model response becomes the
// "No feedback." placeholder and a tutor failure the "Error grading."
// placeholder; both respond 200.
func (h *GradingHandler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	var req GradeSubmissionRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if req.Text == "" && len(req.Files) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Submission must include text or files")
		return
	}

	files, err := decodeAttachments(req.Files)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid file: "+err.Error())
		return
	}

	feedback, err := h.tutorService.GradeSubmission(
		r.Context(),
		req.Text,
		files,
		domain.Language(req.Language),
	)
	if err != nil {
		shared.LogHandlerError(r, "grade_submission", err)
		shared.RespondWithJSON(w, r, http.StatusOK, FeedbackResponse{Feedback: fallbackGradeFeedback})
		return
	}
	if feedback == "" {
		feedback = emptyGradeFeedback
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FeedbackResponse{Feedback: feedback})
}

// AnalyzeCode handles the /api/code/analyze endpoint. Fallback behavior
// mirrors GradeSubmission with the analysis placeholders.
func (h *GradingHandler) AnalyzeCode(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeCodeRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	analysis, err := h.tutorService.AnalyzeCode(
		r.Context(),
		req.Code,
		req.CodeLanguage,
		domain.Language(req.Language),
	)
	if err != nil {
		shared.LogHandlerError(r, "analyze_code", err)
		shared.RespondWithJSON(w, r, http.StatusOK, AnalysisResponse{Analysis: fallbackAnalysis})
		return
	}
	if analysis == "" {
		analysis = emptyAnalysis
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalysisResponse{Analysis: analysis})
}
