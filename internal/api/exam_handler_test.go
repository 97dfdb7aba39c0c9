package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/mocks"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

func testPaper(t *testing.T) *domain.MockExamPaper {
	t.Helper()

	paper, err := domain.NewMockExamPaper(domain.PaperTypeTheory, "Theory Practice", []domain.MockExamQuestion{
		{ID: 1, Question: "Define two's complement.", Marks: 2},
		{ID: 2, Question: "Explain why floating point addition is not associative.", Marks: 4},
	})
	require.NoError(t, err)
	return paper
}

func TestGeneratePaper(t *testing.T) {
	t.Parallel()

	t.Run("successful generation returns the paper", func(t *testing.T) {
		t.Parallel()

		paper := testPaper(t)
		mockTutor := &mocks.MockTutorService{Paper: paper}
		handler := NewExamHandler(mockTutor)

		w := postJSON(t, handler.GeneratePaper, "/api/exams", map[string]interface{}{
			"type":     "paper1",
			"language": "en",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp MockPaperResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, paper.ID, resp.ID)
		assert.Equal(t, "paper1", resp.Type)
		assert.Equal(t, domain.PaperDurationMinutes, resp.DurationMinutes)
		require.Len(t, resp.Questions, 2)
		assert.Equal(t, 4, resp.Questions[1].Marks)

		require.Len(t, mockTutor.Calls.PaperTypes, 1)
		assert.Equal(t, domain.PaperTypeTheory, mockTutor.Calls.PaperTypes[0])
	})

	t.Run("tutor failure returns the sentinel error paper with 200", func(t *testing.T) {
		t.Parallel()

		mockTutor := mocks.NewMockTutorServiceWithError(tutor.ErrGenerationFailed)
		handler := NewExamHandler(mockTutor)

		w := postJSON(t, handler.GeneratePaper, "/api/exams", map[string]interface{}{
			"type":     "paper2",
			"language": "zh",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp MockPaperResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "error", resp.ID)
		assert.Equal(t, "paper2", resp.Type)
		assert.Equal(t, "Error", resp.Title)
		assert.Zero(t, resp.DurationMinutes)
		assert.Empty(t, resp.Questions)
	})

	t.Run("unknown paper type returns 400", func(t *testing.T) {
		t.Parallel()

		mockTutor := &mocks.MockTutorService{}
		handler := NewExamHandler(mockTutor)

		w := postJSON(t, handler.GeneratePaper, "/api/exams", map[string]interface{}{
			"type":     "paper3",
			"language": "en",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mockTutor.Calls.PaperTypes)
	})
}

func TestGradePaper(t *testing.T) {
	t.Parallel()

	paperPayload := func(t *testing.T) map[string]interface{} {
		t.Helper()
		paper := testPaper(t)
		return map[string]interface{}{
			"id":               paper.ID,
			"type":             string(paper.Type),
			"title":            paper.Title,
			"duration_minutes": paper.DurationMinutes,
			"questions": []map[string]interface{}{
				{"id": 1, "question": paper.Questions[0].Question, "marks": 2},
				{"id": 2, "question": paper.Questions[1].Question, "marks": 4},
			},
		}
	}

	t.Run("successful grading returns the full result", func(t *testing.T) {
		t.Parallel()

		mockTutor := &mocks.MockTutorService{
			Result: &domain.MockExamResult{
				TotalMarks: 6,
				UserMarks:  5,
				Grade:      "B",
				Feedback:   "Strong overall.",
				QuestionFeedback: []domain.QuestionFeedback{
					{ID: 1, Feedback: "Correct.", MarksAwarded: 2},
					{ID: 2, Feedback: "Missing rounding example.", MarksAwarded: 3},
				},
			},
		}
		handler := NewExamHandler(mockTutor)

		w := postJSON(t, handler.GradePaper, "/api/exams/grade", map[string]interface{}{
			"paper": paperPayload(t),
			"answers": []map[string]interface{}{
				{"id": 1, "answer": "Invert the bits and add one."},
				{"id": 2, "answer": "Rounding error accumulates differently."},
			},
			"language": "en",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp MockExamResultResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 6, resp.TotalMarks)
		assert.Equal(t, 5, resp.UserMarks)
		assert.Equal(t, "B", resp.Grade)
		require.Len(t, resp.QuestionFeedback, 2)
		assert.Equal(t, 3, resp.QuestionFeedback[1].MarksAwarded)

		require.Len(t, mockTutor.Calls.Answers, 1)
		assert.Equal(t, "Invert the bits and add one.", mockTutor.Calls.Answers[0][1])
		require.Len(t, mockTutor.Calls.GradedPapers, 1)
		assert.Len(t, mockTutor.Calls.GradedPapers[0].Questions, 2)
	})

	t.Run("unanswered questions are simply absent from the map", func(t *testing.T) {
		t.Parallel()

		mockTutor := &mocks.MockTutorService{Result: &domain.MockExamResult{Grade: "E"}}
		handler := NewExamHandler(mockTutor)

		w := postJSON(t, handler.GradePaper, "/api/exams/grade", map[string]interface{}{
			"paper": paperPayload(t),
			"answers": []map[string]interface{}{
				{"id": 2, "answer": "Partial answer."},
			},
			"language": "en",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, mockTutor.Calls.Answers, 1)
		answers := mockTutor.Calls.Answers[0]
		assert.Len(t, answers, 1)
		_, ok := answers[1]
		assert.False(t, ok)
	})

	t.Run("tutor failure returns the sentinel ungraded result with 200", func(t *testing.T) {
		t.Parallel()

		mockTutor := mocks.NewMockTutorServiceWithError(tutor.ErrInvalidResponse)
		handler := NewExamHandler(mockTutor)

		w := postJSON(t, handler.GradePaper, "/api/exams/grade", map[string]interface{}{
			"paper":    paperPayload(t),
			"answers":  []map[string]interface{}{},
			"language": "en",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp MockExamResultResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "U", resp.Grade)
		assert.Equal(t, "Error", resp.Feedback)
		assert.Zero(t, resp.TotalMarks)
		assert.Empty(t, resp.QuestionFeedback)
	})

	t.Run("paper without questions returns 400", func(t *testing.T) {
		t.Parallel()

		mockTutor := &mocks.MockTutorService{}
		handler := NewExamHandler(mockTutor)

		w := postJSON(t, handler.GradePaper, "/api/exams/grade", map[string]interface{}{
			"paper": map[string]interface{}{
				"id":        "abc",
				"type":      "paper1",
				"title":     "Empty",
				"questions": []map[string]interface{}{},
			},
			"language": "en",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mockTutor.Calls.GradedPapers)
	})
}
