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

func TestGenerateQuiz(t *testing.T) {
	t.Parallel()

	t.Run("successful generation returns questions", func(t *testing.T) {
		t.Parallel()

		mockTutor := &mocks.MockTutorService{
			Quiz: []domain.QuizQuestion{
				{
					Question:     "What is the time complexity of binary search?",
					Options:      []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
					CorrectIndex: 1,
					Explanation:  "Each comparison halves the search space.",
				},
			},
		}
		handler := NewQuizHandler(mockTutor)

		w := postJSON(t, handler.Generate, "/api/quizzes", map[string]interface{}{
			"topics":   []string{"Searching", "Complexity"},
			"language": "en",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp QuizResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Questions, 1)
		assert.Equal(t, 1, resp.Questions[0].CorrectIndex)
		assert.Len(t, resp.Questions[0].Options, 4)

		require.Len(t, mockTutor.Calls.QuizTopics, 1)
		assert.Equal(t, []string{"Searching", "Complexity"}, mockTutor.Calls.QuizTopics[0])
	})

	t.Run("tutor failure returns an empty question list with 200", func(t *testing.T) {
		t.Parallel()

		mockTutor := mocks.NewMockTutorServiceWithError(tutor.ErrInvalidResponse)
		handler := NewQuizHandler(mockTutor)

		w := postJSON(t, handler.Generate, "/api/quizzes", map[string]interface{}{
			"topics":   []string{"Recursion"},
			"language": "en",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"questions":[]`)
	})

	t.Run("empty topics return 400", func(t *testing.T) {
		t.Parallel()

		mockTutor := &mocks.MockTutorService{}
		handler := NewQuizHandler(mockTutor)

		w := postJSON(t, handler.Generate, "/api/quizzes", map[string]interface{}{
			"topics":   []string{},
			"language": "en",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mockTutor.Calls.QuizTopics)
	})
}
