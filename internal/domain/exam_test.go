package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperTypeIsValid(t *testing.T) {
	assert.True(t, PaperTypeTheory.IsValid())
	assert.True(t, PaperTypePseudocode.IsValid())
	assert.False(t, PaperType("paper3").IsValid())
	assert.False(t, PaperType("").IsValid())
}

func TestNewMockExamPaper(t *testing.T) {
	questions := []MockExamQuestion{
		{ID: 1, Question: "Define abstraction.", Marks: 2},
		{ID: 2, Question: "Trace the pseudocode below.", Marks: 5},
	}

	t.Run("valid paper", func(t *testing.T) {
		paper, err := NewMockExamPaper(PaperTypeTheory, "Theory Fundamentals Mock", questions)
		require.NoError(t, err)

		assert.NotEmpty(t, paper.ID)
		assert.Equal(t, PaperTypeTheory, paper.Type)
		assert.Equal(t, PaperDurationMinutes, paper.DurationMinutes)
		assert.Len(t, paper.Questions, 2)
	})

	t.Run("IDs are unique per call", func(t *testing.T) {
		first, err := NewMockExamPaper(PaperTypeTheory, "Mock A", questions)
		require.NoError(t, err)
		second, err := NewMockExamPaper(PaperTypeTheory, "Mock B", questions)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("invalid paper type", func(t *testing.T) {
		paper, err := NewMockExamPaper(PaperType("paper9"), "Mock", questions)
		assert.Nil(t, paper)
		assert.ErrorIs(t, err, ErrPaperTypeInvalid)
	})

	t.Run("empty title", func(t *testing.T) {
		paper, err := NewMockExamPaper(PaperTypeTheory, "", questions)
		assert.Nil(t, paper)
		assert.ErrorIs(t, err, ErrPaperTitleEmpty)
	})

	t.Run("no questions", func(t *testing.T) {
		paper, err := NewMockExamPaper(PaperTypeTheory, "Mock", nil)
		assert.Nil(t, paper)
		assert.ErrorIs(t, err, ErrPaperQuestionsEmpty)
	})
}
