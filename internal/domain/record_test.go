package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionRecordValidate(t *testing.T) {
	record := QuestionRecord{
		Question: "What planet is known as the Red Planet?",
		Options: []Option{
			{ID: "0", Text: "Venus"},
			{ID: "1", Text: "Mars"},
		},
		CorrectAnswer: "1",
	}
	assert.NoError(t, record.Validate())

	noOptions := QuestionRecord{Question: "Empty?", CorrectAnswer: "0"}
	assert.Error(t, noOptions.Validate())

	danglingAnswer := QuestionRecord{
		Question:      "Dangling?",
		Options:       []Option{{ID: "0", Text: "Only"}},
		CorrectAnswer: "3",
	}
	assert.Error(t, danglingAnswer.Validate())
}

func TestQuestionRecordOptionText(t *testing.T) {
	record := QuestionRecord{
		Options: []Option{
			{ID: "0", Text: "Venus"},
			{ID: "1", Text: "Mars"},
		},
	}

	text, ok := record.OptionText("1")
	assert.True(t, ok)
	assert.Equal(t, "Mars", text)

	_, ok = record.OptionText("9")
	assert.False(t, ok)
}

func TestQuizValidate(t *testing.T) {
	quiz := Quiz{
		ID: "id",
		Questions: []QuizItem{
			{ID: "q1", Points: 10},
			{ID: "q2", Points: 10},
		},
		Metadata: QuizMetadata{
			TotalPoints:            20,
			DifficultyDistribution: DifficultyDistribution{Easy: 0, Medium: 0, Hard: 2},
		},
	}
	assert.NoError(t, quiz.Validate())

	badPoints := quiz
	badPoints.Metadata.TotalPoints = 30
	assert.Error(t, badPoints.Validate())

	badDistribution := quiz
	badDistribution.Metadata.DifficultyDistribution = DifficultyDistribution{Easy: 1}
	assert.Error(t, badDistribution.Validate())

	assert.Error(t, (&Quiz{}).Validate())
}
