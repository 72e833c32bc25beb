// Package dto defines the output document schema. JSON field names live
// here and nowhere else; domain types stay serialization-free.
package dto

import "quiz-forge/internal/domain"

// QuizDocument is the top-level artifact written per window.
type QuizDocument struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

type QuizResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuestionItem `json:"questions"`
	Settings    QuizSettings   `json:"settings"`
	Metadata    QuizMetadata   `json:"metadata"`
}

type QuestionItem struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation"`
}

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type QuizSettings struct {
	RandomizeQuestions bool `json:"randomizeQuestions"`
	RandomizeOptions   bool `json:"randomizeOptions"`
	ShowExplanation    bool `json:"showExplanation"`
	ShowCorrectAnswer  bool `json:"showCorrectAnswer"`
	PassingScore       int  `json:"passingScore"`
	AllowNavigation    bool `json:"allowNavigation"`
	ShowProgressBar    bool `json:"showProgressBar"`
	ShowTimeRemaining  bool `json:"showTimeRemaining"`
}

type QuizMetadata struct {
	TotalPoints            int                    `json:"totalPoints"`
	EstimatedDuration      int                    `json:"estimatedDuration"`
	DifficultyDistribution DifficultyDistribution `json:"difficultyDistribution"`
	Tags                   []string               `json:"tags"`
}

type DifficultyDistribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// NewQuizDocument maps a window's quizzes to the output schema.
func NewQuizDocument(quizzes []*domain.Quiz) QuizDocument {
	doc := QuizDocument{Quizzes: make([]QuizResponse, 0, len(quizzes))}
	for _, quiz := range quizzes {
		doc.Quizzes = append(doc.Quizzes, fromDomainQuiz(quiz))
	}
	return doc
}

func fromDomainQuiz(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuestionItem, 0, len(quiz.Questions))
	for _, item := range quiz.Questions {
		questions = append(questions, QuestionItem{
			ID:            item.ID,
			Type:          item.Type,
			Question:      item.Question,
			Options:       fromDomainOptions(item.Options),
			CorrectAnswer: item.CorrectAnswer,
			Points:        item.Points,
			Explanation:   item.Explanation,
		})
	}
	return QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
		Settings: QuizSettings{
			RandomizeQuestions: quiz.Settings.RandomizeQuestions,
			RandomizeOptions:   quiz.Settings.RandomizeOptions,
			ShowExplanation:    quiz.Settings.ShowExplanation,
			ShowCorrectAnswer:  quiz.Settings.ShowCorrectAnswer,
			PassingScore:       quiz.Settings.PassingScore,
			AllowNavigation:    quiz.Settings.AllowNavigation,
			ShowProgressBar:    quiz.Settings.ShowProgressBar,
			ShowTimeRemaining:  quiz.Settings.ShowTimeRemaining,
		},
		Metadata: QuizMetadata{
			TotalPoints:       quiz.Metadata.TotalPoints,
			EstimatedDuration: quiz.Metadata.EstimatedDuration,
			DifficultyDistribution: DifficultyDistribution{
				Easy:   quiz.Metadata.DifficultyDistribution.Easy,
				Medium: quiz.Metadata.DifficultyDistribution.Medium,
				Hard:   quiz.Metadata.DifficultyDistribution.Hard,
			},
			Tags: quiz.Metadata.Tags,
		},
	}
}

func fromDomainOptions(options []domain.Option) []Option {
	result := make([]Option, 0, len(options))
	for _, opt := range options {
		result = append(result, Option{ID: opt.ID, Text: opt.Text})
	}
	return result
}
