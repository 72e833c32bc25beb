package domain

// QuizItemType is the only question type emitted by this pipeline.
const QuizItemType = "MULTIPLE_CHOICE"

// QuizItem is one question embedded in a quiz, with presentation fields
// (points, explanation) resolved.
type QuizItem struct {
	ID            string
	Type          string
	Question      string
	Options       []Option
	CorrectAnswer string
	Points        int
	Explanation   string
}

// QuizSettings carries the fixed presentation flags attached to every quiz.
type QuizSettings struct {
	RandomizeQuestions bool
	RandomizeOptions   bool
	ShowExplanation    bool
	ShowCorrectAnswer  bool
	PassingScore       int
	AllowNavigation    bool
	ShowProgressBar    bool
	ShowTimeRemaining  bool
}

// DifficultyDistribution partitions a quiz's questions into difficulty
// buckets. Easy + Medium + Hard always equals the question count.
type DifficultyDistribution struct {
	Easy   int
	Medium int
	Hard   int
}

// QuizMetadata is the derived summary attached to a quiz. EstimatedDuration
// is in minutes. Tags are ordered and deduplicated.
type QuizMetadata struct {
	TotalPoints            int
	EstimatedDuration      int
	DifficultyDistribution DifficultyDistribution
	Tags                   []string
}

// Quiz is one generated quiz: a sampled group of questions plus the
// generated title, description and presentation metadata. Created once per
// batch group and immutable afterwards.
type Quiz struct {
	ID          string
	Title       string
	Description string
	Questions   []QuizItem
	Settings    QuizSettings
	Metadata    QuizMetadata
}

// Validate validates the quiz invariants: a non-empty question list, a
// total-points figure matching the per-question sum, and a difficulty
// distribution that covers every question.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return NewValidationError("quiz has no questions")
	}
	points := 0
	for _, item := range q.Questions {
		points += item.Points
	}
	if q.Metadata.TotalPoints != points {
		return NewValidationError("metadata total points does not match question points")
	}
	d := q.Metadata.DifficultyDistribution
	if d.Easy+d.Medium+d.Hard != len(q.Questions) {
		return NewValidationError("difficulty distribution does not cover all questions")
	}
	return nil
}
