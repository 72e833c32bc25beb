// Package generator assembles quizzes from groups of tagged question
// records: it samples a subset, classifies the major category, extracts key
// phrases for the title and computes the presentation metadata.
package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"quiz-forge/internal/analysis"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/taxonomy"
	"quiz-forge/internal/util"
)

const minutesPerQuestion = 2

var titleCaser = cases.Title(language.English)

// Synthesizer builds one quiz per question group. The random source is
// injected so sampling is reproducible under a fixed seed.
type Synthesizer struct {
	cfg config.GeneratorConfig
	rng *rand.Rand
}

func NewSynthesizer(cfg config.GeneratorConfig, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{cfg: cfg, rng: rng}
}

// Synthesize samples up to QuestionsPerQuiz records from the pool without
// replacement and assembles one immutable quiz. An empty pool yields nil;
// the orchestrator skips such groups.
func (s *Synthesizer) Synthesize(pool []domain.QuestionRecord) *domain.Quiz {
	if len(pool) == 0 {
		return nil
	}

	sample := s.sample(pool)

	aggregateTags := make([]string, 0, len(sample))
	texts := make([]string, 0, len(sample))
	for _, record := range sample {
		aggregateTags = append(aggregateTags, record.Tags...)
		texts = append(texts, record.Question)
	}

	majorCategory := taxonomy.Classify(aggregateTags, strings.Join(texts, " "))
	tags := s.quizTags(majorCategory, aggregateTags)
	phrases := analysis.KeyPhrases(sample, aggregateTags)

	n := len(sample)
	distribution := difficultyDistribution(n)

	return &domain.Quiz{
		ID:          util.NewULID(),
		Title:       title(majorCategory, phrases),
		Description: s.description(majorCategory, n, tags, distribution),
		Questions:   s.quizItems(sample),
		Settings: domain.QuizSettings{
			RandomizeQuestions: true,
			RandomizeOptions:   true,
			ShowExplanation:    true,
			ShowCorrectAnswer:  true,
			PassingScore:       s.cfg.PassingScore,
			AllowNavigation:    true,
			ShowProgressBar:    true,
			ShowTimeRemaining:  true,
		},
		Metadata: domain.QuizMetadata{
			TotalPoints:            s.cfg.PointsPerQuestion * n,
			EstimatedDuration:      minutesPerQuestion * n,
			DifficultyDistribution: distribution,
			Tags:                   tags,
		},
	}
}

// sample picks min(QuestionsPerQuiz, len(pool)) records without
// replacement, in permutation order.
func (s *Synthesizer) sample(pool []domain.QuestionRecord) []domain.QuestionRecord {
	n := s.cfg.QuestionsPerQuiz
	if len(pool) < n {
		n = len(pool)
	}
	sample := make([]domain.QuestionRecord, 0, n)
	for _, idx := range s.rng.Perm(len(pool))[:n] {
		sample = append(sample, pool[idx])
	}
	return sample
}

// quizTags builds the final tag list: the major category first, then up to
// MaxAdditionalTags deduplicated aggregate tags, excluding the category
// itself (case-insensitive).
func (s *Synthesizer) quizTags(majorCategory string, aggregateTags []string) []string {
	tags := []string{majorCategory}
	seen := map[string]struct{}{strings.ToLower(majorCategory): {}}
	for _, tag := range aggregateTags {
		if len(tags) > s.cfg.MaxAdditionalTags {
			break
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func (s *Synthesizer) quizItems(sample []domain.QuestionRecord) []domain.QuizItem {
	items := make([]domain.QuizItem, 0, len(sample))
	for i, record := range sample {
		answerText, _ := record.OptionText(record.CorrectAnswer)
		items = append(items, domain.QuizItem{
			ID:            fmt.Sprintf("q%d", i+1),
			Type:          domain.QuizItemType,
			Question:      record.Question,
			Options:       record.Options,
			CorrectAnswer: record.CorrectAnswer,
			Points:        s.cfg.PointsPerQuestion,
			Explanation:   "The correct answer is: " + answerText,
		})
	}
	return items
}

func (s *Synthesizer) description(category string, n int, tags []string, d domain.DifficultyDistribution) string {
	topicTags := tags
	if len(topicTags) > 3 {
		topicTags = topicTags[:3]
	}
	return fmt.Sprintf(
		"A %s quiz with %d questions covering %s. Difficulty mix: %d easy, %d medium, %d hard. You need %d%% to pass.",
		category, n, strings.Join(topicTags, ", "), d.Easy, d.Medium, d.Hard, s.cfg.PassingScore,
	)
}

// title builds the quiz title from up to two key phrases, each word
// capitalized; with no phrases it falls back to a fixed challenge title.
func title(category string, phrases []string) string {
	if len(phrases) == 0 {
		return category + " Quiz Challenge"
	}
	if len(phrases) > 2 {
		phrases = phrases[:2]
	}
	capitalized := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		capitalized = append(capitalized, titleCaser.String(phrase))
	}
	return category + " Quiz: " + strings.Join(capitalized, " and ")
}

// difficultyDistribution splits n questions a third easy, a third medium
// and the remainder hard.
func difficultyDistribution(n int) domain.DifficultyDistribution {
	third := n / 3
	return domain.DifficultyDistribution{
		Easy:   third,
		Medium: third,
		Hard:   n - 2*third,
	}
}
