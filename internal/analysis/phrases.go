package analysis

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"

	"quiz-forge/internal/domain"
)

const (
	maxKeyPhrases      = 5
	minPhraseCount     = 2
	maxPhraseWords     = 3
	minCandidateLength = 3
)

// entityLabels are the named-entity categories considered phrase-worthy.
// The tagger's built-in model only emits a subset of these; the rest are
// accepted should a richer model be plugged in.
var entityLabels = map[string]struct{}{
	"ORG":          {},
	"ORGANIZATION": {},
	"PERSON":       {},
	"GPE":          {},
	"LOC":          {},
	"LOCATION":     {},
	"EVENT":        {},
	"WORK_OF_ART":  {},
	"PRODUCT":      {},
}

// KeyPhrases extracts up to five representative phrases for a group of
// questions. Four candidate streams feed one ordered multiset: noun-phrase
// chunks, named entities, standalone nouns not covered by a chunk, and the
// aggregated tags. A phrase qualifies when it recurs (count > 1) and spans
// at most three words; ranking is by descending count with ties broken by
// first-seen position.
func KeyPhrases(records []domain.QuestionRecord, tags []string) []string {
	texts := make([]string, 0, len(records))
	for _, r := range records {
		texts = append(texts, r.Question)
	}
	corpus := strings.TrimSpace(strings.Join(texts, " "))

	counter := newOrderedCounter()
	if corpus != "" {
		if doc, err := prose.NewDocument(corpus); err == nil {
			chunkWords := collectChunks(doc, counter)
			collectEntities(doc, counter)
			collectNouns(doc, counter, chunkWords)
		}
	}
	for _, tag := range tags {
		if len(tag) >= minCandidateLength {
			counter.Add(strings.ToLower(tag))
		}
	}

	return rank(counter)
}

// collectChunks finds maximal adjective/noun token runs ending in a noun
// and spanning at least two tokens, normalizes them (lower-case, drop
// stop-words and short tokens) and counts the survivors. Returns the set of
// words covered by kept chunks, so the standalone-noun stream can skip them.
func collectChunks(doc *prose.Document, counter *orderedCounter) map[string]struct{} {
	chunkWords := make(map[string]struct{})
	tokens := doc.Tokens()

	var run []prose.Token
	flush := func() {
		defer func() { run = nil }()
		// Trim trailing adjectives so the run ends in a noun.
		end := len(run)
		for end > 0 && !isNounTag(run[end-1].Tag) {
			end--
		}
		if end < 2 {
			return
		}
		var words []string
		for _, tok := range run[:end] {
			word := strings.ToLower(tok.Text)
			if len(word) < minCandidateLength || isStopWord(word) {
				continue
			}
			words = append(words, word)
		}
		if len(words) == 0 {
			return
		}
		counter.Add(strings.Join(words, " "))
		for _, w := range words {
			chunkWords[w] = struct{}{}
		}
	}

	for _, tok := range tokens {
		if isNounTag(tok.Tag) || isAdjectiveTag(tok.Tag) {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()
	return chunkWords
}

func collectEntities(doc *prose.Document, counter *orderedCounter) {
	for _, ent := range doc.Entities() {
		if _, ok := entityLabels[ent.Label]; !ok {
			continue
		}
		counter.Add(strings.ToLower(ent.Text))
	}
}

func collectNouns(doc *prose.Document, counter *orderedCounter, chunkWords map[string]struct{}) {
	for _, tok := range doc.Tokens() {
		if !isNounTag(tok.Tag) {
			continue
		}
		word := strings.ToLower(tok.Text)
		if len(word) < minCandidateLength || isStopWord(word) {
			continue
		}
		if _, covered := chunkWords[word]; covered {
			continue
		}
		counter.Add(word)
	}
}

func rank(counter *orderedCounter) []string {
	type candidate struct {
		phrase string
		count  int
		seen   int
	}

	var candidates []candidate
	for i, phrase := range counter.Keys() {
		count := counter.Count(phrase)
		if count < minPhraseCount {
			continue
		}
		if len(strings.Fields(phrase)) > maxPhraseWords {
			continue
		}
		candidates = append(candidates, candidate{phrase: phrase, count: count, seen: i})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].seen < candidates[j].seen
	})

	if len(candidates) > maxKeyPhrases {
		candidates = candidates[:maxKeyPhrases]
	}
	phrases := make([]string, 0, len(candidates))
	for _, c := range candidates {
		phrases = append(phrases, c.phrase)
	}
	return phrases
}
