// Package taxonomy assigns a single topical category to a group of
// questions by scoring a fixed keyword table against their tags and text.
package taxonomy

import "strings"

// DefaultCategory is returned when no keyword of any category matches.
const DefaultCategory = "Knowledge"

// Category pairs a topical label with the keywords that vote for it.
type Category struct {
	Name     string
	Keywords []string
}

// Categories is the fixed topical table. Slice order doubles as the
// tie-break order, so entries must not be reordered.
var Categories = []Category{
	{Name: "Science", Keywords: []string{"physics", "chemistry", "biology", "astronomy"}},
	{Name: "Technology", Keywords: []string{"computer", "engineering", "machine"}},
	{Name: "Mathematics", Keywords: []string{"mathematics", "algebra", "calculus", "statistics"}},
	{Name: "History", Keywords: []string{"history", "world_history", "us_history"}},
	{Name: "Arts", Keywords: []string{"art", "music", "literature", "philosophy"}},
	{Name: "Social Sciences", Keywords: []string{"psychology", "sociology", "economics", "politics"}},
	{Name: "Professional", Keywords: []string{"business", "marketing", "management", "law", "medicine"}},
	{Name: "General Knowledge", Keywords: []string{"general", "world", "culture", "geography"}},
}

// Classify scores every category against the lower-cased concatenation of
// tags and text, counting keywords that occur as substrings. The highest
// score wins; ties go to the category listed first. All-zero scores yield
// DefaultCategory. Stateless and idempotent.
func Classify(tags []string, text string) string {
	var b strings.Builder
	for _, tag := range tags {
		b.WriteString(strings.ToLower(tag))
		b.WriteByte(' ')
	}
	b.WriteString(strings.ToLower(text))
	haystack := b.String()

	best := DefaultCategory
	bestScore := 0
	for _, category := range Categories {
		score := 0
		for _, keyword := range category.Keywords {
			if strings.Contains(haystack, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = category.Name
			bestScore = score
		}
	}
	return best
}
