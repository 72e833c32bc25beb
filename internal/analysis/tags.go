// Package analysis derives tags and key phrases from question text using
// part-of-speech tagging, noun-phrase chunking and named-entity extraction.
package analysis

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// maxQuestionTags caps how many nouns a single question contributes.
const maxQuestionTags = 3

// Tags derives the tag set of one question: the first three nouns of the
// question text in original order, plus the file identifier, deduplicated.
// Text the tagger cannot analyze degrades to the file identifier alone;
// tagging never fails the caller.
func Tags(question, fileIdentifier string) []string {
	var tags []string
	if strings.TrimSpace(question) != "" {
		if doc, err := prose.NewDocument(question,
			prose.WithSegmentation(false),
			prose.WithExtraction(false),
		); err == nil {
			for _, tok := range doc.Tokens() {
				if !isNounTag(tok.Tag) {
					continue
				}
				tags = append(tags, tok.Text)
				if len(tags) == maxQuestionTags {
					break
				}
			}
		}
	}
	return dedupe(append(tags, fileIdentifier))
}

// isNounTag reports whether a Penn Treebank tag marks a noun (NN, NNS,
// NNP, NNPS).
func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func isAdjectiveTag(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}

// dedupe removes duplicates preserving first occurrence.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
