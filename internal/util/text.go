package util

import "strings"

var quoteNormalizer = strings.NewReplacer("“", `"`, "”", `"`)

// CleanText trims surrounding whitespace and normalizes typographic double
// quotes to straight quotes. Applied to every marker payload before it is
// stored or compared.
func CleanText(text string) string {
	return quoteNormalizer.Replace(strings.TrimSpace(text))
}
