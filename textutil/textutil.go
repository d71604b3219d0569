package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Fold case-folds text so that ignore-case models index a single case.
// Unicode folding (not ToLower) keeps non-ASCII alphabets consistent when a
// caller extends the alphabet beyond a–z.
func Fold(text string) string {
	// cases.Caser carries internal state, so a fresh one per call keeps
	// Fold safe for concurrent use.
	return cases.Fold().String(text)
}

// Words splits free text into word tokens, stripping punctuation and
// whitespace boundaries. Inner apostrophes and hyphens survive ("don't",
// "well-known"); leading/trailing ones are trimmed.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' && r != '-'
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'-")
		if f != "" {
			words = append(words, f)
		}
	}

	return words
}
