package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits text into normalized lowercase tokens. The input is
// decomposed with NFKD so accented letters split into base letter plus
// combining marks; the marks fall out with the punctuation, so "café" and
// "cafe" tokenize identically. Duplicates are kept — multiplicity matters
// for term frequency.
func Tokenize(text string) []string {
	decomposed := norm.NFKD.String(strings.ToLower(text))
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, decomposed)
	return strings.Fields(cleaned)
}
