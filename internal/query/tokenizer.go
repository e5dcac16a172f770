package query

import (
	"strings"
	"unicode"
)

// Tokens is a tokenized query: lowercase alphanumeric runs in order, and the
// same runs joined by single spaces for substring and pattern matching.
type Tokens struct {
	Words []string
	Text  string
}

// Tokenize splits raw text into lowercase runs of letters and digits.
// Everything else separates tokens.
func Tokenize(raw string) Tokens {
	var words []string
	var current strings.Builder

	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return Tokens{Words: words, Text: strings.Join(words, " ")}
}

// Contains reports whether phrase occurs anywhere in the joined text.
func (t Tokens) Contains(phrase string) bool {
	return phrase != "" && strings.Contains(t.Text, phrase)
}
