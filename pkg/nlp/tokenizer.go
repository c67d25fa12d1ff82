package nlp

import (
	"strings"
	"unicode"
)

// stopwords dropped during normalization. Membership is part of the corpus
// configuration: changing it changes every trained model.
var stopwords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "and": {}, "in": {}, "to": {},
	"a": {}, "of": {}, "for": {}, "on": {}, "it": {}, "with": {}, "me": {},
}

// suffixRules is the stemming hook. The baseline ships no rules, so tokens
// pass through unchanged; adding a suffix here strips it from every token
// that ends with it.
var suffixRules []string

// Normalize lowercases the input, strips everything that is not a word
// character or whitespace, splits on whitespace runs, drops stopwords and
// applies the suffix rules. Token order and duplicates are preserved; the
// classifier counts frequencies. Empty input yields an empty slice.
func Normalize(text string) []string {
	text = strings.ToLower(text)

	text = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)

	var tokens []string
	for _, word := range strings.Fields(text) {
		if _, skip := stopwords[word]; skip {
			continue
		}
		tokens = append(tokens, stemWord(word))
	}

	return tokens
}

func stemWord(word string) string {
	for _, suffix := range suffixRules {
		if strings.HasSuffix(word, suffix) {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}
