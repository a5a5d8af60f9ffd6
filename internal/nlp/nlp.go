package nlp

import (
	"strings"
	"unicode"
)

// stopWords are filtered out of every normalized token stream. The set is
// fixed; matching behavior depends on it staying in sync with the scoring
// tests.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
}

// Normalize lower-cases text, replaces punctuation with whitespace, splits
// on whitespace and drops tokens of length <= 2 as well as stop words.
// Pure function; empty or whitespace-only input yields an empty slice.
func Normalize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		if unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)

	fields := strings.Fields(cleaned)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) <= 2 {
			continue
		}
		if _, ok := stopWords[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

// IsStopWord reports whether the (already lower-cased) word is in the fixed
// stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
