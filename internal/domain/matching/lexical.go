package matching

import (
	"context"
	"fmt"
	"math"
	"sort"

	"resume-screen/internal/catalog"
	"resume-screen/internal/nlp"
)

// LexicalMatcher scores similarity from shared vocabulary: both texts are
// normalized, expanded by synonym closure and turned into term-frequency
// vectors over the joint vocabulary; the score is their cosine similarity
// scaled to 0-100.
type LexicalMatcher struct {
	syn *catalog.Synonyms
}

func NewLexicalMatcher(syn *catalog.Synonyms) *LexicalMatcher {
	return &LexicalMatcher{syn: syn}
}

// Match is pure and never returns an error; the error slot exists for the
// Matcher contract. Texts with no shared terms score 0.
func (m *LexicalMatcher) Match(_ context.Context, resumeText, jobText string) (SimilarityResult, error) {
	score := m.similarity(resumeText, jobText)
	keyMatches := m.keyMatches(resumeText, jobText)

	return SimilarityResult{
		SimilarityScore: score,
		KeyMatches:      keyMatches,
		Insights:        insights(score, len(keyMatches)),
		Quality:         QualityForScore(score),
	}, nil
}

func (m *LexicalMatcher) similarity(a, b string) float64 {
	wordsA := m.syn.Expand(nlp.Normalize(a))
	wordsB := m.syn.Expand(nlp.Normalize(b))

	vocab := make([]string, 0, len(wordsA)+len(wordsB))
	seen := make(map[string]struct{}, len(wordsA)+len(wordsB))
	for _, w := range wordsA {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			vocab = append(vocab, w)
		}
	}
	for _, w := range wordsB {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			vocab = append(vocab, w)
		}
	}
	if len(vocab) == 0 {
		return 0
	}

	countsA := termCounts(wordsA)
	countsB := termCounts(wordsB)

	var dot, magA, magB float64
	for _, w := range vocab {
		ca := float64(countsA[w])
		cb := float64(countsB[w])
		dot += ca * cb
		magA += ca * ca
		magB += cb * cb
	}
	if magA == 0 || magB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	return math.Round(sim*100*100) / 100
}

func termCounts(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}

// keyMatches returns the union of tokens literally present in both texts
// and synonym-group keys with at least one member on each side, filtered
// to terms longer than 3 characters that are not stop words, longest
// first, capped at 10.
func (m *LexicalMatcher) keyMatches(a, b string) []string {
	setA := tokenSet(nlp.Normalize(a))
	setB := tokenSet(nlp.Normalize(b))

	matches := make(map[string]struct{})
	for w := range setA {
		if _, ok := setB[w]; ok {
			matches[w] = struct{}{}
		}
	}
	for _, key := range m.syn.Keys() {
		if sideHasGroupMember(m.syn, key, setA) && sideHasGroupMember(m.syn, key, setB) {
			matches[key] = struct{}{}
		}
	}

	filtered := make([]string, 0, len(matches))
	for w := range matches {
		if len(w) <= 3 || nlp.IsStopWord(w) {
			continue
		}
		filtered = append(filtered, w)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if len(filtered[i]) != len(filtered[j]) {
			return len(filtered[i]) > len(filtered[j])
		}
		return filtered[i] < filtered[j]
	})

	if len(filtered) > 10 {
		filtered = filtered[:10]
	}
	return filtered
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func sideHasGroupMember(syn *catalog.Synonyms, key string, side map[string]struct{}) bool {
	if _, ok := side[key]; ok {
		return true
	}
	for _, a := range syn.Aliases(key) {
		if _, ok := side[a]; ok {
			return true
		}
	}
	return false
}

// insights produces the fixed narrative strings for a score band plus one
// line keyed on how many key matches were found.
func insights(score float64, keyMatchCount int) []string {
	out := make([]string, 0, 3)

	switch {
	case score > 80:
		out = append(out,
			"Excellent semantic match - strong alignment with job requirements",
			"Candidate demonstrates comprehensive understanding of the role",
		)
	case score > 60:
		out = append(out,
			"Good semantic match - candidate shows relevant experience",
			"Strong potential for success in this position",
		)
	case score > 40:
		out = append(out,
			"Moderate match - some relevant experience but gaps exist",
			"May require additional training or development",
		)
	default:
		out = append(out,
			"Limited match - significant skill gaps identified",
			"Consider for entry-level positions or with extensive training",
		)
	}

	switch {
	case keyMatchCount > 5:
		out = append(out, fmt.Sprintf("Strong keyword alignment with %d matching terms", keyMatchCount))
	case keyMatchCount > 2:
		out = append(out, fmt.Sprintf("Moderate keyword alignment with %d matching terms", keyMatchCount))
	default:
		out = append(out, "Limited keyword alignment - consider resume optimization")
	}

	return out
}
