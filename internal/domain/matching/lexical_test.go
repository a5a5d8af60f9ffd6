package matching

import (
	"context"
	"strings"
	"testing"

	"resume-screen/internal/catalog"
)

func newLexical(t *testing.T) *LexicalMatcher {
	t.Helper()
	syn, err := catalog.DefaultSynonyms()
	if err != nil {
		t.Fatalf("synonyms: %v", err)
	}
	return NewLexicalMatcher(syn)
}

func TestLexicalMatch_IdenticalTexts(t *testing.T) {
	m := newLexical(t)
	text := "Senior Python developer with machine learning and SQL experience"

	res, err := m.Match(context.Background(), text, text)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SimilarityScore < 99.99 {
		t.Fatalf("identical texts: score = %v, want ~100", res.SimilarityScore)
	}
	if res.Quality != QualityExcellent {
		t.Fatalf("quality = %v, want Excellent", res.Quality)
	}
}

func TestLexicalMatch_NoSharedTokens(t *testing.T) {
	m := newLexical(t)
	res, err := m.Match(context.Background(), "gardening cooking painting", "kubernetes terraform ansible")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SimilarityScore != 0 {
		t.Fatalf("disjoint texts: score = %v, want 0", res.SimilarityScore)
	}
	if res.Quality != QualityPoor {
		t.Fatalf("quality = %v, want Poor", res.Quality)
	}
}

func TestLexicalMatch_EmptyInputs(t *testing.T) {
	m := newLexical(t)
	for _, tc := range [][2]string{{"", ""}, {"", "python"}, {"python", ""}} {
		res, err := m.Match(context.Background(), tc[0], tc[1])
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.SimilarityScore != 0 {
			t.Fatalf("empty input (%q,%q): score = %v, want 0", tc[0], tc[1], res.SimilarityScore)
		}
	}
}

func TestLexicalMatch_Symmetric(t *testing.T) {
	m := newLexical(t)
	a := "python developer with django and aws background"
	b := "looking for python engineer, django experience preferred"

	ab, _ := m.Match(context.Background(), a, b)
	ba, _ := m.Match(context.Background(), b, a)
	if ab.SimilarityScore != ba.SimilarityScore {
		t.Fatalf("similarity not symmetric: %v vs %v", ab.SimilarityScore, ba.SimilarityScore)
	}
}

func TestLexicalMatch_SynonymBridging(t *testing.T) {
	m := newLexical(t)
	// "node" and "javascript" only relate through the synonym closure;
	// after expansion both phrasings carry the same term set.
	direct, _ := m.Match(context.Background(), "solid experience shipping javascript apps", "must master javascript for this role")
	viaAlias, _ := m.Match(context.Background(), "solid experience shipping javascript apps", "must master node for this role")
	if viaAlias.SimilarityScore <= 0 {
		t.Fatalf("alias side scored 0, synonym closure not applied")
	}
	if direct.SimilarityScore != viaAlias.SimilarityScore {
		t.Fatalf("closure should make js/javascript interchangeable: %v vs %v",
			direct.SimilarityScore, viaAlias.SimilarityScore)
	}
}

func TestKeyMatches_FilterSortTruncate(t *testing.T) {
	m := newLexical(t)
	a := "python kubernetes postgresql terraform analytics communication leadership microservices elasticsearch observability scalability development dev"
	b := "python kubernetes postgresql terraform analytics communication leadership microservices elasticsearch observability scalability development dev"

	got := m.keyMatches(a, b)
	if len(got) > 10 {
		t.Fatalf("key matches not truncated: %d entries", len(got))
	}
	for i := 1; i < len(got); i++ {
		if len(got[i]) > len(got[i-1]) {
			t.Fatalf("not sorted by descending length: %v", got)
		}
	}
	for _, w := range got {
		if len(w) <= 3 {
			t.Fatalf("short term survived filter: %q", w)
		}
	}
}

func TestKeyMatches_SynonymGroupKey(t *testing.T) {
	m := newLexical(t)
	// "sql" is an alias of "database"; neither side mentions the key
	// literally on both sides, yet the group key must be reported.
	got := m.keyMatches("strong sql tuning skills", "database administration required")
	found := false
	for _, w := range got {
		if w == "database" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected synonym-group key %q in %v", "database", got)
	}
}

func TestQualityForScore_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Quality
	}{
		{100, QualityExcellent},
		{80.01, QualityExcellent},
		{80, QualityGood}, // strict >
		{60.01, QualityGood},
		{60, QualityFair}, // strict >
		{40.01, QualityFair},
		{40, QualityPoor}, // strict >
		{0, QualityPoor},
	}
	for _, tc := range cases {
		if got := QualityForScore(tc.score); got != tc.want {
			t.Fatalf("QualityForScore(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestInsights_Tiers(t *testing.T) {
	cases := []struct {
		score    float64
		contains string
	}{
		{90, "Excellent semantic match"},
		{70, "Good semantic match"},
		{50, "Moderate match"},
		{10, "Limited match"},
	}
	for _, tc := range cases {
		got := insights(tc.score, 0)
		if len(got) != 3 {
			t.Fatalf("insights(%v) returned %d lines, want 3", tc.score, len(got))
		}
		if !strings.Contains(got[0], tc.contains) {
			t.Fatalf("insights(%v)[0] = %q, want prefix %q", tc.score, got[0], tc.contains)
		}
	}

	if got := insights(90, 6); !strings.Contains(got[2], "Strong keyword alignment with 6") {
		t.Fatalf("strong alignment line missing: %q", got[2])
	}
	if got := insights(90, 3); !strings.Contains(got[2], "Moderate keyword alignment with 3") {
		t.Fatalf("moderate alignment line missing: %q", got[2])
	}
	if got := insights(90, 1); !strings.Contains(got[2], "Limited keyword alignment") {
		t.Fatalf("limited alignment line missing: %q", got[2])
	}
}
