package matching

import (
	"math"
	"reflect"
	"testing"
)

func TestCalculateMatchScore_EmptyInputs(t *testing.T) {
	if got := CalculateMatchScore(nil, []string{"python"}); got != 0 {
		t.Fatalf("empty profile: got %v, want 0", got)
	}
	if got := CalculateMatchScore([]string{"python"}, nil); got != 0 {
		t.Fatalf("empty requirements: got %v, want 0", got)
	}
	if got := CalculateMatchScore(nil, nil); got != 0 {
		t.Fatalf("both empty: got %v, want 0", got)
	}
}

func TestCalculateMatchScore_Range(t *testing.T) {
	cases := [][2][]string{
		{{"python"}, {"python", "sql"}},
		{{"python", "java", "javascript", "go"}, {"java"}},
		{{"a very long unmatched skill"}, {"cobol"}},
	}
	for _, tc := range cases {
		got := CalculateMatchScore(tc[0], tc[1])
		if got < 0 || got > 100 {
			t.Fatalf("score out of range: %v for %v vs %v", got, tc[0], tc[1])
		}
	}
}

func TestCalculateMatchScore_CandidateSide(t *testing.T) {
	// Both candidate skills fuzzy-match "java"; counted from the
	// candidate side the score saturates at 100.
	got := CalculateMatchScore([]string{"java", "javascript"}, []string{"java"})
	if got != 100 {
		t.Fatalf("got %v, want 100", got)
	}
}

func TestAnalyzeSkillGap_Scenario(t *testing.T) {
	// mysql fuzzy-contains "sql"; redux does not contain "react".
	res := AnalyzeSkillGap(
		[]string{"python", "mysql", "redux"},
		[]string{"python", "sql", "react"},
	)

	if !reflect.DeepEqual(res.Matched, []string{"python", "sql"}) {
		t.Fatalf("matched = %v", res.Matched)
	}
	if !reflect.DeepEqual(res.Missing, []string{"react"}) {
		t.Fatalf("missing = %v", res.Missing)
	}
	if math.Abs(res.MatchPercentage-66.666) > 0.01 {
		t.Fatalf("percentage = %v, want ~66.67", res.MatchPercentage)
	}
}

func TestAnalyzeSkillGap_PartitionInvariant(t *testing.T) {
	reqs := []string{"python", "sql", "react", "python", "AWS"}
	res := AnalyzeSkillGap([]string{"golang", "python"}, reqs)

	recombined := map[string]int{}
	for _, s := range res.Matched {
		recombined[s]++
	}
	for _, s := range res.Missing {
		recombined[s]++
	}
	want := map[string]int{}
	for _, s := range reqs {
		want[s]++
	}
	if !reflect.DeepEqual(recombined, want) {
		t.Fatalf("matched+missing != requirements: %v vs %v", recombined, want)
	}
}

func TestAnalyzeSkillGap_EmptyInputs(t *testing.T) {
	res := AnalyzeSkillGap(nil, nil)
	if len(res.Matched) != 0 || len(res.Missing) != 0 || res.MatchPercentage != 0 {
		t.Fatalf("unexpected result for empty inputs: %+v", res)
	}

	reqs := []string{"python", "sql"}
	res = AnalyzeSkillGap(nil, reqs)
	if !reflect.DeepEqual(res.Missing, reqs) {
		t.Fatalf("empty profile: missing = %v, want %v", res.Missing, reqs)
	}
	if res.MatchPercentage != 0 {
		t.Fatalf("empty profile: percentage = %v", res.MatchPercentage)
	}
}

func TestAnalyzeSkillGap_PreservesRequirementCasing(t *testing.T) {
	res := AnalyzeSkillGap([]string{"python"}, []string{"Python", "SQL"})
	if !reflect.DeepEqual(res.Matched, []string{"Python"}) {
		t.Fatalf("matched = %v", res.Matched)
	}
	if !reflect.DeepEqual(res.Missing, []string{"SQL"}) {
		t.Fatalf("missing = %v", res.Missing)
	}
}

func TestFuzzyEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"java", "javascript", true},
		{"javascript", "java", true},
		{"sql", "mysql", true},
		{"Python", "python", true},
		{"react", "redux", false},
	}
	for _, tc := range cases {
		if got := fuzzyEqual(tc.a, tc.b); got != tc.want {
			t.Fatalf("fuzzyEqual(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
