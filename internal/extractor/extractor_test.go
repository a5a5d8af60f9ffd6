package extractor

import (
	"reflect"
	"strings"
	"testing"

	"resume-screen/internal/catalog"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return New(cat)
}

func TestExtractSkills_DiscoveryOrder(t *testing.T) {
	e := newExtractor(t)
	jd := "We need Python and React, 5+ years of experience, bachelor degree, node.js"

	got := e.ExtractSkills(jd)
	want := []string{"python", "react", "node.js", "5+ years experience", "bachelor", "degree"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractSkills_SubstringMatching(t *testing.T) {
	e := newExtractor(t)
	got := e.ExtractSkills("Expert JavaScript engineer wanted")

	// "java" is a substring of "javascript" and is picked up too.
	if !contains(got, "javascript") || !contains(got, "java") {
		t.Fatalf("substring matches missing: %v", got)
	}
}

func TestExtractSkills_ExperiencePhrasings(t *testing.T) {
	e := newExtractor(t)
	cases := []struct {
		jd   string
		want string
	}{
		{"3+ years of experience with python", "3+ years experience"},
		{"minimum 7 years in the field", "7+ years experience"},
		{"at least 2 years shipping software", "2+ years experience"},
	}
	for _, tc := range cases {
		got := e.ExtractSkills(tc.jd)
		if !contains(got, tc.want) {
			t.Fatalf("ExtractSkills(%q) = %v, want to contain %q", tc.jd, got, tc.want)
		}
	}
}

func TestExtractSkills_SingleExperienceQualifier(t *testing.T) {
	e := newExtractor(t)
	got := e.ExtractSkills("minimum 3 years in the field and 5 years experience with python")

	qualifiers := 0
	for _, s := range got {
		if strings.HasSuffix(s, "years experience") {
			qualifiers++
		}
	}
	if qualifiers != 1 {
		t.Fatalf("got %d experience qualifiers in %v, want exactly 1", qualifiers, got)
	}
	// The "years experience" phrasing outranks "minimum N years".
	if !contains(got, "5+ years experience") {
		t.Fatalf("ExtractSkills = %v, want the higher-priority phrasing to win", got)
	}
}

func TestExtractSkills_TechVariants(t *testing.T) {
	e := newExtractor(t)
	got := e.ExtractSkills("Frontend role working with reactjs and nodejs")

	if !contains(got, "reactjs") || !contains(got, "nodejs") {
		t.Fatalf("variant spellings missing: %v", got)
	}
}

func TestExtractSkills_Empty(t *testing.T) {
	e := newExtractor(t)
	if got := e.ExtractSkills(""); len(got) != 0 {
		t.Fatalf("empty input: %v", got)
	}
	if got := e.ExtractSkills("we bake artisanal bread"); len(got) != 0 {
		t.Fatalf("skill-free input: %v", got)
	}
}

func TestCategorize(t *testing.T) {
	e := newExtractor(t)
	got := e.Categorize([]string{"Python", "React", "basket weaving", "5+ years experience"})

	if !reflect.DeepEqual(got["programming"], []string{"Python"}) {
		t.Fatalf("programming = %v", got["programming"])
	}
	if !reflect.DeepEqual(got["frameworks"], []string{"React"}) {
		t.Fatalf("frameworks = %v", got["frameworks"])
	}
	if !reflect.DeepEqual(got[OtherCategory], []string{"basket weaving", "5+ years experience"}) {
		t.Fatalf("Other = %v", got[OtherCategory])
	}
	// Every catalog category is present even when empty.
	if _, ok := got["databases"]; !ok {
		t.Fatalf("missing empty category key: %v", got)
	}
}

func TestImportanceScore(t *testing.T) {
	e := newExtractor(t)
	jd := "Requirements: python is essential. python everywhere."

	// Two mentions plus the requirements and essential section bonuses.
	if got := e.ImportanceScore("python", jd); got != 6 {
		t.Fatalf("got %v, want 6", got)
	}
	if got := e.ImportanceScore("cobol", jd); got != 0 {
		t.Fatalf("absent skill: got %v, want 0", got)
	}

	spam := strings.Repeat("python ", 20)
	if got := e.ImportanceScore("python", spam); got != 10 {
		t.Fatalf("cap: got %v, want 10", got)
	}
}

func TestParseResume(t *testing.T) {
	e := newExtractor(t)
	text := strings.Join([]string{
		"John Smith",
		"john.smith@example.com",
		"(555) 123-4567",
		"",
		"Experience",
		"Senior developer at Acme building Python services",
		"Led a team of five engineers",
		"",
		"Education",
		"Bachelor of Science in Computer Science",
		"",
	}, "\n")

	p := e.ParseResume(text, "resume.pdf")

	if p.Name != "John Smith" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Email != "john.smith@example.com" {
		t.Fatalf("email = %q", p.Email)
	}
	if p.Phone != "(555) 123-4567" {
		t.Fatalf("phone = %q", p.Phone)
	}
	if !contains(p.Skills, "python") {
		t.Fatalf("skills = %v", p.Skills)
	}
	if len(p.Experience) != 2 || !strings.HasPrefix(p.Experience[0], "Senior Developer At Acme") {
		t.Fatalf("experience = %v", p.Experience)
	}
	if len(p.Education) != 1 || !strings.HasPrefix(p.Education[0], "Bachelor Of Science") {
		t.Fatalf("education = %v", p.Education)
	}
}

func TestParseResume_NameFallsBackToFilename(t *testing.T) {
	e := newExtractor(t)
	p := e.ParseResume("", "jane_doe.pdf")
	if p.Name != "Jane Doe" {
		t.Fatalf("name = %q", p.Name)
	}
}

func TestParseResume_SectionWindows(t *testing.T) {
	e := newExtractor(t)
	// Four long lines follow the heading but only the next three are read.
	text := strings.Join([]string{
		"Work history",
		"first role with plenty of detail",
		"second role with plenty of detail",
		"third role with plenty of detail",
		"fourth role with plenty of detail",
	}, "\n")

	p := e.ParseResume(text, "cv.pdf")
	if len(p.Experience) != 3 {
		t.Fatalf("experience = %v, want 3 entries", p.Experience)
	}
	if !strings.HasPrefix(p.Experience[2], "Third Role") {
		t.Fatalf("experience[2] = %q", p.Experience[2])
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"john smith":       "John Smith",
		"bachelor of arts": "Bachelor Of Arts",
		"":                 "",
		"x":                "X",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Fatalf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
