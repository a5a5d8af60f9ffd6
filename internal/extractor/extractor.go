package extractor

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"resume-screen/internal/catalog"
	"resume-screen/internal/domain/resume"
)

// OtherCategory collects skills that belong to no catalog category.
const OtherCategory = "Other"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// Experience requirements come in a few phrasings, checked in fixed
	// priority order. At most one qualifier is emitted per text: the
	// first pattern that hits wins and later phrasings are ignored.
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`(\d+)\+?\s*year\s*experience`),
		regexp.MustCompile(`minimum\s*(\d+)\s*years?`),
		regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`),
	}

	educationKeywords = []string{"bachelor", "master", "phd", "degree", "certification", "diploma"}

	// Dotted and concatenated spellings of the usual suspects.
	techVariantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(react\.js|reactjs)\b`),
		regexp.MustCompile(`\b(node\.js|nodejs)\b`),
		regexp.MustCompile(`\b(vue\.js|vuejs)\b`),
		regexp.MustCompile(`\b(next\.js|nextjs)\b`),
		regexp.MustCompile(`\b(express\.js|expressjs)\b`),
	}

	nameRejectKeywords       = []string{"experience", "education", "skills", "objective"}
	experienceSectionHeaders = []string{"experience", "work", "employment", "career", "position"}
	educationSectionHeaders  = []string{"education", "university", "college", "degree", "bachelor", "master", "phd"}
)

// Extractor pulls skills and structured profile data out of free text
// using the shared skill catalog.
type Extractor struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Extractor {
	return &Extractor{cat: cat}
}

// ExtractSkills scans a job description for catalog skills, experience
// requirements, education requirements and alternate technology
// spellings. The result is deduplicated preserving discovery order.
func (e *Extractor) ExtractSkills(jobDescription string) []string {
	text := strings.ToLower(jobDescription)
	var found []string

	for _, cat := range e.cat.Categories() {
		for _, skill := range cat.Skills {
			if strings.Contains(text, skill) {
				found = append(found, skill)
			}
		}
	}

	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			found = append(found, m[1]+"+ years experience")
			break
		}
	}

	for _, keyword := range educationKeywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}

	for _, pattern := range techVariantPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			found = append(found, m[1])
		}
	}

	return dedupe(found)
}

// Categorize buckets skills by catalog category using bidirectional
// substring matching; the first matching category wins. Skills that fit
// nowhere land in "Other". Every category key is present in the result,
// empty or not.
func (e *Extractor) Categorize(skills []string) map[string][]string {
	out := make(map[string][]string, e.cat.SkillCount())
	for _, cat := range e.cat.Categories() {
		out[cat.Name] = []string{}
	}
	out[OtherCategory] = []string{}

	for _, skill := range skills {
		lower := strings.ToLower(skill)
		placed := false
		for _, cat := range e.cat.Categories() {
			for _, catSkill := range cat.Skills {
				if strings.Contains(lower, catSkill) || strings.Contains(catSkill, lower) {
					out[cat.Name] = append(out[cat.Name], skill)
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		if !placed {
			out[OtherCategory] = append(out[OtherCategory], skill)
		}
	}
	return out
}

// ImportanceScore rates how central a skill is to a job description:
// raw mention count plus a bonus of 2 for each requirements-style
// section heading it appears within 500 characters of, capped at 10.
func (e *Extractor) ImportanceScore(skill, jobDescription string) float64 {
	text := strings.ToLower(jobDescription)
	lower := strings.ToLower(skill)
	if lower == "" {
		return 0
	}

	count := strings.Count(text, lower)

	bonus := 0
	for _, section := range []string{"requirements", "qualifications", "must have", "essential"} {
		idx := strings.Index(text, section)
		if idx < 0 {
			continue
		}
		end := idx + 500
		if end > len(text) {
			end = len(text)
		}
		if strings.Contains(text[idx:end], lower) {
			bonus += 2
		}
	}

	score := float64(count + bonus)
	if score > 10 {
		score = 10
	}
	return score
}

// ParseResume extracts a structured candidate profile from raw resume
// text. The heuristics are deliberately simple: contact info by regex,
// name from the first plausible short line, skills by catalog lookup,
// and experience and education as the lines following their first
// section heading.
func (e *Extractor) ParseResume(text, filename string) resume.Profile {
	lines := strings.Split(strings.ToLower(text), "\n")

	var profile resume.Profile
	profile.Email = emailPattern.FindString(text)
	profile.Phone = phonePattern.FindString(text)
	profile.Name = e.extractName(lines, filename)

	textLower := strings.ToLower(text)
	for _, cat := range e.cat.Categories() {
		for _, skill := range cat.Skills {
			if strings.Contains(textLower, skill) {
				profile.Skills = append(profile.Skills, skill)
			}
		}
	}
	profile.Skills = dedupe(profile.Skills)

	profile.Experience = sectionLines(lines, experienceSectionHeaders, 3, 10)
	profile.Education = sectionLines(lines, educationSectionHeaders, 2, 5)

	return profile
}

// extractName checks the first five lines for a short line that looks
// like a person's name, falling back to the cleaned-up filename.
func (e *Extractor) extractName(lines []string, filename string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(strings.Fields(line)) > 4 {
			continue
		}
		if strings.Contains(line, "@") || strings.ContainsAny(line, "0123456789") {
			continue
		}
		rejected := false
		for _, kw := range nameRejectKeywords {
			if strings.Contains(line, kw) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}
		return titleCase(line)
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return titleCase(strings.ReplaceAll(base, "_", " "))
}

// sectionLines looks at the window of maxEntries lines following the
// first line that contains any of the given section headers and keeps
// those longer than minLen characters. Only the first matching section
// is read.
func sectionLines(lines []string, headers []string, maxEntries, minLen int) []string {
	for i, line := range lines {
		hit := false
		for _, h := range headers {
			if strings.Contains(line, h) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}

		var entries []string
		for j := i + 1; j < len(lines) && j <= i+maxEntries; j++ {
			candidate := strings.TrimSpace(lines[j])
			if len(candidate) > minLen {
				entries = append(entries, titleCase(candidate))
			}
		}
		return entries
	}
	return nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// titleCase uppercases the first letter of every word. strings.Title is
// deprecated and its casing rules are broader than needed here.
func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		defer func() { prev = r }()
		if unicode.IsSpace(prev) {
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}
