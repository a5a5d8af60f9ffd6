package matching

import "strings"

// GapResult partitions a requirement list into matched and missing entries.
// Matched and Missing together always equal the input requirement list; no
// entry is gained or lost.
type GapResult struct {
	Matched         []string
	Missing         []string
	MatchPercentage float64
}

// fuzzyEqual reports whether two skill strings refer to the same skill:
// case-insensitive substring containment in either direction, or exact
// equality. The over-matching behavior (e.g. "java" inside "javascript")
// is intentional; do not tighten it.
func fuzzyEqual(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// CalculateMatchScore counts, from the candidate side, how many profile
// skills fuzzy-equal any requirement skill and scores that count against
// the requirement total. Returns 0 when either set is empty.
//
// This is NOT the same number as GapResult.MatchPercentage, which counts
// from the requirement side. Both are kept on purpose: this one feeds the
// overall fit score, the other reports requirement coverage.
func CalculateMatchScore(profileSkills, requirementSkills []string) float64 {
	if len(profileSkills) == 0 || len(requirementSkills) == 0 {
		return 0
	}

	matched := 0
	for _, ps := range profileSkills {
		for _, rs := range requirementSkills {
			if fuzzyEqual(ps, rs) {
				matched++
				break
			}
		}
	}

	score := float64(matched) / float64(len(requirementSkills)) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// AnalyzeSkillGap iterates requirement skills in order and marks each one
// matched when any profile skill fuzzy-equals it. Requirement entries keep
// their original casing. Empty requirements yield an empty result with
// percentage 0; an empty profile yields every requirement as missing.
func AnalyzeSkillGap(profileSkills, requirementSkills []string) GapResult {
	res := GapResult{
		Matched: make([]string, 0, len(requirementSkills)),
		Missing: make([]string, 0, len(requirementSkills)),
	}
	if len(requirementSkills) == 0 {
		return res
	}

	for _, rs := range requirementSkills {
		matched := false
		for _, ps := range profileSkills {
			if fuzzyEqual(ps, rs) {
				matched = true
				break
			}
		}
		if matched {
			res.Matched = append(res.Matched, rs)
		} else {
			res.Missing = append(res.Missing, rs)
		}
	}

	res.MatchPercentage = float64(len(res.Matched)) / float64(len(requirementSkills)) * 100
	return res
}
