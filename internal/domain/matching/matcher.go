package matching

import "context"

// Quality is the qualitative label derived from a similarity score.
type Quality string

const (
	QualityPoor      Quality = "Poor"
	QualityFair      Quality = "Fair"
	QualityGood      Quality = "Good"
	QualityExcellent Quality = "Excellent"
)

// QualityForScore maps a 0-100 similarity score to its band. Thresholds
// are strict greater-than: exactly 80.00 is Good, not Excellent. Scoring
// parity depends on this; do not round up the boundaries.
func QualityForScore(score float64) Quality {
	switch {
	case score > 80:
		return QualityExcellent
	case score > 60:
		return QualityGood
	case score > 40:
		return QualityFair
	default:
		return QualityPoor
	}
}

// SimilarityResult is the outcome of comparing a resume text against a job
// description text.
type SimilarityResult struct {
	SimilarityScore float64  // 0-100, rounded to 2 decimals
	KeyMatches      []string // at most 10, longest terms first
	Insights        []string
	Quality         Quality
}

// Matcher computes document similarity. Implementations must be safe for
// concurrent use; callers never need to know which strategy is active.
type Matcher interface {
	Match(ctx context.Context, resumeText, jobText string) (SimilarityResult, error)
}
