package resume

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the structured data extracted from one resume text. It is
// created once per parse and never mutated afterwards; downstream
// consumers only read it.
type Profile struct {
	Name       string
	Email      string
	Phone      string
	Skills     []string
	Experience []string // at most 3 entries
	Education  []string // at most 2 entries
}

// Resume is a stored, screened resume: the extracted profile plus the
// scores computed against the job it was uploaded for.
type Resume struct {
	ID            uuid.UUID
	Filename      string
	Name          string
	Email         string
	Phone         string
	Skills        []string
	Experience    []string
	Education     []string
	RawText       string
	MatchScore    float64
	SemanticScore float64
	MatchedSkills []string
	SkillGaps     []string
	JobID         uuid.UUID
	UserID        uuid.UUID
	CreatedAt     time.Time
}
