package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a stored job description. RequiredSkills is the merged set of
// user-supplied skills and skills extracted from the description text,
// duplicates removed.
type Job struct {
	ID              uuid.UUID
	Title           string
	Company         string
	Description     string
	RequiredSkills  []string
	ExperienceLevel string
	Location        string
	UserID          uuid.UUID
	CreatedAt       time.Time
}
