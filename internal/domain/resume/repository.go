package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resume not found")

type Repository interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	// ListByJob returns the job's resumes ordered by match score, best
	// first.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Resume, error)
}
