package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-screen/internal/domain/job"
	"resume-screen/internal/extractor"
	"resume-screen/internal/fetcher"
)

var (
	ErrInvalidJobInput = errors.New("invalid job input")
	ErrJobNotFound     = errors.New("job not found")
	ErrInvalidJobURL   = errors.New("invalid job url")
)

type CreateJobInput struct {
	Title           string
	Company         string
	Description     string
	RequiredSkills  []string
	ExperienceLevel string
	Location        string
}

// JobDraft is a prefill built from a fetched posting. Nothing is
// persisted until the user submits it through CreateJob.
type JobDraft struct {
	Title           string
	Description     string
	SuggestedSkills []string
	SourceURL       string
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.Job, error)
	GetJob(ctx context.Context, userID, jobID uuid.UUID) (job.Job, error)
	ListJobs(ctx context.Context, userID uuid.UUID) ([]job.Job, error)
	ImportFromURL(ctx context.Context, pageURL string) (JobDraft, error)
}

type postingFetcher interface {
	Fetch(ctx context.Context, pageURL string) (fetcher.Posting, error)
}

type Jobs struct {
	jobs    job.Repository
	ext     *extractor.Extractor
	fetcher postingFetcher
	logger  *log.Logger
}

func NewJobUsecase(jobs job.Repository, ext *extractor.Extractor, pf postingFetcher, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, ext: ext, fetcher: pf, logger: logger}
}

// CreateJob stores a job description. The stored skill list is the
// union of the user-supplied skills and the skills detected in the
// description text, first occurrence wins.
func (u *Jobs) CreateJob(ctx context.Context, userID uuid.UUID, in CreateJobInput) (job.Job, error) {
	if userID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return job.Job{}, ErrInvalidJobInput
	}

	extracted := u.ext.ExtractSkills(description)
	required := mergeSkills(in.RequiredSkills, extracted)

	j := job.Job{
		ID:              uuid.New(),
		Title:           title,
		Company:         strings.TrimSpace(in.Company),
		Description:     description,
		RequiredSkills:  required,
		ExperienceLevel: strings.TrimSpace(in.ExperienceLevel),
		Location:        strings.TrimSpace(in.Location),
		UserID:          userID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] create failed | user_id=%s error=%v", userID, err)
		}
		return job.Job{}, ErrInternal
	}

	return j, nil
}

func (u *Jobs) GetJob(ctx context.Context, userID, jobID uuid.UUID) (job.Job, error) {
	if userID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.UserID != userID {
		return job.Job{}, ErrForbidden
	}
	return j, nil
}

func (u *Jobs) ListJobs(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	list, err := u.jobs.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

// ImportFromURL fetches a public posting and turns it into a draft the
// client can review before saving.
func (u *Jobs) ImportFromURL(ctx context.Context, pageURL string) (JobDraft, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return JobDraft{}, ErrInvalidJobURL
	}
	if u.fetcher == nil {
		return JobDraft{}, ErrInternal
	}

	posting, err := u.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] import fetch failed | url=%s error=%v", pageURL, err)
		}
		return JobDraft{}, ErrInvalidJobURL
	}

	return JobDraft{
		Title:           posting.Title,
		Description:     posting.Description,
		SuggestedSkills: u.ext.ExtractSkills(posting.Description),
		SourceURL:       posting.URL,
	}, nil
}

// mergeSkills unions the two lists case-insensitively, keeping the
// first spelling seen and the original order.
func mergeSkills(provided, extracted []string) []string {
	out := make([]string, 0, len(provided)+len(extracted))
	seen := make(map[string]struct{}, len(provided)+len(extracted))
	for _, list := range [][]string{provided, extracted} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			key := strings.ToLower(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
