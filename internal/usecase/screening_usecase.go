package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-screen/internal/domain/matching"
	"resume-screen/internal/domain/resume"
	"resume-screen/internal/extractor"
	"resume-screen/internal/pipeline"
	"resume-screen/internal/textextract"
	"resume-screen/internal/ws"
)

var ErrNoFiles = errors.New("no files uploaded")

const screeningWorkers = 4

type UploadedFile struct {
	Filename string
	Data     []byte
}

// ScreenedFile is the per-file outcome of one screening batch. Either
// ResumeID and the scores are set, or Error explains the failure.
type ScreenedFile struct {
	Filename      string  `json:"filename"`
	ResumeID      string  `json:"resume_id,omitempty"`
	Name          string  `json:"name,omitempty"`
	MatchScore    float64 `json:"match_score"`
	SemanticScore float64 `json:"semantic_score"`
	Error         string  `json:"error,omitempty"`
}

type ScreeningSummary struct {
	JobID     string         `json:"job_id"`
	Processed int            `json:"processed"`
	Failed    int            `json:"failed"`
	Results   []ScreenedFile `json:"results"`
}

type ScreeningUsecase interface {
	ScreenResumes(ctx context.Context, userID, jobID uuid.UUID, files []UploadedFile) (ScreeningSummary, error)
}

type screeningCache interface {
	InvalidateJob(ctx context.Context, jobID string) error
}

type Screening struct {
	jobs    JobUsecase
	resumes resume.Repository
	ext     *extractor.Extractor
	matcher matching.Matcher
	// fallback scores the batch when the primary matcher errors, e.g.
	// when the embedding backend is unreachable.
	fallback matching.Matcher
	cache    screeningCache
	logger   *log.Logger

	// extractText is swappable in tests to avoid binary fixtures.
	extractText func(filename string, data []byte) (string, error)
}

func NewScreeningUsecase(jobs JobUsecase, resumes resume.Repository, ext *extractor.Extractor, m, fallback matching.Matcher, cache screeningCache, logger *log.Logger) *Screening {
	return &Screening{
		jobs:        jobs,
		resumes:     resumes,
		ext:         ext,
		matcher:     m,
		fallback:    fallback,
		cache:       cache,
		logger:      logger,
		extractText: textextract.FromFile,
	}
}

// ScreenResumes scores every uploaded file against the job and persists
// the survivors. A file that fails to parse fails alone; the rest of
// the batch still lands.
func (u *Screening) ScreenResumes(ctx context.Context, userID, jobID uuid.UUID, files []UploadedFile) (ScreeningSummary, error) {
	j, err := u.jobs.GetJob(ctx, userID, jobID)
	if err != nil {
		return ScreeningSummary{}, err
	}
	if len(files) == 0 {
		return ScreeningSummary{}, ErrNoFiles
	}

	results := make([]ScreenedFile, len(files))
	workers := screeningWorkers
	if len(files) < workers {
		workers = len(files)
	}

	pool := pipeline.NewWorkerPool(workers, len(files))
	done := pool.Run(ctx)

	var mu sync.Mutex
	for i, f := range files {
		i, f := i, f
		pool.Submit(f.Filename, func(ctx context.Context) error {
			res, err := u.screenOne(ctx, userID, j.ID, j.Description, j.RequiredSkills, f)
			mu.Lock()
			if err != nil {
				results[i] = ScreenedFile{Filename: f.Filename, Error: err.Error()}
			} else {
				results[i] = res
			}
			mu.Unlock()
			return err
		})
	}
	pool.Close()
	for range done {
	}

	summary := ScreeningSummary{JobID: jobID.String(), Results: results}
	for _, r := range results {
		if r.Error == "" {
			summary.Processed++
		} else {
			summary.Failed++
		}
	}

	if summary.Processed > 0 && u.cache != nil {
		if err := u.cache.InvalidateJob(ctx, jobID.String()); err != nil && u.logger != nil {
			u.logger.Printf("[Screening] cache invalidation failed | job_id=%s error=%v", jobID, err)
		}
	}
	ws.NotifyScreeningCompleted(jobID, summary.Processed, summary.Failed)

	return summary, nil
}

func (u *Screening) screenOne(ctx context.Context, userID, jobID uuid.UUID, jobText string, requiredSkills []string, f UploadedFile) (ScreenedFile, error) {
	if !textextract.SupportedExt(f.Filename) {
		return ScreenedFile{}, textextract.ErrUnsupported
	}

	text, err := u.extractText(f.Filename, f.Data)
	if err != nil {
		return ScreenedFile{}, err
	}

	profile := u.ext.ParseResume(text, f.Filename)

	skillScore := matching.CalculateMatchScore(profile.Skills, requiredSkills)
	gap := matching.AnalyzeSkillGap(profile.Skills, requiredSkills)

	sim, err := u.matcher.Match(ctx, text, jobText)
	if err != nil && u.fallback != nil {
		if u.logger != nil {
			u.logger.Printf("[Screening] matcher failed, falling back to lexical | file=%s error=%v", f.Filename, err)
		}
		sim, err = u.fallback.Match(ctx, text, jobText)
	}
	if err != nil {
		return ScreenedFile{}, err
	}

	// The overall fit is whichever signal is stronger. A resume with a
	// thin skills section can still rank on text similarity alone.
	matchScore := math.Max(skillScore, sim.SimilarityScore)

	r := resume.Resume{
		ID:            uuid.New(),
		Filename:      f.Filename,
		Name:          profile.Name,
		Email:         profile.Email,
		Phone:         profile.Phone,
		Skills:        profile.Skills,
		Experience:    profile.Experience,
		Education:     profile.Education,
		RawText:       text,
		MatchScore:    matchScore,
		SemanticScore: sim.SimilarityScore,
		MatchedSkills: gap.Matched,
		SkillGaps:     gap.Missing,
		JobID:         jobID,
		UserID:        userID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := u.resumes.Create(ctx, r); err != nil {
		return ScreenedFile{}, ErrInternal
	}

	return ScreenedFile{
		Filename:      f.Filename,
		ResumeID:      r.ID.String(),
		Name:          r.Name,
		MatchScore:    r.MatchScore,
		SemanticScore: r.SemanticScore,
	}, nil
}
