package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-screen/internal/catalog"
	"resume-screen/internal/domain/job"
	"resume-screen/internal/domain/matching"
	"resume-screen/internal/domain/resume"
	"resume-screen/internal/extractor"
	"resume-screen/internal/fetcher"
)

func testExtractor(t *testing.T) *extractor.Extractor {
	t.Helper()
	cat, err := catalog.New([]catalog.Category{
		{Name: "programming", Skills: []string{"python", "java", "sql"}},
		{Name: "cloud", Skills: []string{"aws", "docker", "kubernetes"}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return extractor.New(cat)
}

type mockJobRepo struct {
	jobs      map[uuid.UUID]job.Job
	createErr error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: map[uuid.UUID]job.Job{}}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]job.Job, error) {
	var out []job.Job
	for _, j := range m.jobs {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

type mockResumeRepo struct {
	resumes   map[uuid.UUID]resume.Resume
	createErr error
}

func newMockResumeRepo() *mockResumeRepo {
	return &mockResumeRepo{resumes: map[uuid.UUID]resume.Resume{}}
}

func (m *mockResumeRepo) Create(_ context.Context, r resume.Resume) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.resumes[r.ID] = r
	return nil
}

func (m *mockResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	r, ok := m.resumes[id]
	if !ok {
		return resume.Resume{}, resume.ErrNotFound
	}
	return r, nil
}

func (m *mockResumeRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]resume.Resume, error) {
	var out []resume.Resume
	for _, r := range m.resumes {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].MatchScore > out[k].MatchScore })
	return out, nil
}

type stubMatcher struct {
	result matching.SimilarityResult
	err    error
}

func (s stubMatcher) Match(context.Context, string, string) (matching.SimilarityResult, error) {
	return s.result, s.err
}

type stubFetcher struct {
	posting fetcher.Posting
	err     error
}

func (s stubFetcher) Fetch(context.Context, string) (fetcher.Posting, error) {
	return s.posting, s.err
}

// cacheSpy records cache traffic in-memory for both the screening and
// results usecases.
type cacheSpy struct {
	data        map[string][]byte
	sets        int
	invalidated []string
}

func newCacheSpy() *cacheSpy {
	return &cacheSpy{data: map[string][]byte{}}
}

func (c *cacheSpy) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *cacheSpy) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets++
	return nil
}

func (c *cacheSpy) InvalidateJob(_ context.Context, jobID string) error {
	c.invalidated = append(c.invalidated, jobID)
	return nil
}

func seedJob(t *testing.T, repo *mockJobRepo, userID uuid.UUID, title, description string, skills []string) job.Job {
	t.Helper()
	j := job.Job{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		RequiredSkills: skills,
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), j); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return j
}
