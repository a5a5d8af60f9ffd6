package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"resume-screen/internal/domain/matching"
)

const resumeText = "John Doe\njohn.doe@example.com\n+1 (555) 123-4567\nExperienced engineer skilled in python and sql development."

func newScreening(t *testing.T, jobs *mockJobRepo, resumes *mockResumeRepo, m, fallback matching.Matcher, cache *cacheSpy) *Screening {
	t.Helper()
	ext := testExtractor(t)
	jobUC := NewJobUsecase(jobs, ext, nil, nil)
	var c screeningCache
	if cache != nil {
		c = cache
	}
	return NewScreeningUsecase(jobUC, resumes, ext, m, fallback, c, nil)
}

func TestScreenResumes_ScoresAndPersists(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	cache := newCacheSpy()
	userID := uuid.New()
	j := seedJob(t, jobs, userID, "Backend Engineer", "desc", []string{"python", "sql", "aws"})

	uc := newScreening(t, jobs, resumes,
		stubMatcher{result: matching.SimilarityResult{SimilarityScore: 40}}, nil, cache)

	summary, err := uc.ScreenResumes(context.Background(), userID, j.ID, []UploadedFile{
		{Filename: "john_doe.txt", Data: []byte(resumeText)},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if summary.Processed != 1 || summary.Failed != 0 {
		t.Fatalf("processed=%d failed=%d, want 1/0", summary.Processed, summary.Failed)
	}
	if len(resumes.resumes) != 1 {
		t.Fatalf("persisted %d resumes, want 1", len(resumes.resumes))
	}

	var stored bool
	for _, r := range resumes.resumes {
		stored = true
		// Two of three requirements matched on the skills side beats
		// the 40 similarity, so it becomes the overall score.
		want := 200.0 / 3.0
		if math.Abs(r.MatchScore-want) > 1e-9 {
			t.Fatalf("match score = %v, want %v", r.MatchScore, want)
		}
		if r.SemanticScore != 40 {
			t.Fatalf("semantic score = %v, want 40", r.SemanticScore)
		}
		if len(r.MatchedSkills) != 2 || r.MatchedSkills[0] != "python" || r.MatchedSkills[1] != "sql" {
			t.Fatalf("matched = %v", r.MatchedSkills)
		}
		if len(r.SkillGaps) != 1 || r.SkillGaps[0] != "aws" {
			t.Fatalf("gaps = %v", r.SkillGaps)
		}
		if r.Name != "John Doe" {
			t.Fatalf("name = %q", r.Name)
		}
		if r.Email != "john.doe@example.com" {
			t.Fatalf("email = %q", r.Email)
		}
		if r.JobID != j.ID || r.UserID != userID {
			t.Fatalf("ownership not recorded: job=%s user=%s", r.JobID, r.UserID)
		}
	}
	if !stored {
		t.Fatalf("no resume stored")
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != j.ID.String() {
		t.Fatalf("cache invalidations = %v", cache.invalidated)
	}
}

func TestScreenResumes_UnsupportedFileFailsAlone(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	userID := uuid.New()
	j := seedJob(t, jobs, userID, "Backend Engineer", "desc", []string{"python"})

	uc := newScreening(t, jobs, resumes,
		stubMatcher{result: matching.SimilarityResult{SimilarityScore: 10}}, nil, nil)

	summary, err := uc.ScreenResumes(context.Background(), userID, j.ID, []UploadedFile{
		{Filename: "resume.exe", Data: []byte("binary")},
		{Filename: "ok.txt", Data: []byte(resumeText)},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if summary.Processed != 1 || summary.Failed != 1 {
		t.Fatalf("processed=%d failed=%d, want 1/1", summary.Processed, summary.Failed)
	}
	if summary.Results[0].Error == "" {
		t.Fatalf("expected error for unsupported file")
	}
	if summary.Results[1].Error != "" {
		t.Fatalf("txt file should succeed, got %q", summary.Results[1].Error)
	}
	if len(resumes.resumes) != 1 {
		t.Fatalf("persisted %d resumes, want 1", len(resumes.resumes))
	}
}

func TestScreenResumes_FallsBackWhenMatcherFails(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	userID := uuid.New()
	j := seedJob(t, jobs, userID, "Backend Engineer", "desc", []string{"python", "sql", "aws"})

	uc := newScreening(t, jobs, resumes,
		stubMatcher{err: errors.New("embedding backend down")},
		stubMatcher{result: matching.SimilarityResult{SimilarityScore: 90}}, nil)

	summary, err := uc.ScreenResumes(context.Background(), userID, j.ID, []UploadedFile{
		{Filename: "john_doe.txt", Data: []byte(resumeText)},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if summary.Processed != 1 {
		t.Fatalf("processed = %d, want 1", summary.Processed)
	}
	for _, r := range resumes.resumes {
		if r.MatchScore != 90 || r.SemanticScore != 90 {
			t.Fatalf("scores = %v/%v, want 90/90", r.MatchScore, r.SemanticScore)
		}
	}
}

func TestScreenResumes_NoFiles(t *testing.T) {
	jobs := newMockJobRepo()
	userID := uuid.New()
	j := seedJob(t, jobs, userID, "Backend Engineer", "desc", []string{"python"})

	uc := newScreening(t, jobs, newMockResumeRepo(), stubMatcher{}, nil, nil)
	_, err := uc.ScreenResumes(context.Background(), userID, j.ID, nil)
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
}

func TestScreenResumes_ForeignJob(t *testing.T) {
	jobs := newMockJobRepo()
	j := seedJob(t, jobs, uuid.New(), "Backend Engineer", "desc", []string{"python"})

	uc := newScreening(t, jobs, newMockResumeRepo(), stubMatcher{}, nil, nil)
	_, err := uc.ScreenResumes(context.Background(), uuid.New(), j.ID, []UploadedFile{
		{Filename: "a.txt", Data: []byte("text")},
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
