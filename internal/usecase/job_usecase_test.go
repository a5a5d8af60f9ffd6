package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resume-screen/internal/fetcher"
)

func TestCreateJob_MergesProvidedAndExtractedSkills(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, testExtractor(t), nil, nil)
	userID := uuid.New()

	j, err := uc.CreateJob(context.Background(), userID, CreateJobInput{
		Title:          "Backend Engineer",
		Description:    "We need strong Python and SQL experience.",
		RequiredSkills: []string{"Python", "Terraform"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []string{"Python", "Terraform", "sql"}
	if len(j.RequiredSkills) != len(want) {
		t.Fatalf("skills = %v, want %v", j.RequiredSkills, want)
	}
	for i := range want {
		if j.RequiredSkills[i] != want[i] {
			t.Fatalf("skills[%d] = %q, want %q", i, j.RequiredSkills[i], want[i])
		}
	}

	stored, err := repo.GetByID(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if stored.UserID != userID {
		t.Fatalf("stored user id = %s, want %s", stored.UserID, userID)
	}
}

func TestCreateJob_RequiresTitleAndDescription(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), testExtractor(t), nil, nil)

	_, err := uc.CreateJob(context.Background(), uuid.New(), CreateJobInput{Title: "  ", Description: "text"})
	if !errors.Is(err, ErrInvalidJobInput) {
		t.Fatalf("expected ErrInvalidJobInput, got %v", err)
	}
	_, err = uc.CreateJob(context.Background(), uuid.New(), CreateJobInput{Title: "Title", Description: ""})
	if !errors.Is(err, ErrInvalidJobInput) {
		t.Fatalf("expected ErrInvalidJobInput, got %v", err)
	}
}

func TestGetJob_OwnershipEnforced(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, testExtractor(t), nil, nil)
	owner := uuid.New()
	j := seedJob(t, repo, owner, "Backend Engineer", "desc", []string{"python"})

	if _, err := uc.GetJob(context.Background(), owner, j.ID); err != nil {
		t.Fatalf("owner should read own job: %v", err)
	}

	_, err := uc.GetJob(context.Background(), uuid.New(), j.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_, err = uc.GetJob(context.Background(), owner, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestListJobs_FiltersByUser(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, testExtractor(t), nil, nil)
	owner := uuid.New()
	seedJob(t, repo, owner, "A", "desc", nil)
	seedJob(t, repo, owner, "B", "desc", nil)
	seedJob(t, repo, uuid.New(), "C", "desc", nil)

	list, err := uc.ListJobs(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("listed %d jobs, want 2", len(list))
	}
}

func TestImportFromURL_BuildsDraft(t *testing.T) {
	pf := stubFetcher{posting: fetcher.Posting{
		Title:       "Data Engineer",
		Description: "Looking for Python and AWS expertise.",
		URL:         "https://jobs.example.com/123",
	}}
	uc := NewJobUsecase(newMockJobRepo(), testExtractor(t), pf, nil)

	draft, err := uc.ImportFromURL(context.Background(), "https://jobs.example.com/123")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if draft.Title != "Data Engineer" {
		t.Fatalf("title = %q", draft.Title)
	}
	want := []string{"python", "aws"}
	if len(draft.SuggestedSkills) != len(want) {
		t.Fatalf("suggested = %v, want %v", draft.SuggestedSkills, want)
	}
	for i := range want {
		if draft.SuggestedSkills[i] != want[i] {
			t.Fatalf("suggested[%d] = %q, want %q", i, draft.SuggestedSkills[i], want[i])
		}
	}
}

func TestImportFromURL_FetchFailure(t *testing.T) {
	pf := stubFetcher{err: errors.New("blocked")}
	uc := NewJobUsecase(newMockJobRepo(), testExtractor(t), pf, nil)

	_, err := uc.ImportFromURL(context.Background(), "https://jobs.example.com/123")
	if !errors.Is(err, ErrInvalidJobURL) {
		t.Fatalf("expected ErrInvalidJobURL, got %v", err)
	}
}
