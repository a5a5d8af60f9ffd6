package dto

import (
	"time"

	"resume-screen/internal/domain/job"
	"resume-screen/internal/usecase"
)

type JobResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
	Location        string   `json:"location"`
	CreatedAt       string   `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	created := ""
	if !j.CreatedAt.IsZero() {
		created = j.CreatedAt.UTC().Format(time.RFC3339)
	}
	return JobResponse{
		ID:              j.ID.String(),
		Title:           j.Title,
		Company:         j.Company,
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		ExperienceLevel: j.ExperienceLevel,
		Location:        j.Location,
		CreatedAt:       created,
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

type JobDraftResponse struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SuggestedSkills []string `json:"suggested_skills"`
	SourceURL       string   `json:"source_url"`
}

func NewJobDraftResponse(d usecase.JobDraft) JobDraftResponse {
	return JobDraftResponse{
		Title:           d.Title,
		Description:     d.Description,
		SuggestedSkills: d.SuggestedSkills,
		SourceURL:       d.SourceURL,
	}
}
