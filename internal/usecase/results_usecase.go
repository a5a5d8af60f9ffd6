package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-screen/internal/domain/matching"
	"resume-screen/internal/domain/resume"
	"resume-screen/internal/extractor"
	"resume-screen/internal/recommend"
)

var ErrResumeNotFound = errors.New("resume not found")

const resumeDetailTTL = 10 * time.Minute

// ResumeRow is one entry of a job's ranked results list.
type ResumeRow struct {
	ID            string   `json:"id"`
	Filename      string   `json:"filename"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	MatchScore    float64  `json:"match_score"`
	SemanticScore float64  `json:"semantic_score"`
	MatchedSkills []string `json:"matched_skills"`
	SkillGaps     []string `json:"skill_gaps"`
	Quality       string   `json:"quality"`
}

// ResumeDetail is the full drill-down view for one screened resume.
// Recommendations and feedback are computed on read, not stored.
type ResumeDetail struct {
	ResumeRow
	Skills          []string                   `json:"skills"`
	Experience      []string                   `json:"experience"`
	Education       []string                   `json:"education"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Feedback        recommend.Feedback         `json:"feedback"`
	CareerPaths     []recommend.CareerPath     `json:"career_paths"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// ChartData feeds the dashboard's score and skill charts for one job.
type ChartData struct {
	MatchScores     []float64           `json:"match_scores"`
	Names           []string            `json:"names"`
	SkillCategories map[string][]string `json:"skill_categories"`
	TopSkills       []SkillCount        `json:"top_skills"`
}

type ExportFile struct {
	Filename string
	Content  []byte
}

type ResultsUsecase interface {
	JobResults(ctx context.Context, userID, jobID uuid.UUID) ([]ResumeRow, error)
	ResumeDetails(ctx context.Context, userID, resumeID uuid.UUID) (ResumeDetail, error)
	ExportCSV(ctx context.Context, userID, jobID uuid.UUID) (ExportFile, error)
	SkillChart(ctx context.Context, userID, jobID uuid.UUID) (ChartData, error)
}

type detailCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Results struct {
	jobs    JobUsecase
	resumes resume.Repository
	ext     *extractor.Extractor
	cache   detailCache
	logger  *log.Logger
	now     func() time.Time
}

func NewResultsUsecase(jobs JobUsecase, resumes resume.Repository, ext *extractor.Extractor, cache detailCache, logger *log.Logger) *Results {
	return &Results{jobs: jobs, resumes: resumes, ext: ext, cache: cache, logger: logger, now: time.Now}
}

// JobResults lists a job's screened resumes, best match first. The
// repository already orders by match score.
func (u *Results) JobResults(ctx context.Context, userID, jobID uuid.UUID) ([]ResumeRow, error) {
	if _, err := u.jobs.GetJob(ctx, userID, jobID); err != nil {
		return nil, err
	}

	list, err := u.resumes.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}

	rows := make([]ResumeRow, 0, len(list))
	for _, r := range list {
		rows = append(rows, toRow(r))
	}
	return rows, nil
}

func (u *Results) ResumeDetails(ctx context.Context, userID, resumeID uuid.UUID) (ResumeDetail, error) {
	if userID == uuid.Nil {
		return ResumeDetail{}, ErrUnauthorized
	}
	if resumeID == uuid.Nil {
		return ResumeDetail{}, ErrResumeNotFound
	}

	key := "resume:detail:" + resumeID.String()
	if u.cache != nil {
		var cached ResumeDetail
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			// Ownership still has to hold for the caller.
			r, err := u.resumes.GetByID(ctx, resumeID)
			if err == nil && r.UserID == userID {
				return cached, nil
			}
		}
	}

	r, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ResumeDetail{}, ErrResumeNotFound
		}
		return ResumeDetail{}, ErrInternal
	}
	if r.UserID != userID {
		return ResumeDetail{}, ErrForbidden
	}

	j, err := u.jobs.GetJob(ctx, userID, r.JobID)
	if err != nil {
		return ResumeDetail{}, err
	}

	profile := resume.Profile{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Skills:     r.Skills,
		Experience: r.Experience,
		Education:  r.Education,
	}

	detail := ResumeDetail{
		ResumeRow:       toRow(r),
		Skills:          r.Skills,
		Experience:      r.Experience,
		Education:       r.Education,
		Recommendations: recommend.GenerateRecommendations(r.Skills),
		Feedback:        recommend.GenerateFeedback(profile, j.RequiredSkills),
		CareerPaths:     recommend.CareerPathSuggestions(r.Skills),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, detail, resumeDetailTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Results] detail cache write failed | resume_id=%s error=%v", resumeID, err)
		}
	}

	return detail, nil
}

// ExportCSV renders a job's results as a spreadsheet download.
func (u *Results) ExportCSV(ctx context.Context, userID, jobID uuid.UUID) (ExportFile, error) {
	j, err := u.jobs.GetJob(ctx, userID, jobID)
	if err != nil {
		return ExportFile{}, err
	}

	list, err := u.resumes.ListByJob(ctx, jobID)
	if err != nil {
		return ExportFile{}, ErrInternal
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"Name", "Email", "Phone", "Match Score", "Semantic Score", "Matched Skills", "Missing Skills", "Total Skills"}
	if err := w.Write(header); err != nil {
		return ExportFile{}, ErrInternal
	}
	for _, r := range list {
		record := []string{
			r.Name,
			r.Email,
			r.Phone,
			fmt.Sprintf("%.1f%%", r.MatchScore),
			fmt.Sprintf("%.1f%%", r.SemanticScore),
			strings.Join(r.MatchedSkills, "; "),
			strings.Join(r.SkillGaps, "; "),
			fmt.Sprintf("%d", len(r.Skills)),
		}
		if err := w.Write(record); err != nil {
			return ExportFile{}, ErrInternal
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ExportFile{}, ErrInternal
	}

	name := fmt.Sprintf("resume_analysis_%s_%s.csv", sanitizeFilename(j.Title), u.now().UTC().Format("20060102"))
	return ExportFile{Filename: name, Content: buf.Bytes()}, nil
}

// SkillChart aggregates a job's resumes into chart series: score per
// candidate, the categorized union of seen skills, and the ten most
// common skills across the pool.
func (u *Results) SkillChart(ctx context.Context, userID, jobID uuid.UUID) (ChartData, error) {
	if _, err := u.jobs.GetJob(ctx, userID, jobID); err != nil {
		return ChartData{}, err
	}

	list, err := u.resumes.ListByJob(ctx, jobID)
	if err != nil {
		return ChartData{}, ErrInternal
	}

	data := ChartData{
		MatchScores: make([]float64, 0, len(list)),
		Names:       make([]string, 0, len(list)),
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range list {
		data.MatchScores = append(data.MatchScores, r.MatchScore)
		data.Names = append(data.Names, r.Name)
		for _, s := range r.Skills {
			key := strings.ToLower(s)
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	data.SkillCategories = u.ext.Categorize(order)
	data.TopSkills = topSkills(counts, order, 10)
	return data, nil
}

func toRow(r resume.Resume) ResumeRow {
	return ResumeRow{
		ID:            r.ID.String(),
		Filename:      r.Filename,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		MatchScore:    r.MatchScore,
		SemanticScore: r.SemanticScore,
		MatchedSkills: r.MatchedSkills,
		SkillGaps:     r.SkillGaps,
		Quality:       string(matching.QualityForScore(r.MatchScore)),
	}
}

// topSkills picks the n highest counts; ties break on first appearance
// so repeated calls over the same pool stay stable.
func topSkills(counts map[string]int, order []string, n int) []SkillCount {
	firstSeen := make(map[string]int, len(order))
	for i, s := range order {
		firstSeen[s] = i
	}

	out := make([]SkillCount, 0, len(counts))
	for _, s := range order {
		out = append(out, SkillCount{Skill: s, Count: counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Skill] < firstSeen[out[j].Skill]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	if s == "" {
		s = "job"
	}
	return s
}
