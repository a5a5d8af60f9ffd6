// Package recommend turns a parsed candidate profile into job role
// recommendations, resume feedback and career path suggestions.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-screen/internal/domain/resume"
)

// Role is a target job profile with its market data.
type Role struct {
	Title          string
	RequiredSkills []string
	SalaryRange    string
	GrowthRate     string
}

// Recommendation scores a role against a candidate's skills.
type Recommendation struct {
	JobTitle      string   `json:"job_title"`
	MatchScore    int      `json:"match_score"`
	Reasons       []string `json:"reasons"`
	SalaryRange   string   `json:"salary_range"`
	GrowthRate    string   `json:"growth_rate"`
	MatchedSkills []string `json:"matched_skills"`
}

// Feedback summarizes how a resume stacks up against a target skill
// list.
type Feedback struct {
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	MissingSkills   []string `json:"missing_skills"`
	Recommendations []string `json:"recommendations"`
}

// CareerPath is a suggested progression with its expected payoff.
type CareerPath struct {
	Path           string   `json:"path"`
	Timeline       string   `json:"timeline"`
	RequiredSkills []string `json:"required_skills"`
	SalaryIncrease string   `json:"salary_increase"`
}

// roles is ordered; ties in match score keep this order.
var roles = []Role{
	{
		Title:          "Software Developer",
		RequiredSkills: []string{"javascript", "python", "java", "react", "node.js", "sql"},
		SalaryRange:    "$70,000 - $120,000",
		GrowthRate:     "High",
	},
	{
		Title:          "Data Scientist",
		RequiredSkills: []string{"python", "machine learning", "sql", "pandas", "numpy", "analytics"},
		SalaryRange:    "$80,000 - $140,000",
		GrowthRate:     "Very High",
	},
	{
		Title:          "DevOps Engineer",
		RequiredSkills: []string{"aws", "docker", "kubernetes", "ci/cd", "jenkins", "terraform"},
		SalaryRange:    "$85,000 - $130,000",
		GrowthRate:     "High",
	},
	{
		Title:          "Frontend Developer",
		RequiredSkills: []string{"react", "javascript", "html", "css", "typescript", "vue"},
		SalaryRange:    "$65,000 - $110,000",
		GrowthRate:     "High",
	},
	{
		Title:          "Backend Developer",
		RequiredSkills: []string{"node.js", "python", "java", "sql", "mongodb", "express"},
		SalaryRange:    "$70,000 - $115,000",
		GrowthRate:     "High",
	},
	{
		Title:          "Product Manager",
		RequiredSkills: []string{"project management", "agile", "scrum", "leadership", "analytics"},
		SalaryRange:    "$90,000 - $150,000",
		GrowthRate:     "High",
	},
	{
		Title:          "UI/UX Designer",
		RequiredSkills: []string{"design", "figma", "adobe", "user experience", "prototyping"},
		SalaryRange:    "$60,000 - $100,000",
		GrowthRate:     "Medium",
	},
	{
		Title:          "Machine Learning Engineer",
		RequiredSkills: []string{"python", "tensorflow", "pytorch", "machine learning", "ai", "data science"},
		SalaryRange:    "$95,000 - $160,000",
		GrowthRate:     "Very High",
	},
	{
		Title:          "Full Stack Developer",
		RequiredSkills: []string{"javascript", "react", "node.js", "sql", "python", "html", "css"},
		SalaryRange:    "$75,000 - $125,000",
		GrowthRate:     "High",
	},
	{
		Title:          "Cloud Architect",
		RequiredSkills: []string{"aws", "azure", "kubernetes", "terraform", "microservices", "devops"},
		SalaryRange:    "$110,000 - $180,000",
		GrowthRate:     "Very High",
	},
}

// minScore filters out roles with weak overlap.
const minScore = 20

const maxRecommendations = 6

// Roles exposes the role table, for listings and tests.
func Roles() []Role {
	return roles
}

// GenerateRecommendations scores every known role against the
// candidate's skills and returns the top matches, best first.
//
// Matching counts candidate skills that overlap any required skill, but
// the percentage is taken over the role's requirement count, so a broad
// skill set can score above 100.
func GenerateRecommendations(candidateSkills []string) []Recommendation {
	out := []Recommendation{}
	if len(candidateSkills) == 0 {
		return out
	}

	for _, role := range roles {
		var matched []string
		for _, skill := range candidateSkills {
			if anyOverlap(skill, role.RequiredSkills) {
				matched = append(matched, skill)
			}
		}

		score := int(math.Round(float64(len(matched)) / float64(len(role.RequiredSkills)) * 100))
		if score <= minScore {
			continue
		}

		reasons := []string{
			fmt.Sprintf("%d matching skills found", len(matched)),
			fmt.Sprintf("%d%% skill compatibility", score),
			fmt.Sprintf("Salary range: %s", role.SalaryRange),
			fmt.Sprintf("Growth rate: %s", role.GrowthRate),
		}
		if len(matched) > 0 {
			reasons = append(reasons, fmt.Sprintf("Strong in: %s", strings.Join(truncate(matched, 3), ", ")))
		}

		out = append(out, Recommendation{
			JobTitle:      role.Title,
			MatchScore:    score,
			Reasons:       reasons,
			SalaryRange:   role.SalaryRange,
			GrowthRate:    role.GrowthRate,
			MatchedSkills: matched,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return truncateRecs(out, maxRecommendations)
}

// GenerateFeedback reviews a parsed profile against a target job's
// skill list and produces strengths, improvement areas, missing skills
// and next-step recommendations.
func GenerateFeedback(profile resume.Profile, targetSkills []string) Feedback {
	var matched []string
	for _, skill := range profile.Skills {
		if anyOverlap(skill, targetSkills) {
			matched = append(matched, skill)
		}
	}

	var missing []string
	for _, target := range targetSkills {
		if !anyOverlap(target, profile.Skills) {
			missing = append(missing, target)
		}
	}

	var strengths []string
	if len(matched) > 0 {
		strengths = append(strengths, fmt.Sprintf("Strong technical skills in: %s", strings.Join(truncate(matched, 4), ", ")))
	}
	if len(profile.Experience) > 0 {
		strengths = append(strengths, fmt.Sprintf("%d relevant experience entries documented", len(profile.Experience)))
	}
	if len(profile.Education) > 0 {
		strengths = append(strengths, fmt.Sprintf("%d education qualifications listed", len(profile.Education)))
	}
	if len(profile.Skills) > 10 {
		strengths = append(strengths, "Diverse skill set with broad technical knowledge")
	}

	improvements := []string{
		"Consider adding more quantified achievements and metrics",
		"Include specific project examples with technologies used",
		"Highlight leadership and collaboration experiences",
		"Add certifications relevant to your target role",
	}
	if len(profile.Experience) < 2 {
		improvements = append(improvements, "Expand experience section with more detailed descriptions")
	}
	mentionsProject := false
	for _, exp := range profile.Experience {
		if strings.Contains(strings.ToLower(exp), "project") {
			mentionsProject = true
			break
		}
	}
	if !mentionsProject {
		improvements = append(improvements, "Include personal or professional projects in your experience")
	}

	var recs []string
	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Focus on developing skills in: %s", strings.Join(truncate(missing, 4), ", ")))
	}
	recs = append(recs,
		"Consider obtaining relevant industry certifications",
		"Build a portfolio showcasing your technical abilities",
		"Tailor resume keywords to match specific job descriptions",
		"Network with professionals in your target industry",
	)

	grouped := groupSkills(profile.Skills)
	if len(grouped["programming"]) < 2 {
		recs = append(recs, "Learn additional programming languages to increase versatility")
	}
	if len(grouped["cloud"]) == 0 {
		recs = append(recs, "Consider learning cloud technologies (AWS, Azure, or GCP)")
	}

	return Feedback{
		Strengths:       truncate(strengths, 4),
		Improvements:    truncate(improvements, 4),
		MissingSkills:   truncate(missing, 6),
		Recommendations: truncate(recs, 5),
	}
}

// CareerPathSuggestions proposes up to three progression paths from the
// candidate's current skill set.
func CareerPathSuggestions(currentSkills []string) []CareerPath {
	var paths []CareerPath

	grouped := groupSkills(currentSkills)

	if len(currentSkills) < 8 {
		paths = append(paths, CareerPath{
			Path:           "Junior to Mid-level Developer",
			Timeline:       "1-2 years",
			RequiredSkills: []string{"Add 3-5 more technical skills", "Gain project experience"},
			SalaryIncrease: "20-40%",
		})
	}
	if len(grouped["data"]) > 0 {
		paths = append(paths, CareerPath{
			Path:           "Data Science Specialization",
			Timeline:       "6-12 months",
			RequiredSkills: []string{"Advanced ML", "Statistics", "Domain expertise"},
			SalaryIncrease: "25-50%",
		})
	}
	if len(grouped["cloud"]) > 0 {
		paths = append(paths, CareerPath{
			Path:           "Cloud Architecture",
			Timeline:       "1-2 years",
			RequiredSkills: []string{"Multi-cloud expertise", "Security", "Leadership"},
			SalaryIncrease: "30-60%",
		})
	}

	if len(paths) > 3 {
		paths = paths[:3]
	}
	return paths
}

// skillGroups is a coarse grouping used only for feedback and career
// path heuristics; the full catalog taxonomy is deliberately not pulled
// in here.
var skillGroups = map[string][]string{
	"programming": {"python", "java", "javascript", "c++", "c#"},
	"frameworks":  {"react", "angular", "vue", "django", "flask"},
	"databases":   {"sql", "mongodb", "postgresql", "mysql"},
	"cloud":       {"aws", "azure", "gcp", "docker", "kubernetes"},
	"data":        {"machine learning", "data science", "analytics"},
	"soft":        {"leadership", "communication", "project management"},
}

var skillGroupOrder = []string{"programming", "frameworks", "databases", "cloud", "data", "soft"}

// groupSkills buckets skills by the first group whose keyword appears
// inside the skill name. Unmatched skills are dropped.
func groupSkills(skills []string) map[string][]string {
	out := make(map[string][]string)
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, group := range skillGroupOrder {
			hit := false
			for _, kw := range skillGroups[group] {
				if strings.Contains(lower, kw) {
					hit = true
					break
				}
			}
			if hit {
				out[group] = append(out[group], skill)
				break
			}
		}
	}
	return out
}

// anyOverlap reports whether skill overlaps any entry in others by
// case-insensitive substring containment in either direction.
func anyOverlap(skill string, others []string) bool {
	lower := strings.ToLower(skill)
	for _, other := range others {
		otherLower := strings.ToLower(other)
		if strings.Contains(lower, otherLower) || strings.Contains(otherLower, lower) {
			return true
		}
	}
	return false
}

func truncate(xs []string, n int) []string {
	if xs == nil {
		return []string{}
	}
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}

func truncateRecs(xs []Recommendation, n int) []Recommendation {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}
