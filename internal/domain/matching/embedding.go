package matching

import (
	"context"
	"fmt"
	"math"
	"strings"

	"resume-screen/internal/catalog"
)

// Embedder turns texts into dense vectors. It is the only external model
// dependency of the embedding path; everything else here is deterministic
// given the vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

const (
	// categoryThreshold is the minimum cosine similarity for a skill to be
	// assigned to a catalog category instead of "Other".
	categoryThreshold = 0.3
	// gapThreshold is the minimum cosine similarity for a requirement
	// skill to count as covered by a candidate skill.
	gapThreshold = 0.5
)

// OtherCategory collects skills that match no catalog category closely
// enough.
const OtherCategory = "Other"

// SemanticMatch pairs a requirement skill with its closest candidate
// skill.
type SemanticMatch struct {
	JobSkill       string
	CandidateSkill string
	Similarity     float64
}

// SemanticGap is the embedding-based counterpart of GapResult. Matched and
// Missing together cover the full requirement list.
type SemanticGap struct {
	Matched []SemanticMatch
	Missing []string
}

// SkillCluster groups related skills found by k-means over their
// embeddings.
type SkillCluster struct {
	ID     int
	Skills []string
	Size   int
}

// EmbeddingMatcher redoes categorization, gap-finding, clustering and
// similarity with embedding cosine-similarity in place of substring
// matching. It implements the same Matcher interface as LexicalMatcher so
// either can be selected by configuration.
type EmbeddingMatcher struct {
	emb Embedder
	cat *catalog.Catalog
	syn *catalog.Synonyms
}

func NewEmbeddingMatcher(emb Embedder, cat *catalog.Catalog, syn *catalog.Synonyms) *EmbeddingMatcher {
	return &EmbeddingMatcher{emb: emb, cat: cat, syn: syn}
}

// Match embeds both documents and scores their cosine similarity on the
// 0-100 scale. Key matches and insights stay lexical: shared terms are a
// vocabulary property, not an embedding one.
func (m *EmbeddingMatcher) Match(ctx context.Context, resumeText, jobText string) (SimilarityResult, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		lex := NewLexicalMatcher(m.syn)
		return lex.Match(ctx, resumeText, jobText)
	}

	vecs, err := m.emb.Embed(ctx, []string{resumeText, jobText})
	if err != nil {
		return SimilarityResult{}, fmt.Errorf("embed documents: %w", err)
	}
	if len(vecs) != 2 {
		return SimilarityResult{}, fmt.Errorf("embed documents: got %d vectors, want 2", len(vecs))
	}

	score := math.Round(cosine(vecs[0], vecs[1])*100*100) / 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	keyMatches := NewLexicalMatcher(m.syn).keyMatches(resumeText, jobText)

	return SimilarityResult{
		SimilarityScore: score,
		KeyMatches:      keyMatches,
		Insights:        insights(score, len(keyMatches)),
		Quality:         QualityForScore(score),
	}, nil
}

// CategorizeSkills assigns each skill to the catalog category whose
// keyword embeddings have the highest max cosine similarity above the 0.3
// threshold, else to "Other". Empty input yields an empty map.
func (m *EmbeddingMatcher) CategorizeSkills(ctx context.Context, skills []string) (map[string][]string, error) {
	skills = cleanSkills(skills)
	if len(skills) == 0 {
		return map[string][]string{}, nil
	}

	skillVecs, err := m.emb.Embed(ctx, skills)
	if err != nil {
		return nil, fmt.Errorf("embed skills: %w", err)
	}

	categoryVecs := make(map[string][][]float64)
	for _, cat := range m.cat.Categories() {
		vecs, err := m.emb.Embed(ctx, cat.Skills)
		if err != nil {
			return nil, fmt.Errorf("embed category %q: %w", cat.Name, err)
		}
		categoryVecs[cat.Name] = vecs
	}

	out := make(map[string][]string)
	for i, skill := range skills {
		best := ""
		bestSim := 0.0
		for _, cat := range m.cat.Categories() {
			sim := maxCosine(skillVecs[i], categoryVecs[cat.Name])
			if sim > bestSim && sim > categoryThreshold {
				bestSim = sim
				best = cat.Name
			}
		}
		if best == "" {
			best = OtherCategory
		}
		out[best] = append(out[best], skill)
	}
	return out, nil
}

// FindSkillGaps matches each requirement skill to the candidate skill with
// the highest cosine similarity; below the 0.5 threshold the requirement
// is missing. Empty inputs degrade to all-missing without error.
func (m *EmbeddingMatcher) FindSkillGaps(ctx context.Context, candidateSkills, requirementSkills []string) (SemanticGap, error) {
	gap := SemanticGap{
		Matched: make([]SemanticMatch, 0, len(requirementSkills)),
		Missing: make([]string, 0, len(requirementSkills)),
	}

	candidateSkills = cleanSkills(candidateSkills)
	requirementSkills = cleanSkills(requirementSkills)
	if len(requirementSkills) == 0 {
		return gap, nil
	}
	if len(candidateSkills) == 0 {
		gap.Missing = append(gap.Missing, requirementSkills...)
		return gap, nil
	}

	candVecs, err := m.emb.Embed(ctx, candidateSkills)
	if err != nil {
		return SemanticGap{}, fmt.Errorf("embed candidate skills: %w", err)
	}
	reqVecs, err := m.emb.Embed(ctx, requirementSkills)
	if err != nil {
		return SemanticGap{}, fmt.Errorf("embed requirement skills: %w", err)
	}

	for i, req := range requirementSkills {
		bestIdx := -1
		bestSim := 0.0
		for j := range candidateSkills {
			sim := cosine(reqVecs[i], candVecs[j])
			if sim > bestSim {
				bestSim = sim
				bestIdx = j
			}
		}
		if bestIdx >= 0 && bestSim > gapThreshold {
			gap.Matched = append(gap.Matched, SemanticMatch{
				JobSkill:       req,
				CandidateSkill: candidateSkills[bestIdx],
				Similarity:     bestSim,
			})
		} else {
			gap.Missing = append(gap.Missing, req)
		}
	}
	return gap, nil
}

// ClusterSkills groups skills into k clusters (k capped at the skill
// count) via deterministic k-means over their embeddings.
func (m *EmbeddingMatcher) ClusterSkills(ctx context.Context, skills []string, k int) ([]SkillCluster, error) {
	skills = cleanSkills(skills)
	if len(skills) < 2 || k <= 0 {
		return []SkillCluster{}, nil
	}

	vecs, err := m.emb.Embed(ctx, skills)
	if err != nil {
		return nil, fmt.Errorf("embed skills: %w", err)
	}

	labels := kmeans(vecs, min(k, len(skills)))

	byLabel := make(map[int][]string)
	order := make([]int, 0)
	for i, label := range labels {
		if _, ok := byLabel[label]; !ok {
			order = append(order, label)
		}
		byLabel[label] = append(byLabel[label], skills[i])
	}

	clusters := make([]SkillCluster, 0, len(order))
	for _, label := range order {
		clusters = append(clusters, SkillCluster{
			ID:     label,
			Skills: byLabel[label],
			Size:   len(byLabel[label]),
		})
	}
	return clusters, nil
}

// StrengthScores scores each populated category: up to 70 points from
// skill count (5 skills saturate) and up to 30 from semantic diversity
// (1 - mean pairwise cosine similarity), capped at 100.
func (m *EmbeddingMatcher) StrengthScores(ctx context.Context, skills []string) (map[string]float64, error) {
	categorized, err := m.CategorizeSkills(ctx, skills)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(categorized))
	for category, categorySkills := range categorized {
		if len(categorySkills) == 0 {
			scores[category] = 0
			continue
		}

		score := math.Min(float64(len(categorySkills))/5.0, 1.0) * 70

		if len(categorySkills) > 1 {
			vecs, err := m.emb.Embed(ctx, categorySkills)
			if err != nil {
				return nil, fmt.Errorf("embed category skills: %w", err)
			}
			score += (1 - meanPairwiseCosine(vecs)) * 30
		}

		scores[category] = math.Min(score, 100)
	}
	return scores, nil
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func maxCosine(v []float64, vs [][]float64) float64 {
	best := 0.0
	for _, other := range vs {
		if sim := cosine(v, other); sim > best {
			best = sim
		}
	}
	return best
}

func meanPairwiseCosine(vecs [][]float64) float64 {
	n := len(vecs)
	if n < 2 {
		return 0
	}
	var sum float64
	var pairs int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += cosine(vecs[i], vecs[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}
