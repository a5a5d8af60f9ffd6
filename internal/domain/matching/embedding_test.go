package matching

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"resume-screen/internal/catalog"
)

// stubEmbedder returns fixed vectors per text, a shared fallback for
// unknown texts, or an error.
type stubEmbedder struct {
	vectors  map[string][]float64
	fallback []float64
	err      error
}

func (s stubEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, 0, len(texts))
	for _, t := range texts {
		if v, ok := s.vectors[t]; ok {
			out = append(out, v)
			continue
		}
		out = append(out, s.fallback)
	}
	return out, nil
}

func testCatalog(t *testing.T) (*catalog.Catalog, *catalog.Synonyms) {
	t.Helper()
	cat, err := catalog.New([]catalog.Category{
		{Name: "programming", Skills: []string{"python", "go"}},
		{Name: "cloud", Skills: []string{"aws", "docker"}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	syn, err := catalog.DefaultSynonyms()
	if err != nil {
		t.Fatalf("synonyms: %v", err)
	}
	return cat, syn
}

func TestEmbeddingMatch_CosineScore(t *testing.T) {
	cat, syn := testCatalog(t)
	emb := stubEmbedder{
		vectors: map[string][]float64{
			"resume text": {1, 0},
			"job text":    {1, 0},
		},
	}
	m := NewEmbeddingMatcher(emb, cat, syn)

	res, err := m.Match(context.Background(), "resume text", "job text")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SimilarityScore != 100 {
		t.Fatalf("score = %v, want 100", res.SimilarityScore)
	}
	if res.Quality != QualityExcellent {
		t.Fatalf("quality = %v", res.Quality)
	}
}

func TestEmbeddingMatch_Orthogonal(t *testing.T) {
	cat, syn := testCatalog(t)
	emb := stubEmbedder{
		vectors: map[string][]float64{
			"alpha": {1, 0},
			"beta":  {0, 1},
		},
	}
	m := NewEmbeddingMatcher(emb, cat, syn)

	res, err := m.Match(context.Background(), "alpha", "beta")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SimilarityScore != 0 {
		t.Fatalf("score = %v, want 0", res.SimilarityScore)
	}
}

func TestEmbeddingMatch_EmptyFallsBackToLexical(t *testing.T) {
	cat, syn := testCatalog(t)
	m := NewEmbeddingMatcher(stubEmbedder{err: errors.New("should not be called")}, cat, syn)

	res, err := m.Match(context.Background(), "", "anything")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SimilarityScore != 0 {
		t.Fatalf("score = %v, want 0", res.SimilarityScore)
	}
}

func TestEmbeddingMatch_EmbedderError(t *testing.T) {
	cat, syn := testCatalog(t)
	m := NewEmbeddingMatcher(stubEmbedder{err: errors.New("model down")}, cat, syn)

	if _, err := m.Match(context.Background(), "a", "b"); err == nil {
		t.Fatalf("expected error when embedder fails")
	}
}

func TestCategorizeSkills_ThresholdAndOther(t *testing.T) {
	cat, syn := testCatalog(t)
	emb := stubEmbedder{
		vectors: map[string][]float64{
			"python": {1, 0, 0},
			"go":     {0.9, 0.1, 0},
			"aws":    {0, 1, 0},
			"docker": {0, 0.9, 0.1},

			"django":     {0.95, 0.05, 0}, // close to programming
			"gardening":  {0, 0, 1},       // close to nothing
			"kubernetes": {0.1, 0.95, 0},  // close to cloud
		},
	}
	m := NewEmbeddingMatcher(emb, cat, syn)

	got, err := m.CategorizeSkills(context.Background(), []string{"django", "gardening", "kubernetes"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got["programming"], []string{"django"}) {
		t.Fatalf("programming = %v", got["programming"])
	}
	if !reflect.DeepEqual(got["cloud"], []string{"kubernetes"}) {
		t.Fatalf("cloud = %v", got["cloud"])
	}
	if !reflect.DeepEqual(got[OtherCategory], []string{"gardening"}) {
		t.Fatalf("Other = %v", got[OtherCategory])
	}
}

func TestFindSkillGaps_Threshold(t *testing.T) {
	cat, syn := testCatalog(t)
	emb := stubEmbedder{
		vectors: map[string][]float64{
			"python":  {1, 0},
			"pytorch": {0.9, 0.1}, // cos with python ≈ 0.99, with cooking ≈ 0.11
			"cooking": {0, 1},
		},
	}
	m := NewEmbeddingMatcher(emb, cat, syn)

	gap, err := m.FindSkillGaps(context.Background(), []string{"pytorch"}, []string{"python", "cooking"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gap.Matched) != 1 || gap.Matched[0].JobSkill != "python" || gap.Matched[0].CandidateSkill != "pytorch" {
		t.Fatalf("matched = %+v", gap.Matched)
	}
	if !reflect.DeepEqual(gap.Missing, []string{"cooking"}) {
		t.Fatalf("missing = %v", gap.Missing)
	}
	if len(gap.Matched)+len(gap.Missing) != 2 {
		t.Fatalf("partition lost requirements")
	}
}

func TestFindSkillGaps_EmptyInputs(t *testing.T) {
	cat, syn := testCatalog(t)
	m := NewEmbeddingMatcher(stubEmbedder{err: errors.New("should not be called")}, cat, syn)

	gap, err := m.FindSkillGaps(context.Background(), nil, []string{"python"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(gap.Missing, []string{"python"}) {
		t.Fatalf("missing = %v", gap.Missing)
	}

	gap, err = m.FindSkillGaps(context.Background(), []string{"python"}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gap.Matched) != 0 || len(gap.Missing) != 0 {
		t.Fatalf("expected empty gap, got %+v", gap)
	}
}

func TestClusterSkills_Deterministic(t *testing.T) {
	cat, syn := testCatalog(t)
	emb := stubEmbedder{
		vectors: map[string][]float64{
			"python": {1, 0},
			"django": {0.98, 0.02},
			"aws":    {0, 1},
			"docker": {0.02, 0.98},
		},
	}
	m := NewEmbeddingMatcher(emb, cat, syn)

	first, err := m.ClusterSkills(context.Background(), []string{"python", "django", "aws", "docker"}, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := m.ClusterSkills(context.Background(), []string{"python", "django", "aws", "docker"}, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("clustering not deterministic: %+v vs %+v", first, second)
	}

	total := 0
	for _, c := range first {
		total += c.Size
		if c.Size != len(c.Skills) {
			t.Fatalf("size mismatch in %+v", c)
		}
	}
	if total != 4 {
		t.Fatalf("clusters lost skills: %d", total)
	}
}

func TestClusterSkills_KCappedBySkillCount(t *testing.T) {
	cat, syn := testCatalog(t)
	emb := stubEmbedder{
		vectors: map[string][]float64{
			"python": {1, 0},
			"aws":    {0, 1},
		},
	}
	m := NewEmbeddingMatcher(emb, cat, syn)

	clusters, err := m.ClusterSkills(context.Background(), []string{"python", "aws"}, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(clusters) > 2 {
		t.Fatalf("more clusters than skills: %d", len(clusters))
	}
}

func TestStrengthScores_QuantityAndDiversity(t *testing.T) {
	cat, syn := testCatalog(t)
	emb := stubEmbedder{
		vectors: map[string][]float64{
			"python": {1, 0, 0},
			"go":     {0.9, 0.1, 0},
			"aws":    {0, 1, 0},
			"docker": {0, 0.9, 0.1},
		},
	}
	m := NewEmbeddingMatcher(emb, cat, syn)

	scores, err := m.StrengthScores(context.Background(), []string{"python", "go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, ok := scores["programming"]
	if !ok {
		t.Fatalf("missing programming score: %v", scores)
	}
	if got <= 0 || got > 100 {
		t.Fatalf("score out of range: %v", got)
	}
	// 2 of 5 skills: quantity part is 28; diversity adds at most 30.
	if got < 28 || got > 58 {
		t.Fatalf("score = %v, want within [28,58]", got)
	}
}

func TestCosine(t *testing.T) {
	if got := cosine([]float64{1, 0}, []float64{1, 0}); got != 1 {
		t.Fatalf("parallel: %v", got)
	}
	if got := cosine([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Fatalf("orthogonal: %v", got)
	}
	if got := cosine(nil, nil); got != 0 {
		t.Fatalf("empty: %v", got)
	}
	if got := cosine([]float64{0, 0}, []float64{1, 1}); got != 0 {
		t.Fatalf("zero magnitude: %v", got)
	}
}
