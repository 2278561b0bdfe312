package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/types"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
}

func testProfile() *types.Profile {
	return &types.Profile{
		Name:    "Sam",
		Summary: "Data analyst moving toward data science roles",
		Experience: []types.Experience{
			{
				Title:       "Data Analyst",
				StartDate:   "2022-06",
				EndDate:     "2026-06",
				Description: "Built reporting pipelines in Python and SQL, automated weekly dashboards and ad-hoc analyses for the sales organization",
			},
		},
		Education:      []types.Education{{Degree: "BSc Computer Science", Year: 2022}},
		Certifications: []string{"AWS Cloud Practitioner"},
	}
}

func testSkills() *types.NormalizedSkills {
	return &types.NormalizedSkills{
		Proficiency: map[string]int{"python": 80, "pandas": 60, "sql": 70},
	}
}

func testRole() *types.RoleProfile {
	return &types.RoleProfile{
		Name:        "Data Scientist",
		Description: "Analyze data and build machine learning models in Python with pandas and SQL",
		Skills: []types.RequiredSkill{
			{ID: "python", Importance: types.ImportanceEssential},
			{ID: "machine_learning", Importance: types.ImportanceEssential},
			{ID: "deep_learning", Importance: types.ImportanceEssential},
			{ID: "sql", Importance: types.ImportanceDesirable},
		},
	}
}

type stubProvider struct {
	vec []float32
	err error
}

func (s stubProvider) Embed(context.Context, string) ([]float32, error) {
	return s.vec, s.err
}

func TestScore_InvalidWeightsRejected(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedNow)

	_, err := engine.Score(context.Background(), testProfile(), testSkills(), testRole(), Weights{Strength: 50, Relevance: 30, Completeness: 30})
	var invalid *InvalidWeightsError
	require.True(t, errors.As(err, &invalid))
	assert.InDelta(t, 110.0, invalid.Sum, 1e-9)
}

func TestScore_WeightSumInvariantAndRange(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedNow)

	breakdown, err := engine.Score(context.Background(), testProfile(), testSkills(), testRole(), DefaultWeights())
	require.NoError(t, err)

	assert.InDelta(t, 100.0, breakdown.WeightSum(), 1e-9)
	assert.GreaterOrEqual(t, breakdown.Composite, 0.0)
	assert.LessOrEqual(t, breakdown.Composite, 100.0)
	assert.Len(t, breakdown.Categories, 3)
}

func TestScore_CompletenessExample(t *testing.T) {
	// Skills {python, pandas, sql} against essential {python,
	// machine_learning, deep_learning}: 1 of 3 present -> 33.3
	engine := NewEngine(nil).WithClock(fixedNow)

	breakdown, err := engine.Score(context.Background(), testProfile(), testSkills(), testRole(), DefaultWeights())
	require.NoError(t, err)

	completeness := breakdown.Categories[types.CategoryCompleteness]
	assert.InDelta(t, 33.3, completeness.Score, 1e-9)
	assert.Contains(t, completeness.Explanation, "1 of 3 essential skills present")
	assert.Contains(t, completeness.Explanation, "machine_learning")
	assert.Contains(t, completeness.Explanation, "deep_learning")
}

func TestScore_VacuousCompleteness(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedNow)
	role := &types.RoleProfile{Name: "Generalist", Description: "anything goes"}

	breakdown, err := engine.Score(context.Background(), testProfile(), testSkills(), role, DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, 100.0, breakdown.Categories[types.CategoryCompleteness].Score)
}

func TestScore_UnrecognizedSkillsSurfacedNotFatal(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedNow)
	skills := testSkills()
	skills.Unrecognized = []string{"underwater basket weaving"}

	breakdown, err := engine.Score(context.Background(), testProfile(), skills, testRole(), DefaultWeights())
	require.NoError(t, err)

	assert.Contains(t, breakdown.Categories[types.CategoryCompleteness].Explanation, "unrecognized: underwater basket weaving")
}

func TestScore_CompositeArithmetic(t *testing.T) {
	// Documented example: (80, 60, 33.3) with weights 40/35/25 -> 61.3
	composite := round1(40.0/100.0*80 + 35.0/100.0*60 + 25.0/100.0*33.3)
	assert.InDelta(t, 61.3, composite, 1e-9)
}

func TestScore_RelevanceUsesEmbedding(t *testing.T) {
	role := testRole()
	role.Embedding = []float32{1, 0, 0}
	engine := NewEngine(stubProvider{vec: []float32{1, 0, 0}}).WithClock(fixedNow)

	breakdown, err := engine.Score(context.Background(), testProfile(), testSkills(), role, DefaultWeights())
	require.NoError(t, err)

	relevance := breakdown.Categories[types.CategoryRelevance]
	assert.InDelta(t, 100.0, relevance.Score, 1e-9)
	assert.Empty(t, breakdown.Warnings)
}

func TestScore_NegativeCosineClampsToZero(t *testing.T) {
	role := testRole()
	role.Embedding = []float32{1, 1, 1}
	engine := NewEngine(stubProvider{vec: []float32{-1, -1, -1}}).WithClock(fixedNow)

	breakdown, err := engine.Score(context.Background(), testProfile(), testSkills(), role, DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, 0.0, breakdown.Categories[types.CategoryRelevance].Score)
}

func TestScore_TimeoutDegradesWithWarning(t *testing.T) {
	role := testRole()
	role.Embedding = []float32{1, 0, 0}
	timeout := &embedding.UpstreamTimeoutError{Operation: "embed", Timeout: time.Second}
	engine := NewEngine(stubProvider{err: timeout}).WithClock(fixedNow)

	breakdown, err := engine.Score(context.Background(), testProfile(), testSkills(), role, DefaultWeights())
	require.NoError(t, err)

	require.Len(t, breakdown.Warnings, 1)
	assert.Contains(t, breakdown.Warnings[0], "degraded to keyword overlap")
	assert.Contains(t, breakdown.Categories[types.CategoryRelevance].Explanation, "degraded mode")
	// Profile text shares tokens with the role description, so the
	// fallback still produces a positive score
	assert.Greater(t, breakdown.Categories[types.CategoryRelevance].Score, 0.0)
}

func TestScore_Deterministic(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedNow)

	first, err := engine.Score(context.Background(), testProfile(), testSkills(), testRole(), DefaultWeights())
	require.NoError(t, err)
	second, err := engine.Score(context.Background(), testProfile(), testSkills(), testRole(), DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeStrength_ExplainsInputs(t *testing.T) {
	score, explanation := computeStrength(testProfile(), testSkills(), fixedNow())

	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
	assert.Contains(t, explanation, "4.0 yrs experience")
	assert.Contains(t, explanation, "3 recognized skills")
	assert.Contains(t, explanation, "bachelor degree")
	assert.Contains(t, explanation, "1 certifications")
}

func TestTotalExperienceYears_OpenEndedRunsToNow(t *testing.T) {
	profile := &types.Profile{
		Experience: []types.Experience{{Title: "Engineer", StartDate: "2024-06"}},
	}
	years := totalExperienceYears(profile, fixedNow())
	assert.InDelta(t, 2.0, years, 0.05)
}

func TestRound1_HalfUp(t *testing.T) {
	assert.Equal(t, 61.3, round1(61.325))
	assert.Equal(t, 33.3, round1(100.0/3.0))
	assert.Equal(t, 0.5, round1(0.45))
}
