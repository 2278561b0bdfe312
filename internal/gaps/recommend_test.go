package gaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/graph"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

func recommendStore(t *testing.T) *graph.Store {
	t.Helper()
	nodes := []graph.Node{
		{ID: "machine_learning", Type: graph.NodeSkill, Label: "Machine Learning"},
		{ID: "deep_learning", Type: graph.NodeSkill, Label: "Deep Learning"},
		{ID: "c_intro_ml", Type: graph.NodeCourse, Label: "Intro to Machine Learning",
			Attributes: graph.Attributes{Provider: "Coursera", DurationHours: 20, Level: "beginner", Description: "machine learning models and evaluation"}},
		{ID: "c_dl_spec", Type: graph.NodeCourse, Label: "Deep Learning Specialization",
			Attributes: graph.Attributes{Provider: "Coursera", DurationHours: 40, Level: "intermediate", Description: "neural networks and deep learning"}},
		{ID: "p_churn", Type: graph.NodeProject, Label: "Churn Prediction",
			Attributes: graph.Attributes{Difficulty: 3, EstimatedHours: 12}},
		{ID: "p_end_to_end", Type: graph.NodeProject, Label: "End-to-End ML Pipeline",
			Attributes: graph.Attributes{Difficulty: 4, EstimatedHours: 30}},
	}
	edges := []graph.Edge{
		{From: "c_intro_ml", To: "machine_learning", Relationship: graph.RelTeaches},
		{From: "c_dl_spec", To: "deep_learning", Relationship: graph.RelTeaches},
		{From: "p_churn", To: "machine_learning", Relationship: graph.RelTeaches},
		{From: "p_end_to_end", To: "machine_learning", Relationship: graph.RelTeaches},
		{From: "p_end_to_end", To: "deep_learning", Relationship: graph.RelTeaches},
	}
	store, err := graph.NewStore(nodes, edges, 0)
	require.NoError(t, err)
	return store
}

func recommendTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.New([]taxonomy.Skill{
		{ID: "machine_learning", Label: "Machine Learning", Description: "machine learning models training evaluation"},
		{ID: "deep_learning", Label: "Deep Learning", Description: "neural networks deep learning"},
	}, taxonomy.DefaultOptions())
	require.NoError(t, err)
	return tax
}

func mlGaps() []types.SkillGap {
	return []types.SkillGap{
		{SkillID: "machine_learning", Label: "Machine Learning", Priority: types.PriorityHigh, TargetLevel: 70, Centrality: 1},
		{SkillID: "deep_learning", Label: "Deep Learning", Priority: types.PriorityHigh, TargetLevel: 70},
	}
}

func TestRecommend_ProjectRanking(t *testing.T) {
	ranker := NewRanker(recommendStore(t), recommendTaxonomy(t), nil, 0)

	recs := ranker.Recommend(Features{PriorCompletionRate: 0.8}, mlGaps())

	require.Len(t, recs.MicroProjects, 2)
	// p_end_to_end teaches both gap skills; the 2x match count dominates
	// its lower per-item engagement
	assert.Equal(t, "p_end_to_end", recs.MicroProjects[0].ProjectID)
	assert.ElementsMatch(t, []string{"machine_learning", "deep_learning"}, recs.MicroProjects[0].MatchedSkills)
	assert.Equal(t, "p_churn", recs.MicroProjects[1].ProjectID)
	for _, project := range recs.MicroProjects {
		assert.GreaterOrEqual(t, project.Engagement, 0.0)
		assert.LessOrEqual(t, project.Engagement, 100.0)
	}
}

func TestRecommend_CourseRanking(t *testing.T) {
	ranker := NewRanker(recommendStore(t), recommendTaxonomy(t), nil, 0)

	recs := ranker.Recommend(Features{}, mlGaps())

	require.Len(t, recs.Courses, 2)
	for _, course := range recs.Courses {
		assert.NotEmpty(t, course.MatchedSkills)
		assert.Greater(t, course.Score, 0.0)
		assert.GreaterOrEqual(t, course.SemanticScore, 0.0)
	}
}

func TestRecommend_NextStepsReferenceTopResources(t *testing.T) {
	ranker := NewRanker(recommendStore(t), recommendTaxonomy(t), nil, 0)

	recs := ranker.Recommend(Features{}, mlGaps())

	require.Len(t, recs.NextSteps, 2)
	assert.Contains(t, recs.NextSteps[0], "Machine Learning")
	assert.Contains(t, recs.NextSteps[0], "high priority")
	assert.Contains(t, recs.NextSteps[1], "Deep Learning")
}

func TestRecommend_TopStepsBounded(t *testing.T) {
	ranker := NewRanker(recommendStore(t), recommendTaxonomy(t), nil, 1)

	recs := ranker.Recommend(Features{}, mlGaps())
	assert.Len(t, recs.NextSteps, 1)
}

func TestRecommend_NoGaps(t *testing.T) {
	ranker := NewRanker(recommendStore(t), recommendTaxonomy(t), nil, 0)

	recs := ranker.Recommend(Features{}, nil)
	assert.Empty(t, recs.MicroProjects)
	assert.Empty(t, recs.Courses)
	assert.Empty(t, recs.NextSteps)
}

func TestHeuristicPredictor_Monotone(t *testing.T) {
	predictor := HeuristicPredictor{}

	easy := predictor.Predict(Features{PriorCompletionRate: 0.8}, 1)
	hard := predictor.Predict(Features{PriorCompletionRate: 0.8}, 5)
	assert.Greater(t, easy, hard)

	diligent := predictor.Predict(Features{PriorCompletionRate: 0.9}, 3)
	lapsed := predictor.Predict(Features{PriorCompletionRate: 0.4}, 3)
	assert.Greater(t, diligent, lapsed)

	boosted := predictor.Predict(Features{PriorCompletionRate: 0.8, GapPriority: types.PriorityHigh}, 3)
	plain := predictor.Predict(Features{PriorCompletionRate: 0.8}, 3)
	assert.Greater(t, boosted, plain)
}

func TestHeuristicPredictor_Bounds(t *testing.T) {
	predictor := HeuristicPredictor{}

	for difficulty := 0; difficulty <= 6; difficulty++ {
		score := predictor.Predict(Features{PriorCompletionRate: 1.0, GapPriority: types.PriorityHigh}, difficulty)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestHeuristicPredictor_Pure(t *testing.T) {
	predictor := HeuristicPredictor{}
	f := Features{PriorCompletionRate: 0.65, GapPriority: types.PriorityMedium}

	first := predictor.Predict(f, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, predictor.Predict(f, 3))
	}
}
