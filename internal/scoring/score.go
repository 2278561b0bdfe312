// Package scoring computes the explainable composite score of a profile
// against a target role.
package scoring

import (
	"context"
	"time"

	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/types"
)

// Engine computes ScoreBreakdowns. Stateless with respect to caller data;
// safe for concurrent use.
type Engine struct {
	provider embedding.Provider // nil means keyword-overlap relevance only
	now      func() time.Time
}

// NewEngine creates a scoring engine. provider may be nil, in which case
// relevance always uses the keyword-overlap heuristic.
func NewEngine(provider embedding.Provider) *Engine {
	return &Engine{provider: provider, now: time.Now}
}

// WithClock overrides the time source, for reproducible scoring of
// open-ended experience entries.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Score computes the Strength, Relevance and Completeness categories and
// their weighted composite. Deterministic for fixed inputs, taxonomy and
// embeddings: no sampling anywhere. Weights failing the sum-to-100
// invariant abort the call with InvalidWeightsError.
func (e *Engine) Score(ctx context.Context, profile *types.Profile, skills *types.NormalizedSkills, role *types.RoleProfile, weights Weights) (*types.ScoreBreakdown, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	strength, strengthWhy := computeStrength(profile, skills, e.now())
	relevance, relevanceWhy, warning := e.computeRelevance(ctx, profile, role)
	completeness, completenessWhy := computeCompleteness(skills, role)

	composite := round1(weights.Strength/100.0*strength +
		weights.Relevance/100.0*relevance +
		weights.Completeness/100.0*completeness)

	breakdown := &types.ScoreBreakdown{
		Categories: map[string]types.CategoryScore{
			types.CategoryStrength:     {Score: strength, Weight: weights.Strength, Explanation: strengthWhy},
			types.CategoryRelevance:    {Score: relevance, Weight: weights.Relevance, Explanation: relevanceWhy},
			types.CategoryCompleteness: {Score: completeness, Weight: weights.Completeness, Explanation: completenessWhy},
		},
		Composite: composite,
	}
	if warning != "" {
		breakdown.Warnings = append(breakdown.Warnings, warning)
	}
	return breakdown, nil
}
