// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Score category names used as ScoreBreakdown keys
const (
	CategoryStrength     = "strength"
	CategoryRelevance    = "relevance"
	CategoryCompleteness = "completeness"
)

// CategoryScore holds one scored category with its weight and a generated
// explanation derived from the same inputs as the number.
type CategoryScore struct {
	Score       float64 `json:"score"`  // 0-100
	Weight      float64 `json:"weight"` // 0-100; weights across a breakdown sum to 100
	Explanation string  `json:"explanation"`
}

// ScoreBreakdown maps category names to their scores and carries the
// weighted composite. Warnings record degraded computations (e.g. an
// embedding timeout) without hiding them.
type ScoreBreakdown struct {
	Categories map[string]CategoryScore `json:"categories"`
	Composite  float64                  `json:"composite"` // 0-100
	Warnings   []string                 `json:"warnings,omitempty"`
}

// WeightSum returns the sum of declared category weights.
func (b *ScoreBreakdown) WeightSum() float64 {
	total := 0.0
	for _, c := range b.Categories {
		total += c.Weight
	}
	return total
}
