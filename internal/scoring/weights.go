package scoring

import "math"

// Default composite weights
const (
	DefaultStrengthWeight     = 40.0
	DefaultRelevanceWeight    = 35.0
	DefaultCompletenessWeight = 25.0
)

// weightSumTolerance absorbs floating-point noise in caller-supplied weights
const weightSumTolerance = 1e-6

// Weights configures the composite blend of the three score categories.
// Values are percentages and must sum to 100.
type Weights struct {
	Strength     float64 `json:"strength"`
	Relevance    float64 `json:"relevance"`
	Completeness float64 `json:"completeness"`
}

// DefaultWeights returns the documented default blend.
func DefaultWeights() Weights {
	return Weights{
		Strength:     DefaultStrengthWeight,
		Relevance:    DefaultRelevanceWeight,
		Completeness: DefaultCompletenessWeight,
	}
}

// Validate checks the weight-sum invariant.
func (w Weights) Validate() error {
	sum := w.Strength + w.Relevance + w.Completeness
	if math.Abs(sum-100.0) > weightSumTolerance {
		return &InvalidWeightsError{Sum: sum}
	}
	if w.Strength < 0 || w.Relevance < 0 || w.Completeness < 0 {
		return &InvalidWeightsError{Sum: sum}
	}
	return nil
}

// round1 applies the engine-wide rounding policy: round-half-up to one
// decimal place. Applied once per published score so explanations and
// numbers always agree.
func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// clamp01 restricts a ratio to [0,1]
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
