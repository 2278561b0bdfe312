package gaps

import "github.com/jonathan/career-compass/internal/types"

// Features are the candidate-side inputs to engagement prediction
type Features struct {
	PriorCompletionRate float64 // Historical completion rate in [0,1]; DefaultCompletionRate when unknown
	GapPriority         string  // Priority of the gap the item addresses
}

// DefaultCompletionRate is assumed when no history is available
const DefaultCompletionRate = 0.7

// Predictor estimates how likely a candidate is to complete an item of a
// given difficulty. Implementations must be pure: same inputs, same score,
// no hidden state mutated per call. A trained model can be substituted as
// long as it honors that contract.
type Predictor interface {
	Predict(f Features, difficulty int) float64 // Score in [0,100]
}

// completionByDifficulty is the historical completion-rate table (percent)
// by item difficulty 1-5.
var completionByDifficulty = map[int]float64{
	1: 90.0,
	2: 80.0,
	3: 65.0,
	4: 50.0,
	5: 35.0,
}

// Blend and boost constants for the heuristic predictor
const (
	difficultyBlend     = 0.6
	historyBlend        = 0.4
	highPriorityBoost   = 10.0
	mediumPriorityBoost = 5.0
)

// HeuristicPredictor is the default Predictor: a monotone blend of the
// completion-rate-by-difficulty table and the candidate's own history,
// with a modest boost for higher-priority gaps (modeling motivation).
type HeuristicPredictor struct{}

// Predict implements Predictor.
func (HeuristicPredictor) Predict(f Features, difficulty int) float64 {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}

	prior := f.PriorCompletionRate
	if prior <= 0 || prior > 1 {
		prior = DefaultCompletionRate
	}

	score := difficultyBlend*completionByDifficulty[difficulty] + historyBlend*prior*100.0

	switch f.GapPriority {
	case types.PriorityHigh:
		score += highPriorityBoost
	case types.PriorityMedium:
		score += mediumPriorityBoost
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
