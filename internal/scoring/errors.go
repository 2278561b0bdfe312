// Package scoring computes the explainable composite score of a profile
// against a target role.
package scoring

import "fmt"

// InvalidWeightsError indicates the caller-supplied composite weights do
// not sum to 100. This is a configuration error and is surfaced
// immediately rather than silently renormalized.
type InvalidWeightsError struct {
	Sum float64
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("composite weights must sum to 100, got %.2f", e.Sum)
}
