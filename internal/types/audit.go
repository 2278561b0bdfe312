// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Detector statuses derived from fixed score thresholds
const (
	StatusPass    = "pass"
	StatusWarning = "warning"
	StatusFail    = "fail"
)

// Bias categories audited by the fairness engine
const (
	BiasGender        = "gender"
	BiasAge           = "age"
	BiasCultural      = "cultural"
	BiasSocioeconomic = "socioeconomic"
)

// CategoryAudit holds one detector's result
type CategoryAudit struct {
	Score   float64  `json:"score"`  // 0-100
	Status  string   `json:"status"` // pass, warning, fail
	Details string   `json:"details"`
	Flags   []string `json:"flags,omitempty"` // Concrete findings that drove the score
}

// AuditResult aggregates the independent bias detectors. Overall is the
// unweighted mean of the detector scores. Recommendations carry at most one
// entry per non-passing category.
type AuditResult struct {
	Categories      map[string]CategoryAudit `json:"categories"`
	Overall         float64                  `json:"overall"` // 0-100
	Recommendations []string                 `json:"recommendations,omitempty"`
}
