// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TimeWindow is a milestone window in months since the start of the roadmap
type TimeWindow struct {
	StartMonth int `json:"start_month"`
	EndMonth   int `json:"end_month"`
}

// Milestone is a time-boxed bucket of tasks and skill targets
type Milestone struct {
	Title    string     `json:"title"`
	Window   TimeWindow `json:"window"`
	Tasks    []string   `json:"tasks"`
	SkillIDs []string   `json:"skill_ids,omitempty"`
}

// Roadmap is an ordered, non-empty sequence of milestones with
// non-decreasing windows. TotalMonths is the end of the last non-empty
// milestone window.
type Roadmap struct {
	CurrentRole string      `json:"current_role,omitempty"`
	TargetRole  string      `json:"target_role"`
	Milestones  []Milestone `json:"milestones"`
	TotalMonths int         `json:"total_months"`
}
