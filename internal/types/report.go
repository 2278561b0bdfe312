// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Report is the full output of one analysis request, ready for
// serialization by the caller's API layer.
type Report struct {
	ID                 string          `json:"id"`
	GeneratedAt        time.Time       `json:"generated_at"`
	RoleName           string          `json:"role_name"`
	Breakdown          ScoreBreakdown  `json:"breakdown"`
	Audit              AuditResult     `json:"audit"`
	Gaps               []SkillGap      `json:"gaps"`
	Recommendations    Recommendations `json:"recommendations"`
	Roadmap            Roadmap         `json:"roadmap"`
	UnrecognizedSkills []string        `json:"unrecognized_skills,omitempty"`
}
