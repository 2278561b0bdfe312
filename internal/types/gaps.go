// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Gap priorities, highest first
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SkillGap represents a single missing or underdeveloped skill relative to
// a target role. TargetLevel is always >= CurrentLevel.
type SkillGap struct {
	SkillID      string `json:"skill_id"`
	Label        string `json:"label,omitempty"`
	Priority     string `json:"priority"`      // high, medium, low
	CurrentLevel int    `json:"current_level"` // 0-100
	TargetLevel  int    `json:"target_level"`  // 0-100
	Centrality   int    `json:"centrality"`    // Number of required skills this one is a prerequisite for
}

// RankedProject is a micro-project recommendation with its ranking inputs
type RankedProject struct {
	ProjectID      string   `json:"project_id"`
	Label          string   `json:"label"`
	Difficulty     int      `json:"difficulty"` // 1-5
	EstimatedHours int      `json:"estimated_hours,omitempty"`
	MatchedSkills  []string `json:"matched_skills"`
	Engagement     float64  `json:"engagement"` // 0-100 predicted engagement
	Score          float64  `json:"score"`
}

// RankedCourse is a course recommendation with its ranking inputs
type RankedCourse struct {
	CourseID      string   `json:"course_id"`
	Label         string   `json:"label"`
	Provider      string   `json:"provider,omitempty"`
	DurationHours int      `json:"duration_hours,omitempty"`
	Level         string   `json:"level,omitempty"`
	MatchedSkills []string `json:"matched_skills"`
	SkillOverlap  float64  `json:"skill_overlap"`  // 0-1
	SemanticScore float64  `json:"semantic_score"` // 0-1
	Score         float64  `json:"score"`
}

// Recommendations bundles the outputs of the gap and recommendation engine
type Recommendations struct {
	MicroProjects []RankedProject `json:"micro_projects"`
	Courses       []RankedCourse  `json:"courses"`
	NextSteps     []string        `json:"next_steps"`
}
