// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NormalizedSkills is the taxonomy-resolved view of a profile's skill
// claims. Unrecognized raw names are carried along so downstream
// explanations can surface them instead of silently dropping them.
type NormalizedSkills struct {
	Proficiency  map[string]int `json:"proficiency"` // canonical id -> claimed proficiency, 0 = unspecified
	Unrecognized []string       `json:"unrecognized,omitempty"`
}

// Has reports whether the canonical skill id is present in the profile.
func (n *NormalizedSkills) Has(id string) bool {
	if n == nil {
		return false
	}
	_, ok := n.Proficiency[id]
	return ok
}

// Level returns the claimed proficiency for a canonical id, 0 when
// unspecified or absent.
func (n *NormalizedSkills) Level(id string) int {
	if n == nil {
		return 0
	}
	return n.Proficiency[id]
}
