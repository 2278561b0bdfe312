// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill importance levels used by RoleProfile requirements
const (
	ImportanceEssential = "essential"
	ImportanceDesirable = "desirable"
)

// RoleProfile represents a target occupation definition loaded from the
// static role catalog. Read-only once loaded.
type RoleProfile struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Skills      []RequiredSkill `json:"skills" validate:"dive"`
	Embedding   []float32       `json:"embedding,omitempty"`
}

// RequiredSkill tags a canonical skill id with its importance for the role
type RequiredSkill struct {
	ID         string `json:"id" validate:"required"`
	Importance string `json:"importance" validate:"oneof=essential desirable"`
}

// EssentialSkills returns the ids of all essential skills, in catalog order.
func (r *RoleProfile) EssentialSkills() []string {
	var ids []string
	for _, s := range r.Skills {
		if s.Importance == ImportanceEssential {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// DesirableSkills returns the ids of all desirable skills, in catalog order.
func (r *RoleProfile) DesirableSkills() []string {
	var ids []string
	for _, s := range r.Skills {
		if s.Importance == ImportanceDesirable {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
