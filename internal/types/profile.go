// Package types provides type definitions for structured data used throughout the career-compass engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Profile represents a normalized candidate record produced by the external
// document parser. It is owned by the caller for the duration of one request
// and is never mutated by the engine.
type Profile struct {
	Name           string       `json:"name,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Experience     []Experience `json:"experience,omitempty"`
	Education      []Education  `json:"education,omitempty"`
	Skills         []SkillClaim `json:"skills,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
}

// Experience represents a single work-history entry
type Experience struct {
	Title        string `json:"title"`
	Organization string `json:"organization,omitempty"`
	StartDate    string `json:"start_date,omitempty"` // YYYY-MM
	EndDate      string `json:"end_date,omitempty"`   // YYYY-MM, empty means present
	Description  string `json:"description,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"` // Graduation year
}

// SkillClaim is a skill as stated by the candidate, before taxonomy
// normalization. Proficiency is optional; zero means unspecified.
type SkillClaim struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency,omitempty"` // 0-100
}

// FreeText concatenates all free-form text fields of the profile.
// Used by the fairness detectors and by relevance embedding.
func (p *Profile) FreeText() string {
	var sb strings.Builder
	if p.Summary != "" {
		sb.WriteString(p.Summary)
		sb.WriteString("\n")
	}
	for _, exp := range p.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Organization)
		sb.WriteString("\n")
		if exp.Description != "" {
			sb.WriteString(exp.Description)
			sb.WriteString("\n")
		}
	}
	for _, edu := range p.Education {
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.Institution)
		sb.WriteString("\n")
	}
	for _, skill := range p.Skills {
		sb.WriteString(skill.Name)
		sb.WriteString(" ")
	}
	for _, cert := range p.Certifications {
		sb.WriteString(cert)
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
