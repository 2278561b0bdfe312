// Package taxonomy maps free-form skill strings to canonical skill identifiers.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Default matching constants. These are starting points, not hidden
// literals; callers may override them via Options.
const (
	DefaultFuzzyThreshold  = 0.85
	DefaultAmbiguityMargin = 0.02
)

// Skill is a canonical taxonomy entry
type Skill struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
}

// Options tunes the fuzzy matching behavior
type Options struct {
	FuzzyThreshold  float64 // Minimum normalized edit similarity for a fuzzy match
	AmbiguityMargin float64 // Candidates within this margin of the top score make the match ambiguous
}

// DefaultOptions returns the documented default matching thresholds.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold:  DefaultFuzzyThreshold,
		AmbiguityMargin: DefaultAmbiguityMargin,
	}
}

// Taxonomy is a static, read-only skill catalog. Safe for concurrent use.
type Taxonomy struct {
	skills  map[string]Skill  // canonical id -> entry
	byName  map[string]string // lowercase id/label -> canonical id
	aliases map[string]string // lowercase alias -> canonical id
	opts    Options
}

// New builds a Taxonomy from canonical skill entries.
func New(skills []Skill, opts Options) (*Taxonomy, error) {
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if opts.AmbiguityMargin <= 0 {
		opts.AmbiguityMargin = DefaultAmbiguityMargin
	}

	t := &Taxonomy{
		skills:  make(map[string]Skill, len(skills)),
		byName:  make(map[string]string, len(skills)*2),
		aliases: make(map[string]string),
		opts:    opts,
	}

	for _, skill := range skills {
		if skill.ID == "" {
			return nil, fmt.Errorf("taxonomy entry with empty id (label %q)", skill.Label)
		}
		if _, exists := t.skills[skill.ID]; exists {
			return nil, fmt.Errorf("duplicate taxonomy id %q", skill.ID)
		}
		t.skills[skill.ID] = skill
		t.byName[strings.ToLower(skill.ID)] = skill.ID
		if skill.Label != "" {
			t.byName[strings.ToLower(skill.Label)] = skill.ID
		}
		for _, alias := range skill.Aliases {
			t.aliases[strings.ToLower(strings.TrimSpace(alias))] = skill.ID
		}
	}

	return t, nil
}

// LoadFile loads a taxonomy from a JSON file containing a list of skill entries.
func LoadFile(path string, opts Options) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	var skills []Skill
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	return New(skills, opts)
}

// Skill returns the canonical entry for an id.
func (t *Taxonomy) Skill(id string) (Skill, bool) {
	skill, ok := t.skills[id]
	return skill, ok
}

// Label returns the display label for a canonical id, falling back to the id itself.
func (t *Taxonomy) Label(id string) string {
	if skill, ok := t.skills[id]; ok && skill.Label != "" {
		return skill.Label
	}
	return id
}

// Describe returns the description text for a canonical id, falling back to the label.
func (t *Taxonomy) Describe(id string) string {
	if skill, ok := t.skills[id]; ok && skill.Description != "" {
		return skill.Description
	}
	return t.Label(id)
}

// Len returns the number of canonical entries.
func (t *Taxonomy) Len() int {
	return len(t.skills)
}
