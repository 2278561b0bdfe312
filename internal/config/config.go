// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/career-compass/internal/fairness"
	"github.com/jonathan/career-compass/internal/graph"
	"github.com/jonathan/career-compass/internal/scoring"
	"github.com/jonathan/career-compass/internal/taxonomy"
)

// DefaultEmbedTimeout bounds a single embedding call
const DefaultEmbedTimeout = 10 * time.Second

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Taxonomy string `json:"taxonomy,omitempty"` // Path to skill taxonomy JSON
	Catalog  string `json:"catalog,omitempty"`  // Path to role catalog JSON
	Graph    string `json:"graph,omitempty"`    // Path to knowledge graph feed JSON

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key; empty disables embeddings
	Verbose bool   `json:"verbose,omitempty"` // Print detailed breakdowns

	// Tunables. Zero values mean "use the default".
	Weights             scoring.Weights `json:"weights,omitempty"`
	Fairness            fairness.Config `json:"fairness,omitempty"`
	FuzzyThreshold      float64         `json:"fuzzy_threshold,omitempty"`       // Taxonomy fuzzy match cutoff (0.0-1.0)
	AmbiguityMargin     float64         `json:"ambiguity_margin,omitempty"`      // Taxonomy ambiguity margin (0.0-1.0)
	MaxHops             int             `json:"max_hops,omitempty"`              // Graph traversal hop bound
	EmbedTimeoutSeconds int             `json:"embed_timeout_seconds,omitempty"` // Per-call embedding deadline
	PriorCompletionRate float64         `json:"prior_completion_rate,omitempty"` // Learner history signal (0.0-1.0)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required paths since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0.0 and 1.0")
	}
	if c.AmbiguityMargin < 0 || c.AmbiguityMargin > 1 {
		return fmt.Errorf("config error: 'ambiguity_margin' must be between 0.0 and 1.0")
	}
	if c.MaxHops < 0 {
		return fmt.Errorf("config error: 'max_hops' must be non-negative")
	}
	if c.EmbedTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'embed_timeout_seconds' must be non-negative")
	}
	if c.PriorCompletionRate < 0 || c.PriorCompletionRate > 1 {
		return fmt.Errorf("config error: 'prior_completion_rate' must be between 0.0 and 1.0")
	}

	// A partially specified weight blend is the common editing mistake, so
	// check the sum here rather than waiting for scoring to reject it
	if c.Weights != (scoring.Weights{}) {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	for name, path := range map[string]string{
		"taxonomy": c.Taxonomy,
		"catalog":  c.Catalog,
		"graph":    c.Graph,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Graph == "" {
		result.Graph = defaults.Graph
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Struct fields: all-zero means unset
	if result.Weights == (scoring.Weights{}) {
		result.Weights = defaults.Weights
		if result.Weights == (scoring.Weights{}) {
			result.Weights = scoring.DefaultWeights()
		}
	}
	if result.Fairness == (fairness.Config{}) {
		result.Fairness = defaults.Fairness
		if result.Fairness == (fairness.Config{}) {
			result.Fairness = fairness.DefaultConfig()
		}
	}

	// Numeric fields: use default if zero
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
		if result.FuzzyThreshold == 0 {
			result.FuzzyThreshold = taxonomy.DefaultFuzzyThreshold
		}
	}
	if result.AmbiguityMargin == 0 {
		result.AmbiguityMargin = defaults.AmbiguityMargin
		if result.AmbiguityMargin == 0 {
			result.AmbiguityMargin = taxonomy.DefaultAmbiguityMargin
		}
	}
	if result.MaxHops == 0 {
		result.MaxHops = defaults.MaxHops
		if result.MaxHops == 0 {
			result.MaxHops = graph.DefaultMaxHops
		}
	}
	if result.EmbedTimeoutSeconds == 0 {
		result.EmbedTimeoutSeconds = defaults.EmbedTimeoutSeconds
		if result.EmbedTimeoutSeconds == 0 {
			result.EmbedTimeoutSeconds = int(DefaultEmbedTimeout / time.Second)
		}
	}
	if result.PriorCompletionRate == 0 {
		result.PriorCompletionRate = defaults.PriorCompletionRate
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// EmbedTimeout returns the per-call embedding deadline as a duration
func (c *Config) EmbedTimeout() time.Duration {
	if c.EmbedTimeoutSeconds <= 0 {
		return DefaultEmbedTimeout
	}
	return time.Duration(c.EmbedTimeoutSeconds) * time.Second
}
