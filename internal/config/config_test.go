package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/fairness"
	"github.com/jonathan/career-compass/internal/scoring"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"taxonomy": "data/taxonomy.json",
		"catalog": "data/roles.json",
		"graph": "data/graph.json",
		"weights": {"strength": 50, "relevance": 30, "completeness": 20},
		"max_hops": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data/taxonomy.json", cfg.Taxonomy)
	assert.Equal(t, "data/roles.json", cfg.Catalog)
	assert.Equal(t, "data/graph.json", cfg.Graph)
	assert.Equal(t, scoring.Weights{Strength: 50, Relevance: 30, Completeness: 20}, cfg.Weights)
	assert.Equal(t, 4, cfg.MaxHops)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadWeightSum(t *testing.T) {
	cfg := &Config{
		Weights: scoring.Weights{Strength: 50, Relevance: 30, Completeness: 30},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestValidate_RangeChecks(t *testing.T) {
	assert.Error(t, (&Config{FuzzyThreshold: 1.5}).Validate())
	assert.Error(t, (&Config{AmbiguityMargin: -0.1}).Validate())
	assert.Error(t, (&Config{MaxHops: -1}).Validate())
	assert.Error(t, (&Config{EmbedTimeoutSeconds: -5}).Validate())
	assert.Error(t, (&Config{PriorCompletionRate: 2}).Validate())
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidate_MissingDataFile(t *testing.T) {
	cfg := &Config{Taxonomy: filepath.Join(t.TempDir(), "nope.json")}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "taxonomy file not found")
}

func TestMergeWithDefaults_FillsUnset(t *testing.T) {
	cfg := &Config{Taxonomy: "mine.json"}

	merged := cfg.MergeWithDefaults(Config{Taxonomy: "theirs.json", Catalog: "roles.json"})

	assert.Equal(t, "mine.json", merged.Taxonomy)
	assert.Equal(t, "roles.json", merged.Catalog)
	assert.Equal(t, scoring.DefaultWeights(), merged.Weights)
	assert.Equal(t, fairness.DefaultConfig(), merged.Fairness)
	assert.Equal(t, 0.85, merged.FuzzyThreshold)
	assert.Equal(t, 6, merged.MaxHops)
	assert.Equal(t, 10*time.Second, merged.EmbedTimeout())
}

func TestMergeWithDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := &Config{
		Weights:             scoring.Weights{Strength: 60, Relevance: 20, Completeness: 20},
		EmbedTimeoutSeconds: 3,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 60.0, merged.Weights.Strength)
	assert.Equal(t, 3*time.Second, merged.EmbedTimeout())
}
