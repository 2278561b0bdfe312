package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/graph"
	"github.com/jonathan/career-compass/internal/logger"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a candidate profile against a target role",
	Long: `Runs the full analysis: skill normalization -> scoring -> fairness audit -> gap analysis -> recommendations -> roadmap.

The report is written to stdout as JSON. Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeProfile    string
	analyzeRole       string
	analyzeTaxonomy   string
	analyzeCatalog    string
	analyzeGraph      string
	analyzeAPIKey     string
	analyzeOutput     string
	analyzeVerbose    bool
	analyzeJSONLog    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to candidate profile JSON file")
	analyzeCommand.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role name from the catalog")
	analyzeCommand.Flags().StringVar(&analyzeTaxonomy, "taxonomy", "", "Path to skill taxonomy JSON")
	analyzeCommand.Flags().StringVar(&analyzeCatalog, "catalog", "", "Path to role catalog JSON")
	analyzeCommand.Flags().StringVar(&analyzeGraph, "graph", "", "Path to knowledge graph feed JSON")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to this file instead of stdout")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed breakdowns")
	analyzeCommand.Flags().BoolVar(&analyzeJSONLog, "json-log", false, "Emit logs as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var; empty disables embedding relevance)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	if analyzeProfile == "" {
		return fmt.Errorf("--profile is required")
	}
	if analyzeRole == "" {
		return fmt.Errorf("--role is required")
	}
	if cfg.Taxonomy == "" || cfg.Catalog == "" || cfg.Graph == "" {
		return fmt.Errorf("--taxonomy, --catalog and --graph must be provided (via flag or config)")
	}

	log, err := logger.New(analyzeJSONLog, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	profile, err := loadProfile(analyzeProfile)
	if err != nil {
		return err
	}

	tax, err := taxonomy.LoadFile(cfg.Taxonomy, taxonomy.Options{
		FuzzyThreshold:  cfg.FuzzyThreshold,
		AmbiguityMargin: cfg.AmbiguityMargin,
	})
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	cat, err := catalog.LoadFile(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}

	store, err := graph.LoadFile(cfg.Graph, cfg.MaxHops)
	if err != nil {
		return fmt.Errorf("failed to load knowledge graph: %w", err)
	}

	log.Info("loaded static data",
		zap.Int("taxonomy_skills", tax.Len()),
		zap.Int("catalog_roles", cat.Len()))

	var provider embedding.Provider
	if cfg.APIKey != "" {
		gemini, err := embedding.NewGeminiProvider(ctx, cfg.APIKey, "")
		if err != nil {
			return fmt.Errorf("failed to create embedding provider: %w", err)
		}
		defer func() { _ = gemini.Close() }()
		provider = embedding.NewBounded(gemini, cfg.EmbedTimeout())
	} else {
		log.Info("no API key configured, relevance uses keyword overlap")
	}

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(os.Stdout)
	}

	eng := engine.New(tax, cat, store, engine.Options{
		Provider:            provider,
		Weights:             cfg.Weights,
		Fairness:            cfg.Fairness,
		PriorCompletionRate: cfg.PriorCompletionRate,
		Printer:             printer,
		Logger:              log,
	})

	report, err := eng.Analyze(ctx, profile, analyzeRole)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return writeReport(report, analyzeOutput)
}

// loadMergedConfig loads the optional config file, applies CLI overrides
// and fills the remaining fields with defaults.
func loadMergedConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// Apply CLI overrides; only override if the flag was explicitly set
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = analyzeTaxonomy
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = analyzeCatalog
	}
	if cmd.Flags().Changed("graph") {
		cfg.Graph = analyzeGraph
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	cfg = cfg.MergeWithDefaults(config.Config{})
	return cfg, nil
}

func loadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := schemas.ValidateProfile(content); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

func writeReport(report *types.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
