// Package fairness audits a profile for bias signals across independent
// detectors and aggregates them into a fairness score.
package fairness

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/types"
)

// Status thresholds are a fixed policy, not learned:
// fail below ThresholdFail, warning below ThresholdPass, pass otherwise.
const (
	ThresholdFail = 60.0
	ThresholdPass = 85.0
)

// Config tunes the detector penalty tables. Defaults are documented
// starting points, not hidden literals.
type Config struct {
	GenderPenalty     float64 `json:"gender_penalty"`      // Per distinct gendered term
	AgePenalty        float64 `json:"age_penalty"`         // Per age signal
	CulturalPenalty   float64 `json:"cultural_penalty"`    // Per non-inclusive idiom
	GradLookbackYears int     `json:"grad_lookback_years"` // Graduation years older than this are flagged
}

// DefaultConfig returns the documented default penalty table.
func DefaultConfig() Config {
	return Config{
		GenderPenalty:     15.0,
		AgePenalty:        20.0,
		CulturalPenalty:   15.0,
		GradLookbackYears: 25,
	}
}

// Engine runs the fairness audit. Stateless per call; safe for concurrent use.
type Engine struct {
	cfg Config
	now func() time.Time
}

// NewEngine creates a fairness engine with the given penalty configuration.
func NewEngine(cfg Config) *Engine {
	if cfg.GenderPenalty <= 0 {
		cfg.GenderPenalty = DefaultConfig().GenderPenalty
	}
	if cfg.AgePenalty <= 0 {
		cfg.AgePenalty = DefaultConfig().AgePenalty
	}
	if cfg.CulturalPenalty <= 0 {
		cfg.CulturalPenalty = DefaultConfig().CulturalPenalty
	}
	if cfg.GradLookbackYears <= 0 {
		cfg.GradLookbackYears = DefaultConfig().GradLookbackYears
	}
	return &Engine{cfg: cfg, now: time.Now}
}

// WithClock overrides the time source used for the graduation lookback.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// auditOrder fixes the category iteration order for deterministic output
var auditOrder = []string{types.BiasGender, types.BiasAge, types.BiasCultural, types.BiasSocioeconomic}

// Audit runs the four independent detectors and aggregates their results.
// The overall score is the unweighted mean of the detector scores. One
// recommendation is generated per non-passing category, never more.
func (e *Engine) Audit(ctx context.Context, profile *types.Profile) (*types.AuditResult, error) {
	detectors := map[string]func(*types.Profile) types.CategoryAudit{
		types.BiasGender:        e.detectGender,
		types.BiasAge:           e.detectAge,
		types.BiasCultural:      e.detectCultural,
		types.BiasSocioeconomic: e.detectSocioeconomic,
	}

	results := make(map[string]types.CategoryAudit, len(detectors))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for _, category := range auditOrder {
		category := category
		detect := detectors[category]
		g.Go(func() error {
			result := detect(profile)
			mu.Lock()
			results[category] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0.0
	for _, result := range results {
		total += result.Score
	}
	overall := round1(total / float64(len(results)))

	audit := &types.AuditResult{
		Categories: results,
		Overall:    overall,
	}
	for _, category := range auditOrder {
		if rec := recommendation(category, results[category]); rec != "" {
			audit.Recommendations = append(audit.Recommendations, rec)
		}
	}
	return audit, nil
}

// recommendation renders one templated recommendation for a non-passing
// category, parameterized by the concrete flags that were found.
func recommendation(category string, result types.CategoryAudit) string {
	if result.Status == types.StatusPass {
		return ""
	}
	flags := strings.Join(result.Flags, ", ")
	switch category {
	case types.BiasGender:
		return fmt.Sprintf("Replace gendered language (%s) with neutral wording", flags)
	case types.BiasAge:
		return fmt.Sprintf("Remove age signals (%s); recent work speaks for itself", flags)
	case types.BiasCultural:
		return fmt.Sprintf("Rephrase non-inclusive idioms (%s) in plain terms", flags)
	case types.BiasSocioeconomic:
		return fmt.Sprintf("Lead with skills and outcomes instead of prestige markers (%s)", flags)
	default:
		return ""
	}
}

// round1 is the engine-wide rounding policy: round-half-up to one decimal.
func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
