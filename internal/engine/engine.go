// Package engine provides the high-level orchestration for one analysis
// request, from raw profile to assembled report.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/fairness"
	"github.com/jonathan/career-compass/internal/gaps"
	"github.com/jonathan/career-compass/internal/graph"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/scoring"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// Options holds the tunables for an Engine. Zero values select the
// documented defaults.
type Options struct {
	Provider            embedding.Provider // nil disables embedding relevance
	Weights             scoring.Weights
	Fairness            fairness.Config
	PriorCompletionRate float64
	TopSteps            int
	Printer             *observability.Printer // nil disables verbose output
	Logger              *zap.Logger            // nil means no logging
}

// Engine wires the taxonomy, role catalog, knowledge graph and the
// per-concern engines behind a single Analyze call. Safe for concurrent
// use; all mutable state is per-request.
type Engine struct {
	tax     *taxonomy.Taxonomy
	catalog *catalog.Catalog
	store   *graph.Store
	scorer  *scoring.Engine
	auditor *fairness.Engine
	ranker  *gaps.Ranker
	weights scoring.Weights
	prior   float64
	printer *observability.Printer
	log     *zap.Logger
	now     func() time.Time
}

// New creates an analysis engine over the given static data.
func New(tax *taxonomy.Taxonomy, cat *catalog.Catalog, store *graph.Store, opts Options) *Engine {
	weights := opts.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}
	cfg := opts.Fairness
	if cfg == (fairness.Config{}) {
		cfg = fairness.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		tax:     tax,
		catalog: cat,
		store:   store,
		scorer:  scoring.NewEngine(opts.Provider),
		auditor: fairness.NewEngine(cfg),
		ranker:  gaps.NewRanker(store, tax, nil, opts.TopSteps),
		weights: weights,
		prior:   opts.PriorCompletionRate,
		printer: opts.Printer,
		log:     log,
		now:     time.Now,
	}
}

// WithClock overrides the time source for the engine and its sub-engines,
// for reproducible reports.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	e.scorer.WithClock(now)
	e.auditor.WithClock(now)
	return e
}

// Analyze runs the full analysis of a profile against a catalog role:
// skill normalization, scoring, fairness audit, gap analysis with
// recommendations, and the learning roadmap. Scoring, audit and the gap
// branch run concurrently; the input profile is never mutated.
func (e *Engine) Analyze(ctx context.Context, profile *types.Profile, roleName string) (*types.Report, error) {
	role, err := e.catalog.Role(roleName)
	if err != nil {
		return nil, err
	}

	skills, unrecognized := e.normalizeSkills(profile)
	e.log.Info("normalized profile skills",
		zap.Int("recognized", len(skills.Proficiency)),
		zap.Int("unrecognized", len(unrecognized)))

	var (
		breakdown *types.ScoreBreakdown
		audit     *types.AuditResult
		gapList   []types.SkillGap
		recs      *types.Recommendations
		plan      *types.Roadmap
		mu        sync.Mutex
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := e.scorer.Score(gCtx, profile, skills, role, e.weights)
		if err != nil {
			return err
		}
		mu.Lock()
		breakdown = result
		mu.Unlock()
		e.log.Info("scored profile", zap.Float64("composite", result.Composite))
		return nil
	})

	g.Go(func() error {
		result, err := e.auditor.Audit(gCtx, profile)
		if err != nil {
			return err
		}
		mu.Lock()
		audit = result
		mu.Unlock()
		e.log.Info("audited profile", zap.Float64("overall", result.Overall))
		return nil
	})

	g.Go(func() error {
		found := gaps.Analyze(skills, role, e.store)
		ranked := e.ranker.Recommend(gaps.Features{PriorCompletionRate: e.prior}, found)
		built, err := roadmap.Build("", role.Name, found, e.store)
		if err != nil {
			return err
		}
		mu.Lock()
		gapList = found
		recs = ranked
		plan = built
		mu.Unlock()
		e.log.Info("analyzed skill gaps",
			zap.Int("gaps", len(found)),
			zap.Int("milestones", len(built.Milestones)))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if e.printer != nil {
		e.printer.PrintBreakdown(breakdown)
		e.printer.PrintAudit(audit)
		e.printer.PrintGaps(gapList)
		e.printer.PrintRecommendations(recs)
		e.printer.PrintRoadmap(plan)
	}

	return &types.Report{
		ID:                 uuid.NewString(),
		GeneratedAt:        e.now(),
		RoleName:           role.Name,
		Breakdown:          *breakdown,
		Audit:              *audit,
		Gaps:               gapList,
		Recommendations:    *recs,
		Roadmap:            *plan,
		UnrecognizedSkills: unrecognized,
	}, nil
}

// normalizeSkills maps the profile's claimed skills onto canonical
// taxonomy ids. Names that cannot be matched, including ambiguous fuzzy
// matches, are reported verbatim rather than guessed. Duplicate claims
// keep the highest stated proficiency.
func (e *Engine) normalizeSkills(profile *types.Profile) (*types.NormalizedSkills, []string) {
	skills := &types.NormalizedSkills{Proficiency: make(map[string]int, len(profile.Skills))}
	var unrecognized []string

	for _, claim := range profile.Skills {
		id, err := e.tax.Normalize(claim.Name)
		if err != nil {
			var notFound *taxonomy.NotFoundError
			if errors.As(err, &notFound) && len(notFound.Candidates) > 0 {
				e.log.Debug("ambiguous skill name",
					zap.String("raw", claim.Name),
					zap.Strings("candidates", notFound.Candidates))
			}
			unrecognized = append(unrecognized, claim.Name)
			continue
		}
		if current, ok := skills.Proficiency[id]; !ok || claim.Proficiency > current {
			skills.Proficiency[id] = claim.Proficiency
		}
	}

	skills.Unrecognized = unrecognized
	return skills, unrecognized
}
