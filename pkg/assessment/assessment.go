// Package assessment is the orchestrator: it composes catalog loading,
// applicability matching, scoring, risk classification, module derivation,
// and gap analysis into a single assessment run over one operator profile.
package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/crossref"
	"github.com/Astrea-Labs/orbitreg/pkg/gaps"
	"github.com/Astrea-Labs/orbitreg/pkg/match"
	"github.com/Astrea-Labs/orbitreg/pkg/modules"
	"github.com/Astrea-Labs/orbitreg/pkg/observability"
	"github.com/Astrea-Labs/orbitreg/pkg/profile"
	"github.com/Astrea-Labs/orbitreg/pkg/risk"
	"github.com/Astrea-Labs/orbitreg/pkg/scoring"
)

// Result is the complete output of one assessment run.
type Result struct {
	ID               string                   `json:"id"`
	Framework        catalog.Framework        `json:"framework"`
	CatalogVersion   string                   `json:"catalog_version"`
	CatalogHash      string                   `json:"catalog_hash"`
	GeneratedAt      time.Time                `json:"generated_at"`
	Profile          *profile.OperatorProfile `json:"profile"`
	ApplicableIDs    []string                 `json:"applicable_ids"`
	ApplicableCount  int                      `json:"applicable_count"`
	Score            scoring.ComplianceScore  `json:"score"`
	Summary          scoring.Summary          `json:"summary"`
	RiskLevel        risk.Level               `json:"risk_level"`
	Modules          []modules.ModuleStatus   `json:"modules,omitempty"`
	Gaps             []gaps.Result            `json:"gaps"`
	CrossReferences  []string                 `json:"cross_references,omitempty"`
	Recommendations  []string                 `json:"recommendations,omitempty"`
	RequiredAgencies []string                 `json:"required_agencies,omitempty"`
	RequiredLicenses []string                 `json:"required_licenses,omitempty"`
}

// maxRecommendations caps the summary recommendation list; the full detail
// stays in Gaps.
const maxRecommendations = 5

// Engine runs assessments. Safe for concurrent use: the catalog registry
// and CEL program cache behind the matcher are both read-mostly and locked.
type Engine struct {
	matcher *match.Matcher
	obs     *observability.Provider
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithObservability attaches an OpenTelemetry provider.
func WithObservability(p *observability.Provider) Option {
	return func(e *Engine) { e.obs = p }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource overrides result ID generation, for tests.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// NewEngine builds an assessment engine. The only failure mode is an
// invalid CEL environment, which is a programming error rather than bad
// input.
func NewEngine(opts ...Option) (*Engine, error) {
	matcher, err := match.NewMatcher()
	if err != nil {
		return nil, fmt.Errorf("init matcher: %w", err)
	}
	e := &Engine{
		matcher: matcher,
		logger:  slog.Default().With("component", "assessment"),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// PerformAssessment runs the full pipeline for one framework: match the
// catalog against the profile, score the supplied assessment state,
// classify risk, derive module statuses (EU only), and produce the gap
// analysis. Assessment entries whose requirement ID is not in the
// applicable set are ignored. It errors only on unknown frameworks; a
// well-formed profile never fails.
func (e *Engine) PerformAssessment(ctx context.Context, fw catalog.Framework, p *profile.OperatorProfile, assessments []scoring.RequirementAssessment) (_ *Result, err error) {
	if e.obs != nil {
		var done func(error)
		ctx, done = e.obs.TrackAssessment(ctx, string(fw))
		defer func() { done(err) }()
	}

	cat, err := catalog.Load(fw)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	applicable := e.matcher.Match(p, cat)

	score := scoring.Score(applicable, assessments)
	level := risk.Classify(score, applicable, assessments)
	gapList := gaps.Analyze(applicable, assessments)

	res := &Result{
		ID:              e.newID(),
		Framework:       fw,
		CatalogVersion:  cat.Version,
		GeneratedAt:     e.now().UTC(),
		Profile:         p,
		ApplicableCount: len(applicable),
		Score:           score,
		Summary:         scoring.Summarize(applicable, assessments),
		RiskLevel:       level,
		Gaps:            gapList,
		CrossReferences: crossref.Collect(applicable),
	}
	for _, r := range applicable {
		res.ApplicableIDs = append(res.ApplicableIDs, r.ID)
	}

	if snap, snapErr := cat.Snapshot(); snapErr == nil {
		res.CatalogHash = snap.Hash
	} else {
		e.logger.WarnContext(ctx, "catalog snapshot failed", "framework", fw, "error", snapErr)
	}

	if fw == catalog.FrameworkEU {
		res.Modules = modules.ComputeStatuses(modules.EUModules(), applicable, p.IsLightRegime)
	}

	res.Recommendations = topRecommendations(gapList)
	res.RequiredAgencies = match.RelevantAgencies(p)
	res.RequiredLicenses = requiredLicenses(applicable)

	e.logger.InfoContext(ctx, "assessment complete",
		"result_id", res.ID,
		"framework", fw,
		"applicable", res.ApplicableCount,
		"overall", score.Overall,
		"risk", level,
		"gaps", len(gapList),
	)
	return res, nil
}

// PerformMultiFramework runs one assessment per framework and returns the
// results keyed by framework. Frameworks that fail to load are skipped
// with a log entry rather than failing the whole batch.
func (e *Engine) PerformMultiFramework(ctx context.Context, fws []catalog.Framework, p *profile.OperatorProfile, assessments []scoring.RequirementAssessment) map[catalog.Framework]*Result {
	out := make(map[catalog.Framework]*Result, len(fws))
	for _, fw := range fws {
		res, err := e.PerformAssessment(ctx, fw, p, assessments)
		if err != nil {
			e.logger.WarnContext(ctx, "framework skipped", "framework", fw, "error", err)
			continue
		}
		out[fw] = res
	}
	return out
}

// topRecommendations takes the highest-priority gap recommendations,
// deduplicated, preserving gap order.
func topRecommendations(gapList []gaps.Result) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range gapList {
		if g.Recommendation == "" || seen[g.Recommendation] {
			continue
		}
		seen[g.Recommendation] = true
		out = append(out, g.Recommendation)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

// requiredLicenses collects the license types named by applicable
// mandatory requirements, deduplicated in first-seen order.
func requiredLicenses(reqs []catalog.Requirement) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range reqs {
		if r.Binding != catalog.BindingMandatory {
			continue
		}
		for _, lt := range r.Applicability.LicenseTypes {
			if !seen[lt] {
				seen[lt] = true
				out = append(out, lt)
			}
		}
	}
	return out
}
