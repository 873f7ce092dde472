// Package modules buckets applicable requirements into product modules by
// article range and derives a status per module through an explicit ordered
// rule list — first match wins, so the precedence is auditable and
// independently testable.
package modules

import (
	"fmt"

	"github.com/Astrea-Labs/orbitreg/pkg/artrange"
	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
)

// Status is the compliance track derived for one module.
type Status string

const (
	StatusRequired      Status = "required"
	StatusSimplified    Status = "simplified"
	StatusRecommended   Status = "recommended"
	StatusNotApplicable Status = "not_applicable"
)

// Definition is one fixed product module keyed to an article range.
type Definition struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ArticleRange string `json:"article_range"`
}

// ModuleStatus is the derived state of one module for a given profile.
type ModuleStatus struct {
	ModuleID     string   `json:"module_id"`
	Name         string   `json:"name"`
	Status       Status   `json:"status"`
	MatchedCount int      `json:"matched_count"`
	MatchedIDs   []string `json:"matched_ids,omitempty"`
	Summary      string   `json:"summary"`
}

// EUModules returns the module definitions for the EU framework.
func EUModules() []Definition {
	return []Definition{
		{ID: "authorization", Name: "Authorization & Licensing", ArticleRange: "Art. 6–16"},
		{ID: "debris", Name: "Debris Mitigation & Space Safety", ArticleRange: "Art. 32–39"},
		{ID: "resilience", Name: "Cybersecurity & Resilience", ArticleRange: "Art. 54–60"},
		{ID: "environment", Name: "Environmental Sustainability", ArticleRange: "Art. 75–82"},
		{ID: "supervision", Name: "Supervision & Reporting", ArticleRange: "Art. 105–108"},
	}
}

// statusRule is one branch of the ordered decision list.
type statusRule struct {
	name  string
	match func(matched []catalog.Requirement, isLightRegime bool) bool
	state func(matched []catalog.Requirement) (Status, string)
}

// statusRules is evaluated top to bottom; the first matching rule decides.
// Reordering changes classification outcomes for mixed-type modules, so the
// order is part of the contract.
var statusRules = []statusRule{
	{
		name: "empty",
		match: func(matched []catalog.Requirement, _ bool) bool {
			return len(matched) == 0
		},
		state: func(_ []catalog.Requirement) (Status, string) {
			return StatusNotApplicable, "No requirements in this module apply to the mission profile."
		},
	},
	{
		name: "mandatory_simplified",
		match: func(matched []catalog.Requirement, isLightRegime bool) bool {
			return hasComplianceType(matched, catalog.ComplianceMandatory) &&
				isLightRegime &&
				hasComplianceType(matched, catalog.ComplianceConditionalSimplified)
		},
		state: func(matched []catalog.Requirement) (Status, string) {
			return StatusSimplified, fmt.Sprintf(
				"%d applicable requirements; the light regime replaces the mandatory track with the simplified one.", len(matched))
		},
	},
	{
		name: "mandatory",
		match: func(matched []catalog.Requirement, _ bool) bool {
			return hasComplianceType(matched, catalog.ComplianceMandatory)
		},
		state: func(matched []catalog.Requirement) (Status, string) {
			return StatusRequired, fmt.Sprintf(
				"%d applicable requirements; at least one is mandatory, full compliance track required.", len(matched))
		},
	},
	{
		name: "conditional_light",
		match: func(matched []catalog.Requirement, isLightRegime bool) bool {
			return isLightRegime && hasComplianceType(matched, catalog.ComplianceConditionalSimplified)
		},
		state: func(matched []catalog.Requirement) (Status, string) {
			return StatusSimplified, fmt.Sprintf(
				"%d applicable requirements, all satisfiable through the simplified track.", len(matched))
		},
	},
	{
		name: "recommended",
		match: func(_ []catalog.Requirement, _ bool) bool { return true },
		state: func(matched []catalog.Requirement) (Status, string) {
			return StatusRecommended, fmt.Sprintf(
				"%d applicable requirements, none mandatory; treat as recommended practice.", len(matched))
		},
	},
}

// ComputeStatuses derives the status of every module definition over the
// applicable requirement set.
func ComputeStatuses(defs []Definition, applicable []catalog.Requirement, isLightRegime bool) []ModuleStatus {
	out := make([]ModuleStatus, 0, len(defs))
	for _, def := range defs {
		intervals := artrange.Parse(def.ArticleRange)

		var matched []catalog.Requirement
		for _, r := range applicable {
			if r.Article > 0 && artrange.InRanges(r.Article, intervals) {
				matched = append(matched, r)
			}
		}

		ms := ModuleStatus{
			ModuleID:     def.ID,
			Name:         def.Name,
			MatchedCount: len(matched),
		}
		for _, r := range matched {
			ms.MatchedIDs = append(ms.MatchedIDs, r.ID)
		}

		for _, rule := range statusRules {
			if rule.match(matched, isLightRegime) {
				ms.Status, ms.Summary = rule.state(matched)
				break
			}
		}

		out = append(out, ms)
	}
	return out
}

// LintDefinitions surfaces malformed article-range strings in module
// definitions as catalog warnings for build-time linting.
func LintDefinitions(defs []Definition) []catalog.Warning {
	var warnings []catalog.Warning
	for _, def := range defs {
		intervals, rangeWarnings := artrange.ParseStrict(def.ArticleRange)
		for _, w := range rangeWarnings {
			warnings = append(warnings, catalog.Warning{
				Code:   "bad_article_range",
				Detail: fmt.Sprintf("module %s: %s", def.ID, w),
			})
		}
		if len(intervals) == 0 {
			warnings = append(warnings, catalog.Warning{
				Code:   "empty_article_range",
				Detail: fmt.Sprintf("module %s: range %q produced no intervals", def.ID, def.ArticleRange),
			})
		}
	}
	return warnings
}

func hasComplianceType(reqs []catalog.Requirement, want catalog.ComplianceType) bool {
	for _, r := range reqs {
		if catalog.NormalizeComplianceType(r.ComplianceType) == want {
			return true
		}
	}
	return false
}
