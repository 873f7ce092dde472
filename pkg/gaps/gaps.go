// Package gaps produces the prioritized gap analysis: for every applicable
// requirement that is not fully compliant, a priority, effort estimate,
// dependency hints, and remediation recommendation.
package gaps

import (
	"fmt"
	"sort"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/scoring"
)

// Priority orders remediation work.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Effort is the coarse remediation effort estimate.
type Effort string

const (
	EffortHigh   Effort = "high"
	EffortMedium Effort = "medium"
	EffortLow    Effort = "low"
)

// Result is the gap record for one requirement.
type Result struct {
	RequirementID  string         `json:"requirement_id"`
	Title          string         `json:"title"`
	Status         scoring.Status `json:"status"`
	Priority       Priority       `json:"priority"`
	Gap            string         `json:"gap"`
	Recommendation string         `json:"recommendation"`
	Effort         Effort         `json:"effort"`
	Dependencies   []string       `json:"dependencies,omitempty"`
	CrossReference string         `json:"cross_reference,omitempty"`
}

// effortByCategory is the deterministic category-to-effort heuristic.
// Categories not listed default to medium.
var effortByCategory = map[catalog.Category]Effort{
	catalog.CategorySafety:        EffortHigh,
	catalog.CategoryInsurance:     EffortHigh,
	catalog.CategoryCybersecurity: EffortHigh,
	catalog.CategoryOrbitalDebris: EffortMedium,
	catalog.CategorySpectrum:      EffortMedium,
	catalog.CategoryLicensing:     EffortMedium,
	catalog.CategoryRegistration:  EffortLow,
	catalog.CategorySupervision:   EffortLow,
	catalog.CategoryEnvironmental: EffortLow,
}

// dependenciesByCategory lists the prerequisite work each category implies.
var dependenciesByCategory = map[catalog.Category][]string{
	catalog.CategoryLicensing: {
		"technical capability demonstration",
		"financial capability demonstration",
	},
	catalog.CategoryOrbitalDebris: {
		"disposal plan",
		"collision risk assessment",
	},
	catalog.CategoryInsurance: {
		"maximum probable loss estimate",
	},
	catalog.CategoryCybersecurity: {
		"segment risk analysis",
	},
	catalog.CategorySpectrum: {
		"frequency plan",
	},
	catalog.CategoryRemoteSensing: {
		"data distribution policy",
	},
}

var priorityRank = map[Priority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}

// Analyze returns the gap list for every applicable requirement whose
// effective status is not compliant and not not_applicable, sorted high
// priority first with the incoming order preserved inside each band.
func Analyze(reqs []catalog.Requirement, assessments []scoring.RequirementAssessment) []Result {
	byID := scoring.ByID(assessments)

	var out []Result
	for _, r := range reqs {
		status := scoring.StatusOf(r.ID, byID)
		if status == scoring.StatusCompliant || status == scoring.StatusNotApplicable {
			continue
		}
		out = append(out, Result{
			RequirementID:  r.ID,
			Title:          r.Title,
			Status:         status,
			Priority:       priorityFor(r),
			Gap:            gapText(r, status),
			Recommendation: recommendationFor(r),
			Effort:         effortFor(r.Category),
			Dependencies:   dependenciesByCategory[r.Category],
			CrossReference: firstCrossReference(r),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}

// priorityFor applies the priority matrix: high when mandatory AND
// critical, medium when exactly one of the two holds, low otherwise.
func priorityFor(r catalog.Requirement) Priority {
	mandatory := r.Binding == catalog.BindingMandatory
	critical := r.Severity == catalog.SeverityCritical
	switch {
	case mandatory && critical:
		return PriorityHigh
	case mandatory || critical:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func effortFor(c catalog.Category) Effort {
	if e, ok := effortByCategory[c]; ok {
		return e
	}
	return EffortMedium
}

func recommendationFor(r catalog.Requirement) string {
	if len(r.Guidance) > 0 {
		return r.Guidance[0]
	}
	return fmt.Sprintf("Develop and document an implementation plan for: %s.", r.Title)
}

func gapText(r catalog.Requirement, status scoring.Status) string {
	switch status {
	case scoring.StatusNonCompliant:
		return fmt.Sprintf("Known non-compliance with %q.", r.Title)
	case scoring.StatusPartial:
		return fmt.Sprintf("Partial implementation of %q; remaining work must be completed.", r.Title)
	default:
		return fmt.Sprintf("%q has not been assessed yet.", r.Title)
	}
}

func firstCrossReference(r catalog.Requirement) string {
	if len(r.CrossReferences) > 0 {
		return r.CrossReferences[0]
	}
	return ""
}
