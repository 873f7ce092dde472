// Package scoring converts per-requirement assessment state into weighted
// compliance scores at every aggregation level the product reports on:
// overall, per category, per agency, mandatory, and recommended.
package scoring

import (
	"math"
	"time"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
)

// Status is the assessed compliance state of one requirement.
type Status string

const (
	StatusCompliant     Status = "compliant"
	StatusPartial       Status = "partial"
	StatusNonCompliant  Status = "non_compliant"
	StatusNotAssessed   Status = "not_assessed"
	StatusNotApplicable Status = "not_applicable"
)

// RequirementAssessment is the caller-owned assessment record for one
// requirement. The engine consumes these read-only; a requirement with no
// record is treated as not_assessed.
type RequirementAssessment struct {
	RequirementID string     `json:"requirement_id"`
	Status        Status     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	EvidenceNotes string     `json:"evidence_notes,omitempty"`
	AssessedAt    time.Time  `json:"assessed_at"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// ByID indexes assessments by requirement ID; later duplicates win, which
// matches last-write semantics of the caller's persistence layer.
func ByID(assessments []RequirementAssessment) map[string]RequirementAssessment {
	m := make(map[string]RequirementAssessment, len(assessments))
	for _, a := range assessments {
		m[a.RequirementID] = a
	}
	return m
}

// StatusOf returns the effective status for a requirement, defaulting to
// not_assessed when no record exists.
func StatusOf(id string, byID map[string]RequirementAssessment) Status {
	if a, ok := byID[id]; ok && a.Status != "" {
		return a.Status
	}
	return StatusNotAssessed
}

// ComplianceScore is the derived score set, recomputed on every call.
// All values are 0-100 integers.
type ComplianceScore struct {
	Overall     int                      `json:"overall"`
	ByCategory  map[catalog.Category]int `json:"by_category"`
	ByAgency    map[string]int           `json:"by_agency"`
	Mandatory   int                      `json:"mandatory"`
	Recommended int                      `json:"recommended"`
}

// Weight returns the scoring weight for a severity: critical 3, major 2,
// minor 1. Unknown severities weigh like minor.
func Weight(s catalog.Severity) int {
	switch s {
	case catalog.SeverityCritical:
		return 3
	case catalog.SeverityMajor:
		return 2
	default:
		return 1
	}
}

// GroupScore computes the weighted score of one requirement group.
//
// compliant contributes weight, partial half weight; non_compliant and
// not_assessed contribute nothing but keep their weight in the total;
// not_applicable removes the weight entirely. An empty or fully-N/A group
// scores 100 — vacuously compliant, which callers depend on.
func GroupScore(reqs []catalog.Requirement, byID map[string]RequirementAssessment) int {
	var achieved, total float64
	for _, r := range reqs {
		w := float64(Weight(r.Severity))
		switch StatusOf(r.ID, byID) {
		case StatusCompliant:
			achieved += w
			total += w
		case StatusPartial:
			achieved += w * 0.5
			total += w
		case StatusNotApplicable:
			// excluded from both sides
		default: // non_compliant, not_assessed
			total += w
		}
	}
	if total == 0 {
		return 100
	}
	return int(math.Round(achieved / total * 100))
}

// Score computes the full compliance score set over an applicable
// requirement group.
func Score(reqs []catalog.Requirement, assessments []RequirementAssessment) ComplianceScore {
	byID := ByID(assessments)

	byCategory := make(map[catalog.Category][]catalog.Requirement)
	byAgency := make(map[string][]catalog.Requirement)
	var mandatory, recommended []catalog.Requirement

	for _, r := range reqs {
		byCategory[r.Category] = append(byCategory[r.Category], r)
		for _, a := range r.Applicability.Agencies {
			byAgency[a] = append(byAgency[a], r)
		}
		if r.Binding == catalog.BindingMandatory {
			mandatory = append(mandatory, r)
		} else {
			// recommended, best_practice, and guidance fold together
			recommended = append(recommended, r)
		}
	}

	score := ComplianceScore{
		Overall:     GroupScore(reqs, byID),
		ByCategory:  make(map[catalog.Category]int, len(byCategory)),
		ByAgency:    make(map[string]int, len(byAgency)),
		Mandatory:   GroupScore(mandatory, byID),
		Recommended: GroupScore(recommended, byID),
	}
	for cat, group := range byCategory {
		score.ByCategory[cat] = GroupScore(group, byID)
	}
	for agency, group := range byAgency {
		score.ByAgency[agency] = GroupScore(group, byID)
	}
	return score
}

// Summary is the status-count rollup over a requirement group. The five
// counts always sum exactly to Total.
type Summary struct {
	Compliant     int `json:"compliant"`
	Partial       int `json:"partial"`
	NonCompliant  int `json:"non_compliant"`
	NotAssessed   int `json:"not_assessed"`
	NotApplicable int `json:"not_applicable"`
	Total         int `json:"total"`
}

// Summarize counts effective statuses across the group.
func Summarize(reqs []catalog.Requirement, assessments []RequirementAssessment) Summary {
	byID := ByID(assessments)
	s := Summary{Total: len(reqs)}
	for _, r := range reqs {
		switch StatusOf(r.ID, byID) {
		case StatusCompliant:
			s.Compliant++
		case StatusPartial:
			s.Partial++
		case StatusNonCompliant:
			s.NonCompliant++
		case StatusNotApplicable:
			s.NotApplicable++
		default:
			s.NotAssessed++
		}
	}
	return s
}
