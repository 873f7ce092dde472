// Package risk maps compliance scores plus specific override conditions to
// the four-level risk band. The classifier is a decision list, not a
// weighted average: later rules only apply when earlier ones did not fire.
package risk

import (
	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/scoring"
)

// Level is the overall risk classification of an assessment.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// rule is one branch of the ordered override chain.
type rule struct {
	name  string
	fires func(in input) (Level, bool)
}

type input struct {
	score  scoring.ComplianceScore
	reqs   []catalog.Requirement
	byID   map[string]scoring.RequirementAssessment
}

// rules is evaluated in order; the first rule that fires decides the level.
var rules = []rule{
	{
		// Any critical-severity requirement assessed non_compliant is an
		// unconditional critical, regardless of every score.
		name: "critical_non_compliance",
		fires: func(in input) (Level, bool) {
			for _, r := range in.reqs {
				if r.Severity == catalog.SeverityCritical &&
					scoring.StatusOf(r.ID, in.byID) == scoring.StatusNonCompliant {
					return LevelCritical, true
				}
			}
			return "", false
		},
	},
	{
		// Operating without proper authorization is unconditionally
		// critical: a licensing category score below 50 overrides
		// whatever the rest of the assessment looks like.
		name: "licensing_failure",
		fires: func(in input) (Level, bool) {
			if s, ok := in.score.ByCategory[catalog.CategoryLicensing]; ok && s < 50 {
				return LevelCritical, true
			}
			return "", false
		},
	},
	{
		name: "mandatory_thresholds",
		fires: func(in input) (Level, bool) {
			switch m := in.score.Mandatory; {
			case m < 50:
				return LevelCritical, true
			case m < 70:
				return LevelHigh, true
			case m < 85:
				return LevelMedium, true
			default:
				return LevelLow, true
			}
		},
	},
}

// Classify runs the override chain over the applicable requirements and
// their assessment state.
func Classify(score scoring.ComplianceScore, reqs []catalog.Requirement, assessments []scoring.RequirementAssessment) Level {
	in := input{
		score: score,
		reqs:  reqs,
		byID:  scoring.ByID(assessments),
	}
	for _, r := range rules {
		if level, ok := r.fires(in); ok {
			return level
		}
	}
	return LevelLow // unreachable: the threshold rule always fires
}
