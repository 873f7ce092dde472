// Package incident classifies operational incidents into severity and
// regulator-notification deadline rules. Deadline offsets are exact hour
// arithmetic from detection time — some categories allow only a handful of
// hours, so calendar-day rounding would silently violate them.
package incident

import (
	"errors"
	"fmt"
	"time"
)

// Category identifies the kind of incident.
type Category string

const (
	CategoryCollisionWarning      Category = "COLLISION_WARNING"
	CategoryDebrisGeneratingEvent Category = "DEBRIS_GENERATING_EVENT"
	CategoryLossOfControl         Category = "LOSS_OF_CONTROL"
	CategoryCyberAttack           Category = "CYBER_ATTACK"
	CategoryDataBreach            Category = "DATA_BREACH"
	CategoryFrequencyInterference Category = "FREQUENCY_INTERFERENCE"
	CategoryGroundSegmentOutage   Category = "GROUND_SEGMENT_OUTAGE"
	CategoryThirdPartyFailure     Category = "THIRD_PARTY_FAILURE"
)

// Severity is the incident severity band.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// State is the lifecycle state of an incident. Transition enforcement
// belongs to the surrounding workflow layer; the engine only defines the
// states and the deadline computation.
type State string

const (
	StateDetected      State = "detected"
	StateInvestigating State = "investigating"
	StateContained     State = "contained"
	StateResolved      State = "resolved"
)

// nextStates is the forward transition table.
var nextStates = map[State]State{
	StateDetected:      StateInvestigating,
	StateInvestigating: StateContained,
	StateContained:     StateResolved,
}

// CanTransition reports whether from → to is a legal forward step.
func CanTransition(from, to State) bool {
	return nextStates[from] == to
}

// Rule carries the notification policy of one incident category.
type Rule struct {
	Category             Category      `json:"category"`
	BaseSeverity         Severity      `json:"base_severity"`
	NotificationDeadline time.Duration `json:"notification_deadline"`
	RequiresNotification bool          `json:"requires_notification"`
}

// ErrUnknownCategory is returned for categories outside the rule table.
var ErrUnknownCategory = errors.New("unknown incident category")

// ruleTable is the fixed per-category policy. Offsets follow the strictest
// applicable reporting regime for each category.
var ruleTable = map[Category]Rule{
	CategoryCollisionWarning:      {CategoryCollisionWarning, SeverityHigh, 6 * time.Hour, true},
	CategoryDebrisGeneratingEvent: {CategoryDebrisGeneratingEvent, SeverityCritical, 4 * time.Hour, true},
	CategoryLossOfControl:         {CategoryLossOfControl, SeverityHigh, 8 * time.Hour, true},
	CategoryCyberAttack:           {CategoryCyberAttack, SeverityHigh, 24 * time.Hour, true},
	CategoryDataBreach:            {CategoryDataBreach, SeverityMedium, 24 * time.Hour, true},
	CategoryFrequencyInterference: {CategoryFrequencyInterference, SeverityMedium, 72 * time.Hour, true},
	CategoryGroundSegmentOutage:   {CategoryGroundSegmentOutage, SeverityMedium, 48 * time.Hour, false},
	CategoryThirdPartyFailure:     {CategoryThirdPartyFailure, SeverityLow, 72 * time.Hour, false},
}

// RuleFor returns the notification rule for a category.
func RuleFor(c Category) (Rule, error) {
	r, ok := ruleTable[c]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return r, nil
}

// Factors is the small factor set severity is derived from when the caller
// does not supply one explicitly.
type Factors struct {
	AffectedAssets     int     `json:"affected_assets"`
	DataLoss           bool    `json:"data_loss"`
	ThirdPartyImpact   bool    `json:"third_party_impact"`
	Recurring          bool    `json:"recurring"`
	FinancialImpactEUR float64 `json:"financial_impact_eur"`
}

// ClassifySeverity derives severity from the factor set via a deterministic
// point rule. Any single severe factor (data loss, third-party impact, ten
// or more affected assets, seven-figure financial impact) forces at least
// high; the category's base severity is a floor in every case.
func ClassifySeverity(c Category, f Factors) (Severity, error) {
	rule, err := RuleFor(c)
	if err != nil {
		return "", err
	}

	points := 0
	severe := false
	if f.DataLoss {
		points += 2
		severe = true
	}
	if f.ThirdPartyImpact {
		points += 2
		severe = true
	}
	switch {
	case f.AffectedAssets >= 10:
		points += 2
		severe = true
	case f.AffectedAssets >= 3:
		points++
	}
	if f.Recurring {
		points++
	}
	switch {
	case f.FinancialImpactEUR >= 1_000_000:
		points += 2
		severe = true
	case f.FinancialImpactEUR >= 100_000:
		points++
	}

	var derived Severity
	switch {
	case points >= 5:
		derived = SeverityCritical
	case points >= 3:
		derived = SeverityHigh
	case points >= 1:
		derived = SeverityMedium
	default:
		derived = SeverityLow
	}
	if severe && severityRank(derived) < severityRank(SeverityHigh) {
		derived = SeverityHigh
	}
	if severityRank(rule.BaseSeverity) > severityRank(derived) {
		derived = rule.BaseSeverity
	}
	return derived, nil
}

// Deadline computes the regulator-notification deadline: detection time
// plus the category offset, exact to the hour.
func Deadline(c Category, detectedAt time.Time) (time.Time, error) {
	rule, err := RuleFor(c)
	if err != nil {
		return time.Time{}, err
	}
	return detectedAt.Add(rule.NotificationDeadline), nil
}

// Incident is the workflow-layer record the engine's rules operate on.
// ReportedToNCA is orthogonal to State and may flip true in any state.
type Incident struct {
	ID            string     `json:"id"`
	Category      Category   `json:"category"`
	Severity      Severity   `json:"severity"`
	State         State      `json:"state"`
	DetectedAt    time.Time  `json:"detected_at"`
	Deadline      time.Time  `json:"deadline"`
	ReportedToNCA bool       `json:"reported_to_nca"`
	ReportedAt    *time.Time `json:"reported_at,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// New builds an incident in the detected state with severity derived from
// the factors and the notification deadline precomputed.
func New(id string, c Category, detectedAt time.Time, f Factors) (*Incident, error) {
	severity, err := ClassifySeverity(c, f)
	if err != nil {
		return nil, err
	}
	deadline, err := Deadline(c, detectedAt)
	if err != nil {
		return nil, err
	}
	return &Incident{
		ID:         id,
		Category:   c,
		Severity:   severity,
		State:      StateDetected,
		DetectedAt: detectedAt,
		Deadline:   deadline,
	}, nil
}

// Overdue reports whether the notification deadline has passed without the
// incident having been reported.
func (i *Incident) Overdue(now time.Time) bool {
	rule, err := RuleFor(i.Category)
	if err != nil || !rule.RequiresNotification {
		return false
	}
	return !i.ReportedToNCA && now.After(i.Deadline)
}

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}
