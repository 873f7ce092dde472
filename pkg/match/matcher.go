// Package match implements the applicability matcher: one generic
// interpreter over the declarative constraint predicate carried by every
// requirement, shared by all framework catalogs.
package match

import (
	"log/slog"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/profile"
)

// Matcher evaluates applicability predicates against operator profiles.
// Zero-state apart from the CEL program cache; safe for concurrent use.
type Matcher struct {
	cel    *Evaluator
	logger *slog.Logger
}

// NewMatcher creates a matcher with a fresh CEL environment.
func NewMatcher() (*Matcher, error) {
	eval, err := NewEvaluator()
	if err != nil {
		return nil, err
	}
	return &Matcher{
		cel:    eval,
		logger: slog.Default().With("component", "match"),
	}, nil
}

// Match returns the subset of catalog requirements whose predicate the
// profile satisfies. Catalog order is preserved and no requirement ID
// appears twice. Pure over its inputs.
func (m *Matcher) Match(p *profile.OperatorProfile, c *catalog.Catalog) []catalog.Requirement {
	var out []catalog.Requirement
	seen := make(map[string]bool, len(c.Requirements))
	for _, r := range c.Requirements {
		if seen[r.ID] {
			continue
		}
		if m.Matches(p, r.Applicability) {
			out = append(out, r)
			seen[r.ID] = true
		}
	}
	return out
}

// Matches evaluates every populated constraint as an AND-conjunction. An
// absent constraint imposes no restriction.
//
// Policy for numeric thresholds: when the profile lacks the relevant
// numeric attribute, a populated min/max constraint is treated as
// NON-matching — a requirement scoped by mass or altitude cannot be shown
// to apply to a mission that never declared one.
func (m *Matcher) Matches(p *profile.OperatorProfile, a catalog.Applicability) bool {
	if len(a.OrbitRegimes) > 0 && !containsOrbit(a.OrbitRegimes, p.OrbitRegime) {
		return false
	}
	if len(a.OperatorTypes) > 0 && !anyOperatorType(p, a.OperatorTypes) {
		return false
	}
	if len(a.ActivityTypes) > 0 && !anyActivityType(p, a.ActivityTypes) {
		return false
	}
	if len(a.SizeCategories) > 0 && !containsSize(a.SizeCategories, p.SizeCategory) {
		return false
	}

	if a.MinMassKg != nil && (p.MassKg == nil || *p.MassKg < *a.MinMassKg) {
		return false
	}
	if a.MinAltitudeKm != nil && (p.AltitudeKm == nil || *p.AltitudeKm < *a.MinAltitudeKm) {
		return false
	}
	if a.MaxAltitudeKm != nil && (p.AltitudeKm == nil || *p.AltitudeKm > *a.MaxAltitudeKm) {
		return false
	}

	if a.ConstellationsOnly && !p.IsConstellation {
		return false
	}
	if a.RequiresPropulsion && !p.HasPropulsion {
		return false
	}
	if a.LEOOnly && p.OrbitRegime != catalog.OrbitLEO {
		return false
	}
	if a.NGSOOnly && !p.IsNGSO {
		return false
	}
	if a.RemoteSensingOnly && !p.IsRemoteSensing {
		return false
	}

	if len(a.Agencies) > 0 && !anyAgency(p, a.Agencies) {
		return false
	}
	// A profile that does not enumerate licence classes is treated as
	// potentially holding any, so licence-scoped requirements stay
	// applicable until the operator narrows the set.
	if len(a.LicenseTypes) > 0 && len(p.LicenseTypes) > 0 && !anyLicenseType(p, a.LicenseTypes) {
		return false
	}

	if a.Expression != "" {
		ok, err := m.cel.Evaluate(a.Expression, p)
		if err != nil {
			// Trusted catalog data should never fail here; fail closed
			// and leave the rest of the match untouched.
			m.logger.Warn("applicability expression failed, treating as non-matching",
				"expression", a.Expression, "error", err)
			return false
		}
		if !ok {
			return false
		}
	}

	return true
}

// RelevantAgencies derives which US licensing agencies govern the profile's
// activities: FCC for satellite operation and communications, FAA for
// launch and reentry, NOAA for remote sensing.
func RelevantAgencies(p *profile.OperatorProfile) []string {
	var agencies []string
	if p.HasOperatorType(catalog.OperatorSatellite) ||
		p.HasActivityType(catalog.ActivityOperation) ||
		p.HasActivityType(catalog.ActivityCommunications) {
		agencies = append(agencies, catalog.AgencyFCC)
	}
	if p.HasOperatorType(catalog.OperatorLaunch) ||
		p.HasActivityType(catalog.ActivityLaunch) ||
		p.HasActivityType(catalog.ActivityReentry) {
		agencies = append(agencies, catalog.AgencyFAA)
	}
	if p.IsRemoteSensing || p.HasOperatorType(catalog.OperatorRemoteSensing) {
		agencies = append(agencies, catalog.AgencyNOAA)
	}
	return agencies
}

func containsOrbit(set []catalog.OrbitRegime, v catalog.OrbitRegime) bool {
	for _, o := range set {
		if o == v {
			return true
		}
	}
	return false
}

func containsSize(set []catalog.SizeCategory, v catalog.SizeCategory) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anyOperatorType(p *profile.OperatorProfile, set []catalog.OperatorType) bool {
	for _, t := range set {
		if p.HasOperatorType(t) {
			return true
		}
	}
	return false
}

func anyActivityType(p *profile.OperatorProfile, set []catalog.ActivityType) bool {
	for _, t := range set {
		if p.HasActivityType(t) {
			return true
		}
	}
	return false
}

func anyAgency(p *profile.OperatorProfile, set []string) bool {
	relevant := RelevantAgencies(p)
	for _, want := range set {
		for _, have := range relevant {
			if want == have {
				return true
			}
		}
	}
	return false
}

func anyLicenseType(p *profile.OperatorProfile, set []string) bool {
	for _, lt := range set {
		if p.HasLicenseType(lt) {
			return true
		}
	}
	return false
}
