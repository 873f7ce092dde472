package catalog

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Warning is a data-quality finding against a catalog entry. Warnings are
// surfaced to catalog maintainers at build/test time; they are never raised
// at runtime against end-user input.
type Warning struct {
	Code          string `json:"code"`
	RequirementID string `json:"requirement_id,omitempty"`
	Detail        string `json:"detail"`
}

func (w Warning) String() string {
	if w.RequirementID == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Detail)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Code, w.RequirementID, w.Detail)
}

// Lint checks the structural quality of a catalog: a parseable semver
// release version, unique non-empty IDs, populated classification fields,
// and guidance present on mandatory entries. Range-string and
// cross-reference lint live next to their consumers (pkg/modules,
// pkg/crossref) and are aggregated by the lint command.
func (c *Catalog) Lint() []Warning {
	var warnings []Warning

	if _, err := semver.NewVersion(c.Version); err != nil {
		warnings = append(warnings, Warning{
			Code:   "bad_version",
			Detail: fmt.Sprintf("catalog version %q is not semver: %v", c.Version, err),
		})
	}

	seen := make(map[string]bool, len(c.Requirements))
	for _, r := range c.Requirements {
		if r.ID == "" {
			warnings = append(warnings, Warning{Code: "missing_id", Detail: fmt.Sprintf("requirement %q has no ID", r.Title)})
			continue
		}
		if seen[r.ID] {
			warnings = append(warnings, Warning{Code: "duplicate_id", RequirementID: r.ID, Detail: "requirement ID appears more than once"})
		}
		seen[r.ID] = true

		if r.Framework != c.Framework {
			warnings = append(warnings, Warning{Code: "framework_mismatch", RequirementID: r.ID,
				Detail: fmt.Sprintf("tagged %s inside %s catalog", r.Framework, c.Framework)})
		}
		if r.Title == "" {
			warnings = append(warnings, Warning{Code: "missing_title", RequirementID: r.ID, Detail: "empty title"})
		}
		if !validSeverity(r.Severity) {
			warnings = append(warnings, Warning{Code: "bad_severity", RequirementID: r.ID,
				Detail: fmt.Sprintf("unrecognized severity %q", r.Severity)})
		}
		if !validBinding(r.Binding) {
			warnings = append(warnings, Warning{Code: "bad_binding", RequirementID: r.ID,
				Detail: fmt.Sprintf("unrecognized binding level %q", r.Binding)})
		}
		if r.Category == "" {
			warnings = append(warnings, Warning{Code: "missing_category", RequirementID: r.ID, Detail: "empty category"})
		}
		if r.Binding == BindingMandatory && len(r.Guidance) == 0 {
			warnings = append(warnings, Warning{Code: "missing_guidance", RequirementID: r.ID,
				Detail: "mandatory requirement has no implementation guidance"})
		}
		if min, max := r.Applicability.MinAltitudeKm, r.Applicability.MaxAltitudeKm; min != nil && max != nil && *min > *max {
			warnings = append(warnings, Warning{Code: "inverted_altitude_band", RequirementID: r.ID,
				Detail: fmt.Sprintf("min altitude %.0f above max %.0f", *min, *max)})
		}
	}

	return warnings
}

func validSeverity(s Severity) bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor:
		return true
	}
	return false
}

func validBinding(b BindingLevel) bool {
	switch b {
	case BindingMandatory, BindingRecommended, BindingBestPractice, BindingGuidance:
		return true
	}
	return false
}
