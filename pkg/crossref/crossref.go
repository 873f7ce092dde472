// Package crossref collects the cross-framework reference strings attached
// to requirements for overlap reporting. The resolver is framework-agnostic
// and works in both directions; it only reads the reference-list attribute.
package crossref

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
)

// referencePattern recognizes the external code formats catalogs may point
// at: an uppercase framework prefix followed by a hyphenated or
// colon-separated locator, e.g. "IADC-5.3.2", "ISO-24113:6.1",
// "EU-ART-32", "UK-SIA-S12", "US-FCC-25.114", "NIS2-ART-23",
// "COPUOS-LTS-B.3".
var referencePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]+-[A-Za-z0-9.:§-]+$`)

// Collect deduplicates every cross-framework reference attached to the
// given requirements and returns them sorted.
func Collect(reqs []catalog.Requirement) []string {
	seen := make(map[string]bool)
	for _, r := range reqs {
		for _, ref := range r.CrossReferences {
			seen[ref] = true
		}
	}
	out := make([]string, 0, len(seen))
	for ref := range seen {
		out = append(out, ref)
	}
	sort.Strings(out)
	return out
}

// ValidFormat reports whether a reference string matches a recognizable
// external code format.
func ValidFormat(ref string) bool {
	return referencePattern.MatchString(ref)
}

// Lint reports every cross-reference in the catalog that does not resolve
// to a recognizable external code format. Surfaced at catalog build/test
// time, never at runtime.
func Lint(c *catalog.Catalog) []catalog.Warning {
	var warnings []catalog.Warning
	for _, r := range c.Requirements {
		for _, ref := range r.CrossReferences {
			if !ValidFormat(ref) {
				warnings = append(warnings, catalog.Warning{
					Code:          "bad_cross_reference",
					RequirementID: r.ID,
					Detail:        fmt.Sprintf("reference %q matches no recognized external code format", ref),
				})
			}
		}
	}
	return warnings
}
