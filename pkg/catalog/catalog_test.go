package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnownFrameworks(t *testing.T) {
	for _, fw := range []Framework{
		FrameworkEU, FrameworkInternational, FrameworkUK, FrameworkUS, FrameworkNIS2,
	} {
		c, err := Load(fw)
		require.NoError(t, err, "framework %s", fw)
		assert.Equal(t, fw, c.Framework)
		assert.NotEmpty(t, c.Requirements)
		assert.NotEmpty(t, c.Version)
	}
}

func TestLoadUnknownFramework(t *testing.T) {
	_, err := Load(Framework("MARS_COLONIAL_CODE"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFramework)
}

func TestLoadIsCached(t *testing.T) {
	a, err := Load(FrameworkEU)
	require.NoError(t, err)
	b, err := Load(FrameworkEU)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestBuiltinCatalogsLintClean(t *testing.T) {
	for _, fw := range []Framework{
		FrameworkEU, FrameworkInternational, FrameworkUK, FrameworkUS, FrameworkNIS2,
	} {
		c := MustLoad(fw)
		warnings := c.Lint()
		assert.Empty(t, warnings, "framework %s: %v", fw, warnings)
	}
}

func TestByID(t *testing.T) {
	c := MustLoad(FrameworkEU)
	r, ok := c.ByID("eu-art-32")
	require.True(t, ok)
	assert.Equal(t, CategoryOrbitalDebris, r.Category)
	assert.Equal(t, SeverityCritical, r.Severity)

	_, ok = c.ByID("eu-art-9999")
	assert.False(t, ok)
}

func TestSnapshotDeterministic(t *testing.T) {
	c := MustLoad(FrameworkEU)
	s1, err := c.Snapshot()
	require.NoError(t, err)
	s2, err := c.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, s1.Hash, s2.Hash)
	assert.True(t, strings.HasPrefix(s1.Hash, "sha256:"))
}

func TestSnapshotIgnoresRequirementOrder(t *testing.T) {
	base := MustLoad(FrameworkUK)
	s1, err := base.Snapshot()
	require.NoError(t, err)

	reversed := &Catalog{Framework: base.Framework, Version: base.Version}
	for i := len(base.Requirements) - 1; i >= 0; i-- {
		reversed.Requirements = append(reversed.Requirements, base.Requirements[i])
	}
	s2, err := reversed.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, s1.Hash, s2.Hash)
}

func TestSnapshotChangesWithContent(t *testing.T) {
	s1, err := MustLoad(FrameworkEU).Snapshot()
	require.NoError(t, err)
	s2, err := MustLoad(FrameworkUK).Snapshot()
	require.NoError(t, err)
	assert.NotEqual(t, s1.Hash, s2.Hash)
}

func TestNormalizeComplianceType(t *testing.T) {
	tests := []struct {
		in   ComplianceType
		want ComplianceType
	}{
		{"mandatory", ComplianceMandatory},
		{"required", ComplianceMandatory},
		{"conditional_simplified", ComplianceConditionalSimplified},
		{"simplified", ComplianceConditionalSimplified},
		{"recommended", ComplianceRecommended},
		{"best_practice", ComplianceRecommended},
		{"", ComplianceRecommended},
		{"something_else", ComplianceRecommended},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeComplianceType(tt.in), "input %q", tt.in)
	}
}

func TestLintFlagsDefects(t *testing.T) {
	c := &Catalog{
		Framework: FrameworkEU,
		Version:   "not-semver",
		Requirements: []Requirement{
			{ID: "", Framework: FrameworkEU, Title: "untitled", Category: CategorySafety, Binding: BindingMandatory, Severity: SeverityMajor, Guidance: []string{"do it"}},
			{ID: "dup", Framework: FrameworkEU, Title: "a", Category: CategorySafety, Binding: BindingMandatory, Severity: SeverityMajor, Guidance: []string{"g"}},
			{ID: "dup", Framework: FrameworkEU, Title: "b", Category: CategorySafety, Binding: BindingMandatory, Severity: SeverityMajor, Guidance: []string{"g"}},
			{ID: "bad-band", Framework: FrameworkEU, Title: "c", Category: CategorySafety, Binding: BindingMandatory, Severity: SeverityMajor, Guidance: []string{"g"},
				Applicability: Applicability{MinAltitudeKm: Float(800), MaxAltitudeKm: Float(400)}},
			{ID: "no-guidance", Framework: FrameworkEU, Title: "d", Category: CategorySafety, Binding: BindingMandatory, Severity: SeverityMajor},
		},
	}

	warnings := c.Lint()
	codes := make(map[string]int)
	for _, w := range warnings {
		codes[w.Code]++
	}
	assert.Positive(t, codes["bad_version"])
	assert.Positive(t, codes["missing_id"])
	assert.Positive(t, codes["duplicate_id"])
	assert.Positive(t, codes["inverted_altitude_band"])
	assert.Positive(t, codes["missing_guidance"])
}

func TestParseBundle(t *testing.T) {
	data := []byte(`{
		"framework": "EU_SPACE_ACT",
		"version": "0.1.0",
		"requirements": [
			{
				"id": "eu-x-1",
				"article": 12,
				"title": "Example obligation",
				"category": "safety",
				"binding": "MANDATORY",
				"severity": "MAJOR",
				"guidance": ["Document the thing."]
			}
		]
	}`)
	c, err := ParseBundle(data)
	require.NoError(t, err)
	require.Len(t, c.Requirements, 1)
	assert.Equal(t, FrameworkEU, c.Requirements[0].Framework)
	assert.Equal(t, 12, c.Requirements[0].Article)
}

func TestParseBundleRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not_json", `{{`},
		{"missing_version", `{"framework": "EU_SPACE_ACT", "requirements": []}`},
		{"bad_binding", `{"framework": "EU_SPACE_ACT", "version": "1.0.0", "requirements": [
			{"id": "x", "title": "t", "category": "safety", "binding": "SORT_OF", "severity": "MAJOR"}
		]}`},
		{"unknown_field", `{"framework": "EU_SPACE_ACT", "version": "1.0.0", "requirements": [], "extra": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBundle([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
