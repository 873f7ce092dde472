package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/profile"
)

func mustProfile(t *testing.T, raw profile.OperatorProfile) *profile.OperatorProfile {
	t.Helper()
	p, err := profile.Validate(raw)
	require.NoError(t, err)
	return p
}

func leoOperator(t *testing.T) *profile.OperatorProfile {
	return mustProfile(t, profile.OperatorProfile{
		OperatorName:    "Example Orbital",
		OperatorTypes:   []catalog.OperatorType{catalog.OperatorSatellite},
		ActivityTypes:   []catalog.ActivityType{catalog.ActivityOperation},
		OrbitRegime:     catalog.OrbitLEO,
		AltitudeKm:      catalog.Float(550),
		MassKg:          catalog.Float(550),
		HasPropulsion:   true,
		IsEUEstablished: true,
	})
}

func TestMatchesUnrestrictedApplicability(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)
	assert.True(t, m.Matches(leoOperator(t), catalog.Applicability{}))
}

func TestMatchesEnumConstraints(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)
	p := leoOperator(t)

	tests := []struct {
		name string
		a    catalog.Applicability
		want bool
	}{
		{"orbit_match", catalog.Applicability{OrbitRegimes: []catalog.OrbitRegime{catalog.OrbitLEO, catalog.OrbitMEO}}, true},
		{"orbit_mismatch", catalog.Applicability{OrbitRegimes: []catalog.OrbitRegime{catalog.OrbitGEO}}, false},
		{"operator_match", catalog.Applicability{OperatorTypes: []catalog.OperatorType{catalog.OperatorSatellite}}, true},
		{"operator_mismatch", catalog.Applicability{OperatorTypes: []catalog.OperatorType{catalog.OperatorLaunch}}, false},
		{"activity_match", catalog.Applicability{ActivityTypes: []catalog.ActivityType{catalog.ActivityOperation}}, true},
		{"activity_mismatch", catalog.Applicability{ActivityTypes: []catalog.ActivityType{catalog.ActivityReentry}}, false},
		{"size_match", catalog.Applicability{SizeCategories: []catalog.SizeCategory{catalog.SizeSME}}, true},
		{"size_mismatch", catalog.Applicability{SizeCategories: []catalog.SizeCategory{catalog.SizeMicro}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(p, tt.a))
		})
	}
}

func TestMatchesNumericThresholds(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)
	p := leoOperator(t) // 550 kg at 550 km

	assert.True(t, m.Matches(p, catalog.Applicability{MinMassKg: catalog.Float(10)}))
	assert.False(t, m.Matches(p, catalog.Applicability{MinMassKg: catalog.Float(1000)}))
	assert.True(t, m.Matches(p, catalog.Applicability{MinAltitudeKm: catalog.Float(400), MaxAltitudeKm: catalog.Float(600)}))
	assert.False(t, m.Matches(p, catalog.Applicability{MaxAltitudeKm: catalog.Float(500)}))
}

func TestMatchesMissingNumericAttribute(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)
	p := mustProfile(t, profile.OperatorProfile{
		OperatorTypes: []catalog.OperatorType{catalog.OperatorSatellite},
		ActivityTypes: []catalog.ActivityType{catalog.ActivityOperation},
		OrbitRegime:   catalog.OrbitLEO,
	})

	// A mass- or altitude-scoped constraint cannot match a mission that
	// never declared the attribute.
	assert.False(t, m.Matches(p, catalog.Applicability{MinMassKg: catalog.Float(10)}))
	assert.False(t, m.Matches(p, catalog.Applicability{MaxAltitudeKm: catalog.Float(2000)}))
}

func TestMatchesBooleanGates(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)
	p := leoOperator(t)

	assert.False(t, m.Matches(p, catalog.Applicability{ConstellationsOnly: true}))
	assert.True(t, m.Matches(p, catalog.Applicability{RequiresPropulsion: true}))
	assert.True(t, m.Matches(p, catalog.Applicability{LEOOnly: true}))
	assert.True(t, m.Matches(p, catalog.Applicability{NGSOOnly: true}))
	assert.False(t, m.Matches(p, catalog.Applicability{RemoteSensingOnly: true}))

	geo := mustProfile(t, profile.OperatorProfile{
		OperatorTypes: []catalog.OperatorType{catalog.OperatorSatellite},
		ActivityTypes: []catalog.ActivityType{catalog.ActivityOperation},
		OrbitRegime:   catalog.OrbitGEO,
	})
	assert.False(t, m.Matches(geo, catalog.Applicability{LEOOnly: true}))
	assert.False(t, m.Matches(geo, catalog.Applicability{NGSOOnly: true}))
}

func TestMatchesLicenseTypes(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	constraint := catalog.Applicability{LicenseTypes: []string{"operator_licence"}}

	// A profile with no license list stays applicable.
	assert.True(t, m.Matches(leoOperator(t), constraint))

	holder := mustProfile(t, profile.OperatorProfile{
		OperatorTypes: []catalog.OperatorType{catalog.OperatorSatellite},
		ActivityTypes: []catalog.ActivityType{catalog.ActivityOperation},
		LicenseTypes:  []string{"operator_licence"},
	})
	assert.True(t, m.Matches(holder, constraint))

	other := mustProfile(t, profile.OperatorProfile{
		OperatorTypes: []catalog.OperatorType{catalog.OperatorSatellite},
		ActivityTypes: []catalog.ActivityType{catalog.ActivityOperation},
		LicenseTypes:  []string{"spaceport_licence"},
	})
	assert.False(t, m.Matches(other, constraint))
}

func TestMatchEUScenarioLEOSatellite(t *testing.T) {
	// 550 kg LEO satellite with propulsion, EU established, SME size:
	// the full EU mandatory track applies, including the constellation-only
	// and light-regime entries staying out.
	m, err := NewMatcher()
	require.NoError(t, err)
	p := leoOperator(t)

	applicable := m.Match(p, catalog.MustLoad(catalog.FrameworkEU))
	ids := make(map[string]bool, len(applicable))
	for _, r := range applicable {
		ids[r.ID] = true
	}

	assert.True(t, ids["eu-art-6"], "authorization applies")
	assert.True(t, ids["eu-art-32"], "debris plan applies")
	assert.True(t, ids["eu-art-33"], "LEO disposal applies")
	assert.True(t, ids["eu-art-36"], "trackability applies above 10 kg")
	assert.False(t, ids["eu-art-8"], "simplified track is light-regime only")
	assert.False(t, ids["eu-art-34"], "constellation rule does not apply")
	assert.False(t, ids["eu-art-37"], "light-regime debris rule does not apply")
	assert.False(t, ids["eu-art-60"], "not a remote sensing mission")
}

func TestMatchPreservesOrderAndDedupes(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)
	p := leoOperator(t)

	c := &catalog.Catalog{
		Framework: catalog.FrameworkEU,
		Version:   "0.0.1",
		Requirements: []catalog.Requirement{
			{ID: "a", Framework: catalog.FrameworkEU, Title: "A"},
			{ID: "b", Framework: catalog.FrameworkEU, Title: "B"},
			{ID: "a", Framework: catalog.FrameworkEU, Title: "A again"},
		},
	}
	got := m.Match(p, c)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestMatchInvariantUnderCatalogReordering(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)
	p := leoOperator(t)

	base := catalog.MustLoad(catalog.FrameworkEU)
	reversed := &catalog.Catalog{Framework: base.Framework, Version: base.Version}
	for i := len(base.Requirements) - 1; i >= 0; i-- {
		reversed.Requirements = append(reversed.Requirements, base.Requirements[i])
	}

	idSet := func(reqs []catalog.Requirement) map[string]bool {
		out := make(map[string]bool, len(reqs))
		for _, r := range reqs {
			out[r.ID] = true
		}
		return out
	}
	assert.Equal(t, idSet(m.Match(p, base)), idSet(m.Match(p, reversed)))
}

func TestRelevantAgencies(t *testing.T) {
	operator := leoOperator(t)
	assert.Equal(t, []string{catalog.AgencyFCC}, RelevantAgencies(operator))

	launcher := mustProfile(t, profile.OperatorProfile{
		OperatorTypes: []catalog.OperatorType{catalog.OperatorLaunch},
		ActivityTypes: []catalog.ActivityType{catalog.ActivityLaunch},
	})
	assert.Equal(t, []string{catalog.AgencyFAA}, RelevantAgencies(launcher))

	sensing := mustProfile(t, profile.OperatorProfile{
		OperatorTypes:   []catalog.OperatorType{catalog.OperatorSatellite},
		ActivityTypes:   []catalog.ActivityType{catalog.ActivityOperation},
		IsRemoteSensing: true,
	})
	assert.Equal(t, []string{catalog.AgencyFCC, catalog.AgencyNOAA}, RelevantAgencies(sensing))
}
