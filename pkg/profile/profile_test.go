package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
)

func validRaw() OperatorProfile {
	return OperatorProfile{
		OperatorName:  "Orbital Ventures",
		OperatorTypes: []catalog.OperatorType{catalog.OperatorSatellite},
		ActivityTypes: []catalog.ActivityType{catalog.ActivityOperation},
		OrbitRegime:   catalog.OrbitLEO,
	}
}

func TestValidateRejectsMissingClassification(t *testing.T) {
	raw := validRaw()
	raw.OperatorTypes = nil
	_, err := Validate(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingOperatorType))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "operator_types", verr.Field)

	raw = validRaw()
	raw.ActivityTypes = nil
	_, err = Validate(raw)
	assert.True(t, errors.Is(err, ErrMissingActivityType))
}

func TestValidateDefaults(t *testing.T) {
	p, err := Validate(validRaw())
	require.NoError(t, err)

	// No establishment flag at all defaults to US entity.
	assert.True(t, p.IsUSEntity)
	assert.Equal(t, catalog.SizeSME, p.SizeCategory)
	assert.False(t, p.IsLightRegime)
}

func TestValidateKeepsExplicitEstablishment(t *testing.T) {
	raw := validRaw()
	raw.IsEUEstablished = true
	p, err := Validate(raw)
	require.NoError(t, err)
	assert.True(t, p.IsEUEstablished)
	assert.False(t, p.IsUSEntity)
}

func TestValidateDerivedFields(t *testing.T) {
	raw := validRaw()
	raw.MassKg = catalog.Float(550)
	p, err := Validate(raw)
	require.NoError(t, err)
	assert.True(t, p.IsNGSO)
	assert.Equal(t, SatelliteLarge, p.SatelliteCategory)

	raw.OrbitRegime = catalog.OrbitGEO
	p, err = Validate(raw)
	require.NoError(t, err)
	assert.False(t, p.IsNGSO)
}

func TestValidateLightRegime(t *testing.T) {
	for _, size := range []catalog.SizeCategory{catalog.SizeMicro, catalog.SizeResearch} {
		raw := validRaw()
		raw.SizeCategory = size
		p, err := Validate(raw)
		require.NoError(t, err)
		assert.True(t, p.IsLightRegime, "size %s", size)
	}

	raw := validRaw()
	raw.SizeCategory = catalog.SizeLarge
	p, err := Validate(raw)
	require.NoError(t, err)
	assert.False(t, p.IsLightRegime)
}

func TestValidateRemoteSensingImpliesActivity(t *testing.T) {
	raw := validRaw()
	raw.IsRemoteSensing = true
	p, err := Validate(raw)
	require.NoError(t, err)
	assert.True(t, p.HasActivityType(catalog.ActivityRemoteSensing))
}

func TestValidateClearsConstellationSize(t *testing.T) {
	raw := validRaw()
	raw.IsConstellation = false
	raw.ConstellationSize = 48
	p, err := Validate(raw)
	require.NoError(t, err)
	assert.Zero(t, p.ConstellationSize)
}

func TestSatelliteCategoryBands(t *testing.T) {
	tests := []struct {
		mass float64
		want SatelliteCategory
	}{
		{0.5, SatellitePico},
		{1, SatelliteNano},
		{9.9, SatelliteNano},
		{10, SatelliteMicro},
		{99, SatelliteMicro},
		{100, SatelliteSmall},
		{499, SatelliteSmall},
		{500, SatelliteLarge},
		{8000, SatelliteLarge},
	}
	for _, tt := range tests {
		raw := validRaw()
		raw.MassKg = catalog.Float(tt.mass)
		p, err := Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.SatelliteCategory, "mass %.1f", tt.mass)
	}
}

func TestCELInput(t *testing.T) {
	raw := validRaw()
	raw.MassKg = catalog.Float(250)
	raw.AltitudeKm = catalog.Float(550)
	p, err := Validate(raw)
	require.NoError(t, err)

	in := p.CELInput()
	assert.Equal(t, 250.0, in["mass_kg"])
	assert.Equal(t, 550.0, in["altitude_km"])
	assert.Equal(t, "LEO", in["orbit_regime"])
	assert.Equal(t, []string{"satellite_operator"}, in["operator_types"])

	// Missing numerics are exposed as zero so expressions never nil-deref.
	p2, err := Validate(validRaw())
	require.NoError(t, err)
	assert.Equal(t, 0.0, p2.CELInput()["mass_kg"])
}
