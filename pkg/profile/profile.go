// Package profile defines the operator mission profile consumed by the
// matching and assessment engines, and the validation that turns raw caller
// input into a profile with derived fields populated.
package profile

import (
	"errors"
	"fmt"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
)

// Validation failure reasons. These are caller bugs, not operational
// failures: a profile missing its required classification fields must halt
// the assessment before any scoring runs.
var (
	ErrMissingOperatorType = errors.New("missing_operator_type")
	ErrMissingActivityType = errors.New("missing_activity_type")
)

// ValidationError wraps the reason a raw profile was rejected.
type ValidationError struct {
	Reason error
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid operator profile: %s (%v)", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// SatelliteCategory is the mass-derived class of the primary spacecraft.
type SatelliteCategory string

const (
	SatellitePico  SatelliteCategory = "pico"  // < 1 kg
	SatelliteNano  SatelliteCategory = "nano"  // 1 – 10 kg
	SatelliteMicro SatelliteCategory = "micro" // 10 – 100 kg
	SatelliteSmall SatelliteCategory = "small" // 100 – 500 kg
	SatelliteLarge SatelliteCategory = "large" // >= 500 kg
)

// OperatorProfile is the mutable per-assessment input describing one
// operator's mission. Derived fields (IsNGSO, SatelliteCategory,
// IsLightRegime) are computed once at validation time, never re-derived ad
// hoc downstream.
type OperatorProfile struct {
	OperatorName  string                 `json:"operator_name,omitempty" yaml:"operator_name"`
	OperatorTypes []catalog.OperatorType `json:"operator_types" yaml:"operator_types"`
	ActivityTypes []catalog.ActivityType `json:"activity_types" yaml:"activity_types"`

	OrbitRegime catalog.OrbitRegime `json:"orbit_regime,omitempty" yaml:"orbit_regime"`
	AltitudeKm  *float64            `json:"altitude_km,omitempty" yaml:"altitude_km"`
	MassKg      *float64            `json:"mass_kg,omitempty" yaml:"mass_kg"`

	HasPropulsion     bool `json:"has_propulsion" yaml:"has_propulsion"`
	Maneuverable      bool `json:"maneuverable" yaml:"maneuverable"`
	IsConstellation   bool `json:"is_constellation" yaml:"is_constellation"`
	ConstellationSize int  `json:"constellation_size,omitempty" yaml:"constellation_size"`

	SizeCategory catalog.SizeCategory `json:"size_category,omitempty" yaml:"size_category"`

	IsEUEstablished bool     `json:"is_eu_established" yaml:"is_eu_established"`
	IsUSEntity      bool     `json:"is_us_entity" yaml:"is_us_entity"`
	IsUKLicensee    bool     `json:"is_uk_licensee" yaml:"is_uk_licensee"`
	LicenseTypes    []string `json:"license_types,omitempty" yaml:"license_types"`

	IsRemoteSensing bool `json:"is_remote_sensing" yaml:"is_remote_sensing"`

	// Derived at validation time.
	IsNGSO            bool              `json:"is_ngso" yaml:"-"`
	SatelliteCategory SatelliteCategory `json:"satellite_category,omitempty" yaml:"-"`
	IsLightRegime     bool              `json:"is_light_regime" yaml:"-"`
}

// Validate checks required classification fields, fills documented
// defaults, and computes derived fields. It returns a new profile; the
// input is not mutated.
//
// Defaults: IsUSEntity=true when no establishment flag is set at all,
// IsConstellation=false, SizeCategory=sme when absent.
func Validate(raw OperatorProfile) (*OperatorProfile, error) {
	if len(raw.OperatorTypes) == 0 {
		return nil, &ValidationError{Reason: ErrMissingOperatorType, Field: "operator_types"}
	}
	if len(raw.ActivityTypes) == 0 {
		return nil, &ValidationError{Reason: ErrMissingActivityType, Field: "activity_types"}
	}

	p := raw

	if !p.IsEUEstablished && !p.IsUSEntity && !p.IsUKLicensee {
		p.IsUSEntity = true
	}
	if p.SizeCategory == "" {
		p.SizeCategory = catalog.SizeSME
	}
	if !p.IsConstellation {
		p.ConstellationSize = 0
	}

	p.IsNGSO = p.OrbitRegime != "" && p.OrbitRegime != catalog.OrbitGEO
	p.SatelliteCategory = categorizeMass(p.MassKg)
	p.IsLightRegime = p.SizeCategory == catalog.SizeMicro || p.SizeCategory == catalog.SizeResearch

	if p.IsRemoteSensing {
		p.ActivityTypes = ensureActivity(p.ActivityTypes, catalog.ActivityRemoteSensing)
	}

	return &p, nil
}

// HasOperatorType reports whether the profile carries the given tag.
func (p *OperatorProfile) HasOperatorType(t catalog.OperatorType) bool {
	for _, ot := range p.OperatorTypes {
		if ot == t {
			return true
		}
	}
	return false
}

// HasActivityType reports whether the profile carries the given tag.
func (p *OperatorProfile) HasActivityType(t catalog.ActivityType) bool {
	for _, at := range p.ActivityTypes {
		if at == t {
			return true
		}
	}
	return false
}

// HasLicenseType reports whether the profile holds or seeks the license.
func (p *OperatorProfile) HasLicenseType(lt string) bool {
	for _, l := range p.LicenseTypes {
		if l == lt {
			return true
		}
	}
	return false
}

// CELInput exposes the profile as the flat map bound to the "profile"
// variable of CEL applicability expressions.
func (p *OperatorProfile) CELInput() map[string]any {
	operatorTypes := make([]string, len(p.OperatorTypes))
	for i, t := range p.OperatorTypes {
		operatorTypes[i] = string(t)
	}
	activityTypes := make([]string, len(p.ActivityTypes))
	for i, t := range p.ActivityTypes {
		activityTypes[i] = string(t)
	}

	in := map[string]any{
		"operator_types":     operatorTypes,
		"activity_types":     activityTypes,
		"orbit_regime":       string(p.OrbitRegime),
		"has_propulsion":     p.HasPropulsion,
		"maneuverable":       p.Maneuverable,
		"is_constellation":   p.IsConstellation,
		"constellation_size": p.ConstellationSize,
		"size_category":      string(p.SizeCategory),
		"is_eu_established":  p.IsEUEstablished,
		"is_us_entity":       p.IsUSEntity,
		"is_uk_licensee":     p.IsUKLicensee,
		"is_remote_sensing":  p.IsRemoteSensing,
		"is_ngso":            p.IsNGSO,
		"satellite_category": string(p.SatelliteCategory),
		"is_light_regime":    p.IsLightRegime,
		"mass_kg":            0.0,
		"altitude_km":        0.0,
	}
	if p.MassKg != nil {
		in["mass_kg"] = *p.MassKg
	}
	if p.AltitudeKm != nil {
		in["altitude_km"] = *p.AltitudeKm
	}
	return in
}

func categorizeMass(massKg *float64) SatelliteCategory {
	if massKg == nil {
		return ""
	}
	switch m := *massKg; {
	case m < 1:
		return SatellitePico
	case m < 10:
		return SatelliteNano
	case m < 100:
		return SatelliteMicro
	case m < 500:
		return SatelliteSmall
	default:
		return SatelliteLarge
	}
}

func ensureActivity(list []catalog.ActivityType, t catalog.ActivityType) []catalog.ActivityType {
	for _, at := range list {
		if at == t {
			return list
		}
	}
	return append(list, t)
}
