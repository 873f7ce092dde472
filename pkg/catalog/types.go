// Package catalog defines the static, versioned requirement catalogs for
// every regulatory framework the engine understands.
//
// Catalogs are authored once per release, loaded once per process, and never
// mutated at runtime. Everything downstream (matching, scoring, risk, gap
// analysis) treats them as immutable input.
package catalog

// Framework identifies one regulatory framework.
type Framework string

const (
	FrameworkEU            Framework = "EU_SPACE_ACT"
	FrameworkInternational Framework = "INTL_GUIDELINES" // COPUOS / IADC / ISO 24113
	FrameworkUK            Framework = "UK_SPACE_INDUSTRY_ACT"
	FrameworkUS            Framework = "US_MULTI_AGENCY"
	FrameworkNIS2          Framework = "EU_NIS2"
)

// AllFrameworks returns every framework with a built-in catalog.
func AllFrameworks() []Framework {
	return []Framework{
		FrameworkEU, FrameworkInternational, FrameworkUK,
		FrameworkUS, FrameworkNIS2,
	}
}

// BindingLevel classifies an obligation's legal force.
type BindingLevel string

const (
	BindingMandatory    BindingLevel = "MANDATORY"
	BindingRecommended  BindingLevel = "RECOMMENDED"
	BindingBestPractice BindingLevel = "BEST_PRACTICE"
	BindingGuidance     BindingLevel = "GUIDANCE"
)

// Severity is the weight attached to a requirement for scoring and priority.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityMajor    Severity = "MAJOR"
	SeverityMinor    Severity = "MINOR"
)

// Category is the framework-specific compliance domain of a requirement.
type Category string

const (
	CategoryLicensing         Category = "licensing"
	CategoryRegistration      Category = "registration"
	CategoryOrbitalDebris     Category = "orbital_debris"
	CategorySpectrum          Category = "spectrum"
	CategorySafety            Category = "safety"
	CategoryInsurance         Category = "insurance"
	CategoryCybersecurity     Category = "cybersecurity"
	CategoryEnvironmental     Category = "environmental"
	CategoryRemoteSensing     Category = "remote_sensing"
	CategorySupervision       Category = "supervision"
	CategoryTrafficManagement Category = "traffic_management"
	CategoryIncidentReporting Category = "incident_reporting"
)

// ComplianceType is the raw compliance-track marker carried by catalog
// entries. Authoring vocabularies differ per framework, so consumers go
// through NormalizeComplianceType.
type ComplianceType string

const (
	ComplianceMandatory             ComplianceType = "mandatory"
	ComplianceConditionalSimplified ComplianceType = "conditional_simplified"
	ComplianceRecommended           ComplianceType = "recommended"
)

// NormalizeComplianceType collapses authoring synonyms into the three
// canonical compliance types. Unknown markers normalize to recommended.
func NormalizeComplianceType(raw ComplianceType) ComplianceType {
	switch raw {
	case ComplianceMandatory, "obligation", "required", "shall":
		return ComplianceMandatory
	case ComplianceConditionalSimplified, "conditional", "simplified", "light_regime":
		return ComplianceConditionalSimplified
	default:
		return ComplianceRecommended
	}
}

// OrbitRegime classifies the orbital slot of a mission.
type OrbitRegime string

const (
	OrbitLEO OrbitRegime = "LEO"
	OrbitMEO OrbitRegime = "MEO"
	OrbitGEO OrbitRegime = "GEO"
	OrbitHEO OrbitRegime = "HEO"
)

// OperatorType tags the kind of organization running the mission.
type OperatorType string

const (
	OperatorSatellite        OperatorType = "satellite_operator"
	OperatorLaunch           OperatorType = "launch_provider"
	OperatorGroundSegment    OperatorType = "ground_station_operator"
	OperatorRemoteSensing    OperatorType = "remote_sensing_operator"
	OperatorInOrbitServicing OperatorType = "in_orbit_servicer"
	OperatorSpaceport        OperatorType = "spaceport_operator"
)

// ActivityType tags a regulated space activity.
type ActivityType string

const (
	ActivityLaunch           ActivityType = "launch"
	ActivityOperation        ActivityType = "satellite_operation"
	ActivityRemoteSensing    ActivityType = "remote_sensing"
	ActivityCommunications   ActivityType = "communications"
	ActivityReentry          ActivityType = "reentry"
	ActivityInOrbitServicing ActivityType = "in_orbit_servicing"
)

// SizeCategory is the operator size / regime classification.
type SizeCategory string

const (
	SizeLarge    SizeCategory = "large"
	SizeSME      SizeCategory = "sme"
	SizeMicro    SizeCategory = "micro"
	SizeResearch SizeCategory = "research"
)

// Applicability is the declarative predicate deciding whether a requirement
// applies to a given operator profile. Every populated field is an
// AND-conjunct; an absent field imposes no restriction.
type Applicability struct {
	OrbitRegimes   []OrbitRegime  `json:"orbit_regimes,omitempty"`
	OperatorTypes  []OperatorType `json:"operator_types,omitempty"`
	ActivityTypes  []ActivityType `json:"activity_types,omitempty"`
	SizeCategories []SizeCategory `json:"size_categories,omitempty"`

	MinMassKg     *float64 `json:"min_mass_kg,omitempty"`
	MinAltitudeKm *float64 `json:"min_altitude_km,omitempty"`
	MaxAltitudeKm *float64 `json:"max_altitude_km,omitempty"`

	ConstellationsOnly bool `json:"constellations_only,omitempty"`
	RequiresPropulsion bool `json:"requires_propulsion,omitempty"`
	LEOOnly            bool `json:"leo_only,omitempty"`
	NGSOOnly           bool `json:"ngso_only,omitempty"`
	RemoteSensingOnly  bool `json:"remote_sensing_only,omitempty"`

	Agencies     []string `json:"agencies,omitempty"`
	LicenseTypes []string `json:"license_types,omitempty"`

	// Expression is an optional CEL refinement evaluated against the
	// profile when the declarative fields are not expressive enough.
	Expression string `json:"expression,omitempty"`
}

// IsUnrestricted reports whether the predicate has no constraints at all,
// i.e. the requirement applies to every profile.
func (a Applicability) IsUnrestricted() bool {
	return len(a.OrbitRegimes) == 0 && len(a.OperatorTypes) == 0 &&
		len(a.ActivityTypes) == 0 && len(a.SizeCategories) == 0 &&
		a.MinMassKg == nil && a.MinAltitudeKm == nil && a.MaxAltitudeKm == nil &&
		!a.ConstellationsOnly && !a.RequiresPropulsion && !a.LEOOnly &&
		!a.NGSOOnly && !a.RemoteSensingOnly &&
		len(a.Agencies) == 0 && len(a.LicenseTypes) == 0 && a.Expression == ""
}

// Requirement is one obligation or guideline in a framework catalog.
// Immutable after authoring; identified by a stable ID.
type Requirement struct {
	ID          string    `json:"id"`
	Framework   Framework `json:"framework"`
	Article     int       `json:"article,omitempty"` // numeric article/item number for module bucketing
	Title       string    `json:"title"`
	Description string    `json:"description"`

	Category       Category       `json:"category"`
	Binding        BindingLevel   `json:"binding"`
	ComplianceType ComplianceType `json:"compliance_type,omitempty"`
	Severity       Severity       `json:"severity"`

	Applicability Applicability `json:"applicability"`

	EvidenceRequired []string `json:"evidence_required,omitempty"`
	Guidance         []string `json:"guidance,omitempty"` // first entry is the default recommendation
	CrossReferences  []string `json:"cross_references,omitempty"`
	Penalty          string   `json:"penalty,omitempty"`
}

// Catalog is the complete, versioned requirement set for one framework.
type Catalog struct {
	Framework    Framework     `json:"framework"`
	Version      string        `json:"version"` // semver
	Requirements []Requirement `json:"requirements"`
}

// ByID returns the requirement with the given ID, if present.
func (c *Catalog) ByID(id string) (Requirement, bool) {
	for _, r := range c.Requirements {
		if r.ID == id {
			return r, true
		}
	}
	return Requirement{}, false
}

// Float is a convenience for authoring optional numeric thresholds inline.
func Float(v float64) *float64 { return &v }
