package catalog

// US licensing agencies referenced by the multi-agency catalog and the
// per-agency score dimension.
const (
	AgencyFCC  = "FCC"
	AgencyFAA  = "FAA"
	AgencyNOAA = "NOAA"
)

// usCatalog builds the US multi-agency catalog. Item numbers are synthetic
// ordering keys; the Agencies field drives the per-agency score dimension
// and agency-scoped applicability.
func usCatalog() *Catalog {
	return &Catalog{
		Framework: FrameworkUS,
		Version:   "1.3.0",
		Requirements: []Requirement{
			{
				ID:          "us-fcc-25-102",
				Framework:   FrameworkUS,
				Article:     102,
				Title:       "FCC space station authorization",
				Description: "Operating a space station serving the US market requires an FCC license or grant of US market access.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					Agencies:      []string{AgencyFCC},
					ActivityTypes: []ActivityType{ActivityOperation, ActivityCommunications},
				},
				EvidenceRequired: []string{"FCC license grant", "market access petition"},
				Guidance: []string{
					"File through the FCC IBFS system; NGSO systems file under the processing round framework.",
				},
				CrossReferences: []string{"EU-ART-6"},
				Penalty:         "Unauthorized operation: forfeitures and equipment seizure under the Communications Act.",
			},
			{
				ID:          "us-fcc-25-112",
				Framework:   FrameworkUS,
				Article:     112,
				Title:       "Frequency coordination and ITU filings",
				Description: "Licensees must complete frequency coordination and maintain ITU filings for the authorized bands.",
				Category:    CategorySpectrum, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{
					Agencies: []string{AgencyFCC},
					NGSOOnly: true,
				},
				EvidenceRequired: []string{"coordination agreements", "ITU filing status"},
				Guidance: []string{
					"Track coordination status per band and keep ITU cost-recovery current.",
				},
				CrossReferences: []string{"EU-ART-90"},
			},
			{
				ID:          "us-fcc-25-114",
				Framework:   FrameworkUS,
				Article:     114,
				Title:       "Orbital debris mitigation disclosure",
				Description: "Applications must include the orbital debris mitigation disclosure covering debris release, accidental explosions, and disposal.",
				Category:    CategoryOrbitalDebris, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{Agencies: []string{AgencyFCC}},
				EvidenceRequired: []string{"debris mitigation disclosure"},
				Guidance: []string{
					"Follow the FCC disclosure rule structure; reference the IADC guidelines for methodology.",
				},
				CrossReferences: []string{"IADC-4.2", "EU-ART-32"},
			},
			{
				ID:          "us-fcc-25-283",
				Framework:   FrameworkUS,
				Article:     283,
				Title:       "Five-year LEO disposal rule",
				Description: "LEO space stations ending their mission must deorbit as soon as practicable and no more than five years after end of mission.",
				Category:    CategoryOrbitalDebris, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					Agencies: []string{AgencyFCC},
					LEOOnly:  true,
				},
				EvidenceRequired: []string{"disposal plan", "orbital lifetime analysis"},
				Guidance: []string{
					"Show disposal within five years of mission end by analysis or deorbit device.",
				},
				CrossReferences: []string{"EU-ART-33", "IADC-5.3.2"},
			},
			{
				ID:          "us-faa-450",
				Framework:   FrameworkUS,
				Article:     450,
				Title:       "FAA launch and reentry license (Part 450)",
				Description: "Launch and reentry operations require an FAA vehicle operator license under Part 450.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					Agencies:      []string{AgencyFAA},
					OperatorTypes: []OperatorType{OperatorLaunch},
					ActivityTypes: []ActivityType{ActivityLaunch, ActivityReentry},
				},
				EvidenceRequired: []string{"Part 450 license", "flight safety analysis"},
				Guidance: []string{
					"Enter pre-application consultation with FAA AST early; the safety review drives the timeline.",
				},
				CrossReferences: []string{"UK-SIA-S3"},
			},
			{
				ID:          "us-faa-450-45",
				Framework:   FrameworkUS,
				Article:     451,
				Title:       "Financial responsibility for launch",
				Description: "Licensed launch operators must demonstrate financial responsibility covering maximum probable loss.",
				Category:    CategoryInsurance, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{
					Agencies:      []string{AgencyFAA},
					OperatorTypes: []OperatorType{OperatorLaunch},
				},
				EvidenceRequired: []string{"MPL determination", "insurance certificate"},
				Guidance: []string{
					"Obtain the MPL determination and bind cover to that amount.",
				},
				CrossReferences: []string{"EU-ART-30", "UK-SIA-S36"},
			},
			{
				ID:          "us-noaa-960-4",
				Framework:   FrameworkUS,
				Article:     960,
				Title:       "NOAA private remote sensing license",
				Description: "Operating a private remote sensing space system requires a NOAA license under 15 CFR Part 960.",
				Category:    CategoryRemoteSensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					Agencies:          []string{AgencyNOAA},
					RemoteSensingOnly: true,
				},
				EvidenceRequired: []string{"NOAA license", "system capability disclosure"},
				Guidance: []string{
					"Classify the system under the NOAA tier framework to size the condition set.",
				},
				CrossReferences: []string{"EU-ART-60"},
			},
			{
				ID:          "us-noaa-960-8",
				Framework:   FrameworkUS,
				Article:     961,
				Title:       "Remote sensing data protection conditions",
				Description: "NOAA licensees must comply with data protection and shutter-control conditions attached to the license.",
				Category:    CategoryCybersecurity, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{
					Agencies:          []string{AgencyNOAA},
					RemoteSensingOnly: true,
				},
				Guidance: []string{
					"Implement the license's data protection plan and test the shutter-control procedure.",
				},
				CrossReferences: []string{"EU-ART-54"},
			},
			{
				ID:          "us-state-registration",
				Framework:   FrameworkUS,
				Article:     970,
				Title:       "State Department registration submission",
				Description: "US space objects are registered with the UN through the State Department; operators supply the registration data.",
				Category:    CategoryRegistration, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMinor,
				Guidance: []string{
					"Provide orbital parameters and function to the State Department after launch.",
				},
				CrossReferences: []string{"COPUOS-LTS-A.2"},
			},
		},
	}
}
