package catalog

// internationalCatalog builds the COPUOS / IADC / ISO 24113 guideline
// catalog. Nothing here is directly enforceable; entries carry guidance or
// best-practice binding and exist mainly as cross-reference targets and for
// voluntary conformance scoring.
func internationalCatalog() *Catalog {
	return &Catalog{
		Framework: FrameworkInternational,
		Version:   "1.0.1",
		Requirements: []Requirement{
			{
				ID:          "intl-copuos-a1",
				Framework:   FrameworkInternational,
				Article:     1,
				Title:       "National authorization of space activities (COPUOS LTS A.1)",
				Description: "States should ensure national space activities are authorized and supervised consistent with the Outer Space Treaty.",
				Category:    CategoryLicensing, Binding: BindingGuidance,
				ComplianceType: ComplianceRecommended, Severity: SeverityMajor,
				Guidance: []string{
					"Confirm the mission is covered by a national authorization regime before launch.",
				},
				CrossReferences: []string{"EU-ART-6", "UK-SIA-S3"},
			},
			{
				ID:          "intl-copuos-a2",
				Framework:   FrameworkInternational,
				Article:     2,
				Title:       "Registration of space objects (COPUOS LTS A.2)",
				Description: "Space objects should be registered with the UN register via the state of registry.",
				Category:    CategoryRegistration, Binding: BindingGuidance,
				ComplianceType: ComplianceRecommended, Severity: SeverityMinor,
				Guidance: []string{
					"Verify the state of registry files the UN registration for the mission.",
				},
				CrossReferences: []string{"EU-ART-16"},
			},
			{
				ID:          "intl-copuos-b1",
				Framework:   FrameworkInternational,
				Article:     5,
				Title:       "Sharing of orbital data (COPUOS LTS B.1)",
				Description: "Operators should share ephemeris and maneuver plans to support conjunction assessment.",
				Category:    CategoryTrafficManagement, Binding: BindingGuidance,
				ComplianceType: ComplianceRecommended, Severity: SeverityMajor,
				Guidance: []string{
					"Publish ephemerides to a recognized conjunction assessment service.",
				},
				CrossReferences: []string{"EU-ART-36"},
			},
			{
				ID:          "intl-iadc-42",
				Framework:   FrameworkInternational,
				Article:     10,
				Title:       "Debris mitigation plan (IADC 4.2)",
				Description: "Each mission should document a debris mitigation plan addressing release prevention, break-up risk, and disposal.",
				Category:    CategoryOrbitalDebris, Binding: BindingBestPractice,
				ComplianceType: ComplianceRecommended, Severity: SeverityCritical,
				Guidance: []string{
					"Structure the plan along the four IADC mitigation categories.",
				},
				CrossReferences: []string{"EU-ART-32", "US-FCC-25.114"},
			},
			{
				ID:          "intl-iadc-44",
				Framework:   FrameworkInternational,
				Article:     11,
				Title:       "Collision avoidance in crowded regimes (IADC 4.4)",
				Description: "Maneuverable spacecraft in crowded orbital regimes should perform conjunction screening and avoidance maneuvers.",
				Category:    CategoryOrbitalDebris, Binding: BindingBestPractice,
				ComplianceType: ComplianceRecommended, Severity: SeverityMajor,
				Applicability: Applicability{RequiresPropulsion: true},
				Guidance: []string{
					"Screen conjunctions daily and define maneuver thresholds by collision probability.",
				},
				CrossReferences: []string{"EU-ART-34"},
			},
			{
				ID:          "intl-iadc-532",
				Framework:   FrameworkInternational,
				Article:     12,
				Title:       "LEO post-mission disposal (IADC 5.3.2)",
				Description: "LEO spacecraft should limit post-mission orbital lifetime per the IADC disposal guideline.",
				Category:    CategoryOrbitalDebris, Binding: BindingBestPractice,
				ComplianceType: ComplianceRecommended, Severity: SeverityCritical,
				Applicability: Applicability{LEOOnly: true},
				Guidance: []string{
					"Plan disposal so residual lifetime stays within the guideline limit.",
				},
				CrossReferences: []string{"EU-ART-33", "US-FCC-25.283"},
			},
			{
				ID:          "intl-iso-24113-61",
				Framework:   FrameworkInternational,
				Article:     20,
				Title:       "Debris release prevention (ISO 24113 6.1)",
				Description: "Spacecraft and orbital stages shall be designed not to release debris during normal operations.",
				Category:    CategoryOrbitalDebris, Binding: BindingBestPractice,
				ComplianceType: ComplianceRecommended, Severity: SeverityMajor,
				Guidance: []string{
					"Show by design review that no operational debris is released.",
				},
				CrossReferences: []string{"EU-ART-32"},
			},
			{
				ID:          "intl-iso-24113-633",
				Framework:   FrameworkInternational,
				Article:     21,
				Title:       "Re-entry casualty risk (ISO 24113 6.3.3)",
				Description: "Uncontrolled re-entry casualty risk shall be assessed and limited per the standard's threshold.",
				Category:    CategorySafety, Binding: BindingBestPractice,
				ComplianceType: ComplianceRecommended, Severity: SeverityCritical,
				Applicability: Applicability{MinMassKg: Float(100)},
				Guidance: []string{
					"Run a demise analysis; move to controlled re-entry if the casualty threshold is exceeded.",
				},
				CrossReferences: []string{"EU-ART-33", "UK-SIA-S12"},
			},
			{
				ID:          "intl-iso-24113-52",
				Framework:   FrameworkInternational,
				Article:     22,
				Title:       "Debris mitigation in project reviews (ISO 24113 5.2)",
				Description: "Debris mitigation compliance should be assessed at each project milestone review.",
				Category:    CategorySafety, Binding: BindingBestPractice,
				ComplianceType: ComplianceRecommended, Severity: SeverityMinor,
				Guidance: []string{
					"Add debris mitigation gates to PDR and CDR checklists.",
				},
				CrossReferences: []string{"EU-ART-14"},
			},
		},
	}
}
