package catalog

// ukCatalog builds the UK Space Industry Act 2018 catalog. Item numbers are
// section numbers; LicenseTypes constrain entries to the licence classes an
// operator holds or is applying for.
func ukCatalog() *Catalog {
	return &Catalog{
		Framework: FrameworkUK,
		Version:   "1.1.0",
		Requirements: []Requirement{
			{
				ID:          "uk-sia-s3",
				Framework:   FrameworkUK,
				Article:     3,
				Title:       "Operator licence requirement",
				Description: "Spaceflight activities carried out from the UK, or by UK entities, require an operator licence from the regulator.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					LicenseTypes: []string{"operator_licence", "launch_licence"},
				},
				EvidenceRequired: []string{"licence application", "CAA grant decision"},
				Guidance: []string{
					"Apply to the CAA for the operator licence class matching the activity.",
				},
				CrossReferences: []string{"EU-ART-6", "COPUOS-LTS-A.1"},
				Penalty:         "Unlicensed spaceflight activity is a criminal offence under the Act.",
			},
			{
				ID:          "uk-sia-s9",
				Framework:   FrameworkUK,
				Article:     9,
				Title:       "Spaceport licence",
				Description: "Operating a spaceport in the UK requires a spaceport licence.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					OperatorTypes: []OperatorType{OperatorSpaceport},
					LicenseTypes:  []string{"spaceport_licence"},
				},
				EvidenceRequired: []string{"spaceport licence application"},
				Guidance: []string{
					"Engage the CAA pre-application service before site selection is final.",
				},
			},
			{
				ID:          "uk-sia-s12",
				Framework:   FrameworkUK,
				Article:     12,
				Title:       "Safety case for licensed activities",
				Description: "Licence applicants must submit a safety case assessing risks to persons and property and showing they are as low as reasonably practicable.",
				Category:    CategorySafety, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				EvidenceRequired: []string{"safety case", "ALARP demonstration"},
				Guidance: []string{
					"Build the safety case on the CAA's prescribed hazard assessment methodology.",
				},
				CrossReferences: []string{"EU-ART-14", "ISO-24113:6.3.3"},
			},
			{
				ID:          "uk-sia-s18",
				Framework:   FrameworkUK,
				Article:     18,
				Title:       "Environmental objectives assessment",
				Description: "Applicants must submit an assessment of environmental effects against the regulator's environmental objectives.",
				Category:    CategoryEnvironmental, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMinor,
				EvidenceRequired: []string{"environmental effects assessment"},
				Guidance: []string{
					"Scope the assessment with the CAA's environmental objectives guidance.",
				},
			},
			{
				ID:          "uk-sia-s20",
				Framework:   FrameworkUK,
				Article:     20,
				Title:       "Occurrence and incident reporting",
				Description: "Licensees must report safety occurrences and security incidents to the regulator under the mandatory occurrence reporting scheme.",
				Category:    CategoryIncidentReporting, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				EvidenceRequired: []string{"occurrence reporting procedure"},
				Guidance: []string{
					"Integrate occurrence reporting into mission operations procedures.",
				},
				CrossReferences: []string{"EU-ART-56"},
			},
			{
				ID:          "uk-sia-s25",
				Framework:   FrameworkUK,
				Article:     25,
				Title:       "Security regulations compliance",
				Description: "Licensees must comply with security regulations covering cyber and physical protection of spaceflight assets.",
				Category:    CategoryCybersecurity, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				EvidenceRequired: []string{"security programme"},
				Guidance: []string{
					"Map the security programme to the CAA security regulations annex.",
				},
				CrossReferences: []string{"EU-ART-54", "NIS2-ART-21"},
			},
			{
				ID:          "uk-sia-s26",
				Framework:   FrameworkUK,
				Article:     26,
				Title:       "Inspection and monitoring cooperation",
				Description: "Licensees must permit inspections and provide information required for regulatory monitoring.",
				Category:    CategorySupervision, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Guidance: []string{
					"Maintain an inspection readiness file and a named regulatory liaison.",
				},
				CrossReferences: []string{"EU-ART-105"},
			},
			{
				ID:          "uk-sia-s36",
				Framework:   FrameworkUK,
				Article:     36,
				Title:       "Insurance requirement",
				Description: "Licensees must hold the insurance required as a condition of the licence.",
				Category:    CategoryInsurance, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				EvidenceRequired: []string{"insurance certificate"},
				Guidance: []string{
					"Carry the minimum third-party cover set in the licence condition.",
				},
				CrossReferences: []string{"EU-ART-30"},
			},
			{
				ID:          "uk-sia-s38",
				Framework:   FrameworkUK,
				Article:     38,
				Title:       "Liability cap election",
				Description: "Operators may elect the statutory cap on third-party liability where the licence so provides.",
				Category:    CategoryInsurance, Binding: BindingRecommended,
				ComplianceType: ComplianceRecommended, Severity: SeverityMinor,
				Guidance: []string{
					"Confirm the cap amount in the licence and align cover with it.",
				},
			},
			{
				ID:          "uk-sia-s61",
				Framework:   FrameworkUK,
				Article:     61,
				Title:       "Registration of launches and space objects",
				Description: "Licensed launches and space objects must be notified for entry in the UK registry.",
				Category:    CategoryRegistration, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMinor,
				Guidance: []string{
					"File registry notifications alongside the post-launch report.",
				},
				CrossReferences: []string{"EU-ART-16", "COPUOS-LTS-A.2"},
			},
		},
	}
}
