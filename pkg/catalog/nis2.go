package catalog

// nis2Catalog builds the NIS2 scoping catalog for the space sector. Space is
// an Annex I sector; entries only apply to operators above the
// micro/small-entity threshold, which the size-category constraint encodes.
func nis2Catalog() *Catalog {
	return &Catalog{
		Framework: FrameworkNIS2,
		Version:   "1.0.0",
		Requirements: []Requirement{
			{
				ID:          "nis2-art-20",
				Framework:   FrameworkNIS2,
				Article:     20,
				Title:       "Management body accountability",
				Description: "Management bodies of essential entities must approve cybersecurity risk measures and oversee their implementation.",
				Category:    CategoryCybersecurity, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{
					SizeCategories: []SizeCategory{SizeLarge, SizeSME},
				},
				EvidenceRequired: []string{"board approval minutes", "training records"},
				Guidance: []string{
					"Put cybersecurity risk approval on the management body agenda with documented sign-off.",
				},
			},
			{
				ID:          "nis2-art-21",
				Framework:   FrameworkNIS2,
				Article:     21,
				Title:       "Cybersecurity risk management measures",
				Description: "Essential entities in the space sector must take proportionate technical and organizational measures across the Article 21 measure list.",
				Category:    CategoryCybersecurity, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					SizeCategories: []SizeCategory{SizeLarge, SizeSME},
				},
				EvidenceRequired: []string{"risk analysis", "measure implementation evidence"},
				Guidance: []string{
					"Map existing controls to the ten Article 21 measure families and close gaps by risk.",
				},
				CrossReferences: []string{"EU-ART-54", "UK-SIA-S25"},
				Penalty:         "Fines up to 10M EUR or 2% of worldwide annual turnover, whichever is higher.",
			},
			{
				ID:          "nis2-art-23",
				Framework:   FrameworkNIS2,
				Article:     23,
				Title:       "Significant incident notification",
				Description: "Significant incidents must be notified: early warning within 24 hours, incident notification within 72 hours, final report within one month.",
				Category:    CategoryIncidentReporting, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{
					SizeCategories: []SizeCategory{SizeLarge, SizeSME},
				},
				EvidenceRequired: []string{"notification procedure", "CSIRT submissions"},
				Guidance: []string{
					"Automate the 24h early warning from incident triage so the deadline never depends on manual escalation.",
				},
				CrossReferences: []string{"EU-ART-56"},
			},
			{
				ID:          "nis2-art-24",
				Framework:   FrameworkNIS2,
				Article:     24,
				Title:       "Use of certified ICT products",
				Description: "Member states may require essential entities to use ICT products certified under EU cybersecurity certification schemes.",
				Category:    CategoryCybersecurity, Binding: BindingRecommended,
				ComplianceType: ComplianceRecommended, Severity: SeverityMinor,
				Applicability: Applicability{
					SizeCategories: []SizeCategory{SizeLarge, SizeSME},
				},
				Guidance: []string{
					"Prefer EUCC-certified components for ground segment procurement.",
				},
			},
			{
				ID:          "nis2-art-29",
				Framework:   FrameworkNIS2,
				Article:     29,
				Title:       "Cybersecurity information sharing",
				Description: "Entities should exchange relevant cyber threat information within trusted sharing communities.",
				Category:    CategoryCybersecurity, Binding: BindingRecommended,
				ComplianceType: ComplianceRecommended, Severity: SeverityMinor,
				Applicability: Applicability{
					SizeCategories: []SizeCategory{SizeLarge, SizeSME},
				},
				Guidance: []string{
					"Join the sectoral ISAC and wire indicators into detection tooling.",
				},
			},
		},
	}
}
