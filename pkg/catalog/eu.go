package catalog

// euCatalog builds the EU space-activities regulation catalog.
//
// Article numbering follows the proposal structure: authorization (Art.
// 6-16), safety and debris mitigation (Art. 32-39), resilience (Art.
// 54-60), environmental sustainability (Art. 75-82), supervision (Art.
// 105-108). Entries outside those bands are standalone obligations.
func euCatalog() *Catalog {
	return &Catalog{
		Framework: FrameworkEU,
		Version:   "1.2.0",
		Requirements: []Requirement{
			{
				ID:          "eu-art-6",
				Framework:   FrameworkEU,
				Article:     6,
				Title:       "Prior authorization of space activities",
				Description: "No operator established in the Union may carry out a space activity without prior authorization by the competent authority.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				EvidenceRequired: []string{"authorization application", "competent authority decision"},
				Guidance: []string{
					"Submit an authorization application to the competent authority of the member state of establishment before any launch or operation.",
					"Map every planned activity to the authorization categories of the regulation.",
				},
				CrossReferences: []string{"UK-SIA-S3", "US-FCC-25.102", "COPUOS-LTS-A.1"},
				Penalty:         "Operating without authorization: administrative fines up to 2% of worldwide annual turnover.",
			},
			{
				ID:          "eu-art-8",
				Framework:   FrameworkEU,
				Article:     8,
				Title:       "Simplified authorization for small and research operators",
				Description: "Micro enterprises and research institutions may apply under the simplified (light) authorization track with reduced documentary requirements.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceConditionalSimplified, Severity: SeverityMajor,
				Applicability: Applicability{
					SizeCategories: []SizeCategory{SizeMicro, SizeResearch},
				},
				EvidenceRequired: []string{"size-category declaration", "simplified application"},
				Guidance: []string{
					"Declare the size category with supporting accounts and apply through the simplified track.",
				},
				CrossReferences: []string{"UK-SIA-S3"},
			},
			{
				ID:          "eu-art-11",
				Framework:   FrameworkEU,
				Article:     11,
				Title:       "Financial capability of the operator",
				Description: "The operator shall demonstrate financial resources sufficient to conduct the activity and to meet liability obligations.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				EvidenceRequired: []string{"audited accounts", "liability coverage plan"},
				Guidance: []string{
					"Prepare a financial capability file covering the full mission lifetime including disposal.",
				},
				CrossReferences: []string{"UK-SIA-S36"},
			},
			{
				ID:          "eu-art-14",
				Framework:   FrameworkEU,
				Article:     14,
				Title:       "Technical capability of the operator",
				Description: "The operator shall demonstrate the technical competence and operational procedures required for safe conduct of the activity.",
				Category:    CategoryLicensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				EvidenceRequired: []string{"mission design documentation", "operations staffing plan"},
				Guidance: []string{
					"Compile the technical file: mission design, failure analysis, and operator qualifications.",
				},
				CrossReferences: []string{"UK-SIA-S12", "ISO-24113:5.2"},
			},
			{
				ID:          "eu-art-16",
				Framework:   FrameworkEU,
				Article:     16,
				Title:       "Entry in the Union register of space objects",
				Description: "Authorized space objects shall be entered in the Union register with the data set out in the annex.",
				Category:    CategoryRegistration, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMinor,
				EvidenceRequired: []string{"registration submission receipt"},
				Guidance: []string{
					"Submit registration data within 30 days of orbital injection.",
				},
				CrossReferences: []string{"COPUOS-LTS-A.2", "UK-SIA-S61"},
			},
			{
				ID:          "eu-art-30",
				Framework:   FrameworkEU,
				Article:     30,
				Title:       "Third-party liability insurance",
				Description: "Operators shall maintain insurance or equivalent financial security covering third-party damage caused by the space activity.",
				Category:    CategoryInsurance, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				EvidenceRequired: []string{"insurance certificate"},
				Guidance: []string{
					"Obtain third-party liability cover sized to the mission risk profile before launch.",
				},
				CrossReferences: []string{"UK-SIA-S38", "US-FAA-450.45"},
				Penalty:         "Suspension of the authorization until cover is restored.",
			},
			{
				ID:          "eu-art-32",
				Framework:   FrameworkEU,
				Article:     32,
				Title:       "Space debris mitigation plan",
				Description: "Every authorized mission shall implement a debris mitigation plan consistent with recognized international guidelines.",
				Category:    CategoryOrbitalDebris, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				EvidenceRequired: []string{"debris mitigation plan", "compliance matrix against IADC guidelines"},
				Guidance: []string{
					"Author a debris mitigation plan covering release prevention, passivation, and disposal, mapped to IADC guidelines.",
				},
				CrossReferences: []string{"IADC-4.2", "ISO-24113:6.1", "COPUOS-LTS-B.3", "US-FCC-25.114"},
				Penalty:         "Fines up to 1% of worldwide annual turnover and authorization review.",
			},
			{
				ID:          "eu-art-33",
				Framework:   FrameworkEU,
				Article:     33,
				Title:       "Post-mission disposal from low Earth orbit",
				Description: "LEO spacecraft shall be disposed of by atmospheric re-entry within the maximum residual orbital lifetime after end of mission.",
				Category:    CategoryOrbitalDebris, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityCritical,
				Applicability: Applicability{LEOOnly: true},
				EvidenceRequired: []string{"disposal analysis", "residual lifetime computation"},
				Guidance: []string{
					"Demonstrate by analysis that the spacecraft re-enters within the residual-lifetime limit, or fit a deorbit device.",
				},
				CrossReferences: []string{"IADC-5.3.2", "ISO-24113:6.3.3", "US-FCC-25.283"},
			},
			{
				ID:          "eu-art-34",
				Framework:   FrameworkEU,
				Article:     34,
				Title:       "Collision avoidance for constellation systems",
				Description: "Constellation operators shall maintain maneuver capability and a collision avoidance process for every constellation spacecraft.",
				Category:    CategoryOrbitalDebris, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{
					ConstellationsOnly: true,
					RequiresPropulsion: true,
				},
				EvidenceRequired: []string{"collision avoidance procedure", "maneuver capability statement"},
				Guidance: []string{
					"Stand up a conjunction assessment process with defined maneuver decision thresholds.",
				},
				CrossReferences: []string{"IADC-4.4", "COPUOS-LTS-B.4"},
			},
			{
				ID:          "eu-art-36",
				Framework:   FrameworkEU,
				Article:     36,
				Title:       "Trackability and identification",
				Description: "Spacecraft above the small-object threshold shall be trackable by recognized space surveillance networks and carry a unique identifier.",
				Category:    CategoryTrafficManagement, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{MinMassKg: Float(10)},
				EvidenceRequired: []string{"radar cross-section analysis", "identifier assignment"},
				Guidance: []string{
					"Verify trackability with the EU SST consortium and register the spacecraft identifier.",
				},
				CrossReferences: []string{"COPUOS-LTS-B.1", "US-FCC-25.114"},
			},
			{
				ID:          "eu-art-37",
				Framework:   FrameworkEU,
				Article:     37,
				Title:       "Simplified debris documentation under the light regime",
				Description: "Light-regime operators may satisfy debris documentation duties with the simplified template annexed to the regulation.",
				Category:    CategoryOrbitalDebris, Binding: BindingMandatory,
				ComplianceType: ComplianceConditionalSimplified, Severity: SeverityMajor,
				Applicability: Applicability{
					SizeCategories: []SizeCategory{SizeMicro, SizeResearch},
				},
				EvidenceRequired: []string{"simplified debris template"},
				Guidance: []string{
					"Complete the simplified debris documentation template instead of the full mitigation plan.",
				},
				CrossReferences: []string{"IADC-4.2"},
			},
			{
				ID:          "eu-art-54",
				Framework:   FrameworkEU,
				Article:     54,
				Title:       "Cybersecurity risk management for space systems",
				Description: "Operators shall establish and maintain a cybersecurity risk management framework covering the space, ground, and link segments.",
				Category:    CategoryCybersecurity, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				EvidenceRequired: []string{"risk management framework", "segment threat analysis"},
				Guidance: []string{
					"Adopt a segment-by-segment cybersecurity risk framework aligned with NIS2 risk management measures.",
				},
				CrossReferences: []string{"NIS2-ART-21", "US-NOAA-960.8"},
			},
			{
				ID:          "eu-art-56",
				Framework:   FrameworkEU,
				Article:     56,
				Title:       "Incident notification to the competent authority",
				Description: "Significant incidents affecting the space system shall be notified to the competent authority within the deadlines of the incident rules.",
				Category:    CategoryIncidentReporting, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				EvidenceRequired: []string{"incident response procedure", "notification records"},
				Guidance: []string{
					"Wire incident detection to a notification workflow that meets the early-warning deadline.",
				},
				CrossReferences: []string{"NIS2-ART-23", "UK-SIA-S20"},
			},
			{
				ID:          "eu-art-58",
				Framework:   FrameworkEU,
				Article:     58,
				Title:       "Supply chain security assessment",
				Description: "Operators should assess the security posture of critical suppliers of the space system.",
				Category:    CategoryCybersecurity, Binding: BindingRecommended,
				ComplianceType: ComplianceRecommended, Severity: SeverityMinor,
				Guidance: []string{
					"Run supplier security questionnaires for flight software and ground segment vendors.",
				},
				CrossReferences: []string{"NIS2-ART-21"},
			},
			{
				ID:          "eu-art-60",
				Framework:   FrameworkEU,
				Article:     60,
				Title:       "Remote sensing data distribution policy",
				Description: "Remote sensing operators shall operate a data distribution policy controlling access to high-resolution imagery.",
				Category:    CategoryRemoteSensing, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{RemoteSensingOnly: true},
				EvidenceRequired: []string{"data policy", "access control records"},
				Guidance: []string{
					"Publish a data distribution policy with resolution-based access tiers.",
				},
				CrossReferences: []string{"US-NOAA-960.4", "UK-SIA-S25"},
			},
			{
				ID:          "eu-art-75",
				Framework:   FrameworkEU,
				Article:     75,
				Title:       "Environmental footprint declaration",
				Description: "Operators shall declare the environmental footprint of the space activity, including launch emissions and re-entry products.",
				Category:    CategoryEnvironmental, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMinor,
				EvidenceRequired: []string{"footprint declaration"},
				Guidance: []string{
					"Compute the footprint with the Commission's declared methodology and file it with the application.",
				},
			},
			{
				ID:          "eu-art-78",
				Framework:   FrameworkEU,
				Article:     78,
				Title:       "Mission life-cycle assessment",
				Description: "Operators should perform a life-cycle assessment of the mission covering manufacture, launch, operation, and disposal.",
				Category:    CategoryEnvironmental, Binding: BindingRecommended,
				ComplianceType: ComplianceRecommended, Severity: SeverityMinor,
				Guidance: []string{
					"Use the ESA LCA handbook as the assessment baseline.",
				},
			},
			{
				ID:          "eu-art-90",
				Framework:   FrameworkEU,
				Article:     90,
				Title:       "Spectrum coordination for NGSO systems",
				Description: "NGSO system operators shall complete ITU coordination and hold national frequency assignments before bringing the system into use.",
				Category:    CategorySpectrum, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				Applicability: Applicability{NGSOOnly: true},
				EvidenceRequired: []string{"ITU filing", "national assignment"},
				Guidance: []string{
					"File through the national administration and track the ITU coordination milestones.",
				},
				CrossReferences: []string{"US-FCC-25.112"},
			},
			{
				ID:          "eu-art-105",
				Framework:   FrameworkEU,
				Article:     105,
				Title:       "Cooperation with supervisory authorities",
				Description: "Operators shall cooperate with the competent authority, grant access to facilities and records, and respond to information requests.",
				Category:    CategorySupervision, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMajor,
				EvidenceRequired: []string{"supervision contact point", "information request log"},
				Guidance: []string{
					"Designate a supervision contact point and a records access procedure.",
				},
				CrossReferences: []string{"UK-SIA-S26"},
			},
			{
				ID:          "eu-art-107",
				Framework:   FrameworkEU,
				Article:     107,
				Title:       "Periodic reporting to the Commission",
				Description: "Operators shall file the periodic activity report with the data set required by the implementing acts.",
				Category:    CategorySupervision, Binding: BindingMandatory,
				ComplianceType: ComplianceMandatory, Severity: SeverityMinor,
				EvidenceRequired: []string{"periodic activity report"},
				Guidance: []string{
					"Automate report generation from mission telemetry and licensing records.",
				},
			},
		},
	}
}
