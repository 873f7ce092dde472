package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/scoring"
)

func scoreWith(mandatory int) scoring.ComplianceScore {
	return scoring.ComplianceScore{
		Overall:    mandatory,
		Mandatory:  mandatory,
		ByCategory: map[catalog.Category]int{},
		ByAgency:   map[string]int{},
	}
}

func TestClassifyMandatoryThresholds(t *testing.T) {
	tests := []struct {
		mandatory int
		want      Level
	}{
		{0, LevelCritical},
		{49, LevelCritical},
		{50, LevelHigh},
		{69, LevelHigh},
		{70, LevelMedium},
		{84, LevelMedium},
		{85, LevelLow},
		{100, LevelLow},
	}
	for _, tt := range tests {
		got := Classify(scoreWith(tt.mandatory), nil, nil)
		assert.Equal(t, tt.want, got, "mandatory score %d", tt.mandatory)
	}
}

func TestClassifyCriticalNonComplianceOverride(t *testing.T) {
	reqs := []catalog.Requirement{
		{ID: "eu-art-32", Framework: catalog.FrameworkEU, Title: "debris plan",
			Category: catalog.CategoryOrbitalDebris, Binding: catalog.BindingMandatory,
			Severity: catalog.SeverityCritical},
	}
	state := []scoring.RequirementAssessment{
		{RequirementID: "eu-art-32", Status: scoring.StatusNonCompliant},
	}

	// Even a perfect aggregate score cannot mask critical non-compliance.
	got := Classify(scoreWith(100), reqs, state)
	assert.Equal(t, LevelCritical, got)
}

func TestClassifyCriticalSeverityCompliantDoesNotOverride(t *testing.T) {
	reqs := []catalog.Requirement{
		{ID: "eu-art-32", Severity: catalog.SeverityCritical},
	}
	state := []scoring.RequirementAssessment{
		{RequirementID: "eu-art-32", Status: scoring.StatusCompliant},
	}
	assert.Equal(t, LevelLow, Classify(scoreWith(95), reqs, state))
}

func TestClassifyLicensingFailureOverride(t *testing.T) {
	score := scoreWith(90)
	score.ByCategory[catalog.CategoryLicensing] = 40
	assert.Equal(t, LevelCritical, Classify(score, nil, nil))

	score.ByCategory[catalog.CategoryLicensing] = 50
	assert.Equal(t, LevelLow, Classify(score, nil, nil))
}

func TestClassifyOverrideOrder(t *testing.T) {
	// Critical non-compliance is checked before the licensing score.
	reqs := []catalog.Requirement{
		{ID: "x", Severity: catalog.SeverityCritical},
	}
	state := []scoring.RequirementAssessment{
		{RequirementID: "x", Status: scoring.StatusNonCompliant},
	}
	score := scoreWith(90)
	score.ByCategory[catalog.CategoryLicensing] = 10
	assert.Equal(t, LevelCritical, Classify(score, reqs, state))
}
