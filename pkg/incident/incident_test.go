package incident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var detected = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestRuleForKnownCategories(t *testing.T) {
	tests := []struct {
		category Category
		deadline time.Duration
		notify   bool
	}{
		{CategoryCollisionWarning, 6 * time.Hour, true},
		{CategoryDebrisGeneratingEvent, 4 * time.Hour, true},
		{CategoryLossOfControl, 8 * time.Hour, true},
		{CategoryCyberAttack, 24 * time.Hour, true},
		{CategoryDataBreach, 24 * time.Hour, true},
		{CategoryFrequencyInterference, 72 * time.Hour, true},
		{CategoryGroundSegmentOutage, 48 * time.Hour, false},
		{CategoryThirdPartyFailure, 72 * time.Hour, false},
	}
	for _, tt := range tests {
		r, err := RuleFor(tt.category)
		require.NoError(t, err, "category %s", tt.category)
		assert.Equal(t, tt.deadline, r.NotificationDeadline, "category %s", tt.category)
		assert.Equal(t, tt.notify, r.RequiresNotification, "category %s", tt.category)
	}
}

func TestRuleForUnknownCategory(t *testing.T) {
	_, err := RuleFor(Category("ALIEN_CONTACT"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestDeadlineExactHourArithmetic(t *testing.T) {
	got, err := Deadline(CategoryCyberAttack, detected)
	require.NoError(t, err)
	assert.Equal(t, detected.Add(24*time.Hour), got)
	assert.Equal(t, time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC), got)

	got, err = Deadline(CategoryDebrisGeneratingEvent, detected)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 13, 30, 0, 0, time.UTC), got)
}

func TestClassifySeverityBaseIsFloor(t *testing.T) {
	// No aggravating factors at all still yields the category base.
	sev, err := ClassifySeverity(CategoryDebrisGeneratingEvent, Factors{})
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, sev)

	sev, err = ClassifySeverity(CategoryThirdPartyFailure, Factors{})
	require.NoError(t, err)
	assert.Equal(t, SeverityLow, sev)
}

func TestClassifySeverityFactorPoints(t *testing.T) {
	// One moderate factor: a point, medium.
	sev, err := ClassifySeverity(CategoryThirdPartyFailure, Factors{Recurring: true})
	require.NoError(t, err)
	assert.Equal(t, SeverityMedium, sev)

	// A single severe factor forces at least high.
	sev, err = ClassifySeverity(CategoryThirdPartyFailure, Factors{DataLoss: true})
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, sev)

	// Stacked severe factors reach critical.
	sev, err = ClassifySeverity(CategoryThirdPartyFailure, Factors{
		DataLoss:           true,
		ThirdPartyImpact:   true,
		FinancialImpactEUR: 2_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, sev)
}

func TestClassifySeverityAssetThresholds(t *testing.T) {
	sev, err := ClassifySeverity(CategoryThirdPartyFailure, Factors{AffectedAssets: 3})
	require.NoError(t, err)
	assert.Equal(t, SeverityMedium, sev)

	sev, err = ClassifySeverity(CategoryThirdPartyFailure, Factors{AffectedAssets: 10})
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, sev)
}

func TestNewIncident(t *testing.T) {
	inc, err := New("inc-1", CategoryCyberAttack, detected, Factors{})
	require.NoError(t, err)
	assert.Equal(t, StateDetected, inc.State)
	assert.Equal(t, SeverityHigh, inc.Severity)
	assert.Equal(t, detected.Add(24*time.Hour), inc.Deadline)
	assert.False(t, inc.ReportedToNCA)

	_, err = New("inc-2", Category("ALIEN_CONTACT"), detected, Factors{})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, CanTransition(StateDetected, StateInvestigating))
	assert.True(t, CanTransition(StateInvestigating, StateContained))
	assert.True(t, CanTransition(StateContained, StateResolved))

	assert.False(t, CanTransition(StateDetected, StateResolved))
	assert.False(t, CanTransition(StateResolved, StateDetected))
	assert.False(t, CanTransition(StateContained, StateInvestigating))
}

func TestOverdue(t *testing.T) {
	inc, err := New("inc-1", CategoryCollisionWarning, detected, Factors{})
	require.NoError(t, err)

	assert.False(t, inc.Overdue(detected.Add(5*time.Hour)))
	assert.True(t, inc.Overdue(detected.Add(7*time.Hour)))

	inc.ReportedToNCA = true
	assert.False(t, inc.Overdue(detected.Add(7*time.Hour)))
}

func TestOverdueNotRequiredCategory(t *testing.T) {
	inc, err := New("inc-1", CategoryGroundSegmentOutage, detected, Factors{})
	require.NoError(t, err)
	assert.False(t, inc.Overdue(detected.Add(100*time.Hour)))
}
