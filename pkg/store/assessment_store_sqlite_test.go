package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astrea-Labs/orbitreg/pkg/assessment"
	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/risk"
	"github.com/Astrea-Labs/orbitreg/pkg/scoring"
)

var savedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func mockStore(t *testing.T) (*SQLiteAssessmentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS assessment_results").
		WillReturnResult(sqlmock.NewResult(0, 0))
	s, err := NewSQLiteAssessmentStore(db)
	require.NoError(t, err)
	return s, mock
}

func sampleResult() *assessment.Result {
	return &assessment.Result{
		ID:             "result-1",
		Framework:      catalog.FrameworkEU,
		CatalogVersion: "1.2.0",
		CatalogHash:    "sha256:abc",
		GeneratedAt:    savedAt,
		RiskLevel:      risk.LevelHigh,
		Score: scoring.ComplianceScore{
			Overall:   62,
			Mandatory: 58,
		},
	}
}

func TestSaveWritesSnapshotAndRows(t *testing.T) {
	s, mock := mockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO assessment_results").
		WithArgs("result-1", "EU_SPACE_ACT", "1.2.0", "sha256:abc",
			sqlmock.AnyArg(), "HIGH", 62, 58, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO requirement_assessments").
		WithArgs("result-1", "eu-art-6", "compliant", "approved", sqlmock.AnyArg(), "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.Save(context.Background(), sampleResult(), []scoring.RequirementAssessment{
		{RequirementID: "eu-art-6", Status: scoring.StatusCompliant, Notes: "approved", AssessedAt: savedAt},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRollsBackOnRowFailure(t *testing.T) {
	s, mock := mockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO assessment_results").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO requirement_assessments").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Save(context.Background(), sampleResult(), []scoring.RequirementAssessment{
		{RequirementID: "eu-art-6", Status: scoring.StatusCompliant},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assessment row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoundTrip(t *testing.T) {
	s, mock := mockStore(t)

	want := sampleResult()
	snapshot, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT snapshot FROM assessment_results").
		WithArgs("result-1").
		WillReturnRows(sqlmock.NewRows([]string{"snapshot"}).AddRow(string(snapshot)))

	got, err := s.Get(context.Background(), "result-1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Framework, got.Framework)
	assert.Equal(t, want.RiskLevel, got.RiskLevel)
	assert.Equal(t, want.Score.Overall, got.Score.Overall)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	s, mock := mockStore(t)

	mock.ExpectQuery("SELECT snapshot FROM assessment_results").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"snapshot"}))

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSummaries(t *testing.T) {
	s, mock := mockStore(t)

	rows := sqlmock.NewRows([]string{"result_id", "framework", "generated_at", "risk_level", "overall_score"}).
		AddRow("result-2", "EU_SPACE_ACT", savedAt.Format(time.RFC3339Nano), "LOW", 91.0).
		AddRow("result-1", "UK_SIA", savedAt.Add(-time.Hour).Format(time.RFC3339Nano), "HIGH", 62.0)

	mock.ExpectQuery("SELECT result_id, framework, generated_at, risk_level, overall_score").
		WithArgs(20).
		WillReturnRows(rows)

	got, err := s.List(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "result-2", got[0].ID)
	assert.Equal(t, savedAt, got[0].GeneratedAt)
	assert.Equal(t, 91.0, got[0].OverallScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentsRows(t *testing.T) {
	s, mock := mockStore(t)

	rows := sqlmock.NewRows([]string{"requirement_id", "status", "notes", "assessed_at", "target_date"}).
		AddRow("eu-art-32", "partial", "plan drafted", savedAt.Format(time.RFC3339Nano), savedAt.Add(720*time.Hour).Format(time.RFC3339Nano)).
		AddRow("eu-art-6", "compliant", nil, savedAt.Format(time.RFC3339Nano), nil)

	mock.ExpectQuery("SELECT requirement_id, status, notes, assessed_at, target_date").
		WithArgs("result-1").
		WillReturnRows(rows)

	got, err := s.Assessments(context.Background(), "result-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, scoring.StatusPartial, got[0].Status)
	require.NotNil(t, got[0].TargetDate)
	assert.Equal(t, savedAt.Add(720*time.Hour), *got[0].TargetDate)
	assert.Nil(t, got[1].TargetDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
