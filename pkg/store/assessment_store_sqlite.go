// Package store persists assessment runs. Results are stored twice: a
// canonical JSON snapshot of the full result for exact replay, plus
// relational rows for the per-requirement state so histories can be
// queried without decoding every snapshot.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Astrea-Labs/orbitreg/pkg/assessment"
	"github.com/Astrea-Labs/orbitreg/pkg/scoring"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no stored result matches the given ID.
var ErrNotFound = errors.New("assessment result not found")

// ResultSummary is the listing row for one stored run.
type ResultSummary struct {
	ID           string    `json:"id"`
	Framework    string    `json:"framework"`
	GeneratedAt  time.Time `json:"generated_at"`
	RiskLevel    string    `json:"risk_level"`
	OverallScore float64   `json:"overall_score"`
}

// SQLiteAssessmentStore persists results in a SQLite database.
type SQLiteAssessmentStore struct {
	db *sql.DB
}

// NewSQLiteAssessmentStore wraps an open database handle and applies the
// schema migration.
func NewSQLiteAssessmentStore(db *sql.DB) (*SQLiteAssessmentStore, error) {
	s := &SQLiteAssessmentStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open opens (or creates) a SQLite database at path and returns a store
// over it.
func Open(path string) (*SQLiteAssessmentStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewSQLiteAssessmentStore(db)
}

// Close closes the underlying database handle.
func (s *SQLiteAssessmentStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteAssessmentStore) migrate() error {
	query := `
    CREATE TABLE IF NOT EXISTS assessment_results (
        result_id TEXT PRIMARY KEY,
        framework TEXT NOT NULL,
        catalog_version TEXT,
        catalog_hash TEXT,
        generated_at DATETIME,
        risk_level TEXT,
        overall_score REAL,
        mandatory_score REAL,
        snapshot JSON NOT NULL
    );
    CREATE TABLE IF NOT EXISTS requirement_assessments (
        result_id TEXT NOT NULL,
        requirement_id TEXT NOT NULL,
        status TEXT NOT NULL,
        notes TEXT,
        assessed_at DATETIME,
        target_date DATETIME,
        PRIMARY KEY (result_id, requirement_id)
    );`
	_, err := s.db.ExecContext(context.Background(), query)
	return err
}

// Save writes a result snapshot and its per-requirement rows in one
// transaction.
func (s *SQLiteAssessmentStore) Save(ctx context.Context, r *assessment.Result, assessments []scoring.RequirementAssessment) error {
	snapshot, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO assessment_results (
		result_id, framework, catalog_version, catalog_hash, generated_at, risk_level, overall_score, mandatory_score, snapshot
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Framework), r.CatalogVersion, r.CatalogHash,
		r.GeneratedAt.UTC().Format(time.RFC3339Nano),
		string(r.RiskLevel), r.Score.Overall, r.Score.Mandatory, string(snapshot),
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	for _, a := range assessments {
		var assessedAt, targetDate string
		if !a.AssessedAt.IsZero() {
			assessedAt = a.AssessedAt.UTC().Format(time.RFC3339Nano)
		}
		if a.TargetDate != nil {
			targetDate = a.TargetDate.UTC().Format(time.RFC3339Nano)
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO requirement_assessments (
			result_id, requirement_id, status, notes, assessed_at, target_date
		) VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, a.RequirementID, string(a.Status), a.Notes, assessedAt, targetDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert assessment row: %w", err)
		}
	}

	return tx.Commit()
}

// Get returns the full stored result by ID.
func (s *SQLiteAssessmentStore) Get(ctx context.Context, resultID string) (*assessment.Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM assessment_results WHERE result_id = ?`, resultID)

	var snapshot string
	if err := row.Scan(&snapshot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var r assessment.Result
	if err := json.Unmarshal([]byte(snapshot), &r); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &r, nil
}

// List returns the most recent result summaries, newest first.
func (s *SQLiteAssessmentStore) List(ctx context.Context, limit int) ([]ResultSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT result_id, framework, generated_at, risk_level, overall_score
        FROM assessment_results
        ORDER BY generated_at DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ResultSummary
	for rows.Next() {
		var (
			rs          ResultSummary
			generatedAt string
		)
		if err := rows.Scan(&rs.ID, &rs.Framework, &generatedAt, &rs.RiskLevel, &rs.OverallScore); err != nil {
			return nil, err
		}
		rs.GeneratedAt = parseTime(generatedAt)
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Assessments returns the per-requirement assessment rows of one run.
func (s *SQLiteAssessmentStore) Assessments(ctx context.Context, resultID string) ([]scoring.RequirementAssessment, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT requirement_id, status, notes, assessed_at, target_date
        FROM requirement_assessments
        WHERE result_id = ?
        ORDER BY requirement_id`, resultID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []scoring.RequirementAssessment
	for rows.Next() {
		var (
			a          scoring.RequirementAssessment
			status     string
			notes      sql.NullString
			assessedAt sql.NullString
			targetDate sql.NullString
		)
		if err := rows.Scan(&a.RequirementID, &status, &notes, &assessedAt, &targetDate); err != nil {
			return nil, err
		}
		a.Status = scoring.Status(status)
		a.Notes = notes.String
		if assessedAt.Valid {
			a.AssessedAt = parseTime(assessedAt.String)
		}
		if targetDate.Valid && targetDate.String != "" {
			t := parseTime(targetDate.String)
			a.TargetDate = &t
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}
