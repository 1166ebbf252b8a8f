package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"driftwatch/domain/core"
	"driftwatch/drift"
)

// BaselineRepository persists drift baselines so a snapshot built once can be
// compared against production batches long after the reference data is gone.
type BaselineRepository struct {
	db *sqlx.DB
}

// NewBaselineRepository creates a new baseline repository
func NewBaselineRepository(db *sqlx.DB) *BaselineRepository {
	return &BaselineRepository{db: db}
}

// Save inserts a baseline under a caller-chosen name. Baselines are immutable;
// saving the same name again records a new row rather than overwriting.
func (r *BaselineRepository) Save(ctx context.Context, name string, b *drift.Baseline) error {
	columnsJSON, err := json.Marshal(b.Columns)
	if err != nil {
		return fmt.Errorf("failed to marshal baseline columns: %w", err)
	}

	query := `INSERT INTO baselines (id, name, fingerprint, row_count, columns, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		string(b.ID), name, string(b.Fingerprint), b.RowCount, columnsJSON, b.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save baseline: %w", err)
	}

	return nil
}

// GetByID retrieves a baseline by its ID
func (r *BaselineRepository) GetByID(ctx context.Context, id core.BaselineID) (*drift.Baseline, error) {
	query := `SELECT id, fingerprint, row_count, columns, created_at
		FROM baselines WHERE id = $1`

	b, err := r.scanBaseline(r.db.QueryRowxContext(ctx, query, string(id)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("baseline %s: %w", id, core.ErrBaselineNotFound)
		}
		return nil, fmt.Errorf("failed to get baseline: %w", err)
	}

	return b, nil
}

// GetLatestByName retrieves the most recently saved baseline under a name
func (r *BaselineRepository) GetLatestByName(ctx context.Context, name string) (*drift.Baseline, error) {
	query := `SELECT id, fingerprint, row_count, columns, created_at
		FROM baselines WHERE name = $1
		ORDER BY created_at DESC LIMIT 1`

	b, err := r.scanBaseline(r.db.QueryRowxContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("baseline %q: %w", name, core.ErrBaselineNotFound)
		}
		return nil, fmt.Errorf("failed to get baseline by name: %w", err)
	}

	return b, nil
}

// BaselineSummary is a listing row without the column payload
type BaselineSummary struct {
	ID          core.BaselineID `db:"id"`
	Name        string          `db:"name"`
	Fingerprint core.Hash       `db:"fingerprint"`
	RowCount    int             `db:"row_count"`
	CreatedAt   core.Timestamp  `db:"created_at"`
}

// List returns summaries of stored baselines, newest first
func (r *BaselineRepository) List(ctx context.Context, limit, offset int) ([]BaselineSummary, error) {
	query := `SELECT id, name, fingerprint, row_count, created_at
		FROM baselines ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list baselines: %w", err)
	}
	defer rows.Close()

	var summaries []BaselineSummary
	for rows.Next() {
		var s BaselineSummary
		var id, fingerprint string
		var createdAt sql.NullTime
		if err := rows.Scan(&id, &s.Name, &fingerprint, &s.RowCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan baseline summary: %w", err)
		}
		s.ID = core.BaselineID(id)
		s.Fingerprint = core.Hash(fingerprint)
		s.CreatedAt = core.NewTimestamp(createdAt.Time)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate baselines: %w", err)
	}

	return summaries, nil
}

// Delete removes a baseline from the database
func (r *BaselineRepository) Delete(ctx context.Context, id core.BaselineID) error {
	query := `DELETE FROM baselines WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete baseline: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("baseline %s: %w", id, core.ErrBaselineNotFound)
	}

	return nil
}

// scanBaseline reads one full baseline row, including its column snapshots
func (r *BaselineRepository) scanBaseline(row *sqlx.Row) (*drift.Baseline, error) {
	var id, fingerprint string
	var rowCount int
	var columnsJSON []byte
	var createdAt sql.NullTime

	if err := row.Scan(&id, &fingerprint, &rowCount, &columnsJSON, &createdAt); err != nil {
		return nil, err
	}

	columns := make(map[core.ColumnKey]drift.BaselineColumn)
	if err := json.Unmarshal(columnsJSON, &columns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal baseline columns: %w", err)
	}

	return &drift.Baseline{
		ID:          core.BaselineID(id),
		CreatedAt:   core.NewTimestamp(createdAt.Time),
		RowCount:    rowCount,
		Columns:     columns,
		Fingerprint: core.Hash(fingerprint),
	}, nil
}
