// Package db persists coil generation runs to sqlite so recent
// requests can be listed and re-downloaded.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/coilworks/coilgen/internal/geometry"
	"github.com/coilworks/coilgen/internal/timeutil"
)

type DB struct {
	*sql.DB

	// Clock supplies run timestamps; tests may replace it.
	Clock timeutil.Clock
}

// NewDB opens (or creates) the sqlite database at path and applies any
// pending schema migrations.
func NewDB(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db := &DB{DB: sqlDB, Clock: timeutil.RealClock{}}
	if err := db.MigrateUp(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return db, nil
}

// CoilRun is one recorded generation request.
type CoilRun struct {
	RunID        string            `json:"run_id"`
	Spec         geometry.CoilSpec `json:"spec"`
	IncludeInner bool              `json:"include_inner"`
	PointCount   int               `json:"point_count"`
	CreatedAt    time.Time         `json:"created_at"`
}

// RecordRun stores a completed generation request and returns its id.
func (db *DB) RecordRun(spec geometry.CoilSpec, includeInner bool, pointCount int) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO coil_runs (
			run_id, lx, by, trace_width, gap, turns,
			include_inner, point_count, created_unix_nanos
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, spec.OuterWidth, spec.OuterHeight, spec.TraceWidth, spec.Gap, spec.Turns,
		includeInner, pointCount, db.Clock.Now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("insert coil run: %w", err)
	}
	return id, nil
}

// ListRecentRuns returns up to limit runs, newest first.
func (db *DB) ListRecentRuns(limit int) ([]CoilRun, error) {
	rows, err := db.Query(
		`SELECT run_id, lx, by, trace_width, gap, turns,
			include_inner, point_count, created_unix_nanos
		FROM coil_runs
		ORDER BY created_unix_nanos DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query coil runs: %w", err)
	}
	defer rows.Close()

	var runs []CoilRun
	for rows.Next() {
		var r CoilRun
		var createdNanos int64
		if err := rows.Scan(
			&r.RunID, &r.Spec.OuterWidth, &r.Spec.OuterHeight,
			&r.Spec.TraceWidth, &r.Spec.Gap, &r.Spec.Turns,
			&r.IncludeInner, &r.PointCount, &createdNanos,
		); err != nil {
			return nil, fmt.Errorf("scan coil run: %w", err)
		}
		r.CreatedAt = time.Unix(0, createdNanos)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns a single run by id, or sql.ErrNoRows.
func (db *DB) GetRun(runID string) (*CoilRun, error) {
	var r CoilRun
	var createdNanos int64
	err := db.QueryRow(
		`SELECT run_id, lx, by, trace_width, gap, turns,
			include_inner, point_count, created_unix_nanos
		FROM coil_runs WHERE run_id = ?`, runID).Scan(
		&r.RunID, &r.Spec.OuterWidth, &r.Spec.OuterHeight,
		&r.Spec.TraceWidth, &r.Spec.Gap, &r.Spec.Turns,
		&r.IncludeInner, &r.PointCount, &createdNanos,
	)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = time.Unix(0, createdNanos)
	return &r, nil
}
