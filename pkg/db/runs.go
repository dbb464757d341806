package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded scan.
type Run struct {
	RunID      int64
	Lang       string
	DumpPath   string
	OutputTSV  string
	StartedAt  time.Time
	FinishedAt time.Time
	Pages      int64
	Evaluated  int
	Probable   int
	Confirmed  int
}

// FamilyResult is one family's tallies within a run.
type FamilyResult struct {
	Family       string
	Transclusion int
	Tracking     int
}

// RecordRun stores a completed run and its per-family results in one
// transaction, returning the new run ID.
func (db *DB) RecordRun(run Run, families []FamilyResult) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (lang, dump_path, output_tsv, started_at, finished_at,
		                  pages, evaluated, probable, confirmed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Lang, run.DumpPath, run.OutputTSV, run.StartedAt, run.FinishedAt,
		run.Pages, run.Evaluated, run.Probable, run.Confirmed)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting run ID: %w", err)
	}

	for _, f := range families {
		if _, err := tx.Exec(`
			INSERT INTO run_families (run_id, family, transclusion, tracking)
			VALUES (?, ?, ?, ?)`,
			runID, f.Family, f.Transclusion, f.Tracking); err != nil {
			return 0, fmt.Errorf("inserting family %s: %w", f.Family, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, lang, dump_path, output_tsv, started_at, finished_at,
		       pages, evaluated, probable, confirmed
		FROM runs ORDER BY run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Lang, &r.DumpPath, &r.OutputTSV,
			&r.StartedAt, &r.FinishedAt, &r.Pages, &r.Evaluated,
			&r.Probable, &r.Confirmed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun fetches one run and its per-family results.
func (db *DB) GetRun(runID int64) (Run, []FamilyResult, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, lang, dump_path, output_tsv, started_at, finished_at,
		       pages, evaluated, probable, confirmed
		FROM runs WHERE run_id = ?`, runID).
		Scan(&r.RunID, &r.Lang, &r.DumpPath, &r.OutputTSV,
			&r.StartedAt, &r.FinishedAt, &r.Pages, &r.Evaluated,
			&r.Probable, &r.Confirmed)
	if err == sql.ErrNoRows {
		return Run{}, nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return Run{}, nil, fmt.Errorf("getting run %d: %w", runID, err)
	}

	rows, err := db.Query(`
		SELECT family, transclusion, tracking FROM run_families
		WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return Run{}, nil, fmt.Errorf("getting families for run %d: %w", runID, err)
	}
	defer rows.Close()

	var families []FamilyResult
	for rows.Next() {
		var f FamilyResult
		if err := rows.Scan(&f.Family, &f.Transclusion, &f.Tracking); err != nil {
			return Run{}, nil, fmt.Errorf("scanning family: %w", err)
		}
		families = append(families, f)
	}
	return r, families, rows.Err()
}

// LatestRunID returns the ID of the most recent run.
func (db *DB) LatestRunID() (int64, error) {
	var id int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("getting latest run: %w", err)
	}
	return id, nil
}
