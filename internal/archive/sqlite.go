package archive

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seantiz/loanops/internal/model"

	_ "modernc.org/sqlite"
)

const createRunsTable = `
CREATE TABLE IF NOT EXISTS processing_runs (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    loan_id          TEXT NOT NULL,
    status           TEXT NOT NULL,
    duration_seconds REAL NOT NULL,
    output_file      TEXT,
    processed_at     DATETIME NOT NULL
)`

// Compile-time interface satisfaction check.
var _ Archive = (*SQLiteArchive)(nil)

// SQLiteArchive implements Archive using SQLite.
type SQLiteArchive struct {
	db *sql.DB
}

// NewSQLiteArchive opens the SQLite database at dbPath and runs migrations.
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := db.Exec(createRunsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create processing_runs table: %w", err)
	}

	return &SQLiteArchive{db: db}, nil
}

// Close closes the underlying database connection.
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}

// RecordResult inserts one row for a completed processing run.
func (a *SQLiteArchive) RecordResult(ctx context.Context, r *model.ProcessResult) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO processing_runs (
			loan_id, status, duration_seconds, output_file, processed_at
		) VALUES (?, ?, ?, ?, ?)`,
		r.LoanID, r.Status, r.DurationSeconds, r.OutputFile, r.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert processing run: %w", err)
	}
	return nil
}

// Stats returns aggregate counts and the average run duration.
func (a *SQLiteArchive) Stats(ctx context.Context) (*RunStats, error) {
	tx, err := a.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin read tx: %w", err)
	}
	defer tx.Rollback()

	stats := &RunStats{CountByStatus: make(map[string]int)}

	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(AVG(duration_seconds), 0) FROM processing_runs",
	).Scan(&stats.Total, &stats.AvgDurationSeconds); err != nil {
		return nil, fmt.Errorf("aggregate processing runs: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM processing_runs GROUP BY status",
	)
	if err != nil {
		return nil, fmt.Errorf("count runs by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		stats.CountByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	return stats, nil
}
