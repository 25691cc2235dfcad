package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id   TEXT PRIMARY KEY,
	kind     TEXT NOT NULL,
	taken_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_taken_at ON runs(taken_at);

CREATE TABLE IF NOT EXISTS stat_snapshots (
	run_id        TEXT PRIMARY KEY REFERENCES runs(run_id),
	commits       INTEGER NOT NULL,
	pull_requests INTEGER NOT NULL,
	reviews       INTEGER NOT NULL,
	issues        INTEGER NOT NULL,
	stars         INTEGER NOT NULL,
	repos         INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quote_snapshots (
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	label  TEXT NOT NULL,
	price  REAL NOT NULL,
	change REAL,
	PRIMARY KEY (run_id, label)
);
CREATE INDEX IF NOT EXISTS idx_quote_snapshots_label ON quote_snapshots(label);
`

// SQLiteStore is the default single-file backend.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the snapshot database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// toMillis normalizes timestamps to millisecond precision for storage.
func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// fromMillis restores a stored timestamp in UTC.
func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func (s *SQLiteStore) RecordStats(ctx context.Context, run RunRecord, snap StatSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertRun(ctx, tx, run); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO stat_snapshots (run_id, commits, pull_requests, reviews, issues, stars, repos)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID.String(), snap.Commits, snap.PullRequests, snap.Reviews, snap.Issues, snap.Stars, snap.Repos,
	)
	if err != nil {
		return fmt.Errorf("insert stat snapshot: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) RecordQuotes(ctx context.Context, run RunRecord, quotes []QuoteSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertRun(ctx, tx, run); err != nil {
		return err
	}
	for _, q := range quotes {
		var change sql.NullFloat64
		if q.Change != nil {
			change = sql.NullFloat64{Float64: *q.Change, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO quote_snapshots (run_id, label, price, change)
			VALUES (?, ?, ?, ?)`,
			run.RunID.String(), q.Label, q.Price, change,
		)
		if err != nil {
			return fmt.Errorf("insert quote snapshot %q: %w", q.Label, err)
		}
	}

	return tx.Commit()
}

func insertRun(ctx context.Context, tx *sql.Tx, run RunRecord) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO runs (run_id, kind, taken_at)
		VALUES (?, ?, ?)`,
		run.RunID.String(), run.Kind, toMillis(run.TakenAt),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LatestStats(ctx context.Context) (StatSnapshot, time.Time, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT s.commits, s.pull_requests, s.reviews, s.issues, s.stars, s.repos, r.taken_at
		FROM stat_snapshots s
		JOIN runs r ON r.run_id = s.run_id
		ORDER BY r.taken_at DESC
		LIMIT 1`,
	)

	var (
		snap    StatSnapshot
		takenAt int64
	)
	err := row.Scan(&snap.Commits, &snap.PullRequests, &snap.Reviews, &snap.Issues, &snap.Stars, &snap.Repos, &takenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StatSnapshot{}, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return StatSnapshot{}, time.Time{}, fmt.Errorf("query latest stats: %w", err)
	}
	return snap, fromMillis(takenAt), nil
}

func (s *SQLiteStore) LatestQuote(ctx context.Context, label string, cutoff time.Time) (QuoteSnapshot, time.Time, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT q.price, q.change, r.taken_at
		FROM quote_snapshots q
		JOIN runs r ON r.run_id = q.run_id
		WHERE q.label = ? AND r.taken_at <= ?
		ORDER BY r.taken_at DESC
		LIMIT 1`,
		label, toMillis(cutoff),
	)

	var (
		price   float64
		change  sql.NullFloat64
		takenAt int64
	)
	err := row.Scan(&price, &change, &takenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return QuoteSnapshot{}, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return QuoteSnapshot{}, time.Time{}, fmt.Errorf("query latest quote: %w", err)
	}

	snap := QuoteSnapshot{Label: label, Price: price}
	if change.Valid {
		v := change.Float64
		snap.Change = &v
	}
	return snap, fromMillis(takenAt), nil
}

func (s *SQLiteStore) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, kind, taken_at
		FROM runs
		ORDER BY taken_at DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			id      string
			rec     RunRecord
			takenAt int64
		)
		if err := rows.Scan(&id, &rec.Kind, &takenAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.RunID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		rec.TakenAt = fromMillis(takenAt)
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}
