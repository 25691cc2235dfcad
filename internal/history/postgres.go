package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sora4431/Sora4431/internal/config"
	"github.com/Sora4431/Sora4431/internal/database"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id   UUID PRIMARY KEY,
	kind     TEXT NOT NULL,
	taken_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_taken_at ON runs(taken_at);

CREATE TABLE IF NOT EXISTS stat_snapshots (
	run_id        UUID PRIMARY KEY REFERENCES runs(run_id),
	commits       BIGINT NOT NULL,
	pull_requests BIGINT NOT NULL,
	reviews       BIGINT NOT NULL,
	issues        BIGINT NOT NULL,
	stars         BIGINT NOT NULL,
	repos         BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS quote_snapshots (
	run_id UUID NOT NULL REFERENCES runs(run_id),
	label  TEXT NOT NULL,
	price  DOUBLE PRECISION NOT NULL,
	change DOUBLE PRECISION,
	PRIMARY KEY (run_id, label)
);
CREATE INDEX IF NOT EXISTS idx_quote_snapshots_label ON quote_snapshots(label);
`

// PostgresStore persists snapshots in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the configured database and ensures the schema.
func OpenPostgres(ctx context.Context, cfg config.DBConfig) (*PostgresStore, error) {
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) RecordStats(ctx context.Context, run RunRecord, snap StatSnapshot) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertRunPG(ctx, tx, run); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO stat_snapshots (run_id, commits, pull_requests, reviews, issues, stars, repos)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.RunID, snap.Commits, snap.PullRequests, snap.Reviews, snap.Issues, snap.Stars, snap.Repos,
	)
	if err != nil {
		return fmt.Errorf("insert stat snapshot: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) RecordQuotes(ctx context.Context, run RunRecord, quotes []QuoteSnapshot) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertRunPG(ctx, tx, run); err != nil {
		return err
	}
	for _, q := range quotes {
		_, err := tx.Exec(ctx, `
			INSERT INTO quote_snapshots (run_id, label, price, change)
			VALUES ($1, $2, $3, $4)`,
			run.RunID, q.Label, q.Price, q.Change,
		)
		if err != nil {
			return fmt.Errorf("insert quote snapshot %q: %w", q.Label, err)
		}
	}

	return tx.Commit(ctx)
}

func insertRunPG(ctx context.Context, tx pgx.Tx, run RunRecord) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO runs (run_id, kind, taken_at)
		VALUES ($1, $2, $3)`,
		run.RunID, run.Kind, run.TakenAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *PostgresStore) LatestStats(ctx context.Context) (StatSnapshot, time.Time, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT s.commits, s.pull_requests, s.reviews, s.issues, s.stars, s.repos, r.taken_at
		FROM stat_snapshots s
		JOIN runs r ON r.run_id = s.run_id
		ORDER BY r.taken_at DESC
		LIMIT 1`,
	)

	var (
		snap    StatSnapshot
		takenAt time.Time
	)
	err := row.Scan(&snap.Commits, &snap.PullRequests, &snap.Reviews, &snap.Issues, &snap.Stars, &snap.Repos, &takenAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return StatSnapshot{}, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return StatSnapshot{}, time.Time{}, fmt.Errorf("query latest stats: %w", err)
	}
	return snap, takenAt.UTC(), nil
}

func (s *PostgresStore) LatestQuote(ctx context.Context, label string, cutoff time.Time) (QuoteSnapshot, time.Time, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT q.price, q.change, r.taken_at
		FROM quote_snapshots q
		JOIN runs r ON r.run_id = q.run_id
		WHERE q.label = $1 AND r.taken_at <= $2
		ORDER BY r.taken_at DESC
		LIMIT 1`,
		label, cutoff.UTC(),
	)

	var (
		price   float64
		change  *float64
		takenAt time.Time
	)
	err := row.Scan(&price, &change, &takenAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return QuoteSnapshot{}, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return QuoteSnapshot{}, time.Time{}, fmt.Errorf("query latest quote: %w", err)
	}

	return QuoteSnapshot{Label: label, Price: price, Change: change}, takenAt.UTC(), nil
}

func (s *PostgresStore) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT run_id, kind, taken_at
		FROM runs
		ORDER BY taken_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.RunID, &rec.Kind, &rec.TakenAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.TakenAt = rec.TakenAt.UTC()
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}
