package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sora4431/Sora4431/internal/config"
)

// Run kinds.
const (
	KindStats  = "stats"
	KindMarket = "market"
)

// ErrNoSnapshot is returned by reads when no matching snapshot exists.
var ErrNoSnapshot = errors.New("no snapshot recorded")

// RunRecord identifies one job run.
type RunRecord struct {
	RunID   uuid.UUID
	Kind    string // KindStats or KindMarket
	TakenAt time.Time
}

// StatSnapshot holds the profile totals captured by a stats run.
type StatSnapshot struct {
	Commits      int
	PullRequests int
	Reviews      int
	Issues       int
	Stars        int
	Repos        int
}

// QuoteSnapshot holds one market table row captured by a market run.
type QuoteSnapshot struct {
	Label  string
	Price  float64
	Change *float64 // nil when the provider had no native 24h change
}

// Store persists run snapshots. Writes for a run happen in a single
// transaction; reads return ErrNoSnapshot when nothing matches.
type Store interface {
	// RecordStats stores the run and its stat snapshot.
	RecordStats(ctx context.Context, run RunRecord, snap StatSnapshot) error

	// RecordQuotes stores the run and one row per quote.
	RecordQuotes(ctx context.Context, run RunRecord, quotes []QuoteSnapshot) error

	// LatestStats returns the most recent stat snapshot and when it was taken.
	LatestStats(ctx context.Context) (StatSnapshot, time.Time, error)

	// LatestQuote returns the most recent snapshot for label taken at or
	// before cutoff, and when it was taken.
	LatestQuote(ctx context.Context, label string, cutoff time.Time) (QuoteSnapshot, time.Time, error)

	// RecentRuns returns up to limit runs, newest first.
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)

	Close() error
}

// NewRun returns a run record with a fresh id, taken now in UTC.
func NewRun(kind string) RunRecord {
	return RunRecord{
		RunID:   uuid.New(),
		Kind:    kind,
		TakenAt: time.Now().UTC(),
	}
}

// Open returns the store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.HistoryConfig) (Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	case "postgres":
		return OpenPostgres(ctx, cfg.Postgres)
	case "none":
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}
