package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sora4431/Sora4431/internal/config"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_StatsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, _, err := store.LatestStats(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("LatestStats() on empty store error = %v, want ErrNoSnapshot", err)
	}

	taken := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	run := RunRecord{RunID: uuid.New(), Kind: KindStats, TakenAt: taken}
	snap := StatSnapshot{
		Commits:      284,
		PullRequests: 19,
		Reviews:      4,
		Issues:       11,
		Stars:        44,
		Repos:        12,
	}
	if err := store.RecordStats(ctx, run, snap); err != nil {
		t.Fatalf("RecordStats() error = %v", err)
	}

	got, takenAt, err := store.LatestStats(ctx)
	if err != nil {
		t.Fatalf("LatestStats() error = %v", err)
	}
	if got != snap {
		t.Errorf("LatestStats() = %+v, want %+v", got, snap)
	}
	if !takenAt.Equal(taken) {
		t.Errorf("takenAt = %v, want %v", takenAt, taken)
	}
}

func TestSQLiteStore_LatestStatsPicksNewest(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	old := RunRecord{RunID: uuid.New(), Kind: KindStats, TakenAt: time.Date(2024, 5, 25, 12, 0, 0, 0, time.UTC)}
	if err := store.RecordStats(ctx, old, StatSnapshot{Commits: 100}); err != nil {
		t.Fatalf("RecordStats() error = %v", err)
	}
	recent := RunRecord{RunID: uuid.New(), Kind: KindStats, TakenAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	if err := store.RecordStats(ctx, recent, StatSnapshot{Commits: 120}); err != nil {
		t.Fatalf("RecordStats() error = %v", err)
	}

	got, _, err := store.LatestStats(ctx)
	if err != nil {
		t.Fatalf("LatestStats() error = %v", err)
	}
	if got.Commits != 120 {
		t.Errorf("Commits = %d, want 120", got.Commits)
	}
}

func TestSQLiteStore_LatestQuoteHonorsCutoff(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	change := 2.5
	day1 := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 2, 6, 0, 0, 0, time.UTC)

	run1 := RunRecord{RunID: uuid.New(), Kind: KindMarket, TakenAt: day1}
	if err := store.RecordQuotes(ctx, run1, []QuoteSnapshot{
		{Label: "BTC / USD", Price: 64000, Change: &change},
		{Label: "S&P 500", Price: 5300},
	}); err != nil {
		t.Fatalf("RecordQuotes() error = %v", err)
	}
	run2 := RunRecord{RunID: uuid.New(), Kind: KindMarket, TakenAt: day2}
	if err := store.RecordQuotes(ctx, run2, []QuoteSnapshot{
		{Label: "BTC / USD", Price: 65000, Change: &change},
	}); err != nil {
		t.Fatalf("RecordQuotes() error = %v", err)
	}

	t.Run("cutoff after both runs", func(t *testing.T) {
		snap, takenAt, err := store.LatestQuote(ctx, "BTC / USD", day2.Add(time.Hour))
		if err != nil {
			t.Fatalf("LatestQuote() error = %v", err)
		}
		if snap.Price != 65000 {
			t.Errorf("Price = %v, want 65000", snap.Price)
		}
		if !takenAt.Equal(day2) {
			t.Errorf("takenAt = %v, want %v", takenAt, day2)
		}
	})

	t.Run("cutoff between runs", func(t *testing.T) {
		snap, takenAt, err := store.LatestQuote(ctx, "BTC / USD", day1.Add(time.Hour))
		if err != nil {
			t.Fatalf("LatestQuote() error = %v", err)
		}
		if snap.Price != 64000 {
			t.Errorf("Price = %v, want 64000", snap.Price)
		}
		if !takenAt.Equal(day1) {
			t.Errorf("takenAt = %v, want %v", takenAt, day1)
		}
		if snap.Change == nil || *snap.Change != 2.5 {
			t.Errorf("Change = %v, want 2.5", snap.Change)
		}
	})

	t.Run("cutoff before all runs", func(t *testing.T) {
		_, _, err := store.LatestQuote(ctx, "BTC / USD", day1.Add(-time.Hour))
		if !errors.Is(err, ErrNoSnapshot) {
			t.Fatalf("LatestQuote() error = %v, want ErrNoSnapshot", err)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		_, _, err := store.LatestQuote(ctx, "USD/JPY", day2.Add(time.Hour))
		if !errors.Is(err, ErrNoSnapshot) {
			t.Fatalf("LatestQuote() error = %v, want ErrNoSnapshot", err)
		}
	})

	t.Run("nil change preserved", func(t *testing.T) {
		snap, _, err := store.LatestQuote(ctx, "S&P 500", day2)
		if err != nil {
			t.Fatalf("LatestQuote() error = %v", err)
		}
		if snap.Change != nil {
			t.Errorf("Change = %v, want nil", *snap.Change)
		}
	})
}

func TestSQLiteStore_RecentRuns(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]uuid.UUID, 3)
	for i := range ids {
		ids[i] = uuid.New()
		run := RunRecord{RunID: ids[i], Kind: KindMarket, TakenAt: base.Add(time.Duration(i) * 24 * time.Hour)}
		if err := store.RecordQuotes(ctx, run, []QuoteSnapshot{{Label: "BTC / USD", Price: float64(100 + i)}}); err != nil {
			t.Fatalf("RecordQuotes() error = %v", err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].RunID != ids[2] {
		t.Errorf("runs[0].RunID = %v, want %v", runs[0].RunID, ids[2])
	}
	if runs[1].RunID != ids[1] {
		t.Errorf("runs[1].RunID = %v, want %v", runs[1].RunID, ids[1])
	}
	if runs[0].Kind != KindMarket {
		t.Errorf("runs[0].Kind = %q, want %q", runs[0].Kind, KindMarket)
	}
}

func TestOpenSQLite_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "history.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatal("OpenSQLite(\"\") expected error, got nil")
	}
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite", func(t *testing.T) {
		store, err := Open(ctx, config.HistoryConfig{
			Backend:    "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "history.db"),
		})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer store.Close()
		if _, ok := store.(*SQLiteStore); !ok {
			t.Errorf("Open() returned %T, want *SQLiteStore", store)
		}
	})

	t.Run("none", func(t *testing.T) {
		store, err := Open(ctx, config.HistoryConfig{Backend: "none"})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if _, _, err := store.LatestStats(ctx); !errors.Is(err, ErrNoSnapshot) {
			t.Errorf("LatestStats() error = %v, want ErrNoSnapshot", err)
		}
		if err := store.RecordStats(ctx, NewRun(KindStats), StatSnapshot{}); err != nil {
			t.Errorf("RecordStats() error = %v", err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := Open(ctx, config.HistoryConfig{Backend: "redis"}); err == nil {
			t.Fatal("Open() expected error for unknown backend, got nil")
		}
	})
}

func TestNewRun(t *testing.T) {
	run := NewRun(KindStats)

	if run.Kind != KindStats {
		t.Errorf("Kind = %q, want %q", run.Kind, KindStats)
	}
	if run.RunID == uuid.Nil {
		t.Error("RunID is nil")
	}
	if run.TakenAt.Location() != time.UTC {
		t.Errorf("TakenAt location = %v, want UTC", run.TakenAt.Location())
	}
}
