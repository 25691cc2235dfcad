package history

import (
	"context"
	"time"
)

// NopStore discards writes and reports no snapshots. It backs the
// "none" backend so jobs can run without any persistence.
type NopStore struct{}

func (NopStore) RecordStats(context.Context, RunRecord, StatSnapshot) error {
	return nil
}

func (NopStore) RecordQuotes(context.Context, RunRecord, []QuoteSnapshot) error {
	return nil
}

func (NopStore) LatestStats(context.Context) (StatSnapshot, time.Time, error) {
	return StatSnapshot{}, time.Time{}, ErrNoSnapshot
}

func (NopStore) LatestQuote(context.Context, string, time.Time) (QuoteSnapshot, time.Time, error) {
	return QuoteSnapshot{}, time.Time{}, ErrNoSnapshot
}

func (NopStore) RecentRuns(context.Context, int) ([]RunRecord, error) {
	return nil, nil
}

func (NopStore) Close() error { return nil }
