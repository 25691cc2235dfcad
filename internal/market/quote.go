package market

import (
	"context"
	"time"
)

// Quote is one indicator snapshot from a provider.
type Quote struct {
	Symbol    string
	Price     float64
	Change24h *float64 // Percent; nil when the source carries no 24h change
	Source    string   // Provider name
	FetchedAt time.Time
}

// Provider fetches one symbol's current quote.
type Provider interface {
	// Name identifies the provider in config and table rows.
	Name() string

	// Fetch returns the current quote for a provider-specific symbol.
	Fetch(ctx context.Context, symbol string) (Quote, error)
}

// Indicator pairs a table label with its provider and symbol.
type Indicator struct {
	Label    string
	Provider string
	Symbol   string
}

// Result is one indicator's outcome of a fetch cycle.
type Result struct {
	Indicator Indicator
	Quote     Quote
	Err       error
}

// RowStatus describes where a table row's price came from.
type RowStatus int

const (
	// StatusLive is a fresh provider quote.
	StatusLive RowStatus = iota
	// StatusStale is the last stored price, used when the provider failed.
	StatusStale
	// StatusMissing means no live quote and no stored fallback.
	StatusMissing
)

// Row is one resolved market table row.
type Row struct {
	Label  string
	Price  float64
	Change *float64 // Percent; nil renders as no movement information
	Source string
	Status RowStatus
	AsOf   time.Time // Provider fetch time, or snapshot time for stale rows
}
