package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Feed fans quote fetches out across providers.
type Feed struct {
	providers map[string]Provider
	logger    *slog.Logger
}

// NewFeed creates a Feed over a provider set, keyed by Provider.Name.
// A nil logger falls back to slog.Default.
func NewFeed(logger *slog.Logger, providers ...Provider) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Feed{providers: m, logger: logger}
}

// FetchAll fetches every indicator concurrently. Each result carries
// its own error; one failing indicator never drops the others.
func (f *Feed) FetchAll(ctx context.Context, indicators []Indicator) []Result {
	start := time.Now()
	results := make([]Result, len(indicators))

	g, gctx := errgroup.WithContext(ctx)
	for i, ind := range indicators {
		g.Go(func() error {
			results[i] = f.fetchOne(gctx, ind)
			return nil
		})
	}
	_ = g.Wait() // Individual errors live in the results.

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	f.logger.Info("quote fetch complete",
		"indicators", len(indicators),
		"failed", failed,
		"duration", time.Since(start),
	)

	return results
}

func (f *Feed) fetchOne(ctx context.Context, ind Indicator) Result {
	res := Result{Indicator: ind}

	p, ok := f.providers[ind.Provider]
	if !ok {
		res.Err = fmt.Errorf("no provider %q for %s", ind.Provider, ind.Label)
		return res
	}

	quote, err := p.Fetch(ctx, ind.Symbol)
	if err != nil {
		f.logger.Warn("quote fetch failed",
			"label", ind.Label,
			"provider", ind.Provider,
			"err", err,
		)
		res.Err = err
		return res
	}

	res.Quote = quote
	return res
}
