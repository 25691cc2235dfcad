// marketsync refreshes the market table between the README markers: it
// fetches the configured indicators, resolves changes and fallbacks
// against recorded history, splices the rendered table into README.md
// (bootstrapping the whole document when the file is missing), and
// records a market snapshot.
// Usage: go run ./cmd/marketsync --config configs/profile.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/Sora4431/Sora4431/internal/config"
	"github.com/Sora4431/Sora4431/internal/history"
	"github.com/Sora4431/Sora4431/internal/logger"
	"github.com/Sora4431/Sora4431/internal/market"
	"github.com/Sora4431/Sora4431/internal/readme"
	"github.com/Sora4431/Sora4431/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/profile.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	log.Info("starting marketsync",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
		"indicators", len(cfg.Market.Indicators),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// A broken history backend downgrades the run to native changes
	// only, it never fails the table update.
	var store history.Store
	store, err = history.Open(ctx, cfg.History)
	if err != nil {
		log.Warn("history unavailable, continuing without fallbacks", "backend", cfg.History.Backend, "error", err)
		store = history.NopStore{}
	}
	defer store.Close()

	client := market.NewClient(
		market.WithTimeout(time.Duration(cfg.Market.TimeoutSec)*time.Second),
		market.WithRetries(cfg.Market.MaxRetries, time.Second),
		market.WithLogger(log),
	)
	feed := market.NewFeed(log,
		market.NewBinance(client, cfg.Market.Endpoints.Binance),
		market.NewCoinbase(client, cfg.Market.Endpoints.Coinbase),
		market.NewStooq(client, cfg.Market.Endpoints.Stooq),
		market.NewFrankfurter(client, cfg.Market.Endpoints.Frankfurter),
	)

	indicators := make([]market.Indicator, len(cfg.Market.Indicators))
	for i, ind := range cfg.Market.Indicators {
		indicators[i] = market.Indicator{Label: ind.Label, Provider: ind.Provider, Symbol: ind.Symbol}
	}

	start := time.Now()
	results := feed.FetchAll(ctx, indicators)

	prior := func(label string, cutoff time.Time) (float64, time.Time, bool) {
		snap, takenAt, err := store.LatestQuote(ctx, label, cutoff)
		if err != nil {
			if !errors.Is(err, history.ErrNoSnapshot) {
				log.Warn("history lookup failed", "label", label, "error", err)
			}
			return 0, time.Time{}, false
		}
		return snap.Price, takenAt, true
	}

	now := time.Now().UTC()
	minChangeAge := time.Duration(cfg.Market.ChangeAfterHours) * time.Hour
	rows := market.Resolve(results, prior, now, minChangeAge)
	table := readme.RenderTable(rows, now)

	changed, err := updateReadme(cfg, rows, table, now)
	if err != nil {
		log.Error("failed to update readme", "path", cfg.Assets.ReadmePath, "error", err)
		os.Exit(1)
	}
	if changed {
		log.Info("market table updated", "path", cfg.Assets.ReadmePath)
	} else {
		log.Info("no change", "path", cfg.Assets.ReadmePath)
	}

	run := history.NewRun(history.KindMarket)
	recordQuotes(ctx, store, log, run, rows)

	live := 0
	for _, row := range rows {
		if row.Status == market.StatusLive {
			live++
		}
	}
	log.Info("marketsync complete",
		"run_id", run.RunID,
		"rows", len(rows),
		"live", live,
		"changed", changed,
		"duration", time.Since(start),
	)
}

// updateReadme splices the table into an existing README, or renders
// the whole document when none exists yet.
func updateReadme(cfg *config.ProfileConfig, rows []market.Row, table string, now time.Time) (changed bool, err error) {
	readmePath := cfg.Assets.ReadmePath

	if _, err := os.Stat(readmePath); errors.Is(err, fs.ErrNotExist) {
		doc := readme.Document{
			Login:     cfg.Account.Login,
			SVGDir:    path.Join(cfg.Assets.OutputDir, "assets", "svg"),
			Rows:      rows,
			UpdatedAt: now,
		}
		if err := readme.WriteFile(readmePath, readme.Render(doc)); err != nil {
			return false, err
		}
		return true, nil
	}

	return readme.UpdateFile(readmePath, table)
}

// recordQuotes snapshots the live rows. Stale rows are skipped so old
// prices do not re-enter history with a fresh timestamp.
func recordQuotes(ctx context.Context, store history.Store, log *slog.Logger, run history.RunRecord, rows []market.Row) {
	var quotes []history.QuoteSnapshot
	for _, row := range rows {
		if row.Status != market.StatusLive {
			continue
		}
		quotes = append(quotes, history.QuoteSnapshot{
			Label:  row.Label,
			Price:  row.Price,
			Change: row.Change,
		})
	}
	if len(quotes) == 0 {
		return
	}

	if err := store.RecordQuotes(ctx, run, quotes); err != nil {
		log.Warn("failed to record snapshot", "error", err)
	}
}
