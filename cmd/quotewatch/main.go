// quotewatch streams live prices for the configured Binance symbols to
// the console until interrupted. It exists to sanity-check symbols and
// endpoints without touching the README.
// Usage: go run ./cmd/quotewatch --config configs/profile.yaml
//
// With --once it performs a single REST fetch of every indicator and
// prints the table as marketsync would render it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sora4431/Sora4431/internal/config"
	"github.com/Sora4431/Sora4431/internal/logger"
	"github.com/Sora4431/Sora4431/internal/market"
	"github.com/Sora4431/Sora4431/internal/readme"
	"github.com/Sora4431/Sora4431/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/profile.yaml", "path to config file")
	once := flag.Bool("once", false, "fetch every indicator once over REST and print the table")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	log.Info("starting quotewatch",
		"version", version.Version,
		"commit", version.Commit,
		"once", *once,
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

	if *once {
		if err := fetchOnce(ctx, cfg, log); err != nil {
			log.Error("fetch failed", "error", err)
			os.Exit(1)
		}
		return
	}

	var symbols []string
	for _, ind := range cfg.Market.Indicators {
		if ind.Provider == "binance" {
			symbols = append(symbols, ind.Symbol)
		}
	}
	if len(symbols) == 0 {
		log.Error("no binance indicators configured, nothing to stream")
		os.Exit(1)
	}

	stream := market.NewStream(market.StreamConfig{
		URL:     cfg.Market.Endpoints.BinanceWS,
		Symbols: symbols,
	}, log)

	go func() {
		for tick := range stream.Ticks() {
			fmt.Printf("[TICK] %s price=%.2f change=%+.2f%%\n", tick.Symbol, tick.Price, tick.Change24h)
		}
	}()

	log.Info("streaming started - press Ctrl+C to stop", "symbols", symbols)

	if err := stream.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("stream failed", "error", err)
		os.Exit(1)
	}

	log.Info("quotewatch stopped")
}

// fetchOnce does a single REST pass over every indicator and prints
// the rendered table. No history is consulted or written.
func fetchOnce(ctx context.Context, cfg *config.ProfileConfig, log *slog.Logger) error {
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

	results := feed.FetchAll(ctx, indicators)
	for _, res := range results {
		if res.Err != nil {
			log.Warn("indicator failed", "label", res.Indicator.Label, "error", res.Err)
		}
	}

	now := time.Now().UTC()
	rows := market.Resolve(results, nil, now, 0)
	fmt.Println(readme.RenderTable(rows, now))
	return nil
}
