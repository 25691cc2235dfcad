// statsgen refreshes the generated profile cards: it fetches profile and
// contribution data from the GitHub GraphQL API, aggregates totals and
// language shares, renders the SVG cards for every configured theme, and
// records a stats snapshot.
// Usage: go run ./cmd/statsgen --config configs/profile.yaml
//
// Environment variables:
//
//	STATS_TOKEN  - personal access token; enables private contribution counts
//	GITHUB_TOKEN - workflow token fallback; public contributions only
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/Sora4431/Sora4431/internal/card"
	"github.com/Sora4431/Sora4431/internal/config"
	"github.com/Sora4431/Sora4431/internal/githubapi"
	"github.com/Sora4431/Sora4431/internal/history"
	"github.com/Sora4431/Sora4431/internal/logger"
	"github.com/Sora4431/Sora4431/internal/stats"
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

	log.Info("starting statsgen",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	env, err := config.ParseEnv()
	if err != nil {
		log.Error("failed to read environment", "error", err)
		os.Exit(1)
	}
	token := env.Token()
	if token == "" {
		log.Error("a GitHub token is required", "hint", "set STATS_TOKEN or GITHUB_TOKEN")
		os.Exit(1)
	}
	publicOnly := !env.UseViewer()
	if publicOnly {
		log.Warn("no personal access token set, counting public contributions only")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := githubapi.NewClient(
		cfg.GitHub.GraphQLURL,
		token,
		cfg.Account.Login,
		githubapi.WithViewer(env.UseViewer()),
		githubapi.WithTimeout(time.Duration(cfg.GitHub.TimeoutSec)*time.Second),
		githubapi.WithRetries(cfg.GitHub.MaxRetries, time.Second),
		githubapi.WithLogger(log),
	)

	collector := stats.New(stats.Config{
		ChunkDays:   cfg.GitHub.ChunkDays,
		Concurrency: cfg.GitHub.Concurrency,
	}, client, log)

	start := time.Now()
	summary, err := collector.Collect(ctx)
	if err != nil {
		log.Error("failed to collect stats", "error", err)
		os.Exit(1)
	}
	if summary.Totals.Since == "" {
		summary.Totals.Since = sinceFallback(cfg.Account.SinceFallback)
	}

	log.Info("stats collected",
		"commits", summary.Totals.Commits,
		"stars", summary.Totals.Stars,
		"languages", len(summary.Languages),
		"duration", time.Since(start),
	)

	svgDir := path.Join(cfg.Assets.OutputDir, "assets", "svg")
	shares := stats.TopShares(summary.Languages, card.TopLanguages)

	for _, name := range cfg.Assets.Themes {
		theme, err := card.ByName(name)
		if err != nil {
			log.Error("unknown theme", "theme", name, "error", err)
			os.Exit(1)
		}

		overviewPath, languagesPath := card.Paths(svgDir, name)
		if err := card.WriteFile(overviewPath, card.Overview(theme, summary.Totals, publicOnly)); err != nil {
			log.Error("failed to write overview card", "theme", name, "error", err)
			os.Exit(1)
		}
		if err := card.WriteFile(languagesPath, card.Languages(theme, shares)); err != nil {
			log.Error("failed to write languages card", "theme", name, "error", err)
			os.Exit(1)
		}
		log.Info("cards written", "theme", name, "overview", overviewPath, "languages", languagesPath)
	}

	run := history.NewRun(history.KindStats)
	recordHistory(ctx, cfg.History, log, run, summary)

	log.Info("statsgen complete",
		"run_id", run.RunID,
		"themes", len(cfg.Assets.Themes),
		"public_only", publicOnly,
		"duration", time.Since(start),
	)
}

// sinceFallback converts a configured "2006-01" month into the card
// subtitle format. A value that does not parse is shown as-is.
func sinceFallback(month string) string {
	if month == "" {
		return ""
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}

// recordHistory stores the run snapshot and logs the delta against the
// previous one. History failures only warn: the cards were already
// written, persisting the run is best effort.
func recordHistory(ctx context.Context, cfg config.HistoryConfig, log *slog.Logger, run history.RunRecord, summary *stats.Summary) {
	store, err := history.Open(ctx, cfg)
	if err != nil {
		log.Warn("history unavailable, skipping snapshot", "backend", cfg.Backend, "error", err)
		return
	}
	defer store.Close()

	snap := history.StatSnapshot{
		Commits:      summary.Totals.Commits,
		PullRequests: summary.Totals.PullRequests,
		Reviews:      summary.Totals.Reviews,
		Issues:       summary.Totals.Issues,
		Stars:        summary.Totals.Stars,
		Repos:        summary.Totals.Repos,
	}

	prev, prevAt, err := store.LatestStats(ctx)
	switch {
	case err == nil:
		log.Info("delta since last run",
			"last_taken", prevAt,
			"commits", snap.Commits-prev.Commits,
			"stars", snap.Stars-prev.Stars,
			"repos", snap.Repos-prev.Repos,
		)
	case !errors.Is(err, history.ErrNoSnapshot):
		log.Warn("failed to read previous snapshot", "error", err)
	}

	if err := store.RecordStats(ctx, run, snap); err != nil {
		log.Warn("failed to record snapshot", "error", err)
	}
}
