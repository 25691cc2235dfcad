package stats

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sora4431/Sora4431/internal/githubapi"
)

// Source provides the GraphQL data the collector aggregates.
type Source interface {
	FetchProfile(ctx context.Context) (*githubapi.Profile, error)
	FetchContributions(ctx context.Context, from, to time.Time) (*githubapi.Contributions, error)
}

// Config holds collector configuration.
type Config struct {
	ChunkDays   int // Max days per contributions window (default: 365)
	Concurrency int // Max concurrent window fetches (default: 4)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChunkDays:   365,
		Concurrency: 4,
	}
}

// Totals holds the overview numbers plus the account start label.
type Totals struct {
	Commits      int
	PullRequests int
	Reviews      int
	Issues       int
	Stars        int
	Repos        int
	Followers    int
	Since        string // Account creation month, "Jan 2006"
}

// Summary is the render-ready aggregate of one collection run.
type Summary struct {
	Totals    Totals
	Languages []LanguageTotal // Descending by size
}

// Collector fetches contribution windows and merges them into a Summary.
type Collector struct {
	cfg    Config
	source Source
	logger *slog.Logger
}

// New creates a Collector. Zero config fields take defaults; a nil
// logger falls back to slog.Default.
func New(cfg Config, source Source, logger *slog.Logger) *Collector {
	def := DefaultConfig()
	if cfg.ChunkDays <= 0 {
		cfg.ChunkDays = def.ChunkDays
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		cfg:    cfg,
		source: source,
		logger: logger,
	}
}

// Collect fetches the profile and every contribution window since the
// account was created, returning the merged summary. Any window
// failing fails the whole run; partial totals would render misleading
// cards.
func (c *Collector) Collect(ctx context.Context) (*Summary, error) {
	start := time.Now()

	profile, err := c.source.FetchProfile(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	since := profile.CreatedAt
	if since.IsZero() {
		// No creation date would mean windows back to year 1; fall
		// back to a single trailing year instead.
		since = now.AddDate(-1, 0, 0)
	}

	windows := Split(since, now, c.cfg.ChunkDays)

	c.logger.Info("collecting contributions",
		"since", since.Format("2006-01-02"),
		"windows", len(windows),
		"concurrency", c.cfg.Concurrency,
	)

	results := make([]*githubapi.Contributions, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, c.cfg.Concurrency)

	for i, w := range windows {
		g.Go(func() error {
			// Acquire semaphore slot.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return gctx.Err()
			}

			contrib, err := c.source.FetchContributions(gctx, w.From, w.To)
			if err != nil {
				return err
			}
			results[i] = contrib
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := merge(profile, results)

	c.logger.Info("collection complete",
		"commits", summary.Totals.Commits,
		"prs", summary.Totals.PullRequests,
		"reviews", summary.Totals.Reviews,
		"issues", summary.Totals.Issues,
		"languages", len(summary.Languages),
		"duration", time.Since(start),
	)

	return summary, nil
}

// merge folds window results in chronological order so accumulation is
// deterministic.
func merge(profile *githubapi.Profile, results []*githubapi.Contributions) *Summary {
	totals := Totals{
		Stars:     profile.TotalStars,
		Repos:     profile.RepoCount,
		Followers: profile.Followers,
	}
	if !profile.CreatedAt.IsZero() {
		totals.Since = profile.CreatedAt.Format("Jan 2006")
	}

	langs := newLanguageAccumulator()
	for _, contrib := range results {
		if contrib == nil {
			continue
		}
		totals.Commits += contrib.Commits
		totals.PullRequests += contrib.PullRequests
		totals.Reviews += contrib.Reviews
		totals.Issues += contrib.Issues

		for _, repo := range contrib.Repositories {
			if repo.IsFork {
				continue
			}
			for _, lang := range repo.Languages {
				langs.add(lang.Name, lang.Color, lang.Size)
			}
		}
	}

	return &Summary{Totals: totals, Languages: langs.totals()}
}
