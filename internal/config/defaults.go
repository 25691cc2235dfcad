package config

// Default values for optional configuration fields.
const (
	DefaultGraphQLURL       = "https://api.github.com/graphql"
	DefaultGitHubTimeoutSec = 30
	DefaultGitHubRetries    = 3
	DefaultChunkDays        = 365
	DefaultChunkConcurrency = 4

	DefaultMarketTimeoutSec = 10
	DefaultMarketRetries    = 2
	DefaultChangeAfterHours = 20

	DefaultBinanceURL     = "https://api.binance.com/api/v3"
	DefaultBinanceWSURL   = "wss://stream.binance.com:9443/stream"
	DefaultCoinbaseURL    = "https://api.exchange.coinbase.com"
	DefaultStooqURL       = "https://stooq.com/q/l/"
	DefaultFrankfurterURL = "https://api.frankfurter.app"

	DefaultOutputDir  = "output"
	DefaultReadmePath = "README.md"

	DefaultHistoryBackend = "sqlite"
	DefaultSQLitePath     = "output/history.db"
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 4
	DefaultMinConns       = 1

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultThemes are the card variants rendered when none are configured.
var DefaultThemes = []string{"dark", "light"}

func (c *ProfileConfig) applyDefaults() {
	// GitHub defaults
	if c.GitHub.GraphQLURL == "" {
		c.GitHub.GraphQLURL = DefaultGraphQLURL
	}
	if c.GitHub.TimeoutSec == 0 {
		c.GitHub.TimeoutSec = DefaultGitHubTimeoutSec
	}
	if c.GitHub.MaxRetries == 0 {
		c.GitHub.MaxRetries = DefaultGitHubRetries
	}
	if c.GitHub.ChunkDays == 0 {
		c.GitHub.ChunkDays = DefaultChunkDays
	}
	if c.GitHub.Concurrency == 0 {
		c.GitHub.Concurrency = DefaultChunkConcurrency
	}

	// Market defaults
	if c.Market.TimeoutSec == 0 {
		c.Market.TimeoutSec = DefaultMarketTimeoutSec
	}
	if c.Market.MaxRetries == 0 {
		c.Market.MaxRetries = DefaultMarketRetries
	}
	if c.Market.ChangeAfterHours == 0 {
		c.Market.ChangeAfterHours = DefaultChangeAfterHours
	}
	if c.Market.Endpoints.Binance == "" {
		c.Market.Endpoints.Binance = DefaultBinanceURL
	}
	if c.Market.Endpoints.BinanceWS == "" {
		c.Market.Endpoints.BinanceWS = DefaultBinanceWSURL
	}
	if c.Market.Endpoints.Coinbase == "" {
		c.Market.Endpoints.Coinbase = DefaultCoinbaseURL
	}
	if c.Market.Endpoints.Stooq == "" {
		c.Market.Endpoints.Stooq = DefaultStooqURL
	}
	if c.Market.Endpoints.Frankfurter == "" {
		c.Market.Endpoints.Frankfurter = DefaultFrankfurterURL
	}

	// Assets defaults
	if c.Assets.OutputDir == "" {
		c.Assets.OutputDir = DefaultOutputDir
	}
	if c.Assets.ReadmePath == "" {
		c.Assets.ReadmePath = DefaultReadmePath
	}
	if len(c.Assets.Themes) == 0 {
		c.Assets.Themes = append([]string(nil), DefaultThemes...)
	}

	// History defaults
	if c.History.Backend == "" {
		c.History.Backend = DefaultHistoryBackend
	}
	if c.History.SQLitePath == "" {
		c.History.SQLitePath = DefaultSQLitePath
	}
	applyDBDefaults(&c.History.Postgres)

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
