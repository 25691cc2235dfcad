package config

// ProfileConfig is the root configuration for the profile automation jobs.
type ProfileConfig struct {
	Account AccountConfig `yaml:"account"`
	GitHub  GitHubConfig  `yaml:"github"`
	Market  MarketConfig  `yaml:"market"`
	Assets  AssetsConfig  `yaml:"assets"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// AccountConfig identifies the profile account.
type AccountConfig struct {
	Login string `yaml:"login"` // GitHub login the README belongs to
	// SinceFallback ("2006-01") is used for the "since" subtitle when the
	// API does not return an account creation date.
	SinceFallback string `yaml:"since_fallback"`
}

// GitHubConfig holds GitHub GraphQL API settings.
type GitHubConfig struct {
	GraphQLURL  string `yaml:"graphql_url"`
	TimeoutSec  int    `yaml:"timeout_sec"`
	MaxRetries  int    `yaml:"max_retries"`
	ChunkDays   int    `yaml:"chunk_days"`  // contribution window size, API caps at 365
	Concurrency int    `yaml:"concurrency"` // concurrent contribution windows
}

// MarketConfig holds quote fetching settings for the README market table.
type MarketConfig struct {
	Indicators       []IndicatorConfig `yaml:"indicators"`
	TimeoutSec       int               `yaml:"timeout_sec"`
	MaxRetries       int               `yaml:"max_retries"`
	ChangeAfterHours int               `yaml:"change_after_hours"` // min age of history row used for change fallback
	Endpoints        EndpointsConfig   `yaml:"endpoints"`
}

// IndicatorConfig describes one row of the market table.
type IndicatorConfig struct {
	Label    string `yaml:"label"`    // Display label (e.g., "S&P 500")
	Provider string `yaml:"provider"` // binance, coinbase, stooq, frankfurter
	Symbol   string `yaml:"symbol"`   // Provider-specific symbol (e.g., "BTCUSDT", "^spx", "USD/JPY")
}

// EndpointsConfig holds provider base URLs, overridable for testing.
type EndpointsConfig struct {
	Binance     string `yaml:"binance"`
	BinanceWS   string `yaml:"binance_ws"`
	Coinbase    string `yaml:"coinbase"`
	Stooq       string `yaml:"stooq"`
	Frankfurter string `yaml:"frankfurter"`
}

// AssetsConfig holds output locations for generated files.
type AssetsConfig struct {
	OutputDir  string   `yaml:"output_dir"`  // root for generated assets (default "output")
	ReadmePath string   `yaml:"readme_path"` // profile document (default "README.md")
	Themes     []string `yaml:"themes"`      // card variants (default dark, light)
}

// HistoryConfig selects and configures the run snapshot store.
type HistoryConfig struct {
	Backend    string   `yaml:"backend"` // sqlite, postgres or none
	SQLitePath string   `yaml:"sqlite_path"`
	Postgres   DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}
