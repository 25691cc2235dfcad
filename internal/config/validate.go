package config

import (
	"errors"
	"fmt"
)

// KnownProviders are the quote providers the market package implements.
var KnownProviders = map[string]bool{
	"binance":     true,
	"coinbase":    true,
	"stooq":       true,
	"frankfurter": true,
}

// Validate checks that all required fields are set and values are valid.
func (c *ProfileConfig) Validate() error {
	if c.Account.Login == "" {
		return errors.New("account.login is required")
	}

	if c.GitHub.ChunkDays < 1 || c.GitHub.ChunkDays > 365 {
		return fmt.Errorf("github.chunk_days must be between 1 and 365, got %d", c.GitHub.ChunkDays)
	}
	if c.GitHub.Concurrency < 1 {
		return errors.New("github.concurrency must be >= 1")
	}
	if c.GitHub.MaxRetries < 0 {
		return errors.New("github.max_retries must be >= 0")
	}

	if len(c.Market.Indicators) == 0 {
		return errors.New("market.indicators must list at least one indicator")
	}
	for i, ind := range c.Market.Indicators {
		if ind.Label == "" {
			return fmt.Errorf("market.indicators[%d].label is required", i)
		}
		if ind.Symbol == "" {
			return fmt.Errorf("market.indicators[%d].symbol is required", i)
		}
		if !KnownProviders[ind.Provider] {
			return fmt.Errorf("market.indicators[%d].provider %q is unknown", i, ind.Provider)
		}
	}
	if c.Market.ChangeAfterHours < 1 {
		return errors.New("market.change_after_hours must be >= 1")
	}

	switch c.History.Backend {
	case "none":
	case "sqlite":
		if c.History.SQLitePath == "" {
			return errors.New("history.sqlite_path is required when history.backend is sqlite")
		}
	case "postgres":
		if err := c.History.Postgres.validate("history.postgres"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("history.backend must be sqlite, postgres or none, got %q", c.History.Backend)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is invalid", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is invalid", c.Log.Format)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
