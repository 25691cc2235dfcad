package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds secrets read from the process environment rather than YAML.
//
// STATS_TOKEN is a personal access token (repo + read:user). When present,
// GraphQL queries run against viewer{} and include private contributions.
// Without it the jobs fall back to the workflow-injected GITHUB_TOKEN (or
// GH_TOKEN) and query user(login:){}, which only sees public activity.
type Env struct {
	StatsToken  string `env:"STATS_TOKEN"`
	GitHubToken string `env:"GITHUB_TOKEN"`
	GHToken     string `env:"GH_TOKEN"`
}

// ParseEnv reads the token environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Token returns the token to authenticate with, in precedence order.
func (e Env) Token() string {
	if e.StatsToken != "" {
		return e.StatsToken
	}
	if e.GitHubToken != "" {
		return e.GitHubToken
	}
	return e.GHToken
}

// UseViewer reports whether queries should target viewer{} (PAT mode).
func (e Env) UseViewer() bool {
	return e.StatsToken != ""
}
