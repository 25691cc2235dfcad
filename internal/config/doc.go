// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. API tokens are never read from YAML; they come from the
// process environment (STATS_TOKEN, GITHUB_TOKEN, GH_TOKEN) so workflow
// secrets stay out of the repository.
package config
