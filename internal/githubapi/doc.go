// Package githubapi provides the GitHub GraphQL client used by the stats job.
//
// Endpoint: https://api.github.com/graphql
//
// Queries run in one of two modes:
//   - viewer{} with a personal access token, which includes private
//     contribution counts
//   - user(login:){} with a workflow token, which only sees public activity
//
// Contribution queries are windowed because the API rejects ranges longer
// than 365 days.
package githubapi
