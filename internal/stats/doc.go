// Package stats aggregates GitHub contribution data into card-ready totals.
//
// The collector:
//   - Fetches the profile (creation date, repos, stars, followers)
//   - Splits [createdAt, now) into windows of at most 365 days,
//     the longest range the contributionsCollection query accepts
//   - Fetches windows concurrently with bounded parallelism
//   - Merges window results in chronological order so language colors
//     are deterministic
package stats
