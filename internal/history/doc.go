// Package history records one snapshot row set per job run and serves
// them back to later runs.
//
// Snapshots power two behaviors:
//   - Change fallback: providers without a native 24h change get one
//     computed against the last sufficiently old quote snapshot.
//   - Stale rows: when a provider fails, the table falls back to the
//     most recent recorded price instead of dropping the row.
//
// Three backends implement Store: SQLite (default, single file),
// PostgreSQL, and a no-op store for runs without persistence.
package history
