// Package market fetches the quotes behind the README market table.
//
// Four providers cover the configured indicators: binance and coinbase
// for crypto pairs, stooq for index snapshots, frankfurter for FX
// rates. A Feed fans fetches out concurrently; Resolve then fills
// change percentages that a provider does not carry from stored
// history, and degrades rows to stale or unavailable when a provider
// is down.
//
// The Stream type additionally follows live prices over the Binance
// combined WebSocket stream for the quotewatch diagnostic.
package market
