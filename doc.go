// Package coinmon fetches cryptocurrency quotes from a ticker API and turns
// them into tables ready to print in a terminal.
//
// The pipeline is a single pass over the API response:
//   - Filter: keep the coins held in a Portfolio, or the coins searched for, or
//     everything.
//   - Normalize: convert each Record into a typed Coin, in the convert currency.
//     Missing and zero values become NA.
//   - Sort: by symbol, or by a numeric field in decreasing order.
//   - Project: keep only the requested columns, in natural order.
//
// All of it is driven by an immutable Options value, see NewTable and
// Source.Table.
//
// This package serves as the foundation of the `coinmon` command-line tool.
package coinmon
