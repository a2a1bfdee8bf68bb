// Package smartfi provides the types and calculations for a personal
// finance tracker. It is designed to be local-first and auditable: the
// user's accounts, groups and settings live in a single JSON book file,
// and every balance change is recorded as an append-only transaction in
// a JSONL ledger file.
//
// The core functionalities include:
//   - Account management: debit and credit accounts in COP or USD, with
//     optional groups, free-text tags and explicit manual ordering.
//   - Ledger: an immutable, chronological record of balance changes,
//     each carrying the resulting balance and the exchange rate in
//     effect at the time.
//   - Valuation: folding the account set into aggregate metrics (total
//     assets, liabilities, net worth, liquidity and buying power) in a
//     single reporting currency.
//   - History: reconstructing a day-by-day series of past valuations by
//     replaying the ledger backward, with no stored snapshots.
//   - Performance: normalized and annualized returns over a selected
//     window, optionally scoped to a group or tag, plus forward
//     projections at the derived monthly rate.
//
// This package serves as the foundational logic for the `sfi`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package smartfi
