// Package bank provides a small multi-currency account ledger.
//
// The core types are:
//   - CurrencyRate: a currency code and its conversion factor to the base
//     unit shared by all balances.
//   - Account: an owner and an ordered list of currencies, each with a balance
//     kept in base units. Accounts support deposit, withdraw and transfer.
//   - Ledger: an ordered, bounded collection of accounts that can be saved to
//     and loaded from a flat text file.
//
// All validation failures are reported as errors wrapping one of the Err*
// sentinel values of this package, so callers can use errors.Is.
//
// This package serves as the foundational logic for the `bankctl`
// command-line tool.
package bank
