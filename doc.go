// Package midinero provides the data model and computation engine of a
// personal finance tracker. It is local-first: all records live in a
// small key-value store (one JSON document per collection) and every
// derived figure is recomputed on demand.
//
// The core functionalities include:
//   - Record Store: append-only collections of typed records (incomes,
//     expenses, accounts, transfers, savings destinations, debts and
//     their payments, categories, budgets, reduction targets, goals),
//     each keyed by a clock-derived numeric id.
//   - Aggregation Engine: pure folds over the record history that
//     derive account and destination balances, debt balances,
//     per-category and per-tag sums, and the multi-currency
//     consolidated "available vs reserved" split.
//   - Exchange Rate Provider: a current ARS-per-USD rate, either set
//     manually or refreshed from a remote quote service. Conversion
//     always uses the current rate at query time; there is no
//     per-record rate snapshot.
//   - Backup: a single-document JSON export/import format with schema
//     migrations applied on load.
//
// This package serves as the foundational logic for the `midinero`
// command-line tool.
package midinero
