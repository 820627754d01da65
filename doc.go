// Package cashbook provides the types and functions to keep a personal
// income and expense ledger. It is local-first: the whole ledger lives in
// memory and is persisted as a single JSON snapshot in a key-value store.
//
// The core functionalities include:
//   - Ledger Management: creating, editing and deleting entries while keeping
//     identifiers unique and never reused.
//   - Summaries and Filters: stateless functions computing totals and
//     selecting entries by type.
//   - Data Persistence: encoding and decoding the ledger snapshot, and
//     loading/saving it through a pluggable Store.
//   - Interaction: a Controller that turns user actions into ledger
//     mutations and produces a ViewModel for any presentation layer.
//
// This package serves as the foundational logic for the `cb` command-line
// tool.
package cashbook
