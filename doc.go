// Package ledger implements a single-user receipt ledger. It is designed to
// be local-first: entries live in memory, and every mutation persists a full
// JSON snapshot to a pluggable local storage.
//
// The core functionalities include:
//   - Entry Management: Recording receipt entries (customer, item, quantity,
//     price, discount), with sequential receipt numbering and derived
//     amounts computed at creation.
//   - Status Tracking: Each entry is Paid, Pending or Cancelled, freely
//     reassignable after creation.
//   - Summary Aggregation: Reducing the entry list into per-status totals
//     and counts for display.
//   - Data Persistence: Encoding the ledger as a canonical JSON array under
//     a fixed storage key, with file and SQLite backed storages.
//
// This package serves as the foundational logic for the `srl` command-line
// tool; the AI analysis gateway lives in the agent subpackage.
package ledger
