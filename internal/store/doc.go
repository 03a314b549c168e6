// Package store provides SQLite-backed run history for sequ.
//
// Each invocation made with --history appends one row holding the run ID,
// the literal request bounds and what was written. Rows are never updated.
//
// # Ordering
//
// Rows are ordered by the auto-increment seq column. Run IDs are UUIDv7 and
// so also sort by time, but queries never rely on that.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: two shells appending to one history file wait
//     instead of failing
package store
