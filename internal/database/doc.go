// Package database provides SQLite-based run history storage for credscan.
//
// Each completed scan run is stored as one row: the input path, keyword set,
// counters, and the full report JSON. The history command reads this store
// to list and redisplay past runs.
//
// Design decision: We use SQLite (via modernc.org/sqlite) because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for an append-mostly history log
// 4. WAL mode provides good concurrent read performance
package database
