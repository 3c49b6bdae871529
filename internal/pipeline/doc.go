// Package pipeline executes the scan stages in sequence.
//
// A run passes a single ScanReport through four stages: collect (resolve the
// input path into files), scan (extract credential lines), filter (keep URLs
// containing a keyword), and dedupe (remove structural duplicates, first-seen
// order preserved). Each stage is a Step that mutates the report.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context between stages
//
// Execution is strictly sequential and single-threaded: there is exactly one
// pass over the input, no retries, and no concurrent access to the report.
package pipeline
