// Package model defines the core data structures used throughout credscan.
//
// This package contains the following main types:
//   - Credential: A parsed URL/username/password triple
//   - Match: A Credential together with its source file and line number
//   - ScanReport: The accumulated result of a single scan run
//   - Format: The output format selected from the output file extension
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (collector, scanner, filter, report, database)
// need to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for export output and
// database storage.
package model
