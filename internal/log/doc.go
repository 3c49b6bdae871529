// Package log provides secure logging functionality for credscan, built on
// top of the standard slog package.
//
// credscan's whole job is pulling passwords out of text files, which makes
// its logs unusually dangerous: a debug line that echoes a matched input line
// leaks the very secrets the output file is supposed to contain. This package
// provides:
//   - SecureHandler: an slog.Handler wrapper that masks credential values in
//     log attributes before they reach any underlying handler
//   - OpenErrorLog: the append-only error.log file logger that receives
//     recoverable per-line scan failures
//
// Even in verbose mode, password values are masked so logs can be shared
// without exposing extracted credentials.
package log
