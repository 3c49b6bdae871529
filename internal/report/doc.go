// Package report provides export and summary output for scan results.
//
// This package contains writers for the supported export formats:
//   - JSONWriter: array of {url, username, password} objects
//   - CSVWriter: header row plus one row per record
//   - TextWriter: one url:username:password line per record
//   - MarkdownWriter: run summary in Markdown, used by the history command
//
// Design decision: We separate report writing from the data structures
// (which are in the model package) so new output formats can be added
// without touching the core types. Writers implement the Writer interface
// and are selected once at startup via NewWriter from the typed Format.
package report
