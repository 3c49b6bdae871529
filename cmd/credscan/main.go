// Package main provides the entry point for the credscan CLI.
//
// credscan scans text files for url:username:password lines, filters the
// matches by URL keywords, and exports the deduplicated results to JSON,
// CSV, or plain text.
//
// Usage:
//
//	credscan scan --path <dir-or-file> --keywords <kw,...> --output <file>
//	credscan history [run-id]
//
// See --help for all available options.
package main

// main is the entry point for credscan.
func main() {
	Execute()
}
