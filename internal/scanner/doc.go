// Package scanner reads input files line by line and extracts credential
// triples of the form url:username:password.
//
// Files are decoded tolerantly: UTF-16 input (detected by BOM) and Latin-1
// input are converted, and invalid bytes are replaced rather than treated as
// fatal. A line that cannot be processed (for example one exceeding the line
// length cap) is written to the error log with its file and line number, and
// scanning continues. Single-line failures never abort a run.
package scanner
