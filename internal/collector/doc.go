// Package collector resolves the input path into the ordered list of files
// to scan. A directory is walked recursively and filtered by extension; a
// single file is passed through regardless of extension. The resulting list
// is sorted so a scan over the same tree always visits files in the same
// order, which keeps exports deterministic.
package collector
