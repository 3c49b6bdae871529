// Package filter retains credential matches whose URL contains at least one
// of the configured keywords, using case-insensitive substring matching.
package filter
