// Package config provides configuration structures and utilities for credscan.
// It defines the scan options (input path, keywords, output target, error log),
// the optional YAML configuration file, and the XDG directory helpers used for
// the run-history database.
package config
