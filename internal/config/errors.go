package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoPath is returned when the input path is empty.
	ErrNoPath = errors.New("no input path specified: provide a file or directory with --path")

	// ErrNoKeywords is returned when no filter keywords are specified.
	// The scan command requires at least one keyword; use the library-level
	// filter directly for unfiltered extraction.
	ErrNoKeywords = errors.New("no keywords specified: provide at least one keyword with --keywords")

	// ErrNoOutput is returned when no output file is specified.
	ErrNoOutput = errors.New("no output file specified: provide one with --output (.json, .csv, or .txt)")

	// ErrInvalidMaxLineBytes is returned when the line length cap is not positive.
	ErrInvalidMaxLineBytes = errors.New("invalid max line bytes: must be positive")
)
