package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when the output file extension does not
// correspond to a known export format. This is a fatal, run-level error:
// the format is resolved once at startup, before any file is scanned.
var ErrUnsupportedFormat = errors.New("unsupported output format: use .json, .csv, or .txt")

// Format identifies an export format for scan results.
//
// Design decision: The original tool dispatched on the extension string at
// write time. We resolve the extension into a typed constant once at startup
// instead, so an unsupported extension fails before scanning starts and the
// writers never see raw strings.
type Format int

const (
	// FormatJSON exports records as a JSON array of objects.
	FormatJSON Format = iota

	// FormatCSV exports records as comma-separated values with a header row.
	FormatCSV

	// FormatText exports records one per line in the original
	// url:username:password form.
	FormatText
)

// ParseFormat resolves an output file path into a Format based on its
// extension (case-insensitive). Unknown extensions return ErrUnsupportedFormat.
func ParseFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt":
		return FormatText, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatText:
		return "txt"
	default:
		return "unknown"
	}
}
