package report

import (
	"fmt"
	"io"

	"github.com/nao1215/credscan/internal/model"
)

// Writer defines the interface for result export.
// Implementations serialize the deduplicated records of a scan report in a
// specific format.
type Writer interface {
	// Write outputs the report's records to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.ScanReport) (int, error)
}

// NewWriter returns the export writer for the given format.
// The format has already been validated by model.ParseFormat, so an unknown
// value here is a programming error.
func NewWriter(format model.Format, output io.Writer) (Writer, error) {
	switch format {
	case model.FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case model.FormatCSV:
		return NewCSVWriter(output), nil
	case model.FormatText:
		return NewTextWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: format %d", model.ErrUnsupportedFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
