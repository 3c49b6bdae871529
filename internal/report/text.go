package report

import (
	"io"
	"strings"

	"github.com/nao1215/credscan/internal/model"
)

// TextWriter exports records one per line, in the original
// url:username:password form they were found in.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report's records as plain text.
// An empty record set produces an empty file.
func (w *TextWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder
	for _, rec := range report.Records {
		sb.WriteString(rec.String())
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}
