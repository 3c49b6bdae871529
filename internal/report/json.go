package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/credscan/internal/model"
)

// JSONWriter exports records as a JSON array of objects with the keys
// url, username, and password.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because the record shape is tiny and fixed; the standard
// library gives consistent behavior with no extra dependency.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output with the given indent string.
func WithIndent(indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report's records as a JSON array.
// An empty record set produces an empty array, not null.
func (w *JSONWriter) Write(report *model.ScanReport) (int, error) {
	records := report.Records
	if records == nil {
		records = []model.Credential{}
	}

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(records, "", w.indentString)
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
