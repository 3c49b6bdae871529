package report

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/nao1215/credscan/internal/model"
)

// csvHeader is the fixed header row of CSV exports.
var csvHeader = []string{"url", "username", "password"}

// CSVWriter exports records as comma-separated values with a header row.
// Fields containing commas or quotes are quoted per RFC 4180, which
// encoding/csv handles.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report's records in CSV format.
// An empty record set still produces the header row.
func (w *CSVWriter) Write(report *model.ScanReport) (int, error) {
	// Buffer the whole export so the byte count is exact and a marshal
	// failure leaves the destination untouched.
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}

	for _, rec := range report.Records {
		if err := cw.Write([]string{rec.URL, rec.Username, rec.Password}); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
