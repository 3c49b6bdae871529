package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/credscan/internal/model"
)

// MarkdownWriter outputs a run summary in Markdown format.
// It is used by the history command for documentation and sharing; it is a
// summary, not an export format, and deliberately contains no credential
// values, only counts and source information.
//
// Design decision: We use the nao1215/markdown library for fluent, type-safe
// markdown generation with table support.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Credential Scan Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input Path", "`" + report.Path + "`"},
			{"Keywords", strings.Join(report.Keywords, ", ")},
			{"Output", "`" + report.OutputFile + "` (" + report.Format + ")"},
			{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed.String()},
		},
	})
	md.PlainText("")

	md.H2("Results")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Files scanned", strconv.Itoa(report.Stats.FilesScanned)},
			{"Files skipped", strconv.Itoa(report.Stats.FilesSkipped)},
			{"Lines scanned", strconv.Itoa(report.Stats.LinesScanned)},
			{"Matched lines", strconv.Itoa(report.Stats.MatchedLines)},
			{"Filtered out", strconv.Itoa(report.Stats.FilteredOut)},
			{"Duplicates removed", strconv.Itoa(report.Stats.Duplicates)},
			{"Line errors", strconv.Itoa(report.Stats.LineErrors)},
			{"**Exported records**", "**" + strconv.Itoa(report.TotalRecords()) + "**"},
		},
	})
	md.PlainText("")

	if report.HasErrors() {
		md.Warningf(
			"%d recoverable error(s) occurred during this run. See the error log for details.",
			report.Stats.LineErrors+report.Stats.FilesSkipped,
		)
	}

	return len(md.String()), md.Build()
}
