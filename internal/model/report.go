package model

import (
	"time"
)

// ScanReport is the accumulated state of a single scan run.
// It is the explicit context object passed through every pipeline step:
// the collector fills Files, the scanner fills Matches, the filter fills
// Filtered, and the dedupe stage fills Records. There is no module-level
// mutable state anywhere in the pipeline.
//
// Design decision: We use a single struct rather than separate per-stage
// results because each stage only appends to its own slice and reads the
// previous stage's output. This keeps the stage signatures uniform and makes
// the whole run trivially serializable for the run-history database.
type ScanReport struct {
	// Path is the input file or directory that was scanned.
	Path string `json:"path"`

	// Keywords is the keyword set used for URL filtering.
	Keywords []string `json:"keywords"`

	// OutputFile is the export destination.
	OutputFile string `json:"output_file,omitempty"`

	// Format is the export format name ("json", "csv", "txt").
	Format string `json:"format,omitempty"`

	// DateScanned is the timestamp when the scan started.
	DateScanned time.Time `json:"date_scanned"`

	// Elapsed is the total wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// Files is the ordered list of files selected by the collector.
	Files []string `json:"files,omitempty"`

	// Matches holds every credential found by the scanner, before filtering.
	Matches []Match `json:"matches,omitempty"`

	// Filtered holds the matches whose URL contained at least one keyword.
	Filtered []Match `json:"filtered,omitempty"`

	// Records is the final deduplicated credential list, in first-seen order.
	Records []Credential `json:"records"`

	// Stats holds per-run counters for summary output and run history.
	Stats ScanStats `json:"stats"`
}

// ScanStats holds counters accumulated during a scan run.
type ScanStats struct {
	// FilesScanned is the number of files the scanner actually opened and read.
	FilesScanned int `json:"files_scanned"`

	// FilesSkipped is the number of files that could not be read.
	FilesSkipped int `json:"files_skipped"`

	// LinesScanned is the total number of lines read across all files.
	LinesScanned int `json:"lines_scanned"`

	// MatchedLines is the number of lines that matched the credential pattern.
	MatchedLines int `json:"matched_lines"`

	// FilteredOut is the number of matches dropped by the keyword filter.
	FilteredOut int `json:"filtered_out"`

	// Duplicates is the number of records removed by deduplication.
	Duplicates int `json:"duplicates"`

	// LineErrors is the number of recoverable per-line errors written to the
	// error log. These never abort the run.
	LineErrors int `json:"line_errors"`
}

// NewScanReport creates a ScanReport for the given input path and keywords.
// The scan timestamp is set to the current time.
func NewScanReport(path string, keywords []string) *ScanReport {
	return &ScanReport{
		Path:        path,
		Keywords:    keywords,
		DateScanned: time.Now(),
	}
}

// AddMatch appends a scanner match and updates the matched-line counter.
func (r *ScanReport) AddMatch(m Match) {
	r.Matches = append(r.Matches, m)
	r.Stats.MatchedLines++
}

// TotalRecords returns the number of records in the final export set.
func (r *ScanReport) TotalRecords() int {
	return len(r.Records)
}

// HasErrors reports whether any recoverable errors occurred during the run.
func (r *ScanReport) HasErrors() bool {
	return r.Stats.LineErrors > 0 || r.Stats.FilesSkipped > 0
}
