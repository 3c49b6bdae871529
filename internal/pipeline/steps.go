package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/credscan/internal/collector"
	"github.com/nao1215/credscan/internal/filter"
	"github.com/nao1215/credscan/internal/model"
	"github.com/nao1215/credscan/internal/scanner"
)

// CollectStep resolves the input path into the list of files to scan.
// It is the only step that can fail fatally: a nonexistent input path makes
// the rest of the run meaningless.
type CollectStep struct {
	// collector resolves paths into file lists.
	collector *collector.Collector
}

// NewCollectStep creates a collect step using the given collector.
func NewCollectStep(c *collector.Collector) *CollectStep {
	return &CollectStep{collector: c}
}

// Name returns the step name.
func (s *CollectStep) Name() string {
	return "collect"
}

// Do resolves the report's input path into report.Files.
func (s *CollectStep) Do(ctx context.Context, report *model.ScanReport) error {
	files, err := s.collector.Collect(ctx, report.Path)
	if err != nil {
		return err
	}

	report.Files = files
	return nil
}

// ProgressFunc is called after each file completes scanning.
// done is the number of completed files, total the number collected.
// It is an observational side effect only; implementations must not assume
// any particular call ordering guarantees beyond "once per file, in order".
type ProgressFunc func(done, total int, file string)

// ScanStep reads every collected file line by line and extracts credential
// matches into the report. Unreadable files and unprocessable lines are
// recoverable: they are logged and counted, and the scan continues.
type ScanStep struct {
	// scanner extracts credentials from files.
	scanner *scanner.Scanner

	// progress, if set, is invoked after each file completes.
	progress ProgressFunc

	// logger for structured logging.
	logger *slog.Logger
}

// ScanStepOption configures a ScanStep.
type ScanStepOption func(*ScanStep)

// WithProgress sets a progress callback invoked after each file completes.
func WithProgress(fn ProgressFunc) ScanStepOption {
	return func(s *ScanStep) {
		s.progress = fn
	}
}

// WithScanLogger sets a custom logger for the scan step.
func WithScanLogger(logger *slog.Logger) ScanStepOption {
	return func(s *ScanStep) {
		s.logger = logger
	}
}

// NewScanStep creates a scan step using the given scanner.
func NewScanStep(sc *scanner.Scanner, opts ...ScanStepOption) *ScanStep {
	s := &ScanStep{
		scanner: sc,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ScanStep) Name() string {
	return "scan"
}

// Do scans every collected file sequentially, one open file at a time.
func (s *ScanStep) Do(ctx context.Context, report *model.ScanReport) error {
	total := len(report.Files)
	for i, file := range report.Files {
		if err := s.scanner.ScanFile(ctx, file, report); err != nil {
			return err
		}

		if s.progress != nil {
			s.progress(i+1, total, file)
		}
	}

	s.logger.Debug("scan completed",
		"files", report.Stats.FilesScanned,
		"lines", report.Stats.LinesScanned,
		"matches", report.Stats.MatchedLines,
	)
	return nil
}

// FilterStep retains matches whose URL contains at least one keyword.
type FilterStep struct {
	// filter performs the keyword matching.
	filter *filter.KeywordFilter
}

// NewFilterStep creates a filter step using the given keyword filter.
func NewFilterStep(f *filter.KeywordFilter) *FilterStep {
	return &FilterStep{filter: f}
}

// Name returns the step name.
func (s *FilterStep) Name() string {
	return "filter"
}

// Do fills report.Filtered with the keyword-matching subset of the matches.
func (s *FilterStep) Do(_ context.Context, report *model.ScanReport) error {
	report.Filtered = s.filter.Apply(report.Matches)
	report.Stats.FilteredOut = len(report.Matches) - len(report.Filtered)
	return nil
}

// DedupeStep removes structural duplicates from the filtered matches,
// preserving first-seen order, and fills the final record list.
type DedupeStep struct{}

// NewDedupeStep creates a dedupe step.
func NewDedupeStep() *DedupeStep {
	return &DedupeStep{}
}

// Name returns the step name.
func (s *DedupeStep) Name() string {
	return "dedupe"
}

// Do fills report.Records with the unique credentials from report.Filtered.
func (s *DedupeStep) Do(_ context.Context, report *model.ScanReport) error {
	seen := make(map[string]bool, len(report.Filtered))
	records := make([]model.Credential, 0, len(report.Filtered))

	for _, m := range report.Filtered {
		key := m.Key()
		if seen[key] {
			report.Stats.Duplicates++
			continue
		}
		seen[key] = true
		records = append(records, m.Credential)
	}

	report.Records = records
	return nil
}
