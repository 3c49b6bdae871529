package pipeline

import (
	"log/slog"

	"github.com/nao1215/credscan/internal/collector"
	"github.com/nao1215/credscan/internal/config"
	"github.com/nao1215/credscan/internal/filter"
	"github.com/nao1215/credscan/internal/log"
	"github.com/nao1215/credscan/internal/scanner"
)

// DefaultPipeline assembles the standard collect, scan, filter, dedupe
// sequence from a validated configuration.
//
// errLog may be nil when no error log is available; recoverable failures are
// then only counted and logged to the structured logger.
func DefaultPipeline(cfg *config.Config, errLog *log.ErrorLog, logger *slog.Logger, progress ProgressFunc) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	p := New(WithLogger(logger))

	p.AddSteps(
		NewCollectStep(collector.New(
			collector.WithExtensions(cfg.Extensions),
			collector.WithLogger(logger),
		)),
		NewScanStep(
			scanner.New(
				scanner.WithMaxLineBytes(cfg.MaxLineBytes),
				scanner.WithErrorLog(errLog),
				scanner.WithLogger(logger),
			),
			WithProgress(progress),
			WithScanLogger(logger),
		),
		NewFilterStep(filter.New(cfg.Keywords)),
		NewDedupeStep(),
	)

	return p
}
