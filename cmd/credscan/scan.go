package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/credscan/internal/config"
	"github.com/nao1215/credscan/internal/database"
	"github.com/nao1215/credscan/internal/log"
	"github.com/nao1215/credscan/internal/model"
	"github.com/nao1215/credscan/internal/pipeline"
	"github.com/nao1215/credscan/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan files for credentials and export the filtered results",
		Long: `Scan reads the input path (a file or a directory of .txt files), extracts
lines of the form url:username:password, keeps the ones whose URL contains
at least one keyword, removes duplicates, and writes the result to the
output file. The output extension selects the format: .json, .csv, or .txt.

Lines that cannot be processed are appended to the error log with their
file and line number; they never abort the run.

Examples:
  # Scan a dump directory for example.com credentials, export as JSON
  credscan scan --path ./dumps --keywords example --output results.json

  # Multiple keywords, CSV export
  credscan scan --path leaks.txt --keywords example,corp --output out.csv

  # Custom error log location
  credscan scan --path ./dumps --keywords example --output out.txt --error-log scan-errors.log

Configuration file (.credscan) example:
  keywords:
    - example
    - corp
  extensions:
    - .txt
    - .log
  errorLog: scan-errors.log`,
		Args: cobra.NoArgs,
		RunE: runScanCmd,
	}

	// Input flags
	cmd.Flags().StringP("path", "p", config.DefaultPath,
		"Input file or directory to scan")
	cmd.Flags().StringSliceP("keywords", "k", nil,
		"Keywords to filter credential URLs (comma-separated or repeated)")

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Output file; extension selects the format (.json, .csv, .txt)")
	cmd.Flags().StringP("error-log", "e", config.DefaultErrorLogPath,
		"Append-only log file for recoverable per-line failures")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .credscan in current or home directory)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// The output extension is resolved into a typed format before any file
	// is scanned, so an unsupported extension fails fast.
	cfg.Format, err = model.ParseFormat(cfg.OutputFile)
	if err != nil {
		return err
	}

	// Set up structured logging with credential masking
	verbose := getVerboseFlag(cmd)
	logger := log.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flags win over file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Path, err = cmd.Flags().GetString("path")
	if err != nil {
		return nil, err
	}

	cfg.Keywords, err = cmd.Flags().GetStringSlice("keywords")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ErrorLogPath, err = cmd.Flags().GetString("error-log")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load defaults from the config file.
	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently proceed without one.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Always record runs in the XDG data directory
	cfg.SaveToDB = true
	cfg.DBDir = config.XDGDataDir()

	return cfg, nil
}

// runScan executes the scan pipeline and exports the results.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting scan",
		"path", cfg.Path,
		"keywords", cfg.Keywords,
		"output", cfg.OutputFile,
		"format", cfg.Format.String(),
	)

	// Open the error log for recoverable per-line failures
	errLog, err := log.OpenErrorLog(cfg.ErrorLogPath)
	if err != nil {
		return err
	}
	defer errLog.Close() //nolint:errcheck // Best effort close on exit

	// Open run history database. History is a convenience; a broken data
	// directory must not block a scan.
	var db *database.RunDB
	if cfg.SaveToDB {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("run history disabled", "dir", cfg.DBDir, "error", err)
			db = nil
		} else {
			defer db.Close() //nolint:errcheck // Best effort close on exit
		}
	}

	scanReport := model.NewScanReport(cfg.Path, cfg.Keywords)
	scanReport.OutputFile = cfg.OutputFile
	scanReport.Format = cfg.Format.String()

	progress := func(done, total int, file string) {
		fmt.Printf("[%d/%d] %s\n", done, total, file)
	}

	p := pipeline.DefaultPipeline(cfg, errLog, logger, progress)

	startTime := time.Now()
	if err := p.Execute(ctx, scanReport); err != nil {
		return err
	}
	scanReport.Elapsed = time.Since(startTime)

	// Export the deduplicated records
	if err := exportReport(cfg, scanReport); err != nil {
		return err
	}

	printSummary(scanReport, cfg.ErrorLogPath)

	// Record the run; failures here never fail the scan
	saveRun(ctx, db, scanReport, logger)

	return nil
}

// exportReport writes the report's records to the configured output file.
// The file is overwritten if it exists; parent directories are created.
func exportReport(cfg *config.Config, scanReport *model.ScanReport) error {
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// 0600: the export contains extracted credentials and should only be
	// readable by the owner.
	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Errors surface via writer below

	w, err := report.NewWriter(cfg.Format, f)
	if err != nil {
		return err
	}

	if _, err := w.Write(scanReport); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return f.Sync()
}

// printSummary prints the run summary to stdout.
func printSummary(scanReport *model.ScanReport, errorLogPath string) {
	fmt.Printf("\nScan completed in %s\n", scanReport.Elapsed.Round(time.Millisecond))
	fmt.Printf("  Files scanned:    %d\n", scanReport.Stats.FilesScanned)
	fmt.Printf("  Lines scanned:    %d\n", scanReport.Stats.LinesScanned)
	fmt.Printf("  Matched lines:    %d\n", scanReport.Stats.MatchedLines)
	fmt.Printf("  Exported records: %d\n", scanReport.TotalRecords())

	if scanReport.HasErrors() {
		fmt.Printf("  Recoverable errors: %d (see %s)\n",
			scanReport.Stats.LineErrors+scanReport.Stats.FilesSkipped, errorLogPath)
	}

	fmt.Printf("\nResults written to %s\n", scanReport.OutputFile)
}

// saveRun records the completed run in the history database.
// If db is nil, this function is a no-op.
func saveRun(ctx context.Context, db *database.RunDB, scanReport *model.ScanReport, logger *slog.Logger) {
	if db == nil {
		return
	}

	id, err := db.SaveRun(ctx, scanReport)
	if err != nil {
		logger.Warn("failed to record run in history", "error", err)
		return
	}

	logger.Info("run recorded in history", "id", id)
}
