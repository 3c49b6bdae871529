package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/credscan/internal/config"
	"github.com/nao1215/credscan/internal/database"
	"github.com/nao1215/credscan/internal/model"
	"github.com/nao1215/credscan/internal/report"
)

// NewHistoryCmd creates the history command.
// This command lists and redisplays past scan runs stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List and show past scan runs",
		Long: `History lists scan runs recorded in the local database and shows the
summary of a specific run by ID.

Every 'credscan scan' records its run: input path, keywords, counters, and
the full result set. The history command makes past runs auditable without
re-reading any input files.

Examples:
  # List all recorded runs
  credscan history

  # Show the summary of run 5
  credscan history 5

  # Show run 5 as JSON (full report including records)
  credscan history --json 5

  # Show run 5 as a Markdown summary
  credscan history --markdown 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output the full run report in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output the run summary in Markdown format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close() //nolint:errcheck // Read-mostly command

	ctx := context.Background()

	// No argument: list all runs
	if len(args) == 0 {
		return listRuns(ctx, db)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", args[0], err)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	return showRun(ctx, db, id, jsonOutput, markdownOutput)
}

// listRuns lists all recorded runs, newest first.
func listRuns(ctx context.Context, db *database.RunDB) error {
	runs, err := db.ListRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs found.")
		fmt.Println("\nUse 'credscan scan' to scan for credentials.")
		return nil
	}

	fmt.Printf("Recorded runs (%d):\n\n", len(runs))
	fmt.Printf("  %-6s  %-20s  %-8s  %-7s  %s\n", "ID", "Date", "Records", "Errors", "Path")
	fmt.Println("  " + strings.Repeat("-", 70))

	for _, meta := range runs {
		fmt.Printf("  %-6d  %-20s  %-8d  %-7d  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.Records,
			meta.LineErrors,
			meta.Path,
		)
	}

	fmt.Println("\nUse 'credscan history <id>' to show a run's summary.")

	return nil
}

// showRun displays a single run in the requested format.
func showRun(ctx context.Context, db *database.RunDB, id int64, jsonOutput, markdownOutput bool) error {
	run, err := db.GetRunByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get run %d: %w", id, err)
	}
	if run == nil {
		return fmt.Errorf("run %d not found (use 'credscan history' to list runs)", id)
	}

	// Full report including records; JSON is the only format that exposes
	// credential values, matching the scan export behavior.
	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(run)
	}

	if markdownOutput {
		writer := report.NewMarkdownWriter(os.Stdout)
		_, err := writer.Write(run)
		return err
	}

	return showRunText(run, id)
}

// showRunText displays a run summary in plain text.
// Credential values are not printed; use --json for the full record set.
func showRunText(run *model.ScanReport, id int64) error {
	fmt.Printf("Run %d\n", id)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Input path:   %s\n", run.Path)
	fmt.Printf("Keywords:     %s\n", strings.Join(run.Keywords, ", "))
	fmt.Printf("Output:       %s (%s)\n", run.OutputFile, run.Format)
	fmt.Printf("Scan date:    %s\n", run.DateScanned.Format("2006-01-02 15:04:05"))
	fmt.Printf("Elapsed:      %s\n", run.Elapsed)
	fmt.Println()
	fmt.Printf("Files scanned:      %d\n", run.Stats.FilesScanned)
	fmt.Printf("Lines scanned:      %d\n", run.Stats.LinesScanned)
	fmt.Printf("Matched lines:      %d\n", run.Stats.MatchedLines)
	fmt.Printf("Filtered out:       %d\n", run.Stats.FilteredOut)
	fmt.Printf("Duplicates removed: %d\n", run.Stats.Duplicates)
	fmt.Printf("Line errors:        %d\n", run.Stats.LineErrors)
	fmt.Printf("Exported records:   %d\n", run.TotalRecords())

	return nil
}
