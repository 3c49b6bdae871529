package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for credscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credscan",
		Short: "Extract url:username:password credentials from text files",
		Long: `credscan scans text files for lines containing url:username:password
triples, filters the matches by URL keywords, and exports the deduplicated
results to JSON, CSV, or plain text.

Recoverable per-line failures are written to an error log and never abort
a run. Completed runs are recorded in a local history database.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
