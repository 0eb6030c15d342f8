package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/vfsh/archive"
)

// NewValidateCmd creates and returns the validate subcommand for the vfsh CLI.
// It checks that archives load the same way the shell would load them.
func NewValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate ARCHIVE...",
		Short: "Check that archives load",
		Long: `Check that each ARCHIVE exists and is a readable zip archive whose
entries can be loaded into the virtual filesystem.

The command fails if any archive is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show statistics for valid archives")

	return cmd
}

func runValidate(cmd *cobra.Command, paths []string, verbose bool) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, p := range paths {
		stats, err := archive.StatsFile(p)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", p, err)
			continue
		}
		if verbose {
			fmt.Fprintf(out, "ok   %s (%d directories, %d files)\n", p, stats.Directories, stats.Files())
		} else {
			fmt.Fprintf(out, "ok   %s\n", p)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d archives failed validation", failed, len(paths))
	}
	return nil
}
