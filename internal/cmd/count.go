package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/vfsh/archive"
)

// NewCountCmd creates and returns the count subcommand for the vfsh CLI.
// It reports entry statistics for an archive.
func NewCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count ARCHIVE",
		Short: "Count the entries of an archive",
		Long: `Count the directories and files an archive produces once loaded.

Implicit parent directories are included in the directory count, and files
are split into text and binary the same way the shell classifies them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := archive.StatsFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Directories:  %d\n", stats.Directories)
			fmt.Fprintf(out, "Text files:   %d\n", stats.TextFiles)
			fmt.Fprintf(out, "Binary files: %d\n", stats.BinaryFiles)
			fmt.Fprintf(out, "Total files:  %d\n", stats.Files())
			fmt.Fprintf(out, "Total bytes:  %d\n", stats.Bytes)
			return nil
		},
	}
}
