package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dendrascience/vfsh/archive"
)

// NewPackCmd creates and returns the pack subcommand for the vfsh CLI.
// It archives a host directory tree so the shell can browse it.
func NewPackCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		verbose    bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Archive a host directory tree",
		Long: `Archive a host directory tree into a zip file the shell can load.

Directories are stored explicitly so empty ones survive loading. Files that
are not valid UTF-8 are shown as binary by the shell.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, inputPath, outputPath, verbose, dryRun)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Directory to archive (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the archive to write (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without writing")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runPack(cmd *cobra.Command, inputPath, outputPath string, verbose, dryRun bool) error {
	out := cmd.OutOrStdout()
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", archive.ErrExpectedDirectory, inputPath)
	}

	if dryRun {
		fmt.Fprintf(out, "Would pack %s into %s\n", inputPath, outputPath)
		return nil
	}
	if verbose {
		fmt.Fprintf(out, "Packing %s into %s\n", inputPath, outputPath)
	}

	if err := archive.PackDir(inputPath, outputPath); err != nil {
		return fmt.Errorf("pack failed: %w", err)
	}

	if verbose {
		stats, err := archive.StatsFile(outputPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Packed %d directories and %d files (%d bytes)\n", stats.Directories, stats.Files(), stats.Bytes)
	}
	return nil
}
