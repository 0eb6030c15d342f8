package cmd

import (
	"fmt"
	"math/rand/v2"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dendrascience/vfsh/archive"
	"github.com/dendrascience/vfsh/vfs"
)

// NewSeedCmd creates and returns the seed subcommand for the vfsh CLI.
// It writes the built-in filesystem, optionally padded with generated files,
// to a zip archive.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in filesystem to a zip archive",
		Long: `Write the built-in filesystem to a zip archive that the shell can load
with --archive or the vfs command.

With --files, generated files are added under /data in a YYYY/MM/DD directory
structure. Each generated file contains a single UUID line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := seedEntries(fileCount, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
			if err := archive.WriteFile(outputPath, entries); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			if verbose {
				stats := archive.StatsOf(entries)
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d directories, %d files\n", outputPath, stats.Directories, stats.Files())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the archive to write (required)")
	cmd.Flags().IntVarP(&fileCount, "files", "f", 0, "Number of generated files to add")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// seedEntries returns the default entries plus count generated files dated
// within a year of base.
func seedEntries(count int, base time.Time) map[string]vfs.Entry {
	entries := vfs.DefaultEntries()
	if count <= 0 {
		return entries
	}
	entries["/data/"] = vfs.DirEntry()

	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.NewString()
	}

	for created := 0; created < count; {
		fileTime := base.AddDate(0, 0, rand.IntN(365)).Add(time.Duration(rand.IntN(86400)) * time.Second)
		dir := path.Join("/data",
			fmt.Sprintf("%04d", fileTime.Year()),
			fmt.Sprintf("%02d", fileTime.Month()),
			fmt.Sprintf("%02d", fileTime.Day()))

		ext := ".json"
		if rand.IntN(2) == 1 {
			ext = ".txt"
		}
		name := path.Join(dir, fmt.Sprintf("%08x%s", rand.Uint32(), ext))
		if _, exists := entries[name]; exists {
			continue
		}

		entries[name] = vfs.TextEntry(uuidPool[rand.IntN(len(uuidPool))] + "\n")
		created++
	}
	return entries
}
