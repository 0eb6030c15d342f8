package cmd

import (
	"github.com/dendrascience/vfsh/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the vfsh CLI.
// Running it without a subcommand starts a shell session.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vfsh",
		Short: "vfsh - a toy shell over an in-memory virtual filesystem",
		Long: `vfsh is a toy shell over a read-only, in-memory virtual filesystem.

The filesystem is seeded from built-in data or from a zip archive. The shell
understands ls, cd, pwd, echo, cls, tree, tac, script, vfs and exit, and
substitutes $NAME references from its session environment.

Use subcommands to work with archives:
  - mount: Expose an archive as a read-only FUSE filesystem
  - seed: Write the built-in filesystem to a zip archive
  - pack: Archive a host directory tree
  - validate: Check that archives load
  - count: Show archive statistics`,
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShell,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	addShellFlags(rootCmd)

	groupUtilities := "utilities"
	groupFilesystem := "filesystem"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Archive Utilities",
	})

	mountCmd := NewMountCmd()
	seedCmd := NewSeedCmd()
	packCmd := NewPackCmd()
	validateCmd := NewValidateCmd()
	countCmd := NewCountCmd()
	versionCmd := NewVersionCmd()

	mountCmd.GroupID = groupFilesystem
	seedCmd.GroupID = groupUtilities
	packCmd.GroupID = groupUtilities
	validateCmd.GroupID = groupUtilities
	countCmd.GroupID = groupUtilities

	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
