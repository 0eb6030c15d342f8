package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/vfsh/version"
)

// NewVersionCmd creates and returns the version subcommand for the vfsh CLI.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "vfsh")
		},
	}
}
