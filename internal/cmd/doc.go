// Package cmd provides the command-line interface implementation for vfsh.
//
// The root command runs a shell session, in the terminal UI when stdin and
// stdout are terminals and line by line otherwise. Subcommands work with the
// zip archives the shell loads:
//   - mount: read-only FUSE view of an archive
//   - seed: write the built-in filesystem to an archive
//   - pack: archive a host directory tree
//   - validate: check that archives load
//   - count: archive statistics
//   - version: build information
//
// Each command is implemented in its own file with a constructor returning a
// *cobra.Command; main executes the root command through fang.
package cmd
