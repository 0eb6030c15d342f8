package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/spf13/cobra"

	"github.com/dendrascience/vfsh/archive"
	"github.com/dendrascience/vfsh/internal/logging"
	"github.com/dendrascience/vfsh/vfs"
	"github.com/dendrascience/vfsh/version"
)

// NewMountCmd creates and returns the mount subcommand for the vfsh CLI.
// It exposes an archive as a read-only FUSE filesystem.
func NewMountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mount ARCHIVE MOUNTPOINT",
		Short: "Mount an archive as a read-only filesystem",
		Long: `Mount the virtual filesystem loaded from ARCHIVE at MOUNTPOINT.

ARCHIVE is a zip archive in the same format the shell's vfs command loads.
Use "-" to mount the built-in filesystem instead.
MOUNTPOINT is an existing directory. Interrupt the command to unmount.`,
		Args: cobra.ExactArgs(2),
		RunE: runMount,
	}
}

func runMount(cmd *cobra.Command, args []string) error {
	archivePath := args[0]
	mountpoint := args[1]

	level, _ := cmd.Flags().GetString("log-level")
	logger, err := logging.New(os.Stderr, level)
	if err != nil {
		return err
	}
	logger.Info("starting", "version", version.GetFullVersion())

	entries := vfs.DefaultEntries()
	if archivePath != "-" {
		if pathsOverlap(archivePath, mountpoint) {
			return fmt.Errorf("archive %s must not live inside mountpoint %s", archivePath, mountpoint)
		}
		entries, err = archive.Load(archivePath)
		if err != nil {
			return err
		}
	}
	filesystem := vfs.NewMountFS(vfs.New(entries, vfs.WithLogger(logging.Component(logger, "vfs"))))

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("vfsh"),
		fuse.Subtype("vfsh"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return fmt.Errorf("failed to mount %s: %w", mountpoint, err)
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	served := make(chan struct{})
	defer close(served)
	go func() {
		select {
		case <-served:
			return
		case <-ctx.Done():
		}
		logger.Info("received interrupt, unmounting", "mountpoint", mountpoint)
		if err := fuse.Unmount(mountpoint); err != nil {
			logger.Error("unmount failed", "err", err)
		}
	}()

	logger.Info("mounted", "mountpoint", mountpoint, "archive", archivePath, "entries", len(entries))
	if err := fs.Serve(c, filesystem); err != nil {
		return fmt.Errorf("serving %s: %w", mountpoint, err)
	}
	logger.Info("shutdown complete")
	return nil
}

// pathsOverlap reports whether one path is the same as or nested inside the
// other once both are made absolute.
func pathsOverlap(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		return false
	}
	if abs1 == abs2 {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(abs1, abs2+sep) || strings.HasPrefix(abs2, abs1+sep)
}
