package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/vfsh/archive"
	"github.com/dendrascience/vfsh/vfs"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestSeedEntries(t *testing.T) {
	entries := seedEntries(25, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	generated := 0
	for name, e := range entries {
		if strings.HasPrefix(name, "/data/2024/") || strings.HasPrefix(name, "/data/2025/") {
			require.False(t, e.Dir)
			assert.Len(t, e.Data, 37)
			generated++
		}
	}
	assert.Equal(t, 25, generated)
	assert.Contains(t, entries, "/documents/report.txt")
}

func TestSeedEntries_NoFilesIsDefault(t *testing.T) {
	assert.Equal(t, vfs.DefaultEntries(), seedEntries(0, time.Now()))
}

func TestSeedCmd_Default(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "default.zip")

	_, err := execute(t, "seed", "-o", dest)
	require.NoError(t, err)

	entries, err := archive.Load(dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"bin/", "config/", "documents/", "temp/"}, vfs.New(entries).ListDir("/"))
}

func TestSeedCmd(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "seed.zip")

	out, err := execute(t, "seed", "-o", dest, "--files", "5", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+dest)

	stats, err := archive.StatsFile(dest)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Files())
	assert.Equal(t, 1, stats.BinaryFiles)
}

func TestPackCmd(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "docs", "empty"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "docs", "a.txt"), []byte("alpha"), 0o644))
	dest := filepath.Join(t.TempDir(), "packed.zip")

	out, err := execute(t, "pack", "-i", src, "-o", dest, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Packed 2 directories and 1 files")

	entries, err := archive.Load(dest)
	require.NoError(t, err)
	assert.Contains(t, entries, "/docs/empty/")
	assert.Equal(t, "alpha", entries["/docs/a.txt"].Data)
}

func TestPackCmd_DryRunAndErrors(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "never.zip")

	out, err := execute(t, "pack", "-i", src, "-o", dest, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would pack")
	assert.NoFileExists(t, dest)

	file := filepath.Join(src, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = execute(t, "pack", "-i", file, "-o", dest)
	assert.ErrorIs(t, err, archive.ErrExpectedDirectory)
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.zip")
	bad := filepath.Join(dir, "bad.zip")
	require.NoError(t, archive.WriteFile(good, seedEntries(0, time.Now())))
	require.NoError(t, os.WriteFile(bad, []byte("not a zip"), 0o644))

	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+good)

	out, err = execute(t, "validate", "-v", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 archives failed validation")
	assert.Contains(t, out, "FAIL "+bad)
	assert.Contains(t, out, "directories")
}

func TestCountCmd(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "count.zip")
	require.NoError(t, archive.WriteFile(dest, seedEntries(0, time.Now())))

	out, err := execute(t, "count", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Directories:  6\n")
	assert.Contains(t, out, "Text files:   6\n")
	assert.Contains(t, out, "Binary files: 1\n")
	assert.Contains(t, out, "Total files:  7\n")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vfsh version ")
}
