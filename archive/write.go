package archive

import (
	"archive/zip"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dendrascience/vfsh/vfs"
)

// Write stores entries as a zip archive on w. Entry names drop the leading
// slash so that Load reproduces the same canonical paths.
func Write(w io.Writer, entries map[string]vfs.Entry) error {
	zw := zip.NewWriter(w)
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		e := entries[name]
		stored := strings.TrimPrefix(name, "/")
		if stored == "" {
			continue
		}
		if e.Dir {
			if _, err := zw.Create(strings.TrimSuffix(stored, "/") + "/"); err != nil {
				return err
			}
			continue
		}
		writer, err := zw.Create(stored)
		if err != nil {
			return err
		}
		if _, err := writer.Write(e.Bytes()); err != nil {
			return err
		}
	}
	return zw.Close()
}

// WriteFile stores entries as a zip archive at dest, replacing any existing file.
func WriteFile(dest string, entries map[string]vfs.Entry) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := Write(file, entries); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// PackDir archives the directory tree rooted at dir into dest. Directories
// are stored as explicit markers so empty directories survive the round trip.
// If dest lies inside dir it is skipped. On failure dest is removed.
func PackDir(dir, dest string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrExpectedDirectory
	}

	var skip string
	absDir, errDir := filepath.Abs(dir)
	absDest, errDest := filepath.Abs(dest)
	if errDir == nil && errDest == nil {
		if rel, err := filepath.Rel(absDir, absDest); err == nil && rel != ".." &&
			!strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			skip = filepath.ToSlash(rel)
		}
	}
	return packFS(os.DirFS(dir), dest, skip)
}

// packFS writes every directory and regular file of fsys into a new archive
// at dest, leaving out the file named skip.
func packFS(fsys fs.FS, dest, skip string) (err error) {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dest)
		}
	}()

	w := zip.NewWriter(file)
	err = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if name == "." || name == skip {
			return nil
		}
		if d.IsDir() {
			_, err := w.Create(name + "/")
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyInto(w, fsys, name)
	})
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func copyInto(w *zip.Writer, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	writer, err := w.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, f)
	return err
}
