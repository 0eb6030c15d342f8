package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dendrascience/vfsh/vfs"
)

// Load reads the zip archive at path into a filesystem mapping.
func Load(path string) (map[string]vfs.Entry, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidArchiveFormat, path)
	}

	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArchiveFormat, path, err)
	}
	defer zrc.Close()

	return Decode(&zrc.Reader)
}

// Decode converts the entries of an open zip reader into a filesystem mapping.
func Decode(r *zip.Reader) (map[string]vfs.Entry, error) {
	entries := make(map[string]vfs.Entry, len(r.File))
	for _, f := range r.File {
		name := vfs.Normalize("/"+f.Name, vfs.Root)
		if name == vfs.Root {
			continue
		}
		if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
			entries[strings.TrimSuffix(name, "/")+"/"] = vfs.DirEntry()
			addParents(entries, name)
			continue
		}

		data, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrInvalidArchiveFormat, f.Name, err)
		}
		if utf8.Valid(data) && !bytes.HasPrefix(data, []byte(vfs.BinaryTag)) {
			entries[name] = vfs.TextEntry(string(data))
		} else {
			entries[name] = vfs.BinaryEntry(data)
		}
		addParents(entries, name)
	}
	return entries, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// addParents adds directory markers for every ancestor of name below the root.
func addParents(entries map[string]vfs.Entry, name string) {
	trimmed := strings.TrimSuffix(name, "/")
	for i := strings.LastIndex(trimmed, "/"); i > 0; i = strings.LastIndex(trimmed, "/") {
		trimmed = trimmed[:i]
		dir := trimmed + "/"
		if _, ok := entries[dir]; ok {
			return
		}
		entries[dir] = vfs.DirEntry()
	}
}
