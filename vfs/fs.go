package vfs

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// FS is a read-only virtual filesystem with a mutable current directory.
// It is not safe for concurrent use by the shell; the FUSE view only reads
// the entry map and never touches the current directory.
type FS struct {
	entries map[string]Entry
	cwd     string
	logger  *log.Logger
}

// Option configures an FS.
type Option func(*FS)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(fs *FS) {
		if logger != nil {
			fs.logger = logger
		}
	}
}

// New creates a filesystem over entries. The map is owned by the FS after
// the call and must not be modified by the caller.
func New(entries map[string]Entry, opts ...Option) *FS {
	if entries == nil {
		entries = make(map[string]Entry)
	}
	fs := &FS{
		entries: entries,
		cwd:     Root,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(fs)
	}
	return fs
}

// NewDefault creates a filesystem populated with DefaultEntries.
func NewDefault(opts ...Option) *FS {
	return New(DefaultEntries(), opts...)
}

// Cwd returns the current directory.
func (fs *FS) Cwd() string {
	return fs.cwd
}

// Len returns the number of entries in the mapping.
func (fs *FS) Len() int {
	return len(fs.entries)
}

// Paths returns every key of the mapping in sorted order.
func (fs *FS) Paths() []string {
	return slices.Sorted(maps.Keys(fs.entries))
}

// Replace swaps in a new mapping and resets the current directory to the root.
func (fs *FS) Replace(entries map[string]Entry) {
	if entries == nil {
		entries = make(map[string]Entry)
	}
	fs.entries = entries
	fs.cwd = Root
	fs.logger.Debug("filesystem replaced", "entries", len(entries))
}

// Lookup returns the entry stored at path after normalization.
func (fs *FS) Lookup(path string) (Entry, bool) {
	e, ok := fs.entries[Normalize(path, fs.cwd)]
	return e, ok
}

// ListDir lists the immediate children of path, or the base name of path when
// it names a file. Directory children carry a trailing slash. Missing and
// empty directories both yield an empty slice.
func (fs *FS) ListDir(path string) []string {
	if path == "" {
		path = "."
	}
	p := Normalize(path, fs.cwd)
	if e, ok := fs.entries[p]; ok && !e.Dir {
		return []string{baseName(p)}
	}
	return fs.children(asDir(p))
}

// children lists the names directly beneath the canonical directory prefix.
func (fs *FS) children(prefix string) []string {
	seen := make(map[string]struct{})
	for key := range fs.entries {
		if len(key) <= len(prefix) || !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := key[len(prefix):]
		if i := strings.Index(rest, "/"); i >= 0 {
			seen[rest[:i+1]] = struct{}{}
		} else {
			seen[rest] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ReadFile returns the raw bytes of the file at path. Directories, paths
// ending in a slash and missing entries report false.
func (fs *FS) ReadFile(path string) ([]byte, bool) {
	e, ok := fs.file(path)
	if !ok {
		return nil, false
	}
	return e.Bytes(), true
}

// TextContent returns the file at path as display text, mapping binary
// content one byte per character.
func (fs *FS) TextContent(path string) (string, bool) {
	e, ok := fs.file(path)
	if !ok {
		return "", false
	}
	return e.Text(), true
}

func (fs *FS) file(path string) (Entry, bool) {
	p := Normalize(path, fs.cwd)
	if strings.HasSuffix(p, "/") {
		return Entry{}, false
	}
	e, ok := fs.entries[p]
	if !ok || e.Dir {
		return Entry{}, false
	}
	return e, true
}

// IsDir reports whether path names a directory, either through a marker
// entry or through entries stored beneath it. The root always exists.
func (fs *FS) IsDir(path string) bool {
	return fs.isDir(Normalize(path, fs.cwd))
}

func (fs *FS) isDir(p string) bool {
	dir := asDir(p)
	if dir == Root {
		return true
	}
	if e, ok := fs.entries[dir]; ok && e.Dir {
		return true
	}
	for key := range fs.entries {
		if len(key) > len(dir) && strings.HasPrefix(key, dir) {
			return true
		}
	}
	return false
}

// ChangeDir makes target the current directory. It fails, leaving the
// current directory unchanged, only when target has neither a directory
// marker nor any entry beneath it.
func (fs *FS) ChangeDir(target string) bool {
	if target == Root {
		fs.cwd = Root
		return true
	}
	p := Normalize(target, fs.cwd)
	if !fs.isDir(p) {
		fs.logger.Debug("change dir rejected", "target", target, "resolved", p)
		return false
	}
	fs.cwd = asDir(p)
	fs.logger.Debug("change dir", "cwd", fs.cwd)
	return true
}
