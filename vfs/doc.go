// Package vfs implements the in-memory virtual filesystem behind vfsh.
//
// The filesystem is a flat mapping from canonical path strings to entries.
// Canonical paths are absolute and slash separated, with directories ending
// in "/" and the root spelled "/". Directories exist either because a
// directory marker entry is present or because some other entry lives
// beneath them; traversal relies only on that slash-delimited convention.
//
// Key Components:
//
// Path handling:
//   - Normalize resolves relative paths, "." and ".." against a current directory
//   - popping past the root is a silent no-op
//
// Filesystem operations:
//   - FS.ListDir, FS.ReadFile, FS.TextContent, FS.ChangeDir and FS.Tree
//   - FS.Replace swaps the whole mapping after an archive reload
//
// Content encoding:
//   - text entries are stored verbatim
//   - binary entries carry BinaryTag followed by base64 of the raw bytes
//
// FUSE view:
//   - MountFS exposes an FS read-only through bazil.org/fuse
//
// The mapping is loaded once and never mutated in place; only the current
// directory changes between commands.
package vfs
