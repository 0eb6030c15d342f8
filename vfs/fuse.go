package vfs

import (
	"context"
	"os"
	"strings"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
)

// MountFS exposes an FS read-only through bazil.org/fuse. Every node is
// addressed by its canonical path, so the shell's current directory plays
// no part in lookups.
type MountFS struct {
	vfs     *FS
	inodes  *inodeTable
	mounted time.Time
}

var (
	_ fs.FS                 = (*MountFS)(nil)
	_ fs.NodeStringLookuper = (*Dir)(nil)
	_ fs.HandleReadDirAller = (*Dir)(nil)
	_ fs.HandleReadAller    = (*File)(nil)
)

// NewMountFS wraps v for serving with fs.Serve.
func NewMountFS(v *FS) *MountFS {
	return &MountFS{
		vfs:     v,
		inodes:  newInodeTable(),
		mounted: time.Now(),
	}
}

// Root returns the root directory node
func (m *MountFS) Root() (fs.Node, error) {
	return &Dir{mfs: m, path: Root}, nil
}

// Dir is a directory node; path always ends with a slash.
type Dir struct {
	mfs  *MountFS
	path string
}

// Attr returns directory attributes
func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = d.mfs.inodes.get(d.path)
	a.Mode = os.ModeDir | 0o555
	a.Mtime = d.mfs.mounted
	a.Ctime = d.mfs.mounted
	a.Atime = d.mfs.mounted
	return nil
}

// Lookup resolves a child name to a node
func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, syscall.ENOENT
	}
	full := d.path + name
	if e, ok := d.mfs.vfs.entries[full]; ok && !e.Dir {
		return &File{mfs: d.mfs, path: full}, nil
	}
	if d.mfs.vfs.isDir(full) {
		return &Dir{mfs: d.mfs, path: full + "/"}, nil
	}
	return nil, syscall.ENOENT
}

// ReadDirAll lists the directory in the same order as FS.ListDir.
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	children := d.mfs.vfs.children(d.path)
	dirents := make([]fuse.Dirent, 0, len(children))
	for _, name := range children {
		dirent := fuse.Dirent{
			Inode: d.mfs.inodes.get(d.path + name),
			Name:  strings.TrimSuffix(name, "/"),
			Type:  fuse.DT_File,
		}
		if strings.HasSuffix(name, "/") {
			dirent.Type = fuse.DT_Dir
		}
		dirents = append(dirents, dirent)
	}
	return dirents, nil
}

// File is a regular file node.
type File struct {
	mfs  *MountFS
	path string
}

// Attr returns file attributes
func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	e, ok := f.mfs.vfs.entries[f.path]
	if !ok {
		return syscall.ENOENT
	}
	a.Inode = f.mfs.inodes.get(f.path)
	a.Mode = 0o444
	a.Size = uint64(len(e.Bytes()))
	a.Mtime = f.mfs.mounted
	a.Ctime = f.mfs.mounted
	a.Atime = f.mfs.mounted
	return nil
}

// ReadAll returns the decoded file content
func (f *File) ReadAll(ctx context.Context) ([]byte, error) {
	e, ok := f.mfs.vfs.entries[f.path]
	if !ok || e.Dir {
		return nil, syscall.ENOENT
	}
	return e.Bytes(), nil
}
