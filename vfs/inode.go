package vfs

import "sync"

// rootInode is the inode reported for the filesystem root.
const rootInode uint64 = 1

// inodeTable hands out stable inode numbers keyed by canonical path.
type inodeTable struct {
	mu      sync.Mutex
	highest uint64
	byPath  map[string]uint64
}

func newInodeTable() *inodeTable {
	return &inodeTable{
		highest: rootInode,
		byPath:  map[string]uint64{Root: rootInode},
	}
}

// get returns the inode for path, allocating the next free number on first use.
func (t *inodeTable) get(path string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ino, ok := t.byPath[path]; ok {
		return ino
	}
	t.highest++
	t.byPath[path] = t.highest
	return t.highest
}
