package vfs

import "strings"

const (
	treeBranch = "├── "
	treeCorner = "└── "
	treePipe   = "│   "
	treeSpace  = "    "
)

// Unlimited disables the depth limit of Tree.
const Unlimited = -1

// Tree renders the hierarchy beneath path, one line per entry. Top-level
// children are at depth 1; nothing deeper than maxDepth is rendered unless
// maxDepth is Unlimited.
func (fs *FS) Tree(path string, maxDepth int) []string {
	if path == "" {
		path = "."
	}
	start := asDir(Normalize(path, fs.cwd))
	var lines []string
	fs.walkTree(start, "", 1, maxDepth, &lines)
	return lines
}

func (fs *FS) walkTree(dir, prefix string, depth, maxDepth int, lines *[]string) {
	if maxDepth >= 0 && depth > maxDepth {
		return
	}
	children := fs.children(dir)
	for i, name := range children {
		last := i == len(children)-1
		connector, extension := treeBranch, treePipe
		if last {
			connector, extension = treeCorner, treeSpace
		}
		*lines = append(*lines, prefix+connector+name)
		if strings.HasSuffix(name, "/") {
			fs.walkTree(dir+name, prefix+extension, depth+1, maxDepth, lines)
		}
	}
}
