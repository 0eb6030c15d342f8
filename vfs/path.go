package vfs

import "strings"

// Root is the canonical path of the filesystem root.
const Root = "/"

// Normalize resolves path against cwd and returns a canonical absolute path.
//
// "." yields cwd unchanged. Relative paths are joined onto cwd first. ".."
// drops the previous segment and is a no-op at the root; "." and empty
// segments are discarded. A trailing slash on path is kept on the result.
func Normalize(path, cwd string) string {
	if path == "." {
		return cwd
	}
	joined := path
	if !strings.HasPrefix(path, "/") {
		joined = cwd + "/" + path
	}

	segments := make([]string, 0, strings.Count(joined, "/")+1)
	for _, seg := range strings.Split(joined, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}

	if len(segments) == 0 {
		return Root
	}
	result := Root + strings.Join(segments, "/")
	if strings.HasSuffix(path, "/") {
		result += "/"
	}
	return result
}

// asDir returns p with exactly one trailing slash.
func asDir(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// baseName returns the last segment of a canonical path, keeping the
// trailing slash of directories.
func baseName(p string) string {
	if p == Root {
		return Root
	}
	trimmed := strings.TrimSuffix(p, "/")
	name := trimmed[strings.LastIndex(trimmed, "/")+1:]
	if trimmed != p {
		return name + "/"
	}
	return name
}
