package vfs

// DefaultEntries returns the mapping used when no archive is supplied. Each
// call returns a fresh map.
func DefaultEntries() map[string]Entry {
	return map[string]Entry{
		"/bin/":      DirEntry(),
		"/bin/hello": BinaryEntry([]byte{0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00, 0xff, 0xfe, '\n', 0x80}),
		"/bin/motd":  TextEntry("Welcome to vfsh\nType 'tree' to look around"),

		"/config/":              DirEntry(),
		"/config/settings.conf": TextEntry("theme=dark\nhistory=100\nshell=vfsh"),
		"/config/users.list":    TextEntry("root\nguest"),

		"/documents/":                    DirEntry(),
		"/documents/report.txt":          TextEntry("Quarterly report\nAll systems operational"),
		"/documents/projects/":           DirEntry(),
		"/documents/projects/readme.md":  TextEntry("# Projects\nActive work lives here"),
		"/documents/projects/alpha/":     DirEntry(),
		"/documents/projects/alpha/todo": TextEntry("write tests\nship it"),

		"/temp/": DirEntry(),
	}
}
