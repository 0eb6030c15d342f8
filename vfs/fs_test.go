package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir_DefaultRoot(t *testing.T) {
	fs := NewDefault()
	assert.Equal(t, []string{"bin/", "config/", "documents/", "temp/"}, fs.ListDir(""))
	assert.Equal(t, []string{"bin/", "config/", "documents/", "temp/"}, fs.ListDir("/"))
}

func TestListDir(t *testing.T) {
	tests := []struct {
		name     string
		cwd      string
		path     string
		expected []string
	}{
		{name: "subdirectory", cwd: "/", path: "documents", expected: []string{"projects/", "report.txt"}},
		{name: "subdirectory with slash", cwd: "/", path: "documents/", expected: []string{"projects/", "report.txt"}},
		{name: "file returns its name", cwd: "/", path: "documents/report.txt", expected: []string{"report.txt"}},
		{name: "relative to cwd", cwd: "documents", path: "projects", expected: []string{"alpha/", "readme.md"}},
		{name: "parent from cwd", cwd: "documents/projects", path: "..", expected: []string{"projects/", "report.txt"}},
		{name: "empty directory", cwd: "/", path: "temp", expected: []string{}},
		{name: "missing directory", cwd: "/", path: "nowhere", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewDefault()
			require.True(t, fs.ChangeDir(tt.cwd))
			assert.Equal(t, tt.expected, fs.ListDir(tt.path))
		})
	}
}

func TestListDir_ImplicitDirectories(t *testing.T) {
	fs := New(map[string]Entry{
		"/a/b/c.txt": TextEntry("c"),
		"/a/d.txt":   TextEntry("d"),
		"/top.txt":   TextEntry("top"),
	})

	assert.Equal(t, []string{"a/", "top.txt"}, fs.ListDir("/"))
	assert.Equal(t, []string{"b/", "d.txt"}, fs.ListDir("a"))
	assert.Equal(t, []string{"c.txt"}, fs.ListDir("a/b"))
}

func TestReadFile(t *testing.T) {
	fs := NewDefault()

	data, ok := fs.ReadFile("documents/report.txt")
	require.True(t, ok)
	assert.Equal(t, "Quarterly report\nAll systems operational", string(data))

	_, ok = fs.ReadFile("documents/")
	assert.False(t, ok, "directories cannot be read")

	_, ok = fs.ReadFile("documents")
	assert.False(t, ok, "directory without slash is not a file")

	_, ok = fs.ReadFile("documents/missing.txt")
	assert.False(t, ok)
}

func TestReadFile_Binary(t *testing.T) {
	raw := []byte{0x00, 0xff, 0x80, 'a', '\n'}
	fs := New(map[string]Entry{"/blob": BinaryEntry(raw)})

	data, ok := fs.ReadFile("/blob")
	require.True(t, ok)
	assert.Equal(t, raw, data)

	text, ok := fs.TextContent("/blob")
	require.True(t, ok)
	runes := []rune(text)
	require.Len(t, runes, len(raw))
	for i, b := range raw {
		assert.Equal(t, rune(b), runes[i])
	}
}

func TestTextContent_Text(t *testing.T) {
	fs := NewDefault()
	require.True(t, fs.ChangeDir("documents"))

	text, ok := fs.TextContent("report.txt")
	require.True(t, ok)
	assert.Equal(t, "Quarterly report\nAll systems operational", text)

	_, ok = fs.TextContent("projects/")
	assert.False(t, ok)
}

func TestChangeDir(t *testing.T) {
	fs := NewDefault()

	require.True(t, fs.ChangeDir("documents/projects"))
	assert.Equal(t, "/documents/projects/", fs.Cwd())

	require.True(t, fs.ChangeDir(".."))
	assert.Equal(t, "/documents/", fs.Cwd())

	require.True(t, fs.ChangeDir(".."))
	assert.Equal(t, "/", fs.Cwd())

	require.True(t, fs.ChangeDir(".."))
	assert.Equal(t, "/", fs.Cwd())
}

func TestChangeDir_Failures(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing", target: "nowhere"},
		{name: "file", target: "documents/report.txt"},
		{name: "name prefix of a directory", target: "doc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewDefault()
			require.True(t, fs.ChangeDir("config"))
			assert.False(t, fs.ChangeDir(tt.target))
			assert.Equal(t, "/config/", fs.Cwd())
		})
	}
}

func TestChangeDir_ImplicitAndMarker(t *testing.T) {
	fs := New(map[string]Entry{
		"/empty/":    DirEntry(),
		"/a/b/c.txt": TextEntry("c"),
	})

	assert.True(t, fs.ChangeDir("/empty"))
	assert.Equal(t, "/empty/", fs.Cwd())
	assert.True(t, fs.ChangeDir("/a/b/"))
	assert.Equal(t, "/a/b/", fs.Cwd())
	assert.True(t, fs.ChangeDir("/"))
	assert.Equal(t, "/", fs.Cwd())
}

func TestReplace(t *testing.T) {
	fs := NewDefault()
	require.True(t, fs.ChangeDir("documents"))

	fs.Replace(map[string]Entry{"/only.txt": TextEntry("x")})
	assert.Equal(t, "/", fs.Cwd())
	assert.Equal(t, []string{"only.txt"}, fs.ListDir("."))
	assert.Equal(t, 1, fs.Len())
}

func TestDefaultEntries_Fresh(t *testing.T) {
	a := DefaultEntries()
	a["/documents/report.txt"] = TextEntry("changed")
	b := DefaultEntries()
	assert.Equal(t, "Quarterly report\nAll systems operational", b["/documents/report.txt"].Data)
}
