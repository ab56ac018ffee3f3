package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "simple extension", path: "main.go", want: ".go"},
		{name: "path with directories", path: "src/lib/util.py", want: ".py"},
		{name: "double extension takes last", path: "archive.tar.gz", want: ".gz"},
		{name: "no extension", path: "Makefile", want: ""},
		{name: "dotfile has no extension", path: ".gitignore", want: ""},
		{name: "dotfile with extension", path: ".config.yml", want: ".yml"},
		{name: "hidden dir does not leak", path: ".git/config", want: ""},
		{name: "trailing dot", path: "odd.", want: "."},
		{name: "empty path", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionOf(tt.path), "ExtensionOf(%q)", tt.path)
		})
	}
}

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "already dotted", input: []string{".go", ".py"}, want: []string{".go", ".py"}},
		{name: "missing dots added", input: []string{"go", "py"}, want: []string{".go", ".py"}},
		{name: "mixed", input: []string{".md", "txt"}, want: []string{".md", ".txt"}},
		{name: "whitespace trimmed", input: []string{" .c ", " h"}, want: []string{".c", ".h"}},
		{name: "empty entries dropped", input: []string{"", ".go", "  "}, want: []string{".go"}},
		{name: "nil input", input: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtensions(tt.input))
		})
	}
}

func TestHasExtension(t *testing.T) {
	exts := []string{".go", ".md"}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "listed extension", path: "main.go", want: true},
		{name: "second listed extension", path: "README.md", want: true},
		{name: "unlisted extension", path: "main.rs", want: false},
		{name: "no extension", path: "Makefile", want: false},
		{name: "dotfile", path: ".gitignore", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasExtension(tt.path, exts), "HasExtension(%q)", tt.path)
		})
	}

	t.Run("empty list matches nothing", func(t *testing.T) {
		assert.False(t, HasExtension("main.go", nil))
	})
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "hidden file", path: ".env", want: true},
		{name: "hidden file in path", path: "work/.env", want: true},
		{name: "visible file", path: "main.go", want: false},
		{name: "current dir", path: ".", want: false},
		{name: "parent dir", path: "..", want: false},
		{name: "visible file under hidden dir", path: ".git/config", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHidden(tt.path), "IsHidden(%q)", tt.path)
		})
	}
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), OwnerReadWrite))

	t.Run("identical paths", func(t *testing.T) {
		assert.True(t, SameFile(path, path))
	})

	t.Run("distinct files", func(t *testing.T) {
		other := filepath.Join(dir, "b.txt")
		require.NoError(t, os.WriteFile(other, []byte("y"), OwnerReadWrite))
		assert.False(t, SameFile(path, other))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.False(t, SameFile(path, filepath.Join(dir, "missing.txt")))
	})
}
