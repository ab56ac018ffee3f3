// Package testutil provides test helpers for building and inspecting
// file trees.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
	"golang.org/x/tools/txtar"
)

// WriteTree materializes a txtar archive under dir. Each archive section
// becomes a file; parent directories are created as needed. Section names
// use forward slashes and are taken relative to dir.
//
//	testutil.WriteTree(t, dir, `
//	-- notes/Draft One.txt --
//	line 1
//	-- README.md --
//	hello
//	`)
func WriteTree(t *testing.T, dir, archive string) {
	t.Helper()

	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", f.Name, err)
		}
	}
}

// ReadTree collects every regular file under dir into a map of
// slash-separated relative path to content. Directories themselves are
// not recorded, so the result compares cleanly against the sections of a
// txtar fixture.
func ReadTree(t *testing.T, dir string) map[string]string {
	t.Helper()

	tree := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to read tree under %s: %v", dir, err)
	}
	return tree
}

// WriteTempYAML marshals v to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, v any) string {
	t.Helper()

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}
