// Package fileutil provides shared file helpers for the transform packages.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// OwnerReadWrite is the file permission mode for files refmt creates fresh,
// such as log files (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for rewritten content files
// when the original mode cannot be determined.
const ReadableByAll os.FileMode = 0o644

// ExtensionOf returns the extension of the path's base name including the
// leading dot, or an empty string when the name has none. A dotfile like
// ".gitignore" has no extension; ".config.yml" has ".yml".
func ExtensionOf(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

// NormalizeExtensions trims whitespace, prepends a missing leading dot, and
// drops empty entries. The result preserves order.
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

// HasExtension reports whether the path's extension is in exts. An empty
// exts list matches nothing: files without a recognized extension are
// always skipped.
func HasExtension(path string, exts []string) bool {
	ext := ExtensionOf(path)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// IsHidden reports whether the base name starts with a dot. The special
// names "." and ".." are not considered hidden.
func IsHidden(name string) bool {
	base := filepath.Base(name)
	if base == "." || base == ".." {
		return false
	}
	return strings.HasPrefix(base, ".")
}

// SameFile reports whether the two paths refer to the same underlying file,
// such as a rename that only changes letter case on a case-insensitive
// filesystem. Missing files are never the same.
func SameFile(a, b string) bool {
	aInfo, err := os.Stat(a)
	if err != nil {
		return false
	}
	bInfo, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(aInfo, bInfo)
}
