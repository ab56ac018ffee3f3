package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/internal/stringutil"
	"github.com/erraggy/refmt/refmterrors"
)

// Action controls the walker's behavior after visiting an entry.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipDir skips the contents of the current directory but continues with
	// siblings. Returned from a file visit, it skips the rest of that file's
	// directory.
	SkipDir

	// Stop stops the walk immediately. No more entries will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipDir:
		return "SkipDir"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Options configures a walk.
type Options struct {
	// Recursive descends into subdirectories. When false, only the root's
	// immediate children are visited, in sorted order.
	Recursive bool

	// Extensions limits visited files to those whose extension (leading dot
	// included) appears in the list. Empty visits every file. Files without
	// an extension only pass when Extensions is empty.
	Extensions []string

	// Glob limits visited files to those whose base name or root-relative
	// path matches the pattern. Validated before the walk starts.
	Glob string

	// SkipHidden skips dot-prefixed files and does not descend into
	// dot-prefixed directories. A root directory is exempt: path components
	// at or above the root are never checked, so walking inside a hidden
	// directory the caller named explicitly still works.
	SkipHidden bool

	// SkipDirNames lists directory names, such as "node_modules", that are
	// never descended into.
	SkipDirNames []string

	// DeepestFirst orders collected files by path depth, deepest first.
	// Only Files honors this; Walk always visits in traversal order.
	DeepestFirst bool
}

// WalkFunc visits one entry and returns an Action controlling the walk.
// Recursive walks visit each directory before its contents; shallow walks
// and Files visit files only.
type WalkFunc func(path string, d fs.DirEntry) Action

// Walk traverses the file tree rooted at root and calls fn for each entry
// that passes the Options filters.
//
// The root may itself be a file: it alone is visited, subject to the same
// extension and glob filters. Unreadable subdirectories are skipped during
// recursive walks. An invalid glob pattern is reported before any entry is
// visited.
func Walk(root string, opts Options, fn WalkFunc) error {
	if err := stringutil.ValidateGlob(opts.Glob); err != nil {
		return &refmterrors.ConfigError{
			Option:  "glob",
			Value:   opts.Glob,
			Message: "pattern does not parse",
			Cause:   err,
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil
		}
		if !fileMatches(filepath.Base(root), filepath.Base(root), opts) {
			return nil
		}
		fn(root, fs.FileInfoToDirEntry(info))
		return nil
	}

	if opts.Recursive {
		return walkTree(root, opts, fn)
	}
	return walkShallow(root, opts, fn)
}

// Files collects the paths of all files Walk would visit. When
// Options.DeepestFirst is set, the result is ordered by path depth with the
// deepest files first; files at equal depth keep their traversal order.
func Files(root string, opts Options) ([]string, error) {
	var files []string
	err := Walk(root, opts, func(path string, d fs.DirEntry) Action {
		if !d.IsDir() {
			files = append(files, path)
		}
		return Continue
	})
	if err != nil {
		return nil, err
	}
	if opts.DeepestFirst {
		sortDeepestFirst(files)
	}
	return files, nil
}

// walkTree performs a recursive walk below root. The root directory itself
// is not visited.
func walkTree(root string, opts Options, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are dropped from the walk.
			return nil
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if skipDirNamed(d.Name(), opts) {
				return fs.SkipDir
			}
			return toWalkDirError(fn(path, d))
		}

		if !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = d.Name()
		}
		if !fileMatches(d.Name(), rel, opts) {
			return nil
		}
		return toWalkDirError(fn(path, d))
	})
}

// walkShallow visits the root's immediate child files in sorted order.
func walkShallow(root string, opts Options, fn WalkFunc) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if !fileMatches(entry.Name(), entry.Name(), opts) {
			continue
		}
		switch fn(filepath.Join(root, entry.Name()), entry) {
		case SkipDir, Stop:
			return nil
		}
	}
	return nil
}

// toWalkDirError maps an Action onto filepath.WalkDir's control errors.
func toWalkDirError(action Action) error {
	switch action {
	case SkipDir:
		return fs.SkipDir
	case Stop:
		return fs.SkipAll
	default:
		return nil
	}
}

// fileMatches applies the file-level Options filters to a base name and its
// root-relative path.
func fileMatches(name, rel string, opts Options) bool {
	if opts.SkipHidden && fileutil.IsHidden(name) {
		return false
	}
	if len(opts.Extensions) > 0 && !fileutil.HasExtension(name, opts.Extensions) {
		return false
	}
	if opts.Glob != "" && !matchesGlob(opts.Glob, name, rel) {
		return false
	}
	return true
}

// matchesGlob matches the pattern against the base name first, then against
// the root-relative path.
func matchesGlob(pattern, name, rel string) bool {
	if stringutil.MatchGlob(pattern, name) {
		return true
	}
	return rel != name && stringutil.MatchGlob(pattern, filepath.ToSlash(rel))
}

// skipDirNamed reports whether a directory with this name is pruned.
func skipDirNamed(name string, opts Options) bool {
	if opts.SkipHidden && fileutil.IsHidden(name) {
		return true
	}
	for _, skip := range opts.SkipDirNames {
		if name == skip {
			return true
		}
	}
	return false
}

// sortDeepestFirst orders paths by separator count descending, keeping the
// original order within each depth.
func sortDeepestFirst(files []string) {
	sep := string(filepath.Separator)
	sort.SliceStable(files, func(i, j int) bool {
		return strings.Count(files[i], sep) > strings.Count(files[j], sep)
	})
}
