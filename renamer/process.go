package renamer

import (
	"os"
	"path/filepath"

	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/refmterrors"
	"github.com/erraggy/refmt/walker"
)

// Rename records one executed or previewed rename.
type Rename struct {
	// From is the path before renaming
	From string
	// To is the path after renaming
	To string
}

// Result contains the results of renaming a file tree
type Result struct {
	// FilesRenamed is the number of files renamed, or that would rename
	// under dry-run
	FilesRenamed int
	// Renames lists the renames in processing order
	Renames []Rename
}

// RenameFile renames a single file according to the configured transforms,
// returning the rename performed and true. Hidden files, non-regular
// files, and names the transforms leave unchanged return false without
// touching disk. A target that already exists is an error, unless old and
// new resolve to the same file, as a case-only rename does on a
// case-insensitive filesystem.
//
// In dry-run mode nothing changes on disk; the returned Rename describes
// what would happen.
func (r *Renamer) RenameFile(path string) (Rename, bool, error) {
	name := filepath.Base(path)
	if fileutil.IsHidden(name) {
		return Rename{}, false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Rename{}, false, &refmterrors.FileError{Path: path, Op: "stat", Err: err}
	}
	if !info.Mode().IsRegular() {
		return Rename{}, false, nil
	}

	newName := r.NewName(name, info.ModTime())
	if newName == name {
		return Rename{}, false, nil
	}
	newPath := filepath.Join(filepath.Dir(path), newName)

	if _, err := os.Stat(newPath); err == nil && !fileutil.SameFile(path, newPath) {
		return Rename{}, false, &refmterrors.FileError{
			Path: newPath,
			Op:   "rename",
			Err:  refmterrors.ErrTargetExists,
		}
	}

	ren := Rename{From: path, To: newPath}
	if r.DryRun {
		r.printf("Would rename '%s' -> '%s'\n", path, newPath)
		return ren, true, nil
	}
	if err := os.Rename(path, newPath); err != nil {
		return Rename{}, false, &refmterrors.FileError{Path: path, Op: "rename", Err: err}
	}
	r.printf("Renamed '%s' -> '%s'\n", path, newPath)
	return ren, true, nil
}

// Process renames files in the tree rooted at root, which may also be a
// single file. Recursive runs collect every file first and rename the
// deepest ones first. Hidden files are skipped, and hidden directories are
// not descended into. A root that does not exist (or is neither a regular
// file nor a directory) yields an empty Result. The first per-file error
// aborts the run.
func (r *Renamer) Process(root string) (*Result, error) {
	result := &Result{}

	info, err := os.Stat(root)
	if err != nil || (!info.IsDir() && !info.Mode().IsRegular()) {
		r.log().Debug("nothing to rename", "path", root)
		return result, nil
	}

	if !info.IsDir() {
		ren, ok, err := r.RenameFile(root)
		if err != nil {
			return nil, err
		}
		result.add(ren, ok)
		return result, nil
	}

	files, err := walker.Files(root, walker.Options{
		Recursive:    r.Recursive,
		SkipHidden:   true,
		DeepestFirst: true,
	})
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		ren, ok, err := r.RenameFile(path)
		if err != nil {
			return nil, err
		}
		result.add(ren, ok)
	}

	r.log().Info("renaming complete", "root", root, "files", result.FilesRenamed)
	return result, nil
}

func (result *Result) add(ren Rename, ok bool) {
	if ok {
		result.FilesRenamed++
		result.Renames = append(result.Renames, ren)
	}
}
