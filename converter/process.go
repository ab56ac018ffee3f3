package converter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/internal/stringutil"
	"github.com/erraggy/refmt/refmterrors"
	"github.com/erraggy/refmt/walker"
)

// FileOutcome identifies what happened to a single candidate file
type FileOutcome string

const (
	// OutcomeConverted indicates the file content changed and was rewritten
	OutcomeConverted FileOutcome = "converted"
	// OutcomeWouldConvert indicates the content would change but dry-run left the file alone
	OutcomeWouldConvert FileOutcome = "would-convert"
	// OutcomeUnchanged indicates the rewrite produced identical content
	OutcomeUnchanged FileOutcome = "unchanged"
	// OutcomeSkipped indicates the file did not pass the extension or glob filters
	OutcomeSkipped FileOutcome = "skipped"
	// OutcomeError indicates the file could not be processed
	OutcomeError FileOutcome = "error"
)

// FileReport pairs a processed path with its outcome
type FileReport struct {
	// Path is the file that was examined
	Path string
	// Outcome describes the action taken
	Outcome FileOutcome
	// Err holds the per-file error for OutcomeError entries
	Err error
}

// Result contains the results of processing a file tree
type Result struct {
	// Root is the path processing started from
	Root string
	// DryRun records whether this run was a preview
	DryRun bool
	// FilesScanned is the number of files that passed the filters and were examined
	FilesScanned int
	// FilesChanged is the number of files converted, or that would convert under dry-run
	FilesChanged int
	// ErrorCount is the number of files that failed to process
	ErrorCount int
	// Outcomes lists every examined file in traversal order, filtered files excluded
	Outcomes []FileReport
}

// HasChanges returns true if any file changed or would change
func (r *Result) HasChanges() bool {
	return r.FilesChanged > 0
}

// HasErrors returns true if any file failed to process
func (r *Result) HasErrors() bool {
	return r.ErrorCount > 0
}

func (r *Result) record(path string, outcome FileOutcome, err error) {
	if outcome == OutcomeSkipped {
		return
	}
	r.FilesScanned++
	switch outcome {
	case OutcomeConverted, OutcomeWouldConvert:
		r.FilesChanged++
	case OutcomeError:
		r.ErrorCount++
	}
	r.Outcomes = append(r.Outcomes, FileReport{Path: path, Outcome: outcome, Err: err})
}

// ProcessFile rewrites identifiers in a single file. The file must pass the
// extension and glob filters or it is skipped without being read. Glob
// patterns are matched against the bare filename and against the path
// relative to root. Content that is not valid UTF-8 is a per-file error.
//
// In dry-run mode the file is never written; otherwise it is rewritten in
// place, preserving its permission bits, and only when the content changed.
func (c *Converter) ProcessFile(path, root string) (FileOutcome, error) {
	if !fileutil.HasExtension(path, c.extensions) {
		return OutcomeSkipped, nil
	}
	if !c.matchesGlob(path, root) {
		return OutcomeSkipped, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return OutcomeError, &refmterrors.FileError{Path: path, Op: "stat", Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return OutcomeError, &refmterrors.FileError{Path: path, Op: "read", Err: err}
	}
	if !utf8.Valid(data) {
		return OutcomeError, &refmterrors.FileError{Path: path, Op: "read", Err: refmterrors.ErrNotUTF8}
	}

	content := string(data)
	rewritten := c.Rewrite(content)

	if rewritten != content {
		if c.cfg.DryRun {
			c.log().Debug("would convert file", "path", path)
			c.report().WouldConvert(path)
			return OutcomeWouldConvert, nil
		}
		if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
			return OutcomeError, &refmterrors.FileError{Path: path, Op: "write", Err: err}
		}
		c.log().Debug("converted file", "path", path)
		c.report().Converted(path)
		return OutcomeConverted, nil
	}

	if !c.cfg.DryRun {
		c.report().NoChanges(path)
	}
	return OutcomeUnchanged, nil
}

// Process rewrites identifiers across the tree rooted at root. Root may
// also be a single file, which is processed alone under the same filters.
//
// A missing root is a diagnostic, not an error: it is reported and the run
// returns an empty Result. Per-file failures inside a directory tree are
// reported and processing continues with the next file; when root itself is
// a file its failure is returned directly.
func (c *Converter) Process(root string) (*Result, error) {
	result := &Result{Root: root, DryRun: c.cfg.DryRun}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.log().Warn("path does not exist", "path", root)
			c.report().PathMissing(root)
			return result, nil
		}
		return nil, &refmterrors.FileError{Path: root, Op: "stat", Err: err}
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			c.log().Warn("path is not a directory or regular file", "path", root)
			return result, nil
		}
		outcome, err := c.ProcessFile(root, filepath.Dir(root))
		if err != nil {
			return nil, err
		}
		result.record(root, outcome, nil)
		return result, nil
	}

	walkErr := walker.Walk(root, walker.Options{Recursive: c.cfg.Recursive}, func(path string, d fs.DirEntry) walker.Action {
		if d.IsDir() {
			return walker.Continue
		}
		outcome, perr := c.ProcessFile(path, root)
		if perr != nil {
			c.log().Error("failed to process file", "path", path, "error", perr)
			c.report().ProcessError(path, perr)
			result.record(path, OutcomeError, perr)
			return walker.Continue
		}
		result.record(path, outcome, nil)
		return walker.Continue
	})
	if walkErr != nil {
		return nil, walkErr
	}

	c.log().Info("processing complete",
		"root", root,
		"scanned", result.FilesScanned,
		"changed", result.FilesChanged,
		"errors", result.ErrorCount)
	return result, nil
}

// matchesGlob reports whether path passes the configured glob filter. The
// pattern is tried against the bare filename first, then against the
// slash-separated path relative to root. No pattern means everything passes.
func (c *Converter) matchesGlob(path, root string) bool {
	if c.cfg.Glob == "" {
		return true
	}
	name := filepath.Base(path)
	if stringutil.MatchGlob(c.cfg.Glob, name) {
		return true
	}
	if rel, err := filepath.Rel(root, path); err == nil && rel != name {
		return stringutil.MatchGlob(c.cfg.Glob, filepath.ToSlash(rel))
	}
	return false
}
