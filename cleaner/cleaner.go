package cleaner

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/erraggy/refmt"
	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/refmterrors"
	"github.com/erraggy/refmt/walker"
)

// DefaultExtensions is the extension filter used when Extensions is left
// empty: common source and documentation file types.
var DefaultExtensions = []string{
	".py", ".pyx", ".pxd", ".pxi",
	".c", ".h", ".cpp", ".hpp",
	".rs", ".go", ".java",
	".js", ".ts", ".jsx", ".tsx",
	".md", ".qmd", ".txt",
}

// skipDirNames are directory names never descended into: build output,
// caches, and dependency trees.
var skipDirNames = []string{"build", "__pycache__", ".git", "node_modules", "venv", ".venv", "target"}

// Cleaner removes trailing whitespace from file content.
type Cleaner struct {
	// RemoveTrailing strips trailing whitespace from every line.
	// When false, files are scanned but never modified.
	RemoveTrailing bool
	// Extensions filters candidate files by extension (leading dot, e.g. ".py")
	Extensions []string
	// Recursive descends into subdirectories
	Recursive bool
	// DryRun reports would-be changes without writing any file
	DryRun bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger refmt.Logger
	// Progress receives the per-file notices.
	// If nil, notices are discarded (default).
	Progress io.Writer
}

// Result contains the results of cleaning a file tree
type Result struct {
	// FilesCleaned is the number of files that had trailing whitespace
	FilesCleaned int
	// LinesCleaned is the total number of lines trimmed across all files
	LinesCleaned int
}

// New creates a Cleaner with default settings: trailing whitespace removal
// on, the default extension set, and recursive traversal.
func New() *Cleaner {
	return &Cleaner{
		RemoveTrailing: true,
		Extensions:     DefaultExtensions,
		Recursive:      true,
	}
}

// CleanText removes trailing whitespace from every line of content and
// returns the cleaned text with the number of lines changed. The presence
// or absence of a trailing newline is preserved. Lines are rejoined with
// "\n"; a carriage return before the newline is treated as line content
// and trimmed with the rest of the trailing whitespace.
func (c *Cleaner) CleanText(content string) (string, int) {
	endsWithNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	if endsWithNewline {
		lines = lines[:len(lines)-1]
	}

	changed := 0
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if c.RemoveTrailing {
			cleaned := strings.TrimRightFunc(line, unicode.IsSpace)
			if cleaned != line {
				changed++
			}
			line = cleaned
		}
		lines[i] = line
	}

	out := strings.Join(lines, "\n")
	if endsWithNewline {
		out += "\n"
	}
	return out, changed
}

// CleanFile removes trailing whitespace from a single file, returning the
// number of lines changed. Hidden files and files outside the extension
// filter return 0 without being read. The file is rewritten only when at
// least one line changed and dry-run is off.
func (c *Cleaner) CleanFile(path string) (int, error) {
	if !c.shouldProcess(path) {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &refmterrors.FileError{Path: path, Op: "read", Err: err}
	}

	cleaned, changed := c.CleanText(string(data))
	if changed == 0 {
		return 0, nil
	}

	if c.DryRun {
		c.printf("Would clean %d lines in '%s'\n", changed, path)
		return changed, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, &refmterrors.FileError{Path: path, Op: "stat", Err: err}
	}
	if err := os.WriteFile(path, []byte(cleaned), info.Mode().Perm()); err != nil {
		return 0, &refmterrors.FileError{Path: path, Op: "write", Err: err}
	}
	c.printf("Cleaned %d lines in '%s'\n", changed, path)
	return changed, nil
}

// Process cleans the tree rooted at root, which may also be a single
// file. A root that does not exist (or is neither a regular file nor a
// directory) yields an empty Result. The first per-file error aborts the
// run.
func (c *Cleaner) Process(root string) (*Result, error) {
	result := &Result{}

	info, err := os.Stat(root)
	if err != nil || (!info.IsDir() && !info.Mode().IsRegular()) {
		c.log().Debug("nothing to clean", "path", root)
		return result, nil
	}

	if !info.IsDir() {
		lines, err := c.CleanFile(root)
		if err != nil {
			return nil, err
		}
		result.add(lines)
		return result, nil
	}

	var fileErr error
	walkErr := walker.Walk(root, walker.Options{
		Recursive:    c.Recursive,
		Extensions:   c.Extensions,
		SkipHidden:   true,
		SkipDirNames: skipDirNames,
	}, func(path string, d fs.DirEntry) walker.Action {
		if d.IsDir() {
			return walker.Continue
		}
		lines, err := c.CleanFile(path)
		if err != nil {
			fileErr = err
			return walker.Stop
		}
		result.add(lines)
		return walker.Continue
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if fileErr != nil {
		return nil, fileErr
	}

	c.log().Info("cleaning complete",
		"root", root,
		"files", result.FilesCleaned,
		"lines", result.LinesCleaned)
	return result, nil
}

// shouldProcess applies the per-file filters: hidden names and files
// outside the extension list are skipped. Directory-level skip rules are
// a traversal concern and apply during Process.
func (c *Cleaner) shouldProcess(path string) bool {
	if fileutil.IsHidden(path) {
		return false
	}
	return fileutil.HasExtension(path, c.Extensions)
}

func (r *Result) add(lines int) {
	if lines > 0 {
		r.FilesCleaned++
		r.LinesCleaned += lines
	}
}

func (c *Cleaner) printf(format string, args ...any) {
	if c.Progress != nil {
		fmt.Fprintf(c.Progress, format, args...)
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Cleaner) log() refmt.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return refmt.NopLogger{}
}
