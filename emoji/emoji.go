package emoji

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/erraggy/refmt"
	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/refmterrors"
	"github.com/erraggy/refmt/walker"
)

// DefaultExtensions is the extension filter used when Extensions is left
// empty: documentation formats plus common source file types.
var DefaultExtensions = []string{
	".md", ".txt", ".rst", ".org",
	".py", ".rs", ".go", ".java",
	".js", ".ts", ".jsx", ".tsx",
	".c", ".h", ".cpp", ".hpp",
}

// skipDirNames are directory names never descended into
var skipDirNames = []string{"build", "__pycache__", ".git", "node_modules", "venv", ".venv", "target"}

// taskEmojiPattern matches the task and status glyphs that carry meaning
// worth keeping as text.
var taskEmojiPattern = regexp.MustCompile(`[` +
	`\x{2705}` + // ✅ white heavy check mark
	`\x{2611}` + // ☑ ballot box with check
	`\x{2714}` + // ✔ heavy check mark
	`\x{2713}` + // ✓ check mark
	`\x{2610}` + // ☐ ballot box
	`\x{2612}` + // ☒ ballot box with x
	`\x{274C}` + // ❌ cross mark
	`\x{274E}` + // ❎ negative squared cross mark
	`\x{26A0}` + // ⚠ warning sign
	`\x{26D4}` + // ⛔ no entry
	`\x{2B50}` + // ⭐ star
	`\x{1F7E0}` + // 🟠 orange circle
	`\x{1F7E1}` + // 🟡 yellow circle
	`\x{1F7E8}` + // 🟨 yellow square
	`\x{1F7E2}` + // 🟢 green circle
	`\x{1F534}` + // 🔴 red circle
	`\x{1F4DD}` + // 📝 memo
	`\x{1F4CB}` + // 📋 clipboard
	`\x{1F4C4}` + // 📄 page facing up
	`\x{1F4C5}` + // 📅 calendar
	`\x{1F4C6}` + // 📆 tear-off calendar
	`\x{1F5D3}` + // 🗓 spiral calendar
	`\x{1F4D1}` + // 📑 bookmark tabs
	`\x{1F4CC}` + // 📌 pushpin
	`\x{1F4CD}` + // 📍 round pushpin
	`\x{1F4CE}` + // 📎 paperclip
	`]`)

// taskReplacements maps each task glyph to its text alternative
var taskReplacements = map[string]string{
	"✅":     "[x]",
	"☑":     "[x]",
	"✔":     "[x]",
	"✓":     "[x]",
	"☐":     "[ ]",
	"☒":     "[X]",
	"❌":     "[X]",
	"❎":     "[X]",
	"⚠":     "[!]",
	"⛔":     "[!]",
	"⭐":     "[+]",
	"\U0001F7E0": "[orange]",
	"\U0001F7E1": "[yellow]",
	"\U0001F7E8": "[yellow]",
	"\U0001F7E2": "[green]",
	"\U0001F534": "[red]",
	"\U0001F4DD": "[note]",
	"\U0001F4CB": "[list]",
	"\U0001F4C4": "[doc]",
	"\U0001F4C5": "[cal]",
	"\U0001F4C6": "[cal]",
	"\U0001F5D3": "[cal]",
	"\U0001F4D1": "[tab]",
	"\U0001F4CC": "[pin]",
	"\U0001F4CD": "[pin]",
	"\U0001F4CE": "[clip]",
}

// generalEmojiPattern matches the Unicode emoji blocks removed outright
var generalEmojiPattern = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` + // emoticons
	`\x{1F300}-\x{1F5FF}` + // symbols and pictographs
	`\x{1F680}-\x{1F6FF}` + // transport and map symbols
	`\x{1F1E0}-\x{1F1FF}` + // flags
	`\x{2600}-\x{26FF}` + // miscellaneous symbols
	`\x{2700}-\x{27BF}` + // dingbats
	`\x{1F900}-\x{1F9FF}` + // supplemental symbols
	`\x{1FA00}-\x{1FA6F}` + // symbols extended-A
	`\x{1FA70}-\x{1FAFF}` + // symbols extended-B
	`\x{FE00}-\x{FE0F}` + // variation selectors
	`\x{1F004}` + // mahjong tile
	`\x{1F0CF}` + // playing card
	`\x{1F18E}` + // negative squared AB
	`\x{1F191}-\x{1F19A}` + // squared CL through VS
	`]`)

// Transformer removes emoji glyphs from file content, replacing task and
// status glyphs with bracketed text first.
type Transformer struct {
	// ReplaceTasks substitutes task glyphs with their text alternatives
	// (for example ✅ becomes [x])
	ReplaceTasks bool
	// RemoveOther deletes all remaining emoji glyphs
	RemoveOther bool
	// Extensions filters candidate files by extension (leading dot, e.g. ".md")
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

// Result contains the results of transforming a file tree
type Result struct {
	// FilesChanged is the number of files that contained emoji glyphs
	FilesChanged int
	// Changes is the total number of glyphs replaced or removed
	Changes int
}

// New creates a Transformer with default settings: task replacement on,
// general removal on, the default extension set, and recursive traversal.
func New() *Transformer {
	return &Transformer{
		ReplaceTasks: true,
		RemoveOther:  true,
		Extensions:   DefaultExtensions,
		Recursive:    true,
	}
}

// TransformText applies the enabled transforms to content and returns the
// result with the number of glyphs changed. Task replacement runs first,
// so a replaced glyph is never double-counted by the removal stage. When
// the text changed, the returned count is at least 1.
func (t *Transformer) TransformText(content string) (string, int) {
	out := content
	changes := 0

	if t.ReplaceTasks {
		replaced := taskEmojiPattern.ReplaceAllStringFunc(out, func(m string) string {
			return taskReplacements[m]
		})
		if replaced != out {
			changes += len(taskEmojiPattern.FindAllString(out, -1))
			out = replaced
		}
	}

	if t.RemoveOther {
		cleaned := generalEmojiPattern.ReplaceAllString(out, "")
		if cleaned != out {
			changes += len(generalEmojiPattern.FindAllString(out, -1))
			out = cleaned
		}
	}

	if out != content && changes < 1 {
		changes = 1
	}
	return out, changes
}

// TransformFile applies the transforms to a single file, returning the
// number of glyphs changed. Hidden files and files outside the extension
// filter return 0 without being read. The file is rewritten only when the
// content changed and dry-run is off.
func (t *Transformer) TransformFile(path string) (int, error) {
	if !t.shouldProcess(path) {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &refmterrors.FileError{Path: path, Op: "read", Err: err}
	}

	content := string(data)
	transformed, changes := t.TransformText(content)
	if transformed == content {
		return 0, nil
	}

	if t.DryRun {
		t.printf("Would transform emojis in '%s'\n", path)
		return changes, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, &refmterrors.FileError{Path: path, Op: "stat", Err: err}
	}
	if err := os.WriteFile(path, []byte(transformed), info.Mode().Perm()); err != nil {
		return 0, &refmterrors.FileError{Path: path, Op: "write", Err: err}
	}
	t.printf("Transformed emojis in '%s'\n", path)
	return changes, nil
}

// Process transforms the tree rooted at root, which may also be a single
// file. A root that does not exist (or is neither a regular file nor a
// directory) yields an empty Result. The first per-file error aborts the
// run.
func (t *Transformer) Process(root string) (*Result, error) {
	result := &Result{}

	info, err := os.Stat(root)
	if err != nil || (!info.IsDir() && !info.Mode().IsRegular()) {
		t.log().Debug("nothing to transform", "path", root)
		return result, nil
	}

	if !info.IsDir() {
		changes, err := t.TransformFile(root)
		if err != nil {
			return nil, err
		}
		result.add(changes)
		return result, nil
	}

	var fileErr error
	walkErr := walker.Walk(root, walker.Options{
		Recursive:    t.Recursive,
		Extensions:   t.Extensions,
		SkipHidden:   true,
		SkipDirNames: skipDirNames,
	}, func(path string, d fs.DirEntry) walker.Action {
		if d.IsDir() {
			return walker.Continue
		}
		changes, err := t.TransformFile(path)
		if err != nil {
			fileErr = err
			return walker.Stop
		}
		result.add(changes)
		return walker.Continue
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if fileErr != nil {
		return nil, fileErr
	}

	t.log().Info("emoji transform complete",
		"root", root,
		"files", result.FilesChanged,
		"changes", result.Changes)
	return result, nil
}

// shouldProcess applies the per-file filters: hidden names and files
// outside the extension list are skipped.
func (t *Transformer) shouldProcess(path string) bool {
	if fileutil.IsHidden(path) {
		return false
	}
	return fileutil.HasExtension(path, t.Extensions)
}

func (r *Result) add(changes int) {
	if changes > 0 {
		r.FilesChanged++
		r.Changes += changes
	}
}

func (t *Transformer) printf(format string, args ...any) {
	if t.Progress != nil {
		fmt.Fprintf(t.Progress, format, args...)
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (t *Transformer) log() refmt.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return refmt.NopLogger{}
}
