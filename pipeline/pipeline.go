package pipeline

import (
	"io"
	"os"

	"github.com/erraggy/refmt"
	"github.com/erraggy/refmt/cleaner"
	"github.com/erraggy/refmt/emoji"
	"github.com/erraggy/refmt/renamer"
	"github.com/erraggy/refmt/walker"
)

// Pipeline applies renaming, emoji transformation, and whitespace
// cleanup to a file tree in a single pass.
type Pipeline struct {
	// Recursive descends into subdirectories
	Recursive bool
	// DryRun reports would-be changes without touching any file
	DryRun bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger refmt.Logger
	// Progress receives the per-file notices from every stage.
	// If nil, notices are discarded (default).
	Progress io.Writer
}

// Stats aggregates the results of all three stages.
type Stats struct {
	// FilesRenamed is the number of files renamed to lowercase
	FilesRenamed int
	// FilesEmojiTransformed is the number of files that contained emoji
	// glyphs
	FilesEmojiTransformed int
	// EmojiChanges is the total number of glyphs replaced or removed
	EmojiChanges int
	// FilesWhitespaceCleaned is the number of files that had trailing
	// whitespace
	FilesWhitespaceCleaned int
	// WhitespaceLinesCleaned is the total number of lines trimmed
	WhitespaceLinesCleaned int
}

// New creates a Pipeline with default settings: recursive traversal,
// writes enabled.
func New() *Pipeline {
	return &Pipeline{Recursive: true}
}

// Process transforms the tree rooted at root, which may also be a single
// file. Recursive runs collect every file first and process the deepest
// ones first, so a rename never invalidates a path the run still needs.
// A root that does not exist (or is neither a regular file nor a
// directory) yields empty Stats. The first per-file error aborts the run.
func (p *Pipeline) Process(root string) (*Stats, error) {
	stats := &Stats{}
	ren, emo, cln := p.stages()

	info, err := os.Stat(root)
	if err != nil || (!info.IsDir() && !info.Mode().IsRegular()) {
		p.log().Debug("nothing to process", "path", root)
		return stats, nil
	}

	if !info.IsDir() {
		if err := p.processFile(root, ren, emo, cln, stats); err != nil {
			return nil, err
		}
		return stats, nil
	}

	files, err := walker.Files(root, walker.Options{
		Recursive:    p.Recursive,
		SkipHidden:   true,
		DeepestFirst: true,
	})
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		if err := p.processFile(path, ren, emo, cln, stats); err != nil {
			return nil, err
		}
	}

	p.log().Info("processing complete",
		"root", root,
		"renamed", stats.FilesRenamed,
		"emoji_files", stats.FilesEmojiTransformed,
		"cleaned_files", stats.FilesWhitespaceCleaned)
	return stats, nil
}

// processFile runs the three stages on one file. The content stages use
// the post-rename path, except under dry-run where the file was not
// actually moved.
func (p *Pipeline) processFile(path string, ren *renamer.Renamer, emo *emoji.Transformer, cln *cleaner.Cleaner, stats *Stats) error {
	rename, renamed, err := ren.RenameFile(path)
	if err != nil {
		return err
	}
	if renamed {
		stats.FilesRenamed++
		if !p.DryRun {
			path = rename.To
		}
	}

	changes, err := emo.TransformFile(path)
	if err != nil {
		return err
	}
	if changes > 0 {
		stats.FilesEmojiTransformed++
		stats.EmojiChanges += changes
	}

	lines, err := cln.CleanFile(path)
	if err != nil {
		return err
	}
	if lines > 0 {
		stats.FilesWhitespaceCleaned++
		stats.WhitespaceLinesCleaned += lines
	}
	return nil
}

// stages builds the three stage processors sharing the pipeline's
// dry-run, logger, and progress settings.
func (p *Pipeline) stages() (*renamer.Renamer, *emoji.Transformer, *cleaner.Cleaner) {
	ren := renamer.New()
	ren.Case = renamer.TransformLowercase
	ren.Recursive = p.Recursive
	ren.DryRun = p.DryRun
	ren.Logger = p.Logger
	ren.Progress = p.Progress

	emo := emoji.New()
	emo.Recursive = p.Recursive
	emo.DryRun = p.DryRun
	emo.Logger = p.Logger
	emo.Progress = p.Progress

	cln := cleaner.New()
	cln.Recursive = p.Recursive
	cln.DryRun = p.DryRun
	cln.Logger = p.Logger
	cln.Progress = p.Progress

	return ren, emo, cln
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Pipeline) log() refmt.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return refmt.NopLogger{}
}
