// Package pipeline runs the full set of file transformations in one
// pass: lowercase renaming, emoji transformation, and trailing
// whitespace cleanup.
//
// Each file goes through the stages in that order, and the content
// stages operate on the renamed path, so a single traversal leaves the
// tree fully normalized. Stage behavior matches the standalone
// [github.com/erraggy/refmt/renamer], [github.com/erraggy/refmt/emoji],
// and [github.com/erraggy/refmt/cleaner] packages with their default
// settings, which means the content stages only touch files in their
// default extension sets while renaming applies to every file.
//
// # Quick Start
//
//	p := pipeline.New()
//	p.Progress = os.Stdout
//	stats, err := p.Process("./notes")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("renamed %d, cleaned %d\n", stats.FilesRenamed, stats.FilesWhitespaceCleaned)
package pipeline
