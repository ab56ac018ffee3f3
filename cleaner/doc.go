// Package cleaner removes trailing whitespace from files.
//
// The cleaner walks a file tree, trims trailing spaces and tabs from every
// line of each candidate file, and rewrites only the files that actually
// changed. A file's trailing-newline presence is preserved. Hidden files,
// build and dependency directories (node_modules, __pycache__, target, and
// friends), and files outside the extension filter are left alone.
//
// # Quick Start
//
//	c := cleaner.New()
//	c.Progress = os.Stdout
//	result, err := c.Process("./src")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("cleaned %d lines in %d files\n", result.LinesCleaned, result.FilesCleaned)
//
// Set DryRun to preview: the per-file notices switch to "Would clean" and
// nothing on disk changes. CleanText is the underlying pure transform for
// callers that manage their own I/O.
package cleaner
