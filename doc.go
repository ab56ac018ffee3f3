// Package refmt provides batch text-transformation tools for source trees.
//
// refmt offers five main packages for rewriting identifier case styles,
// stripping trailing whitespace, normalizing emojis to plain-text markers,
// renaming files, and running all of these as a single pipeline.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - converter: Rewrite identifiers between case styles across a file tree
//   - cleaner: Remove trailing whitespace from source and text files
//   - emoji: Replace task emojis with text markers and strip decorative emojis
//   - renamer: Rename files with case, separator, affix, and timestamp transforms
//   - pipeline: Run rename, emoji, and whitespace passes as one combined sweep
//
// Supporting packages:
//
//   - casing: The six recognized identifier styles with split and join primitives
//   - walker: File tree traversal with extension, glob, and hidden-path filtering
//   - refmterrors: Structured error types for configuration and per-file failures
//
// The six identifier styles are camelCase, PascalCase, snake_case,
// SCREAMING_SNAKE_CASE, kebab-case, and SCREAMING-KEBAB-CASE.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/refmt
//
// # Quick Start
//
// Convert identifiers in a tree from camelCase to snake_case:
//
//	import (
//		"github.com/erraggy/refmt/casing"
//		"github.com/erraggy/refmt/converter"
//	)
//
//	conv, err := converter.New(converter.Config{
//		From:      casing.StyleCamel,
//		To:        casing.StyleSnake,
//		Recursive: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := conv.Process("./src")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Changed %d of %d files\n", result.FilesChanged, result.FilesScanned)
//
// Clean trailing whitespace:
//
//	import "github.com/erraggy/refmt/cleaner"
//
//	c := cleaner.New()
//	result, err := c.Process("./docs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Cleaned %d lines in %d file(s)\n", result.LinesCleaned, result.FilesCleaned)
//
// Run the combined pipeline:
//
//	import "github.com/erraggy/refmt/pipeline"
//
//	p := pipeline.New()
//	stats, err := p.Process("./notes")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Renamed %d, cleaned %d file(s)\n", stats.FilesRenamed, stats.FilesWhitespaceCleaned)
//
// # Converter Package
//
// The converter package rewrites identifiers matching a source case style into
// a target style across every eligible file under a root. Tokens are located
// with the source style's recognition pattern and transformed through a fixed
// pipeline: strip prefix, strip suffix, replace prefix, replace suffix, word
// filter, split into words, join in the target style with optional prefix and
// suffix.
//
// Key features:
//   - All six case styles as source or target
//   - Prefix/suffix stripping, replacement, and injection
//   - Word-filter regex gating which matched tokens are rewritten
//   - Extension and glob filtering
//   - Dry-run mode that reports without writing
//   - YAML job files describing multiple rewrites
//
// Example:
//
//	conv, err := converter.New(converter.Config{
//		From:        casing.StylePascal,
//		To:          casing.StyleSnake,
//		StripPrefix: "My",
//		Extensions:  []string{".py"},
//		DryRun:      true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := conv.Process("./app")
//
// See the converter package documentation for more details.
//
// # Cleaner Package
//
// The cleaner package removes trailing whitespace from each line of text
// files, preserving whether the file ends with a final newline. Files are
// only rewritten when at least one line changed.
//
// Example:
//
//	c := cleaner.New()
//	c.Extensions = []string{".go", ".md"}
//	result, err := c.Process(".")
//
// See the cleaner package documentation for more details.
//
// # Emoji Package
//
// The emoji package converts task-list emojis (check marks, warning signs,
// colored circles) into bracketed text markers like [x], [!], and [red], and
// strips the remaining pictographic emojis entirely.
//
// Example:
//
//	tr := emoji.New()
//	result, err := tr.Process("./docs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d change(s) in %d file(s)\n", result.Changes, result.FilesChanged)
//
// See the emoji package documentation for more details.
//
// # Renamer Package
//
// The renamer package renames files by transforming the name stem while
// preserving the extension: remove affixes, normalize separators, change
// case, add affixes, and optionally prepend a modification-time stamp.
// Renames that would collide with an existing file abort the run.
//
// Example:
//
//	r := renamer.New()
//	r.Case = renamer.TransformLowercase
//	r.Separator = renamer.SeparatorUnderscore
//	result, err := r.Process("./downloads")
//
// See the renamer package documentation for more details.
//
// # Pipeline Package
//
// The pipeline package runs the three maintenance passes in order on each
// file: rename to lowercase, transform emojis, clean whitespace. It reports
// combined statistics for the whole sweep.
//
// See the pipeline package documentation for more details.
//
// # Common Workflows
//
// Preview before writing:
//
//	// Dry-run first
//	cfg := converter.Config{From: casing.StyleCamel, To: casing.StyleSnake, DryRun: true}
//	conv, err := converter.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	preview, err := conv.Process("./src")
//	if err != nil || preview.FilesChanged == 0 {
//		return
//	}
//
//	// Then run for real
//	cfg.DryRun = false
//	conv, _ = converter.New(cfg)
//	_, err = conv.Process("./src")
//
// Rewrite a single identifier in memory:
//
//	conv, err := converter.New(converter.Config{
//		From: casing.StyleSnake,
//		To:   casing.StyleCamel,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(conv.Rewrite("user_name and account_id"))
//	// Output: userName and accountId
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Configuration errors (unknown style, bad pattern, replacement without
//     its counterpart) are returned from constructors before any file is read
//   - Identifier conversion reports per-file failures and keeps going
//   - Cleaning, emoji transformation, and renaming stop on the first
//     per-file failure
//   - File I/O errors carry their cause (e.g., os.ErrPermission) through
//     the error chain
//
// See the refmterrors package for the structured error types.
//
// # Command-Line Interface
//
// In addition to the library packages, refmt provides a command-line interface:
//
//	# Convert identifiers from camelCase to snake_case
//	refmt convert --from-camel --to-snake ./src
//
//	# Clean trailing whitespace
//	refmt clean -r ./docs
//
//	# Normalize emojis in markdown notes
//	refmt emojis ./notes
//
//	# Rename files to lowercase with underscores
//	refmt rename --to-lowercase --underscored ./downloads
//
//	# Run the combined pipeline
//	refmt run ./notes
//
// Install the CLI:
//
//	go install github.com/erraggy/refmt/cmd/refmt@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/refmt
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/refmt
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package refmt
