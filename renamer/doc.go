// Package renamer rewrites file names across a tree.
//
// A Renamer applies a fixed sequence of transforms to each file name:
// strip a prefix and suffix, normalize the separators between words,
// recase the letters, add a prefix and suffix, and finally add a date
// stamp derived from the file's modification time. The extension, split
// at the last dot, rides along untouched. Hidden files are never renamed.
//
// # Quick Start
//
//	r := renamer.New()
//	r.Case = renamer.TransformLowercase
//	r.Separator = renamer.SeparatorUnderscore
//	r.Progress = os.Stdout
//	result, err := r.Process("./downloads")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("renamed %d files\n", result.FilesRenamed)
//
// With those settings "My Report-Final.PDF" becomes "my_report_final.PDF".
// Set DryRun to preview: the per-file notices switch to "Would rename" and
// nothing on disk changes.
//
// # Collisions
//
// A rename whose target already exists is an error and stops the run,
// with one exception: when the old and new paths resolve to the same file,
// as a case-only rename does on a case-insensitive filesystem, the rename
// proceeds. Recursive runs process the deepest files first so a rename
// never invalidates a path the run still needs.
package renamer
