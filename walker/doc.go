// Package walker provides filtered file tree traversal for the transform
// packages.
//
// The walker visits regular files under a root, applying extension, glob,
// hidden-path, and directory-name filters before the visit function ever
// sees an entry. The root may itself be a file, in which case it alone is
// visited under the same file filters.
//
// # Quick Start
//
// Collect every markdown file under a directory:
//
//	files, err := walker.Files("docs", walker.Options{
//	    Recursive:  true,
//	    Extensions: []string{".md"},
//	    SkipHidden: true,
//	})
//
// Stream entries instead of collecting them:
//
//	err := walker.Walk("src", walker.Options{Recursive: true}, func(path string, d fs.DirEntry) walker.Action {
//	    if d.IsDir() {
//	        return walker.Continue
//	    }
//	    fmt.Println(path)
//	    return walker.Continue
//	})
//
// # Flow Control
//
// The visit function returns an [Action] to control traversal:
//
//   - [Continue]: keep walking children and siblings normally
//   - [SkipDir]: skip the current directory's contents, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// Recursive walks visit each directory entry before descending into it,
// which makes SkipDir useful for pruning subtrees the filters cannot
// express. Shallow walks visit only the root's immediate files.
package walker
