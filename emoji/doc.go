// Package emoji removes emoji glyphs from files, keeping task markers as
// text.
//
// Two transforms run in order. Task replacement rewrites status glyphs
// into bracketed text that survives plain-text tooling: ✅ ✔ ✓ ☑ become
// [x], ☐ becomes [ ], ❌ ❎ ☒ become [X], ⚠ ⛔ become [!], and the colored
// status circles become [red], [green], [yellow], [orange]. General
// removal then deletes the remaining glyphs from the common Unicode emoji
// blocks (emoticons, pictographs, transport symbols, flags, dingbats, and
// friends). Either stage can be disabled independently.
//
// # Quick Start
//
//	t := emoji.New()
//	t.Progress = os.Stdout
//	result, err := t.Process("./docs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d changes in %d files\n", result.Changes, result.FilesChanged)
//
// TransformText is the underlying pure transform:
//
//	out, n := emoji.New().TransformText("done ✅ ship 🚀")
//	// out == "done [x] ship ", n == 2
package emoji
