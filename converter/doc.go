// Package converter rewrites identifier case styles across file content.
//
// The converter recognizes identifiers of a source case style inside
// arbitrary text via pattern matching, decomposes them into words, and
// reassembles them in a target style. A pipeline of optional transforms
// runs around the conversion: strip or replace a leading/trailing
// substring before converting, gate conversion on a word-filter pattern,
// and decorate the result with a literal prefix and suffix. Matching is
// purely textual; the converter has no awareness of language grammar,
// comments, or string literals.
//
// # Quick Start
//
// Rewrite a string in memory:
//
//	out, err := converter.Rewrite("myVariable = getUserName()", casing.StyleCamel, casing.StyleSnake)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//	// Output: my_variable = get_user_name()
//
// Or process a file tree with a reusable Converter:
//
//	c, err := converter.New(converter.Config{
//		From:      casing.StyleCamel,
//		To:        casing.StyleSnake,
//		Recursive: true,
//		DryRun:    true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Reporter = &converter.WriteReporter{}
//	result, err := c.Process("./src")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d of %d files would change\n", result.FilesChanged, result.FilesScanned)
//
// # Configuration
//
// All options live on Config and are validated by New before any file is
// touched: an invalid style, a replacement "to" without its "from", an
// unparsable word filter, or an unparsable glob is a
// *refmterrors.ConfigError. Per-file failures during Process (unreadable
// files, content that is not valid UTF-8) are reported through the
// Reporter and do not stop the run.
//
// # Batch Jobs
//
// LoadJobs reads several rewrite configurations from one YAML file, so a
// codebase migration can run as a single command:
//
//	jobs, err := converter.LoadJobs("migrate.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, cfg := range jobs {
//		c, _ := converter.New(cfg)
//		if _, err := c.Process("./src"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Related Packages
//
// Conversion composes with the other refmt packages:
//   - [github.com/erraggy/refmt/casing] - Style recognition, splitting, and joining primitives
//   - [github.com/erraggy/refmt/walker] - File tree traversal with extension and glob filters
//   - [github.com/erraggy/refmt/cleaner] - Trailing whitespace removal for converted trees
//   - [github.com/erraggy/refmt/pipeline] - Combined rename, emoji, and whitespace pass
package converter
