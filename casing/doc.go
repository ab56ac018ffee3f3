// Package casing models the six identifier case styles that refmt can
// recognize and produce: camelCase, PascalCase, snake_case,
// SCREAMING_SNAKE_CASE, kebab-case, and SCREAMING-KEBAB-CASE.
//
// Import path: github.com/erraggy/refmt/casing
//
// Each [Style] carries three capabilities:
//
//   - [Style.Pattern] returns the compiled regular expression that locates
//     tokens written in that style inside arbitrary text
//   - [Style.Split] segments a matched token into its lowercase words
//   - [Style.Join] assembles words back into a token of that style, with
//     optional prefix and suffix
//
// Conversion between any two styles is Split with the source followed by
// Join with the target:
//
//	words := casing.StyleCamel.Split("myVariableName")
//	// words = ["my", "variable", "name"]
//	token := casing.StyleScreamingSnake.Join(words, "", "")
//	// token = "MY_VARIABLE_NAME"
//
// Styles parse from and render to their command-line spellings via
// [ParseStyle] and [Style.String]: "camel", "pascal", "snake",
// "screaming-snake", "kebab", and "screaming-kebab".
//
// # Recognition Rules
//
// Tokens must contain at least two words to match a pattern: a lone "word"
// belongs to no particular style, so single-word identifiers are never
// rewritten. Matching is ASCII and word-boundary delimited, so style
// fragments embedded in larger identifiers do not match on their own.
package casing
