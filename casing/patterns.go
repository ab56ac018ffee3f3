package casing

import "regexp"

// Recognition patterns for each style. Every pattern requires at least two
// words, so single-word identifiers never match. Compiled once at package
// load and shared by all conversions.
var (
	camelPattern          = regexp.MustCompile(`\b[a-z]+(?:[A-Z][a-z0-9]*)+\b`)
	pascalPattern         = regexp.MustCompile(`\b[A-Z][a-z0-9]+(?:[A-Z][a-z0-9]*)+\b`)
	snakePattern          = regexp.MustCompile(`\b[a-z]+(?:_[a-z0-9]+)+\b`)
	screamingSnakePattern = regexp.MustCompile(`\b[A-Z]+(?:_[A-Z0-9]+)+\b`)
	kebabPattern          = regexp.MustCompile(`\b[a-z]+(?:-[a-z0-9]+)+\b`)
	screamingKebabPattern = regexp.MustCompile(`\b[A-Z]+(?:-[A-Z0-9]+)+\b`)
)

// Pattern returns the compiled regular expression that locates tokens
// written in this style. Unknown styles return nil.
func (s Style) Pattern() *regexp.Regexp {
	switch s {
	case StyleCamel:
		return camelPattern
	case StylePascal:
		return pascalPattern
	case StyleSnake:
		return snakePattern
	case StyleScreamingSnake:
		return screamingSnakePattern
	case StyleKebab:
		return kebabPattern
	case StyleScreamingKebab:
		return screamingKebabPattern
	default:
		return nil
	}
}
