package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Split segments a token written in this style into its lowercase words.
//
// Camel and Pascal tokens are scanned rune by rune: an uppercase rune closes
// the current word and opens a new one. Snake and kebab tokens split on
// their separator, dropping empty segments. Every emitted word is
// lowercased. Unknown styles return nil.
func (s Style) Split(token string) []string {
	switch s {
	case StyleCamel, StylePascal:
		return splitOnCaseBoundaries(token)
	case StyleSnake, StyleScreamingSnake:
		return splitOnSeparator(token, "_")
	case StyleKebab, StyleScreamingKebab:
		return splitOnSeparator(token, "-")
	default:
		return nil
	}
}

// splitOnCaseBoundaries scans runes and starts a new word at each uppercase
// rune. A regex cannot express this without lookahead, which Go's RE2
// engine does not support.
func splitOnCaseBoundaries(token string) []string {
	var words []string
	var current []rune

	for _, r := range token {
		if unicode.IsUpper(r) && len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		words = append(words, strings.ToLower(string(current)))
	}
	return words
}

// splitOnSeparator splits on the given separator, skipping empty segments.
func splitOnSeparator(token, sep string) []string {
	var words []string
	for _, part := range strings.Split(token, sep) {
		if part == "" {
			continue
		}
		words = append(words, strings.ToLower(part))
	}
	return words
}

// Join assembles words into a single token of this style, wrapped in the
// given prefix and suffix. Words are lowercased before assembly, matching
// what [Style.Split] produces. An empty word list yields an empty string
// with no affixes applied. Unknown styles also yield an empty string.
func (s Style) Join(words []string, prefix, suffix string) string {
	if len(words) == 0 {
		return ""
	}

	var body string
	switch s {
	case StyleCamel:
		caser := cases.Title(language.English)
		var b strings.Builder
		b.WriteString(strings.ToLower(words[0]))
		for _, w := range words[1:] {
			b.WriteString(caser.String(strings.ToLower(w)))
		}
		body = b.String()
	case StylePascal:
		caser := cases.Title(language.English)
		var b strings.Builder
		for _, w := range words {
			b.WriteString(caser.String(strings.ToLower(w)))
		}
		body = b.String()
	case StyleSnake:
		body = joinLowered(words, "_")
	case StyleScreamingSnake:
		body = strings.ToUpper(joinLowered(words, "_"))
	case StyleKebab:
		body = joinLowered(words, "-")
	case StyleScreamingKebab:
		body = strings.ToUpper(joinLowered(words, "-"))
	default:
		return ""
	}

	return prefix + body + suffix
}

// joinLowered joins lowercased words with the given separator.
func joinLowered(words []string, sep string) string {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return strings.Join(lowered, sep)
}

// Convert rewrites a single token from this style into the target style.
// It is shorthand for Split followed by Join with no affixes.
func (s Style) Convert(token string, to Style) string {
	return to.Join(s.Split(token), "", "")
}
