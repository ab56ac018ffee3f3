package casing

import (
	"fmt"
	"strings"

	"github.com/erraggy/refmt/refmterrors"
)

// Style identifies one of the six recognized identifier case styles.
type Style int

const (
	// StyleUnknown is the zero value. It matches no tokens and is rejected
	// wherever a style is required.
	StyleUnknown Style = iota

	// StyleCamel is camelCase: lowercase first word, capitalized rest.
	StyleCamel

	// StylePascal is PascalCase: every word capitalized.
	StylePascal

	// StyleSnake is snake_case: lowercase words joined by underscores.
	StyleSnake

	// StyleScreamingSnake is SCREAMING_SNAKE_CASE: uppercase words joined
	// by underscores.
	StyleScreamingSnake

	// StyleKebab is kebab-case: lowercase words joined by hyphens.
	StyleKebab

	// StyleScreamingKebab is SCREAMING-KEBAB-CASE: uppercase words joined
	// by hyphens.
	StyleScreamingKebab
)

// styleNames maps each style to its command-line spelling.
var styleNames = map[Style]string{
	StyleCamel:          "camel",
	StylePascal:         "pascal",
	StyleSnake:          "snake",
	StyleScreamingSnake: "screaming-snake",
	StyleKebab:          "kebab",
	StyleScreamingKebab: "screaming-kebab",
}

// IsValid returns true if the style is one of the six defined constants.
func (s Style) IsValid() bool {
	return s >= StyleCamel && s <= StyleScreamingKebab
}

// String returns the command-line spelling of the style, such as "camel" or
// "screaming-snake". Unknown styles render as "unknown".
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// Example returns a sample identifier written in this style. It is used in
// help text and tool listings. Unknown styles return an empty string.
func (s Style) Example() string {
	switch s {
	case StyleCamel:
		return "myVariableName"
	case StylePascal:
		return "MyVariableName"
	case StyleSnake:
		return "my_variable_name"
	case StyleScreamingSnake:
		return "MY_VARIABLE_NAME"
	case StyleKebab:
		return "my-variable-name"
	case StyleScreamingKebab:
		return "MY-VARIABLE-NAME"
	default:
		return ""
	}
}

// Styles returns all six styles in declaration order.
func Styles() []Style {
	return []Style{
		StyleCamel,
		StylePascal,
		StyleSnake,
		StyleScreamingSnake,
		StyleKebab,
		StyleScreamingKebab,
	}
}

// ParseStyle parses a command-line spelling into a Style. Matching is
// case-insensitive. The recognized spellings are "camel", "pascal", "snake",
// "screaming-snake", "kebab", and "screaming-kebab". Unrecognized input
// returns an error matching [refmterrors.ErrInvalidStyle].
func ParseStyle(name string) (Style, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for style, spelling := range styleNames {
		if normalized == spelling {
			return style, nil
		}
	}
	return StyleUnknown, fmt.Errorf("unknown case style %q (valid styles: %s): %w",
		name, validStyleList(), refmterrors.ErrInvalidStyle)
}

// validStyleList returns the comma-separated spellings for error messages.
func validStyleList() string {
	names := make([]string, 0, len(styleNames))
	for _, style := range Styles() {
		names = append(names, style.String())
	}
	return strings.Join(names, ", ")
}
