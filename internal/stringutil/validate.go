package stringutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateGlob checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so match helpers never encounter an
// invalid pattern at match time. Empty patterns and patterns without glob
// metacharacters are always valid.
func ValidateGlob(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// MatchGlob matches a name against a pattern that has already passed
// ValidateGlob. Patterns without glob metacharacters fall back to exact
// comparison.
func MatchGlob(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	matched, err := filepath.Match(pattern, name)
	return err == nil && matched
}
