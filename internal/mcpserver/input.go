package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/refmt/casing"
	"github.com/erraggy/refmt/internal/fileutil"
)

// parseStyleArg resolves a style argument such as "camel" or
// "screaming-snake". An empty value is reported against the field name so
// the client knows which argument is missing.
func parseStyleArg(field, value string) (casing.Style, error) {
	if value == "" {
		return casing.StyleUnknown, fmt.Errorf("%s is required (one of: %s)", field, styleList())
	}
	style, err := casing.ParseStyle(value)
	if err != nil {
		return casing.StyleUnknown, fmt.Errorf("invalid %s: %w", field, err)
	}
	return style, nil
}

// styleList returns the accepted style spellings for error messages.
func styleList() string {
	names := make([]string, 0, len(casing.Styles()))
	for _, style := range casing.Styles() {
		names = append(names, style.String())
	}
	return strings.Join(names, ", ")
}

// boolArg returns the argument value, or fallback when the call omitted it.
// Tool inputs use *bool so an omitted argument is distinguishable from an
// explicit false.
func boolArg(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

// effectiveDryRun merges the per-call dry_run argument with the
// REFMT_DRY_RUN override. The env var can force dry-run on but never
// forces it off.
func effectiveDryRun(requested bool) bool {
	return requested || cfg.DryRun
}

// extensionsArg normalizes the extensions argument: entries may be given
// with or without the leading dot. An empty list means the tool's default
// extension set.
func extensionsArg(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	return fileutil.NormalizeExtensions(exts)
}
