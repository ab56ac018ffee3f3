package renamer

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/erraggy/refmt"
)

// CaseTransform identifies how a file name's letters are recased.
type CaseTransform int

const (
	// TransformNone leaves letter case alone.
	TransformNone CaseTransform = iota

	// TransformLowercase lowercases the whole name.
	TransformLowercase

	// TransformUppercase uppercases the whole name.
	TransformUppercase

	// TransformCapitalize uppercases the first letter and lowercases the
	// rest. Letters after separators stay lowercase.
	TransformCapitalize
)

// IsValid returns true if the transform is one of the defined constants.
func (c CaseTransform) IsValid() bool {
	return c >= TransformNone && c <= TransformCapitalize
}

// String returns a string representation of the transform.
func (c CaseTransform) String() string {
	switch c {
	case TransformNone:
		return "none"
	case TransformLowercase:
		return "lowercase"
	case TransformUppercase:
		return "uppercase"
	case TransformCapitalize:
		return "capitalize"
	default:
		return fmt.Sprintf("CaseTransform(%d)", c)
	}
}

// Separator identifies which character joins the words of a file name.
type Separator int

const (
	// SeparatorNone leaves separators alone.
	SeparatorNone Separator = iota

	// SeparatorUnderscore replaces spaces and hyphens with underscores.
	SeparatorUnderscore

	// SeparatorHyphen replaces spaces and underscores with hyphens.
	SeparatorHyphen
)

// IsValid returns true if the separator is one of the defined constants.
func (s Separator) IsValid() bool {
	return s >= SeparatorNone && s <= SeparatorHyphen
}

// String returns a string representation of the separator.
func (s Separator) String() string {
	switch s {
	case SeparatorNone:
		return "none"
	case SeparatorUnderscore:
		return "underscore"
	case SeparatorHyphen:
		return "hyphen"
	default:
		return fmt.Sprintf("Separator(%d)", s)
	}
}

// TimestampFormat identifies the date-stamp prefix added to file names.
type TimestampFormat int

const (
	// TimestampNone adds no stamp.
	TimestampNone TimestampFormat = iota

	// TimestampLong prefixes names with YYYYMMDD_, such as 20260312_.
	TimestampLong

	// TimestampShort prefixes names with YYMMDD_, such as 260312_.
	TimestampShort
)

// IsValid returns true if the format is one of the defined constants.
func (f TimestampFormat) IsValid() bool {
	return f >= TimestampNone && f <= TimestampShort
}

// String returns a string representation of the format.
func (f TimestampFormat) String() string {
	switch f {
	case TimestampNone:
		return "none"
	case TimestampLong:
		return "long"
	case TimestampShort:
		return "short"
	default:
		return fmt.Sprintf("TimestampFormat(%d)", f)
	}
}

// stamp renders the date prefix for a file's modification time. The
// trailing underscore is part of the stamp.
func (f TimestampFormat) stamp(t time.Time) string {
	switch f {
	case TimestampLong:
		return t.Format("20060102") + "_"
	case TimestampShort:
		return t.Format("060102") + "_"
	default:
		return ""
	}
}

// Renamer rewrites file names according to a fixed set of transforms.
type Renamer struct {
	// Case recases the name's letters
	Case CaseTransform
	// Separator normalizes the space, hyphen, and underscore separators
	Separator Separator
	// Timestamp adds a date prefix derived from the file's modification time
	Timestamp TimestampFormat
	// AddPrefix is prepended to the name
	AddPrefix string
	// RemovePrefix is stripped from the front of the name, when present
	RemovePrefix string
	// AddSuffix is appended to the name, before the extension
	AddSuffix string
	// RemoveSuffix is stripped from the end of the name (before the
	// extension), when present
	RemoveSuffix string
	// Recursive descends into subdirectories
	Recursive bool
	// DryRun reports would-be renames without touching any file
	DryRun bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger refmt.Logger
	// Progress receives the per-file notices.
	// If nil, notices are discarded (default).
	Progress io.Writer
}

// New creates a Renamer with default settings: no transforms and
// recursive traversal.
func New() *Renamer {
	return &Renamer{Recursive: true}
}

// NewName computes the transformed name for a file's base name and
// modification time. The transforms apply to the stem in a fixed order:
// remove prefix, remove suffix, separators, case, add prefix, add suffix,
// timestamp prefix. The extension, split at the last dot, is re-attached
// unchanged. A stem that already begins with the computed date stamp is
// not stamped again, so repeated runs stay stable.
func (r *Renamer) NewName(name string, modTime time.Time) string {
	stem, ext := splitExtension(name)

	if p := r.RemovePrefix; p != "" {
		stem = strings.TrimPrefix(stem, p)
	}
	if s := r.RemoveSuffix; s != "" {
		stem = strings.TrimSuffix(stem, s)
	}

	switch r.Separator {
	case SeparatorUnderscore:
		stem = strings.NewReplacer(" ", "_", "-", "_").Replace(stem)
	case SeparatorHyphen:
		stem = strings.NewReplacer(" ", "-", "_", "-").Replace(stem)
	}

	switch r.Case {
	case TransformLowercase:
		stem = strings.ToLower(stem)
	case TransformUppercase:
		stem = strings.ToUpper(stem)
	case TransformCapitalize:
		stem = capitalize(stem)
	}

	stem = r.AddPrefix + stem + r.AddSuffix

	if ts := r.Timestamp.stamp(modTime); ts != "" && !strings.HasPrefix(stem, ts) {
		stem = ts + stem
	}

	return stem + ext
}

// splitExtension splits a file name at the last dot. The extension keeps
// its leading dot; names without one return an empty extension.
func splitExtension(name string) (stem, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// capitalize uppercases the first rune and lowercases the rest. Title
// casing is deliberately not used here: it would also capitalize after
// hyphens and underscores.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func (r *Renamer) printf(format string, args ...any) {
	if r.Progress != nil {
		fmt.Fprintf(r.Progress, format, args...)
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (r *Renamer) log() refmt.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return refmt.NopLogger{}
}
