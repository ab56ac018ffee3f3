package converter

import (
	"regexp"
	"strings"

	"github.com/erraggy/refmt"
	"github.com/erraggy/refmt/casing"
	"github.com/erraggy/refmt/internal/stringutil"
	"github.com/erraggy/refmt/refmterrors"
)

// DefaultExtensions is the extension filter used when Config.Extensions is
// empty: common source and documentation file types.
var DefaultExtensions = []string{".c", ".h", ".py", ".md", ".js", ".ts", ".java", ".cpp", ".hpp"}

// Config describes a single identifier-rewrite job: which case style to
// recognize, which to produce, and the optional string transforms applied
// around the conversion.
type Config struct {
	// From is the case style to recognize in file content (required)
	From casing.Style
	// To is the case style to produce (required)
	To casing.Style
	// Prefix is prepended verbatim to every converted identifier
	Prefix string
	// Suffix is appended verbatim to every converted identifier
	Suffix string
	// StripPrefix is removed from the front of a matched identifier
	// before conversion, when present
	StripPrefix string
	// StripSuffix is removed from the end of a matched identifier
	// before conversion, when present
	StripSuffix string
	// ReplacePrefixFrom/ReplacePrefixTo swap a leading substring before
	// conversion. To requires From.
	ReplacePrefixFrom string
	ReplacePrefixTo   string
	// ReplaceSuffixFrom/ReplaceSuffixTo swap a trailing substring before
	// conversion. To requires From.
	ReplaceSuffixFrom string
	ReplaceSuffixTo   string
	// WordFilter is a regular expression tested against the identifier
	// after strip/replace transforms; identifiers that do not match are
	// left untouched in the output
	WordFilter string
	// Glob filters candidate files by base name or root-relative path
	Glob string
	// Extensions filters candidate files by extension (leading dot,
	// e.g. ".py"). Empty means DefaultExtensions.
	Extensions []string
	// Recursive descends into subdirectories
	Recursive bool
	// DryRun reports would-be changes without writing any file
	DryRun bool
}

// Converter rewrites identifiers of one case style into another across file
// content. A Converter is immutable after construction and safe to reuse
// across files.
type Converter struct {
	cfg        Config
	pattern    *regexp.Regexp
	wordFilter *regexp.Regexp
	extensions []string

	// Logger receives structured debug and error output.
	// If nil, logging is disabled (default).
	Logger refmt.Logger
	// Reporter receives per-file outcome notices.
	// If nil, notices are discarded (default).
	Reporter Reporter
}

// New creates a Converter from cfg, validating the whole configuration
// before any file is touched. Invalid styles, a replace "to" without its
// "from", an unparsable word filter, and an unparsable glob all fail here
// with a *refmterrors.ConfigError.
func New(cfg Config) (*Converter, error) {
	if !cfg.From.IsValid() {
		return nil, &refmterrors.ConfigError{
			Option:  "from",
			Value:   cfg.From,
			Message: "exactly one source style must be chosen",
		}
	}
	if !cfg.To.IsValid() {
		return nil, &refmterrors.ConfigError{
			Option:  "to",
			Value:   cfg.To,
			Message: "exactly one target style must be chosen",
		}
	}
	if cfg.ReplacePrefixTo != "" && cfg.ReplacePrefixFrom == "" {
		return nil, &refmterrors.ConfigError{
			Option:  "replace-prefix-to",
			Value:   cfg.ReplacePrefixTo,
			Message: "requires replace-prefix-from",
		}
	}
	if cfg.ReplaceSuffixTo != "" && cfg.ReplaceSuffixFrom == "" {
		return nil, &refmterrors.ConfigError{
			Option:  "replace-suffix-to",
			Value:   cfg.ReplaceSuffixTo,
			Message: "requires replace-suffix-from",
		}
	}

	c := &Converter{
		cfg:        cfg,
		pattern:    cfg.From.Pattern(),
		extensions: cfg.Extensions,
	}
	if len(c.extensions) == 0 {
		c.extensions = DefaultExtensions
	}

	if cfg.WordFilter != "" {
		filter, err := regexp.Compile(cfg.WordFilter)
		if err != nil {
			return nil, &refmterrors.ConfigError{
				Option:  "word-filter",
				Value:   cfg.WordFilter,
				Message: "invalid pattern",
				Cause:   err,
			}
		}
		c.wordFilter = filter
	}

	if err := stringutil.ValidateGlob(cfg.Glob); err != nil {
		return nil, &refmterrors.ConfigError{
			Option:  "glob",
			Value:   cfg.Glob,
			Message: "invalid pattern",
			Cause:   err,
		}
	}

	return c, nil
}

// Config returns a copy of the configuration the Converter was built from.
func (c *Converter) Config() Config {
	return c.cfg
}

// Rewrite replaces every identifier in content that matches the source
// style with its converted form. The substitution is a single
// left-to-right pass; replacement text is not re-scanned for further
// matches. Content is returned unchanged when nothing matches.
func (c *Converter) Rewrite(content string) string {
	return c.pattern.ReplaceAllStringFunc(content, c.convertToken)
}

// convertToken applies the per-match pipeline: strip prefix, strip suffix,
// replace prefix, replace suffix, word-filter gate, then split on the
// source style and join in the target style with the configured affixes.
// When the word filter rejects the transformed name, the original token is
// emitted verbatim, strip/replace transforms included.
func (c *Converter) convertToken(token string) string {
	name := token

	if p := c.cfg.StripPrefix; p != "" {
		name = strings.TrimPrefix(name, p)
	}
	if s := c.cfg.StripSuffix; s != "" {
		name = strings.TrimSuffix(name, s)
	}
	if from := c.cfg.ReplacePrefixFrom; from != "" && c.cfg.ReplacePrefixTo != "" {
		if rest, ok := strings.CutPrefix(name, from); ok {
			name = c.cfg.ReplacePrefixTo + rest
		}
	}
	if from := c.cfg.ReplaceSuffixFrom; from != "" && c.cfg.ReplaceSuffixTo != "" {
		if rest, ok := strings.CutSuffix(name, from); ok {
			name = rest + c.cfg.ReplaceSuffixTo
		}
	}

	if c.wordFilter != nil && !c.wordFilter.MatchString(name) {
		return token
	}

	words := c.cfg.From.Split(name)
	return c.cfg.To.Join(words, c.cfg.Prefix, c.cfg.Suffix)
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Converter) log() refmt.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return refmt.NopLogger{}
}

// report returns the configured reporter, or a no-op reporter if none is set.
func (c *Converter) report() Reporter {
	if c.Reporter != nil {
		return c.Reporter
	}
	return NopReporter{}
}

// Rewrite is a convenience function that rewrites identifiers in content
// from one case style to another with default options. For repeated use or
// additional transforms, create a Converter with New.
//
// Example:
//
//	out, err := converter.Rewrite("myVariable = 1", casing.StyleCamel, casing.StyleSnake)
//	// out == "my_variable = 1"
func Rewrite(content string, from, to casing.Style) (string, error) {
	c, err := New(Config{From: from, To: to})
	if err != nil {
		return "", err
	}
	return c.Rewrite(content), nil
}

