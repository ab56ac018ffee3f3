package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/refmt/casing"
	"github.com/erraggy/refmt/converter"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	FromCamel          bool
	FromPascal         bool
	FromSnake          bool
	FromScreamingSnake bool
	FromKebab          bool
	FromScreamingKebab bool
	ToCamel            bool
	ToPascal           bool
	ToSnake            bool
	ToScreamingSnake   bool
	ToKebab            bool
	ToScreamingKebab   bool
	Prefix             string
	Suffix             string
	StripPrefix        string
	StripSuffix        string
	ReplacePrefixFrom  string
	ReplacePrefixTo    string
	ReplaceSuffixFrom  string
	ReplaceSuffixTo    string
	WordFilter         string
	Glob               string
	Extensions         string
	Recursive          bool
	DryRun             bool
	Jobs               string
	Format             string
	Log                LogFlags
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.BoolVar(&flags.FromCamel, "from-camel", false, "convert FROM camelCase")
	fs.BoolVar(&flags.FromPascal, "from-pascal", false, "convert FROM PascalCase")
	fs.BoolVar(&flags.FromSnake, "from-snake", false, "convert FROM snake_case")
	fs.BoolVar(&flags.FromScreamingSnake, "from-screaming-snake", false, "convert FROM SCREAMING_SNAKE_CASE")
	fs.BoolVar(&flags.FromKebab, "from-kebab", false, "convert FROM kebab-case")
	fs.BoolVar(&flags.FromScreamingKebab, "from-screaming-kebab", false, "convert FROM SCREAMING-KEBAB-CASE")
	fs.BoolVar(&flags.ToCamel, "to-camel", false, "convert TO camelCase")
	fs.BoolVar(&flags.ToPascal, "to-pascal", false, "convert TO PascalCase")
	fs.BoolVar(&flags.ToSnake, "to-snake", false, "convert TO snake_case")
	fs.BoolVar(&flags.ToScreamingSnake, "to-screaming-snake", false, "convert TO SCREAMING_SNAKE_CASE")
	fs.BoolVar(&flags.ToKebab, "to-kebab", false, "convert TO kebab-case")
	fs.BoolVar(&flags.ToScreamingKebab, "to-screaming-kebab", false, "convert TO SCREAMING-KEBAB-CASE")
	fs.StringVar(&flags.Prefix, "prefix", "", "prefix to add to all converted identifiers")
	fs.StringVar(&flags.Suffix, "suffix", "", "suffix to add to all converted identifiers")
	fs.StringVar(&flags.StripPrefix, "strip-prefix", "", "strip prefix before conversion (e.g. 'm_' from 'm_userName')")
	fs.StringVar(&flags.StripSuffix, "strip-suffix", "", "strip suffix before conversion")
	fs.StringVar(&flags.ReplacePrefixFrom, "replace-prefix-from", "", "replace this prefix before conversion (e.g. 'I' in 'IUserService')")
	fs.StringVar(&flags.ReplacePrefixTo, "replace-prefix-to", "", "replacement for --replace-prefix-from")
	fs.StringVar(&flags.ReplaceSuffixFrom, "replace-suffix-from", "", "replace this suffix before conversion")
	fs.StringVar(&flags.ReplaceSuffixTo, "replace-suffix-to", "", "replacement for --replace-suffix-from")
	fs.StringVar(&flags.WordFilter, "word-filter", "", "regex pattern to filter which identifiers get converted")
	fs.StringVar(&flags.Glob, "glob", "", "glob pattern to filter files")
	fs.StringVar(&flags.Extensions, "e", "", "comma-separated file extensions to process")
	fs.StringVar(&flags.Extensions, "extensions", "", "comma-separated file extensions to process")
	fs.BoolVar(&flags.Recursive, "r", false, "convert files recursively")
	fs.BoolVar(&flags.Recursive, "recursive", false, "convert files recursively")
	fs.BoolVar(&flags.DryRun, "d", false, "dry run: report changes without modifying files")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "dry run: report changes without modifying files")
	fs.StringVar(&flags.Jobs, "jobs", "", "YAML file describing conversion jobs (replaces the --from/--to flags)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	AddLogFlags(fs, &flags.Log)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: refmt convert [flags] <path|->\n\n")
		Writef(fs.Output(), "Convert identifiers in file content between case styles.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nCase Styles:\n")
		for _, style := range casing.Styles() {
			Writef(fs.Output(), "  %-16s %s\n", style.String(), style.Example())
		}
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  refmt convert --from-camel --to-snake src/main.py\n")
		Writef(fs.Output(), "  refmt convert --from-snake --to-pascal -r -e py,pyx ./src\n")
		Writef(fs.Output(), "  refmt convert --from-camel --to-snake --strip-prefix m_ --dry-run ./legacy\n")
		Writef(fs.Output(), "  refmt convert --jobs migrate.yaml ./src\n")
		Writef(fs.Output(), "  cat main.py | refmt convert --from-camel --to-snake - > converted.py\n")
		Writef(fs.Output(), "\nPipelining:\n")
		Writef(fs.Output(), "  - Use '-' as the path to rewrite stdin to stdout\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one path, or '-' for stdin")
	}
	path := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	logger, closeLog, err := NewLogger(&flags.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	configs, err := flags.configs()
	if err != nil {
		return err
	}

	if path == StdinFilePath {
		if flags.Format != FormatText {
			return fmt.Errorf("format '%s' is not supported when reading from stdin", flags.Format)
		}
		return rewriteStdin(configs, os.Stdin, os.Stdout)
	}

	var results []*converter.Result
	for _, cfg := range configs {
		c, err := converter.New(cfg)
		if err != nil {
			return err
		}
		c.Logger = logger
		if flags.Format == FormatText {
			c.Reporter = &converter.WriteReporter{}
		}

		result, err := c.Process(path)
		if err != nil {
			return fmt.Errorf("converting path: %w", err)
		}
		results = append(results, result)
	}

	if flags.Format != FormatText {
		if len(results) == 1 {
			return OutputStructured(results[0], flags.Format)
		}
		return OutputStructured(results, flags.Format)
	}
	return nil
}

// configs translates the parsed flags into converter configurations:
// either the single config described by the style flags, or the job list
// loaded from --jobs. The two are mutually exclusive.
func (f *ConvertFlags) configs() ([]converter.Config, error) {
	from, fromCount := selectStyle(f.FromCamel, f.FromPascal, f.FromSnake, f.FromScreamingSnake, f.FromKebab, f.FromScreamingKebab)
	to, toCount := selectStyle(f.ToCamel, f.ToPascal, f.ToSnake, f.ToScreamingSnake, f.ToKebab, f.ToScreamingKebab)

	if f.Jobs != "" {
		if fromCount > 0 || toCount > 0 {
			return nil, fmt.Errorf("--jobs cannot be combined with the --from/--to style flags")
		}
		return converter.LoadJobs(f.Jobs)
	}

	if fromCount != 1 {
		return nil, fmt.Errorf("exactly one --from style is required (e.g. --from-camel)")
	}
	if toCount != 1 {
		return nil, fmt.Errorf("exactly one --to style is required (e.g. --to-snake)")
	}

	return []converter.Config{{
		From:              from,
		To:                to,
		Prefix:            f.Prefix,
		Suffix:            f.Suffix,
		StripPrefix:       f.StripPrefix,
		StripSuffix:       f.StripSuffix,
		ReplacePrefixFrom: f.ReplacePrefixFrom,
		ReplacePrefixTo:   f.ReplacePrefixTo,
		ReplaceSuffixFrom: f.ReplaceSuffixFrom,
		ReplaceSuffixTo:   f.ReplaceSuffixTo,
		WordFilter:        f.WordFilter,
		Glob:              f.Glob,
		Extensions:        ParseExtensions(f.Extensions),
		Recursive:         f.Recursive,
		DryRun:            f.DryRun,
	}}, nil
}

// selectStyle maps six mutually exclusive style flags to a Style, returning
// how many were set so the caller can reject zero or multiple selections.
func selectStyle(camel, pascal, snake, screamingSnake, kebab, screamingKebab bool) (casing.Style, int) {
	style := casing.StyleUnknown
	count := 0
	pick := func(s casing.Style, on bool) {
		if on {
			style = s
			count++
		}
	}
	pick(casing.StyleCamel, camel)
	pick(casing.StylePascal, pascal)
	pick(casing.StyleSnake, snake)
	pick(casing.StyleScreamingSnake, screamingSnake)
	pick(casing.StyleKebab, kebab)
	pick(casing.StyleScreamingKebab, screamingKebab)
	return style, count
}

// rewriteStdin applies each configuration's rewrite to the text read from
// in and writes the final text to out. File-oriented options such as
// extensions and dry-run do not apply to the stream.
func rewriteStdin(configs []converter.Config, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	content := string(data)
	for _, cfg := range configs {
		c, err := converter.New(cfg)
		if err != nil {
			return err
		}
		content = c.Rewrite(content)
	}

	if _, err := io.WriteString(out, content); err != nil {
		return fmt.Errorf("writing converted text to stdout: %w", err)
	}
	return nil
}
