package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/renamer"
)

// RenameFlags contains flags for the rename command
type RenameFlags struct {
	Recursive      bool
	DryRun         bool
	ToLowercase    bool
	ToUppercase    bool
	ToCapitalize   bool
	Underscored    bool
	Hyphenated     bool
	AddPrefix      string
	RmPrefix       string
	AddSuffix      string
	RmSuffix       string
	TimestampLong  bool
	TimestampShort bool
	Format         string
	Log            LogFlags
}

// SetupRenameFlags creates and configures a FlagSet for the rename command.
// Returns the FlagSet and a RenameFlags struct with bound flag variables.
func SetupRenameFlags() (*flag.FlagSet, *RenameFlags) {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	flags := &RenameFlags{}

	fs.BoolVar(&flags.Recursive, "r", true, "process directories recursively")
	fs.BoolVar(&flags.Recursive, "recursive", true, "process directories recursively")
	fs.BoolVar(&flags.DryRun, "d", false, "dry run: report renames without touching files")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "dry run: report renames without touching files")
	fs.BoolVar(&flags.ToLowercase, "to-lowercase", false, "convert file names to lowercase")
	fs.BoolVar(&flags.ToUppercase, "to-uppercase", false, "convert file names to UPPERCASE")
	fs.BoolVar(&flags.ToCapitalize, "to-capitalize", false, "capitalize file names (first letter uppercase, rest lowercase)")
	fs.BoolVar(&flags.Underscored, "underscored", false, "replace separators (spaces, hyphens) with underscores")
	fs.BoolVar(&flags.Hyphenated, "hyphenated", false, "replace separators (spaces, underscores) with hyphens")
	fs.StringVar(&flags.AddPrefix, "add-prefix", "", "add prefix to file names")
	fs.StringVar(&flags.RmPrefix, "rm-prefix", "", "remove prefix from file names")
	fs.StringVar(&flags.AddSuffix, "add-suffix", "", "add suffix to file names (before extension)")
	fs.StringVar(&flags.RmSuffix, "rm-suffix", "", "remove suffix from file names (before extension)")
	fs.BoolVar(&flags.TimestampLong, "timestamp-long", false, "add modification-date prefix in YYYYMMDD format (e.g. 20250915_)")
	fs.BoolVar(&flags.TimestampShort, "timestamp-short", false, "add modification-date prefix in YYMMDD format (e.g. 250915_)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	AddLogFlags(fs, &flags.Log)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: refmt rename [flags] <path>\n\n")
		Writef(fs.Output(), "Rename files with case, separator, affix, and timestamp transformations.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  refmt rename --to-lowercase --underscored ./downloads\n")
		Writef(fs.Output(), "  refmt rename -d --rm-prefix draft_ --add-suffix _final ./docs\n")
		Writef(fs.Output(), "  refmt rename --timestamp-long ./photos\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - At most one case flag, one separator flag, and one timestamp flag\n")
		Writef(fs.Output(), "  - Hidden files are never renamed\n")
		Writef(fs.Output(), "  - A rename whose target exists stops the run with an error\n")
	}

	return fs, flags
}

// HandleRename executes the rename command
func HandleRename(args []string) error {
	fs, flags := SetupRenameFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("rename command requires exactly one path")
	}
	path := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	r, err := flags.renamer()
	if err != nil {
		return err
	}

	logger, closeLog, err := NewLogger(&flags.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	r.Logger = logger
	if flags.Format == FormatText {
		r.Progress = os.Stdout
	}

	result, err := r.Process(path)
	if err != nil {
		return fmt.Errorf("renaming files: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}

	if result.FilesRenamed > 0 {
		fmt.Printf("%sRenamed %d file(s)\n", SummaryPrefix(flags.DryRun), result.FilesRenamed)
	} else {
		fmt.Println("No files needed renaming")
	}
	return nil
}

// renamer translates the parsed flags into a configured Renamer, rejecting
// conflicting selections within the case, separator, and timestamp groups.
func (f *RenameFlags) renamer() (*renamer.Renamer, error) {
	r := renamer.New()
	r.Recursive = f.Recursive
	r.DryRun = f.DryRun
	r.AddPrefix = f.AddPrefix
	r.RemovePrefix = f.RmPrefix
	r.AddSuffix = f.AddSuffix
	r.RemoveSuffix = f.RmSuffix

	caseCount := 0
	if f.ToLowercase {
		r.Case = renamer.TransformLowercase
		caseCount++
	}
	if f.ToUppercase {
		r.Case = renamer.TransformUppercase
		caseCount++
	}
	if f.ToCapitalize {
		r.Case = renamer.TransformCapitalize
		caseCount++
	}
	if caseCount > 1 {
		return nil, fmt.Errorf("at most one of --to-lowercase, --to-uppercase, --to-capitalize may be given")
	}

	if f.Underscored && f.Hyphenated {
		return nil, fmt.Errorf("at most one of --underscored, --hyphenated may be given")
	}
	if f.Underscored {
		r.Separator = renamer.SeparatorUnderscore
	}
	if f.Hyphenated {
		r.Separator = renamer.SeparatorHyphen
	}

	if f.TimestampLong && f.TimestampShort {
		return nil, fmt.Errorf("at most one of --timestamp-long, --timestamp-short may be given")
	}
	if f.TimestampLong {
		r.Timestamp = renamer.TimestampLong
	}
	if f.TimestampShort {
		r.Timestamp = renamer.TimestampShort
	}

	return r, nil
}
