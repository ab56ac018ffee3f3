package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/cleaner"
)

// CleanFlags contains flags for the clean command
type CleanFlags struct {
	Recursive  bool
	DryRun     bool
	Extensions string
	Format     string
	Log        LogFlags
}

// SetupCleanFlags creates and configures a FlagSet for the clean command.
// Returns the FlagSet and a CleanFlags struct with bound flag variables.
func SetupCleanFlags() (*flag.FlagSet, *CleanFlags) {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	flags := &CleanFlags{}

	fs.BoolVar(&flags.Recursive, "r", true, "process files recursively")
	fs.BoolVar(&flags.Recursive, "recursive", true, "process files recursively")
	fs.BoolVar(&flags.DryRun, "d", false, "dry run: report changes without modifying files")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "dry run: report changes without modifying files")
	fs.StringVar(&flags.Extensions, "e", "", "comma-separated file extensions to process")
	fs.StringVar(&flags.Extensions, "extensions", "", "comma-separated file extensions to process")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	AddLogFlags(fs, &flags.Log)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: refmt clean [flags] <path>\n\n")
		Writef(fs.Output(), "Remove trailing whitespace from files.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  refmt clean ./docs\n")
		Writef(fs.Output(), "  refmt clean -d notes.md\n")
		Writef(fs.Output(), "  refmt clean -e md,txt --format json ./docs\n")
	}

	return fs, flags
}

// HandleClean executes the clean command
func HandleClean(args []string) error {
	fs, flags := SetupCleanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("clean command requires exactly one path")
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

	c := cleaner.New()
	c.Recursive = flags.Recursive
	c.DryRun = flags.DryRun
	c.Logger = logger
	if exts := ParseExtensions(flags.Extensions); exts != nil {
		c.Extensions = exts
	}
	if flags.Format == FormatText {
		c.Progress = os.Stdout
	}

	result, err := c.Process(path)
	if err != nil {
		return fmt.Errorf("cleaning path: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}

	if result.FilesCleaned > 0 {
		fmt.Printf("%sCleaned %d lines in %d file(s)\n", SummaryPrefix(flags.DryRun), result.LinesCleaned, result.FilesCleaned)
	} else {
		fmt.Println("No files needed cleaning")
	}
	return nil
}
