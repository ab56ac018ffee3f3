package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/pipeline"
)

// RunFlags contains flags for the run command
type RunFlags struct {
	Recursive bool
	DryRun    bool
	Format    string
	Log       LogFlags
}

// SetupRunFlags creates and configures a FlagSet for the run command.
// Returns the FlagSet and a RunFlags struct with bound flag variables.
func SetupRunFlags() (*flag.FlagSet, *RunFlags) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	flags := &RunFlags{}

	fs.BoolVar(&flags.Recursive, "r", true, "process files recursively")
	fs.BoolVar(&flags.Recursive, "recursive", true, "process files recursively")
	fs.BoolVar(&flags.DryRun, "d", false, "dry run: report changes without touching files")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "dry run: report changes without touching files")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	AddLogFlags(fs, &flags.Log)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: refmt run [flags] [path]\n\n")
		Writef(fs.Output(), "Run all transformations in one pass: rename to lowercase, transform\n")
		Writef(fs.Output(), "emojis, and clean trailing whitespace. The path defaults to the current\n")
		Writef(fs.Output(), "directory. Invoking refmt with a bare path does the same thing.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  refmt run ./notes\n")
		Writef(fs.Output(), "  refmt ./notes\n")
		Writef(fs.Output(), "  refmt run -d .\n")
	}

	return fs, flags
}

// HandleRun executes the run command
func HandleRun(args []string) error {
	fs, flags := SetupRunFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	path := "."
	switch fs.NArg() {
	case 0:
	case 1:
		path = fs.Arg(0)
	default:
		fs.Usage()
		return fmt.Errorf("run command takes at most one path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	logger, closeLog, err := NewLogger(&flags.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	p := pipeline.New()
	p.Recursive = flags.Recursive
	p.DryRun = flags.DryRun
	p.Logger = logger
	if flags.Format == FormatText {
		p.Progress = os.Stdout
	}

	stats, err := p.Process(path)
	if err != nil {
		return fmt.Errorf("processing files: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(stats, flags.Format)
	}

	printRunSummary(stats, flags.DryRun)
	return nil
}

// printRunSummary prints the per-stage summary block, listing only the
// stages that touched files.
func printRunSummary(stats *pipeline.Stats, dryRun bool) {
	if stats.FilesRenamed == 0 && stats.FilesEmojiTransformed == 0 && stats.FilesWhitespaceCleaned == 0 {
		fmt.Println("No files needed processing")
		return
	}

	fmt.Printf("%sProcessed files:\n", SummaryPrefix(dryRun))
	if stats.FilesRenamed > 0 {
		fmt.Printf("  - Renamed: %d file(s)\n", stats.FilesRenamed)
	}
	if stats.FilesEmojiTransformed > 0 {
		fmt.Printf("  - Emoji transformations: %d file(s) (%d changes)\n", stats.FilesEmojiTransformed, stats.EmojiChanges)
	}
	if stats.FilesWhitespaceCleaned > 0 {
		fmt.Printf("  - Whitespace cleaned: %d file(s) (%d lines)\n", stats.FilesWhitespaceCleaned, stats.WhitespaceLinesCleaned)
	}
}
