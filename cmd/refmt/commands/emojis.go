package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/emoji"
)

// EmojisFlags contains flags for the emojis command
type EmojisFlags struct {
	Recursive   bool
	DryRun      bool
	Extensions  string
	ReplaceTask bool
	RemoveOther bool
	Format      string
	Log         LogFlags
}

// SetupEmojisFlags creates and configures a FlagSet for the emojis command.
// Returns the FlagSet and an EmojisFlags struct with bound flag variables.
func SetupEmojisFlags() (*flag.FlagSet, *EmojisFlags) {
	fs := flag.NewFlagSet("emojis", flag.ContinueOnError)
	flags := &EmojisFlags{}

	fs.BoolVar(&flags.Recursive, "r", true, "process files recursively")
	fs.BoolVar(&flags.Recursive, "recursive", true, "process files recursively")
	fs.BoolVar(&flags.DryRun, "d", false, "dry run: report changes without modifying files")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "dry run: report changes without modifying files")
	fs.StringVar(&flags.Extensions, "e", "", "comma-separated file extensions to process")
	fs.StringVar(&flags.Extensions, "extensions", "", "comma-separated file extensions to process")
	fs.BoolVar(&flags.ReplaceTask, "replace-task", true, "replace task emojis with text (e.g. ✅ -> [x])")
	fs.BoolVar(&flags.RemoveOther, "remove-other", true, "remove all other emojis")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	AddLogFlags(fs, &flags.Log)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: refmt emojis [flags] <path>\n\n")
		Writef(fs.Output(), "Remove emojis from files, replacing task markers with text alternatives.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  refmt emojis ./docs\n")
		Writef(fs.Output(), "  refmt emojis -d README.md\n")
		Writef(fs.Output(), "  refmt emojis --replace-task=false --remove-other=true ./notes\n")
	}

	return fs, flags
}

// HandleEmojis executes the emojis command
func HandleEmojis(args []string) error {
	fs, flags := SetupEmojisFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("emojis command requires exactly one path")
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

	t := emoji.New()
	t.Recursive = flags.Recursive
	t.DryRun = flags.DryRun
	t.ReplaceTasks = flags.ReplaceTask
	t.RemoveOther = flags.RemoveOther
	t.Logger = logger
	if exts := ParseExtensions(flags.Extensions); exts != nil {
		t.Extensions = exts
	}
	if flags.Format == FormatText {
		t.Progress = os.Stdout
	}

	result, err := t.Process(path)
	if err != nil {
		return fmt.Errorf("transforming emojis: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}

	if result.FilesChanged > 0 {
		fmt.Printf("%sTransformed emojis in %d file(s) (%d changes)\n", SummaryPrefix(flags.DryRun), result.FilesChanged, result.Changes)
	} else {
		fmt.Println("No files contained emojis to transform")
	}
	return nil
}
