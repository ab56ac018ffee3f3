package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/refmt"
	"github.com/erraggy/refmt/internal/fileutil"
)

// LogFlags contains the logging flags shared by every command.
type LogFlags struct {
	Verbose bool
	Quiet   bool
	LogFile string
}

// AddLogFlags registers the shared logging flags on a command's FlagSet.
func AddLogFlags(fs *flag.FlagSet, flags *LogFlags) {
	fs.BoolVar(&flags.Verbose, "v", false, "enable verbose (debug) logging")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose (debug) logging")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress all log output except errors")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress all log output except errors")
	fs.StringVar(&flags.LogFile, "log-file", "", "duplicate log output to a file")
}

// NewLogger builds the logger the command hands to the transform packages:
// a slog text handler on stderr at a level chosen by -v/-q, optionally
// duplicated to a file. The returned closer flushes and closes the log
// file and is safe to call when no file was requested.
func NewLogger(flags *LogFlags) (refmt.Logger, func(), error) {
	level := slog.LevelWarn
	switch {
	case flags.Quiet:
		level = slog.LevelError
	case flags.Verbose:
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if flags.LogFile != "" {
		f, err := os.OpenFile(flags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileutil.OwnerReadWrite)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closer = func() { _ = f.Close() }
		Writef(os.Stderr, "Logging to file: %s\n", flags.LogFile)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return refmt.NewSlogAdapter(slog.New(handler)), closer, nil
}
