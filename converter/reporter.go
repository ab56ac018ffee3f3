package converter

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives per-file notices as a run progresses. Implementations
// decide where the notices go: the CLI prints them, tests collect them,
// and NopReporter discards them.
//
// All methods receive the file path being reported on. ProcessError
// additionally receives the per-file failure cause.
type Reporter interface {
	// WouldConvert reports a file whose content would change, in dry-run mode
	WouldConvert(path string)
	// Converted reports a file that was rewritten in place
	Converted(path string)
	// NoChanges reports a file whose content was already in the target form
	NoChanges(path string)
	// PathMissing reports a root path that does not exist
	PathMissing(path string)
	// ProcessError reports a file that could not be processed
	ProcessError(path string, err error)
}

// NopReporter is a Reporter that discards all notices. It is the default
// when no Reporter is configured.
type NopReporter struct{}

// WouldConvert implements Reporter as a no-op
func (NopReporter) WouldConvert(string) {}

// Converted implements Reporter as a no-op
func (NopReporter) Converted(string) {}

// NoChanges implements Reporter as a no-op
func (NopReporter) NoChanges(string) {}

// PathMissing implements Reporter as a no-op
func (NopReporter) PathMissing(string) {}

// ProcessError implements Reporter as a no-op
func (NopReporter) ProcessError(string, error) {}

// Verify NopReporter implements Reporter
var _ Reporter = NopReporter{}

// WriteReporter prints the standard progress notices to a pair of writers:
// progress goes to Out and diagnostics go to ErrOut.
//
// Example:
//
//	c, _ := converter.New(cfg)
//	c.Reporter = &converter.WriteReporter{}
//	c.Process("./src")
type WriteReporter struct {
	// Out receives progress notices. If nil, os.Stdout is used.
	Out io.Writer
	// ErrOut receives diagnostics. If nil, os.Stderr is used.
	ErrOut io.Writer
}

// Verify WriteReporter implements Reporter
var _ Reporter = (*WriteReporter)(nil)

func (w *WriteReporter) out() io.Writer {
	if w.Out != nil {
		return w.Out
	}
	return os.Stdout
}

func (w *WriteReporter) errOut() io.Writer {
	if w.ErrOut != nil {
		return w.ErrOut
	}
	return os.Stderr
}

// WouldConvert prints the dry-run notice for a file whose content would change
func (w *WriteReporter) WouldConvert(path string) {
	fmt.Fprintf(w.out(), "Would convert '%s'\n", path)
}

// Converted prints the notice for a rewritten file
func (w *WriteReporter) Converted(path string) {
	fmt.Fprintf(w.out(), "Converted '%s'\n", path)
}

// NoChanges prints the notice for a file that needed no rewriting
func (w *WriteReporter) NoChanges(path string) {
	fmt.Fprintf(w.out(), "No changes needed in '%s'\n", path)
}

// PathMissing prints the diagnostic for a nonexistent root path
func (w *WriteReporter) PathMissing(path string) {
	fmt.Fprintf(w.errOut(), "Path '%s' does not exist.\n", path)
}

// ProcessError prints the diagnostic for a file that failed to process
func (w *WriteReporter) ProcessError(path string, err error) {
	fmt.Fprintf(w.errOut(), "Error processing file '%s': %v\n", path, err)
}
