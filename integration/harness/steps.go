//go:build integration

package harness

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/refmt/casing"
	"github.com/erraggy/refmt/cleaner"
	"github.com/erraggy/refmt/converter"
	"github.com/erraggy/refmt/emoji"
	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/pipeline"
	"github.com/erraggy/refmt/renamer"
)

// ExecuteStep executes a single scenario step and returns the result.
func ExecuteStep(t *testing.T, rc *runContext, step *Step) StepResult {
	t.Helper()

	start := time.Now()
	result := StepResult{
		Command: step.Command,
		Success: true,
	}

	var err error
	switch step.Command {
	case "convert":
		err = executeConvert(rc, step, &result)
	case "clean":
		err = executeClean(rc, step, &result)
	case "emojis":
		err = executeEmojis(rc, step, &result)
	case "rename":
		err = executeRename(rc, step, &result)
	case "run":
		err = executeRun(rc, step, &result)
	default:
		err = fmt.Errorf("unknown command: %s", step.Command)
	}

	result.Duration = time.Since(start)

	// Handle expected errors
	if err != nil {
		if step.ErrorContains != "" {
			if strings.Contains(err.Error(), step.ErrorContains) {
				return result
			}
			result.Success = false
			result.Error = fmt.Errorf("expected error containing %q, got: %v", step.ErrorContains, err)
			return result
		}
		result.Success = false
		result.Error = err
		return result
	}

	if step.ErrorContains != "" {
		result.Success = false
		result.Error = fmt.Errorf("expected error containing %q but step succeeded", step.ErrorContains)
	}
	return result
}

func executeConvert(rc *runContext, step *Step, result *StepResult) error {
	o := step.Options
	from, err := casing.ParseStyle(o.From)
	if err != nil {
		return fmt.Errorf("convert step: %w", err)
	}
	to, err := casing.ParseStyle(o.To)
	if err != nil {
		return fmt.Errorf("convert step: %w", err)
	}

	cfg := converter.Config{
		From:              from,
		To:                to,
		Prefix:            o.Prefix,
		Suffix:            o.Suffix,
		StripPrefix:       o.StripPrefix,
		StripSuffix:       o.StripSuffix,
		ReplacePrefixFrom: o.ReplacePrefixFrom,
		ReplacePrefixTo:   o.ReplacePrefixTo,
		ReplaceSuffixFrom: o.ReplaceSuffixFrom,
		ReplaceSuffixTo:   o.ReplaceSuffixTo,
		WordFilter:        o.WordFilter,
		Glob:              o.Glob,
		Recursive:         boolValue(o.Recursive, true),
		DryRun:            o.DryRun,
	}
	if len(o.Extensions) > 0 {
		cfg.Extensions = fileutil.NormalizeExtensions(o.Extensions)
	}

	conv, err := converter.New(cfg)
	if err != nil {
		return err
	}
	res, err := conv.Process(rc.Root)
	if err != nil {
		return err
	}

	result.Summary = fmt.Sprintf("%d scanned, %d changed", res.FilesScanned, res.FilesChanged)
	e := step.Expect
	return checkCounts([]countCheck{
		{"files-scanned", e.FilesScanned, res.FilesScanned},
		{"files-changed", e.FilesChanged, res.FilesChanged},
		{"error-count", e.ErrorCount, res.ErrorCount},
	})
}

func executeClean(rc *runContext, step *Step, result *StepResult) error {
	o := step.Options
	c := cleaner.New()
	c.Recursive = boolValue(o.Recursive, c.Recursive)
	c.DryRun = o.DryRun
	if len(o.Extensions) > 0 {
		c.Extensions = fileutil.NormalizeExtensions(o.Extensions)
	}

	res, err := c.Process(rc.Root)
	if err != nil {
		return err
	}

	result.Summary = fmt.Sprintf("%d file(s), %d line(s)", res.FilesCleaned, res.LinesCleaned)
	e := step.Expect
	return checkCounts([]countCheck{
		{"files-cleaned", e.FilesCleaned, res.FilesCleaned},
		{"lines-cleaned", e.LinesCleaned, res.LinesCleaned},
	})
}

func executeEmojis(rc *runContext, step *Step, result *StepResult) error {
	o := step.Options
	tr := emoji.New()
	tr.ReplaceTasks = boolValue(o.ReplaceTask, tr.ReplaceTasks)
	tr.RemoveOther = boolValue(o.RemoveOther, tr.RemoveOther)
	tr.Recursive = boolValue(o.Recursive, tr.Recursive)
	tr.DryRun = o.DryRun
	if len(o.Extensions) > 0 {
		tr.Extensions = fileutil.NormalizeExtensions(o.Extensions)
	}

	res, err := tr.Process(rc.Root)
	if err != nil {
		return err
	}

	result.Summary = fmt.Sprintf("%d file(s), %d change(s)", res.FilesChanged, res.Changes)
	e := step.Expect
	return checkCounts([]countCheck{
		{"files-changed", e.FilesChanged, res.FilesChanged},
		{"changes", e.Changes, res.Changes},
	})
}

func executeRename(rc *runContext, step *Step, result *StepResult) error {
	o := step.Options
	r := renamer.New()
	r.Recursive = boolValue(o.Recursive, r.Recursive)
	r.DryRun = o.DryRun
	r.AddPrefix = o.AddPrefix
	r.RemovePrefix = o.RemovePrefix
	r.AddSuffix = o.AddSuffix
	r.RemoveSuffix = o.RemoveSuffix

	switch o.Case {
	case "":
	case "lowercase":
		r.Case = renamer.TransformLowercase
	case "uppercase":
		r.Case = renamer.TransformUppercase
	case "capitalize":
		r.Case = renamer.TransformCapitalize
	default:
		return fmt.Errorf("rename step: invalid case %q", o.Case)
	}

	if o.Underscored && o.Hyphenated {
		return fmt.Errorf("rename step: at most one of underscored, hyphenated may be set")
	}
	if o.Underscored {
		r.Separator = renamer.SeparatorUnderscore
	}
	if o.Hyphenated {
		r.Separator = renamer.SeparatorHyphen
	}

	switch o.Timestamp {
	case "":
	case "long":
		r.Timestamp = renamer.TimestampLong
	case "short":
		r.Timestamp = renamer.TimestampShort
	default:
		return fmt.Errorf("rename step: invalid timestamp %q", o.Timestamp)
	}

	res, err := r.Process(rc.Root)
	if err != nil {
		return err
	}

	result.Summary = fmt.Sprintf("%d renamed", res.FilesRenamed)
	e := step.Expect
	return checkCounts([]countCheck{
		{"files-renamed", e.FilesRenamed, res.FilesRenamed},
	})
}

func executeRun(rc *runContext, step *Step, result *StepResult) error {
	o := step.Options
	p := pipeline.New()
	p.Recursive = boolValue(o.Recursive, p.Recursive)
	p.DryRun = o.DryRun

	stats, err := p.Process(rc.Root)
	if err != nil {
		return err
	}

	result.Summary = fmt.Sprintf("%d renamed, %d emoji file(s), %d cleaned",
		stats.FilesRenamed, stats.FilesEmojiTransformed, stats.FilesWhitespaceCleaned)
	e := step.Expect
	return checkCounts([]countCheck{
		{"files-renamed", e.FilesRenamed, stats.FilesRenamed},
		{"files-emoji-transformed", e.FilesEmojiTransformed, stats.FilesEmojiTransformed},
		{"emoji-changes", e.EmojiChanges, stats.EmojiChanges},
		{"files-cleaned", e.FilesCleaned, stats.FilesWhitespaceCleaned},
		{"lines-cleaned", e.LinesCleaned, stats.WhitespaceLinesCleaned},
	})
}

// countCheck pairs an expected count from the scenario with the value a
// step actually reported.
type countCheck struct {
	Name string
	Want *int
	Got  int
}

// checkCounts compares every set expectation and reports all mismatches
// at once.
func checkCounts(checks []countCheck) error {
	var problems []string
	for _, c := range checks {
		if c.Want != nil && *c.Want != c.Got {
			problems = append(problems, fmt.Sprintf("%s = %d, want %d", c.Name, c.Got, *c.Want))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("count mismatch: %s", strings.Join(problems, "; "))
	}
	return nil
}

// boolValue resolves an optional scenario flag to its value, or to the
// command's default when the scenario omitted it.
func boolValue(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
