//go:build integration

// Package harness provides the integration test framework for refmt.
// It enables declarative scenario-driven testing via YAML files: a
// scenario materializes a file tree, applies a sequence of transform
// steps, and checks the resulting tree and counts.
package harness

import (
	"testing"
	"time"

	"github.com/erraggy/refmt/internal/testutil"
)

// Scenario represents a complete integration test scenario.
type Scenario struct {
	// Name is a short, descriptive name for the scenario
	Name string `yaml:"name"`
	// Description provides additional context about what the scenario tests
	Description string `yaml:"description,omitempty"`
	// Tree is the input file tree in txtar form; each section becomes a
	// file under the scenario's temporary root
	Tree string `yaml:"tree"`
	// Steps is the sequence of transform steps to execute
	Steps []Step `yaml:"steps"`
	// Expect defines checks against the final tree, after all steps ran
	Expect TreeExpect `yaml:"expect,omitempty"`
	// Skip provides a reason to skip this scenario (if set, scenario is skipped)
	Skip string `yaml:"skip,omitempty"`

	// filePath is the path to the scenario file (set by loader)
	filePath string
}

// Step represents a single step in the scenario.
type Step struct {
	// Command is the transform to run (convert, clean, emojis, rename, run)
	Command string `yaml:"command"`
	// Options configures the transform, using the CLI flag spellings
	Options Options `yaml:"options,omitempty"`
	// Expect defines the counts the step must report
	Expect StepExpect `yaml:"expect,omitempty"`
	// ErrorContains marks the step as expected to fail, with an error
	// message containing this substring
	ErrorContains string `yaml:"error-contains,omitempty"`
}

// Options configures a step's transform. Field spellings follow the CLI
// flags; fields a command does not know are ignored. Recursive,
// replace-task, and remove-other are pointers so an omitted value keeps
// the command's default rather than forcing false.
type Options struct {
	From              string   `yaml:"from,omitempty"`
	To                string   `yaml:"to,omitempty"`
	Prefix            string   `yaml:"prefix,omitempty"`
	Suffix            string   `yaml:"suffix,omitempty"`
	StripPrefix       string   `yaml:"strip-prefix,omitempty"`
	StripSuffix       string   `yaml:"strip-suffix,omitempty"`
	ReplacePrefixFrom string   `yaml:"replace-prefix-from,omitempty"`
	ReplacePrefixTo   string   `yaml:"replace-prefix-to,omitempty"`
	ReplaceSuffixFrom string   `yaml:"replace-suffix-from,omitempty"`
	ReplaceSuffixTo   string   `yaml:"replace-suffix-to,omitempty"`
	WordFilter        string   `yaml:"word-filter,omitempty"`
	Glob              string   `yaml:"glob,omitempty"`
	Extensions        []string `yaml:"extensions,omitempty"`
	Recursive         *bool    `yaml:"recursive,omitempty"`
	DryRun            bool     `yaml:"dry-run,omitempty"`

	ReplaceTask *bool `yaml:"replace-task,omitempty"`
	RemoveOther *bool `yaml:"remove-other,omitempty"`

	Case         string `yaml:"case,omitempty"`
	Underscored  bool   `yaml:"underscored,omitempty"`
	Hyphenated   bool   `yaml:"hyphenated,omitempty"`
	AddPrefix    string `yaml:"add-prefix,omitempty"`
	RemovePrefix string `yaml:"remove-prefix,omitempty"`
	AddSuffix    string `yaml:"add-suffix,omitempty"`
	RemoveSuffix string `yaml:"remove-suffix,omitempty"`
	Timestamp    string `yaml:"timestamp,omitempty"`
}

// StepExpect defines the counts a step must report. Only set fields are
// checked. The cleaned fields double for the run command's whitespace
// stage.
type StepExpect struct {
	FilesScanned          *int `yaml:"files-scanned,omitempty"`
	FilesChanged          *int `yaml:"files-changed,omitempty"`
	ErrorCount            *int `yaml:"error-count,omitempty"`
	FilesCleaned          *int `yaml:"files-cleaned,omitempty"`
	LinesCleaned          *int `yaml:"lines-cleaned,omitempty"`
	Changes               *int `yaml:"changes,omitempty"`
	FilesRenamed          *int `yaml:"files-renamed,omitempty"`
	FilesEmojiTransformed *int `yaml:"files-emoji-transformed,omitempty"`
	EmojiChanges          *int `yaml:"emoji-changes,omitempty"`
}

// TreeExpect defines checks against the final file tree.
type TreeExpect struct {
	// Files maps slash-separated relative paths to their exact expected content
	Files map[string]string `yaml:"files,omitempty"`
	// Absent lists relative paths that must not exist after the run
	Absent []string `yaml:"absent,omitempty"`
}

// StepResult contains the result of executing a single step.
type StepResult struct {
	// Command is the command that was executed
	Command string
	// Success indicates whether the step completed as expected
	Success bool
	// Error contains any error that occurred
	Error error
	// Duration is how long the step took to execute
	Duration time.Duration
	// Summary is a short description of what the step reported
	Summary string
}

// ScenarioResult contains the result of running a complete scenario.
type ScenarioResult struct {
	// Scenario is the scenario that was executed
	Scenario *Scenario
	// StepResults contains results for each step
	StepResults []StepResult
	// Success indicates whether the entire scenario passed
	Success bool
	// Duration is the total scenario execution time
	Duration time.Duration
	// FailedStep is the command of the first step that failed (if any)
	FailedStep string
	// Error is the first error encountered
	Error error
}

// runContext holds state during scenario execution.
type runContext struct {
	// Root is the temporary directory the tree was materialized under
	Root string
	// Scenario is the scenario being executed
	Scenario *Scenario
}

// RunScenario executes a complete scenario and returns the result. The
// input tree is materialized under a fresh temporary directory, the
// steps run against it in order, and the final tree is checked against
// the scenario's expectations.
func RunScenario(t *testing.T, scenario *Scenario) *ScenarioResult {
	t.Helper()

	start := time.Now()
	result := &ScenarioResult{
		Scenario:    scenario,
		StepResults: make([]StepResult, 0, len(scenario.Steps)),
		Success:     true,
	}

	if scenario.Skip != "" {
		t.Skipf("Skipping: %s", scenario.Skip)
		return result
	}

	rc := &runContext{
		Root:     t.TempDir(),
		Scenario: scenario,
	}
	testutil.WriteTree(t, rc.Root, scenario.Tree)

	for i, step := range scenario.Steps {
		stepResult := ExecuteStep(t, rc, &step)
		result.StepResults = append(result.StepResults, stepResult)

		PrintStepResult(t, &step, &stepResult, i+1, len(scenario.Steps))

		if !stepResult.Success {
			result.Success = false
			result.FailedStep = step.Command
			result.Error = stepResult.Error
			break // Fail-fast
		}
	}

	if result.Success {
		if err := CheckTree(rc.Root, scenario.Expect); err != nil {
			result.Success = false
			result.Error = err
		}
	}

	result.Duration = time.Since(start)
	return result
}
