//go:build integration

package harness

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// PrintStepResult prints the result of a single step to the test output.
func PrintStepResult(t *testing.T, step *Step, result *StepResult, stepNum, totalSteps int) {
	t.Helper()

	var status string
	if result.Success {
		status = "PASS"
	} else {
		status = "FAIL"
	}

	var extra string
	if result.Summary != "" {
		extra = " - " + result.Summary
	}

	t.Logf("    %s [%d/%d] %s (%s)%s", status, stepNum, totalSteps, step.Command,
		formatDuration(result.Duration), extra)

	if !result.Success && result.Error != nil {
		t.Logf("        Error: %v", result.Error)
	}
}

// PrintScenarioResult prints a summary of the entire scenario execution.
func PrintScenarioResult(t *testing.T, result *ScenarioResult) {
	t.Helper()

	var status string
	if result.Success {
		status = "PASS"
	} else {
		status = "FAIL"
	}

	t.Logf("")
	t.Logf("  Scenario: %s (%s)", status, formatDuration(result.Duration))

	if !result.Success {
		if result.FailedStep != "" {
			t.Logf("  Failed at step: %s", result.FailedStep)
		}
		if result.Error != nil {
			t.Logf("  Error: %v", result.Error)
		}
	}
}

// PrintScenarioHeader prints the header for a scenario.
func PrintScenarioHeader(t *testing.T, scenario *Scenario) {
	t.Helper()

	t.Logf("")
	t.Logf("Scenario: %s", scenario.Name)
	if scenario.Description != "" {
		t.Logf("  %s", scenario.Description)
	}
	t.Logf("")
}

// PrintSummary prints a summary of all scenario results.
func PrintSummary(t *testing.T, results []*ScenarioResult, duration time.Duration) {
	t.Helper()

	passed := 0
	failed := 0
	skipped := 0

	for _, r := range results {
		switch {
		case r.Scenario.Skip != "":
			skipped++
		case r.Success:
			passed++
		default:
			failed++
		}
	}

	t.Logf("")
	t.Logf("%s", strings.Repeat("=", 72))
	t.Logf("INTEGRATION TEST SUMMARY")
	t.Logf("%s", strings.Repeat("=", 72))
	t.Logf("Scenarios:  %d passed, %d failed, %d skipped", passed, failed, skipped)
	t.Logf("Duration:   %s", formatDuration(duration))
	t.Logf("%s", strings.Repeat("=", 72))

	if failed > 0 {
		t.Logf("")
		t.Logf("Failed scenarios:")
		for _, r := range results {
			if !r.Success && r.Scenario.Skip == "" {
				t.Logf("  - %s: %v", r.Scenario.Name, r.Error)
			}
		}
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
