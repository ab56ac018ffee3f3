//go:build integration

package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
	"golang.org/x/tools/txtar"
)

// LoadScenario loads a single scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: failed to read scenario file %s: %w", path, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("harness: failed to parse scenario file %s: %w", path, err)
	}

	scenario.filePath = path

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("harness: invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadAllScenarios loads all scenarios from a directory recursively.
func LoadAllScenarios(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		scenario, err := LoadScenario(path)
		if err != nil {
			return err
		}

		scenarios = append(scenarios, scenario)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("harness: failed to load scenarios from %s: %w", dir, err)
	}

	return scenarios, nil
}

// ValidateScenario validates a scenario's structure and required fields.
func ValidateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario must have a name")
	}

	if len(txtar.Parse([]byte(s.Tree)).Files) == 0 {
		return fmt.Errorf("scenario '%s' must define at least one file in its tree", s.Name)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario '%s' must have at least one step", s.Name)
	}

	for i, step := range s.Steps {
		if err := validateStep(&step, i); err != nil {
			return fmt.Errorf("scenario '%s': %w", s.Name, err)
		}
	}

	return nil
}

// validateStep validates a single scenario step.
func validateStep(step *Step, index int) error {
	if step.Command == "" {
		return fmt.Errorf("step %d must have a command", index+1)
	}

	validCommands := map[string]bool{
		"convert": true,
		"clean":   true,
		"emojis":  true,
		"rename":  true,
		"run":     true,
	}
	if !validCommands[step.Command] {
		return fmt.Errorf("step %d: unknown command '%s'", index+1, step.Command)
	}

	// A convert step without both styles would only fail later, inside the
	// run; require them up front unless the step expects that failure.
	if step.Command == "convert" && step.ErrorContains == "" {
		if step.Options.From == "" || step.Options.To == "" {
			return fmt.Errorf("step %d: convert requires both from and to options", index+1)
		}
	}

	return nil
}

// ScenarioPath returns the relative path of the scenario file for display.
func ScenarioPath(s *Scenario, baseDir string) string {
	if s.filePath == "" {
		return s.Name
	}
	rel, err := filepath.Rel(baseDir, s.filePath)
	if err != nil {
		return s.filePath
	}
	return rel
}

// ScenarioTestName returns a test-friendly name for the scenario.
func ScenarioTestName(s *Scenario, baseDir string) string {
	path := ScenarioPath(s, baseDir)
	path = strings.TrimSuffix(path, ".yaml")
	path = strings.TrimSuffix(path, ".yml")
	return strings.ReplaceAll(path, string(filepath.Separator), "/")
}
