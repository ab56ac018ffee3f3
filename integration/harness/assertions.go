//go:build integration

package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CheckTree verifies the final state of the scenario tree: every
// expected file exists with exactly the expected content, and every
// absent path is gone. All mismatches are reported together.
func CheckTree(root string, expect TreeExpect) error {
	var problems []string

	paths := make([]string, 0, len(expect.Files))
	for path := range expect.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		want := expect.Files[path]
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		if got := string(data); got != want {
			problems = append(problems, fmt.Sprintf("%s: content mismatch\n  got:  %q\n  want: %q", path, got, want))
		}
	}

	for _, path := range expect.Absent {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(path))); err == nil {
			problems = append(problems, fmt.Sprintf("%s: still exists, expected it to be gone", path))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("final tree check failed:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}
