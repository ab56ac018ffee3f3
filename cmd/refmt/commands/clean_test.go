package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupCleanFlags(t *testing.T) {
	fs, flags := SetupCleanFlags()

	t.Run("default values", func(t *testing.T) {
		if !flags.Recursive {
			t.Error("expected Recursive to be true by default")
		}
		if flags.DryRun {
			t.Error("expected DryRun to be false by default")
		}
		if flags.Extensions != "" {
			t.Errorf("expected empty Extensions by default, got '%s'", flags.Extensions)
		}
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-r=false", "-d", "-e", "md,txt", "--format", "json", "docs"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.Recursive {
			t.Error("expected Recursive to be false")
		}
		if !flags.DryRun {
			t.Error("expected DryRun to be true")
		}
		if flags.Extensions != "md,txt" {
			t.Errorf("expected Extensions 'md,txt', got '%s'", flags.Extensions)
		}
		if flags.Format != FormatJSON {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
		if fs.Arg(0) != "docs" {
			t.Errorf("expected path arg 'docs', got '%s'", fs.Arg(0))
		}
	})
}

func TestHandleClean_NoArgs(t *testing.T) {
	err := HandleClean([]string{})
	if err == nil {
		t.Error("expected error when no path provided")
	}
}

func TestHandleClean_Help(t *testing.T) {
	err := HandleClean([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleClean_InvalidFormat(t *testing.T) {
	err := HandleClean([]string{"--format", "xml", "."})
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestHandleClean_CleansFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("hello   \nworld\t\nclean\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := HandleClean([]string{dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "hello\nworld\nclean\n" {
		t.Errorf("unexpected content after cleaning: %q", got)
	}
}

func TestHandleClean_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	content := "hello   \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := HandleClean([]string{"-d", dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != content {
		t.Errorf("dry run modified the file: %q", got)
	}
}

func TestHandleClean_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	content := "hello   \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Restricting to .txt leaves the .md file alone.
	if err := HandleClean([]string{"-e", "txt", dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != content {
		t.Errorf("extension filter did not exclude the file: %q", got)
	}
}
