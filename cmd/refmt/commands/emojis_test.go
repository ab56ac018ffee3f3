package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupEmojisFlags(t *testing.T) {
	fs, flags := SetupEmojisFlags()

	t.Run("default values", func(t *testing.T) {
		if !flags.Recursive {
			t.Error("expected Recursive to be true by default")
		}
		if flags.DryRun {
			t.Error("expected DryRun to be false by default")
		}
		if !flags.ReplaceTask {
			t.Error("expected ReplaceTask to be true by default")
		}
		if !flags.RemoveOther {
			t.Error("expected RemoveOther to be true by default")
		}
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-d", "--replace-task=false", "--remove-other=false", "-e", "md", "README.md"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if !flags.DryRun {
			t.Error("expected DryRun to be true")
		}
		if flags.ReplaceTask {
			t.Error("expected ReplaceTask to be false")
		}
		if flags.RemoveOther {
			t.Error("expected RemoveOther to be false")
		}
		if flags.Extensions != "md" {
			t.Errorf("expected Extensions 'md', got '%s'", flags.Extensions)
		}
		if fs.Arg(0) != "README.md" {
			t.Errorf("expected path arg 'README.md', got '%s'", fs.Arg(0))
		}
	})
}

func TestHandleEmojis_NoArgs(t *testing.T) {
	err := HandleEmojis([]string{})
	if err == nil {
		t.Error("expected error when no path provided")
	}
}

func TestHandleEmojis_Help(t *testing.T) {
	err := HandleEmojis([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleEmojis_InvalidFormat(t *testing.T) {
	err := HandleEmojis([]string{"--format", "bogus", "."})
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestHandleEmojis_TransformsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")
	if err := os.WriteFile(path, []byte("Task done ✅\nShip it 🚀\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := HandleEmojis([]string{dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "Task done [x]\nShip it \n" {
		t.Errorf("unexpected content after transform: %q", got)
	}
}

func TestHandleEmojis_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")
	content := "Task done ✅\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := HandleEmojis([]string{"-d", dir}); err != nil {
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
