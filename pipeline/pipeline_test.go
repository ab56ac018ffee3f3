package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TestFile.txt")
	require.NoError(t, os.WriteFile(path, []byte("Line 1   \nTask done ✅\nLine 3\t\n"), 0o644))

	p := New()
	stats, err := p.Process(path)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.Equal(t, 1, stats.FilesEmojiTransformed)
	assert.Equal(t, 1, stats.EmojiChanges)
	assert.Equal(t, 1, stats.FilesWhitespaceCleaned)
	assert.Equal(t, 2, stats.WhitespaceLinesCleaned)

	renamed := filepath.Join(dir, "testfile.txt")
	data, err := os.ReadFile(renamed)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[x]")
	assert.NotContains(t, content, "✅")
	assert.NotContains(t, content, "   \n")
	assert.NotContains(t, content, "\t\n")
}

func TestProcessDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TestFile.txt")
	original := "Line 1   \nTask ✅\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	var progress bytes.Buffer
	p := New()
	p.DryRun = true
	p.Progress = &progress

	stats, err := p.Process(path)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.Equal(t, 1, stats.FilesEmojiTransformed)
	assert.Equal(t, 1, stats.FilesWhitespaceCleaned)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "dry-run must not modify the file")

	notices := progress.String()
	assert.Contains(t, notices, "Would rename")
	assert.Contains(t, notices, "Would transform emojis")
	assert.Contains(t, notices, "Would clean")
}

func TestProcessRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "File1.txt"), []byte("Text   \n✅ Done\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "File2.md"), []byte("More text\t\n☐ Todo\n"), 0o644))

	p := New()
	stats, err := p.Process(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesRenamed)
	assert.Equal(t, 2, stats.FilesEmojiTransformed)
	assert.Equal(t, 2, stats.FilesWhitespaceCleaned)
	assert.FileExists(t, filepath.Join(dir, "file1.txt"))
	assert.FileExists(t, filepath.Join(sub, "file2.md"))
}

func TestProcessNonRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "File1.txt"), []byte("Text   \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "File2.txt"), []byte("More   \n"), 0o644))

	p := New()
	p.Recursive = false

	stats, err := p.Process(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.FileExists(t, filepath.Join(dir, "file1.txt"))

	entries, err := os.ReadDir(sub)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "File2.txt", entries[0].Name(), "nested file must be untouched")
}

func TestProcessRenameAppliesToAnyExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Photo.JPEG")
	require.NoError(t, os.WriteFile(path, []byte("binaryish"), 0o644))

	p := New()
	stats, err := p.Process(dir)
	require.NoError(t, err)

	// Renaming covers every file; the content stages skip extensions
	// outside their sets.
	assert.Equal(t, 1, stats.FilesRenamed)
	assert.Equal(t, 0, stats.FilesEmojiTransformed)
	assert.Equal(t, 0, stats.FilesWhitespaceCleaned)
	assert.FileExists(t, filepath.Join(dir, "photo.JPEG"))
}

func TestProcessMissingRoot(t *testing.T) {
	p := New()
	stats, err := p.Process(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err, "missing root yields empty stats")
	assert.Equal(t, &Stats{}, stats)
}

func TestProcessCleanFollowsRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Notes.md")
	require.NoError(t, os.WriteFile(path, []byte("trailing   \n"), 0o644))

	p := New()
	stats, err := p.Process(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesRenamed)
	assert.Equal(t, 1, stats.FilesWhitespaceCleaned)

	data, err := os.ReadFile(filepath.Join(dir, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "trailing\n", string(data), "content stages run on the renamed path")
}
