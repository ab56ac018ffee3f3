package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameTool_RenamesFiles(t *testing.T) {
	dir := t.TempDir()
	from := writeSourceFile(t, dir, "My Report.TXT", "content")

	input := renameInput{Path: dir, Case: "lowercase", Underscored: true}
	_, output, err := handleRename(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.False(t, output.DryRun)
	assert.Equal(t, 1, output.FilesRenamed)
	assert.Equal(t, 1, output.Returned)

	to := filepath.Join(dir, "my_report.TXT")
	require.Len(t, output.Renames, 1)
	assert.Equal(t, renameEntry{From: from, To: to}, output.Renames[0])

	_, err = os.Stat(to)
	assert.NoError(t, err, "expected renamed file on disk")
}

func TestRenameTool_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "My Report.TXT", "content")

	input := renameInput{Path: dir, Case: "lowercase", DryRun: true}
	_, output, err := handleRename(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.DryRun)
	assert.Equal(t, 1, output.FilesRenamed)

	_, err = os.Stat(path)
	assert.NoError(t, err, "dry run must not move the file")
}

func TestRenameTool_EnvDryRunOverride(t *testing.T) {
	withConfig(t, &serverConfig{DryRun: true, MaxResults: 100, Recursive: true})

	dir := t.TempDir()
	path := writeSourceFile(t, dir, "My Report.TXT", "content")

	input := renameInput{Path: dir, Case: "lowercase"}
	_, output, err := handleRename(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.DryRun)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRenameTool_Timestamp(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "notes.md", "content")
	info, err := os.Stat(path)
	require.NoError(t, err)

	input := renameInput{Path: dir, Timestamp: "long"}
	_, output, err := handleRename(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Equal(t, 1, output.FilesRenamed)
	want := filepath.Join(dir, info.ModTime().Format("20060102")+"_notes.md")
	assert.Equal(t, want, output.Renames[0].To)
}

func TestRenameTool_InvalidCase(t *testing.T) {
	input := renameInput{Path: t.TempDir(), Case: "title"}
	result, _, err := handleRename(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestRenameTool_InvalidTimestamp(t *testing.T) {
	input := renameInput{Path: t.TempDir(), Timestamp: "iso"}
	result, _, err := handleRename(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestRenameTool_ConflictingSeparators(t *testing.T) {
	input := renameInput{Path: t.TempDir(), Underscored: true, Hyphenated: true}
	result, _, err := handleRename(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestRenameTool_MissingPath(t *testing.T) {
	result, output, err := handleRename(context.Background(), &mcp.CallToolRequest{}, renameInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Zero(t, output.FilesRenamed)
}
