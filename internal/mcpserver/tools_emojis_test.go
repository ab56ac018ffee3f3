package mcpserver

import (
	"context"
	"os"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojisTool_TransformsFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "tasks.md", "Task done ✅\nShip it 🚀\n")

	input := emojisInput{Path: dir}
	_, output, err := handleEmojis(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.False(t, output.DryRun)
	assert.Equal(t, 1, output.FilesChanged)
	assert.Equal(t, 2, output.Changes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Task done [x]\nShip it \n", string(data))
}

func TestEmojisTool_DryRun(t *testing.T) {
	dir := t.TempDir()
	content := "Task done ✅\n"
	path := writeSourceFile(t, dir, "tasks.md", content)

	input := emojisInput{Path: dir, DryRun: true}
	_, output, err := handleEmojis(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.DryRun)
	assert.Equal(t, 1, output.FilesChanged)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "dry run must not modify the file")
}

func TestEmojisTool_StagesOff(t *testing.T) {
	dir := t.TempDir()
	content := "Task done ✅\n"
	path := writeSourceFile(t, dir, "tasks.md", content)

	off := false
	input := emojisInput{Path: dir, ReplaceTask: &off, RemoveOther: &off}
	_, output, err := handleEmojis(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 0, output.FilesChanged)
	assert.Equal(t, 0, output.Changes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestEmojisTool_RemoveOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "tasks.md", "Task done ✅\n")

	// With replacement off, the task glyph falls through to the removal
	// stage (it sits in the dingbats block).
	off := false
	input := emojisInput{Path: dir, ReplaceTask: &off}
	_, output, err := handleEmojis(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 1, output.FilesChanged)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Task done \n", string(data))
}

func TestEmojisTool_MissingPath(t *testing.T) {
	result, output, err := handleEmojis(context.Background(), &mcp.CallToolRequest{}, emojisInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Zero(t, output.FilesChanged)
}
