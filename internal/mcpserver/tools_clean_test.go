package mcpserver

import (
	"context"
	"os"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTool_CleansFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSourceFile(t, dir, "notes.md", "hello   \nworld\t\nclean\n")

	input := cleanInput{Path: dir}
	_, output, err := handleClean(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.False(t, output.DryRun)
	assert.Equal(t, 1, output.FilesCleaned)
	assert.Equal(t, 2, output.LinesCleaned)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\nclean\n", string(data))
}

func TestCleanTool_DryRun(t *testing.T) {
	dir := t.TempDir()
	content := "hello   \n"
	path := writeSourceFile(t, dir, "notes.md", content)

	input := cleanInput{Path: dir, DryRun: true}
	_, output, err := handleClean(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.DryRun)
	assert.Equal(t, 1, output.FilesCleaned)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "dry run must not modify the file")
}

func TestCleanTool_EnvDryRunOverride(t *testing.T) {
	withConfig(t, &serverConfig{DryRun: true, MaxResults: 100, Recursive: true})

	dir := t.TempDir()
	content := "hello   \n"
	path := writeSourceFile(t, dir, "notes.md", content)

	input := cleanInput{Path: dir}
	_, output, err := handleClean(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.DryRun)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestCleanTool_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	content := "hello   \n"
	path := writeSourceFile(t, dir, "notes.md", content)

	input := cleanInput{Path: dir, Extensions: []string{"txt"}}
	_, output, err := handleClean(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 0, output.FilesCleaned)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestCleanTool_MissingPath(t *testing.T) {
	result, output, err := handleClean(context.Background(), &mcp.CallToolRequest{}, cleanInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Zero(t, output.FilesCleaned)
}
