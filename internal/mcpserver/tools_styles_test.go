package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesTool(t *testing.T) {
	_, output, err := handleStyles(context.Background(), &mcp.CallToolRequest{}, stylesInput{})
	require.NoError(t, err)

	require.Len(t, output.Styles, 6)
	assert.Equal(t, styleEntry{Name: "camel", Example: "myVariableName"}, output.Styles[0])
	assert.Equal(t, styleEntry{Name: "screaming-kebab", Example: "MY-VARIABLE-NAME"}, output.Styles[5])

	for _, entry := range output.Styles {
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Example)
	}
}
