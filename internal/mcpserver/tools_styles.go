package mcpserver

import (
	"context"

	"github.com/erraggy/refmt/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type stylesInput struct{}

type styleEntry struct {
	Name    string `json:"name"`
	Example string `json:"example"`
}

type stylesOutput struct {
	Styles []styleEntry `json:"styles"`
}

func handleStyles(_ context.Context, _ *mcp.CallToolRequest, _ stylesInput) (*mcp.CallToolResult, stylesOutput, error) {
	output := stylesOutput{Styles: make([]styleEntry, 0, len(casing.Styles()))}
	for _, style := range casing.Styles() {
		output.Styles = append(output.Styles, styleEntry{
			Name:    style.String(),
			Example: style.Example(),
		})
	}
	return nil, output, nil
}
