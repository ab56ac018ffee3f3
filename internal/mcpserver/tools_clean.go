package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/refmt/cleaner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type cleanInput struct {
	Path       string   `json:"path"                 jsonschema:"File or directory to clean"`
	Recursive  *bool    `json:"recursive,omitempty"  jsonschema:"Descend into subdirectories (default REFMT_RECURSIVE)"`
	DryRun     bool     `json:"dry_run,omitempty"    jsonschema:"Report changes without modifying files"`
	Extensions []string `json:"extensions,omitempty" jsonschema:"File extensions to process\\, with or without the leading dot. Empty means the default set."`
}

type cleanOutput struct {
	DryRun       bool `json:"dry_run"`
	FilesCleaned int  `json:"files_cleaned"`
	LinesCleaned int  `json:"lines_cleaned"`
}

func handleClean(_ context.Context, _ *mcp.CallToolRequest, input cleanInput) (*mcp.CallToolResult, cleanOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), cleanOutput{}, nil
	}
	dryRun := effectiveDryRun(input.DryRun)

	c := cleaner.New()
	c.Recursive = boolArg(input.Recursive, cfg.Recursive)
	c.DryRun = dryRun
	if exts := extensionsArg(input.Extensions); exts != nil {
		c.Extensions = exts
	}

	result, err := c.Process(input.Path)
	if err != nil {
		return errResult(err), cleanOutput{}, nil
	}

	return nil, cleanOutput{
		DryRun:       dryRun,
		FilesCleaned: result.FilesCleaned,
		LinesCleaned: result.LinesCleaned,
	}, nil
}
