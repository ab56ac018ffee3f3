package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/refmt/emoji"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type emojisInput struct {
	Path        string   `json:"path"                   jsonschema:"File or directory to transform"`
	Recursive   *bool    `json:"recursive,omitempty"    jsonschema:"Descend into subdirectories (default REFMT_RECURSIVE)"`
	DryRun      bool     `json:"dry_run,omitempty"      jsonschema:"Report changes without modifying files"`
	ReplaceTask *bool    `json:"replace_task,omitempty" jsonschema:"Replace task glyphs with text (e.g. ✅ -> [x]) (default true)"`
	RemoveOther *bool    `json:"remove_other,omitempty" jsonschema:"Remove all other emoji glyphs (default true)"`
	Extensions  []string `json:"extensions,omitempty"   jsonschema:"File extensions to process\\, with or without the leading dot. Empty means the default set."`
}

type emojisOutput struct {
	DryRun       bool `json:"dry_run"`
	FilesChanged int  `json:"files_changed"`
	Changes      int  `json:"changes"`
}

func handleEmojis(_ context.Context, _ *mcp.CallToolRequest, input emojisInput) (*mcp.CallToolResult, emojisOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), emojisOutput{}, nil
	}
	dryRun := effectiveDryRun(input.DryRun)

	t := emoji.New()
	t.Recursive = boolArg(input.Recursive, cfg.Recursive)
	t.DryRun = dryRun
	t.ReplaceTasks = boolArg(input.ReplaceTask, true)
	t.RemoveOther = boolArg(input.RemoveOther, true)
	if exts := extensionsArg(input.Extensions); exts != nil {
		t.Extensions = exts
	}

	result, err := t.Process(input.Path)
	if err != nil {
		return errResult(err), emojisOutput{}, nil
	}

	return nil, emojisOutput{
		DryRun:       dryRun,
		FilesChanged: result.FilesChanged,
		Changes:      result.Changes,
	}, nil
}
