package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/refmt/renamer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renameInput struct {
	Path         string `json:"path"                    jsonschema:"File or directory to rename"`
	Case         string `json:"case,omitempty"          jsonschema:"Case transform: lowercase\\, uppercase\\, or capitalize"`
	Underscored  bool   `json:"underscored,omitempty"   jsonschema:"Replace spaces and hyphens with underscores"`
	Hyphenated   bool   `json:"hyphenated,omitempty"    jsonschema:"Replace spaces and underscores with hyphens"`
	AddPrefix    string `json:"add_prefix,omitempty"    jsonschema:"Prefix added to file names"`
	RemovePrefix string `json:"remove_prefix,omitempty" jsonschema:"Prefix removed from file names"`
	AddSuffix    string `json:"add_suffix,omitempty"    jsonschema:"Suffix added before the extension"`
	RemoveSuffix string `json:"remove_suffix,omitempty" jsonschema:"Suffix removed before the extension"`
	Timestamp    string `json:"timestamp,omitempty"     jsonschema:"Modification-date prefix format: long (YYYYMMDD) or short (YYMMDD)"`
	Recursive    *bool  `json:"recursive,omitempty"     jsonschema:"Descend into subdirectories (default REFMT_RECURSIVE)"`
	DryRun       bool   `json:"dry_run,omitempty"       jsonschema:"Report renames without touching files"`
	Offset       int    `json:"offset,omitempty"        jsonschema:"Skip the first N renames (for pagination)"`
	Limit        int    `json:"limit,omitempty"         jsonschema:"Maximum renames to return (default REFMT_MAX_RESULTS)"`
}

type renameEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type renameOutput struct {
	DryRun       bool          `json:"dry_run"`
	FilesRenamed int           `json:"files_renamed"`
	Returned     int           `json:"returned"`
	Renames      []renameEntry `json:"renames,omitempty"`
}

func handleRename(_ context.Context, _ *mcp.CallToolRequest, input renameInput) (*mcp.CallToolResult, renameOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), renameOutput{}, nil
	}

	r, err := input.renamer()
	if err != nil {
		return errResult(err), renameOutput{}, nil
	}

	result, err := r.Process(input.Path)
	if err != nil {
		return errResult(err), renameOutput{}, nil
	}

	output := renameOutput{
		DryRun:       r.DryRun,
		FilesRenamed: result.FilesRenamed,
	}
	entries := makeSlice[renameEntry](len(result.Renames))
	for _, ren := range result.Renames {
		entries = append(entries, renameEntry{From: ren.From, To: ren.To})
	}
	output.Renames = paginate(entries, input.Offset, input.Limit)
	output.Returned = len(output.Renames)

	return nil, output, nil
}

// renamer translates the arguments into a configured Renamer, rejecting
// unknown transform values and conflicting separator selections.
func (in renameInput) renamer() (*renamer.Renamer, error) {
	r := renamer.New()
	r.Recursive = boolArg(in.Recursive, cfg.Recursive)
	r.DryRun = effectiveDryRun(in.DryRun)
	r.AddPrefix = in.AddPrefix
	r.RemovePrefix = in.RemovePrefix
	r.AddSuffix = in.AddSuffix
	r.RemoveSuffix = in.RemoveSuffix

	switch in.Case {
	case "":
	case "lowercase":
		r.Case = renamer.TransformLowercase
	case "uppercase":
		r.Case = renamer.TransformUppercase
	case "capitalize":
		r.Case = renamer.TransformCapitalize
	default:
		return nil, fmt.Errorf("invalid case %q (one of: lowercase, uppercase, capitalize)", in.Case)
	}

	if in.Underscored && in.Hyphenated {
		return nil, fmt.Errorf("at most one of underscored, hyphenated may be set")
	}
	if in.Underscored {
		r.Separator = renamer.SeparatorUnderscore
	}
	if in.Hyphenated {
		r.Separator = renamer.SeparatorHyphen
	}

	switch in.Timestamp {
	case "":
	case "long":
		r.Timestamp = renamer.TimestampLong
	case "short":
		r.Timestamp = renamer.TimestampShort
	default:
		return nil, fmt.Errorf("invalid timestamp %q (one of: long, short)", in.Timestamp)
	}

	return r, nil
}
