package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/refmt/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Path              string   `json:"path"                          jsonschema:"File or directory whose files are converted"`
	From              string   `json:"from"                          jsonschema:"Case style to recognize (camel\\, pascal\\, snake\\, screaming-snake\\, kebab\\, screaming-kebab)"`
	To                string   `json:"to"                            jsonschema:"Case style to produce"`
	Prefix            string   `json:"prefix,omitempty"              jsonschema:"Prefix added to every converted identifier"`
	Suffix            string   `json:"suffix,omitempty"              jsonschema:"Suffix added to every converted identifier"`
	StripPrefix       string   `json:"strip_prefix,omitempty"        jsonschema:"Prefix stripped before conversion (e.g. m_ from m_userName)"`
	StripSuffix       string   `json:"strip_suffix,omitempty"        jsonschema:"Suffix stripped before conversion"`
	ReplacePrefixFrom string   `json:"replace_prefix_from,omitempty" jsonschema:"Prefix replaced before conversion (e.g. I in IUserService)"`
	ReplacePrefixTo   string   `json:"replace_prefix_to,omitempty"   jsonschema:"Replacement for replace_prefix_from"`
	ReplaceSuffixFrom string   `json:"replace_suffix_from,omitempty" jsonschema:"Suffix replaced before conversion"`
	ReplaceSuffixTo   string   `json:"replace_suffix_to,omitempty"   jsonschema:"Replacement for replace_suffix_from"`
	WordFilter        string   `json:"word_filter,omitempty"         jsonschema:"Regex limiting which identifiers are converted"`
	Glob              string   `json:"glob,omitempty"                jsonschema:"Glob limiting which files are converted (matched against the filename and the path relative to the root)"`
	Extensions        []string `json:"extensions,omitempty"          jsonschema:"File extensions to process\\, with or without the leading dot. Empty means the default set."`
	Recursive         *bool    `json:"recursive,omitempty"           jsonschema:"Descend into subdirectories (default REFMT_RECURSIVE)"`
	DryRun            bool     `json:"dry_run,omitempty"             jsonschema:"Report changes without modifying files"`
	Offset            int      `json:"offset,omitempty"              jsonschema:"Skip the first N changed paths (for pagination)"`
	Limit             int      `json:"limit,omitempty"               jsonschema:"Maximum changed paths to return (default REFMT_MAX_RESULTS)"`
}

type convertOutput struct {
	Root         string   `json:"root"`
	DryRun       bool     `json:"dry_run"`
	FilesScanned int      `json:"files_scanned"`
	FilesChanged int      `json:"files_changed"`
	ErrorCount   int      `json:"error_count"`
	Returned     int      `json:"returned"`
	ChangedPaths []string `json:"changed_paths,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), convertOutput{}, nil
	}

	c, err := input.converter()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, err := c.Process(input.Path)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Root:         result.Root,
		DryRun:       result.DryRun,
		FilesScanned: result.FilesScanned,
		FilesChanged: result.FilesChanged,
		ErrorCount:   result.ErrorCount,
	}

	changed := makeSlice[string](result.FilesChanged)
	for _, report := range result.Outcomes {
		if report.Outcome == converter.OutcomeConverted || report.Outcome == converter.OutcomeWouldConvert {
			changed = append(changed, report.Path)
		}
	}
	output.ChangedPaths = paginate(changed, input.Offset, input.Limit)
	output.Returned = len(output.ChangedPaths)

	return nil, output, nil
}

// converter builds the identifier converter described by the arguments,
// with the traversal defaults merged from the server configuration.
func (in convertInput) converter() (*converter.Converter, error) {
	from, err := parseStyleArg("from", in.From)
	if err != nil {
		return nil, err
	}
	to, err := parseStyleArg("to", in.To)
	if err != nil {
		return nil, err
	}
	return converter.New(converter.Config{
		From:              from,
		To:                to,
		Prefix:            in.Prefix,
		Suffix:            in.Suffix,
		StripPrefix:       in.StripPrefix,
		StripSuffix:       in.StripSuffix,
		ReplacePrefixFrom: in.ReplacePrefixFrom,
		ReplacePrefixTo:   in.ReplacePrefixTo,
		ReplaceSuffixFrom: in.ReplaceSuffixFrom,
		ReplaceSuffixTo:   in.ReplaceSuffixTo,
		WordFilter:        in.WordFilter,
		Glob:              in.Glob,
		Extensions:        extensionsArg(in.Extensions),
		Recursive:         boolArg(in.Recursive, cfg.Recursive),
		DryRun:            effectiveDryRun(in.DryRun),
	})
}
