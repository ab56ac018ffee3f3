package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/refmt/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type rewriteInput struct {
	Text              string `json:"text"                          jsonschema:"The text whose identifiers are rewritten"`
	From              string `json:"from"                          jsonschema:"Case style to recognize (camel\\, pascal\\, snake\\, screaming-snake\\, kebab\\, screaming-kebab)"`
	To                string `json:"to"                            jsonschema:"Case style to produce"`
	Prefix            string `json:"prefix,omitempty"              jsonschema:"Prefix added to every converted identifier"`
	Suffix            string `json:"suffix,omitempty"              jsonschema:"Suffix added to every converted identifier"`
	StripPrefix       string `json:"strip_prefix,omitempty"        jsonschema:"Prefix stripped before conversion (e.g. m_ from m_userName)"`
	StripSuffix       string `json:"strip_suffix,omitempty"        jsonschema:"Suffix stripped before conversion"`
	ReplacePrefixFrom string `json:"replace_prefix_from,omitempty" jsonschema:"Prefix replaced before conversion (e.g. I in IUserService)"`
	ReplacePrefixTo   string `json:"replace_prefix_to,omitempty"   jsonschema:"Replacement for replace_prefix_from"`
	ReplaceSuffixFrom string `json:"replace_suffix_from,omitempty" jsonschema:"Suffix replaced before conversion"`
	ReplaceSuffixTo   string `json:"replace_suffix_to,omitempty"   jsonschema:"Replacement for replace_suffix_from"`
	WordFilter        string `json:"word_filter,omitempty"         jsonschema:"Regex limiting which identifiers are converted"`
}

type rewriteOutput struct {
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

func handleRewrite(_ context.Context, _ *mcp.CallToolRequest, input rewriteInput) (*mcp.CallToolResult, rewriteOutput, error) {
	if input.Text == "" {
		return errResult(fmt.Errorf("text is required")), rewriteOutput{}, nil
	}

	c, err := input.converter()
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	rewritten := c.Rewrite(input.Text)
	return nil, rewriteOutput{
		Text:    rewritten,
		Changed: rewritten != input.Text,
	}, nil
}

// converter builds the identifier converter described by the arguments.
func (in rewriteInput) converter() (*converter.Converter, error) {
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
	})
}
