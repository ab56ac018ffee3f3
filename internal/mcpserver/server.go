// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes refmt transformations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/refmt"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `refmt MCP server — rewrites identifier case styles, cleans trailing whitespace, transforms emojis, and renames files.

Configuration: All defaults are configurable via REFMT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- REFMT_DRY_RUN (default: false) — force dry-run on all mutating tools
- REFMT_MAX_RESULTS (default: 100) — cap on per-file entries returned by a tool
- REFMT_RECURSIVE (default: true) — default traversal mode when a call omits recursive

Safety: The mutating tools (convert, clean, emojis, rename) rewrite files in place. Set dry_run=true on a call, or REFMT_DRY_RUN=true globally, to preview changes without touching disk. The rewrite tool only transforms the text it is given and never reads or writes files.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "refmt", Version: refmt.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rewrite",
		Description: "Rewrite identifiers in a piece of text from one case style to another. Styles: camel, pascal, snake, screaming-snake, kebab, screaming-kebab. Supports prefix/suffix addition, prefix/suffix stripping and replacement before conversion, and a word_filter regex to limit which identifiers are touched. The text is returned converted; no files are read or written.",
	}, handleRewrite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert identifiers in files under a path from one case style to another. Same options as rewrite plus extension and glob filters. Files are rewritten in place; use dry_run=true to preview. Returns scan counts and the changed file paths (paginated via offset/limit, capped by REFMT_MAX_RESULTS).",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clean",
		Description: "Remove trailing whitespace from files under a path. Files are rewritten in place; use dry_run=true to preview. Returns the number of files and lines cleaned.",
	}, handleClean)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "emojis",
		Description: "Transform emojis in files under a path: task and status glyphs become bracketed text (✅ -> [x]), other emojis are removed. Disable either stage with replace_task=false or remove_other=false. Files are rewritten in place; use dry_run=true to preview.",
	}, handleEmojis)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename",
		Description: "Rename files under a path with case (lowercase, uppercase, capitalize), separator (underscored, hyphenated), prefix/suffix, and modification-date timestamp transforms. Extensions are preserved. Hidden files are never renamed, and a rename whose target exists stops the run. Use dry_run=true to preview. Returns the renames performed (paginated via offset/limit).",
	}, handleRename)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "styles",
		Description: "List the case styles refmt understands, each with an example identifier. Read-only.",
	}, handleStyles)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.MaxResults, which
// also caps explicit limits.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 || limit > cfg.MaxResults {
		limit = cfg.MaxResults
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
