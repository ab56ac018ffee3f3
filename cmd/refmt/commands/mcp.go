package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/refmt/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: refmt mcp\n\n")
		Writef(fs.Output(), "Run refmt as an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(fs.Output(), "The server exposes the transformations as MCP tools: rewrite, convert,\n")
		Writef(fs.Output(), "clean, emojis, rename, and styles.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  REFMT_DRY_RUN      force dry-run on all mutating tools (default: false)\n")
		Writef(fs.Output(), "  REFMT_MAX_RESULTS  cap on per-tool path listings (default: 100)\n")
		Writef(fs.Output(), "  REFMT_RECURSIVE    default recursion for tree tools (default: true)\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
