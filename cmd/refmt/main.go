package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/refmt"
	"github.com/erraggy/refmt/cmd/refmt/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "--version":
		fmt.Printf("refmt v%s\n", refmt.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "clean":
		if err := commands.HandleClean(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "emojis":
		if err := commands.HandleEmojis(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "rename":
		if err := commands.HandleRename(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "run":
		if err := commands.HandleRun(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		// A bare path (or a flag like -r or -d) means the default
		// combined run, matching "refmt <path>".
		if isRunShorthand(command) {
			if err := commands.HandleRun(os.Args[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean 'refmt %s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// isRunShorthand reports whether the first argument should route to the
// run command: an existing path, or a flag for it.
func isRunShorthand(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// commandNames are the suggestion candidates for mistyped commands.
var commandNames = []string{"convert", "clean", "emojis", "rename", "run", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit distance
// of 2, or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`refmt - Code transformation tool for case conversion and cleaning

Usage:
  refmt <command> [options]
  refmt [options] <path>     Run all transformations (rename to lowercase,
                             emojis, clean) on the path

Commands:
  convert     Convert identifiers between case styles in file content
  clean       Remove trailing whitespace from files
  emojis      Remove or replace emojis with text alternatives
  rename      Rename files with case, separator, and timestamp transforms
  run         Run all transformations in one pass
  mcp         Run as an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  refmt convert --from-camel --to-snake -r ./src
  refmt clean -d ./docs
  refmt emojis README.md
  refmt rename --to-lowercase --underscored ./downloads
  refmt ./notes
  refmt -r -d ./notes

Run 'refmt <command> --help' for more information on a command.`)
}
