// Package main provides the CLI for the declwin UI graph compiler.
//
// Usage:
//
//	declwin generate [path...]    Generate _ui.go companions for annotated structs
//	declwin check [path...]       Check annotated structs without generating
//	declwin help                  Show help
//
// Examples:
//
//	declwin generate ./...        Recursively compile every annotated Go file
//	declwin generate ./ui         Process a specific directory
//	declwin generate form.go      Process a specific file
//	declwin check ./...           Check without writing companions
package main

import (
	"fmt"
	"log/slog"
	"os"
)

const version = "0.1.0"

const usage = `declwin - UI graph compiler for annotated Go structs

Usage:
  declwin <command> [options] [path...]

Commands:
  generate    Generate _ui.go companion files from annotated structs
  check       Check annotated structs without writing output
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output
  -dry-run    generate only: report what would be written, write nothing

Examples:
  declwin generate ./...            Recursively process all Go files
  declwin generate ./internal/ui    Process files in a directory
  declwin generate form.go          Process a specific file
  declwin generate -dry-run ./...   Show what would be generated
  declwin check ./...               Check every annotated struct compiles
  declwin check -v form.go          Check one file with per-file output

For more information, see https://github.com/declwin/declwin
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("declwin version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(2)
	}
}

// newLogger returns the CLI logger. Progress lines sit at debug level
// so plain runs stay quiet; -v raises them.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
