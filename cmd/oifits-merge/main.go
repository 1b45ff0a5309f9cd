package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MartinPratoussy/oitools/cmd/oifits-merge/commands"
	"github.com/MartinPratoussy/oitools/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Println("oifits-merge (development build)")
	case "help", "-h", "--help":
		printUsage()
	case "merge":
		if err := commands.HandleMerge(os.Args[2:]); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			commands.Writef(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oifits-merge - OIFITS file merger

Usage:
  oifits-merge <command> [options]

Commands:
  merge    Merge multiple OIFITS documents into one self-consistent document
  mcp      Start an MCP server over stdio, exposing merge as a tool
  version  Show version information
  help     Show this help message

Examples:
  oifits-merge merge -o merged.json night1.json night2.json
  oifits-merge merge --selector selector.yaml --report report.json a.json b.json

Run 'oifits-merge <command> --help' for more information on a command.`)
}
