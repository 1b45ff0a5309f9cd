// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the OIFITS merge pipeline as an MCP tool over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oitools MCP server — merges multiple OIFITS documents (JSON interchange format) into a single self-consistent document.

Configuration: OIFITS_MCP_MAX_INPUTS (default: 64) caps the number of input documents accepted by a single merge call.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oitools", Version: "0.1.0"},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge two or more OIFITS documents (JSON interchange format) into a single self-consistent document, running the full six-phase consolidation pipeline: output setup, reference collection, primary-header synthesis, target remapping, wavelength/array/corr/inspol reconciliation with collision resolution, and data-table rewriting. Optionally restrict the merge with a YAML selector (targets, instrument modes, nights, baselines, wavelength/MJD ranges) and force the output OIFITS standard.",
	}, handleMerge)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
