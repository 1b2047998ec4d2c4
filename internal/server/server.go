// Package server assembles the MCP server from the tool registry and
// serves it over stdio.
package server

import (
	"context"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/tools"
	"github.com/luminalabs/lumina-mcp/pkg/buildinfo"
)

// New builds the MCP server with every registered tool attached.
func New(reg *tools.Registry) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"lumina-mcp",
		buildinfo.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	for _, tool := range reg.Tools() {
		h, ok := reg.Handler(tool.Name)
		if !ok {
			continue
		}
		s.AddTool(tool, h)
	}
	return s
}

// ServeStdio speaks the MCP protocol on stdin/stdout until the input
// stream closes or ctx is cancelled.
func ServeStdio(ctx context.Context, s *mcpserver.MCPServer) error {
	return mcpserver.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout)
}
