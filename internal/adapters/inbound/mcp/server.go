package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with the gdnkit tools registered. The
// projectPath is the root directory of the crate to operate on.
func NewServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"gdnkit",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
