package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/docviewer/internal/viewer"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the documentation catalog.
type Server struct {
	controller *viewer.Controller
	loader     viewer.Loader
	mcp        *server.MCPServer
}

// NewServer creates a new MCP server. Raw reads go through loader; rendered
// reads run a full viewer cycle on controller.
func NewServer(controller *viewer.Controller, loader viewer.Loader) *Server {
	s := &Server{
		controller: controller,
		loader:     loader,
	}

	s.mcp = server.NewMCPServer(
		"docviewer",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listDocumentsTool, s.handleListDocuments)
	s.mcp.AddTool(readDocumentTool, s.handleReadDocument)
	s.mcp.AddTool(renderDocumentTool, s.handleRenderDocument)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
