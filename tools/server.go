package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// NewServer assembles an MCP server over the registry: every tool, the
// documentation resources, and the guidance prompts. Transport selection
// and process lifecycle stay with the caller; examples/mcp_server shows
// stdio wiring.
func NewServer(r *Registry) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sensor-tower",
		Title:   "Sensor Tower",
		Version: Version,
	}, nil)
	for _, t := range r.Tools() {
		def := t.Tool
		server.AddTool(&def, mcpHandler(t))
	}
	addDocResources(server)
	addGuidancePrompts(server)
	return server
}
