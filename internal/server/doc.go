// Package server exposes the Meteocat tool provider as an MCP server.
//
// It registers the provider's fourteen tools with a mark3labs/mcp-go server
// and runs it behind one of three transports selected from configuration:
// streamable-http (default), sse, or stdio. The tool set is static; tools
// are registered once at startup.
package server
