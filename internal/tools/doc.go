// Package tools maps the Meteocat client operations onto named MCP tools.
//
// The Provider is a fixed dispatch table: each of the fourteen tools declares
// its arguments once in GetTools and routes to exactly one client call in
// ExecuteTool. Results are passed through as serialized JSON text with no
// restructuring, filtering, or summarization.
package tools
