package tools

// ToolMetadata describes a tool that can be exposed over MCP.
type ToolMetadata struct {
	Name        string // e.g., "get_municipalities", "get_readings"
	Description string
	Args        []ArgMetadata
}

// ArgMetadata describes a tool argument.
type ArgMetadata struct {
	Name        string
	Type        string // "string" or "integer"
	Required    bool
	Description string
}
