package config

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// Config is the top-level configuration for the Meteocat MCP server.
type Config struct {
	// APIKey is the Meteocat API credential. It is only ever read from the
	// METEOCAT_API_KEY environment variable, never from the config file,
	// and is never logged.
	APIKey string `yaml:"-"`

	Server ServerConfig `yaml:"server"`
}

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Port      int    `yaml:"port,omitempty"`      // Port to listen on (default: 8000)
	Host      string `yaml:"host,omitempty"`      // Host to bind to (default: 0.0.0.0)
	Transport string `yaml:"transport,omitempty"` // Transport to use (default: streamable-http)
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:      8000,
			Host:      "0.0.0.0",
			Transport: MCPTransportStreamableHTTP,
		},
	}
}
