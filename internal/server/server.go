package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"meteocat-mcp/internal/config"
	"meteocat-mcp/internal/tools"
	"meteocat-mcp/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// serverName and serverVersion identify this MCP server to clients.
const (
	serverName    = "Meteocat MCP Server"
	serverVersion = "1.0.0"
)

// ToolProvider is the surface the server needs from the tool dispatcher.
type ToolProvider interface {
	GetTools() []tools.ToolMetadata
	ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (string, error)
}

// Server exposes a tool provider over MCP on one of the supported
// transports (streamable-http, sse, stdio).
type Server struct {
	config   config.ServerConfig
	provider ToolProvider
	server   *mcpserver.MCPServer

	// Transport-specific servers
	sseServer            *mcpserver.SSEServer
	streamableHTTPServer *mcpserver.StreamableHTTPServer
	stdioServer          *mcpserver.StdioServer

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
	mu         sync.Mutex
}

// New creates an MCP server for the given tool provider.
func New(cfg config.ServerConfig, provider ToolProvider) *Server {
	return &Server{
		config:   cfg,
		provider: provider,
	}
}

// Start registers the provider's tools and starts the configured transport.
// It does not block; use Stop to shut the server down.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("server already started")
	}

	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	mcpServer := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(false), // static tool set, no listChanged
	)
	mcpServer.AddTools(s.buildTools()...)
	s.server = mcpServer

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	switch s.config.Transport {
	case config.MCPTransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
		s.sseServer = mcpserver.NewSSEServer(
			s.server,
			mcpserver.WithBaseURL(baseURL),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		go func() {
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "SSE server error")
			}
		}()

	case config.MCPTransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		s.stdioServer = mcpserver.NewStdioServer(s.server)
		stdioServer := s.stdioServer
		serverCtx := s.ctx
		go func() {
			if err := stdioServer.Listen(serverCtx, os.Stdin, os.Stdout); err != nil {
				logging.Error("Server", err, "Stdio server error")
			}
		}()

	case config.MCPTransportStreamableHTTP:
		fallthrough
	default:
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = mcpserver.NewStreamableHTTPServer(s.server)
		streamableServer := s.streamableHTTPServer
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
			}
		}()
	}

	return nil
}

// Stop shuts down the running transport.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.server == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping MCP server")

	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.mu.Unlock()

	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}

	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}

	// Stdio server stops on context cancellation, no explicit shutdown needed.

	s.mu.Lock()
	s.server = nil
	s.sseServer = nil
	s.streamableHTTPServer = nil
	s.stdioServer = nil
	s.mu.Unlock()

	return nil
}

// buildTools converts the provider's tool metadata into registrable MCP tools.
func (s *Server) buildTools() []mcpserver.ServerTool {
	metadata := s.provider.GetTools()
	serverTools := make([]mcpserver.ServerTool, 0, len(metadata))

	for _, toolMeta := range metadata {
		serverTools = append(serverTools, mcpserver.ServerTool{
			Tool: mcp.Tool{
				Name:        toolMeta.Name,
				Description: toolMeta.Description,
				InputSchema: convertToMCPSchema(toolMeta.Args),
			},
			Handler: s.createToolHandler(toolMeta.Name),
		})
	}

	return serverTools
}

// createToolHandler wraps one provider tool in an MCP handler. Provider
// failures become MCP error results carrying the error text, so that the
// status code and upstream body stay visible to the caller.
func (s *Server) createToolHandler(toolName string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(map[string]interface{})
		if req.Params.Arguments != nil {
			if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
				args = argsMap
			}
		}

		result, err := s.provider.ExecuteTool(ctx, toolName, args)
		if err != nil {
			logging.Error("ServerToolHandler", err, "Tool execution failed for %s", toolName)
			return mcp.NewToolResultError(fmt.Sprintf("Tool execution failed: %v", err)), nil
		}

		return mcp.NewToolResultText(result), nil
	}
}

// convertToMCPSchema converts tool arg metadata to the JSON Schema shape MCP
// clients expect.
func convertToMCPSchema(args []tools.ArgMetadata) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	required := []string{}

	for _, arg := range args {
		properties[arg.Name] = map[string]interface{}{
			"type":        arg.Type,
			"description": arg.Description,
		}
		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
