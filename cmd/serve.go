package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meteocat-mcp/internal/config"
	"meteocat-mcp/internal/meteocat"
	"meteocat-mcp/internal/server"
	"meteocat-mcp/internal/tools"
	"meteocat-mcp/pkg/logging"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// servePort and serveHost define where the MCP server listens. They override
// both the defaults and any config file values.
var servePort int
var serveHost string

// serveTransport selects the MCP transport: streamable-http, sse, or stdio.
var serveTransport string

// serveConfigPath specifies a directory containing an optional config.yaml.
var serveConfigPath string

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveCmd defines the serve command structure. This is the main command of
// meteocat-mcp: it starts the MCP server and keeps it running until the
// process is interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Meteocat MCP server",
	Long: `Starts the Meteocat MCP server and serves the fourteen weather tools over
the configured transport (streamable-http by default, port 8000).

Configuration precedence: built-in defaults, then config.yaml from
--config-path, then environment variables (METEOCAT_API_KEY, PORT), then
command-line flags.

When METEOCAT_API_KEY is not set the server still starts, but every tool call
answers with a fixed configuration-error message instead of contacting the
Meteocat API.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if serveDebug {
		logLevel = logging.LevelDebug
	}
	logging.Init(logLevel, os.Stderr)

	cfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags beat config file and environment.
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if cmd.Flags().Changed("transport") {
		cfg.Server.Transport = serveTransport
	}

	// The client is only constructed with a credential. Without one the
	// provider runs clientless and every tool call reports the
	// configuration error.
	var client *meteocat.Client
	if cfg.APIKey == "" {
		logging.Error("Serve", meteocat.ErrMissingAPIKey, "METEOCAT_API_KEY environment variable is required")
	} else {
		client, err = meteocat.NewClient(cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create Meteocat client: %w", err)
		}
	}

	provider := tools.NewProvider(client)
	srv := server.New(cfg.Server, provider)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(gctx); err != nil {
			return err
		}
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}

// init registers the serve command and its flags with the root command.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().StringVar(&serveTransport, "transport", config.MCPTransportStreamableHTTP,
		"MCP transport: streamable-http, sse, or stdio")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Directory containing an optional config.yaml")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
}
