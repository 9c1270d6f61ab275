package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meteocat-mcp application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "meteocat-mcp",
	Short: "MCP server for the Meteocat weather API",
	Long: `meteocat-mcp exposes the Meteocat REST API (Catalan Meteorological
Service) as MCP tools: reference data, XEMA station observations, and
forecasts.

It requires a Meteocat API key in the METEOCAT_API_KEY environment variable;
request one at https://apidocs.meteocat.gencat.cat/.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meteocat-mcp version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
