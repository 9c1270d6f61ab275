package cmd

import (
	"strings"

	"meteocat-mcp/internal/tools"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// toolsCmd lists the tools the server exposes, without starting it.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	Long: `Prints the fourteen Meteocat tools with their arguments and descriptions.
No API key is needed; nothing is sent over the network.`,
	Args: cobra.NoArgs,
	Run:  runTools,
}

func runTools(cmd *cobra.Command, args []string) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Tool", "Arguments", "Description"})

	for _, tool := range tools.NewProvider(nil).GetTools() {
		t.AppendRow(table.Row{tool.Name, formatArgs(tool.Args), tool.Description})
	}

	t.Render()
}

// formatArgs renders an argument list as "name*, other" with required
// arguments marked by an asterisk.
func formatArgs(metadata []tools.ArgMetadata) string {
	if len(metadata) == 0 {
		return "-"
	}
	names := make([]string, 0, len(metadata))
	for _, arg := range metadata {
		name := arg.Name
		if arg.Required {
			name += "*"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
