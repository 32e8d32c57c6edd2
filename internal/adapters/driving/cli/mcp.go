package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Starts the Model Context Protocol server exposing an 'ask' tool for
AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.
Use --port to serve over HTTP instead.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "mizan": {
        "command": "/path/to/mizan",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := buildAssistant(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	server, err := mcp.NewServer(&mcp.Ports{Assistant: a.assistant})
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		return server.RunHTTP(ctx, fmt.Sprintf(":%d", mcpPort))
	}
	return server.Run(ctx)
}
