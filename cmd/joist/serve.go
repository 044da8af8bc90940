// Package main provides the entry point for the joist CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	joistmcp "github.com/gorewood/joist/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run joist as a Model Context Protocol (MCP) server over stdio.

This exposes scaffolding operations as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "joist": {
        "command": "joist",
        "args": ["serve"]
      }
    }
  }

Available tools: manifest, plan, scaffold`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := joistmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
