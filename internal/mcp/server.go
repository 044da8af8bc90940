// Package mcp provides a Model Context Protocol server for joist.
// It exposes scaffolding operations as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all joist tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "joist",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for the scaffold tool. The tool
// is idempotent unless overwrite is requested, and only ever writes the
// manifest's default content.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all joist tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "manifest",
		Description: "List the project manifest: every file the scaffolder would ensure exists, with template information, rendered for a project name.",
		Annotations: readOnlyAnnotations(),
	}, handleManifest)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "plan",
		Description: "Dry-run the scaffolder: report the directories and files that would be created or overwritten, without touching the filesystem.",
		Annotations: readOnlyAnnotations(),
	}, handlePlan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scaffold",
		Description: "Materialize the project skeleton: create directories and write manifest files into the target directory. Existing non-empty files are kept unless overwrite is set.",
		Annotations: writeAnnotations(),
	}, handleScaffold)
}
