// Package mcp provides a Model Context Protocol server for daybook.
// It exposes journal operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/daybook/internal/journal"
)

// Store loads and saves the journal the MCP tools operate on.
type Store interface {
	Load() (*journal.Journal, error)
	Save(*journal.Journal) error
}

// NewServer creates an MCP server with all daybook tools registered.
func NewServer(version string, store Store) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "daybook",
		Version: version,
	}, nil)
	registerTools(server, store)
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

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all daybook tools to the server.
func registerTools(server *mcp.Server, store Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "log",
		Description: "Add a journal entry with a title, an optional body, and an optional starred flag. Tags (@word) and todos (- [ ] lines) are extracted from the text.",
		Annotations: writeAnnotations(),
	}, handleLog(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "List journal entries with filters: last N, since/until dates, and tags. Returns pretty-printed entries plus structured views.",
		Annotations: readOnlyAnnotations(),
	}, handleQuery(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tags",
		Description: "List all tags in the journal with the number of entries each appears in.",
		Annotations: readOnlyAnnotations(),
	}, handleTags(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "todos",
		Description: "List all todos in the journal, partitioned into pending and completed.",
		Annotations: readOnlyAnnotations(),
	}, handleTodos(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Export the whole journal as a string in one of the formats json, md, or txt.",
		Annotations: readOnlyAnnotations(),
	}, handleExport(store))
}
