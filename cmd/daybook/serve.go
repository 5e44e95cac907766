package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/journal"
	daybookmcp "github.com/gorewood/daybook/internal/mcp"
	"github.com/gorewood/daybook/internal/storage"
)

// journalStore adapts FileStorage to the MCP server's Store interface,
// carrying the formatting config every load needs.
type journalStore struct {
	files *storage.FileStorage
	cfg   journal.Config
}

func (s *journalStore) Load() (*journal.Journal, error) {
	return s.files.Load(s.cfg)
}

func (s *journalStore) Save(j *journal.Journal) error {
	return s.files.Save(j)
}

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run daybook as a Model Context Protocol (MCP) server over stdio.

This exposes journal operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "daybook": {
        "command": "daybook",
        "args": ["serve"]
      }
    }
  }

Available tools: log, query, tags, todos, export`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, files, err := openJournal(cmd)
			if err != nil {
				return err
			}
			store := &journalStore{files: files, cfg: j.Config}
			server := daybookmcp.NewServer(buildVersion(), store)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
