// Package main provides the entry point for the daybook CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/config"
	"github.com/gorewood/daybook/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the daybook CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daybook",
		Short: "A plain-text journal with structured export",
		Long: `Daybook - a plain-text journal that turns free-form entries into structured data.

Entries are dated blocks of text in a single journal file. Daybook parses
tags (@word) and todos (- [ ] lines) out of entry text and can render the
whole journal as plain text, Markdown, JSON, or one file per entry.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'daybook --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for local overrides that can't live in the
	// environment. Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("journal", "", "Path of the journal file (overrides config)")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-directory override, gitignored)
//  2. $CWD/.env         (per-directory)
//  3. ~/.config/daybook/env (global fallback)
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = godotenv.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "journal", Title: "Journal Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "report", Title: "Report Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Journal commands: add, list, show
	addGroupedCommand(cmd, newAddCmd(), "journal")
	addGroupedCommand(cmd, newListCmd(), "journal")
	addGroupedCommand(cmd, newShowCmd(), "journal")

	// Report commands: tags, todos, export
	addGroupedCommand(cmd, newTagsCmd(), "report")
	addGroupedCommand(cmd, newTodosCmd(), "report")
	addGroupedCommand(cmd, newExportCmd(), "report")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
