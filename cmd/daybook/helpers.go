package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/config"
	"github.com/gorewood/daybook/internal/journal"
	"github.com/gorewood/daybook/internal/output"
	"github.com/gorewood/daybook/internal/storage"
)

// newPrinter creates a printer wired to the command's output streams,
// honoring the --color persistent flag.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), isTTY).
		WithStderr(cmd.ErrOrStderr())
}

// colorMode reads the --color persistent flag from the command hierarchy.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// markStarred appends the starred marker to the heading line of a
// pretty-printed entry.
func markStarred(text string, styles *output.Styles) string {
	head, rest, found := strings.Cut(text, "\n")
	head += " " + styles.Star.Render("*")
	if !found {
		return head
	}
	return head + "\n" + rest
}

// journalOverride reads the --journal persistent flag from the command
// hierarchy.
func journalOverride(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("journal")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("journal")
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// openJournal loads the app config and the journal file it points to.
// Resolution order for the journal path: --journal flag, $DAYBOOK_JOURNAL,
// config file, default.
func openJournal(cmd *cobra.Command) (*journal.Journal, *storage.FileStorage, error) {
	cfg, err := config.Load(config.Dir())
	if err != nil {
		return nil, nil, output.NewUserError(fmt.Sprintf("loading config: %v", err))
	}

	path := cfg.Journal
	if env := os.Getenv("DAYBOOK_JOURNAL"); env != "" {
		path = config.ExpandHome(env)
	}
	if override := journalOverride(cmd); override != "" {
		path = override
	}

	files := storage.NewFileStorage(path, nil)
	j, err := files.Load(cfg.Formatting)
	if err != nil {
		return nil, nil, err
	}
	return j, files, nil
}
