package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/journal"
	"github.com/gorewood/daybook/internal/output"
)

// dateOnly is the layout accepted by --since and --until.
const dateOnly = "2006-01-02"

// listFlags holds the flags for the list command.
type listFlags struct {
	short bool
	tags  []string
	since string
	until string
	limit int
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long: `List journal entries, optionally filtered by tag or date range.

Tag filters are OR-combined: an entry matches if it carries any of the
requested tags. Bare words are accepted and prefixed with the first
configured tag symbol.

Examples:
  daybook list
  daybook list --short --limit 5
  daybook list --tag work --tag @family --since 2026-01-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, &flags)
		},
	}

	cmd.Flags().BoolVar(&flags.short, "short", false, "Show only entry headings")
	cmd.Flags().StringArrayVarP(&flags.tags, "tag", "t", nil, "Only show entries with this tag (repeatable)")
	cmd.Flags().StringVar(&flags.since, "since", "", "Only show entries on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.until, "until", "", "Only show entries on or before this date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", 0, "Show at most the latest N matching entries")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, flags *listFlags) error {
	printer := newPrinter(cmd)

	j, _, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries, err := filterEntries(j, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		views := make([]journal.EntryJSON, 0, len(entries))
		for _, e := range entries {
			views = append(views, e.JSONView())
		}
		return printer.WriteJSON(map[string]any{
			"count":   len(views),
			"entries": views,
		})
	}

	if len(entries) == 0 {
		printer.Println("[No matching entries found.]")
		return nil
	}

	styles := printer.Styles()
	for i, e := range entries {
		if i > 0 {
			printer.Println()
		}
		text := e.Pprint(j.Config, flags.short)
		if e.Starred {
			text = markStarred(text, styles)
		}
		printer.Print("%s", text)
	}
	return nil
}

// filterEntries applies the list filters to the journal's entries.
func filterEntries(j *journal.Journal, flags *listFlags) ([]*journal.Entry, error) {
	entries := j.Entries

	if flags.since != "" {
		cutoff, err := time.Parse(dateOnly, flags.since)
		if err != nil {
			return nil, output.NewUserError(fmt.Sprintf("can't parse --since date %q: expected YYYY-MM-DD", flags.since))
		}
		entries = journal.FilterSince(entries, cutoff)
	}

	if flags.until != "" {
		cutoff, err := time.Parse(dateOnly, flags.until)
		if err != nil {
			return nil, output.NewUserError(fmt.Sprintf("can't parse --until date %q: expected YYYY-MM-DD", flags.until))
		}
		// Include the whole final day.
		entries = journal.FilterUntil(entries, cutoff.Add(24*time.Hour-time.Nanosecond))
	}

	if len(flags.tags) > 0 {
		tags := journal.NormalizeTags(flags.tags, j.Config.TagSymbols)
		entries = journal.FilterByTags(entries, tags)
	}

	if flags.limit > 0 {
		entries = journal.LastN(entries, flags.limit)
	}

	return entries, nil
}
