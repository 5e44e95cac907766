package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/journal"
	"github.com/gorewood/daybook/internal/output"
)

// addFlags holds the flags for the add command.
type addFlags struct {
	body    string
	starred bool
	time    string
}

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	var flags addFlags

	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Add a new entry to the journal",
		Long: `Add a new entry to the journal.

The arguments form the entry title; tags (@word) may appear anywhere in the
title or body. Todos are checkbox lines (- [ ] text) in the body.

Examples:
  daybook add Lunch with @alice
  daybook add Release retro --body "Went fine.\n- [ ] write followup" --starred
  daybook add Standup notes --time "2026-02-01 09:15"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.body, "body", "b", "", "Entry body text")
	cmd.Flags().BoolVarP(&flags.starred, "starred", "s", false, "Mark the entry as starred")
	cmd.Flags().StringVar(&flags.time, "time", "", "Entry time in the journal's time layout (default: now)")

	return cmd
}

// runAdd executes the add command.
func runAdd(cmd *cobra.Command, args []string, flags *addFlags) error {
	printer := newPrinter(cmd)

	j, files, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	var entryTime time.Time
	if flags.time != "" {
		entryTime, err = time.Parse(j.Config.TimeFormat, flags.time)
		if err != nil {
			userErr := output.NewUserError(fmt.Sprintf(
				"can't parse time %q: expected layout %q", flags.time, j.Config.TimeFormat))
			printer.Error(userErr)
			return userErr
		}
	}

	entry := journal.NewEntry(j.Config, entryTime, strings.Join(args, " "), flags.body, flags.starred)
	j.Add(entry)

	if err := files.Save(j); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Entry added to %s", files.Path()),
		"date":    entry.Date.Format(j.Config.TimeFormat),
		"title":   entry.Title,
		"starred": entry.Starred,
		"tags":    entry.UniqueTags(),
		"todos":   len(entry.Todos),
	})
}
