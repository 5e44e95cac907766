package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [n]",
		Short: "Show a single entry",
		Long: `Show a single entry in full.

With no argument the latest entry is shown. With an argument N the Nth
entry is shown, counting from 1 in date order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	j, _, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if len(j.Entries) == 0 {
		userErr := output.NewUserError("journal is empty")
		printer.Error(userErr)
		return userErr
	}

	index := len(j.Entries) // default: latest
	if len(args) == 1 {
		index, err = strconv.Atoi(args[0])
		if err != nil || index < 1 || index > len(j.Entries) {
			userErr := output.NewUserError(fmt.Sprintf(
				"no entry %q: journal has %d entries", args[0], len(j.Entries)))
			printer.Error(userErr)
			return userErr
		}
	}

	entry := j.Entries[index-1]

	if printer.IsJSON() {
		view := entry.JSONView()
		view.ID = index
		return printer.WriteJSON(view)
	}

	text := entry.Pprint(j.Config, false)
	if entry.Starred {
		text = markStarred(text, printer.Styles())
	}
	printer.Print("%s", text)
	return nil
}
