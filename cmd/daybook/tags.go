package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/export"
)

// newTagsCmd creates the tags command.
func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags and how many entries use them",
		Long: `List every tag in the journal with the number of entries it appears in.

A tag used several times within one entry counts once for that entry.`,
		Args: cobra.NoArgs,
		RunE: runTags,
	}
	return cmd
}

// runTags executes the tags command.
func runTags(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	j, _, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		counts := export.TagCounts(j)
		tags := make(map[string]int, len(counts))
		for _, c := range counts {
			tags[c.Tag] = c.Count
		}
		return printer.WriteJSON(map[string]any{"tags": tags})
	}

	printer.Print("%s", export.ToTagList(j))
	return nil
}
