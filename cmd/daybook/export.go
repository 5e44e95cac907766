package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/export"
)

// exportFlags holds the flags for the export command.
type exportFlags struct {
	format string
	out    string
}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal to json, md, or txt",
		Long: `Export the journal in another format.

Without --out the exported content is written to stdout. With --out
pointing at a file the whole journal goes into that file; pointing at an
existing directory writes one file per entry, named by date and title.

Examples:
  daybook export --format json
  daybook export --format md --out journal.md
  daybook export --format txt --out ./entries/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json",
		"Export format: "+strings.Join(export.Formats(), ", "))
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file or directory")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, flags *exportFlags) error {
	printer := newPrinter(cmd)

	j, _, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := export.Export(j, flags.format, flags.out)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.out == "" {
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{
				"format":  flags.format,
				"content": result,
			})
		}
		printer.Print("%s", result)
		return nil
	}

	return printer.Success(map[string]any{
		"message": result,
		"format":  flags.format,
		"out":     flags.out,
	})
}
