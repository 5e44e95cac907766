package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/daybook/internal/export"
	"github.com/gorewood/daybook/internal/journal"
)

// newTodosCmd creates the todos command.
func newTodosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "List todos collected from all entries",
		Long: `List every todo in the journal, grouped into pending and completed.

Todos are checkbox lines in entry bodies:
  - [ ] still to do
  - [x] already done`,
		Args: cobra.NoArgs,
		RunE: runTodos,
	}
	return cmd
}

// runTodos executes the todos command.
func runTodos(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	j, _, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		pending := []journal.TodoJSON{}
		completed := []journal.TodoJSON{}
		for _, todo := range export.Todos(j) {
			if todo.Complete {
				completed = append(completed, todo.JSONView())
			} else {
				pending = append(pending, todo.JSONView())
			}
		}
		return printer.WriteJSON(map[string]any{
			"pending":   pending,
			"completed": completed,
		})
	}

	printer.Print("%s", export.ToTodoList(j))
	return nil
}
