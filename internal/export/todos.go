package export

import (
	"strings"

	"github.com/gorewood/daybook/internal/journal"
)

// Todos returns every todo from every entry, in journal order.
func Todos(j *journal.Journal) []journal.Todo {
	var todos []journal.Todo
	for _, e := range j.Entries {
		todos = append(todos, e.Todos...)
	}
	return todos
}

// ToTodoList renders the journal's todos as two headed sections, Pending
// then Completed, each header underlined to its own width.
func ToTodoList(j *journal.Journal) string {
	todos := Todos(j)
	if len(todos) == 0 {
		return "[No todos found in journal.]"
	}

	var pending, completed []journal.Todo
	for _, t := range todos {
		if t.Complete {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}

	var b strings.Builder
	b.WriteString(todoHeader("Pending"))
	b.WriteString(todoItems(pending))
	b.WriteString("\n\n")
	b.WriteString(todoHeader("Completed"))
	b.WriteString(todoItems(completed))
	return b.String()
}

// todoHeader returns a section header underlined with "=" to its width.
func todoHeader(text string) string {
	sep := strings.Repeat("=", len(text))
	return sep + "\n" + text + "\n" + sep + "\n"
}

// todoItems renders each todo's single-line display form joined by newlines.
func todoItems(todos []journal.Todo) string {
	lines := make([]string, 0, len(todos))
	for _, t := range todos {
		lines = append(lines, t.ItemForm())
	}
	return strings.Join(lines, "\n")
}
