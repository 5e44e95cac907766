package journal

import (
	"regexp"
	"strings"
)

// Todo is an actionable checkbox line extracted from an entry.
type Todo struct {
	Complete bool
	Text     string
}

// todoPattern matches checkbox lines of the form "- [ ] text" or "- [x] text".
var todoPattern = regexp.MustCompile(`^\s*- \[( |[xX])\] (.+)$`)

// ParseTodos extracts todo items from entry text, in order of appearance.
// Lines that are not checkbox lines are ignored; malformed or empty input
// yields no items.
func ParseTodos(text string) []Todo {
	var todos []Todo
	for _, line := range strings.Split(text, "\n") {
		m := todoPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		todos = append(todos, Todo{
			Complete: m[1] != " ",
			Text:     strings.TrimSpace(m[2]),
		})
	}
	return todos
}

// ItemForm returns the single-line display form of the todo.
func (t Todo) ItemForm() string {
	box := "[ ]"
	if t.Complete {
		box = "[x]"
	}
	return box + " " + t.Text
}

// TodoJSON is the structured view of a todo used in exports.
type TodoJSON struct {
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
}

// JSONView returns the structured view of the todo.
func (t Todo) JSONView() TodoJSON {
	return TodoJSON{Text: t.Text, Complete: t.Complete}
}
