package export

import (
	"encoding/json"
	"fmt"

	"github.com/gorewood/daybook/internal/journal"
)

// Document is the whole-journal JSON export schema: tag occurrence counts,
// every todo in journal order, and every entry in journal order.
type Document struct {
	Tags    map[string]int      `json:"tags"`
	Todos   []journal.TodoJSON  `json:"todos"`
	Entries []journal.EntryJSON `json:"entries"`
}

// BuildDocument assembles the export document. Entries are tagged with a
// 1-based sequential id in iteration order; the id is not a stable entry
// identifier and changes when the journal is reordered.
func BuildDocument(j *journal.Journal) Document {
	counts := TagCounts(j)
	tags := make(map[string]int, len(counts))
	for _, tc := range counts {
		tags[tc.Tag] = tc.Count
	}

	todos := make([]journal.TodoJSON, 0)
	for _, t := range Todos(j) {
		todos = append(todos, t.JSONView())
	}

	entries := make([]journal.EntryJSON, 0, len(j.Entries))
	for i, e := range j.Entries {
		view := e.JSONView()
		view.ID = i + 1
		entries = append(entries, view)
	}

	return Document{Tags: tags, Todos: todos, Entries: entries}
}

// ToJSON renders the whole journal as an indented JSON document.
func ToJSON(j *journal.Journal) (string, error) {
	data, err := json.MarshalIndent(BuildDocument(j), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling journal: %w", err)
	}
	return string(data), nil
}
