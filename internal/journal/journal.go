package journal

import (
	"sort"
	"strings"
)

// Journal is an ordered collection of entries sharing one formatting
// configuration. Entries are kept in date-ascending order by convention.
type Journal struct {
	Config  Config
	Entries []*Entry
}

// NewJournal returns an empty journal with the given configuration.
func NewJournal(cfg Config) *Journal {
	return &Journal{Config: cfg}
}

// Add appends an entry and restores date order.
func (j *Journal) Add(e *Entry) {
	j.Entries = append(j.Entries, e)
	j.Sort()
}

// Sort orders entries by date ascending. The sort is stable so same-minute
// entries keep their insertion order.
func (j *Journal) Sort() {
	sort.SliceStable(j.Entries, func(a, b int) bool {
		return j.Entries[a].Date.Before(j.Entries[b].Date)
	})
}

// Pprint returns the full pretty-printed journal: every entry in order,
// joined by single newlines.
func (j *Journal) Pprint() string {
	parts := make([]string, 0, len(j.Entries))
	for _, e := range j.Entries {
		parts = append(parts, e.Pprint(j.Config, false))
	}
	return strings.Join(parts, "\n")
}

// WriteForm returns the canonical file content of the whole journal: every
// entry's write form joined by single newlines, so entries are separated by
// one blank line.
func (j *Journal) WriteForm() string {
	parts := make([]string, 0, len(j.Entries))
	for _, e := range j.Entries {
		parts = append(parts, e.WriteForm(j.Config))
	}
	return strings.Join(parts, "\n")
}
