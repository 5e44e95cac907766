package journal

import (
	"strings"
	"time"
)

// trailingCutset is stripped from the end of titles and bodies when entries
// are constructed and rendered.
const trailingCutset = "\n "

// Entry is a single dated journal entry.
type Entry struct {
	Date    time.Time
	Title   string
	Body    string
	Starred bool

	// Tags and Todos are derived from Title and Body by Reparse. They are in
	// sync with the text as of the last Reparse call and are excluded from
	// equality.
	Tags  []string
	Todos []Todo

	// Modified is maintained by callers that edit entries in place. Parsing
	// and rendering never touch it.
	Modified bool
}

// NewEntry creates an entry with the given content and derives its tags and
// todos. A zero date defaults to the current time. Trailing newlines and
// spaces are stripped from title and body; leading whitespace is preserved.
func NewEntry(cfg Config, date time.Time, title, body string, starred bool) *Entry {
	if date.IsZero() {
		date = time.Now()
	}
	e := &Entry{
		Date:    date,
		Title:   strings.TrimRight(title, trailingCutset),
		Body:    strings.TrimRight(body, trailingCutset),
		Starred: starred,
	}
	e.Reparse(cfg)
	return e
}

// Reparse re-derives Tags and Todos from the current Title and Body. Callers
// mutating either field must call Reparse afterwards; nothing re-derives on
// access.
func (e *Entry) Reparse(cfg Config) {
	e.Tags = ParseTags(e.Title, e.Body, cfg.TagSymbols)
	e.Todos = ParseTodos(e.Title + "\n" + e.Body)
}

// UniqueTags returns the entry's tags with duplicates removed, first
// occurrence order preserved.
func (e *Entry) UniqueTags() []string {
	seen := make(map[string]struct{}, len(e.Tags))
	var out []string
	for _, tag := range e.Tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// WriteForm returns the canonical text the entry round-trips through when the
// journal file is written: "<date> <title>[ *][\n<body>]\n". The body section
// and its separator are omitted entirely when the stripped body is empty.
func (e *Entry) WriteForm(cfg Config) string {
	title := e.Date.Format(cfg.TimeFormat) + " " + strings.TrimRight(e.Title, trailingCutset)
	if e.Starred {
		title += " *"
	}
	body := strings.TrimRight(e.Body, trailingCutset)
	sep := ""
	if body != "" {
		sep = "\n"
	}
	return title + sep + body + "\n"
}

// Pprint returns the pretty-printed entry. When short is true only the title
// line (date and title, no star, no body) is returned. Otherwise, with a
// positive line wrap configured, the title is word-wrapped and each body line
// is wrapped independently with a "| " prefix; whitespace runs inside body
// lines are preserved, and an empty body line still gets its prefix.
func (e *Entry) Pprint(cfg Config, short bool) string {
	dateStr := e.Date.Format(cfg.TimeFormat)
	title := dateStr + " " + strings.TrimRight(e.Title, trailingCutset)
	body := strings.TrimRight(e.Body, " \n")

	if !short && cfg.LineWrap > 0 {
		title = fill(dateStr+" "+e.Title, cfg.LineWrap)
		if body != "" {
			lines := strings.Split(body, "\n")
			quoted := make([]string, 0, len(lines))
			for _, line := range lines {
				if line == "" {
					line = " "
				}
				quoted = append(quoted, fillQuoted(line, cfg.LineWrap))
			}
			body = strings.Join(quoted, "\n")
		}
	}

	if short {
		return title
	}
	if !e.hasBody() {
		return title + "\n"
	}
	return title + "\n" + body + "\n"
}

// hasBody reports whether the body is worth displaying: longer than 20 raw
// characters, or containing anything other than spaces and newlines.
func (e *Entry) hasBody() bool {
	if len(e.Body) > 20 {
		return true
	}
	for _, r := range e.Body {
		if r != ' ' && r != '\n' {
			return true
		}
	}
	return false
}

// Markdown returns the entry as a markdown block: a level-3 heading with the
// formatted date and title, followed by the body separated by a blank line
// when non-empty.
func (e *Entry) Markdown(cfg Config) string {
	body := e.Body
	if body != "" {
		body = "\n\n" + body
	}
	return "### " + e.Date.Format(cfg.TimeFormat) + ", " + e.Title + " " + body + " \n"
}

// EntryJSON is the structured view of an entry used in exports. ID is
// assigned by the whole-journal JSON export (1-based, in journal order) and
// omitted elsewhere.
type EntryJSON struct {
	Title   string     `json:"title"`
	Body    string     `json:"body"`
	Date    string     `json:"date"`
	Time    string     `json:"time"`
	Todos   []TodoJSON `json:"todos"`
	Starred bool       `json:"starred"`
	ID      int        `json:"id,omitempty"`
}

// JSONView returns the structured view of the entry, with the date split
// into separate date and time strings.
func (e *Entry) JSONView() EntryJSON {
	todos := make([]TodoJSON, 0, len(e.Todos))
	for _, t := range e.Todos {
		todos = append(todos, t.JSONView())
	}
	return EntryJSON{
		Title:   e.Title,
		Body:    e.Body,
		Date:    e.Date.Format("2006-01-02"),
		Time:    e.Date.Format("15:04"),
		Todos:   todos,
		Starred: e.Starred,
	}
}

// Equal reports whether two entries have the same trimmed title, trimmed
// body, date, and starred flag. Derived tags and todos and the Modified flag
// are excluded.
func (e *Entry) Equal(other *Entry) bool {
	if other == nil {
		return false
	}
	return strings.TrimSpace(e.Title) == strings.TrimSpace(other.Title) &&
		strings.TrimRight(e.Body, " \t\n") == strings.TrimRight(other.Body, " \t\n") &&
		e.Date.Equal(other.Date) &&
		e.Starred == other.Starred
}
