package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/gorewood/daybook/internal/journal"
)

// ToMarkdown renders the journal as a single markdown document. Entries
// appear in journal order; a year heading (the 4-digit year underlined with
// "=") is emitted whenever an entry's year differs from the previous
// entry's, and independently a month heading (the full month name underlined
// with "-") whenever the month differs. Sections are joined with single
// newlines.
func ToMarkdown(j *journal.Journal) (string, error) {
	var out []string
	year := -1
	month := time.Month(0)

	for _, e := range j.Entries {
		if e.Date.Year() != year {
			year = e.Date.Year()
			label := strconv.Itoa(year)
			out = append(out, label, strings.Repeat("=", len(label))+"\n")
		}
		if e.Date.Month() != month {
			month = e.Date.Month()
			label := month.String()
			out = append(out, label, strings.Repeat("-", len(label))+"\n")
		}
		out = append(out, e.Markdown(j.Config))
	}

	return strings.Join(out, "\n"), nil
}
