package journal

import (
	"bufio"
	"strings"
	"time"
)

// starSuffix marks starred entries on heading lines.
const starSuffix = " *"

// Parse reads journal file text into a journal. A line whose leading fields
// parse with cfg's time layout starts a new entry; every other line belongs
// to the body of the current entry. Text before the first heading is
// ignored. Parse is the inverse of Journal.WriteForm for entries whose
// titles do not themselves end in the star marker.
func Parse(text string, cfg Config) *Journal {
	j := NewJournal(cfg)

	var (
		date  time.Time
		title string
		body  []string
		open  bool
	)
	flush := func() {
		if !open {
			return
		}
		starred := strings.HasSuffix(title, starSuffix)
		if starred {
			title = strings.TrimSuffix(title, starSuffix)
		}
		j.Entries = append(j.Entries, NewEntry(cfg, date, title, strings.Join(body, "\n"), starred))
		body = nil
		open = false
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if d, rest, ok := parseHeading(line, cfg.TimeFormat); ok {
			flush()
			date, title, open = d, rest, true
			continue
		}
		if open {
			body = append(body, line)
		}
	}
	flush()
	return j
}

// parseHeading attempts to read "<formatted-date> <title>" from a line. The
// date occupies exactly as many space-separated fields as the layout itself.
func parseHeading(line, layout string) (time.Time, string, bool) {
	fields := strings.Count(layout, " ") + 1
	datePart, rest, ok := splitFields(line, fields)
	if !ok {
		return time.Time{}, "", false
	}
	date, err := time.Parse(layout, datePart)
	if err != nil {
		return time.Time{}, "", false
	}
	return date, rest, true
}

// splitFields splits line after its first n space-separated fields. A line
// with exactly n fields yields an empty rest.
func splitFields(line string, n int) (head, rest string, ok bool) {
	idx := 0
	for i := 0; i < n; i++ {
		sp := strings.IndexByte(line[idx:], ' ')
		if sp < 0 {
			if i == n-1 {
				return line, "", true
			}
			return "", "", false
		}
		idx += sp + 1
	}
	return line[:idx-1], line[idx:], true
}
