package journal

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cfg := DefaultConfig()
	text := "2023-01-05 10:30 First entry @work\n" +
		"Some body text.\n" +
		"- [ ] a todo\n" +
		"\n" +
		"2023-01-06 08:00 Second entry *\n" +
		"\n" +
		"2023-01-07 21:15 Third entry\n"

	j := Parse(text, cfg)

	if len(j.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(j.Entries))
	}

	first := j.Entries[0]
	if first.Title != "First entry @work" {
		t.Errorf("first Title = %q", first.Title)
	}
	if first.Body != "Some body text.\n- [ ] a todo" {
		t.Errorf("first Body = %q", first.Body)
	}
	if want := time.Date(2023, 1, 5, 10, 30, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("first Date = %v, want %v", first.Date, want)
	}
	if len(first.Tags) != 1 || first.Tags[0] != "@work" {
		t.Errorf("first Tags = %v, want [@work]", first.Tags)
	}
	if len(first.Todos) != 1 {
		t.Errorf("first Todos = %v, want one", first.Todos)
	}

	second := j.Entries[1]
	if !second.Starred {
		t.Error("second entry should be starred")
	}
	if second.Title != "Second entry" {
		t.Errorf("second Title = %q, want star marker stripped", second.Title)
	}

	third := j.Entries[2]
	if third.Body != "" {
		t.Errorf("third Body = %q, want empty", third.Body)
	}
}

func TestParse_PreambleIgnored(t *testing.T) {
	cfg := DefaultConfig()
	text := "this line predates any entry\nso does this one\n" +
		"2023-01-05 10:30 Real entry\nbody\n"

	j := Parse(text, cfg)

	if len(j.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(j.Entries))
	}
	if j.Entries[0].Title != "Real entry" {
		t.Errorf("Title = %q", j.Entries[0].Title)
	}
	if j.Entries[0].Body != "body" {
		t.Errorf("Body = %q", j.Entries[0].Body)
	}
}

func TestParse_UnparsableDateLinesAreBody(t *testing.T) {
	cfg := DefaultConfig()
	text := "2023-01-05 10:30 Entry\n" +
		"2023-13-99 99:99 not a real date\n" +
		"99 bottles on the wall\n"

	j := Parse(text, cfg)

	if len(j.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(j.Entries))
	}
	want := "2023-13-99 99:99 not a real date\n99 bottles on the wall"
	if j.Entries[0].Body != want {
		t.Errorf("Body = %q, want %q", j.Entries[0].Body, want)
	}
}

func TestParse_HeadingWithoutTitle(t *testing.T) {
	cfg := DefaultConfig()
	j := Parse("2023-01-05 10:30\nbody only\n", cfg)

	if len(j.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(j.Entries))
	}
	if j.Entries[0].Title != "" {
		t.Errorf("Title = %q, want empty", j.Entries[0].Title)
	}
	if j.Entries[0].Body != "body only" {
		t.Errorf("Body = %q", j.Entries[0].Body)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	j := Parse("", DefaultConfig())
	if len(j.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(j.Entries))
	}
}

func TestParse_RoundTripsWriteForm(t *testing.T) {
	cfg := DefaultConfig()
	j := NewJournal(cfg)
	j.Add(NewEntry(cfg, time.Date(2023, 1, 5, 10, 30, 0, 0, time.UTC),
		"Lunch with @alice", "We talked for hours.\n- [ ] pay her back", false))
	j.Add(NewEntry(cfg, time.Date(2023, 1, 6, 8, 0, 0, 0, time.UTC),
		"Big release", "", true))
	j.Add(NewEntry(cfg, time.Date(2023, 2, 1, 19, 45, 0, 0, time.UTC),
		"Quiet evening", "Read a book.", false))

	parsed := Parse(j.WriteForm(), cfg)

	if len(parsed.Entries) != len(j.Entries) {
		t.Fatalf("len(Entries) = %d, want %d", len(parsed.Entries), len(j.Entries))
	}
	for i, e := range j.Entries {
		if !e.Equal(parsed.Entries[i]) {
			t.Errorf("entry %d does not round-trip: %+v vs %+v", i, e, parsed.Entries[i])
		}
	}
}
