package main

import (
	"os"
	"strings"
	"testing"
)

func TestAddCommand(t *testing.T) {
	path := testJournalPath(t)

	out, err := runDaybook(t, path, "add", "Lunch", "with", "@alice",
		"--body", "- [ ] pay her back", "--time", "2023-01-05 10:30")
	if err != nil {
		t.Fatalf("add error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q should name the journal file", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading journal: %v", err)
	}
	want := "2023-01-05 10:30 Lunch with @alice\n- [ ] pay her back\n"
	if string(data) != want {
		t.Errorf("journal file = %q, want %q", data, want)
	}
}

func TestAddCommand_Starred(t *testing.T) {
	path := testJournalPath(t)

	if out, err := runDaybook(t, path, "add", "Big", "day", "--starred", "--time", "2023-01-05 10:30"); err != nil {
		t.Fatalf("add error: %v\noutput: %s", err, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading journal: %v", err)
	}
	if !strings.Contains(string(data), "Big day *\n") {
		t.Errorf("journal file = %q, want star marker", data)
	}
}

func TestAddCommand_AppendsInDateOrder(t *testing.T) {
	path := testJournalPath(t)

	if _, err := runDaybook(t, path, "add", "later", "--time", "2023-01-10 09:00"); err != nil {
		t.Fatal(err)
	}
	if _, err := runDaybook(t, path, "add", "earlier", "--time", "2023-01-05 09:00"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Index(content, "earlier") > strings.Index(content, "later") {
		t.Errorf("entries not in date order:\n%s", content)
	}
}

func TestAddCommand_BadTime(t *testing.T) {
	path := testJournalPath(t)

	out, err := runDaybook(t, path, "add", "note", "--time", "next tuesday")
	if err == nil {
		t.Fatal("expected error for unparsable --time")
	}
	if !strings.Contains(out, "next tuesday") {
		t.Errorf("error output %q should name the bad value", out)
	}
}

func TestAddCommand_JSON(t *testing.T) {
	path := testJournalPath(t)

	out, err := runDaybook(t, path, "add", "Note", "@work", "--json", "--time", "2023-01-05 10:30")
	if err != nil {
		t.Fatalf("add error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, `"tags"`) || !strings.Contains(out, "@work") {
		t.Errorf("JSON output = %q, want tags field", out)
	}
}

func TestAddCommand_RequiresTitle(t *testing.T) {
	path := testJournalPath(t)
	if _, err := runDaybook(t, path, "add"); err == nil {
		t.Error("expected error when no title arguments given")
	}
}
