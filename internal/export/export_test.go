package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/daybook/internal/journal"
	"github.com/gorewood/daybook/internal/output"
)

func testJournal(t *testing.T) *journal.Journal {
	t.Helper()
	cfg := journal.DefaultConfig()
	j := journal.NewJournal(cfg)
	j.Add(journal.NewEntry(cfg, time.Date(2023, 1, 5, 10, 30, 0, 0, time.UTC),
		"Lunch with @alice", "We caught up.\n- [ ] pay her back", false))
	j.Add(journal.NewEntry(cfg, time.Date(2023, 1, 20, 9, 0, 0, 0, time.UTC),
		"Sprint review @work", "- [x] demo the feature", true))
	j.Add(journal.NewEntry(cfg, time.Date(2023, 2, 1, 19, 45, 0, 0, time.UTC),
		"Dinner with @alice @family", "", false))
	return j
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export(testJournal(t), "pdf", "")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "pdf") {
		t.Errorf("error %q should name the rejected format", err.Error())
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestExport_ReturnsContent(t *testing.T) {
	j := testJournal(t)

	for _, format := range []string{"json", "md", "markdown", "txt", "text"} {
		t.Run(format, func(t *testing.T) {
			content, err := Export(j, format, "")
			if err != nil {
				t.Fatalf("Export(%q) error: %v", format, err)
			}
			if content == "" {
				t.Errorf("Export(%q) returned empty content", format)
			}
		})
	}
}

func TestExport_WritesFile(t *testing.T) {
	j := testJournal(t)
	path := filepath.Join(t.TempDir(), "journal.md")

	msg, err := Export(j, "md", path)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !strings.Contains(msg, path) {
		t.Errorf("message %q should name the output path", msg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if !strings.Contains(string(data), "### 2023-01-05 10:30, Lunch with @alice") {
		t.Errorf("exported file missing entry heading:\n%s", data)
	}
}

func TestExport_WriteFailureIsSystemError(t *testing.T) {
	j := testJournal(t)
	path := filepath.Join(t.TempDir(), "missing", "journal.txt")

	_, err := Export(j, "txt", path)
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the failing path", err.Error())
	}
}

func TestExport_DirectoryWritesIndividualFiles(t *testing.T) {
	j := testJournal(t)
	dir := t.TempDir()

	msg, err := Export(j, "txt", dir)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !strings.Contains(msg, dir) {
		t.Errorf("message %q should name the directory", msg)
	}

	names, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 3 {
		t.Fatalf("wrote %d files, want 3: %v", len(names), names)
	}
}

func TestToText(t *testing.T) {
	j := testJournal(t)
	got, err := ToText(j)
	if err != nil {
		t.Fatalf("ToText() error: %v", err)
	}
	if got != j.Pprint() {
		t.Error("ToText() should match the journal's pretty print")
	}
}

func TestFormats(t *testing.T) {
	for _, format := range Formats() {
		if _, ok := formatters[format]; !ok {
			t.Errorf("advertised format %q has no formatter", format)
		}
	}
}
