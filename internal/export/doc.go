// Package export renders a journal into structured output formats.
//
// This package aggregates entries across a whole journal and serializes them
// for use outside daybook: machine-readable JSON, markdown documents, plain
// text, and per-entry files.
//
// # Supported Formats
//
// The format selector is one of json, txt, text, md, markdown; txt/text and
// md/markdown are aliases. An unknown format is reported as a user error
// naming the format, never a panic.
//
// # Aggregated Export
//
//	content, err := export.Export(j, "json", "")        // content string
//	msg, err := export.Export(j, "md", "notes.md")      // single file
//	msg, err := export.Export(j, "txt", "./out/")       // one file per entry
//
// JSON export produces a single document with three keys:
//
//	{
//	  "tags":    {"@work": 2, "@idea": 1},
//	  "todos":   [{"text": "...", "complete": false}, ...],
//	  "entries": [{"title": "...", "date": "2026-02-01", "time": "09:15",
//	               "todos": [...], "starred": false, "id": 1}, ...]
//	}
//
// Tag counts are per-entry deduplicated: the count is the number of entries
// containing the tag, not the number of occurrences. Entry ids are 1-based
// positions in journal order.
//
// Markdown export groups entries under year and month headings, emitted
// whenever the year or month changes between consecutive entries.
//
// # Listings
//
// ToTagList and ToTodoList render the human-readable tag frequency listing
// and the Pending/Completed todo listing used by the tags and todos
// commands.
//
// # File Naming
//
// Per-entry files are named <YYYY-MM-DD>_<slugified-title>.<ext> with
// extension json, md, or txt.
package export
