package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"

	"github.com/gorewood/daybook/internal/journal"
	"github.com/gorewood/daybook/internal/output"
)

// extensions maps each accepted format name to its file extension.
var extensions = map[string]string{
	"json":     "json",
	"md":       "md",
	"markdown": "md",
	"txt":      "txt",
	"text":     "txt",
}

// WriteFiles exports one file per entry into dir, named
// "<YYYY-MM-DD>_<slugified-title>.<ext>". Files are UTF-8 and existing files
// are overwritten silently. Write failures are collected and reported
// together; files already written stay on disk.
func WriteFiles(j *journal.Journal, dir, format string) (string, error) {
	ext := extensions[format]
	var errs []error
	for _, e := range j.Entries {
		name := e.Date.Format("2006-01-02") + "_" + slug.Make(e.Title) + "." + ext
		path := filepath.Join(dir, name)

		content, err := entryContent(e, j.Config, format)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			errs = append(errs, output.NewSystemErrorWithCause(
				fmt.Sprintf("writing %s: %v", path, err), err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return "", err
	}
	return fmt.Sprintf("journal exported to individual files in %s", dir), nil
}

// entryContent renders a single entry for per-file export: an indented JSON
// view, a markdown block, or the canonical write form.
func entryContent(e *journal.Entry, cfg journal.Config, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(e.JSONView(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling entry: %w", err)
		}
		return string(data) + "\n", nil
	case "md", "markdown":
		return e.Markdown(cfg), nil
	default:
		return e.WriteForm(cfg), nil
	}
}
