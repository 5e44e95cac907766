package export

import (
	"fmt"
	"os"

	"github.com/gorewood/daybook/internal/journal"
	"github.com/gorewood/daybook/internal/output"
)

// formatters maps each accepted format name to its whole-journal renderer.
// txt/text and md/markdown are aliases.
var formatters = map[string]func(*journal.Journal) (string, error){
	"json":     ToJSON,
	"txt":      ToText,
	"text":     ToText,
	"md":       ToMarkdown,
	"markdown": ToMarkdown,
}

// Formats returns the names of all accepted export formats.
func Formats() []string {
	return []string{"json", "md", "markdown", "txt", "text"}
}

// Export renders the journal in the given format. With no output path the
// aggregated content is returned. If the path names an existing directory,
// one file per entry is written there and a confirmation message returned;
// any other path gets the aggregated content written to it. An unknown
// format is a user error; write failures are system errors carrying the
// failing path.
func Export(j *journal.Journal, format, out string) (string, error) {
	render, ok := formatters[format]
	if !ok {
		return "", output.NewUserError(
			fmt.Sprintf("can't export to %q: valid options are 'json', 'md', and 'txt'", format))
	}

	if out != "" {
		if info, err := os.Stat(out); err == nil && info.IsDir() {
			return WriteFiles(j, out, format)
		}
	}

	content, err := render(j)
	if err != nil {
		return "", err
	}
	if out == "" {
		return content, nil
	}
	if err := os.WriteFile(out, []byte(content), 0600); err != nil {
		return "", output.NewSystemErrorWithCause(
			fmt.Sprintf("exporting journal to %s: %v", out, err), err)
	}
	return fmt.Sprintf("journal exported to %s", out), nil
}

// ToText returns the complete pretty-printed text of the journal, delegating
// to the journal's own pretty-print.
func ToText(j *journal.Journal) (string, error) {
	return j.Pprint(), nil
}
