// Package journal provides the entry model, tag and todo parsing, and rendering
// for the daybook plain-text journal.
package journal

// Config holds the formatting options every parse and render operation needs.
// It is passed by value; entries never hold a reference back to their journal.
type Config struct {
	// TagSymbols is the set of characters that may prefix a tag (e.g. "@#").
	TagSymbols string
	// TimeFormat is the Go reference-time layout used for entry headings.
	TimeFormat string
	// LineWrap is the column width for pretty-printing. 0 disables wrapping.
	LineWrap int
}

// Default config values, matching the canonical journal file format.
const (
	DefaultTagSymbols = "@"
	DefaultTimeFormat = "2006-01-02 15:04"
	DefaultLineWrap   = 79
)

// DefaultConfig returns the default formatting configuration.
func DefaultConfig() Config {
	return Config{
		TagSymbols: DefaultTagSymbols,
		TimeFormat: DefaultTimeFormat,
		LineWrap:   DefaultLineWrap,
	}
}
