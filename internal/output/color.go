package output

import (
	"io"
	"os"
)

// ResolveColorMode maps the --color flag onto the TTY decision a printer is
// built from. "never" forces plain output, "always" forces styled output, and
// anything else (including the default "auto") falls back to the detected
// isTTY value.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether the writer is an interactive terminal. Anything that
// is not a character-device *os.File counts as non-interactive, so piped and
// buffered output stays plain.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
