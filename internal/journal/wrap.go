package journal

import (
	"strings"
	"unicode"
)

// quotePrefix marks pretty-printed body lines.
const quotePrefix = "| "

// fill word-wraps text to width columns, joining wrapped lines with newlines.
// Whitespace at line breaks is dropped. Width <= 0 returns text unchanged.
func fill(text string, width int) string {
	if width <= 0 {
		return text
	}
	return strings.Join(wrapLine(text, width, "", "", true), "\n")
}

// fillQuoted word-wraps a single body line to width columns, prefixing the
// first and every continuation line with "| ". Whitespace runs are preserved
// so indented or spaced-out body text survives wrapping.
func fillQuoted(text string, width int) string {
	return strings.Join(wrapLine(text, width, quotePrefix, quotePrefix, false), "\n")
}

// wrapLine breaks text into lines of at most width columns. The text is split
// into alternating runs of whitespace and non-whitespace; runs are placed
// greedily. When dropSpace is true, whitespace runs at line boundaries are
// dropped; otherwise they are kept intact. Runs longer than a whole line are
// hard-broken at the width.
func wrapLine(text string, width int, initial, subsequent string, dropSpace bool) []string {
	var lines []string
	indent := initial
	cur := []rune(indent)
	hasChunk := false

	emit := func() {
		line := cur
		if dropSpace {
			for len(line) > 0 && unicode.IsSpace(line[len(line)-1]) {
				line = line[:len(line)-1]
			}
		}
		lines = append(lines, string(line))
	}
	flush := func() {
		emit()
		indent = subsequent
		cur = []rune(indent)
		hasChunk = false
	}

	for _, chunk := range splitChunks(text) {
		r := []rune(chunk)
		space := unicode.IsSpace(r[0])
		if dropSpace && space && !hasChunk {
			continue
		}
		if hasChunk && len(cur)+len(r) > width {
			if space && dropSpace {
				flush()
				continue
			}
			flush()
		}
		for len(cur)+len(r) > width && len(cur) < width {
			take := width - len(cur)
			cur = append(cur, r[:take]...)
			r = r[take:]
			flush()
		}
		cur = append(cur, r...)
		hasChunk = true
	}
	if hasChunk || len(lines) == 0 {
		emit()
	}
	return lines
}

// splitChunks splits text into maximal runs of whitespace and non-whitespace.
func splitChunks(text string) []string {
	var chunks []string
	runes := []rune(text)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || unicode.IsSpace(runes[i]) != unicode.IsSpace(runes[start]) {
			chunks = append(chunks, string(runes[start:i]))
			start = i
		}
	}
	return chunks
}
