package journal

import (
	"regexp"
	"strings"
)

// tagBodyClass matches the characters a tag may contain after its prefix
// symbol: Unicode letters and digits plus - _ + * # /.
const tagBodyClass = `[\p{L}\p{N}_\-+*#/]+`

// tagPattern compiles the tag regex for the given prefix symbols. A tag is a
// prefix symbol followed by one or more tag-body characters, immediately
// preceded by whitespace.
func tagPattern(symbols string) *regexp.Regexp {
	var class strings.Builder
	for _, r := range symbols {
		switch r {
		case '\\', ']', '^', '-':
			class.WriteRune('\\')
		}
		class.WriteRune(r)
	}
	return regexp.MustCompile(`\s([` + class.String() + `]` + tagBodyClass + `)`)
}

// ParseTags returns every tag token in title and body, in order of
// appearance, duplicates preserved. The searched text is " " + title + " " +
// body lower-cased; the leading space lets a tag at the very start of the
// title match. Callers needing unique tags must dedupe explicitly.
func ParseTags(title, body, symbols string) []string {
	fulltext := strings.ToLower(" " + title + " " + body)
	matches := tagPattern(symbols).FindAllStringSubmatch(fulltext, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
