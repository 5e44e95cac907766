package journal

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// FilterSince filters entries to those dated at or after the cutoff.
func FilterSince(entries []*Entry, cutoff time.Time) []*Entry {
	var result []*Entry
	for _, e := range entries {
		if e.Date.After(cutoff) || e.Date.Equal(cutoff) {
			result = append(result, e)
		}
	}
	return result
}

// FilterUntil filters entries to those dated before or at the cutoff.
func FilterUntil(entries []*Entry, cutoff time.Time) []*Entry {
	var result []*Entry
	for _, e := range entries {
		if e.Date.Before(cutoff) || e.Date.Equal(cutoff) {
			result = append(result, e)
		}
	}
	return result
}

// FilterByTags filters entries to those carrying at least one of the given
// tags. Uses OR logic: entries matching ANY of the tags are included.
func FilterByTags(entries []*Entry, tags []string) []*Entry {
	if len(tags) == 0 {
		return entries
	}
	var result []*Entry
	for _, e := range entries {
		if entryHasAnyTag(e, tags) {
			result = append(result, e)
		}
	}
	return result
}

// entryHasAnyTag checks if the entry has any of the specified tags.
func entryHasAnyTag(e *Entry, tags []string) bool {
	for _, tag := range e.Tags {
		if slices.Contains(tags, tag) {
			return true
		}
	}
	return false
}

// NormalizeTags lower-cases tag queries and prepends the first configured
// symbol to bare words, so a query for "work" matches entries tagged
// "@work". Empty queries are dropped.
func NormalizeTags(tags []string, symbols string) []string {
	if symbols == "" {
		return tags
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		lowered := strings.ToLower(tag)
		first, _ := utf8.DecodeRuneInString(lowered)
		if !strings.ContainsRune(symbols, first) {
			prefix, _ := utf8.DecodeRuneInString(symbols)
			lowered = string(prefix) + lowered
		}
		out = append(out, lowered)
	}
	return out
}

// LastN returns the final n entries in journal order, or all of them when
// fewer exist.
func LastN(entries []*Entry, n int) []*Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
