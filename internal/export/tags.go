package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gorewood/daybook/internal/journal"
)

// TagCount pairs a tag with the number of distinct entries containing it.
type TagCount struct {
	Tag   string
	Count int
}

// TagCounts returns one TagCount per distinct tag across the journal, in
// first-appearance order. Each entry's tags are deduplicated before
// counting, so the count is the number of entries containing the tag at
// least once, not the total occurrence count.
func TagCounts(j *journal.Journal) []TagCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range j.Entries {
		for _, tag := range e.UniqueTags() {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(order))
	for _, tag := range order {
		out = append(out, TagCount{Tag: tag, Count: counts[tag]})
	}
	return out
}

// ToTagList renders the human-readable tag listing: most frequent first,
// ties broken by reverse-lexicographic tag order.
func ToTagList(j *journal.Journal) string {
	counts := TagCounts(j)
	if len(counts) == 0 {
		return "[No tags found in journal.]"
	}

	var notice string
	if minCount(counts) == 0 {
		// Cannot happen given the counting rule above; kept as the display
		// heuristic for degenerate counts.
		kept := counts[:0]
		for _, tc := range counts {
			if tc.Count > 1 {
				kept = append(kept, tc)
			}
		}
		counts = kept
		notice = "[Removed tags that appear only once.]\n"
	}

	sort.Slice(counts, func(a, b int) bool {
		if counts[a].Count != counts[b].Count {
			return counts[a].Count > counts[b].Count
		}
		return counts[a].Tag > counts[b].Tag
	})

	var b strings.Builder
	b.WriteString(notice)
	for i, tc := range counts {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-20s : %d", tc.Tag, tc.Count)
	}
	return b.String()
}

// minCount returns the smallest count among the tag counts.
func minCount(counts []TagCount) int {
	minC := counts[0].Count
	for _, tc := range counts[1:] {
		if tc.Count < minC {
			minC = tc.Count
		}
	}
	return minC
}
