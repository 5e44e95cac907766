package journal

import (
	"slices"
	"testing"
	"time"
)

func testEntries(t *testing.T) []*Entry {
	t.Helper()
	cfg := DefaultConfig()
	return []*Entry{
		NewEntry(cfg, time.Date(2023, 1, 5, 10, 0, 0, 0, time.UTC), "one @work", "", false),
		NewEntry(cfg, time.Date(2023, 1, 10, 10, 0, 0, 0, time.UTC), "two @home", "", false),
		NewEntry(cfg, time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC), "three @work @home", "", false),
	}
}

func titlesOf(entries []*Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

func TestFilterSince(t *testing.T) {
	entries := testEntries(t)
	got := FilterSince(entries, time.Date(2023, 1, 10, 10, 0, 0, 0, time.UTC))
	want := []string{"two @home", "three @work @home"}
	if !slices.Equal(titlesOf(got), want) {
		t.Errorf("FilterSince() = %v, want %v", titlesOf(got), want)
	}
}

func TestFilterUntil(t *testing.T) {
	entries := testEntries(t)
	got := FilterUntil(entries, time.Date(2023, 1, 10, 10, 0, 0, 0, time.UTC))
	want := []string{"one @work", "two @home"}
	if !slices.Equal(titlesOf(got), want) {
		t.Errorf("FilterUntil() = %v, want %v", titlesOf(got), want)
	}
}

func TestFilterByTags(t *testing.T) {
	entries := testEntries(t)

	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{
			name: "single tag",
			tags: []string{"@home"},
			want: []string{"two @home", "three @work @home"},
		},
		{
			name: "multiple tags use OR logic",
			tags: []string{"@work", "@home"},
			want: []string{"one @work", "two @home", "three @work @home"},
		},
		{
			name: "no match",
			tags: []string{"@gym"},
			want: []string{},
		},
		{
			name: "empty tag list returns all",
			tags: nil,
			want: []string{"one @work", "two @home", "three @work @home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titlesOf(FilterByTags(entries, tt.tags))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterByTags(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		symbols string
		want    []string
	}{
		{
			name:    "bare word gets first symbol",
			tags:    []string{"work"},
			symbols: "@#",
			want:    []string{"@work"},
		},
		{
			name:    "existing symbol kept",
			tags:    []string{"#standup"},
			symbols: "@#",
			want:    []string{"#standup"},
		},
		{
			name:    "lowercased",
			tags:    []string{"Work", "@Family"},
			symbols: "@",
			want:    []string{"@work", "@family"},
		},
		{
			name:    "empty queries dropped",
			tags:    []string{"", "work"},
			symbols: "@",
			want:    []string{"@work"},
		},
		{
			name:    "no symbols passes through",
			tags:    []string{"Work"},
			symbols: "",
			want:    []string{"Work"},
		},
		{
			name:    "multibyte leading symbol recognized",
			tags:    []string{"※work"},
			symbols: "※",
			want:    []string{"※work"},
		},
		{
			name:    "multibyte bare word gets symbol",
			tags:    []string{"Über"},
			symbols: "@",
			want:    []string{"@über"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.tags, tt.symbols)
			if !slices.Equal(got, tt.want) {
				t.Errorf("NormalizeTags(%v, %q) = %v, want %v", tt.tags, tt.symbols, got, tt.want)
			}
		})
	}
}

func TestLastN(t *testing.T) {
	entries := testEntries(t)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "zero returns all", n: 0, want: []string{"one @work", "two @home", "three @work @home"}},
		{name: "larger than length returns all", n: 10, want: []string{"one @work", "two @home", "three @work @home"}},
		{name: "last two", n: 2, want: []string{"two @home", "three @work @home"}},
		{name: "last one", n: 1, want: []string{"three @work @home"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titlesOf(LastN(entries, tt.n))
			if !slices.Equal(got, tt.want) {
				t.Errorf("LastN(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
