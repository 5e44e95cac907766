package journal

import "testing"

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "short text unchanged",
			text:  "a b c",
			width: 79,
			want:  "a b c",
		},
		{
			name:  "wraps at word boundary",
			text:  "aaa bbb ccc",
			width: 7,
			want:  "aaa bbb\nccc",
		},
		{
			name:  "whitespace at break dropped",
			text:  "aaa   bbb",
			width: 4,
			want:  "aaa\nbbb",
		},
		{
			name:  "no trailing space before break",
			text:  "hello world foo",
			width: 12,
			want:  "hello world\nfoo",
		},
		{
			name:  "trailing whitespace dropped",
			text:  "aaa bbb  ",
			width: 79,
			want:  "aaa bbb",
		},
		{
			name:  "long word hard broken",
			text:  "abcdefghij",
			width: 4,
			want:  "abcd\nefgh\nij",
		},
		{
			name:  "zero width disables wrapping",
			text:  "aaa bbb ccc",
			width: 0,
			want:  "aaa bbb ccc",
		},
		{
			name:  "empty text",
			text:  "",
			width: 10,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fill(tt.text, tt.width)
			if got != tt.want {
				t.Errorf("fill(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestFillQuoted(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "short line gets prefix",
			text:  "hello world",
			width: 79,
			want:  "| hello world",
		},
		{
			name:  "inner whitespace preserved",
			text:  "a  b   c",
			width: 79,
			want:  "| a  b   c",
		},
		{
			name:  "leading whitespace preserved",
			text:  "    indented text",
			width: 79,
			want:  "|     indented text",
		},
		{
			name:  "wrapped continuation keeps prefix",
			text:  "aaa bbb ccc",
			width: 9,
			want:  "| aaa bbb\n|  ccc",
		},
		{
			name:  "blank-ish line keeps prefix",
			text:  " ",
			width: 79,
			want:  "|  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fillQuoted(tt.text, tt.width)
			if got != tt.want {
				t.Errorf("fillQuoted(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
