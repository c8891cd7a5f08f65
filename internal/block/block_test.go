package block_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdsite/internal/block"
)

// ---------------------------------------------------------------------------
// TestSegment - Blank-line segmentation
// ---------------------------------------------------------------------------

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name: "three blocks",
			input: `
This is **bolded** paragraph

This is another paragraph with *italic* text and ` + "`code`" + ` here
This is the same paragraph on a new line

* This is a list
* with items
`,
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with *italic* text and `code` here\nThis is the same paragraph on a new line",
				"* This is a list\n* with items",
			},
		},
		{
			name:  "excessive newlines collapse",
			input: "\nfirst\n\n\n\n\nsecond\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   padded   \n\n\tnext\t",
			want:  []string{"padded", "next"},
		},
		{
			name:  "whitespace-only blocks dropped",
			input: "a\n\n   \n\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty document",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, block.Segment(tt.input)); diff != "" {
				t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify - Block type rules
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  block.Type
	}{
		{name: "paragraph", input: "This is a paragraph", want: block.Paragraph},
		{name: "heading 1", input: "# This is a heading", want: block.Heading},
		{name: "heading 2", input: "## This is a heading", want: block.Heading},
		{name: "heading 3", input: "### This is a heading", want: block.Heading},
		{name: "heading 4", input: "#### This is a heading", want: block.Heading},
		{name: "heading 5", input: "##### This is a heading", want: block.Heading},
		{name: "heading 6", input: "###### This is a heading", want: block.Heading},
		{name: "seven hashes", input: "####### This is a heading", want: block.Paragraph},
		{name: "hash without space", input: "#hashtag", want: block.Paragraph},
		{name: "code", input: "```code```", want: block.Code},
		{name: "fenced code", input: "```\nfmt.Println()\n```", want: block.Code},
		{name: "unclosed fence", input: "```\nfmt.Println()", want: block.Paragraph},
		{name: "quote", input: "> This is a quote", want: block.Quote},
		{name: "multi-line quote", input: "> one\n> two", want: block.Quote},
		{name: "partial quote", input: "> one\ntwo", want: block.Paragraph},
		{name: "star list", input: "* This is an unordered list\n* with items", want: block.UnorderedList},
		{name: "dash list", input: "- one\n- two", want: block.UnorderedList},
		{name: "mixed markers", input: "* one\n- two", want: block.Paragraph},
		{name: "marker without space", input: "*one\n*two", want: block.Paragraph},
		{name: "ordered list", input: "1. This is an ordered list\n2. with items", want: block.OrderedList},
		{name: "ordered list past nine", input: "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j", want: block.OrderedList},
		{name: "ordered wrong order", input: "2. This is an ordered list\n1. with items", want: block.Paragraph},
		{name: "ordered gap", input: "1. a\n3. b", want: block.Paragraph},
		{name: "ordered not starting at one", input: "0. a\n1. b", want: block.Paragraph},
		{name: "plain text", input: "no markdown control characters", want: block.Paragraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := block.Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"# a", 1},
		{"### a", 3},
		{"###### a", 6},
		{"####### a", 0},
		{"#a", 0},
		{"a # b", 0},
	}

	for _, tt := range tests {
		if got := block.HeadingLevel(tt.input); got != tt.want {
			t.Errorf("HeadingLevel(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	if got := block.OrderedList.String(); got != "ordered_list" {
		t.Errorf("OrderedList.String() = %q, want %q", got, "ordered_list")
	}
}
