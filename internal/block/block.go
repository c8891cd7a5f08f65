// Package block segments a Markdown document into blank-line separated
// blocks and classifies each block's structural type.
package block

import (
	"regexp"
	"strconv"
	"strings"
)

// Type is the structural type of a block.
type Type int

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

var typeNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	Code:          "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Syntax markers shared with the compiler.
const (
	CodeFence   = "```"
	QuoteMarker = ">"
	MaxHeading  = 6
)

var (
	blankLines     = regexp.MustCompile(`\n{2,}`)
	headingPattern = regexp.MustCompile(`^#{1,6} `)
)

// Segment splits doc on runs of two or more newlines, trims each block and
// drops blocks that end up empty.
func Segment(doc string) []string {
	parts := blankLines.Split(doc, -1)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			blocks = append(blocks, p)
		}
	}
	return blocks
}

// Classify returns the type of a trimmed block. The first matching rule
// wins; line-based types require every line to conform.
func Classify(block string) Type {
	switch {
	case HeadingLevel(block) > 0:
		return Heading
	case isCode(block):
		return Code
	}

	lines := strings.Split(block, "\n")
	switch {
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, QuoteMarker) }):
		return Quote
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, "* ") }),
		allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, "- ") }):
		return UnorderedList
	case allLines(lines, func(i int, l string) bool { return strings.HasPrefix(l, OrderedMarker(i+1)) }):
		return OrderedList
	default:
		return Paragraph
	}
}

// HeadingLevel returns the number of leading '#' when block is a heading,
// and 0 otherwise.
func HeadingLevel(block string) int {
	if !headingPattern.MatchString(block) {
		return 0
	}
	return strings.IndexByte(block, ' ')
}

// OrderedMarker returns the list marker expected on line n (1-based).
func OrderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}

func isCode(block string) bool {
	return strings.HasPrefix(block, CodeFence) && strings.HasSuffix(block, CodeFence)
}

func allLines(lines []string, ok func(i int, line string) bool) bool {
	for i, l := range lines {
		if !ok(i, l) {
			return false
		}
	}
	return true
}
