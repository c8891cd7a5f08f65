package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-mdsite/internal/block"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
)

// ErrNoTitle is returned when a document has no "# " heading block.
var ErrNoTitle = errors.New("no title found")

// RootTag wraps all compiled blocks.
const RootTag = "div"

// RenderDocument compiles a Markdown document and serializes it to HTML.
// Any invalid block aborts the whole document.
func RenderDocument(doc string) (string, error) {
	root, err := MarkdownToHTMLNode(doc)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// MarkdownToHTMLNode compiles every block of doc into a child of a single
// root container, preserving document order.
func MarkdownToHTMLNode(doc string) (*htmlnode.Parent, error) {
	blocks := block.Segment(doc)
	children := make([]htmlnode.Node, 0, len(blocks))
	for _, b := range blocks {
		node, err := BlockToHTMLNode(b)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return htmlnode.NewParent(RootTag, children), nil
}

// BlockToHTMLNode classifies a single trimmed block and compiles it.
func BlockToHTMLNode(b string) (htmlnode.Node, error) {
	switch typ := block.Classify(b); typ {
	case block.Heading:
		return headingToHTMLNode(b)
	case block.Code:
		return codeToHTMLNode(b)
	case block.Quote:
		return quoteToHTMLNode(b)
	case block.UnorderedList:
		return listToHTMLNode(b, "ul", func(line string) string { return dropPrefix(line, 2) })
	case block.OrderedList:
		return listToHTMLNode(b, "ol", func(line string) string {
			_, item, _ := strings.Cut(line, " ")
			return item
		})
	case block.Paragraph:
		return textToParent("p", joinLines(strings.Split(b, "\n")))
	default:
		return nil, fmt.Errorf("unsupported block type %v", typ)
	}
}

// ExtractTitle returns the text of the first block starting with "# ".
func ExtractTitle(doc string) (string, error) {
	for _, b := range block.Segment(doc) {
		if title, ok := strings.CutPrefix(b, "# "); ok {
			return strings.TrimSpace(title), nil
		}
	}
	return "", ErrNoTitle
}

func headingToHTMLNode(b string) (htmlnode.Node, error) {
	level := block.HeadingLevel(b)
	return textToParent(fmt.Sprintf("h%d", level), b[level+1:])
}

// codeToHTMLNode strips exactly one fence from each end. Content is still
// split into inline spans.
func codeToHTMLNode(b string) (htmlnode.Node, error) {
	fence := len(block.CodeFence)
	var text string
	if len(b) >= 2*fence {
		text = b[fence : len(b)-fence]
	}
	code, err := textToParent("code", text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{code}), nil
}

// quoteToHTMLNode drops the marker and the character after it on each line.
func quoteToHTMLNode(b string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	for i, l := range lines {
		lines[i] = dropQuoteMarker(l)
	}
	return textToParent("blockquote", joinLines(lines))
}

func listToHTMLNode(b, tag string, item func(string) string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, l := range lines {
		li, err := textToParent("li", item(l))
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return htmlnode.NewParent(tag, items), nil
}

func textToParent(tag, text string) (*htmlnode.Parent, error) {
	children, err := textToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

func textToChildren(text string) ([]htmlnode.Node, error) {
	spans, err := inline.Split(text)
	if err != nil {
		return nil, err
	}
	return inline.ToHTMLNodes(spans)
}

func joinLines(lines []string) string {
	return strings.Join(lines, " ")
}

// dropQuoteMarker removes ">" and the one character after it, whatever its
// encoded width.
func dropQuoteMarker(l string) string {
	rest := strings.TrimPrefix(l, block.QuoteMarker)
	if rest == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(rest)
	return rest[size:]
}

// dropPrefix slices off n bytes; callers pass ASCII list markers only.
func dropPrefix(s string, n int) string {
	if len(s) <= n {
		return ""
	}
	return s[n:]
}
