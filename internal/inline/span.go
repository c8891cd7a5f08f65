// Package inline splits a run of Markdown text into typed spans.
//
// Splitting is a fixed sequence of passes (bold, italic, code, images,
// links). Each pass only rewrites spans that are still plain, so earlier
// passes take precedence over later ones.
package inline

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/htmlnode"
)

// Sentinel errors for span conversion.
var (
	ErrMissingURL      = errors.New("invalid text span: missing url")
	ErrUnexpectedURL   = errors.New("invalid text span: unexpected url")
	ErrUnknownSpanType = errors.New("invalid text span: unknown type")
)

// SpanType is the inline role of a span.
type SpanType int

const (
	Plain SpanType = iota
	Bold
	Italic
	Code
	Link
	Image
)

var spanTypeNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

// String returns the lowercase name of the type.
func (t SpanType) String() string {
	if t < 0 || int(t) >= len(spanTypeNames) {
		return fmt.Sprintf("SpanType(%d)", int(t))
	}
	return spanTypeNames[t]
}

// Span is a run of text with a single inline role. Link and Image spans
// carry a URL, which may be empty: HasURL tells an empty URL from none.
type Span struct {
	Text   string
	Type   SpanType
	URL    string
	HasURL bool
}

// Text returns a plain span.
func Text(s string) Span { return Span{Text: s, Type: Plain} }

// Ref returns a span carrying url, for Link and Image.
func Ref(typ SpanType, text, url string) Span {
	return Span{Text: text, Type: typ, URL: url, HasURL: true}
}

// String implements fmt.Stringer for test failure output.
func (s Span) String() string {
	if s.HasURL {
		return fmt.Sprintf("%s:%q(%s)", s.Type, s.Text, s.URL)
	}
	return fmt.Sprintf("%s:%q", s.Type, s.Text)
}

// Validate checks that a URL is present exactly when the type requires it.
// An empty URL still counts as present.
func (s Span) Validate() error {
	switch s.Type {
	case Plain, Bold, Italic, Code:
		if s.HasURL || s.URL != "" {
			return fmt.Errorf("%w: %s span %q", ErrUnexpectedURL, s.Type, s.Text)
		}
	case Link, Image:
		if !s.HasURL {
			return fmt.Errorf("%w: %s span %q", ErrMissingURL, s.Type, s.Text)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownSpanType, int(s.Type))
	}
	return nil
}

// ToHTMLNode converts the span into a leaf node.
func (s Span) ToHTMLNode() (*htmlnode.Leaf, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch s.Type {
	case Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Value: s.URL}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: s.URL},
			htmlnode.Attr{Key: "alt", Value: s.Text},
		), nil
	default:
		return htmlnode.NewText(s.Text), nil
	}
}

// ToHTMLNodes converts every span, stopping at the first invalid one.
func ToHTMLNodes(spans []Span) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		leaf, err := s.ToHTMLNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}
