// Package htmlnode models the HTML fragment produced by the Markdown compiler.
//
// A Node is either a *Leaf (a text run or a self-contained element) or a
// *Parent (an element wrapping an ordered list of children). The set of
// variants is closed: Render switches on the concrete type.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rendering.
var (
	ErrMissingTag      = errors.New("missing tag")
	ErrMissingChildren = errors.New("missing children")
	ErrNilNode         = errors.New("nil node")
)

// Attr is a single HTML attribute. Attributes are kept as a slice so that
// serialization follows insertion order.
type Attr struct {
	Key   string
	Value string
}

// Node is implemented by *Leaf and *Parent only.
type Node interface {
	node()
}

// Leaf is a node without children. An empty Tag renders Value as raw text.
type Leaf struct {
	Tag   string
	Value string
	Attrs []Attr
}

// Parent wraps Children in Tag. A nil Children slice is treated as absent.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

func (*Leaf) node()   {}
func (*Parent) node() {}

// Compile-time interface checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// NewText returns an untagged leaf.
func NewText(value string) *Leaf {
	return &Leaf{Value: value}
}

// NewLeaf returns a tagged leaf.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// NewParent returns a parent node. Children are used as given.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// Render serializes n and its descendants. Values and attribute values are
// written verbatim, without escaping.
func Render(n Node) (string, error) {
	var sb strings.Builder
	if err := render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Render serializes the leaf.
func (l *Leaf) Render() (string, error) {
	return Render(l)
}

// Render serializes the parent and its descendants.
func (p *Parent) Render() (string, error) {
	return Render(p)
}

func render(sb *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Leaf:
		if n == nil {
			return ErrNilNode
		}
		renderLeaf(sb, n)
		return nil
	case *Parent:
		if n == nil {
			return ErrNilNode
		}
		return renderParent(sb, n)
	default:
		// Node is sealed: only an untyped nil gets here.
		return ErrNilNode
	}
}

func renderLeaf(sb *strings.Builder, l *Leaf) {
	if l.Tag == "" {
		sb.WriteString(l.Value)
		return
	}
	openTag(sb, l.Tag, l.Attrs)
	sb.WriteString(l.Value)
	closeTag(sb, l.Tag)
}

func renderParent(sb *strings.Builder, p *Parent) error {
	if p.Tag == "" {
		return ErrMissingTag
	}
	if p.Children == nil {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, p.Tag)
	}
	openTag(sb, p.Tag, p.Attrs)
	for _, child := range p.Children {
		if err := render(sb, child); err != nil {
			return err
		}
	}
	closeTag(sb, p.Tag)
	return nil
}

func openTag(sb *strings.Builder, tag string, attrs []Attr) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	sb.WriteString(AttrsToHTML(attrs))
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

// AttrsToHTML serializes attributes as ` key="value"` pairs in order.
func AttrsToHTML(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	return sb.String()
}
