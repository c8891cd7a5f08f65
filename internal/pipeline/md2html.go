package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Engine names accepted by NewHTMLConverter.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine is returned for an engine name outside Engines.
var ErrUnknownEngine = errors.New("unknown markdown engine")

// Engines lists the supported engine names.
var Engines = []string{EngineBuiltin, EngineGoldmark}

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*BuiltinConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)

// NewHTMLConverter returns the converter registered under name.
// An empty name selects the builtin engine.
func NewHTMLConverter(name string) (HTMLConverter, error) {
	switch name {
	case "", EngineBuiltin:
		return &BuiltinConverter{}, nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// BuiltinConverter renders the supported Markdown subset with RenderDocument.
type BuiltinConverter struct{}

// ToHTML returns the compiled document wrapped in its root container.
// Syntax and structural errors are wrapped with ErrHTMLConversion and keep
// their own identity for errors.Is.
func (c *BuiltinConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := RenderDocument(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	return out, nil
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go), for
// documents that need more than the builtin subset.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the page template controls colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
