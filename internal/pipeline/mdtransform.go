package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a malformed front matter block.
var ErrFrontMatter = errors.New("invalid front matter")

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// FrontMatter holds the optional metadata block at the top of a page.
type FrontMatter struct {
	Title    string         `yaml:"title" toml:"title" json:"title"`
	Template string         `yaml:"template" toml:"template" json:"template"`
	Draft    bool           `yaml:"draft" toml:"draft" json:"draft"`
	Params   map[string]any `yaml:",inline" toml:"-" json:"-"`
}

// Document is a page source split into metadata and Markdown body.
type Document struct {
	FrontMatter FrontMatter
	Body        string
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	Preprocess(ctx context.Context, content string) (*Document, error)
}

// Preprocessor normalizes line endings and splits off front matter.
type Preprocessor struct{}

var _ MarkdownPreprocessor = (*Preprocessor)(nil)

// Preprocess prepares raw page source for conversion. Content without a
// front matter block is returned whole as the body.
func (p *Preprocessor) Preprocess(ctx context.Context, content string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content = NormalizeLineEndings(content)

	var fm FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &fm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	return &Document{FrontMatter: fm, Body: string(body)}, nil
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
