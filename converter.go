package mdsite

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Converter orchestrates the Markdown-to-page pipeline.
// Create with NewConverter and use Convert for each page.
type Converter struct {
	cfg          converterConfig
	loader       assets.TemplateLoader
	preprocessor pipeline.MarkdownPreprocessor
	html         pipeline.HTMLConverter
	injector     pipeline.TemplateInjector

	mu        sync.RWMutex
	templates map[string]string // loaded templates by name or path
}

// NewConverter creates a Converter. The default template is loaded and
// checked up front so a bad template fails here rather than on every page.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		preprocessor: &pipeline.Preprocessor{},
		injector:     &pipeline.TemplateInjection{},
		templates:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(&c.cfg)
	}

	html, err := pipeline.NewHTMLConverter(c.cfg.engine)
	if err != nil {
		return nil, err
	}
	c.html = html

	resolver, err := assets.NewResolver(c.cfg.templateDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.loader = resolver

	if _, err := c.template(c.cfg.template); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert renders one page. Front matter "template" overrides the
// converter's default template for that page.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	doc, err := c.preprocessor.Preprocess(ctx, input.Markdown)
	if err != nil {
		return nil, err
	}

	title, err := c.resolveTitle(doc, input)
	if err != nil {
		return nil, err
	}

	content, err := c.html.ToHTML(ctx, doc.Body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	tmplName := c.cfg.template
	if doc.FrontMatter.Template != "" {
		tmplName = doc.FrontMatter.Template
	}
	tmpl, err := c.template(tmplName)
	if err != nil {
		return nil, err
	}

	out, err := c.injector.InjectPage(ctx, tmpl, pipeline.PageData{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("applying template: %w", err)
	}

	if tmplName == "" {
		tmplName = assets.DefaultTemplateName
	}
	return &Page{
		Title:    title,
		Content:  content,
		HTML:     out,
		Draft:    doc.FrontMatter.Draft,
		Template: tmplName,
		Params:   doc.FrontMatter.Params,
	}, nil
}

// resolveTitle picks front matter, then the first heading, then the fallback.
func (c *Converter) resolveTitle(doc *pipeline.Document, input Input) (string, error) {
	if doc.FrontMatter.Title != "" {
		return doc.FrontMatter.Title, nil
	}

	title, err := pipeline.ExtractTitle(doc.Body)
	if err == nil {
		return title, nil
	}
	if !errors.Is(err, pipeline.ErrNoTitle) || c.cfg.titleFallback == nil {
		return "", err
	}

	if fallback := c.cfg.titleFallback(input); fallback != "" {
		return fallback, nil
	}
	return "", err
}

// template returns the named template, loading and validating it once.
func (c *Converter) template(nameOrPath string) (string, error) {
	c.mu.RLock()
	tmpl, ok := c.templates[nameOrPath]
	c.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := assets.Resolve(c.loader, nameOrPath)
	if err != nil {
		return "", fmt.Errorf("loading template: %w", err)
	}
	if err := pipeline.ValidateTemplate(tmpl); err != nil {
		return "", fmt.Errorf("template %q: %w", nameOrPath, err)
	}

	c.mu.Lock()
	c.templates[nameOrPath] = tmpl
	c.mu.Unlock()
	return tmpl, nil
}
