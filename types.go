package mdsite

import (
	"path/filepath"
	"strings"
)

// Input contains the data for a single page conversion.
type Input struct {
	Markdown   string // Required: page source, optionally starting with front matter
	SourcePath string // Optional: origin of Markdown, passed to the title fallback
}

// Page is the result of a conversion.
type Page struct {
	Title    string         // Front matter title, else the first "# " heading
	Content  string         // Rendered body fragment
	HTML     string         // Content and Title substituted into the page template
	Draft    bool           // Front matter "draft"
	Template string         // Template name or path the page was rendered with
	Params   map[string]any // Front matter keys without a dedicated field
}

// TitleFunc supplies a title for pages that have none.
type TitleFunc func(Input) string

// converterConfig holds configuration applied by options.
type converterConfig struct {
	engine        string
	template      string
	templateDir   string
	titleFallback TitleFunc
}

// Option configures a Converter.
type Option func(*converterConfig)

// WithEngine selects the Markdown engine: "builtin" (default) or "goldmark".
func WithEngine(name string) Option {
	return func(c *converterConfig) {
		c.engine = name
	}
}

// WithTemplate sets the default page template by name or path.
// Names are looked up in the template directory, then among the embedded
// templates. Values containing a path separator are read from disk.
func WithTemplate(nameOrPath string) Option {
	return func(c *converterConfig) {
		c.template = nameOrPath
	}
}

// WithTemplateDir sets the directory searched for named templates.
func WithTemplateDir(dir string) Option {
	return func(c *converterConfig) {
		c.templateDir = dir
	}
}

// WithTitleFallback supplies titles for pages without a front matter title
// or a "# " heading. Returning "" keeps ErrNoTitle.
func WithTitleFallback(fn TitleFunc) Option {
	return func(c *converterConfig) {
		c.titleFallback = fn
	}
}

// TitleFromFilename derives a title from a file name: the extension is
// dropped and dashes and underscores become spaces.
// "docs/getting-started.md" gives "getting started".
func TitleFromFilename(in Input) string {
	if in.SourcePath == "" {
		return ""
	}
	base := filepath.Base(in.SourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(base))
}
