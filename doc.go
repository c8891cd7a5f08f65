// Package mdsite converts Markdown pages into HTML pages.
//
// # Quick Start
//
// Render a document fragment directly:
//
//	html, err := mdsite.RenderDocument("# Hello\n\nThis is **bold**.")
//	// <div><h1>Hello</h1><p>This is <b>bold</b>.</p></div>
//
// Or publish a full page through a template:
//
//	conv, err := mdsite.NewConverter(mdsite.WithTemplate("./templates/page.html"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page, err := conv.Convert(ctx, mdsite.Input{Markdown: src})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(page.HTML), 0o644)
//
// # Supported Markdown
//
// The builtin engine handles a deliberately small subset. Blocks are
// separated by blank lines and classified as one of:
//
//   - heading: "# " through "###### "
//   - code: a block starting and ending with ```
//   - quote: every line starts with ">"
//   - unordered list: every line starts with "* " or "- "
//   - ordered list: lines numbered "1. ", "2. ", ... in sequence
//   - paragraph: anything else
//
// Inside blocks, **bold**, *italic*, `code`, [links](url) and
// ![images](src) are recognized. An unclosed delimiter is a *SyntaxError.
// Text is never HTML-escaped.
//
// The goldmark engine (WithEngine("goldmark")) renders full CommonMark with
// GitHub extensions and syntax highlighting instead.
//
// # Pages
//
// Convert splits optional YAML front matter off the source, picks the title
// (front matter "title", else the first block starting with "# "), renders
// the body and substitutes the literal placeholders {{ Title }} and
// {{ Content }} in the page template.
//
// # Error Handling
//
// Sentinel errors are exported for errors.Is checks:
//
//	if errors.Is(err, mdsite.ErrInvalidSyntax) { ... }
//	if errors.Is(err, mdsite.ErrNoTitle) { ... }
//
// # Thread Safety
//
// A Converter may be shared by concurrent goroutines.
package mdsite
