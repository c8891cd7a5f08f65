package mdsite

import "github.com/alnah/go-mdsite/internal/pipeline"

// RenderDocument converts a Markdown document into a single <div> containing
// one element per block.
func RenderDocument(markdown string) (string, error) {
	return pipeline.RenderDocument(markdown)
}

// ExtractTitle returns the text after "# " of the first block that starts
// with it, trimmed of surrounding whitespace. "## " does not count.
// Returns ErrNoTitle when no block qualifies.
func ExtractTitle(markdown string) (string, error) {
	return pipeline.ExtractTitle(markdown)
}
