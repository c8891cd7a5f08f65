// Package pipeline implements the Markdown-to-HTML page pipeline.
//
// The stages are:
//   - Preprocessing (line ending normalization, front matter)
//   - Block compilation of the builtin Markdown subset into an htmlnode tree
//   - Title extraction from the first "# " heading
//   - Optional conversion through goldmark for full CommonMark
//   - Page template substitution ({{ Title }} and {{ Content }})
//   - Link checking of the published output
//
// Everything up to template substitution is a pure function of its input and
// safe for concurrent use.
package pipeline
