package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSyntax is matched by every *SyntaxError.
var ErrInvalidSyntax = errors.New("invalid markdown syntax")

// SyntaxError reports an unbalanced inline delimiter.
type SyntaxError struct {
	Delimiter string
	Text      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid markdown syntax: unbalanced %q in %q", e.Delimiter, e.Text)
}

// Is makes errors.Is(err, ErrInvalidSyntax) true for syntax errors.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrInvalidSyntax
}

// Delimiters applied by Split, in order.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "*"
	CodeDelimiter   = "`"
)

// Label and target groups are non-greedy: the first "](" and ")" close them.
var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Split turns raw inline text into typed spans.
func Split(text string) ([]Span, error) {
	spans := []Span{Text(text)}

	var err error
	for _, pass := range []struct {
		delim string
		typ   SpanType
	}{
		{BoldDelimiter, Bold},
		{ItalicDelimiter, Italic},
		{CodeDelimiter, Code},
	} {
		spans, err = SplitDelimiter(spans, pass.delim, pass.typ)
		if err != nil {
			return nil, err
		}
	}

	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits every plain span on delim. Parts alternate between
// plain and typ, starting with plain; empty parts are dropped. Plain spans
// that do not contain delim pass through unchanged.
func SplitDelimiter(spans []Span, delim string, typ SpanType) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain || !strings.Contains(s.Text, delim) {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Text, delim)
		if len(parts)%2 == 0 {
			return nil, &SyntaxError{Delimiter: delim, Text: s.Text}
		}

		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, Text(part))
			} else {
				out = append(out, Span{Text: part, Type: typ})
			}
		}
	}
	return out, nil
}

// Reference is a label/target pair found in Markdown text.
type Reference struct {
	Label  string
	Target string
}

// ExtractImages returns every ![alt](url) in text, in order.
func ExtractImages(text string) []Reference {
	return extract(imagePattern, text)
}

// ExtractLinks returns every [text](url) in text, in order.
// Image syntax also matches; run image extraction first.
func ExtractLinks(text string) []Reference {
	return extract(linkPattern, text)
}

func extract(re *regexp.Regexp, text string) []Reference {
	matches := re.FindAllStringSubmatch(text, -1)
	refs := make([]Reference, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Reference{Label: m[1], Target: m[2]})
	}
	return refs
}

// SplitImages extracts image syntax from plain spans.
func SplitImages(spans []Span) []Span {
	return splitRefs(spans, ExtractImages, "!", Image)
}

// SplitLinks extracts link syntax from plain spans.
func SplitLinks(spans []Span) []Span {
	return splitRefs(spans, ExtractLinks, "", Link)
}

// splitRefs replaces each extracted reference inside plain spans with a typ
// span. The references come back in text order, so each one is the first
// occurrence of its literal syntax after the previous one. An empty target
// still makes a span.
func splitRefs(spans []Span, extractFn func(string) []Reference, prefix string, typ SpanType) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain {
			out = append(out, s)
			continue
		}

		refs := extractFn(s.Text)
		if len(refs) == 0 {
			out = append(out, s)
			continue
		}

		rest := s.Text
		for _, r := range refs {
			literal := prefix + "[" + r.Label + "](" + r.Target + ")"
			i := strings.Index(rest, literal)
			if before := rest[:i]; before != "" {
				out = append(out, Text(before))
			}
			out = append(out, Ref(typ, r.Label, r.Target))
			rest = rest[i+len(literal):]
		}
		if rest != "" {
			out = append(out, Text(rest))
		}
	}
	return out
}
