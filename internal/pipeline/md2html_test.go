package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/inline"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestNewHTMLConverter - Engine selection
// ---------------------------------------------------------------------------

func TestNewHTMLConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		engine  string
		wantErr error
	}{
		{name: "default", engine: ""},
		{name: "builtin", engine: pipeline.EngineBuiltin},
		{name: "goldmark", engine: pipeline.EngineGoldmark},
		{name: "unknown", engine: "pandoc", wantErr: pipeline.ErrUnknownEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := pipeline.NewHTMLConverter(tt.engine)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewHTMLConverter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHTMLConverter() unexpected error: %v", err)
			}
			if conv == nil {
				t.Fatal("NewHTMLConverter() returned nil converter")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuiltinConverter
// ---------------------------------------------------------------------------

func TestBuiltinConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := &pipeline.BuiltinConverter{}
	got, err := conv.ToHTML(context.Background(), "# Title\n\nBody text")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}
	if want := "<div><h1>Title</h1><p>Body text</p></div>"; got != want {
		t.Errorf("ToHTML() = %q, want %q", got, want)
	}
}

func TestBuiltinConverter_SyntaxError(t *testing.T) {
	t.Parallel()

	conv := &pipeline.BuiltinConverter{}
	_, err := conv.ToHTML(context.Background(), "**open")
	if !errors.Is(err, pipeline.ErrHTMLConversion) {
		t.Errorf("error = %v, want %v", err, pipeline.ErrHTMLConversion)
	}
	if !errors.Is(err, inline.ErrInvalidSyntax) {
		t.Errorf("error = %v, want %v", err, inline.ErrInvalidSyntax)
	}
}

func TestBuiltinConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&pipeline.BuiltinConverter{}).ToHTML(ctx, "text")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want %v", err, context.Canceled)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading with auto id",
			input:    "# Hello World",
			contains: []string{`<h1 id="hello-world">Hello World</h1>`},
		},
		{
			name:     "unbalanced emphasis is not an error",
			input:    "a*b",
			contains: []string{"<p>a*b</p>"},
		},
		{
			name:     "gfm table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "highlighted code uses classes",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, want substring %q", got, want)
				}
			}
		})
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.NewGoldmarkConverter().ToHTML(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want %v", err, context.Canceled)
	}
}
