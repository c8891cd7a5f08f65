package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+templateExt), []byte(content), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateAssetName
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "default", false},
		{"with dash", "blog-post", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"extension", "default.html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_Default(t *testing.T) {
	t.Parallel()

	got, err := NewEmbeddedLoader().LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	for _, want := range []string{"{{ Title }}", "{{ Content }}"} {
		if !strings.Contains(got, want) {
			t.Errorf("default template missing %q", want)
		}
	}
}

func TestEmbeddedLoader_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewEmbeddedLoader().LoadTemplate("missing")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestEmbeddedLoader_Names(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().Names()
	if len(names) == 0 || names[0] != DefaultTemplateName {
		t.Errorf("Names() = %v, want to contain %q", names, DefaultTemplateName)
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader_InvalidBasePath(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope"), file} {
		if _, err := NewFilesystemLoader(path); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(%q) = %v, want ErrInvalidBasePath", path, err)
		}
	}
}

func TestFilesystemLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "post", "<h1>{{ Title }}</h1>{{ Content }}")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	got, err := loader.LoadTemplate("post")
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	if got != "<h1>{{ Title }}</h1>{{ Content }}" {
		t.Errorf("LoadTemplate = %q", got)
	}

	if _, err := loader.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("missing template err = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadTemplate("../post"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("traversal err = %v, want ErrInvalidAssetName", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	writeTemplate(t, outside, "secret", "secret")
	if err := os.Symlink(filepath.Join(outside, "secret.html"), filepath.Join(dir, "link.html")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadTemplate("link"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("err = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolver
// ---------------------------------------------------------------------------

func TestResolver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "default", "custom {{ Title }} {{ Content }}")

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.LoadTemplate("default")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "custom") {
		t.Errorf("custom template should win, got %q", got)
	}

	empty, err := NewResolver(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	got, err = empty.LoadTemplate("default")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<!DOCTYPE html>") {
		t.Errorf("expected embedded fallback, got %q", got)
	}

	if _, err := empty.LoadTemplate("nope"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestNewResolver_BadDir(t *testing.T) {
	t.Parallel()

	if _, err := NewResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("err = %v, want ErrInvalidBasePath", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolve
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	if err := os.WriteFile(path, []byte("from path"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewEmbeddedLoader()

	got, err := Resolve(loader, path)
	if err != nil || got != "from path" {
		t.Errorf("Resolve(path) = %q, %v", got, err)
	}

	got, err = Resolve(loader, "")
	if err != nil || !strings.Contains(got, "{{ Content }}") {
		t.Errorf("Resolve(\"\") = %q, %v", got, err)
	}

	if _, err := Resolve(loader, filepath.Join(dir, "gone.html")); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("missing path err = %v, want ErrTemplateNotFound", err)
	}
}
