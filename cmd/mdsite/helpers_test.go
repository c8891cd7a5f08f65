package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv returns an Environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return now },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeTree creates files under root from a relative path -> content map.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// site is a temporary site layout.
type site struct {
	root, content, static, output string
}

func newSite(t *testing.T, pages map[string]string) site {
	t.Helper()
	root := t.TempDir()
	s := site{
		root:    root,
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		output:  filepath.Join(root, "public"),
	}
	writeTree(t, s.content, pages)
	return s
}

// args returns build flags pointing at the site directories.
func (s site) args(extra ...string) []string {
	return append([]string{"--content", s.content, "--static", s.static, "--output", s.output}, extra...)
}
