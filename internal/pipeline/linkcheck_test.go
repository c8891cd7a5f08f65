package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFindBrokenLinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"))
	writeFile(t, filepath.Join(root, "images", "cat.png"))
	writeFile(t, filepath.Join(root, "blog", "index.html"))
	writeFile(t, filepath.Join(root, "blog", "post.html"))

	page := filepath.Join(root, "blog", "post.html")
	content := `<html><body>
<a href="index.html">sibling</a>
<a href="../images/cat.png">up</a>
<a href="/blog/">dir with index</a>
<a href="/images/">dir without index</a>
<a href="missing.html">missing</a>
<a href="https://go.dev">external</a>
<a href="#top">anchor</a>
<a href="post.html#section">self with fragment</a>
<a href="../../outside.html">escape</a>
<img src="/images/cat.png">
<img src="/images/dog.png">
<img src="data:image/png;base64,AAAA">
</body></html>`

	got, err := pipeline.FindBrokenLinks(content, page, root)
	if err != nil {
		t.Fatalf("FindBrokenLinks() unexpected error: %v", err)
	}

	want := []pipeline.BrokenLink{
		{Page: page, Tag: "a", Target: "/images/"},
		{Page: page, Tag: "a", Target: "missing.html"},
		{Page: page, Tag: "a", Target: "../../outside.html"},
		{Page: page, Tag: "img", Target: "/images/dog.png"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindBrokenLinks() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindBrokenLinks_Fragment(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	got, err := pipeline.FindBrokenLinks(`<div><p><a href="nope.html">x</a></p></div>`, filepath.Join(root, "index.html"), root)
	if err != nil {
		t.Fatalf("FindBrokenLinks() unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Target != "nope.html" {
		t.Errorf("FindBrokenLinks() = %v, want one broken link to nope.html", got)
	}
}
