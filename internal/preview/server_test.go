package preview

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "blog"), 0o750); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"index.html":      "<h1>Home</h1>",
		"blog/index.html": "<h1>Blog</h1>",
		"index.css":       "body{}",
	}
	for rel, content := range files {
		if err := os.WriteFile(filepath.Join(root, rel), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// ---------------------------------------------------------------------------
// TestServer
// ---------------------------------------------------------------------------

func TestNewServer_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := NewServer(filepath.Join(t.TempDir(), "public"), nil)
	if !errors.Is(err, ErrRootMissing) {
		t.Errorf("err = %v, want ErrRootMissing", err)
	}
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(newSite(t), nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/healthz", http.StatusOK, `{"status":"ok"}`},
		{"/", http.StatusOK, "<h1>Home</h1>"},
		{"/blog/", http.StatusOK, "<h1>Blog</h1>"},
		{"/index.css", http.StatusOK, "body{}"},
		{"/missing.html", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := get(t, srv, tt.path)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want containing %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	srv, err := NewServer(newSite(t), log)
	if err != nil {
		t.Fatal(err)
	}
	get(t, srv, "/index.css")
	get(t, srv, "/nope")

	out := buf.String()
	for _, want := range []string{"path=/index.css", "status=200", "level=WARN", "status=404", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRun
// ---------------------------------------------------------------------------

func TestRun_ServesUntilCanceled(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(newSite(t), nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, "127.0.0.1:0", func(a net.Addr) { addrCh <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-done:
		t.Fatalf("Run returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "ok") {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_BadAddr(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(newSite(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := srv.Run(context.Background(), "not-an-addr", nil); err == nil {
		t.Error("expected listen error")
	}
}
