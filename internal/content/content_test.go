package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/coderibbon/internal/ribbon"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestOpenHighlightsAndTracksDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")
	store := NewStore(Options{})

	doc, err := store.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if doc.Title != "main.go" {
		t.Fatalf("expected title main.go, got %q", doc.Title)
	}
	if len(doc.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(doc.Lines), doc.Lines)
	}
	if got := strings.TrimSpace(ansi.Strip(doc.Lines[0])); got != "package main" {
		t.Fatalf("expected first line to read %q, got %q", "package main", got)
	}
	if store.OpenCount() != 1 {
		t.Fatalf("expected 1 open document, got %d", store.OpenCount())
	}

	store.Detach(doc)
	store.Detach(doc)
	store.Detach("not a document")
	if store.OpenCount() != 0 {
		t.Fatalf("expected document released, got %d", store.OpenCount())
	}
}

func TestOpenRejectsBinaryLargeAndDirectories(t *testing.T) {
	dir := t.TempDir()
	binary := writeFile(t, dir, "blob.bin", "ab\x00cd")
	large := writeFile(t, dir, "large.txt", strings.Repeat("x", 64))
	store := NewStore(Options{MaxBytes: 32})

	if _, err := store.Open(binary); !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
	if _, err := store.Open(large); err == nil || !strings.Contains(err.Error(), "limit") {
		t.Fatalf("expected size limit error, got %v", err)
	}
	if _, err := store.Open(dir); err == nil {
		t.Fatalf("expected directory to be rejected")
	}
	if _, err := store.Open(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if store.OpenCount() != 0 {
		t.Fatalf("expected nothing tracked after failures")
	}
}

func TestStoreReceivesRibbonDetachNotifications(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(Options{Style: "github"})
	r := ribbon.New(store)
	doc, err := store.Open(writeFile(t, dir, "a.txt", "alpha\n"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := r.SetContent(doc); err != nil {
		t.Fatalf("set content: %v", err)
	}
	if _, err := r.ClearPatch(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.OpenCount() != 0 {
		t.Fatalf("expected clear to release the document")
	}
}

func TestListFilesSkipsHiddenAndVendoredDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.go", "")
	writeFile(t, dir, "a/z.txt", "")
	writeFile(t, dir, ".git/config", "")
	writeFile(t, dir, "node_modules/x/index.js", "")
	writeFile(t, dir, ".cache/tmp", "")

	files, err := ListFiles(dir, 0)
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	var rels []string
	for _, f := range files {
		rels = append(rels, f.Rel)
		if !filepath.IsAbs(f.Abs) {
			t.Fatalf("expected absolute path, got %q", f.Abs)
		}
	}
	if strings.Join(rels, ",") != "a/z.txt,b.go" {
		t.Fatalf("unexpected files %v", rels)
	}

	limited, err := ListFiles(dir, 1)
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to cap results, got %d", len(limited))
	}
}

func TestListFilesMissingRoot(t *testing.T) {
	if _, err := ListFiles(filepath.Join(t.TempDir(), "nope"), 0); err == nil {
		t.Fatalf("expected error for missing root")
	}
}
