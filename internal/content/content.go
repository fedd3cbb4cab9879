// Package content hosts the editor documents shown inside ribbon patches.
// Documents are instantiated from files on demand and released when the
// ribbon reports that a patch no longer shows them.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/atomicstack/coderibbon/internal/logging/events"
	"github.com/atomicstack/coderibbon/internal/ribbon"
)

const (
	// DefaultStyle is the chroma style used when none is configured.
	DefaultStyle    = "monokai"
	defaultMaxBytes = 1 << 20
	formatter       = "terminal256"
)

// ErrNotText is returned for files that look binary.
var ErrNotText = errors.New("not a text file")

// Document is the content handle stored in a patch.
type Document struct {
	Path  string
	Title string
	// Lines holds the highlighted source, one entry per line, with ANSI
	// escapes embedded.
	Lines []string
}

// Options tune how documents are loaded.
type Options struct {
	Style    string
	MaxBytes int64
}

// Store instantiates documents and tracks which ones are attached. Open may
// run off the UI goroutine; Detach runs on it.
type Store struct {
	mu       sync.Mutex
	style    string
	maxBytes int64
	open     map[*Document]struct{}
}

var _ ribbon.ContentHost = (*Store)(nil)

// NewStore returns an empty store.
func NewStore(opts Options) *Store {
	style := strings.TrimSpace(opts.Style)
	if style == "" {
		style = DefaultStyle
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Store{
		style:    style,
		maxBytes: maxBytes,
		open:     make(map[*Document]struct{}),
	}
}

// Open reads and highlights the file at path.
func (s *Store) Open(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open %s: is a directory", path)
	}
	if info.Size() > s.maxBytes {
		return nil, fmt.Errorf("open %s: file is %d bytes, limit is %d", path, info.Size(), s.maxBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, fmt.Errorf("open %s: %w", path, ErrNotText)
	}
	doc := &Document{
		Path:  path,
		Title: filepath.Base(path),
		Lines: s.highlight(path, string(data)),
	}
	s.mu.Lock()
	s.open[doc] = struct{}{}
	s.mu.Unlock()
	return doc, nil
}

func (s *Store) highlight(path, source string) []string {
	var buf bytes.Buffer
	// the file name lets chroma pick a lexer by extension
	plain := splitLines(source)
	if err := quick.Highlight(&buf, source, filepath.Base(path), formatter, s.style); err != nil {
		events.Content.Error(path, err)
		return plain
	}
	lines := splitLines(buf.String())
	// a trailing reset sequence can spill onto an extra line
	if len(lines) > len(plain) {
		lines = lines[:len(plain)]
	}
	return lines
}

// Detach releases a document previously returned by Open. Unknown handles
// are ignored.
func (s *Store) Detach(h ribbon.Handle) {
	doc, ok := h.(*Document)
	if !ok || doc == nil {
		return
	}
	s.mu.Lock()
	_, known := s.open[doc]
	delete(s.open, doc)
	s.mu.Unlock()
	if known {
		events.Content.Detach(doc.Path)
	}
}

// OpenCount reports how many documents are currently attached.
func (s *Store) OpenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
