package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/coderibbon/internal/content"
	"github.com/atomicstack/coderibbon/internal/logging"
	"github.com/atomicstack/coderibbon/internal/ribbon"
)

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
	if opts.Root == "" {
		opts.Root = t.TempDir()
	}
	return NewHarness(NewModel(opts))
}

func mustValid(t *testing.T, r *ribbon.Ribbon) {
	t.Helper()
	if err := r.Validate(); err != nil {
		t.Fatalf("invalid ribbon: %v", err)
	}
}

func TestKeysDriveRibbon(t *testing.T) {
	h := newTestHarness(t, Options{})
	r := h.Model().Ribbon()

	h.Press("alt+.")
	if r.Len() != 2 || r.MRUIndex() != 1 {
		t.Fatalf("expected new strip on the right, got %d strips mru %d", r.Len(), r.MRUIndex())
	}
	h.Press("alt+o")
	if r.MRUStrip().Len() != 2 || r.FocusIndex() != 1 {
		t.Fatalf("expected focus on new patch below, got %d/%d", r.FocusIndex(), r.MRUStrip().Len())
	}
	h.Press("alt+h")
	if r.MRUIndex() != 0 {
		t.Fatalf("expected focus moved left, got mru %d", r.MRUIndex())
	}
	h.Press("alt+L")
	if r.MRUIndex() != 1 || r.Strips()[0].Len() != 2 {
		t.Fatalf("expected strip moved right")
	}
	h.Press("x", "alt+unbound")
	mustValid(t, r)
	if h.Model().errMsg != "" {
		t.Fatalf("unexpected error %q", h.Model().errMsg)
	}
}

func TestCloseLastStripShowsRefusal(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press("alt+Q")
	if h.Model().errMsg != ribbon.ErrLastStrip.Error() {
		t.Fatalf("expected refusal message, got %q", h.Model().errMsg)
	}
	if !strings.Contains(h.View(), ribbon.ErrLastStrip.Error()) {
		t.Fatalf("expected refusal in status line")
	}
	if h.Model().Ribbon().Len() != 1 {
		t.Fatalf("expected ribbon untouched")
	}
	h.Press("esc")
	if h.Model().errMsg != "" {
		t.Fatalf("expected esc to clear the message")
	}
}

func TestClosePatchCascadesThroughKeys(t *testing.T) {
	h := newTestHarness(t, Options{})
	r := h.Model().Ribbon()
	h.Press("alt+.", "alt+q")
	if r.Len() != 1 || h.Model().errMsg != "" {
		t.Fatalf("expected closing the only patch to close its strip, got %d strips err %q", r.Len(), h.Model().errMsg)
	}
	h.Press("alt+q")
	if !strings.Contains(h.Model().errMsg, "last strip") {
		t.Fatalf("expected refusal for last patch, got %q", h.Model().errMsg)
	}
	mustValid(t, r)
}

func TestCommandPaletteRunsSelection(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press("ctrl+p")
	if h.Model().Mode() != ModePalette {
		t.Fatalf("expected palette mode")
	}
	if !strings.Contains(h.View(), "Run command") {
		t.Fatalf("expected palette title in view")
	}
	h.Type("column to the right")
	if got := len(h.Model().palette.level.Items); got != 1 {
		t.Fatalf("expected a single match, got %d", got)
	}
	h.Press("enter")
	if h.Model().Mode() != ModeRibbon || h.Model().palette != nil {
		t.Fatalf("expected palette closed after selection")
	}
	if h.Model().Ribbon().Len() != 2 {
		t.Fatalf("expected palette command to create a strip")
	}
}

func TestCommandPaletteCursorAndCancel(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press("ctrl+p", "down", "down", "up")
	if h.Model().palette.level.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", h.Model().palette.level.Cursor)
	}
	h.Press("alt+.")
	if h.Model().Ribbon().Len() != 1 {
		t.Fatalf("expected ribbon keys ignored while palette is open")
	}
	h.Press("esc")
	if h.Model().Mode() != ModeRibbon {
		t.Fatalf("expected esc to close palette")
	}
	h.Press("ctrl+p")
	h.Type("zzzz")
	h.Press("enter")
	if h.Model().palette == nil {
		t.Fatalf("expected palette to stay open without a selection")
	}
	if !strings.Contains(h.View(), "No matches") {
		t.Fatalf("expected empty result message")
	}
}

func TestCommandPaletteHomeAndEnd(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press("ctrl+p", "end")
	level := h.Model().palette.level
	if level.Cursor != len(level.Items)-1 {
		t.Fatalf("expected cursor on last item, got %d of %d", level.Cursor, len(level.Items))
	}
	h.Press("home")
	if level.Cursor != 0 {
		t.Fatalf("expected cursor on first item, got %d", level.Cursor)
	}
	if h.Model().Ribbon().FocusIndex() != 0 || h.Model().palette == nil {
		t.Fatalf("expected home and end to stay inside the palette")
	}
}

func TestFinderOpensFileIntoFocusedPatch(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "README"), []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	docs := content.NewStore(content.Options{})
	h := newTestHarness(t, Options{Root: root, Content: docs})
	target := h.Model().Ribbon().Focused()

	h.Press("ctrl+o")
	if h.Model().Mode() != ModeFinder {
		t.Fatalf("expected finder mode")
	}
	if got := len(h.Model().palette.level.Items); got != 2 {
		t.Fatalf("expected two candidate files, got %d", got)
	}
	h.Type("main")
	h.Press("enter")

	doc, ok := target.Content().(*content.Document)
	if !ok || doc.Title != "main.go" {
		t.Fatalf("expected main.go in focused patch, got %#v", target.Content())
	}
	if docs.OpenCount() != 1 || h.Model().loading != 0 {
		t.Fatalf("expected one open document and no pending loads")
	}
	if !strings.Contains(h.View(), "main.go") {
		t.Fatalf("expected document title in view")
	}

	h.Press("alt+x")
	if !target.Empty() || docs.OpenCount() != 0 {
		t.Fatalf("expected clear to release the document")
	}
}

func TestLateContentLoadIsReleased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.txt")
	if err := os.WriteFile(path, []byte("late\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	docs := content.NewStore(content.Options{})
	h := newTestHarness(t, Options{Content: docs})
	doc, err := docs.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	h.Model().loading = 1
	h.Send(contentLoadedMsg{path: path, target: ribbon.PatchID("closed"), doc: doc})

	if docs.OpenCount() != 0 {
		t.Fatalf("expected orphaned document released, %d still open", docs.OpenCount())
	}
	if !h.Model().Ribbon().Focused().Empty() {
		t.Fatalf("expected focused patch untouched")
	}
	if !strings.Contains(h.Model().currentInfo(), "patch closed") {
		t.Fatalf("expected orphan notice, got %q", h.Model().infoMsg)
	}
	if h.Model().loading != 0 {
		t.Fatalf("expected pending load count to drop")
	}
}

func TestContentLoadErrorIsReported(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Send(contentLoadedMsg{path: "bin", target: h.Model().Ribbon().Focused().ID(), err: content.ErrNotText})
	if !strings.Contains(h.Model().errMsg, content.ErrNotText.Error()) {
		t.Fatalf("expected load error surfaced, got %q", h.Model().errMsg)
	}
}

func TestFinderListingErrorClosesPalette(t *testing.T) {
	h := newTestHarness(t, Options{Root: filepath.Join(t.TempDir(), "missing")})
	h.Press("ctrl+o")
	if h.Model().palette != nil || h.Model().errMsg == "" {
		t.Fatalf("expected listing failure to close the finder with an error")
	}
}

func TestCtrlCQuits(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Press("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h := newTestHarness(t, Options{Width: 60})
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if h.Model().width != 60 || h.Model().height != 40 {
		t.Fatalf("expected fixed width and tracked height, got %dx%d", h.Model().width, h.Model().height)
	}
}

func TestKeyMsgRoundTrip(t *testing.T) {
	for _, key := range []string{"alt+k", "alt+.", "alt+G", "tab", "shift+tab", "ctrl+p", "esc", "enter", "alt+up", "home", "x"} {
		if got := KeyMsg(key).String(); got != key {
			t.Fatalf("expected %q, got %q", key, got)
		}
	}
}

func TestUnknownCommandFromPaletteIsReported(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Model().dispatch("CodeRibbon.nav.nowhere")
	if !strings.Contains(h.Model().errMsg, "unknown command") {
		t.Fatalf("expected unknown command error, got %q", h.Model().errMsg)
	}
}
