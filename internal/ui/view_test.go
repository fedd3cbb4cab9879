package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestViewFillsViewport(t *testing.T) {
	h := newTestHarness(t, Options{Width: 80, Height: 20})
	h.Press("alt+.", "alt+o")
	view := h.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 80 {
			t.Fatalf("row %d is %d cells wide", i, w)
		}
	}
	if !strings.Contains(view, "strip 2/2") || !strings.Contains(view, "patch 2/2") {
		t.Fatalf("expected position in status line:\n%s", view)
	}
	if !strings.Contains(view, emptyPatchLabel) {
		t.Fatalf("expected empty patch placeholder")
	}
}

func TestViewScrollsToMRUStrip(t *testing.T) {
	h := newTestHarness(t, Options{Width: 50, Height: 12})
	h.Press("alt+.", "alt+.", "alt+.")
	h.View()
	if h.Model().stripOffset != 2 {
		t.Fatalf("expected window over the last two strips, got offset %d", h.Model().stripOffset)
	}
	h.Press("alt+g")
	h.View()
	if h.Model().stripOffset != 0 {
		t.Fatalf("expected window back at the start, got offset %d", h.Model().stripOffset)
	}
}

func bodyOf(view string) string {
	lines := strings.Split(view, "\n")
	return strings.Join(lines[:len(lines)-1], "\n")
}

func TestViewScrollsPatchesToFocus(t *testing.T) {
	h := newTestHarness(t, Options{Width: 80, Height: 12})
	h.Press("alt+o", "alt+o", "alt+o", "alt+o", "alt+o")
	if got := h.Model().Ribbon().FocusIndex(); got != 5 {
		t.Fatalf("expected focus on sixth patch, got %d", got)
	}
	body := bodyOf(h.View())
	if !strings.Contains(body, "patch 6") {
		t.Fatalf("expected focused patch in body:\n%s", body)
	}
	if strings.Contains(body, "patch 1") {
		t.Fatalf("expected first patch scrolled out:\n%s", body)
	}
	if rows := len(strings.Split(body, "\n")); rows != 11 {
		t.Fatalf("expected 11 body rows, got %d", rows)
	}

	h.Press("alt+k", "alt+k", "alt+k", "alt+k", "alt+k")
	body = bodyOf(h.View())
	if !strings.Contains(body, "patch 1") || strings.Contains(body, "patch 6") {
		t.Fatalf("expected window back at the top:\n%s", body)
	}
}

func TestPatchWindowIsRememberedPerStrip(t *testing.T) {
	h := newTestHarness(t, Options{Width: 80, Height: 12})
	h.Press("alt+o", "alt+o", "alt+o", "alt+o")
	h.View()
	first := h.Model().Ribbon().MRUStrip()
	if got := h.Model().patchOffsets[first]; got != 2 {
		t.Fatalf("expected offset 2 on first strip, got %d", got)
	}
	h.Press("alt+.")
	h.View()
	if got := h.Model().patchOffsets[first]; got != 2 {
		t.Fatalf("expected first strip to keep its window, got %d", got)
	}
	h.Press("alt+Q")
	h.View()
	if len(h.Model().patchOffsets) != 1 {
		t.Fatalf("expected closed strip to be pruned, got %d entries", len(h.Model().patchOffsets))
	}
}

func TestFooterListsBindings(t *testing.T) {
	h := newTestHarness(t, Options{Width: 200, Height: 10, ShowFooter: true})
	view := h.View()
	for _, want := range []string{"tab next", "alt+. new strip", "ctrl+p commands"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in footer:\n%s", want, view)
		}
	}
	if rows := len(strings.Split(view, "\n")); rows != 10 {
		t.Fatalf("expected 10 rows with footer, got %d", rows)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("ab", 4); got != "ab" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 1); got != "a" {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestClipLines(t *testing.T) {
	if got := clipLines("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("unexpected clip %q", got)
	}
	if got := clipLines("a", 3); got != "a" {
		t.Fatalf("unexpected clip %q", got)
	}
}
