package state

import "testing"

func newTestLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id}
	}
	return NewLevel("test", "Test", items)
}

func TestMoveCursorWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursor(-1) || l.Cursor != 2 {
		t.Fatalf("expected wrap to last item, got %d", l.Cursor)
	}
	if !l.MoveCursor(1) || l.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursor(1) {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() || empty.Cursor != 0 {
		t.Fatalf("expected cursor reset for empty level, got %d", empty.Cursor)
	}
}

func TestMoveCursorPageClamps(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if !l.MoveCursorPage(1, 2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	l.MoveCursorPage(1, 2)
	if l.MoveCursorPage(1, 2) {
		t.Fatalf("expected no movement past end")
	}
	if !l.MoveCursorPage(-1, 10) || l.Cursor != 0 {
		t.Fatalf("expected cursor back at start, got %d", l.Cursor)
	}
}

func TestVisibleFollowsCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	visible := l.Visible(2)
	if l.ViewportOffset != 3 || len(visible) != 2 || visible[1].ID != "e" {
		t.Fatalf("unexpected viewport %d %#v", l.ViewportOffset, visible)
	}

	l.Cursor = 1
	visible = l.Visible(3)
	if l.ViewportOffset != 1 || visible[0].ID != "b" {
		t.Fatalf("expected viewport aligned with cursor, got %d", l.ViewportOffset)
	}

	if got := l.Visible(0); len(got) != 5 || l.ViewportOffset != 0 {
		t.Fatalf("expected everything visible without a limit")
	}
}
