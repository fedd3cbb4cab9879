package state

// MoveCursor moves the cursor by delta, wrapping around either end.
func (l *Level) MoveCursor(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.moveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.moveCursorTo(len(l.Items) - 1)
}

// MoveCursorPage moves the cursor a page at a time without wrapping.
func (l *Level) MoveCursorPage(pages, pageSize int) bool {
	if pageSize < 1 {
		pageSize = 1
	}
	return l.moveCursorTo(l.Cursor + pages*pageSize)
}

func (l *Level) moveCursorTo(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(l.Items) {
		idx = len(l.Items) - 1
	}
	old := l.Cursor
	l.Cursor = idx
	return old != l.Cursor
}

// EnsureCursorVisible scrolls the viewport so the cursor sits within
// maxVisible rows.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	l.moveCursorTo(l.Cursor)
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+maxVisible {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// Visible returns the slice of items inside the viewport.
func (l *Level) Visible(maxVisible int) []Item {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items
	}
	end := l.ViewportOffset + maxVisible
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.ViewportOffset:end]
}
