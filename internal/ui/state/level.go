package state

// Item is a single selectable palette entry.
type Item struct {
	ID     string
	Label  string
	Detail string
}

// Level holds the state of a filterable list: the full item set, the
// filtered view, the cursor and the viewport offset.
type Level struct {
	Kind           string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level over items with the cursor on the first entry.
func NewLevel(kind, title string, items []Item) *Level {
	l := &Level{
		Kind:       kind,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// Selected returns the item under the cursor.
func (l *Level) Selected() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the full item set and reapplies the current filter.
func (l *Level) UpdateItems(items []Item) {
	l.Full = CloneItems(items)
	l.applyFilter()
}

// CloneItems returns a copy of items backed by a new array.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
