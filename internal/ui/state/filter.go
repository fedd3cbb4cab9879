package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the query and moves the cursor to the best match. Clearing
// the query puts the cursor back where it was before filtering started.
func (l *Level) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	if trimmed == prevTrimmed {
		l.Filter = query
		return
	}
	if trimmed != "" && prevTrimmed == "" {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.applyFilter()

	switch {
	case trimmed != "":
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	case l.LastCursor >= 0 && l.LastCursor < len(l.Items):
		l.Cursor = l.LastCursor
		l.LastCursor = -1
	default:
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

func matchText(item Item) string {
	if item.Detail == "" {
		return item.Label
	}
	return item.Label + " " + item.Detail
}

// FilterItems returns the items whose label or detail fuzzily matches query,
// in their original order. Items matching only by substring of their ID are
// returned when nothing matches fuzzily.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = matchText(item)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, texts)
	if len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matched))
		for idx, item := range items {
			if _, ok := matched[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex ranks exact matches first, then label prefixes, then the
// closest fuzzy match. It returns -1 for an empty list.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = matchText(item)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
