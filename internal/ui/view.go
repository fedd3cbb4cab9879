package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/coderibbon/internal/command"
	"github.com/atomicstack/coderibbon/internal/content"
	"github.com/atomicstack/coderibbon/internal/ribbon"
)

const (
	minStripWidth   = 24
	minPatchHeight  = 3
	ansiReset       = "\x1b[0m"
	emptyPatchLabel = "(empty)"
	tabSpaces       = "    "
)

// footerHints lists the commands advertised in the footer, with the first
// key bound to each.
var footerHints = []struct {
	id    command.ID
	label string
}{
	{command.FocusNext, "next"},
	{command.CreateStripRight, "new strip"},
	{command.SplitPatchDown, "split"},
	{command.ClosePatch, "close"},
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.viewSize()
	bodyHeight := height - 1
	if m.showFooter {
		bodyHeight--
	}
	if bodyHeight < minPatchHeight {
		bodyHeight = minPatchHeight
	}
	var body string
	if m.palette != nil {
		body = m.paletteView(width, bodyHeight)
	} else {
		body = m.ribbonView(width, bodyHeight)
	}
	sections := []string{body, m.statusView(width)}
	if m.showFooter {
		sections = append(sections, m.footerView(width))
	}
	return strings.Join(sections, "\n")
}

func (m *Model) ribbonView(width, height int) string {
	r := m.Ribbon()
	strips := r.Strips()
	visible := width / minStripWidth
	if visible < 1 {
		visible = 1
	}
	if visible > len(strips) {
		visible = len(strips)
	}
	m.ensureStripVisible(r.MRUIndex(), len(strips), visible)
	m.prunePatchOffsets(strips)
	fit := height / minPatchHeight
	if fit < 1 {
		fit = 1
	}
	m.ensurePatchVisible(r.MRUStrip(), r.FocusIndex(), fit)

	focused := r.Focused()
	base, extra := width/visible, width%visible
	columns := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		w := base
		if i < extra {
			w++
		}
		s := strips[m.stripOffset+i]
		columns = append(columns, renderStrip(s, m.patchOffsets[s], fit, w, height, focused))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// ensureStripVisible scrolls the strip window so the MRU strip is on screen.
func (m *Model) ensureStripVisible(mru, total, visible int) {
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if mru < m.stripOffset {
		m.stripOffset = mru
	}
	if mru >= m.stripOffset+visible {
		m.stripOffset = mru - visible + 1
	}
	if m.stripOffset > maxOffset {
		m.stripOffset = maxOffset
	}
	if m.stripOffset < 0 {
		m.stripOffset = 0
	}
}

// ensurePatchVisible scrolls the MRU strip's patch window so the focused patch
// is on screen. Other strips keep the window they had when last focused.
func (m *Model) ensurePatchVisible(s *ribbon.Strip, focus, fit int) {
	if m.patchOffsets == nil {
		m.patchOffsets = make(map[*ribbon.Strip]int)
	}
	offset := m.patchOffsets[s]
	maxOffset := s.Len() - fit
	if maxOffset < 0 {
		maxOffset = 0
	}
	if focus < offset {
		offset = focus
	}
	if focus >= offset+fit {
		offset = focus - fit + 1
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	m.patchOffsets[s] = offset
}

func (m *Model) prunePatchOffsets(strips []*ribbon.Strip) {
	live := make(map[*ribbon.Strip]struct{}, len(strips))
	for _, s := range strips {
		live[s] = struct{}{}
	}
	for s := range m.patchOffsets {
		if _, ok := live[s]; !ok {
			delete(m.patchOffsets, s)
		}
	}
}

// renderStrip draws at most fit patches starting at offset.
func renderStrip(s *ribbon.Strip, offset, fit, width, height int, focused *ribbon.Patch) string {
	patches := s.Patches()
	if offset > len(patches)-fit {
		offset = len(patches) - fit
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + fit
	if end > len(patches) {
		end = len(patches)
	}
	window := patches[offset:end]
	base, extra := height/len(window), height%len(window)
	boxes := make([]string, len(window))
	for i, p := range window {
		h := base
		if i < extra {
			h++
		}
		if h < minPatchHeight {
			h = minPatchHeight
		}
		boxes[i] = renderPatch(p, offset+i, width, h, p == focused)
	}
	column := lipgloss.JoinVertical(lipgloss.Left, boxes...)
	return clipLines(column, height)
}

func renderPatch(p *ribbon.Patch, idx, width, height int, focused bool) string {
	box, titleStyle := styles.Patch, styles.PatchTitle
	if focused {
		box, titleStyle = styles.FocusedPatch, styles.FocusedTitle
	}
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	lines := make([]string, 0, rows)
	lines = append(lines, titleStyle.Render(truncateText(patchTitle(p, idx), inner)))
	doc, _ := p.Content().(*content.Document)
	switch {
	case doc == nil:
		lines = append(lines, styles.Placeholder.Render(truncateText(emptyPatchLabel, inner)))
	default:
		for _, line := range doc.Lines {
			if len(lines) >= rows {
				break
			}
			line = strings.ReplaceAll(line, "\t", tabSpaces)
			lines = append(lines, truncate.String(line, uint(inner))+ansiReset)
		}
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return box.Width(inner).Render(strings.Join(lines, "\n"))
}

func patchTitle(p *ribbon.Patch, idx int) string {
	if doc, ok := p.Content().(*content.Document); ok && doc != nil {
		return doc.Title
	}
	return fmt.Sprintf("patch %d", idx+1)
}

func (m *Model) statusView(width int) string {
	r := m.Ribbon()
	position := fmt.Sprintf(" strip %d/%d  patch %d/%d ", r.MRUIndex()+1, r.Len(), r.FocusIndex()+1, r.MRUStrip().Len())
	text := " " + patchTitle(r.Focused(), r.FocusIndex())
	if m.loading > 0 {
		text += "  loading…"
	}
	switch {
	case m.errMsg != "":
		text += "  " + styles.Error.Render(m.errMsg)
	case m.currentInfo() != "":
		text += "  " + styles.Info.Render(m.infoMsg)
	}
	line := styles.StatusPosition.Render(position) + styles.Status.Render(text)
	return truncate.String(line, uint(width))
}

func (m *Model) footerView(width int) string {
	parts := make([]string, 0, len(footerHints)+3)
	for _, hint := range footerHints {
		keys := m.keys.Keys(hint.id)
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keys[0]+" "+hint.label)
	}
	parts = append(parts, "ctrl+p commands", "ctrl+o open", "ctrl+c quit")
	return styles.Footer.Render(truncateText(strings.Join(parts, " · "), width))
}

func (m *Model) paletteView(width, height int) string {
	p := m.palette
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	lines := []string{
		styles.Header.Render(truncateText(p.level.Title, inner)),
		p.input.View(),
	}
	switch {
	case p.loading:
		lines = append(lines, styles.Info.Render("loading…"))
	case len(p.level.Items) == 0:
		msg := "(no entries)"
		if strings.TrimSpace(p.level.Filter) != "" {
			msg = fmt.Sprintf("No matches for %q", p.level.Filter)
		}
		lines = append(lines, styles.Info.Render(truncateText(msg, inner)))
	default:
		for i, item := range p.level.Visible(rows) {
			idx := p.level.ViewportOffset + i
			lines = append(lines, renderItem(item.Label, item.Detail, inner, idx == p.level.Cursor))
		}
	}
	return styles.Palette.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderItem(label, detail string, width int, selected bool) string {
	text := label
	if detail != "" {
		pad := width - lipgloss.Width(label) - lipgloss.Width(detail)
		if pad < 2 {
			pad = 2
		}
		text = label + strings.Repeat(" ", pad) + detail
	}
	text = truncateText(text, width)
	if selected {
		return styles.SelectedItem.Render(text)
	}
	return styles.Item.Render(text)
}

func clipLines(text string, height int) string {
	lines := strings.Split(text, "\n")
	if height <= 0 || len(lines) <= height {
		return text
	}
	return strings.Join(lines[:height], "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
