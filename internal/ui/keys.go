package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/coderibbon/internal/command"
	"github.com/atomicstack/coderibbon/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if m.palette != nil {
		return m.handlePaletteKey(keyMsg)
	}
	switch key {
	case "ctrl+p":
		return m.openCommandPalette()
	case "ctrl+o":
		return m.openFinder()
	case "esc":
		m.errMsg = ""
		m.forceClearInfo()
		return nil
	}
	id, bound := m.keys.Lookup(key)
	events.UI.Key(key, string(id))
	if !bound {
		return nil
	}
	m.dispatch(id)
	return nil
}

// dispatch runs one ribbon command synchronously on the update loop so
// operations never interleave.
func (m *Model) dispatch(id command.ID) {
	res := m.bus.Execute(command.Request{ID: id})
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		m.forceClearInfo()
		return
	}
	m.errMsg = ""
}
