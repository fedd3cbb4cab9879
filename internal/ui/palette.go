package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/coderibbon/internal/command"
	"github.com/atomicstack/coderibbon/internal/content"
	"github.com/atomicstack/coderibbon/internal/logging"
	"github.com/atomicstack/coderibbon/internal/logging/events"
	uistate "github.com/atomicstack/coderibbon/internal/ui/state"
)

const (
	paletteCommands = "commands"
	paletteFiles    = "files"
	finderLimit     = 5000
	palettePageSize = 10
)

// palette is the modal list used both for running commands by name and for
// picking a file to open in the focused patch.
type palette struct {
	level   *uistate.Level
	input   textinput.Model
	loading bool
}

func newPalette(kind, title string, items []uistate.Item) *palette {
	input := textinput.New()
	input.Prompt = "» "
	if styles.FilterPrompt != nil {
		input.PromptStyle = *styles.FilterPrompt
	}
	input.Placeholder = "type to filter"
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()
	return &palette{
		level: uistate.NewLevel(kind, title, items),
		input: input,
	}
}

func (p *palette) kind() string {
	return p.level.Kind
}

// filesLoadedMsg carries the finder's candidate list.
type filesLoadedMsg struct {
	items []uistate.Item
	err   error
}

func (m *Model) openCommandPalette() tea.Cmd {
	commands := m.bus.Registry().Commands()
	items := make([]uistate.Item, 0, len(commands))
	for _, cmd := range commands {
		items = append(items, uistate.Item{
			ID:     string(cmd.ID),
			Label:  cmd.Label,
			Detail: strings.Join(m.keys.Keys(cmd.ID), " "),
		})
	}
	m.palette = newPalette(paletteCommands, "Run command", items)
	m.mode = ModePalette
	events.Palette.Open(paletteCommands, len(items))
	return nil
}

func (m *Model) openFinder() tea.Cmd {
	m.palette = newPalette(paletteFiles, "Open file", nil)
	m.palette.loading = true
	m.mode = ModeFinder
	return listFilesCmd(m.root)
}

func listFilesCmd(root string) tea.Cmd {
	return func() tea.Msg {
		files, err := content.ListFiles(root, finderLimit)
		if err != nil {
			logging.Error(err)
			return filesLoadedMsg{err: err}
		}
		items := make([]uistate.Item, len(files))
		for i, f := range files {
			items[i] = uistate.Item{ID: f.Abs, Label: f.Rel}
		}
		return filesLoadedMsg{items: items}
	}
}

func (m *Model) handleFilesLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(filesLoadedMsg)
	if !ok {
		return nil
	}
	if m.palette == nil || m.palette.kind() != paletteFiles {
		return nil
	}
	if loaded.err != nil {
		m.closePalette()
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.palette.loading = false
	m.palette.level.UpdateItems(loaded.items)
	events.Palette.Open(paletteFiles, len(loaded.items))
	return nil
}

func (m *Model) closePalette() {
	m.palette = nil
	m.mode = ModeRibbon
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	p := m.palette
	level := p.level
	switch msg.String() {
	case "esc":
		events.Palette.Cancel(p.kind())
		m.closePalette()
		return nil
	case "enter":
		return m.selectPaletteItem()
	case "up", "ctrl+k":
		level.MoveCursor(-1)
		return nil
	case "down", "ctrl+j":
		level.MoveCursor(1)
		return nil
	case "pgup":
		level.MoveCursorPage(-1, palettePageSize)
		return nil
	case "pgdown":
		level.MoveCursorPage(1, palettePageSize)
		return nil
	case "home":
		level.MoveCursorHome()
		return nil
	case "end":
		level.MoveCursorEnd()
		return nil
	}
	if msg.Alt {
		return nil
	}
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if value := p.input.Value(); value != before {
		level.SetFilter(value)
		events.Palette.Filter(p.kind(), value, len(level.Items))
	}
	return cmd
}

func (m *Model) selectPaletteItem() tea.Cmd {
	p := m.palette
	item, ok := p.level.Selected()
	if !ok {
		return nil
	}
	kind := p.kind()
	m.closePalette()
	events.Palette.Select(kind, item.ID)
	switch kind {
	case paletteCommands:
		m.dispatch(command.ID(item.ID))
		return nil
	case paletteFiles:
		target := m.Ribbon().Focused().ID()
		m.loading++
		return openFileCmd(m.docs, item.ID, target)
	}
	return nil
}
