package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/coderibbon/internal/content"
	"github.com/atomicstack/coderibbon/internal/logging"
	"github.com/atomicstack/coderibbon/internal/logging/events"
	"github.com/atomicstack/coderibbon/internal/ribbon"
)

// contentLoadedMsg reports a finished document load for the patch that
// requested it.
type contentLoadedMsg struct {
	path   string
	target ribbon.PatchID
	doc    *content.Document
	err    error
}

// openFileCmd reads the document off the update loop. The result is applied
// by id because the requesting patch may be gone by the time it arrives.
func openFileCmd(docs *content.Store, path string, target ribbon.PatchID) tea.Cmd {
	return func() tea.Msg {
		events.Content.Open(path, string(target))
		doc, err := docs.Open(path)
		return contentLoadedMsg{path: path, target: target, doc: doc, err: err}
	}
}

func (m *Model) handleContentLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(contentLoadedMsg)
	if !ok {
		return nil
	}
	if m.loading > 0 {
		m.loading--
	}
	if loaded.err != nil {
		logging.Error(loaded.err)
		events.Content.Error(loaded.path, loaded.err)
		m.errMsg = loaded.err.Error()
		return nil
	}
	if _, err := m.Ribbon().SetContentFor(loaded.target, loaded.doc); err != nil {
		m.docs.Detach(loaded.doc)
		if errors.Is(err, ribbon.ErrPatchNotFound) {
			events.Content.Orphaned(loaded.path, string(loaded.target))
			m.setInfo(fmt.Sprintf("%s: patch closed before load finished", loaded.doc.Title))
			return nil
		}
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	events.Content.Attach(loaded.path, string(loaded.target))
	m.errMsg = ""
	m.setInfo("opened " + loaded.doc.Title)
	return nil
}
