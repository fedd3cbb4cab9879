package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/coderibbon/internal/command"
	"github.com/atomicstack/coderibbon/internal/content"
	"github.com/atomicstack/coderibbon/internal/format/table"
	"github.com/atomicstack/coderibbon/internal/keymap"
	"github.com/atomicstack/coderibbon/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Root       string
	Width      int
	Height     int
	ShowFooter bool
	Style      string
	MaxBytes   int64
	Keys       map[string][]string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel assembles the ribbon, command table, key bindings and document
// store behind a UI model.
func NewModel(cfg Config) (*ui.Model, error) {
	registry := command.BuildRegistry()
	keys, err := buildKeymap(registry, cfg.Keys)
	if err != nil {
		return nil, err
	}
	store := content.NewStore(content.Options{Style: cfg.Style, MaxBytes: cfg.MaxBytes})
	return ui.NewModel(ui.Options{
		Root:       cfg.Root,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Registry:   registry,
		Keymap:     keys,
		Content:    store,
	}), nil
}

func buildKeymap(registry *command.Registry, overrides map[string][]string) (*keymap.Keymap, error) {
	keys := keymap.Default()
	if err := keys.Override(registry, overrides); err != nil {
		return nil, err
	}
	return keys, nil
}

// ListCommands writes the command table with the effective key bindings.
func ListCommands(w io.Writer, cfg Config) error {
	registry := command.BuildRegistry()
	keys, err := buildKeymap(registry, cfg.Keys)
	if err != nil {
		return err
	}
	rows := [][]string{{"ID", "GROUP", "LABEL", "KEYS"}}
	for _, group := range command.Groups {
		for _, cmd := range registry.InGroup(group) {
			bound := strings.Join(keys.Keys(cmd.ID), " ")
			if bound == "" {
				bound = "-"
			}
			rows = append(rows, []string{string(cmd.ID), string(group), cmd.Label, bound})
		}
	}
	for _, line := range table.Format(rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
