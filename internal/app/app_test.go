package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/coderibbon/internal/command"
)

func TestListCommandsShowsEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := ListCommands(&buf, Config{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 22 {
		t.Fatalf("expected header plus 21 commands, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Fatalf("expected header row, got %q", lines[0])
	}
	if !strings.Contains(buf.String(), "CodeRibbon.manip.close_strip") {
		t.Fatalf("expected close_strip in table:\n%s", buf.String())
	}
}

func TestListCommandsGroupsRows(t *testing.T) {
	var buf bytes.Buffer
	if err := ListCommands(&buf, Config{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	var order []string
	for _, line := range lines[1:] {
		group := strings.Fields(line)[1]
		if len(order) == 0 || order[len(order)-1] != group {
			order = append(order, group)
		}
	}
	want := []string{"nav", "manip", "arrange"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("expected contiguous groups %v, got %v", want, order)
	}
}

func TestListCommandsAppliesOverrides(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Keys: map[string][]string{
		string(command.FocusUp):    {"ctrl+k"},
		string(command.CloseStrip): {},
	}}
	if err := ListCommands(&buf, cfg); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case string(command.FocusUp):
			if fields[len(fields)-1] != "ctrl+k" {
				t.Fatalf("expected override in %q", line)
			}
		case string(command.CloseStrip):
			if fields[len(fields)-1] != "-" {
				t.Fatalf("expected unbound marker in %q", line)
			}
		}
	}
}

func TestNewModelRejectsBadBindings(t *testing.T) {
	_, err := NewModel(Config{Keys: map[string][]string{"CodeRibbon.nav.nowhere": {"x"}}})
	if !errors.Is(err, command.ErrUnknownCommand) {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	if _, err := NewModel(Config{Root: t.TempDir()}); err != nil {
		t.Fatalf("expected default model, got %v", err)
	}
}
