package command

import (
	"errors"
	"strings"

	"github.com/atomicstack/coderibbon/internal/ribbon"
)

// ErrUnknownCommand is returned when an id has no registered handler.
var ErrUnknownCommand = errors.New("unknown command")

// Handler runs one ribbon operation and returns the new focused patch.
type Handler func(*ribbon.Ribbon) (*ribbon.Patch, error)

// Command describes a registered ribbon operation.
type Command struct {
	ID      ID
	Label   string
	Group   Group
	Handler Handler
}

// Registry is the lookup table from command id to handler.
type Registry struct {
	ordered []Command
	byID    map[ID]Command
}

// BuildRegistry registers every ribbon operation.
func BuildRegistry() *Registry {
	defs := []struct {
		id      ID
		label   string
		handler Handler
	}{
		{FocusUp, "Focus Patch Above", (*ribbon.Ribbon).FocusUp},
		{FocusDown, "Focus Patch Below", (*ribbon.Ribbon).FocusDown},
		{FocusRight, "Focus Patch Rightwards", (*ribbon.Ribbon).FocusRight},
		{FocusLeft, "Focus Patch Leftwards", (*ribbon.Ribbon).FocusLeft},
		{FocusNext, "Focus next Patch", (*ribbon.Ribbon).FocusNext},
		{FocusPrev, "Focus previous Patch", (*ribbon.Ribbon).FocusPrev},
		{FocusRibbonStart, "Focus the first Patch in the Ribbon", (*ribbon.Ribbon).FocusStart},
		{FocusRibbonTail, "Focus the last Patch in the Ribbon", (*ribbon.Ribbon).FocusTail},
		{FocusRibbonEnd, "Focus an empty Patch at the Ribbon's end", (*ribbon.Ribbon).FocusEnd},

		{CreateStripLeft, "Create a new column to the left", (*ribbon.Ribbon).CreateStripLeft},
		{CreateStripRight, "Create a new column to the right", (*ribbon.Ribbon).CreateStripRight},
		{CreatePatchBelow, "Create a new Patch below the current", (*ribbon.Ribbon).CreatePatchBelow},
		{CreatePatchAbove, "Create a new Patch above the current", (*ribbon.Ribbon).CreatePatchAbove},
		{SplitPatchDown, "Split the current Patch into two", (*ribbon.Ribbon).SplitPatchDown},
		{CloseStrip, "Close the current column", (*ribbon.Ribbon).CloseStrip},
		{ClearPatch, "Empty the current patch", (*ribbon.Ribbon).ClearPatch},
		{ClosePatch, "Close the current patch", (*ribbon.Ribbon).ClosePatch},

		{MoveStripRight, "Move column rightwards", (*ribbon.Ribbon).MoveStripRight},
		{MoveStripLeft, "Move column leftwards", (*ribbon.Ribbon).MoveStripLeft},
		{MovePatchDown, "Move patch down", (*ribbon.Ribbon).MovePatchDown},
		{MovePatchUp, "Move patch up", (*ribbon.Ribbon).MovePatchUp},
	}
	r := &Registry{
		ordered: make([]Command, 0, len(defs)),
		byID:    make(map[ID]Command, len(defs)),
	}
	for _, def := range defs {
		cmd := Command{ID: def.id, Label: def.label, Group: GroupOf(def.id), Handler: def.handler}
		r.ordered = append(r.ordered, cmd)
		r.byID[cmd.ID] = cmd
	}
	return r
}

// Find locates a command by id.
func (r *Registry) Find(id ID) (Command, bool) {
	cmd, ok := r.byID[id]
	return cmd, ok
}

// Commands returns every registered command in registration order.
func (r *Registry) Commands() []Command {
	dup := make([]Command, len(r.ordered))
	copy(dup, r.ordered)
	return dup
}

// InGroup returns the commands belonging to g.
func (r *Registry) InGroup(g Group) []Command {
	var out []Command
	for _, cmd := range r.ordered {
		if cmd.Group == g {
			out = append(out, cmd)
		}
	}
	return out
}

// GroupOf derives the group from a command id such as
// "CodeRibbon.nav.focus_up".
func GroupOf(id ID) Group {
	parts := strings.Split(string(id), ".")
	if len(parts) < 3 {
		return ""
	}
	return Group(parts[1])
}
