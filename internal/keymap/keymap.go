package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/coderibbon/internal/command"
)

// Reserved keys are handled by the UI itself and cannot be bound to commands.
var Reserved = map[string]string{
	"ctrl+c": "quit",
	"ctrl+p": "command palette",
	"ctrl+o": "open file",
	"esc":    "close prompt",
}

// escapeIntroducers are alt chords that share their byte sequence with the
// start of a CSI or SS3 escape and cannot be told apart reliably.
var escapeIntroducers = map[string]struct{}{
	"alt+[": {},
	"alt+O": {},
}

var defaults = map[command.ID][]string{
	command.FocusUp:          {"alt+k", "alt+up"},
	command.FocusDown:        {"alt+j", "alt+down"},
	command.FocusLeft:        {"alt+h", "alt+left"},
	command.FocusRight:       {"alt+l", "alt+right"},
	command.FocusNext:        {"tab"},
	command.FocusPrev:        {"shift+tab"},
	command.FocusRibbonStart: {"alt+g", "home"},
	command.FocusRibbonTail:  {"alt+G", "end"},
	command.FocusRibbonEnd:   {"alt+e"},

	command.CreateStripLeft:  {"alt+,"},
	command.CreateStripRight: {"alt+."},
	command.CreatePatchAbove: {"alt+i"},
	command.CreatePatchBelow: {"alt+o"},
	command.SplitPatchDown:   {"alt+s"},
	command.CloseStrip:       {"alt+Q"},
	command.ClearPatch:       {"alt+x"},
	command.ClosePatch:       {"alt+q"},

	command.MoveStripLeft:  {"alt+H"},
	command.MoveStripRight: {"alt+L"},
	command.MovePatchUp:    {"alt+K"},
	command.MovePatchDown:  {"alt+J"},
}

// Keymap resolves key strings (as reported by Bubble Tea) to command ids.
type Keymap struct {
	byKey map[string]command.ID
	byID  map[command.ID][]string
}

// Default returns the built-in bindings.
func Default() *Keymap {
	km := &Keymap{
		byKey: make(map[string]command.ID),
		byID:  make(map[command.ID][]string, len(defaults)),
	}
	for id, keys := range defaults {
		km.bind(id, keys)
	}
	return km
}

// Lookup returns the command bound to key.
func (k *Keymap) Lookup(key string) (command.ID, bool) {
	id, ok := k.byKey[key]
	return id, ok
}

// Keys returns the keys bound to id in a stable order.
func (k *Keymap) Keys(id command.ID) []string {
	keys := append([]string(nil), k.byID[id]...)
	sort.Strings(keys)
	return keys
}

// Override replaces the bindings of every command named in overrides. An
// empty list unbinds the command. Unknown ids, reserved keys, escape
// introducers and keys claimed by two commands are rejected and leave the
// keymap untouched.
func (k *Keymap) Override(reg *command.Registry, overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}
	next := &Keymap{
		byKey: make(map[string]command.ID, len(k.byKey)),
		byID:  make(map[command.ID][]string, len(k.byID)),
	}
	for id, keys := range k.byID {
		if _, replaced := overrides[string(id)]; replaced {
			continue
		}
		next.bind(id, keys)
	}
	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, raw := range ids {
		id := command.ID(raw)
		if _, ok := reg.Find(id); !ok {
			return fmt.Errorf("keymap: %s: %w", raw, command.ErrUnknownCommand)
		}
		keys := normalize(overrides[raw])
		for _, key := range keys {
			if use, reserved := Reserved[key]; reserved {
				return fmt.Errorf("keymap: %s: key %q is reserved for %s", raw, key, use)
			}
			if _, ambiguous := escapeIntroducers[key]; ambiguous {
				return fmt.Errorf("keymap: %s: key %q is indistinguishable from an escape sequence", raw, key)
			}
			if other, taken := next.byKey[key]; taken && other != id {
				return fmt.Errorf("keymap: %s: key %q already bound to %s", raw, key, other)
			}
		}
		next.bind(id, keys)
	}
	k.byKey = next.byKey
	k.byID = next.byID
	return nil
}

func (k *Keymap) bind(id command.ID, keys []string) {
	for _, key := range keys {
		k.byKey[key] = id
	}
	k.byID[id] = append([]string(nil), keys...)
}

func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
