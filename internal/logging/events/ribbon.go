package events

import "github.com/atomicstack/coderibbon/internal/logging"

type RibbonTracer struct{}

type CommandTracer struct{}

var (
	Ribbon  = RibbonTracer{}
	Command = CommandTracer{}
)

func (RibbonTracer) Layout(op string, strips, patches, mru, focus int) {
	logging.Trace("ribbon.layout", map[string]interface{}{
		"op":      op,
		"strips":  strips,
		"patches": patches,
		"mru":     mru,
		"focus":   focus,
	})
}

func (RibbonTracer) Refused(op string, err error) {
	logging.Trace("ribbon.refused", map[string]interface{}{"op": op, "error": err.Error()})
}

func (CommandTracer) Dispatch(id, label string) {
	logging.Trace("command.dispatch", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Unknown(id string) {
	logging.Trace("command.unknown", map[string]interface{}{"id": id})
}

func (CommandTracer) Invariant(id string, err error) {
	logging.Trace("command.invariant", map[string]interface{}{"id": id, "error": err.Error()})
}

func (CommandTracer) Result(id string, focus string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "focus": focus})
}
