package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/coderibbon/internal/logging"
	"github.com/atomicstack/coderibbon/internal/logging/events"
	"github.com/atomicstack/coderibbon/internal/ribbon"
	"github.com/atomicstack/coderibbon/internal/state"
)

// Request asks the bus to run a single command.
type Request struct {
	ID ID
}

// Result carries the outcome of a dispatched command.
type Result struct {
	ID      ID
	Label   string
	Focused *ribbon.Patch
	Err     error
}

// Bus runs commands against the active ribbon, one at a time. It is not safe
// for concurrent use; the caller's event loop serialises dispatch.
type Bus struct {
	registry *Registry
	store    state.RibbonStore
}

// NewBus wires a bus to a registry and the store holding the active ribbon.
func NewBus(registry *Registry, store state.RibbonStore) *Bus {
	return &Bus{registry: registry, store: store}
}

// Registry exposes the bus's command table.
func (b *Bus) Registry() *Registry {
	return b.registry
}

// Execute looks up the handler for req and runs it to completion.
func (b *Bus) Execute(req Request) Result {
	cmd, ok := b.registry.Find(req.ID)
	if !ok {
		events.Command.Unknown(string(req.ID))
		return Result{ID: req.ID, Err: fmt.Errorf("%s: %w", req.ID, ErrUnknownCommand)}
	}
	res := Result{ID: cmd.ID, Label: cmd.Label}
	r := b.store.Active()
	if r == nil {
		err := &ribbon.InvariantError{Op: string(cmd.ID), Detail: "no active ribbon"}
		logging.Invariant(string(cmd.ID), err)
		events.Command.Invariant(string(cmd.ID), err)
		res.Err = err
		return res
	}

	events.Command.Dispatch(string(cmd.ID), cmd.Label)
	focused, err := cmd.Handler(r)
	switch {
	case err == nil:
	case ribbon.IsInvariant(err):
		logging.Invariant(string(cmd.ID), err)
		events.Command.Invariant(string(cmd.ID), err)
		res.Err = err
		return res
	case errors.Is(err, ribbon.ErrLastStrip):
		events.Ribbon.Refused(string(cmd.ID), err)
		res.Err = err
		return res
	default:
		logging.Error(fmt.Errorf("%s: %w", cmd.ID, err))
		res.Err = err
		return res
	}

	res.Focused = focused
	events.Command.Result(string(cmd.ID), string(focused.ID()))
	events.Ribbon.Layout(string(cmd.ID), r.Len(), len(r.Patches()), r.MRUIndex(), r.FocusIndex())
	return res
}
