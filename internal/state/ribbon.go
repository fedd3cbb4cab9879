package state

import "github.com/atomicstack/coderibbon/internal/ribbon"

// RibbonStore hands out the active ribbon to command handlers. Callers look
// the ribbon up on every dispatch rather than caching it.
type RibbonStore interface {
	Active() *ribbon.Ribbon
	SetActive(*ribbon.Ribbon)
}

type ribbonStore struct {
	active *ribbon.Ribbon
}

// NewRibbonStore returns a store holding r as the active ribbon.
func NewRibbonStore(r *ribbon.Ribbon) RibbonStore {
	return &ribbonStore{active: r}
}

func (s *ribbonStore) Active() *ribbon.Ribbon {
	return s.active
}

func (s *ribbonStore) SetActive(r *ribbon.Ribbon) {
	s.active = r
}
