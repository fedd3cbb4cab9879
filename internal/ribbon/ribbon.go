// Package ribbon implements the panel layout engine: an ordered row of
// strips (columns), each holding an ordered stack of patches (panels).
//
// A Ribbon always holds at least one strip and every strip at least one
// patch. The focused patch always lives in the most recently used strip.
// Every exported operation either commits a new valid state or returns an
// error without mutating anything. The engine is not safe for concurrent
// use; callers dispatch one operation at a time.
package ribbon

import (
	"fmt"
	"reflect"
)

// Ribbon owns the strips and tracks focus.
type Ribbon struct {
	strips  []*Strip
	mru     *Strip
	focused *Patch
	host    ContentHost
}

// New returns a ribbon holding a single strip with one empty patch. host may
// be nil when no content is ever attached.
func New(host ContentHost) *Ribbon {
	s := newStrip()
	return &Ribbon{
		strips:  []*Strip{s},
		mru:     s,
		focused: s.patches[0],
		host:    host,
	}
}

// Focused returns the focused patch.
func (r *Ribbon) Focused() *Patch {
	return r.focused
}

// MRUStrip returns the most recently used strip.
func (r *Ribbon) MRUStrip() *Strip {
	return r.mru
}

// MRUIndex returns the position of the most recently used strip, or -1 if
// bookkeeping is broken.
func (r *Ribbon) MRUIndex() int {
	return r.stripIndex(r.mru)
}

// FocusIndex returns the vertical index of the focused patch in its strip.
func (r *Ribbon) FocusIndex() int {
	if r.mru == nil {
		return -1
	}
	return r.mru.indexOf(r.focused)
}

// Strips returns a copy of the strip sequence, left to right.
func (r *Ribbon) Strips() []*Strip {
	dup := make([]*Strip, len(r.strips))
	copy(dup, r.strips)
	return dup
}

// Len returns the number of strips.
func (r *Ribbon) Len() int {
	return len(r.strips)
}

// Patches flattens the ribbon in column-major order.
func (r *Ribbon) Patches() []*Patch {
	var out []*Patch
	for _, s := range r.strips {
		out = append(out, s.patches...)
	}
	return out
}

// Find returns the patch with the given id.
func (r *Ribbon) Find(id PatchID) (*Patch, bool) {
	for _, s := range r.strips {
		for _, p := range s.patches {
			if p.id == id {
				return p, true
			}
		}
	}
	return nil, false
}

// Validate checks every structural invariant.
func (r *Ribbon) Validate() error {
	if len(r.strips) == 0 {
		return invariant("validate", "ribbon has no strips")
	}
	seen := make(map[*Patch]struct{})
	for i, s := range r.strips {
		if len(s.patches) == 0 {
			return invariant("validate", "strip %d is empty", i)
		}
		for j, p := range s.patches {
			if p.strip != s {
				return invariant("validate", "patch %d/%d has a stale strip pointer", i, j)
			}
			if _, dup := seen[p]; dup {
				return invariant("validate", "patch %s appears twice", p.id)
			}
			seen[p] = struct{}{}
		}
	}
	if r.stripIndex(r.mru) < 0 {
		return invariant("validate", "mru strip is not in the ribbon")
	}
	if r.focused == nil || r.focused.strip != r.mru || r.mru.indexOf(r.focused) < 0 {
		return invariant("validate", "focused patch is not in the mru strip")
	}
	return nil
}

// SetContent attaches h to the focused patch, detaching any previous content.
func (r *Ribbon) SetContent(h Handle) (*Patch, error) {
	if err := checkHandle("set content", h); err != nil {
		return nil, err
	}
	if _, _, err := r.locate("setContent"); err != nil {
		return nil, err
	}
	r.replaceContent(r.focused, h)
	return r.focused, nil
}

// SetContentFor attaches h to the patch with the given id. When the patch is
// gone the handle is left with the caller.
func (r *Ribbon) SetContentFor(id PatchID, h Handle) (*Patch, error) {
	if err := checkHandle(fmt.Sprintf("set content for %s", id), h); err != nil {
		return nil, err
	}
	p, ok := r.Find(id)
	if !ok {
		return nil, fmt.Errorf("set content for %s: %w", id, ErrPatchNotFound)
	}
	r.replaceContent(p, h)
	return p, nil
}

func checkHandle(op string, h Handle) error {
	if h != nil && !reflect.TypeOf(h).Comparable() {
		return fmt.Errorf("%s: %T: %w", op, h, ErrHandleNotComparable)
	}
	return nil
}

func (r *Ribbon) replaceContent(p *Patch, h Handle) {
	old := p.content
	p.content = h
	if old != nil && old != h {
		r.detach(old)
	}
}

// locate resolves the mru strip and focused patch positions.
func (r *Ribbon) locate(op string) (int, int, error) {
	si := r.stripIndex(r.mru)
	if si < 0 {
		return -1, -1, invariant(op, "mru strip not found in ribbon")
	}
	pi := r.mru.indexOf(r.focused)
	if pi < 0 {
		return -1, -1, invariant(op, "focused patch not found in mru strip")
	}
	return si, pi, nil
}

func (r *Ribbon) stripIndex(s *Strip) int {
	for i, candidate := range r.strips {
		if candidate == s {
			return i
		}
	}
	return -1
}

func (r *Ribbon) focus(s *Strip, idx int) *Patch {
	if idx >= len(s.patches) {
		idx = len(s.patches) - 1
	}
	if idx < 0 {
		idx = 0
	}
	r.mru = s
	r.focused = s.patches[idx]
	return r.focused
}

func (r *Ribbon) detach(handles ...Handle) {
	if r.host == nil {
		return
	}
	for _, h := range handles {
		if h != nil {
			r.host.Detach(h)
		}
	}
}

func contentOf(patches []*Patch) []Handle {
	var out []Handle
	for _, p := range patches {
		if p.content != nil {
			out = append(out, p.content)
		}
	}
	return out
}
