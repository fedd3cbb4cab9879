package ribbon

import "github.com/google/uuid"

// PatchID identifies a patch for its whole lifetime.
type PatchID string

// Handle references host-owned content hosted in a patch. The ribbon never
// inspects or destroys it. Handles must be comparable; SetContent and
// SetContentFor reject any that are not.
type Handle interface{}

// ContentHost is notified when content leaves a patch.
type ContentHost interface {
	Detach(Handle)
}

// Patch is a single panel slot inside a strip.
type Patch struct {
	id      PatchID
	content Handle
	// strip is a non-owning back pointer, checked by Validate.
	strip *Strip
}

func newPatch(strip *Strip) *Patch {
	return &Patch{id: PatchID(uuid.NewString()), strip: strip}
}

// ID returns the patch identifier.
func (p *Patch) ID() PatchID {
	return p.id
}

// Content returns the hosted content handle, or nil when empty.
func (p *Patch) Content() Handle {
	return p.content
}

// Empty reports whether the patch hosts no content.
func (p *Patch) Empty() bool {
	return p.content == nil
}

// Strip is an ordered, non-empty column of patches.
type Strip struct {
	patches []*Patch
}

func newStrip() *Strip {
	s := &Strip{}
	s.patches = []*Patch{newPatch(s)}
	return s
}

// Patches returns a copy of the strip's patches, top to bottom.
func (s *Strip) Patches() []*Patch {
	dup := make([]*Patch, len(s.patches))
	copy(dup, s.patches)
	return dup
}

// Len returns the number of patches in the strip.
func (s *Strip) Len() int {
	return len(s.patches)
}

func (s *Strip) indexOf(p *Patch) int {
	for i, candidate := range s.patches {
		if candidate == p {
			return i
		}
	}
	return -1
}

func (s *Strip) insert(idx int, p *Patch) {
	p.strip = s
	s.patches = append(s.patches, nil)
	copy(s.patches[idx+1:], s.patches[idx:])
	s.patches[idx] = p
}

func (s *Strip) remove(idx int) *Patch {
	p := s.patches[idx]
	s.patches = append(s.patches[:idx], s.patches[idx+1:]...)
	return p
}
