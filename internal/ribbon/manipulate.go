package ribbon

// CreateStripLeft inserts a strip with one empty patch left of the mru strip
// and focuses it.
func (r *Ribbon) CreateStripLeft() (*Patch, error) {
	si, _, err := r.locate("createStripLeft")
	if err != nil {
		return nil, err
	}
	return r.insertStrip(si), nil
}

// CreateStripRight inserts a strip with one empty patch right of the mru
// strip and focuses it.
func (r *Ribbon) CreateStripRight() (*Patch, error) {
	si, _, err := r.locate("createStripRight")
	if err != nil {
		return nil, err
	}
	return r.insertStrip(si + 1), nil
}

func (r *Ribbon) insertStrip(idx int) *Patch {
	s := newStrip()
	r.strips = append(r.strips, nil)
	copy(r.strips[idx+1:], r.strips[idx:])
	r.strips[idx] = s
	return r.focus(s, 0)
}

// CreatePatchAbove inserts an empty patch above the focused one and focuses it.
func (r *Ribbon) CreatePatchAbove() (*Patch, error) {
	_, pi, err := r.locate("createPatchAbove")
	if err != nil {
		return nil, err
	}
	r.mru.insert(pi, newPatch(r.mru))
	return r.focus(r.mru, pi), nil
}

// CreatePatchBelow inserts an empty patch below the focused one and focuses it.
func (r *Ribbon) CreatePatchBelow() (*Patch, error) {
	_, pi, err := r.locate("createPatchBelow")
	if err != nil {
		return nil, err
	}
	r.mru.insert(pi+1, newPatch(r.mru))
	return r.focus(r.mru, pi+1), nil
}

// SplitPatchDown inserts an empty patch below the focused one. Focus stays on
// the original patch and its content is not duplicated.
func (r *Ribbon) SplitPatchDown() (*Patch, error) {
	_, pi, err := r.locate("splitPatchDown")
	if err != nil {
		return nil, err
	}
	r.mru.insert(pi+1, newPatch(r.mru))
	return r.focused, nil
}

// CloseStrip removes the mru strip and all of its patches. The last strip
// cannot be closed.
func (r *Ribbon) CloseStrip() (*Patch, error) {
	si, pi, err := r.locate("closeStrip")
	if err != nil {
		return nil, err
	}
	return r.removeStrip(si, pi)
}

func (r *Ribbon) removeStrip(si, pi int) (*Patch, error) {
	if len(r.strips) == 1 {
		return nil, ErrLastStrip
	}
	closed := r.strips[si]
	r.strips = append(r.strips[:si], r.strips[si+1:]...)
	next := si - 1
	if next < 0 {
		next = 0
	}
	focused := r.focus(r.strips[next], pi)
	r.detach(contentOf(closed.patches)...)
	return focused, nil
}

// ClearPatch detaches the focused patch's content. Structure and focus are
// unchanged; clearing an empty patch does nothing.
func (r *Ribbon) ClearPatch() (*Patch, error) {
	if _, _, err := r.locate("clearPatch"); err != nil {
		return nil, err
	}
	old := r.focused.content
	if old == nil {
		return r.focused, nil
	}
	r.focused.content = nil
	r.detach(old)
	return r.focused, nil
}

// ClosePatch removes the focused patch. Closing a strip's only patch closes
// the strip, which is refused for the ribbon's last strip.
func (r *Ribbon) ClosePatch() (*Patch, error) {
	si, pi, err := r.locate("closePatch")
	if err != nil {
		return nil, err
	}
	if len(r.mru.patches) == 1 {
		return r.removeStrip(si, pi)
	}
	closed := r.mru.remove(pi)
	next := pi - 1
	if next < 0 {
		next = 0
	}
	focused := r.focus(r.mru, next)
	r.detach(closed.content)
	return focused, nil
}
