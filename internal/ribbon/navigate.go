package ribbon

// FocusUp focuses the patch above the current one. No-op at the top.
func (r *Ribbon) FocusUp() (*Patch, error) {
	_, pi, err := r.locate("focusUp")
	if err != nil {
		return nil, err
	}
	if pi == 0 {
		return r.focused, nil
	}
	return r.focus(r.mru, pi-1), nil
}

// FocusDown focuses the patch below the current one. No-op at the bottom.
func (r *Ribbon) FocusDown() (*Patch, error) {
	_, pi, err := r.locate("focusDown")
	if err != nil {
		return nil, err
	}
	if pi == len(r.mru.patches)-1 {
		return r.focused, nil
	}
	return r.focus(r.mru, pi+1), nil
}

// FocusLeft moves to the strip on the left, keeping the vertical index where
// the new strip is tall enough.
func (r *Ribbon) FocusLeft() (*Patch, error) {
	return r.focusSideways("focusLeft", -1)
}

// FocusRight moves to the strip on the right.
func (r *Ribbon) FocusRight() (*Patch, error) {
	return r.focusSideways("focusRight", 1)
}

func (r *Ribbon) focusSideways(op string, delta int) (*Patch, error) {
	si, pi, err := r.locate(op)
	if err != nil {
		return nil, err
	}
	target := si + delta
	if target < 0 || target >= len(r.strips) {
		return r.focused, nil
	}
	return r.focus(r.strips[target], pi), nil
}

// FocusNext focuses the next patch in column-major order, wrapping around.
func (r *Ribbon) FocusNext() (*Patch, error) {
	return r.focusCycle("focusNext", 1)
}

// FocusPrev focuses the previous patch in column-major order, wrapping around.
func (r *Ribbon) FocusPrev() (*Patch, error) {
	return r.focusCycle("focusPrev", -1)
}

func (r *Ribbon) focusCycle(op string, delta int) (*Patch, error) {
	if _, _, err := r.locate(op); err != nil {
		return nil, err
	}
	flat := r.Patches()
	idx := -1
	for i, p := range flat {
		if p == r.focused {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, invariant(op, "focused patch missing from flattened ribbon")
	}
	next := flat[(idx+delta+len(flat))%len(flat)]
	r.mru = next.strip
	r.focused = next
	return next, nil
}

// FocusStart focuses the first patch of the first strip.
func (r *Ribbon) FocusStart() (*Patch, error) {
	return r.focus(r.strips[0], 0), nil
}

// FocusTail focuses the last patch of the last strip.
func (r *Ribbon) FocusTail() (*Patch, error) {
	last := r.strips[len(r.strips)-1]
	return r.focus(last, len(last.patches)-1), nil
}

// FocusEnd focuses an empty patch at the end of the last strip, appending one
// only when the trailing patch already hosts content.
func (r *Ribbon) FocusEnd() (*Patch, error) {
	last := r.strips[len(r.strips)-1]
	tail := last.patches[len(last.patches)-1]
	if tail.Empty() {
		return r.focus(last, len(last.patches)-1), nil
	}
	p := newPatch(last)
	last.insert(len(last.patches), p)
	return r.focus(last, len(last.patches)-1), nil
}
