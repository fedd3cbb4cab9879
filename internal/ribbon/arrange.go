package ribbon

// MoveStripLeft swaps the mru strip with its left neighbour.
func (r *Ribbon) MoveStripLeft() (*Patch, error) {
	return r.moveStrip("moveStripLeft", -1)
}

// MoveStripRight swaps the mru strip with its right neighbour.
func (r *Ribbon) MoveStripRight() (*Patch, error) {
	return r.moveStrip("moveStripRight", 1)
}

func (r *Ribbon) moveStrip(op string, delta int) (*Patch, error) {
	si, _, err := r.locate(op)
	if err != nil {
		return nil, err
	}
	target := si + delta
	if target < 0 || target >= len(r.strips) {
		return r.focused, nil
	}
	r.strips[si], r.strips[target] = r.strips[target], r.strips[si]
	return r.focused, nil
}

// MovePatchUp swaps the focused patch with the one above it.
func (r *Ribbon) MovePatchUp() (*Patch, error) {
	return r.movePatch("movePatchUp", -1)
}

// MovePatchDown swaps the focused patch with the one below it.
func (r *Ribbon) MovePatchDown() (*Patch, error) {
	return r.movePatch("movePatchDown", 1)
}

func (r *Ribbon) movePatch(op string, delta int) (*Patch, error) {
	_, pi, err := r.locate(op)
	if err != nil {
		return nil, err
	}
	target := pi + delta
	patches := r.mru.patches
	if target < 0 || target >= len(patches) {
		return r.focused, nil
	}
	patches[pi], patches[target] = patches[target], patches[pi]
	return r.focused, nil
}
