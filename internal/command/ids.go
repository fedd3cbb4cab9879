package command

// ID names a ribbon operation. Values match the command ids registered by the
// CodeRibbon editor extension so key maps carry over.
type ID string

// Group classifies commands by their effect on the layout.
type Group string

const (
	// GroupNavigation commands only move focus.
	GroupNavigation Group = "nav"
	// GroupManipulation commands create or destroy strips and patches.
	GroupManipulation Group = "manip"
	// GroupArrangement commands reorder without creating or destroying.
	GroupArrangement Group = "arrange"
)

// Groups lists every group in display order.
var Groups = []Group{GroupNavigation, GroupManipulation, GroupArrangement}

const (
	FocusUp          ID = "CodeRibbon.nav.focus_up"
	FocusDown        ID = "CodeRibbon.nav.focus_down"
	FocusLeft        ID = "CodeRibbon.nav.focus_left"
	FocusRight       ID = "CodeRibbon.nav.focus_right"
	FocusNext        ID = "CodeRibbon.nav.focus_next"
	FocusPrev        ID = "CodeRibbon.nav.focus_prev"
	FocusRibbonStart ID = "CodeRibbon.nav.focus_ribbon_start"
	FocusRibbonTail  ID = "CodeRibbon.nav.focus_ribbon_tail"
	FocusRibbonEnd   ID = "CodeRibbon.nav.focus_ribbon_end"

	CreateStripLeft  ID = "CodeRibbon.manip.create_strip_left"
	CreateStripRight ID = "CodeRibbon.manip.create_strip_right"
	CreatePatchAbove ID = "CodeRibbon.manip.create_patch_above"
	CreatePatchBelow ID = "CodeRibbon.manip.create_patch_below"
	SplitPatchDown   ID = "CodeRibbon.manip.split_patch_down"
	CloseStrip       ID = "CodeRibbon.manip.close_strip"
	ClearPatch       ID = "CodeRibbon.manip.clear_patch"
	ClosePatch       ID = "CodeRibbon.manip.close_patch"

	MoveStripLeft  ID = "CodeRibbon.arrange.move_strip_left"
	MoveStripRight ID = "CodeRibbon.arrange.move_strip_right"
	MovePatchUp    ID = "CodeRibbon.arrange.move_patch_up"
	MovePatchDown  ID = "CodeRibbon.arrange.move_patch_down"
)
