package state

import (
	"testing"

	"github.com/atomicstack/coderibbon/internal/ribbon"
)

func TestRibbonStoreSwapsActiveRibbon(t *testing.T) {
	first := ribbon.New(nil)
	store := NewRibbonStore(first)
	if store.Active() != first {
		t.Fatalf("expected initial ribbon to be active")
	}
	second := ribbon.New(nil)
	store.SetActive(second)
	if store.Active() != second {
		t.Fatalf("expected replacement ribbon to be active")
	}
}
