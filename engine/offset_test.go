package engine

import (
	"testing"

	"github.com/lixenwraith/sticky/core"
)

func TestCoordinatorClampsTopToHeight(t *testing.T) {
	c := NewCoordinator()

	c.Update(30, 20)
	if got := c.Current(); got != (core.StickyOffset{Top: 20, Height: 20}) {
		t.Errorf("Expected clamped offset {20 20}, got %+v", got)
	}

	c.Update(5, 20)
	if got := c.Current(); got != (core.StickyOffset{Top: 5, Height: 20}) {
		t.Errorf("Expected offset {5 20}, got %+v", got)
	}

	c.Update(0, 0)
	if got := c.Current(); got != (core.StickyOffset{}) {
		t.Errorf("Expected zero offset, got %+v", got)
	}
}

func TestCoordinatorStartsAtZero(t *testing.T) {
	if got := NewCoordinator().Current(); got != (core.StickyOffset{}) {
		t.Errorf("Expected zero offset, got %+v", got)
	}
}

func TestNopGroup(t *testing.T) {
	var g Group = NopGroup{}

	g.Update(30, 20)
	if got := g.Current(); got != (core.StickyOffset{}) {
		t.Errorf("Expected writes to be discarded, got %+v", got)
	}
}
