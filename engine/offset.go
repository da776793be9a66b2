package engine

import "github.com/lixenwraith/sticky/core"

// Group is the shared-offset handle injected into every sticky region of a
// scope. The zero-value handle used before a coordinator is installed reports
// a zero offset and ignores writes
type Group interface {
	// Current returns the offset reserved by regions above the caller
	Current() core.StickyOffset
	// Update records the pinned extent of a region for those below it
	Update(top, height float64)
}

// Coordinator tracks the offset reserved by stacked sticky regions under one
// scope. All regions of the scope share a single instance; writes happen in
// document order within a pass, so a lower region always reads the extent of
// the regions above it.
//
// Update cycles are single threaded, so no locking is involved
type Coordinator struct {
	offset core.StickyOffset
}

// NewCoordinator creates a coordinator with a zero offset
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Update records the reserved extent. Top is clamped to the reserved height,
// so a mid-animation overshoot can never push regions below past the header
// that reserved the space
func (c *Coordinator) Update(top, height float64) {
	if top > height {
		top = height
	}
	c.offset = core.StickyOffset{Top: top, Height: height}
}

// Current returns the currently reserved offset
func (c *Coordinator) Current() core.StickyOffset {
	return c.offset
}

// NopGroup is the inert handle used when no coordinator is installed
type NopGroup struct{}

// Current returns the zero offset
func (NopGroup) Current() core.StickyOffset { return core.StickyOffset{} }

// Update discards the write
func (NopGroup) Update(top, height float64) {}
