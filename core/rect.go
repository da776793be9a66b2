package core

import "math"

// Rect is a snapshot of an element's vertical extent relative to the viewport,
// taken at one instant by the host measurer and replaced wholesale each cycle
type Rect struct {
	Top    float64
	Bottom float64
	Height float64
}

// Measurement is a Rect that may not have been taken yet. Hosts report an
// unmeasured value before first layout; predicates must branch on presence
// instead of treating the zero Rect as real geometry
type Measurement struct {
	rect Rect
	ok   bool
}

// Measure wraps a taken measurement
func Measure(top, bottom, height float64) Measurement {
	return Measurement{rect: Rect{Top: top, Bottom: bottom, Height: height}, ok: true}
}

// MeasureRect wraps an existing rect
func MeasureRect(r Rect) Measurement {
	return Measurement{rect: r, ok: true}
}

// Unmeasured returns the absent measurement
func Unmeasured() Measurement {
	return Measurement{}
}

// Rect returns the measured rect and whether one was taken
func (m Measurement) Rect() (Rect, bool) {
	return m.rect, m.ok
}

// OrZero returns the measured rect, or the zero rect when absent, so style
// arithmetic degrades to zero geometry instead of branching
func (m Measurement) OrZero() Rect {
	return m.rect
}

// Measured reports whether a rect was taken
func (m Measurement) Measured() bool {
	return m.ok
}

// Dimensions holds the viewport extent
type Dimensions struct {
	Height float64
}

// StickyOffset is the space reserved by pinned regions above the current one
// in document order. Top never exceeds Height; the coordinator clamps on write
type StickyOffset struct {
	Top    float64
	Height float64
}

// Round converts a fractional coordinate to the nearest whole pixel.
// Geometric predicates round before comparing so sub-pixel layout jitter
// cannot flip them back and forth between frames
func Round(v float64) int {
	return int(math.Round(v))
}
