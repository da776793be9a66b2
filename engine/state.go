package engine

// Style is the positioning output applied by the render adapter.
// Top is fractional; renderers round once at paint time
type Style struct {
	Position Position
	Top      float64
	Hint     RenderHint
}

// State is the full derived outcome of one update cycle. All fields are
// comparable so callers skip downstream work with a plain == against the
// previous cycle's value
type State struct {
	// Sticky reports the element is lifted out of normal flow
	Sticky bool
	// DockedToBottom reports the element is parked at the container bottom
	DockedToBottom bool
	// NearViewport reports the element is within the proximity window
	NearViewport bool
	// Overflow is the policy applied this cycle, not the requested one
	Overflow OverflowPolicy
	// Native reports that platform pinning substitutes for manual positioning
	Native bool
	// Style is the placement the render adapter must apply
	Style Style
}
