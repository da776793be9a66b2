package parameter

import "time"

// Terminal host cadence
const (
	// FrameInterval is the host redraw tick
	FrameInterval = 33 * time.Millisecond

	// ScrollStep is the fractional row distance of one wheel or arrow step
	ScrollStep = 2.5

	// PageStepRatio scales the viewport height into a page-up/down distance
	PageStepRatio = 0.9

	// LowPriorityStride is how many frames apart far-from-viewport regions
	// are stepped
	LowPriorityStride = 4
)
