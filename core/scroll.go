package core

// ScrollState is the scroll snapshot delivered to the engine each cycle.
// YTurn is the offset at the most recent direction reversal and YDTurn the
// first delta observed in the new direction; together they reconstruct a
// continuous trajectory across direction changes
type ScrollState struct {
	Y      float64
	YTurn  float64
	YDTurn float64

	ScrollingUp   bool
	ScrollingDown bool
}

// Tracker folds raw scroll offsets into ScrollState.
// One tracker per scrolling surface; not safe for concurrent use
type Tracker struct {
	state ScrollState
	seen  bool
}

// NewTracker creates a tracker with no observed samples
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records one scroll offset and returns the updated snapshot.
// A zero delta leaves direction and turn state unchanged
func (t *Tracker) Observe(y float64) ScrollState {
	if !t.seen {
		t.seen = true
		t.state = ScrollState{Y: y, YTurn: y}
		return t.state
	}

	prev := t.state.Y
	delta := y - prev
	if delta == 0 {
		return t.state
	}

	down := delta > 0

	// A reversal exposes the extremum: the previous offset becomes the turn
	// point and this delta the turn delta. The first movement seeds both
	turned := (down && t.state.ScrollingUp) || (!down && t.state.ScrollingDown)
	if turned || (!t.state.ScrollingUp && !t.state.ScrollingDown) {
		t.state.YTurn = prev
		t.state.YDTurn = delta
	}

	t.state.Y = y
	t.state.ScrollingDown = down
	t.state.ScrollingUp = !down
	return t.state
}

// State returns the last snapshot without observing a new sample
func (t *Tracker) State() ScrollState {
	return t.state
}

// Reset forgets all observed samples
func (t *Tracker) Reset() {
	*t = Tracker{}
}
