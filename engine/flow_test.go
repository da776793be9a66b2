package engine

import (
	"testing"

	"github.com/lixenwraith/sticky/core"
)

// flowInput builds an oversized-element input from document-space geometry:
// the container spans [containerDoc, containerDoc+containerH] and the element
// top sits at elementDoc, both translated to viewport coordinates at scroll y
func flowInput(y, yTurn float64, down bool, containerDoc, containerH, elementDoc, elementH float64) Input {
	dTurn := -1.0
	if down {
		dTurn = 1.0
	}
	return Input{
		Sticky:    core.Measure(elementDoc-y, elementDoc-y+elementH, elementH),
		Container: core.Measure(containerDoc-y, containerDoc-y+containerH, containerH),
		Scroll: core.ScrollState{
			Y:             y,
			YTurn:         yTurn,
			YDTurn:        dTurn,
			ScrollingDown: down,
			ScrollingUp:   !down,
		},
		Viewport: core.Dimensions{Height: 400},
	}
}

func TestFlowRestsAtContainerTopOnEntry(t *testing.T) {
	cfg := Config{Overflow: OverflowFlow, HasContainer: true}

	// Scrolling down into the container, turn point far above it
	st := Update(cfg, flowInput(1100, 0, true, 1000, 2000, 1000, 600))
	if !st.Sticky || st.Overflow != OverflowFlow {
		t.Fatalf("Expected sticky flow state, got %+v", st)
	}
	if st.Style.Position != PositionAbsolute || st.Style.Top != 0 {
		t.Errorf("Expected flow from container top, got %+v", st.Style)
	}
}

func TestFlowPinsBottomWhenTrailingEdgeRead(t *testing.T) {
	cfg := Config{Overflow: OverflowFlow, HasContainer: true}

	// Element bottom has met the viewport bottom while scrolling down: the
	// element holds with its hidden excess above the viewport
	st := Update(cfg, flowInput(2000, 0, true, 1000, 2000, 1800, 600))
	if !st.Sticky {
		t.Fatalf("Expected sticky, got %+v", st)
	}
	if st.Style.Position != PositionFixed || st.Style.Top != -200 {
		t.Errorf("Expected fixed at -200 (element 600 vs viewport 400), got %+v", st.Style)
	}
}

func TestFlowReleasesAfterDownwardReversal(t *testing.T) {
	cfg := Config{Overflow: OverflowFlow, HasContainer: true}

	// Reversed downward at 1400 inside the container; the element keeps its
	// absolute position and travels with the content
	st := Update(cfg, flowInput(1450, 1400, true, 1000, 2000, 1300, 600))
	if !st.Sticky {
		t.Fatalf("Expected sticky, got %+v", st)
	}
	if st.Style.Position != PositionAbsolute || st.Style.Top != 300 {
		t.Errorf("Expected absolute at 300, got %+v", st.Style)
	}
}

func TestFlowTravelsUpwardAfterReversal(t *testing.T) {
	cfg := Config{Overflow: OverflowFlow, HasContainer: true}

	// Reversed upward at 2400; the element released from the bottom pin
	// keeps its document position 1800, which is 800 into the container,
	// with its leading edge still above the pin offset
	st := Update(cfg, flowInput(2000, 2400, false, 1000, 2000, 1800, 600))
	if !st.Sticky {
		t.Fatalf("Expected sticky, got %+v", st)
	}
	if st.Style.Position != PositionAbsolute || st.Style.Top != 800 {
		t.Errorf("Expected absolute at 800, got %+v", st.Style)
	}
}

func TestFlowPinsTopWhenLeadingEdgeReached(t *testing.T) {
	cfg := Config{Overflow: OverflowFlow, HasContainer: true}

	// Scrolling up, the element top has come back to the pin offset
	st := Update(cfg, flowInput(1500, 2200, false, 1000, 2000, 1500, 600))
	if !st.Sticky {
		t.Fatalf("Expected sticky, got %+v", st)
	}
	if st.Style.Position != PositionFixed || st.Style.Top != 0 {
		t.Errorf("Expected fixed at the offset, got %+v", st.Style)
	}
}

func TestFlowRestsAtTopBeforeContainerReached(t *testing.T) {
	cfg := Config{Overflow: OverflowFlow, HasContainer: true}

	// Scrolling up with the container top back at the fold
	st := Update(cfg, flowInput(1000, 1600, false, 1000, 2000, 1600, 600))
	if !st.Sticky {
		t.Fatalf("Expected sticky, got %+v", st)
	}
	if st.Style.Position != PositionAbsolute || st.Style.Top != 0 {
		t.Errorf("Expected flow from container top, got %+v", st.Style)
	}
}

func TestFlowRestsAtTopWithinBandAfterFarTurn(t *testing.T) {
	cfg := Config{Overflow: OverflowFlow, HasContainer: true}

	// Turn happened past the container end; travel since the turn is still
	// inside the excess height, so the element resets to the container top
	st := Update(cfg, flowInput(2600, 3100, false, 1000, 2000, 2500, 1000))
	if !st.Sticky {
		t.Fatalf("Expected sticky, got %+v", st)
	}
	if st.Style.Position != PositionAbsolute || st.Style.Top != 0 {
		t.Errorf("Expected flow from container top, got %+v", st.Style)
	}
}
