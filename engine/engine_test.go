package engine

import (
	"testing"

	"github.com/lixenwraith/sticky/core"
)

func TestStickyRequiresScrollPastOffset(t *testing.T) {
	for _, overflow := range []OverflowPolicy{OverflowEnd, OverflowFlow} {
		cfg := Config{OffsetTop: 20, Overflow: overflow, HasContainer: true}
		in := Input{
			Sticky:    core.Measure(30, 630, 600),
			Container: core.Measure(30, 2030, 2000),
			Viewport:  core.Dimensions{Height: 400},
		}

		st := Update(cfg, in)
		if st.Sticky {
			t.Errorf("%v: expected not sticky while container top 30 > offset 20", overflow)
		}
		if st.Style.Position != PositionAbsolute || st.Style.Top != 0 {
			t.Errorf("%v: expected normal flow style, got %+v", overflow, st.Style)
		}
	}
}

func TestImplicitContainerPinsAtOffset(t *testing.T) {
	cfg := Config{OffsetTop: 10}
	in := Input{
		Sticky:    core.Measure(10, 70, 60),
		Container: core.Measure(10, 70, 60),
		Viewport:  core.Dimensions{Height: 400},
	}

	st := Update(cfg, in)
	if !st.Sticky {
		t.Fatal("Expected sticky once the natural position reaches the offset")
	}
	if st.DockedToBottom {
		t.Error("Docking requires a declared container")
	}
	if st.Style.Position != PositionFixed || st.Style.Top != 10 {
		t.Errorf("Expected fixed at 10, got %+v", st.Style)
	}

	// One row short of the offset: still in normal flow
	in.Sticky = core.Measure(11, 71, 60)
	in.Container = core.Measure(11, 71, 60)
	st = Update(cfg, in)
	if st.Sticky {
		t.Error("Expected normal flow while natural position 11 > offset 10")
	}
}

func TestDocksWhenContainerRunsOut(t *testing.T) {
	cfg := Config{OffsetTop: 0, HasContainer: true}
	in := Input{
		Sticky:    core.Measure(-20, 40, 60),
		Container: core.Measure(-50, 40, 90),
		Viewport:  core.Dimensions{Height: 400},
	}

	st := Update(cfg, in)
	if st.Sticky {
		t.Error("Expected not sticky with only 40 of room for height 60")
	}
	if !st.DockedToBottom {
		t.Fatal("Expected docked to bottom")
	}
	if st.Style.Position != PositionAbsolute || st.Style.Top != 30 {
		t.Errorf("Expected absolute at 30 (container 90 - element 60), got %+v", st.Style)
	}
}

func TestNeverDocksWhenTallerThanContainer(t *testing.T) {
	cfg := Config{OffsetTop: 0, HasContainer: true}
	in := Input{
		Sticky:    core.Measure(-10, 110, 120),
		Container: core.Measure(-10, 80, 90),
		Viewport:  core.Dimensions{Height: 400},
	}

	st := Update(cfg, in)
	if st.DockedToBottom {
		t.Error("Element taller than its container must never dock")
	}
	if st.Sticky {
		t.Error("Expected not sticky with no room below the offset")
	}
}

func TestPinsWithGroupOffset(t *testing.T) {
	cfg := Config{OffsetTop: 20, HasContainer: true}
	in := Input{
		Sticky:    core.Measure(20, 70, 50),
		Container: core.Measure(10, 500, 490),
		Viewport:  core.Dimensions{Height: 400},
		Offset:    core.StickyOffset{Top: 20, Height: 20},
	}

	st := Update(cfg, in)
	if !st.Sticky || st.DockedToBottom {
		t.Fatalf("Expected pinned state, got %+v", st)
	}
	if st.Style.Position != PositionFixed || st.Style.Top != 20 {
		t.Errorf("Expected fixed at 20, got %+v", st.Style)
	}
}

func TestTransitionalOffsetWhileHeaderAnimates(t *testing.T) {
	// Header reserves 20 but has only slid in 10 of it: the element rides
	// the scroll trajectory in absolute terms until the handoff completes
	cfg := Config{OffsetTop: 10, HasContainer: true}
	in := Input{
		Sticky:    core.Measure(10, 60, 50),
		Container: core.Measure(-40, 460, 500),
		Scroll:    core.ScrollState{Y: 100, YTurn: 90, YDTurn: 10, ScrollingDown: true},
		Viewport:  core.Dimensions{Height: 400},
		Offset:    core.StickyOffset{Top: 10, Height: 20},
	}

	st := Update(cfg, in)
	if !st.Sticky {
		t.Fatal("Expected sticky")
	}
	if st.Style.Position != PositionAbsolute {
		t.Fatalf("Expected absolute placement during the handoff, got %+v", st.Style)
	}
	// (90 - 100 + 10) - (-40) + 10
	if st.Style.Top != 50 {
		t.Errorf("Expected top 50, got %v", st.Style.Top)
	}

	// Header fully in place: plain fixed pin at the effective offset
	cfg.OffsetTop = 20
	in.Offset = core.StickyOffset{Top: 20, Height: 20}
	st = Update(cfg, in)
	if st.Style.Position != PositionFixed || st.Style.Top != 20 {
		t.Errorf("Expected fixed at 20 after the handoff, got %+v", st.Style)
	}
}

func TestNearViewport(t *testing.T) {
	tests := []struct {
		top, bottom float64
		want        bool
	}{
		{-500, -600, true},
		{-1000, -900, false},
		{-1000, -300, true},
		{699, 1299, true},
		{700, 1300, false},
		{0, 600, true},
	}

	cfg := Config{OffsetTop: 0, HasContainer: true}
	for _, tt := range tests {
		in := Input{
			Sticky:    core.Measure(tt.top, tt.bottom, 600),
			Container: core.Measure(tt.top, tt.top+2000, 2000),
			Viewport:  core.Dimensions{Height: 400},
		}
		if got := Update(cfg, in).NearViewport; got != tt.want {
			t.Errorf("Rect{%v, %v}: expected near=%v, got %v", tt.top, tt.bottom, tt.want, got)
		}
	}
}

func TestStateEqualAcrossJitter(t *testing.T) {
	cfg := Config{OffsetTop: 0, HasContainer: true, Hint: HintCompositor}
	in := Input{
		Sticky:    core.Measure(0, 60, 60),
		Container: core.Measure(-100.2, 1899.8, 2000),
		Viewport:  core.Dimensions{Height: 400},
	}
	first := Update(cfg, in)

	// Sub-pixel wobble that survives rounding must not produce a new state
	in.Container = core.Measure(-99.8, 1900.2, 2000)
	second := Update(cfg, in)

	if first != second {
		t.Errorf("Expected value-equal states, got %+v and %+v", first, second)
	}
	if !first.Sticky || first.Style.Position != PositionFixed {
		t.Errorf("Expected pinned state, got %+v", first)
	}
}

func TestUnmeasuredRects(t *testing.T) {
	cfg := Config{OffsetTop: 0, HasContainer: true}

	st := Update(cfg, Input{
		Sticky:   core.Measure(-10, 50, 60),
		Viewport: core.Dimensions{Height: 400},
	})
	if st.Sticky || st.DockedToBottom {
		t.Errorf("Unmeasured container must stay in normal flow, got %+v", st)
	}
	if st.Style.Position != PositionAbsolute || st.Style.Top != 0 {
		t.Errorf("Expected normal flow style, got %+v", st.Style)
	}

	st = Update(cfg, Input{
		Container: core.Measure(-10, 1990, 2000),
		Viewport:  core.Dimensions{Height: 400},
	})
	if st.NearViewport {
		t.Error("Unmeasured element cannot be near the viewport")
	}
	if st.DockedToBottom {
		t.Error("Unmeasured element cannot dock")
	}
}

func TestOverflowAppliedOnlyWhenOversized(t *testing.T) {
	cfg := Config{OffsetTop: 0, Overflow: OverflowFlow, HasContainer: true}
	in := Input{
		Sticky:    core.Measure(0, 300, 300),
		Container: core.Measure(0, 2000, 2000),
		Viewport:  core.Dimensions{Height: 400},
	}

	if st := Update(cfg, in); st.Overflow != OverflowEnd {
		t.Errorf("Expected end policy for element shorter than viewport, got %v", st.Overflow)
	}

	in.Sticky = core.Measure(0, 600, 600)
	if st := Update(cfg, in); st.Overflow != OverflowFlow {
		t.Errorf("Expected flow policy for oversized element, got %v", st.Overflow)
	}
}

func TestRenderHint(t *testing.T) {
	cfg := Config{OffsetTop: 0, HasContainer: true, Hint: HintCompositor}
	near := Input{
		Sticky:    core.Measure(0, 60, 60),
		Container: core.Measure(0, 2000, 2000),
		Viewport:  core.Dimensions{Height: 400},
	}
	far := Input{
		Sticky:    core.Measure(5000, 5060, 60),
		Container: core.Measure(5000, 7000, 2000),
		Viewport:  core.Dimensions{Height: 400},
	}

	if st := Update(cfg, near); st.Style.Hint != HintCompositor {
		t.Errorf("Expected compositor hint near the viewport, got %v", st.Style.Hint)
	}
	if st := Update(cfg, far); st.Style.Hint != HintNone {
		t.Errorf("Expected no hint far from the viewport, got %v", st.Style.Hint)
	}

	cfg.DisableAcceleration = true
	if st := Update(cfg, near); st.Style.Hint != HintNone {
		t.Errorf("Expected no hint with acceleration disabled, got %v", st.Style.Hint)
	}
}
