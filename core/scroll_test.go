package core

import "testing"

func TestTrackerFirstSample(t *testing.T) {
	tr := NewTracker()
	st := tr.Observe(40)

	if st.Y != 40 || st.YTurn != 40 || st.YDTurn != 0 {
		t.Errorf("Unexpected state after first sample: %+v", st)
	}
	if st.ScrollingUp || st.ScrollingDown {
		t.Error("Expected no direction before any movement")
	}
}

func TestTrackerFirstMovementSeedsTurn(t *testing.T) {
	tr := NewTracker()
	tr.Observe(100)
	st := tr.Observe(130)

	if !st.ScrollingDown || st.ScrollingUp {
		t.Errorf("Expected downward direction, got %+v", st)
	}
	if st.YTurn != 100 {
		t.Errorf("Expected turn at starting offset 100, got %v", st.YTurn)
	}
	if st.YDTurn != 30 {
		t.Errorf("Expected turn delta 30, got %v", st.YDTurn)
	}
}

func TestTrackerReversalRecordsExtremum(t *testing.T) {
	tr := NewTracker()
	tr.Observe(0)
	tr.Observe(50)
	tr.Observe(120)
	st := tr.Observe(110)

	if !st.ScrollingUp || st.ScrollingDown {
		t.Errorf("Expected upward direction, got %+v", st)
	}
	if st.YTurn != 120 {
		t.Errorf("Expected turn at extremum 120, got %v", st.YTurn)
	}
	if st.YDTurn != -10 {
		t.Errorf("Expected turn delta -10, got %v", st.YDTurn)
	}

	// Continuing in the same direction must not move the turn point
	st = tr.Observe(80)
	if st.YTurn != 120 || st.YDTurn != -10 {
		t.Errorf("Turn state moved without a reversal: %+v", st)
	}

	// Second reversal replaces the turn point with the new extremum
	st = tr.Observe(95)
	if st.YTurn != 80 || st.YDTurn != 15 {
		t.Errorf("Expected turn 80 with delta 15, got %+v", st)
	}
	if !st.ScrollingDown {
		t.Error("Expected downward direction after second reversal")
	}
}

func TestTrackerZeroDelta(t *testing.T) {
	tr := NewTracker()
	tr.Observe(10)
	tr.Observe(25)
	before := tr.State()
	after := tr.Observe(25)

	if after != before {
		t.Errorf("Zero delta changed state: %+v -> %+v", before, after)
	}
	if !after.ScrollingDown {
		t.Error("Zero delta must keep the previous direction")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Observe(10)
	tr.Observe(20)
	tr.Reset()

	if tr.State() != (ScrollState{}) {
		t.Errorf("Expected zero state after reset, got %+v", tr.State())
	}
	st := tr.Observe(5)
	if st.Y != 5 || st.YTurn != 5 || st.ScrollingUp || st.ScrollingDown {
		t.Errorf("Expected fresh seeding after reset, got %+v", st)
	}
}
