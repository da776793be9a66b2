package terminal

import (
	"testing"

	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
)

func TestDocumentLayoutStacksBlocks(t *testing.T) {
	doc := NewDocument(nil, Capabilities{}, nil)
	a := doc.AddBlock("a", 30)
	b := doc.AddBlock("b", 40)
	c := doc.AddBlock("c", 50)
	doc.Layout()

	if a.docTop != 0 || b.docTop != 30 || c.docTop != 70 {
		t.Errorf("Unexpected offsets: %v %v %v", a.docTop, b.docTop, c.docTop)
	}
	if doc.Height() != 120 {
		t.Errorf("Expected height 120, got %v", doc.Height())
	}
}

func TestMeasureBeforeLayoutIsUnmeasured(t *testing.T) {
	doc := NewDocument(nil, Capabilities{}, nil)
	it := doc.AddSticky(StickyOptions{Title: "panel", Height: 5})

	in := doc.Measure(it, core.ScrollState{}, core.Dimensions{Height: 20})
	if in.Sticky.Measured() || in.Container.Measured() {
		t.Error("Expected unmeasured rects before layout")
	}
}

func TestMeasureAppliesStyleFeedback(t *testing.T) {
	doc := NewDocument(nil, Capabilities{}, nil)
	container := doc.AddBlock("container", 40)
	it := doc.AddSticky(StickyOptions{Title: "panel", Height: 5, Container: container})
	doc.Layout()

	scroll := core.ScrollState{Y: 10}
	in := doc.Measure(it, scroll, core.Dimensions{Height: 20})
	rect, ok := in.Sticky.Rect()
	if !ok || rect.Top != -10 || rect.Bottom != -5 {
		t.Errorf("Expected flow rect {-10 -5}, got %+v (ok=%v)", rect, ok)
	}

	// A fixed style pins the next measurement to the viewport
	it.ApplyStyle(engine.Style{Position: engine.PositionFixed, Top: 2})
	in = doc.Measure(it, scroll, core.Dimensions{Height: 20})
	rect, _ = in.Sticky.Rect()
	if rect.Top != 2 || rect.Bottom != 7 {
		t.Errorf("Expected pinned rect {2 7}, got %+v", rect)
	}

	// An absolute style offsets from the container's document position
	it.ApplyStyle(engine.Style{Position: engine.PositionAbsolute, Top: 35})
	in = doc.Measure(it, scroll, core.Dimensions{Height: 20})
	rect, _ = in.Sticky.Rect()
	if rect.Top != 25 || rect.Bottom != 30 {
		t.Errorf("Expected docked rect {25 30}, got %+v", rect)
	}

	// The container rect ignores the element's style
	crect, _ := in.Container.Rect()
	if crect.Top != -10 || crect.Bottom != 30 || crect.Height != 40 {
		t.Errorf("Unexpected container rect %+v", crect)
	}
}

func TestImplicitContainerTracksFlowRect(t *testing.T) {
	doc := NewDocument(nil, Capabilities{}, nil)
	doc.AddBlock("intro", 25)
	it := doc.AddSticky(StickyOptions{Title: "bar", Height: 4})
	doc.Layout()

	it.ApplyStyle(engine.Style{Position: engine.PositionFixed, Top: 0})
	in := doc.Measure(it, core.ScrollState{Y: 30}, core.Dimensions{Height: 20})

	crect, ok := in.Container.Rect()
	if !ok {
		t.Fatal("Expected a measured implicit container")
	}
	// Anchor block at 25, height 4: flow rect regardless of applied style
	if crect.Top != -5 || crect.Bottom != -1 || crect.Height != 4 {
		t.Errorf("Unexpected implicit container rect %+v", crect)
	}

	srect, _ := in.Sticky.Rect()
	if srect.Top != 0 {
		t.Errorf("Expected pinned element at 0, got %+v", srect)
	}
}

func TestStickyItemPlaceholderContract(t *testing.T) {
	doc := NewDocument(nil, Capabilities{}, nil)
	container := doc.AddBlock("container", 40)

	attrs := map[string]string{"role": "toolbar"}
	direct := doc.AddSticky(StickyOptions{Title: "a", Height: 5, Container: container, Attributes: attrs})
	nested := doc.AddSticky(StickyOptions{Title: "b", Height: 5, Container: container, IndirectChild: true})

	if direct.attrs["role"] != "toolbar" {
		t.Errorf("Expected attribute pass-through, got %v", direct.attrs)
	}
	if !direct.resizing {
		t.Error("Expected resizing enabled by default")
	}
	if !direct.DirectChildOfContainer() {
		t.Error("Expected direct child")
	}
	if nested.DirectChildOfContainer() {
		t.Error("Expected nested child to report indirection")
	}
}
