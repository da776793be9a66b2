package terminal

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
	"github.com/lixenwraith/sticky/parameter"
	"github.com/lixenwraith/sticky/region"
)

const statusRows = 1

// HeaderOptions declares the auto-hiding group header drawn above the
// document. Its visible extent is written to the shared offset coordinator
// each frame, before any region steps
type HeaderOptions struct {
	Title  string
	Height float64
}

type header struct {
	title  string
	height float64
	shown  float64
	prevY  float64
	seen   bool
}

// observe slides the header out while scrolling down and back in while
// scrolling up, clamped to its full height
func (hd *header) observe(y float64) {
	if !hd.seen {
		hd.seen = true
		hd.prevY = y
		return
	}
	hd.shown -= y - hd.prevY
	hd.prevY = y
	if hd.shown < 0 {
		hd.shown = 0
	}
	if hd.shown > hd.height {
		hd.shown = hd.height
	}
}

// Options configures a Host
type Options struct {
	// Header enables the auto-hiding header; requires Coordinator
	Header *HeaderOptions
	// Coordinator is the shared offset instance the document's regions read
	Coordinator *engine.Coordinator
	// OnCycle observes every region step, in document order
	OnCycle func(name string, in region.Input, out region.Outcome)
	Logger  *slog.Logger
}

// Host drives a document against a tcell screen: it owns the scroll state,
// steps every region once per frame in document order, and repaints
type Host struct {
	screen tcell.Screen
	doc    *Document
	opts   Options
	log    *slog.Logger

	tracker *core.Tracker
	header  *header
	scrollY float64
	frame   int
}

// New creates a host for an initialized screen
func New(screen tcell.Screen, doc *Document, opts Options) *Host {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	h := &Host{
		screen:  screen,
		doc:     doc,
		opts:    opts,
		log:     log,
		tracker: core.NewTracker(),
	}
	if opts.Header != nil {
		h.header = &header{
			title:  opts.Header.Title,
			height: opts.Header.Height,
			shown:  opts.Header.Height,
		}
	}
	doc.Layout()
	return h
}

// ScrollY returns the current scroll offset in fractional rows
func (h *Host) ScrollY() float64 {
	return h.scrollY
}

// ScrollBy moves the viewport by dy fractional rows
func (h *Host) ScrollBy(dy float64) {
	h.ScrollTo(h.scrollY + dy)
}

// ScrollTo moves the viewport to y, clamped to the document
func (h *Host) ScrollTo(y float64) {
	_, rows := h.screen.Size()
	limit := h.doc.Height() - h.viewport(rows).Height
	if limit < 0 {
		limit = 0
	}
	if y < 0 {
		y = 0
	}
	if y > limit {
		y = limit
	}
	h.scrollY = y
}

func (h *Host) viewport(rows int) core.Dimensions {
	v := float64(rows - statusRows)
	if v < 0 {
		v = 0
	}
	return core.Dimensions{Height: v}
}

// Frame runs one update cycle: scroll observation, shared offset write,
// region steps in document order, repaint
func (h *Host) Frame() {
	w, rows := h.screen.Size()
	viewport := h.viewport(rows)
	st := h.tracker.Observe(h.scrollY)

	if h.header != nil && h.opts.Coordinator != nil {
		h.header.observe(st.Y)
		h.opts.Coordinator.Update(h.header.shown, h.header.height)
	}

	h.frame++
	for _, it := range h.doc.Items() {
		// Far regions step on a stride; near regions every frame
		if it.priority == region.PriorityLow && h.frame%parameter.LowPriorityStride != 0 {
			continue
		}
		in := h.doc.Measure(it, st, viewport)
		out := it.reg.Step(in)
		it.priority = out.Priority
		if h.opts.OnCycle != nil {
			h.opts.OnCycle(it.Title(), in, out)
		}
	}

	h.render(w, rows, viewport, st)
	h.screen.Show()
}

// Run loops frames and input until quit. The screen must be initialized;
// the caller owns Fini
func (h *Host) Run() error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	h.Frame()
	for {
		select {
		case <-ticker.C:
			h.Frame()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handleEvent(ev) {
				return nil
			}
		}
	}
}

// handleEvent applies one input event; returns true to quit
func (h *Host) handleEvent(ev tcell.Event) bool {
	_, rows := h.screen.Size()
	page := h.viewport(rows).Height * parameter.PageStepRatio

	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelDown != 0:
			h.ScrollBy(parameter.ScrollStep)
		case ev.Buttons()&tcell.WheelUp != 0:
			h.ScrollBy(-parameter.ScrollStep)
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyDown:
			h.ScrollBy(parameter.ScrollStep)
		case tcell.KeyUp:
			h.ScrollBy(-parameter.ScrollStep)
		case tcell.KeyPgDn:
			h.ScrollBy(page)
		case tcell.KeyPgUp:
			h.ScrollBy(-page)
		case tcell.KeyHome:
			h.ScrollTo(0)
		case tcell.KeyEnd:
			h.ScrollTo(h.doc.Height())
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'j':
				h.ScrollBy(parameter.ScrollStep)
			case 'k':
				h.ScrollBy(-parameter.ScrollStep)
			case 'g':
				h.ScrollTo(0)
			case 'G':
				h.ScrollTo(h.doc.Height())
			}
		}
	}
	return false
}
