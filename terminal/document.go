package terminal

import (
	"log/slog"

	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
	"github.com/lixenwraith/sticky/region"
)

// Block is a plain content block stacked in document flow
type Block struct {
	Title  string
	Height float64

	docTop float64
}

// StickyOptions declares one sticky element in a document
type StickyOptions struct {
	Title string
	// Height is the element's extent in fractional rows
	Height float64
	// Container bounds the element; nil pins against the viewport using the
	// element's own flow position
	Container *Block
	// OffsetTop is the configured pin threshold before the group offset
	OffsetTop float64
	Overflow  engine.OverflowPolicy
	// Native opts in to scroll-region pinning where the terminal supports it
	Native bool
	// IndirectChild marks the element as nested deeper than the container's
	// first level, the structure native pinning cannot express
	IndirectChild bool
	Disabled      bool
	Attributes    map[string]string
	// OnChange is forwarded to the region
	OnChange func(region.Snapshot)
}

// StickyItem is a mounted sticky element: region, placeholder, and the
// current applied style in one value. It implements the region's Placeholder
// and RenderSink collaborators
type StickyItem struct {
	opts   StickyOptions
	anchor *Block
	reg    *region.Region

	style    engine.Style
	resizing bool
	attrs    map[string]string
	priority region.Priority
}

// SetAttributes implements region.Placeholder
func (it *StickyItem) SetAttributes(attrs map[string]string) {
	it.attrs = attrs
}

// SetResizing implements region.Placeholder
func (it *StickyItem) SetResizing(enabled bool) {
	it.resizing = enabled
}

// DirectChildOfContainer implements region.Placeholder
func (it *StickyItem) DirectChildOfContainer() bool {
	return !it.opts.IndirectChild
}

// ApplyStyle implements region.RenderSink: the style applied here is what
// the next cycle measures, closing the feedback loop
func (it *StickyItem) ApplyStyle(style engine.Style) {
	it.style = style
}

// Title returns the element's display title
func (it *StickyItem) Title() string {
	return it.opts.Title
}

// State returns the region's last derived state
func (it *StickyItem) State() engine.State {
	return it.reg.State()
}

// Region returns the element's region
func (it *StickyItem) Region() *region.Region {
	return it.reg
}

// Document is a vertical arrangement of content blocks and sticky elements.
// All offsets are fractional rows; the renderer rounds once at paint time
type Document struct {
	blocks []*Block
	items  []*StickyItem

	group  engine.Group
	caps   Capabilities
	log    *slog.Logger
	height float64
	laid   bool
}

// NewDocument creates an empty document. Group may be nil when no regions
// stack; caps should come from Detect or a test stub
func NewDocument(group engine.Group, caps Capabilities, log *slog.Logger) *Document {
	if log == nil {
		log = slog.Default()
	}
	return &Document{group: group, caps: caps, log: log}
}

// AddBlock appends a content block to the flow
func (d *Document) AddBlock(title string, height float64) *Block {
	b := &Block{Title: title, Height: height}
	d.blocks = append(d.blocks, b)
	d.laid = false
	return b
}

// AddSticky mounts a sticky element. Elements anchor at the top of their
// container; without a container the call appends a placeholder block whose
// flow position doubles as the implicit container
func (d *Document) AddSticky(opts StickyOptions) *StickyItem {
	// First cycle always steps, whatever the eventual priority
	it := &StickyItem{opts: opts, priority: region.PriorityHighest}

	if opts.Container != nil {
		it.anchor = opts.Container
	} else {
		it.anchor = d.AddBlock(opts.Title, opts.Height)
	}

	it.reg = region.New(region.Options{
		Name:             opts.Title,
		Container:        opts.Container != nil,
		DefaultOffsetTop: opts.OffsetTop,
		Overflow:         opts.Overflow,
		Native:           opts.Native,
		Disabled:         opts.Disabled,
		Attributes:       opts.Attributes,
		OnChange:         opts.OnChange,
		Sink:             it,
		Placeholder:      it,
		Group:            d.group,
		Capabilities:     d.caps,
		Logger:           d.log,
	})

	d.items = append(d.items, it)
	d.laid = false
	return it
}

// Layout assigns document offsets to all blocks. Must run before Measure;
// hosts call it on init and after structural changes
func (d *Document) Layout() {
	top := 0.0
	for _, b := range d.blocks {
		b.docTop = top
		top += b.Height
	}
	d.height = top
	d.laid = true
}

// Height returns the laid-out document extent
func (d *Document) Height() float64 {
	return d.height
}

// Items returns the sticky elements in document order
func (d *Document) Items() []*StickyItem {
	return d.items
}

// Measure takes the per-cycle measurement for one element. Before layout it
// reports unmeasured rects, which the engine degrades on rather than failing
func (d *Document) Measure(it *StickyItem, scroll core.ScrollState, viewport core.Dimensions) region.Input {
	in := region.Input{Scroll: scroll, Viewport: viewport}
	if !d.laid {
		return in
	}

	var top float64
	if it.style.Position == engine.PositionFixed {
		top = it.style.Top
	} else {
		top = it.anchor.docTop + it.style.Top - scroll.Y
	}
	in.Sticky = core.Measure(top, top+it.opts.Height, it.opts.Height)

	flowTop := it.anchor.docTop - scroll.Y
	if c := it.opts.Container; c != nil {
		in.Container = core.Measure(flowTop, flowTop+c.Height, c.Height)
	} else {
		in.Container = core.Measure(flowTop, flowTop+it.opts.Height, it.opts.Height)
	}
	return in
}

// ScreenTop converts the element's applied style to a viewport row offset
func (it *StickyItem) ScreenTop(scrollY float64) float64 {
	if it.style.Position == engine.PositionFixed {
		return it.style.Top
	}
	return it.anchor.docTop + it.style.Top - scrollY
}
