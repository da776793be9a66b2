package trace

import (
	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
)

// Layout is the document geometry of a scripted session. ContainerTop is the
// container's document offset; for container-less scripts it is the
// element's natural flow offset
type Layout struct {
	ContainerTop    float64 `yaml:"container_top"`
	ContainerHeight float64 `yaml:"container_height"`
	StickyHeight    float64 `yaml:"sticky_height"`
}

// Script is a synthetic session: document geometry plus a scroll offset
// program. Synthesize expands it into a full trace by running the reference
// simulator, so fixtures stay small and hand-editable
type Script struct {
	Name     string     `yaml:"name"`
	Viewport float64    `yaml:"viewport"`
	Config   ConfigSpec `yaml:"config"`
	Layout   Layout     `yaml:"layout"`
	Scroll   []float64  `yaml:"scroll"`
}

// simulator is the reference render adapter: it applies each decision to the
// element's placement so the next cycle measures the moved element, closing
// the loop the way a live host does
type simulator struct {
	layout       Layout
	hasContainer bool
	style        engine.Style
}

func newSimulator(sc Script) *simulator {
	return &simulator{layout: sc.Layout, hasContainer: sc.Config.HasContainer}
}

func (s *simulator) measure(y float64) (sticky, container core.Measurement) {
	var top float64
	if s.style.Position == engine.PositionFixed {
		top = s.style.Top
	} else {
		top = s.layout.ContainerTop + s.style.Top - y
	}
	sticky = core.Measure(top, top+s.layout.StickyHeight, s.layout.StickyHeight)

	flowTop := s.layout.ContainerTop - y
	if s.hasContainer {
		container = core.Measure(flowTop, flowTop+s.layout.ContainerHeight, s.layout.ContainerHeight)
	} else {
		// Without a declared container the placeholder's flow rect stands in
		container = core.Measure(flowTop, flowTop+s.layout.StickyHeight, s.layout.StickyHeight)
	}
	return sticky, container
}

// Synthesize runs a script through the engine and reference simulator,
// returning the expanded trace and the decision each cycle produced
func Synthesize(sc Script) (*Trace, []Decision) {
	cfg := engine.Config{
		OffsetTop:    sc.Config.OffsetTop,
		Overflow:     sc.Config.Overflow,
		HasContainer: sc.Config.HasContainer,
	}
	sim := newSimulator(sc)
	tracker := core.NewTracker()

	tr := &Trace{Name: sc.Name, Viewport: sc.Viewport, Config: sc.Config}
	decisions := make([]Decision, 0, len(sc.Scroll))

	for _, y := range sc.Scroll {
		stickyM, containerM := sim.measure(y)
		st := engine.Update(cfg, engine.Input{
			Sticky:    stickyM,
			Container: containerM,
			Scroll:    tracker.Observe(y),
			Viewport:  core.Dimensions{Height: sc.Viewport},
		})
		sim.style = st.Style

		tr.Samples = append(tr.Samples, Sample{
			Y:         y,
			Sticky:    rectSpec(stickyM),
			Container: rectSpec(containerM),
		})
		decisions = append(decisions, decisionFrom(y, st))
	}
	return tr, decisions
}
