// Package trace records and replays positioning sessions: a trace is the raw
// measurement stream one region saw, cycle by cycle, replayable through the
// engine to reproduce every decision deterministically
package trace

import (
	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
)

// RectSpec is a serialized rect measurement; a nil RectSpec in a sample
// stands for an unmeasured rect
type RectSpec struct {
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Height float64 `yaml:"height" json:"height"`
}

func (r *RectSpec) measurement() core.Measurement {
	if r == nil {
		return core.Unmeasured()
	}
	return core.Measure(r.Top, r.Bottom, r.Height)
}

func rectSpec(m core.Measurement) *RectSpec {
	rect, ok := m.Rect()
	if !ok {
		return nil
	}
	return &RectSpec{Top: rect.Top, Bottom: rect.Bottom, Height: rect.Height}
}

// Sample is one recorded update cycle of raw measurer inputs
type Sample struct {
	Y         float64   `yaml:"y" json:"y"`
	Sticky    *RectSpec `yaml:"sticky,omitempty" json:"sticky,omitempty"`
	Container *RectSpec `yaml:"container,omitempty" json:"container,omitempty"`
}

// NewSample captures one cycle's raw inputs as recorded by a live host
func NewSample(y float64, sticky, container core.Measurement) Sample {
	return Sample{Y: y, Sticky: rectSpec(sticky), Container: rectSpec(container)}
}

// ConfigSpec is the serialized region configuration a trace was taken under
type ConfigSpec struct {
	OffsetTop    float64               `yaml:"offset_top" json:"offset_top"`
	Overflow     engine.OverflowPolicy `yaml:"overflow" json:"overflow"`
	HasContainer bool                  `yaml:"has_container" json:"has_container"`
}

// Trace is one recorded scroll session against one region configuration
type Trace struct {
	Name     string     `yaml:"name" json:"name"`
	Viewport float64    `yaml:"viewport" json:"viewport"`
	Config   ConfigSpec `yaml:"config" json:"config"`
	Samples  []Sample   `yaml:"samples" json:"samples"`
}

// Decision is the engine output for one replayed sample
type Decision struct {
	Y        float64               `json:"y"`
	Sticky   bool                  `json:"sticky"`
	Docked   bool                  `json:"docked"`
	Near     bool                  `json:"near"`
	Overflow engine.OverflowPolicy `json:"overflow"`
	Position engine.Position       `json:"position"`
	Top      float64               `json:"top"`
	Hint     engine.RenderHint     `json:"hint"`
}

func decisionFrom(y float64, st engine.State) Decision {
	return Decision{
		Y:        y,
		Sticky:   st.Sticky,
		Docked:   st.DockedToBottom,
		Near:     st.NearViewport,
		Overflow: st.Overflow,
		Position: st.Style.Position,
		Top:      st.Style.Top,
		Hint:     st.Style.Hint,
	}
}

// Replay feeds every recorded sample through a fresh engine configuration
// and scroll tracker and returns one decision per sample. Replaying the same
// trace always yields the same decisions
func Replay(tr *Trace) []Decision {
	cfg := engine.Config{
		OffsetTop:    tr.Config.OffsetTop,
		Overflow:     tr.Config.Overflow,
		HasContainer: tr.Config.HasContainer,
	}
	tracker := core.NewTracker()

	decisions := make([]Decision, 0, len(tr.Samples))
	for _, s := range tr.Samples {
		st := engine.Update(cfg, engine.Input{
			Sticky:    s.Sticky.measurement(),
			Container: s.Container.measurement(),
			Scroll:    tracker.Observe(s.Y),
			Viewport:  core.Dimensions{Height: tr.Viewport},
		})
		decisions = append(decisions, decisionFrom(s.Y, st))
	}
	return decisions
}
