// Package region drives the position engine for individual sticky elements:
// it resolves options and platform capabilities into per-cycle engine
// configuration, diffs derived state by value, and surfaces change callbacks
// and scheduling hints to the host
package region

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
)

// Priority is the scheduling hint attached to every update outcome
type Priority uint8

const (
	// PriorityLow marks regions far from the viewport; hosts may coalesce
	// or defer their cycles
	PriorityLow Priority = iota
	// PriorityHighest marks regions near the viewport; hosts should run
	// their cycles first and never skip them
	PriorityHighest
)

func (p Priority) String() string {
	if p == PriorityHighest {
		return "highest"
	}
	return "low"
}

// Input is the per-cycle measurement set taken by the host measurer
type Input struct {
	Sticky    core.Measurement
	Container core.Measurement
	Scroll    core.ScrollState
	Viewport  core.Dimensions
}

// Outcome is the result of one update cycle
type Outcome struct {
	State engine.State
	// Changed reports that State differs from the previous cycle; render
	// work and callbacks only happen on changed cycles
	Changed  bool
	Priority Priority
}

// Region drives the position engine for one sticky element. It owns the
// previous derived state, the one-time native advisory, and the resolved
// capability set; the geometry itself stays in the pure engine.
//
// A region is stepped from a single goroutine, the host's update loop
type Region struct {
	id      uuid.UUID
	opts    Options
	group   engine.Group
	decider *engine.NativeDecider
	log     *slog.Logger

	platformNative bool
	hint           engine.RenderHint

	prev     engine.State
	havePrev bool
}

// New creates a region and applies the placeholder pass-throughs
func New(opts Options) *Region {
	id := uuid.New()

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	name := opts.Name
	if name == "" {
		name = id.String()
	}
	log = log.With("region", name)

	r := &Region{
		id:      id,
		opts:    opts,
		group:   opts.Group,
		decider: engine.NewNativeDecider(log),
		log:     log,
	}
	if r.group == nil {
		r.group = engine.NopGroup{}
	}

	if opts.Capabilities != nil {
		r.platformNative = opts.Capabilities.NativeSticky()
		r.hint = opts.Capabilities.PreferredHint()
	}
	if r.hint == engine.HintNone {
		r.hint = engine.HintTranslate
	}

	if opts.Placeholder != nil {
		opts.Placeholder.SetAttributes(opts.Attributes)
		opts.Placeholder.SetResizing(!opts.DisableResizing)
	}
	return r
}

// ID returns the region's unique identifier
func (r *Region) ID() uuid.UUID {
	return r.id
}

// Name returns the configured name, or the identifier when unnamed
func (r *Region) Name() string {
	if r.opts.Name != "" {
		return r.opts.Name
	}
	return r.id.String()
}

// State returns the most recently derived state
func (r *Region) State() engine.State {
	return r.prev
}

// SetDisabled toggles the region at runtime
func (r *Region) SetDisabled(disabled bool) {
	r.opts.Disabled = disabled
}

// Step runs one update cycle against the given measurements
func (r *Region) Step(in Input) Outcome {
	if r.opts.Disabled {
		return Outcome{State: r.prev, Changed: false, Priority: PriorityLow}
	}

	offset := r.group.Current()
	cfg := engine.Config{
		OffsetTop:           r.opts.DefaultOffsetTop + offset.Top,
		Overflow:            r.opts.Overflow,
		DisableAcceleration: r.opts.DisableAcceleration,
		HasContainer:        r.opts.Container,
		Native:              r.opts.Native,
		PlatformNative:      r.platformNative,
		Hint:                r.hint,
	}

	state := engine.Update(cfg, engine.Input{
		Sticky:    in.Sticky,
		Container: in.Container,
		Scroll:    in.Scroll,
		Viewport:  in.Viewport,
		Offset:    offset,
	})
	r.decider.Decide(cfg, offset, state.Overflow, r.directChild())

	changed := !r.havePrev || state != r.prev
	if changed {
		r.prev = state
		r.havePrev = true
		if r.opts.Sink != nil {
			r.opts.Sink.ApplyStyle(state.Style)
		}
		if r.opts.OnChange != nil {
			r.opts.OnChange(Snapshot{
				Sticky:         state.Sticky,
				DockedToBottom: state.DockedToBottom,
				NearViewport:   state.NearViewport,
				Overflow:       state.Overflow,
			})
		}
	}

	priority := PriorityLow
	if state.NearViewport {
		priority = PriorityHighest
	}
	return Outcome{State: state, Changed: changed, Priority: priority}
}

func (r *Region) directChild() bool {
	if r.opts.Placeholder == nil {
		return true
	}
	return r.opts.Placeholder.DirectChildOfContainer()
}
