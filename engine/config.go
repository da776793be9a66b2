package engine

import (
	"fmt"

	"github.com/lixenwraith/sticky/core"
)

// OverflowPolicy selects how an element taller than the viewport behaves
type OverflowPolicy uint8

const (
	// OverflowEnd keeps the element pinned until the container bottom pushes
	// it away; content beyond the viewport stays clipped
	OverflowEnd OverflowPolicy = iota
	// OverflowFlow lets an oversized element scroll with the content and pin
	// at whichever edge matches the scroll direction
	OverflowFlow
)

func (p OverflowPolicy) String() string {
	if p == OverflowFlow {
		return "flow"
	}
	return "end"
}

// MarshalText implements encoding.TextMarshaler for config and trace files
func (p OverflowPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *OverflowPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "flow":
		*p = OverflowFlow
	case "end", "":
		*p = OverflowEnd
	default:
		return fmt.Errorf("unknown overflow policy %q", string(text))
	}
	return nil
}

// Position is the placement mode of the computed style
type Position uint8

const (
	// PositionAbsolute places the element relative to its container
	PositionAbsolute Position = iota
	// PositionFixed places the element relative to the viewport
	PositionFixed
)

func (p Position) String() string {
	if p == PositionFixed {
		return "fixed"
	}
	return "absolute"
}

// MarshalText implements encoding.TextMarshaler
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Position) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fixed":
		*p = PositionFixed
	case "absolute", "":
		*p = PositionAbsolute
	default:
		return fmt.Errorf("unknown position %q", string(text))
	}
	return nil
}

// RenderHint asks the renderer to prepare an element for cheap repositioning
type RenderHint uint8

const (
	// HintNone requests nothing
	HintNone RenderHint = iota
	// HintCompositor is the platform's preferred compositing hint
	HintCompositor
	// HintTranslate is the transform-based fallback for platforms without a
	// compositing hint
	HintTranslate
)

func (h RenderHint) String() string {
	switch h {
	case HintCompositor:
		return "compositor"
	case HintTranslate:
		return "translate"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler
func (h RenderHint) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (h *RenderHint) UnmarshalText(text []byte) error {
	switch string(text) {
	case "compositor":
		*h = HintCompositor
	case "translate":
		*h = HintTranslate
	case "none", "":
		*h = HintNone
	default:
		return fmt.Errorf("unknown render hint %q", string(text))
	}
	return nil
}

// Config is the resolved configuration for one update cycle. The caller folds
// static options, platform capabilities and the shared group offset into it
// before calling Update
type Config struct {
	// OffsetTop is the effective pin threshold: the configured default plus
	// the top currently reserved by the shared group offset
	OffsetTop float64
	// Overflow is the requested policy; Update reports the applied one
	Overflow OverflowPolicy
	// DisableAcceleration suppresses the render hint entirely
	DisableAcceleration bool
	// HasContainer marks that a bounding container was declared; without one
	// the viewport acts as the implicit container
	HasContainer bool
	// Native opts in to platform pinning when the remaining conditions hold
	Native bool
	// PlatformNative reports whether the platform supports native pinning
	PlatformNative bool
	// Hint is the hint attached near the viewport, already resolved to the
	// platform's preference or its fallback
	Hint RenderHint
}

// Input carries the per-cycle measurements taken by the host
type Input struct {
	Sticky    core.Measurement
	Container core.Measurement
	Scroll    core.ScrollState
	Viewport  core.Dimensions
	Offset    core.StickyOffset
}
