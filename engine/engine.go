package engine

import (
	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/parameter"
)

// Update derives the sticky state for one cycle from the current measurements.
// Pure: identical cfg and in always produce a value-equal State, and the
// function holds no memory between calls
func Update(cfg Config, in Input) State {
	applied := appliedOverflow(cfg, in)

	sticky := isSticky(cfg, in)
	docked := isDockedToBottom(cfg, in)
	near := isNearToViewport(in.Sticky)

	style := deriveStyle(cfg, in, applied, sticky, docked)
	if !cfg.DisableAcceleration && near {
		style.Hint = cfg.Hint
	}

	return State{
		Sticky:         sticky,
		DockedToBottom: docked,
		NearViewport:   near,
		Overflow:       applied,
		Native:         NativeVerdict(cfg, in.Offset, applied),
		Style:          style,
	}
}

// appliedOverflow resolves the policy for this cycle: flow only takes effect
// once the element is genuinely taller than the viewport
func appliedOverflow(cfg Config, in Input) OverflowPolicy {
	if cfg.Overflow == OverflowFlow && in.Sticky.OrZero().Height > in.Viewport.Height {
		return OverflowFlow
	}
	return OverflowEnd
}

// effectiveHeight is the height that must still fit above the container
// bottom. Under flow policy an oversized element only needs one viewport of
// room, since the part beyond the viewport scrolls instead of pinning
func effectiveHeight(cfg Config, in Input) float64 {
	h := in.Sticky.OrZero().Height
	if cfg.Overflow == OverflowFlow && h > in.Viewport.Height {
		return in.Viewport.Height
	}
	return h
}

// isSticky reports whether the element leaves normal flow this cycle
func isSticky(cfg Config, in Input) bool {
	container, ok := in.Container.Rect()
	if !ok {
		return false
	}

	top := float64(core.Round(container.Top))
	if !cfg.HasContainer {
		// The viewport is the implicit container: the element pins as soon
		// as its natural position scrolls past the offset
		return top <= cfg.OffsetTop
	}

	if top > cfg.OffsetTop {
		return false
	}
	// Room left between the pin offset and the container bottom
	if float64(core.Round(container.Bottom))-cfg.OffsetTop < effectiveHeight(cfg, in) {
		return false
	}
	return true
}

// isDockedToBottom reports whether the element parks at the container bottom
// instead of pinning
func isDockedToBottom(cfg Config, in Input) bool {
	if !cfg.HasContainer {
		return false
	}
	stickyRect, ok := in.Sticky.Rect()
	if !ok {
		return false
	}
	container, ok := in.Container.Rect()
	if !ok {
		return false
	}

	// An element taller than its container never fits, so it never docks
	if stickyRect.Height > container.Height {
		return false
	}
	return float64(core.Round(container.Bottom))-cfg.OffsetTop < effectiveHeight(cfg, in)
}

// isNearToViewport reports whether the element sits within the proximity
// window around the visible viewport. Drives both the render hint and the
// host's update priority, so it stays a two-comparison check
func isNearToViewport(m core.Measurement) bool {
	r, ok := m.Rect()
	if !ok {
		return false
	}
	return r.Top-parameter.NearViewportPadding < 0 && r.Bottom+parameter.NearViewportPadding > 0
}

// deriveStyle picks the placement for the cycle; first match wins
func deriveStyle(cfg Config, in Input, applied OverflowPolicy, sticky, docked bool) Style {
	switch {
	case sticky && applied == OverflowFlow:
		return flowStyle(cfg, in)
	case sticky:
		return pinnedStyle(cfg, in)
	case docked:
		container := in.Container.OrZero()
		stickyRect := in.Sticky.OrZero()
		return Style{Position: PositionAbsolute, Top: container.Height - stickyRect.Height}
	default:
		return Style{Position: PositionAbsolute, Top: 0}
	}
}

// pinnedStyle pins at the offset. While a group header above is still
// animating, the element instead rides the scroll trajectory in absolute
// terms so the handoff to the fixed position stays continuous
func pinnedStyle(cfg Config, in Input) Style {
	if 0 < cfg.OffsetTop && cfg.OffsetTop < in.Offset.Height {
		top := (in.Scroll.YTurn - in.Scroll.Y + in.Scroll.YDTurn) -
			float64(core.Round(in.Container.OrZero().Top)) + cfg.OffsetTop
		return Style{Position: PositionAbsolute, Top: top}
	}
	return Style{Position: PositionFixed, Top: cfg.OffsetTop}
}
