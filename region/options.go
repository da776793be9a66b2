package region

import (
	"log/slog"

	"github.com/lixenwraith/sticky/engine"
)

// Placeholder reserves layout space for the element while it is lifted out
// of normal flow
type Placeholder interface {
	// SetAttributes applies pass-through presentation attributes
	SetAttributes(attrs map[string]string)
	// SetResizing toggles whether the reserved space follows element resizes
	SetResizing(enabled bool)
	// DirectChildOfContainer reports whether the placeholder sits immediately
	// under the declared container, the structural precondition for native
	// pinning
	DirectChildOfContainer() bool
}

// RenderSink receives the chosen style whenever it changes
type RenderSink interface {
	ApplyStyle(engine.Style)
}

// Capabilities describes what the platform renderer can do
type Capabilities interface {
	// NativeSticky reports platform support for native pinning
	NativeSticky() bool
	// PreferredHint returns the platform's compositing hint, or HintNone
	// when the platform has no cheap compositing path
	PreferredHint() engine.RenderHint
}

// Snapshot is the payload handed to OnChange for consumer-side conditional
// presentation
type Snapshot struct {
	Sticky         bool
	DockedToBottom bool
	NearViewport   bool
	Overflow       engine.OverflowPolicy
}

// Options configures one sticky region. The zero value is a container-less,
// always-enabled region pinning at offset zero
type Options struct {
	// Name identifies the region in logs and recordings
	Name string
	// Container declares that a bounding container is measured each cycle;
	// without it the viewport acts as the implicit container
	Container bool
	// DefaultOffsetTop is the configured pin threshold before the shared
	// group offset is added
	DefaultOffsetTop float64
	// Overflow is the requested policy for elements taller than the viewport
	Overflow engine.OverflowPolicy
	// DisableResizing stops the placeholder from following element resizes
	DisableResizing bool
	// DisableAcceleration suppresses the render hint entirely
	DisableAcceleration bool
	// Native opts in to platform pinning where the renderer supports it
	Native bool
	// Disabled turns the region off: Step skips recomputation and the
	// element renders unmodified
	Disabled bool
	// Attributes are passed through to the placeholder untouched
	Attributes map[string]string

	// OnChange fires after a cycle whose derived state differs from the
	// previous one
	OnChange func(Snapshot)
	// Sink receives the style on every state change; nil discards styles
	Sink RenderSink
	// Placeholder receives the pass-through options; nil is a region whose
	// host manages reserved space itself
	Placeholder Placeholder
	// Group is the shared offset handle; nil installs the inert handle
	Group engine.Group
	// Capabilities resolves native support and the preferred hint; nil means
	// no native support and the transform fallback hint
	Capabilities Capabilities
	// Logger receives the structural advisory; nil falls back to slog.Default
	Logger *slog.Logger
}
