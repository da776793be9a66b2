package engine

import (
	"log/slog"

	"github.com/lixenwraith/sticky/core"
)

// NativeVerdict reports whether platform pinning substitutes for manual
// positioning this cycle. All four conditions must hold: the caller opted in,
// the platform supports it, the applied overflow policy is end (platform
// pinning cannot express flow tracking), and the shared group offset reserves
// nothing (platform pinning cannot stack under an animated header)
func NativeVerdict(cfg Config, offset core.StickyOffset, applied OverflowPolicy) bool {
	return cfg.Native && cfg.PlatformNative && applied == OverflowEnd && offset.Top == 0
}

// NativeDecider wraps NativeVerdict with the one-time structural advisory.
// One instance per sticky region; recreating the region re-arms the warning
type NativeDecider struct {
	log    *slog.Logger
	warned bool
}

// NewNativeDecider creates a decider logging through log. A nil log falls
// back to slog.Default
func NewNativeDecider(log *slog.Logger) *NativeDecider {
	if log == nil {
		log = slog.Default()
	}
	return &NativeDecider{log: log}
}

// Decide returns the verdict for the cycle and, the first time native
// pinning is requested without the placeholder being a direct child of its
// container, logs an advisory. The advisory never changes the verdict:
// native mode stays best effort once requested
func (d *NativeDecider) Decide(cfg Config, offset core.StickyOffset, applied OverflowPolicy, directChild bool) bool {
	if cfg.Native && !directChild && !d.warned {
		d.warned = true
		d.log.Warn("native pinning requested but the element is not a direct child of its container; behavior is best effort")
	}
	return NativeVerdict(cfg, offset, applied)
}
