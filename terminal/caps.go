package terminal

import (
	"os"
	"strings"

	"github.com/lixenwraith/sticky/engine"
)

// Capabilities describes what the attached terminal can do for pinned
// content: margin-based scroll regions stand in for native pinning, and
// synchronized output is the compositing hint worth requesting
type Capabilities struct {
	ScrollRegion bool
	SyncOutput   bool
}

// NativeSticky reports platform support for native pinning
func (c Capabilities) NativeSticky() bool {
	return c.ScrollRegion
}

// PreferredHint returns the compositing hint worth attaching near the
// viewport, or HintNone when the terminal has no synchronized output
func (c Capabilities) PreferredHint() engine.RenderHint {
	if c.SyncOutput {
		return engine.HintCompositor
	}
	return engine.HintNone
}

// Detect determines terminal capability from environment
func Detect() Capabilities {
	term := os.Getenv("TERM")

	caps := Capabilities{
		// Margin scroll regions are universal outside dumb terminals
		ScrollRegion: term != "" && term != "dumb",
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" {
		caps.SyncOutput = true
	}

	if strings.Contains(term, "kitty") ||
		strings.Contains(term, "wezterm") ||
		strings.Contains(term, "alacritty") ||
		strings.Contains(term, "ghostty") {
		caps.SyncOutput = true
	}

	return caps
}
