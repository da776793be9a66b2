package terminal

import (
	"testing"

	"github.com/lixenwraith/sticky/engine"
)

func clearTerminalEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TERM", "KITTY_WINDOW_ID", "WEZTERM_PANE",
		"ALACRITTY_WINDOW_ID", "ITERM_SESSION_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestDetectDumbTerminal(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "dumb")

	caps := Detect()
	if caps.ScrollRegion {
		t.Error("Expected no scroll region support on a dumb terminal")
	}
	if caps.NativeSticky() {
		t.Error("Expected no native sticky on a dumb terminal")
	}
	if caps.PreferredHint() != engine.HintNone {
		t.Errorf("Expected HintNone, got %v", caps.PreferredHint())
	}
}

func TestDetectPlainXterm(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-256color")

	caps := Detect()
	if !caps.ScrollRegion {
		t.Error("Expected scroll region support")
	}
	if caps.SyncOutput {
		t.Error("Expected no synchronized output without a known terminal marker")
	}
}

func TestDetectSyncCapableTerminals(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"kitty window", "KITTY_WINDOW_ID", "1"},
		{"wezterm pane", "WEZTERM_PANE", "0"},
		{"alacritty window", "ALACRITTY_WINDOW_ID", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTerminalEnv(t)
			t.Setenv("TERM", "xterm-256color")
			t.Setenv(tt.key, tt.value)

			caps := Detect()
			if !caps.SyncOutput {
				t.Error("Expected synchronized output support")
			}
			if caps.PreferredHint() != engine.HintCompositor {
				t.Errorf("Expected compositor hint, got %v", caps.PreferredHint())
			}
		})
	}
}

func TestDetectTermNameCarriesSync(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "xterm-kitty")

	if caps := Detect(); !caps.SyncOutput {
		t.Error("Expected synchronized output from TERM name")
	}
}
