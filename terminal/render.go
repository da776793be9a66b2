package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
)

var (
	styleBlock      = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorSilver)
	styleBlockTitle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite).Bold(true)
	styleSticky     = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	stylePinned     = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite).Bold(true)
	styleDocked     = tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite)
	styleHeader     = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorYellow).Bold(true)
	styleStatus     = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorYellow)
)

func (h *Host) render(w, rows int, viewport core.Dimensions, st core.ScrollState) {
	h.screen.Clear()
	view := core.Round(viewport.Height)

	for _, b := range h.doc.blocks {
		h.renderBlock(b, w, view)
	}
	for _, it := range h.doc.Items() {
		h.renderSticky(it, w, view)
	}
	if h.header != nil {
		h.renderHeader(w)
	}
	h.renderStatus(w, rows, st)
}

func (h *Host) renderBlock(b *Block, w, view int) {
	top := core.Round(b.docTop - h.scrollY)
	bottom := core.Round(b.docTop + b.Height - h.scrollY)

	for row := top; row < bottom; row++ {
		if row < 0 || row >= view {
			continue
		}
		fillRow(h.screen, row, w, styleBlock)
		if row == top {
			drawText(h.screen, 1, row, styleBlockTitle, b.Title)
		}
	}
}

func (h *Host) renderSticky(it *StickyItem, w, view int) {
	state := it.State()
	top := core.Round(it.ScreenTop(h.scrollY))
	bottom := top + core.Round(it.opts.Height)

	style := styleSticky
	switch {
	case state.DockedToBottom:
		style = styleDocked
	case state.Sticky:
		style = stylePinned
	}

	for row := top; row < bottom; row++ {
		if row < 0 || row >= view {
			continue
		}
		fillRow(h.screen, row, w, style)
		if row == top {
			drawText(h.screen, 1, row, style, it.Title()+" "+stateLabel(state))
		}
	}
}

func (h *Host) renderHeader(w int) {
	shown := core.Round(h.header.shown)
	for row := 0; row < shown; row++ {
		fillRow(h.screen, row, w, styleHeader)
	}
	if shown > 0 {
		drawText(h.screen, 1, 0, styleHeader, h.header.title)
	}
}

func (h *Host) renderStatus(w, rows int, st core.ScrollState) {
	row := rows - 1
	if row < 0 {
		return
	}
	fillRow(h.screen, row, w, styleStatus)

	dir := "idle"
	if st.ScrollingDown {
		dir = "down"
	} else if st.ScrollingUp {
		dir = "up"
	}

	var parts []string
	for _, it := range h.doc.Items() {
		parts = append(parts, fmt.Sprintf("%s:%s", it.Title(), stateLabel(it.State())))
	}
	drawText(h.screen, 1, row, styleStatus,
		fmt.Sprintf("y=%.1f %s turn=%.1f | %s", st.Y, dir, st.YTurn, strings.Join(parts, "  ")))
}

// stateLabel compresses a derived state into a short status tag
func stateLabel(state engine.State) string {
	switch {
	case state.Native:
		return "[native]"
	case state.DockedToBottom:
		return "[docked]"
	case state.Sticky && state.Overflow == engine.OverflowFlow:
		return "[flow]"
	case state.Sticky:
		return "[pinned]"
	default:
		return "[normal]"
	}
}

func fillRow(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
