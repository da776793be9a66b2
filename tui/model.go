// Package tui embeds sticky section headers in a bubbletea program. The unit
// is one terminal row: each section contributes a title line that pins to the
// viewport top while any part of its body remains visible, stacking below
// headers already pinned above it
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/sticky/core"
	"github.com/lixenwraith/sticky/engine"
	"github.com/lixenwraith/sticky/logging"
	"github.com/lixenwraith/sticky/parameter"
	"github.com/lixenwraith/sticky/region"
)

const wheelStep = 3

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	pinnedHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("22"))
	dockedHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("88"))
	bodyStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	footerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
)

// Section is one titled stretch of content. The title line is the section's
// sticky header; the body lines are its container
type Section struct {
	Title string
	Lines []string
}

// headerLine is the render sink for one section header
type headerLine struct {
	style engine.Style
}

func (h *headerLine) ApplyStyle(style engine.Style) {
	h.style = style
}

// Model is a scrolling bubbletea viewport with sticky section headers
type Model struct {
	sections []Section
	tops     []float64
	regions  []*region.Region
	headers  []*headerLine

	coord   *engine.Coordinator
	tracker *core.Tracker

	scrollY float64
	docH    float64
	width   int
	height  int
	ready   bool
}

// New builds a model over the given sections
func New(sections []Section) Model {
	m := Model{
		sections: sections,
		coord:    engine.NewCoordinator(),
		tracker:  core.NewTracker(),
	}

	log := logging.Discard()
	top := 0.0
	for _, sec := range sections {
		m.tops = append(m.tops, top)
		hl := &headerLine{}
		m.headers = append(m.headers, hl)
		m.regions = append(m.regions, region.New(region.Options{
			Name:      sec.Title,
			Container: true,
			Sink:      hl,
			Group:     m.coord,
			Logger:    log,
		}))
		top += 1 + float64(len(sec.Lines))
	}
	m.docH = top
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m.scrollTo(m.scrollY)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelDown:
				return m.scrollBy(wheelStep)
			case tea.MouseButtonWheelUp:
				return m.scrollBy(-wheelStep)
			}
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "j", "down":
			return m.scrollBy(1)
		case "k", "up":
			return m.scrollBy(-1)
		case "pgdown", " ":
			return m.scrollBy(m.view() * parameter.PageStepRatio)
		case "pgup":
			return m.scrollBy(-m.view() * parameter.PageStepRatio)
		case "g", "home":
			return m.scrollTo(0)
		case "G", "end":
			return m.scrollTo(m.docH)
		}
	}
	return m, nil
}

func (m Model) scrollBy(dy float64) (tea.Model, tea.Cmd) {
	return m.scrollTo(m.scrollY + dy)
}

func (m Model) scrollTo(y float64) (tea.Model, tea.Cmd) {
	limit := m.docH - m.view()
	if limit < 0 {
		limit = 0
	}
	if y < 0 {
		y = 0
	}
	if y > limit {
		y = limit
	}
	m.scrollY = y
	m.step()
	return m, nil
}

// view returns the content rows, excluding the footer line
func (m Model) view() float64 {
	v := float64(m.height - 1)
	if v < 0 {
		v = 0
	}
	return v
}

// step runs one update pass: regions step in document order, and every
// header that pins grows the shared offset for the headers below it
func (m Model) step() {
	st := m.tracker.Observe(m.scrollY)
	m.coord.Update(0, 0)
	for i := range m.sections {
		out := m.regions[i].Step(m.measure(i, st))
		if out.State.Sticky && out.State.Style.Position == engine.PositionFixed {
			off := m.coord.Current()
			m.coord.Update(off.Top+1, off.Height+1)
		}
	}
}

func (m Model) measure(i int, st core.ScrollState) region.Input {
	top := m.tops[i] - st.Y
	height := 1 + float64(len(m.sections[i].Lines))

	var hTop float64
	if m.headers[i].style.Position == engine.PositionFixed {
		hTop = m.headers[i].style.Top
	} else {
		hTop = m.tops[i] + m.headers[i].style.Top - st.Y
	}

	return region.Input{
		Sticky:    core.Measure(hTop, hTop+1, 1),
		Container: core.Measure(top, top+height, height),
		Scroll:    st,
		Viewport:  core.Dimensions{Height: m.view()},
	}
}

func (m Model) View() string {
	if !m.ready {
		return "measuring..."
	}

	rows := core.Round(m.view())
	base := core.Round(m.scrollY)
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		lines[r] = m.lineAt(base + r)
	}

	// Headers draw over the flow at their applied position; the natural
	// slot stays blank while a header is pinned elsewhere
	for i := range m.sections {
		style := m.headers[i].style
		var row int
		if style.Position == engine.PositionFixed {
			row = core.Round(style.Top)
		} else {
			row = core.Round(m.tops[i]+style.Top) - base
		}
		if row < 0 || row >= rows {
			continue
		}
		lines[row] = m.renderHeader(i)
	}

	footer := footerStyle.Render(fmt.Sprintf("y=%d  j/k scroll  g/G jump  q quit", base))
	return strings.Join(lines, "\n") + "\n" + footer
}

// lineAt maps one document row to its flow content
func (m Model) lineAt(doc int) string {
	for i, top := range m.tops {
		local := doc - int(top)
		if local < 0 || local > len(m.sections[i].Lines) {
			continue
		}
		if local == 0 {
			// Header slot; the overlay pass draws the header itself
			return ""
		}
		return bodyStyle.Render(m.sections[i].Lines[local-1])
	}
	return ""
}

func (m Model) renderHeader(i int) string {
	state := m.regions[i].State()
	style := headerStyle
	switch {
	case state.DockedToBottom:
		style = dockedHeaderStyle
	case state.Sticky:
		style = pinnedHeaderStyle
	}
	return style.Width(m.width).Render(" " + m.sections[i].Title)
}
