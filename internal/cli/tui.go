package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"

	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/pipeline"
	"github.com/matzehuels/sortwheel/pkg/render/wheel"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

const (
	// hueStep is the width in degrees of one terminal colour band.
	hueStep = 15

	// chromeRows is the number of terminal rows used by header and footer.
	chromeRows = 3

	defaultCols = 80
	defaultRows = 40

	cellGlyph = "•"
)

// hueStyles holds one foreground style per colour band.
var hueStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, 360/hueStep)
	for i := range styles {
		c := gg.HSL(float64(i*hueStep), 1, 0.5)
		hex := fmt.Sprintf("#%02x%02x%02x", uint8(c.R*255), uint8(c.G*255), uint8(c.B*255))
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return styles
}()

// =============================================================================
// Messages
// =============================================================================

// frameMsg carries one rasterised snapshot. Cells hold value+1, or 0 for an
// empty cell.
type frameMsg struct {
	cells      []int
	cols, rows int
}

type stageMsg string

type doneMsg struct {
	result *pipeline.Result
	err    error
}

// =============================================================================
// Terminal Renderer
// =============================================================================

// terminal rasterises snapshots onto a character grid. Terminal cells are
// about twice as tall as they are wide, so the wheel is laid out on a grid
// of twice the row count and folded.
type terminal struct {
	mu   sync.Mutex
	n    int
	cols int
	rows int
	send func(tea.Msg)
}

func newTerminal(n, cols, rows int, send func(tea.Msg)) *terminal {
	return &terminal{n: n, cols: cols, rows: rows, send: send}
}

// Render copies s into a fresh grid before handing it to the UI, so the
// snapshot is not referenced after Render returns.
func (t *terminal) Render(s snapshot.Snapshot) error {
	t.mu.Lock()
	cols, rows, n := t.cols, t.rows, t.n
	t.mu.Unlock()
	if cols < 1 || rows < 1 {
		return nil
	}

	w := wheel.New(cols, rows*2, n)
	cells := make([]int, cols*rows)
	s.Each(func(pos, value int) {
		p := w.Point(pos, value)
		col, row := p.X, p.Y/2
		if col < 0 || col >= cols || row < 0 || row >= rows || p.Y < 0 {
			return
		}
		cells[row*cols+col] = value + 1
	})
	t.send(frameMsg{cells: cells, cols: cols, rows: rows})
	return nil
}

func (t *terminal) resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = cols, rows
}

// stageHooks forwards stage starts to the UI.
type stageHooks struct {
	observability.NoopPipelineHooks
	send func(tea.Msg)
}

func (h stageHooks) OnStageStart(_ context.Context, _, stage string) {
	h.send(stageMsg(stage))
}

// =============================================================================
// animationModel - bubbletea view of a running pipeline
// =============================================================================

// animationModel draws the latest frame with the running stage and a
// frame counter. Quitting cancels the pipeline.
type animationModel struct {
	term   *terminal
	cancel context.CancelFunc
	n      int

	frame  frameMsg
	frames int
	stage  string

	result *pipeline.Result
	err    error
	quit   bool // user asked to quit
}

func newAnimationModel(term *terminal, n int, cancel context.CancelFunc) animationModel {
	return animationModel{term: term, n: n, cancel: cancel}
}

func (m animationModel) Init() tea.Cmd {
	return nil
}

func (m animationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			m.cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.term.resize(msg.Width, max(msg.Height-chromeRows, 1))
	case frameMsg:
		m.frame = msg
		m.frames++
	case stageMsg:
		m.stage = string(msg)
	case doneMsg:
		m.result, m.err = msg.result, msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m animationModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	if m.stage != "" {
		b.WriteString(StyleDim.Render(" " + iconArrow + " "))
		b.WriteString(StyleHighlight.Render(m.stage))
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s frames", humanize.Comma(int64(m.frames)))))
	b.WriteString("\n")

	b.WriteString(m.grid())

	b.WriteString(StyleDim.Render("q quit"))
	return b.String()
}

// grid renders the cells row by row, styling runs of one colour band
// together.
func (m animationModel) grid() string {
	f := m.frame
	if f.cols == 0 {
		return ""
	}
	var b strings.Builder
	for r := 0; r < f.rows; r++ {
		row := f.cells[r*f.cols : (r+1)*f.cols]
		band, run := -1, 0
		flush := func() {
			if run == 0 {
				return
			}
			if band < 0 {
				b.WriteString(strings.Repeat(" ", run))
			} else {
				b.WriteString(hueStyles[band].Render(strings.Repeat(cellGlyph, run)))
			}
			run = 0
		}
		for _, cell := range row {
			next := -1
			if cell > 0 {
				next = int(wheel.Hue(cell-1, m.n)) / hueStep % len(hueStyles)
			}
			if next != band {
				flush()
				band = next
			}
			run++
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}
