package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/gravel/internal/gravel"
	"github.com/san-kum/gravel/internal/render"
)

// Exporter saves the current frame of a sketch and returns where it went.
type Exporter interface {
	Export(st *gravel.State) (string, error)
}

// chrome is the number of terminal lines used around the canvas.
const chrome = 6

// Model draws a sketch on a braille canvas and routes keys to state
// transitions.
type Model struct {
	state  *gravel.State
	export Exporter
	logger *log.Logger

	canvas *Canvas
	layout render.Layout
	maxW   int
	maxH   int
	small  bool
	status string
}

// NewModel fits the grid inside a w x h character area.
func NewModel(st *gravel.State, exp Exporter, logger *log.Logger, w, h int) Model {
	if logger == nil {
		logger = log.Default()
	}
	m := Model{state: st, export: exp, logger: logger, maxW: w, maxH: h}
	m.fit()
	m.draw()
	return m
}

// TermLayout picks the largest dot pitch that fits rows x cols stones into a
// w x h character canvas.
func TermLayout(rows, cols, w, h int) render.Layout {
	dotsW, dotsH := float64(w*2), float64(h*4)
	pitch := math.Floor(math.Min((dotsW-2)/float64(cols), (dotsH-2)/float64(rows)))
	if pitch < 2 {
		pitch = 2
	}
	return render.Layout{Rows: rows, Cols: cols, Pitch: pitch, Margin: 1}
}

func (m *Model) fit() {
	m.layout = TermLayout(m.state.Rows, m.state.Cols, m.maxW, m.maxH)
	cw := (m.layout.Width() + 1) / 2
	ch := (m.layout.Height() + 3) / 4
	// even the smallest pitch overflows; clip to the area and say so
	m.small = cw > m.maxW || ch > m.maxH
	if m.small {
		cw, ch = max(1, min(cw, m.maxW)), max(1, min(ch, m.maxH))
	}
	m.canvas = NewCanvas(cw, ch)
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, s := range m.state.Stones {
		corners := render.Corners(s, m.layout)
		m.canvas.DrawPolygon(corners[:])
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handle(gravel.ActionForKey(msg.String()))
	case tea.WindowSizeMsg:
		m.maxW, m.maxH = msg.Width-2, msg.Height-chrome
		m.fit()
		m.draw()
	}
	return m, nil
}

func (m Model) handle(a gravel.Action) (Model, tea.Cmd) {
	switch a {
	case gravel.Quit:
		return m, tea.Quit
	case gravel.Save:
		if m.export == nil {
			m.status = "saving disabled"
			return m, nil
		}
		path, err := m.export.Export(m.state)
		if err != nil {
			m.logger.Error("save failed", "err", err)
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.logger.Info("saved frame", "path", path)
		m.status = "saved " + path
	default:
		if m.state.Apply(a) {
			m.state.Recompute()
			m.draw()
			m.logger.Debug("recomputed", "action", a, "seed", m.state.Seed)
			m.status = a.String()
		}
	}
	return m, nil
}

// State exposes the sketch being drawn.
func (m Model) State() *gravel.State { return m.state }

// Status is the last message shown under the canvas.
func (m Model) Status() string { return m.status }

// Canvas returns the canvas as currently drawn.
func (m Model) Canvas() *Canvas { return m.canvas }

func (m Model) View() string {
	var b strings.Builder
	sw := m.state.Swatch()

	b.WriteString(Title.Render("GRAVEL") + "  " + Subtle.Render("gravel garden") + "\n")
	paper := lipgloss.NewStyle().
		Foreground(lipgloss.Color(render.Hex(gravel.StrokeColor))).
		Background(lipgloss.Color(render.Hex(sw.Color)))
	if m.small {
		b.WriteString(Subtle.Render("terminal too small") + "\n")
	} else {
		b.WriteString(paper.Render(m.canvas.String()) + "\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s\n",
		Label.Render("seed"), Value.Render(fmt.Sprintf("%d", m.state.Seed)),
		Label.Render("disp"), Value.Render(fmt.Sprintf("%.1f", m.state.Displacement)),
		Label.Render("rot"), Value.Render(fmt.Sprintf("%.1f", m.state.Rotation)),
		Label.Render("bg"), Value.Render(sw.Name)))
	if m.status != "" {
		b.WriteString(Subtle.Render(m.status) + "\n")
	}
	b.WriteString(hints())
	return b.String()
}

func hints() string {
	pairs := [][2]string{
		{"↑/↓", " displacement  "},
		{"←/→", " rotation  "},
		{"r", " reseed  "},
		{"c", " color  "},
		{"s", " save  "},
		{"q", " quit"},
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(Key.Render(p[0]) + KeyHint.Render(p[1]))
	}
	return b.String() + "\n"
}

// Run opens the terminal view and blocks until the user quits.
func Run(st *gravel.State, exp Exporter, logger *log.Logger, w, h int) error {
	_, err := tea.NewProgram(NewModel(st, exp, logger, w, h), tea.WithAltScreen()).Run()
	return err
}
