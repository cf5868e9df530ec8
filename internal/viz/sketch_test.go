package viz

import (
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/gravel/internal/gravel"
)

type fakeExporter struct {
	calls int
	seeds []uint64
	err   error
}

func (f *fakeExporter) Export(st *gravel.State) (string, error) {
	f.calls++
	f.seeds = append(f.seeds, st.Seed)
	if f.err != nil {
		return "", f.err
	}
	return "output/gravel.png", nil
}

func newTestModel(exp Exporter) Model {
	st := gravel.NewState(gravel.DefaultRows, gravel.DefaultCols, rand.New(rand.NewPCG(5, 6)))
	st.Seed = 42
	st.Recompute()
	return NewModel(st, exp, log.New(io.Discard), 60, 30)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, k string) (Model, tea.Cmd) {
	next, cmd := m.Update(key(k))
	return next.(Model), cmd
}

func TestTermLayoutFits(t *testing.T) {
	tests := []struct{ w, h int }{{60, 30}, {80, 24}, {20, 10}, {200, 60}}
	for _, tt := range tests {
		l := TermLayout(20, 20, tt.w, tt.h)
		if l.Pitch < 2 {
			t.Errorf("%dx%d: pitch %f below minimum", tt.w, tt.h, l.Pitch)
		}
		if l.Pitch > 2 && (l.Width() > tt.w*2 || l.Height() > tt.h*4) {
			t.Errorf("%dx%d: layout %dx%d does not fit", tt.w, tt.h, l.Width(), l.Height())
		}
	}
}

func TestModelDrawsStones(t *testing.T) {
	m := newTestModel(nil)
	c := m.Canvas()
	on := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				on++
			}
		}
	}
	if on == 0 {
		t.Error("expected stones on the canvas")
	}
}

func TestModelAdjustments(t *testing.T) {
	m := newTestModel(nil)
	before := m.Canvas().String()

	m, _ = send(m, "up")
	if m.State().Displacement < 1.09 {
		t.Errorf("expected displacement 1.1, got %f", m.State().Displacement)
	}
	m, _ = send(m, "right")
	if m.State().Rotation < 1.09 {
		t.Errorf("expected rotation 1.1, got %f", m.State().Rotation)
	}
	if m.Canvas().String() == before {
		t.Error("expected canvas to change after adjustment")
	}
	if m.Status() != "rotation+" {
		t.Errorf("unexpected status %q", m.Status())
	}

	for i := 0; i < 30; i++ {
		m, _ = send(m, "down")
		m, _ = send(m, "left")
	}
	if m.State().Displacement != 0 || m.State().Rotation != 0 {
		t.Errorf("expected factors floored at 0, got %f, %f", m.State().Displacement, m.State().Rotation)
	}
}

func TestModelReseedAndColor(t *testing.T) {
	m := newTestModel(nil)
	for i := 0; i < 20; i++ {
		m, _ = send(m, "c")
		if !gravel.InPalette(m.State().BackgroundColor()) {
			t.Fatal("background left the palette")
		}
	}
	if m.State().Seed != 42 {
		t.Error("color change must not reseed")
	}

	m, _ = send(m, "r")
	if m.State().Seed >= gravel.SeedSpace {
		t.Errorf("seed %d out of range", m.State().Seed)
	}
}

func TestModelSave(t *testing.T) {
	exp := &fakeExporter{}
	m := newTestModel(exp)

	m, _ = send(m, "s")
	if exp.calls != 1 || exp.seeds[0] != 42 {
		t.Errorf("expected one export for seed 42, got %d %v", exp.calls, exp.seeds)
	}
	if !strings.Contains(m.Status(), "saved") {
		t.Errorf("unexpected status %q", m.Status())
	}

	exp.err = errors.New("disk full")
	m, cmd := send(m, "s")
	if cmd != nil {
		t.Error("a failed save must not quit")
	}
	if !strings.Contains(m.Status(), "disk full") {
		t.Errorf("expected failure in status, got %q", m.Status())
	}
}

func TestModelSaveWithoutExporter(t *testing.T) {
	m := newTestModel(nil)
	m, _ = send(m, "s")
	if m.Status() != "saving disabled" {
		t.Errorf("unexpected status %q", m.Status())
	}
}

func TestModelQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(nil)
		_, cmd := send(m, k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", k)
		}
	}
}

func TestModelIgnoresUnknownKeys(t *testing.T) {
	m := newTestModel(nil)
	before := *m.State()
	m, cmd := send(m, "x")
	if cmd != nil {
		t.Error("unexpected command")
	}
	after := *m.State()
	if after.Seed != before.Seed || after.Displacement != before.Displacement || after.Background != before.Background {
		t.Error("unknown key changed the state")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 42, Height: 26})
	m = next.(Model)
	if m.Canvas().Width > 40 {
		t.Errorf("canvas wider than terminal: %d", m.Canvas().Width)
	}
}

func TestModelTinyTerminal(t *testing.T) {
	m := newTestModel(nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 0, Height: 0})
	m = next.(Model)
	if m.Canvas().Width > 1 || m.Canvas().Height > 1 {
		t.Errorf("canvas not clamped: %dx%d", m.Canvas().Width, m.Canvas().Height)
	}
	if !strings.Contains(m.View(), "terminal too small") {
		t.Error("expected a too-small notice")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = next.(Model)
	if strings.Contains(m.View(), "terminal too small") {
		t.Error("notice should clear once the grid fits")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(nil)
	out := m.View()
	for _, want := range []string{"GRAVEL", "seed", "42", m.State().Swatch().Name, "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
