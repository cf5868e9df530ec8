package session

import (
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/san-kum/gravel/internal/gravel"
)

type fakeExporter struct {
	calls int
	err   error
}

func (f *fakeExporter) Export(st *gravel.State) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "output/gravel.png", nil
}

func newTestSession(exp Exporter) *Session {
	st := gravel.NewState(gravel.DefaultRows, gravel.DefaultCols, rand.New(rand.NewPCG(5, 6)))
	st.Seed = 42
	st.Recompute()
	return New("gravel", st, exp, log.New(io.Discard))
}

func TestNewSessionStartsDirty(t *testing.T) {
	s := newTestSession(nil)
	if !s.Dirty() {
		t.Error("first frame should be pending")
	}
	if s.Title() != "gravel" {
		t.Errorf("unexpected title %q", s.Title())
	}
	s.Redrawn()
	if s.Dirty() {
		t.Error("expected clean after redraw")
	}
}

func TestHandleDirtyTracking(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gravel.State)
		act   gravel.Action
		dirty bool
	}{
		{"increase displacement", nil, gravel.IncreaseDisplacement, true},
		{"increase rotation", nil, gravel.IncreaseRotation, true},
		{"decrease displacement", nil, gravel.DecreaseDisplacement, true},
		{"decrease at floor", func(st *gravel.State) { st.Rotation = 0 }, gravel.DecreaseRotation, false},
		{"reseed", nil, gravel.Reseed, true},
		{"change color", nil, gravel.ChangeColor, true},
		{"none", nil, gravel.None, false},
		{"save", nil, gravel.Save, false},
	}
	for _, tt := range tests {
		s := newTestSession(&fakeExporter{})
		if tt.setup != nil {
			tt.setup(s.State)
		}
		s.Redrawn()
		s.Handle(tt.act)
		if s.Dirty() != tt.dirty {
			t.Errorf("%s: expected dirty=%v, got %v", tt.name, tt.dirty, s.Dirty())
		}
		if s.Done() {
			t.Errorf("%s: unexpected quit", tt.name)
		}
	}
}

func TestHandleQuit(t *testing.T) {
	s := newTestSession(nil)
	s.Handle(gravel.Quit)
	if !s.Done() {
		t.Error("expected quit")
	}
}

func TestHandleSave(t *testing.T) {
	exp := &fakeExporter{}
	s := newTestSession(exp)

	s.Handle(gravel.Save)
	if exp.calls != 1 {
		t.Fatalf("expected one export, got %d", exp.calls)
	}
	if s.Title() != "gravel (saved seed 42)" {
		t.Errorf("unexpected title %q", s.Title())
	}

	exp.err = errors.New("disk full")
	s.Handle(gravel.Save)
	if !strings.Contains(s.Title(), "save failed") {
		t.Errorf("expected failure in title, got %q", s.Title())
	}
	if s.Done() {
		t.Error("a failed save must not quit")
	}
}

func TestHandleSaveWithoutExporter(t *testing.T) {
	s := newTestSession(nil)
	s.Handle(gravel.Save)
	if s.Title() != "gravel" {
		t.Errorf("title changed without an exporter: %q", s.Title())
	}
}
