// Package session holds the window's key handling apart from raylib, so the
// state machine behind the window runs without a display.
package session

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/san-kum/gravel/internal/gravel"
)

// Exporter saves the current frame of a sketch and returns where it went.
type Exporter interface {
	Export(st *gravel.State) (string, error)
}

// Session tracks one window's sketch: whether the frame needs redrawing,
// what the title bar says and whether the user asked to quit.
type Session struct {
	Name   string
	State  *gravel.State
	Export Exporter
	Logger *log.Logger

	title string
	dirty bool
	quit  bool
}

// New starts a session with a frame still to draw.
func New(name string, st *gravel.State, exp Exporter, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		Name:   name,
		State:  st,
		Export: exp,
		Logger: logger,
		title:  name,
		dirty:  true,
	}
}

func (s *Session) Handle(act gravel.Action) {
	switch act {
	case gravel.None:
	case gravel.Quit:
		s.quit = true
	case gravel.Save:
		s.save()
	default:
		if s.State.Apply(act) {
			s.Logger.Debug("state changed", "action", act, "seed", s.State.Seed,
				"displacement", s.State.Displacement, "rotation", s.State.Rotation)
			if act == gravel.ChangeColor {
				s.Logger.Info("changed color", "background", s.State.Swatch().Name)
			}
			s.dirty = true
		}
	}
}

// save writes the current frame. Failures go to the title bar and the log;
// the sketch keeps running.
func (s *Session) save() {
	if s.Export == nil {
		return
	}
	path, err := s.Export.Export(s.State)
	if err != nil {
		s.Logger.Error("save failed", "err", err)
		s.title = fmt.Sprintf("%s (save failed)", s.Name)
		return
	}
	s.Logger.Info("saved frame", "path", path)
	s.title = fmt.Sprintf("%s (saved seed %d)", s.Name, s.State.Seed)
}

// Title is the text the window title bar should show.
func (s *Session) Title() string { return s.title }

// Dirty reports whether the frame on screen is out of date.
func (s *Session) Dirty() bool { return s.dirty }

// Redrawn marks the frame as matching the state.
func (s *Session) Redrawn() { s.dirty = false }

// Done reports whether the user asked to quit.
func (s *Session) Done() bool { return s.quit }
