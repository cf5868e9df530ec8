package gravel

import "fmt"

// Action is an input event understood by a sketch.
type Action int

const (
	None Action = iota
	Save
	ChangeColor
	Reseed
	IncreaseDisplacement
	DecreaseDisplacement
	IncreaseRotation
	DecreaseRotation
	Quit
)

var actionNames = map[Action]string{
	None:                 "none",
	Save:                 "save",
	ChangeColor:          "change-color",
	Reseed:               "reseed",
	IncreaseDisplacement: "displacement+",
	DecreaseDisplacement: "displacement-",
	IncreaseRotation:     "rotation+",
	DecreaseRotation:     "rotation-",
	Quit:                 "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Apply performs the state transition for a and reports whether the frame
// has to be recomputed. Save and Quit are left to the frontend and never
// change state.
func (s *State) Apply(a Action) bool {
	switch a {
	case ChangeColor:
		s.ChangeColor()
	case Reseed:
		s.Reseed()
	case IncreaseDisplacement:
		s.IncreaseDisplacement()
	case DecreaseDisplacement:
		return s.DecreaseDisplacement()
	case IncreaseRotation:
		s.IncreaseRotation()
	case DecreaseRotation:
		return s.DecreaseRotation()
	default:
		return false
	}
	return true
}

// TermKeys maps bubbletea key strings to actions.
var TermKeys = map[string]Action{
	"s":      Save,
	"c":      ChangeColor,
	"r":      Reseed,
	"up":     IncreaseDisplacement,
	"down":   DecreaseDisplacement,
	"right":  IncreaseRotation,
	"left":   DecreaseRotation,
	"q":      Quit,
	"ctrl+c": Quit,
}

// ActionForKey looks up a terminal key; unknown keys map to None.
func ActionForKey(key string) Action {
	return TermKeys[key]
}
