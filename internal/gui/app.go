package gui

import (
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravel/internal/gravel"
	"github.com/san-kum/gravel/internal/gui/session"
	"github.com/san-kum/gravel/internal/render"
)

var keys = map[int32]gravel.Action{
	rl.KeyS:      gravel.Save,
	rl.KeyC:      gravel.ChangeColor,
	rl.KeyR:      gravel.Reseed,
	rl.KeyUp:     gravel.IncreaseDisplacement,
	rl.KeyDown:   gravel.DecreaseDisplacement,
	rl.KeyRight:  gravel.IncreaseRotation,
	rl.KeyLeft:   gravel.DecreaseRotation,
	rl.KeyQ:      gravel.Quit,
	rl.KeyEscape: gravel.Quit,
}

type App struct {
	Session *session.Session
	Layout  render.Layout

	frame rl.Texture2D
	title string
}

// initWindow opens a window sized to the layout. Event waiting keeps the
// loop idle until input arrives, so frames are only produced on demand.
func initWindow(title string, l render.Layout) {
	rl.InitWindow(int32(l.Width()), int32(l.Height()), title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	rl.EnableEventWaiting()
}

func NewApp(title string, st *gravel.State, l render.Layout, exp session.Exporter, logger *log.Logger) *App {
	return &App{
		Session: session.New(title, st, exp, logger),
		Layout:  l,
		title:   title,
	}
}

// Run opens the window and blocks until it is closed.
func Run(title string, st *gravel.State, l render.Layout, exp session.Exporter, logger *log.Logger) {
	initWindow(title, l)
	defer rl.CloseWindow()
	app := NewApp(title, st, l, exp, logger)
	app.RunLoop()
}

func (a *App) RunLoop() {
	defer a.unload()
	for !a.Session.Done() && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		a.Session.Handle(keys[k])
	}
	if t := a.Session.Title(); t != a.title {
		rl.SetWindowTitle(t)
		a.title = t
	}
	if a.Session.Dirty() {
		a.refresh()
	}
}

// refresh recomputes the stones and uploads a new frame texture.
func (a *App) refresh() {
	st := a.Session.State
	st.Recompute()
	img := render.Frame(st.Stones, a.Layout, st.BackgroundColor())
	a.unload()
	pixels := rl.NewImageFromImage(img)
	a.frame = rl.LoadTextureFromImage(pixels)
	rl.UnloadImage(pixels)
	a.Session.Redrawn()
}

func (a *App) unload() {
	if a.frame.ID != 0 {
		rl.UnloadTexture(a.frame)
		a.frame = rl.Texture2D{}
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(a.frame, 0, 0, rl.White)
	rl.EndDrawing()
}
