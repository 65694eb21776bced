package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/lookout/internal/render"
)

// Engine owns the Ebiten window and loop.
type Engine struct{}

// NewEngine returns the Ebiten engine.
func NewEngine() render.Engine {
	return &Engine{}
}

func (e *Engine) SetWindowSize(width, height int) { ebiten.SetWindowSize(width, height) }

func (e *Engine) SetWindowTitle(title string) { ebiten.SetWindowTitle(title) }

func (e *Engine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

// RunGame blocks until the game ends. A render.ErrQuit from Update is a
// clean exit and returns nil.
func (e *Engine) RunGame(game render.Game) error {
	err := ebiten.RunGame(loop{game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// loop adapts render.Game to ebiten.Game.
type loop struct {
	game render.Game
}

func (l loop) Update() error {
	err := l.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (l loop) Draw(screen *ebiten.Image) {
	l.game.Draw(&surface{img: screen})
}

func (l loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.game.Layout(outsideWidth, outsideHeight)
}
