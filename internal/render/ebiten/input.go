package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/lookout/internal/render"
)

var keys = map[render.Key]ebiten.Key{
	render.KeyTab:       ebiten.KeyTab,
	render.KeyEnter:     ebiten.KeyEnter,
	render.KeyBackspace: ebiten.KeyBackspace,
	render.KeyEscape:    ebiten.KeyEscape,
	render.KeyF1:        ebiten.KeyF1,
	render.KeyUp:        ebiten.KeyArrowUp,
	render.KeyDown:      ebiten.KeyArrowDown,
}

// Input polls Ebiten's keyboard, cursor and text input.
type Input struct {
	scratch []ebiten.Key
}

// NewInputManager returns the Ebiten input source.
func NewInputManager() render.InputManager {
	return &Input{}
}

func (in *Input) IsKeyJustPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (in *Input) AnyKeyJustPressed() bool {
	in.scratch = inpututil.AppendJustPressedKeys(in.scratch[:0])
	return len(in.scratch) > 0
}

func (in *Input) AnyKeyJustReleased() bool {
	in.scratch = inpututil.AppendJustReleasedKeys(in.scratch[:0])
	return len(in.scratch) > 0
}

func (in *Input) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

func (in *Input) GetCursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
