package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrQuit is returned from Game.Update to end the loop without reporting a failure.
var ErrQuit = errors.New("render: quit requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Scenes only talk to this interface, so the drawing code can
// be exercised without a window.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// FillPolygon fills the closed polygon described by points. Fewer than
	// three points draw nothing.
	FillPolygon(dst Image, points []mgl64.Vec2, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Fill(clr color.Color)

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
	// Alpha scales the source alpha. Zero means fully opaque so the zero
	// value keeps the image unchanged.
	Alpha float32
}

// GeoM positions an image drawn with DrawImage.
type GeoM interface {
	Translate(tx, ty float64)
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user (keyboard, mouse, text).
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	// AnyKeyJustPressed and AnyKeyJustReleased report raw key-down and key-up
	// edges for every key, including ones without a Key constant.
	AnyKeyJustPressed() bool
	AnyKeyJustReleased() bool

	// AppendInputChars appends the printable runes typed this tick.
	AppendInputChars(runes []rune) []rune

	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the scenes react to
const (
	KeyTab Key = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyF1
	KeyUp
	KeyDown
)

// MouseButton represents a mouse button.
type MouseButton int

// MouseButtonLeft is the primary button.
const MouseButtonLeft MouseButton = 0

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the logic. It is called every tick (typically 60 times per second).
	// Returning ErrQuit ends the loop cleanly.
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
