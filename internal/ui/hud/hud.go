// Package hud provides the debug overlay for the login scene: the two
// interaction flags, the typing timer and every shape's offset vector.
package hud

import (
	"fmt"
	"image/color"
	"time"

	"chosenoffset.com/lookout/internal/anim"
	"chosenoffset.com/lookout/internal/render"
)

// Config defines where and how the HUD is drawn
type Config struct {
	Visible  bool
	Position string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity  float64 // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() Config {
	return Config{
		Visible:  false,
		Position: "top-left",
		Opacity:  0.7,
	}
}

// Source is what the HUD reads every frame. *anim.Driver satisfies it.
type Source interface {
	Configs() []anim.ShapeConfig
	Offsets() []anim.OffsetVector
	State() anim.InteractionState
	TypingPending() (bool, time.Duration)
	Revision() uint64
	AnchorCount() int
}

// HUD manages the debug overlay
type HUD struct {
	config       Config
	screenWidth  int
	screenHeight int
	source       Source

	panel       render.Image
	panelWidth  int
	panelHeight int
	lineHeight  int
}

// New creates a new HUD with the given configuration
func New(config Config, screenWidth, screenHeight int) *HUD {
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   330,
		lineHeight:   16,
	}
}

// SetSource sets the driver to display
func (h *HUD) SetSource(src Source) {
	h.source = src
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Toggle flips visibility.
func (h *HUD) Toggle() {
	h.config.Visible = !h.config.Visible
}

// Visible reports whether the HUD is drawn.
func (h *HUD) Visible() bool {
	return h.config.Visible
}

// Lines returns the text rows of the overlay.
func (h *HUD) Lines() []string {
	if h.source == nil {
		return nil
	}
	state := h.source.State()
	lines := []string{
		fmt.Sprintf("Pointer inside: %s", yesNo(state.PointerInside)),
		fmt.Sprintf("Typing: %s", yesNo(state.Typing)),
	}
	if pending, left := h.source.TypingPending(); pending {
		lines = append(lines, fmt.Sprintf("Settles in: %dms", left.Milliseconds()))
	}
	lines = append(lines,
		fmt.Sprintf("Revision: %d", h.source.Revision()),
		fmt.Sprintf("Anchors: %d/%d", h.source.AnchorCount(), len(h.source.Configs())),
	)

	offsets := h.source.Offsets()
	for i, cfg := range h.source.Configs() {
		if i >= len(offsets) {
			break
		}
		o := offsets[i]
		lines = append(lines, fmt.Sprintf("%-10s face %+5.1f,%+5.1f r%+4.1f eye %+4.1f,%+4.1f skew %+4.1f",
			cfg.ID, o.Face.X, o.Face.Y, o.Face.Rotate, o.Eyes.X, o.Eyes.Y, o.BodySkew))
	}
	return lines
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(r render.Renderer, screen render.Image) {
	if !h.config.Visible || h.source == nil {
		return
	}

	lines := h.Lines()
	height := 16 + len(lines)*h.lineHeight
	h.ensurePanel(r, height)

	x, y := h.calculatePosition()

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: float32(h.config.Opacity)}
	opts.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(h.panel, opts)

	currentY := y + 8
	for _, line := range lines {
		r.DrawText(screen, line, x+8, currentY, color.RGBA{255, 255, 200, 255}, 1.0)
		currentY += h.lineHeight
	}
}

// ensurePanel keeps a background image of the right height.
func (h *HUD) ensurePanel(r render.Renderer, height int) {
	if h.panel != nil && h.panelHeight == height {
		return
	}
	if h.panel != nil {
		h.panel.Dispose()
	}
	h.panelHeight = height
	h.panel = r.NewImage(h.panelWidth, height)
	h.panel.Fill(color.RGBA{20, 20, 30, 255})
	r.StrokeRect(h.panel, 0, 0, float32(h.panelWidth), float32(height), 1, color.RGBA{60, 60, 80, 255})
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
