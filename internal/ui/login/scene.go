// Package login is the login scene: a row of lookouts that follow the
// pointer on the left, and the login form on the right. The scene is the
// rendering layer for the animation driver; it owns the anchors and wires the
// password field to the driver's suppression handlers.
package login

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/lookout/internal/anim"
	"chosenoffset.com/lookout/internal/clock"
	"chosenoffset.com/lookout/internal/config"
	"chosenoffset.com/lookout/internal/input"
	"chosenoffset.com/lookout/internal/render"
	"chosenoffset.com/lookout/internal/ui/form"
	"chosenoffset.com/lookout/internal/ui/hud"
)

const stackOverlap = 60.0

var (
	backgroundColor = color.RGBA{241, 245, 249, 255}
	cardColor       = color.RGBA{255, 255, 255, 160}
	stageColor      = color.RGBA{255, 255, 255, 40}
)

// Scene is the login page.
type Scene struct {
	Renderer render.Renderer
	InputMgr render.InputManager

	Driver   *anim.Driver
	Tracker  *input.PointerTracker
	Form     *form.Form
	HUD      *hud.HUD
	Lookouts []*Lookout

	log          *slog.Logger
	screenWidth  int
	screenHeight int
	mounted      bool
}

// New builds the scene from the config. Call Mount before the first Update.
func New(cfg config.Config, r render.Renderer, in render.InputManager, clk clock.Clock, log *slog.Logger) (*Scene, error) {
	driver, err := anim.NewDriver(cfg.ShapeConfigs(), anim.Options{
		ReferenceDistance: cfg.Driver.ReferenceDistance,
		DebounceWindow:    cfg.DebounceWindow(),
		Clock:             clk,
		Logger:            log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create animation driver: %w", err)
	}

	lookouts := make([]*Lookout, 0, len(cfg.Shapes))
	for _, shape := range cfg.Shapes {
		l, err := newLookout(shape)
		if err != nil {
			return nil, err
		}
		lookouts = append(lookouts, l)
	}

	h := hud.New(cfg.HUD, cfg.Window.Width, cfg.Window.Height)
	h.SetSource(driver)

	return &Scene{
		Renderer:     r,
		InputMgr:     in,
		Driver:       driver,
		Tracker:      input.NewPointerTracker(in),
		Form:         form.New(log),
		HUD:          h,
		Lookouts:     lookouts,
		log:          log.With("component", "login"),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
	}, nil
}

// Mounted reports whether the scene is live.
func (s *Scene) Mounted() bool {
	return s.mounted
}

// Mount lays out the scene, registers the anchors and attaches the driver.
func (s *Scene) Mount() {
	if s.mounted || s.Driver.Closed() {
		return
	}
	s.layout()

	for _, l := range s.Lookouts {
		l.mounted = true
		s.Driver.SetAnchor(l.ID(), l)
	}
	s.Driver.Attach(s.Tracker)

	pw := s.Form.Password
	pw.OnPointerEnter = s.Driver.EnterSuppressor
	pw.OnFocus = s.Driver.EnterSuppressor
	pw.OnPointerLeave = s.Driver.LeaveSuppressor
	pw.OnBlur = s.Driver.LeaveSuppressor
	pw.OnKeyDown = s.Driver.KeyActivity
	pw.OnKeyUp = s.Driver.KeyActivity
	pw.OnInput = s.Driver.KeyActivity

	s.mounted = true
	s.log.Info("login scene mounted", "shapes", len(s.Lookouts))
}

// Unmount tears the scene down: the driver is closed, which cancels a pending
// typing timer, and every anchor is released.
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}
	s.Driver.Close()
	for _, l := range s.Lookouts {
		s.Driver.UnsetAnchor(l.ID())
		l.mounted = false
	}
	s.mounted = false
	s.log.Info("login scene unmounted")
}

// Resize relays the scene out. Anchors are live, so the driver picks up the
// new geometry on the next pointer move.
func (s *Scene) Resize(width, height int) {
	if width == s.screenWidth && height == s.screenHeight {
		return
	}
	s.screenWidth, s.screenHeight = width, height
	s.HUD.SetScreenSize(width, height)
	s.layout()
}

// layout places the lookouts along a baseline in the left half and the form
// in the right half.
func (s *Scene) layout() {
	w, h := float64(s.screenWidth), float64(s.screenHeight)
	stageWidth := w / 2

	total := 0.0
	for i, l := range s.Lookouts {
		total += l.appearance.Width * l.cfg.Layout.ScaleOrDefault()
		if i > 0 {
			total -= stackOverlap
		}
	}
	fit := 1.0
	if total > stageWidth*0.9 {
		fit = stageWidth * 0.9 / total
	}

	baseline := h * 0.72
	x := stageWidth/2 - total*fit/2
	for _, l := range s.Lookouts {
		scale := l.cfg.Layout.ScaleOrDefault() * fit
		width := l.appearance.Width * scale
		l.scale = scale
		l.base = mgl64.Vec2{
			x + width/2 + l.cfg.Layout.TranslateX*fit,
			baseline + l.cfg.Layout.TranslateY*fit,
		}
		x += width - stackOverlap*fit
	}

	formWidth := math.Min(360, w/2-80)
	s.Form.Layout(w/2+(w/2-formWidth)/2, h*0.22, formWidth)
}

// Update processes one tick. Pointer moves are handled before the form, so a
// pointer that enters the password field ends the tick neutralized.
func (s *Scene) Update() error {
	if !s.mounted {
		return nil
	}
	s.Tracker.Poll()
	s.Form.Update(s.InputMgr)
	s.Driver.Update()

	if s.InputMgr.IsKeyJustPressed(render.KeyF1) {
		s.HUD.Toggle()
	}
	return nil
}

// drawOrder returns the lookouts sorted by z-index, stable for ties.
func (s *Scene) drawOrder() []int {
	order := make([]int, len(s.Lookouts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.Lookouts[order[a]].cfg.Layout.ZIndex < s.Lookouts[order[b]].cfg.Layout.ZIndex
	})
	return order
}

// Draw renders the page.
func (s *Scene) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	s.Renderer.FillRect(screen, 24, 24, w-48, h-48, cardColor)
	s.Renderer.FillRect(screen, 24, 24, w/2-24, h-48, stageColor)

	offsets := s.Driver.Offsets()
	suppressed := s.Driver.State().Suppressed()
	for _, i := range s.drawOrder() {
		s.Lookouts[i].Draw(s.Renderer, screen, offsets[i], suppressed)
	}

	s.Form.Draw(s.Renderer, screen)
	s.HUD.Draw(s.Renderer, screen)
}
