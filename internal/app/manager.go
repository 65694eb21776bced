// Package app drives the window: it owns the active scene and maps window
// events onto it.
package app

import (
	"fmt"
	"image/color"
	"log/slog"

	"chosenoffset.com/lookout/internal/clock"
	"chosenoffset.com/lookout/internal/config"
	"chosenoffset.com/lookout/internal/render"
	"chosenoffset.com/lookout/internal/ui/login"
)

// State is the lifecycle state of the window.
type State int

const (
	StateLogin State = iota
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateLogin:
		return "login"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Manager implements render.Game for the login page.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Login        *login.Scene
	Renderer     render.Renderer
	InputMgr     render.InputManager

	log *slog.Logger
}

// NewManager builds and mounts the login scene.
func NewManager(cfg config.Config, r render.Renderer, in render.InputManager, clk clock.Clock, log *slog.Logger) (*Manager, error) {
	scene, err := login.New(cfg, r, in, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create login scene: %w", err)
	}
	scene.Mount()

	return &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		State:        StateLogin,
		Login:        scene,
		Renderer:     r,
		InputMgr:     in,
		log:          log.With("component", "app"),
	}, nil
}

// Update advances the active scene. Escape closes the window.
func (m *Manager) Update() error {
	switch m.State {
	case StateLogin:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.Close()
			return render.ErrQuit
		}
		if err := m.Login.Update(); err != nil {
			return fmt.Errorf("login scene update: %w", err)
		}
	case StateClosed:
		return render.ErrQuit
	}
	return nil
}

// Draw renders the active scene.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateLogin:
		m.Login.Draw(screen)
	case StateClosed:
		screen.Fill(color.Black)
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.State == StateLogin {
			m.Login.Resize(outsideWidth, outsideHeight)
		}
		m.log.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close unmounts the scene. It is safe to call more than once.
func (m *Manager) Close() {
	if m.State == StateClosed {
		return
	}
	m.Login.Unmount()
	m.State = StateClosed
	m.log.Info("window closed")
}
