// Package config loads the window, logging, driver and shape settings from a
// TOML file. A missing file is created with the defaults: four lookouts of
// different silhouettes.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/restartfu/gophig"
	"github.com/samber/lo"

	"chosenoffset.com/lookout/internal/anim"
	"chosenoffset.com/lookout/internal/ui/hud"
)

// DefaultPath is where the config is read from when no -config flag is given.
const DefaultPath = "./config.toml"

// Config holds every setting of the application.
type Config struct {
	Log struct {
		Level string // Can be "debug", "info", "warn", "error"
	}
	Window struct {
		Width     int
		Height    int
		Title     string
		Resizable bool
	}
	Driver struct {
		ReferenceDistance float64 // pointer distance at which offsets saturate
		DebounceMillis    int     // typing settles this long after the last key
	}
	HUD    hud.Config
	Shapes []Shape
}

// Shape is the file form of one lookout.
type Shape struct {
	ID          string
	FaceMax     float64
	EyeMax      float64
	RotationMax float64
	BodySkewMax float64
	Layout      Layout
	Appearance  Appearance
}

// Layout mirrors anim.Layout.
type Layout struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	Opacity    float64
	ZIndex     int
}

// Appearance is only read by the renderer.
type Appearance struct {
	Width          float64
	Height         float64
	Silhouette     string // "dome", "block", "round", "tall"
	ShellColor     string
	FaceColor      string
	FeatureColor   string
	HighlightColor string
	EyelidColor    string
	EarColor       string
}

// DefaultConfig returns a config with prefilled default values.
func DefaultConfig() Config {
	c := Config{}

	c.Log.Level = "info"

	c.Window.Width = 1280
	c.Window.Height = 720
	c.Window.Title = "Lookout - Login"
	c.Window.Resizable = true

	c.Driver.ReferenceDistance = anim.DefaultReferenceDistance
	c.Driver.DebounceMillis = int(anim.DefaultDebounceWindow / time.Millisecond)

	c.HUD = hud.DefaultConfig()

	c.Shapes = []Shape{
		{
			ID: "primary", FaceMax: 18, EyeMax: 5, RotationMax: 8, BodySkewMax: 6,
			Layout: Layout{TranslateX: -50, Scale: 0.92, Opacity: 1, ZIndex: 1},
			Appearance: Appearance{
				Width: 110, Height: 230, Silhouette: "dome",
				ShellColor: "#ffffff", FaceColor: "#cfecf9", FeatureColor: "#000000",
				HighlightColor: "#ffffff", EyelidColor: "#0f172a", EarColor: "#ffffff",
			},
		},
		{
			ID: "secondary", FaceMax: 16, EyeMax: 4.5, RotationMax: 7, BodySkewMax: 5,
			Layout: Layout{TranslateX: -20, Scale: 0.95, Opacity: 1, ZIndex: 4},
			Appearance: Appearance{
				Width: 130, Height: 120, Silhouette: "block",
				ShellColor: "#fff7ed", FaceColor: "#fed7aa", FeatureColor: "#9a3412",
				HighlightColor: "#fff5e1", EyelidColor: "#9d5527", EarColor: "#ffedd5",
			},
		},
		{
			ID: "tertiary", FaceMax: 17, EyeMax: 5, RotationMax: 8, BodySkewMax: 6,
			Layout: Layout{TranslateX: 10, Scale: 0.93, Opacity: 1, ZIndex: 2},
			Appearance: Appearance{
				Width: 140, Height: 160, Silhouette: "round",
				ShellColor: "#eff6ff", FaceColor: "#bfdbfe", FeatureColor: "#1d4ed8",
				HighlightColor: "#e0f2fe", EyelidColor: "#1d4ed8", EarColor: "#dbeafe",
			},
		},
		{
			ID: "quaternary", FaceMax: 15, EyeMax: 4, RotationMax: 6, BodySkewMax: 4,
			Layout: Layout{TranslateX: 40, Scale: 0.97, Opacity: 1, ZIndex: 3},
			Appearance: Appearance{
				Width: 120, Height: 200, Silhouette: "tall",
				ShellColor: "#f5f3ff", FaceColor: "#ddd6fe", FeatureColor: "#6b21a8",
				HighlightColor: "#ede9fe", EyelidColor: "#5b21b6", EarColor: "#ede9fe",
			},
		},
	}

	return c
}

// ReadConfig loads the configuration from path. If the file doesn't exist,
// it is created with default values first.
func ReadConfig(path string) (Config, error) {
	g := gophig.NewGophig[Config](path, gophig.TOMLMarshaler{}, os.ModePerm)
	_, err := g.LoadConf()
	if os.IsNotExist(err) {
		if err := g.SaveConf(DefaultConfig()); err != nil {
			return Config{}, fmt.Errorf("failed to write default config: %w", err)
		}
	}
	c, err := g.LoadConf()
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every problem in the config at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Driver.ReferenceDistance <= 0 {
		errs = append(errs, fmt.Errorf("reference distance must be positive, got %v", c.Driver.ReferenceDistance))
	}
	if c.Driver.DebounceMillis <= 0 {
		errs = append(errs, fmt.Errorf("debounce must be positive, got %dms", c.Driver.DebounceMillis))
	}
	if c.HUD.Opacity < 0 || c.HUD.Opacity > 1 {
		errs = append(errs, fmt.Errorf("hud opacity must be within [0, 1], got %v", c.HUD.Opacity))
	}

	if len(c.Shapes) == 0 {
		errs = append(errs, errors.New("at least one shape is required"))
	}
	for i, s := range c.Shapes {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("shape %d: missing id", i))
		}
		if s.FaceMax < 0 || s.EyeMax < 0 || s.RotationMax < 0 || s.BodySkewMax < 0 {
			errs = append(errs, fmt.Errorf("shape %q: maxima must not be negative", s.ID))
		}
		if s.Appearance.Width <= 0 || s.Appearance.Height <= 0 {
			errs = append(errs, fmt.Errorf("shape %q: appearance size must be positive", s.ID))
		}
		for _, hex := range s.Appearance.colors() {
			if _, err := colorful.Hex(hex); err != nil {
				errs = append(errs, fmt.Errorf("shape %q: bad colour %q: %w", s.ID, hex, err))
			}
		}
	}
	dups := lo.FindDuplicates(lo.Map(c.Shapes, func(s Shape, _ int) string { return s.ID }))
	for _, id := range dups {
		errs = append(errs, fmt.Errorf("duplicate shape id %q", id))
	}

	return errors.Join(errs...)
}

// DebounceWindow returns the typing debounce as a duration.
func (c Config) DebounceWindow() time.Duration {
	return time.Duration(c.Driver.DebounceMillis) * time.Millisecond
}

// ShapeConfigs converts the file shapes into driver configs, in file order.
func (c Config) ShapeConfigs() []anim.ShapeConfig {
	return lo.Map(c.Shapes, func(s Shape, _ int) anim.ShapeConfig {
		return s.ShapeConfig()
	})
}

// ShapeConfig converts one file shape into a driver config.
func (s Shape) ShapeConfig() anim.ShapeConfig {
	return anim.ShapeConfig{
		ID:          s.ID,
		FaceMax:     s.FaceMax,
		EyeMax:      s.EyeMax,
		RotationMax: s.RotationMax,
		BodySkewMax: s.BodySkewMax,
		Layout: anim.Layout{
			TranslateX: s.Layout.TranslateX,
			TranslateY: s.Layout.TranslateY,
			Scale:      s.Layout.Scale,
			Opacity:    s.Layout.Opacity,
			ZIndex:     s.Layout.ZIndex,
		},
	}
}

func (a Appearance) colors() []string {
	return []string{a.ShellColor, a.FaceColor, a.FeatureColor, a.HighlightColor, a.EyelidColor, a.EarColor}
}

// ParseLogLevel returns the appropriate slog.Level based on string configuration.
// Returns an error if the provided log level string is not recognized.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unrecognized log level: %q", level)
	}
}
