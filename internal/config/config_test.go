package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chosenoffset.com/lookout/internal/ui/hud"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	if len(c.Shapes) != 4 {
		t.Errorf("Expected 4 default shapes, got %d", len(c.Shapes))
	}
	if c.DebounceWindow() != time.Second {
		t.Errorf("Expected 1s debounce, got %v", c.DebounceWindow())
	}
	if c.Driver.ReferenceDistance != 150 {
		t.Errorf("Expected reference distance 150, got %v", c.Driver.ReferenceDistance)
	}
	if c.HUD != hud.DefaultConfig() {
		t.Errorf("Expected HUD defaults, got %+v", c.HUD)
	}
}

func TestShapeConfigsKeepOrderAndValues(t *testing.T) {
	shapes := DefaultConfig().ShapeConfigs()

	ids := []string{"primary", "secondary", "tertiary", "quaternary"}
	for i, id := range ids {
		if shapes[i].ID != id {
			t.Errorf("Expected shape %d to be %q, got %q", i, id, shapes[i].ID)
		}
	}

	secondary := shapes[1]
	if secondary.EyeMax != 4.5 || secondary.FaceMax != 16 {
		t.Errorf("Expected secondary maxima (16, 4.5), got (%v, %v)", secondary.FaceMax, secondary.EyeMax)
	}
	if secondary.Layout.ZIndex != 4 || secondary.Layout.TranslateX != -20 {
		t.Errorf("Expected secondary layout carried over, got %+v", secondary.Layout)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	c := DefaultConfig()
	c.Log.Level = "loud"
	c.Driver.DebounceMillis = 0
	c.Shapes[1].ID = "primary"
	c.Shapes[2].EyeMax = -1
	c.Shapes[3].Appearance.FaceColor = "purple"

	err := c.Validate()
	if err == nil {
		t.Fatal("Expected validation errors")
	}

	msg := err.Error()
	for _, want := range []string{"log level", "debounce", "duplicate shape id", "must not be negative", "bad colour"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error to mention %q, got: %v", want, msg)
		}
	}
}

func TestValidateRequiresShapes(t *testing.T) {
	c := DefaultConfig()
	c.Shapes = nil
	if err := c.Validate(); err == nil {
		t.Error("Expected error for config without shapes")
	}
}

func TestReadConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	c, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected default config file to be written: %v", err)
	}
	if len(c.Shapes) != len(DefaultConfig().Shapes) {
		t.Errorf("Expected %d shapes, got %d", len(DefaultConfig().Shapes), len(c.Shapes))
	}

	again, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("Failed to re-read config: %v", err)
	}
	if again.Window.Title != c.Window.Title {
		t.Errorf("Expected title %q, got %q", c.Window.Title, again.Window.Title)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}

	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestReadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[Window]\nWidth = -1\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := ReadConfig(path)
	if err == nil {
		t.Fatal("Expected an error for an invalid config")
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("Expected a wrapped error, got %v", err)
	}
}
