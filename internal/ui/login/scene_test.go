package login

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"chosenoffset.com/lookout/internal/anim"
	"chosenoffset.com/lookout/internal/clock"
	"chosenoffset.com/lookout/internal/config"
	"chosenoffset.com/lookout/internal/render"
	"chosenoffset.com/lookout/internal/render/rendertest"
)

type fixture struct {
	scene *Scene
	in    *rendertest.Input
	r     *rendertest.Renderer
	clk   *clock.ManualClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	in := rendertest.NewInput()
	r := rendertest.NewRenderer()
	clk := clock.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	scene, err := New(config.DefaultConfig(), r, in, clk, log)
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}
	scene.Mount()
	return &fixture{scene: scene, in: in, r: r, clk: clk}
}

func (f *fixture) tick(t *testing.T) {
	t.Helper()
	if err := f.scene.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	f.in.EndTick()
}

func (f *fixture) passwordCentre() (int, int) {
	b := f.scene.Form.Password.Bounds()
	return int(b.X + b.Width/2), int(b.Y + b.Height/2)
}

func neutral(offsets []anim.OffsetVector) bool {
	for _, o := range offsets {
		if !o.IsNeutral() {
			return false
		}
	}
	return true
}

func TestMountRegistersAnchors(t *testing.T) {
	f := newFixture(t)

	if !f.scene.Mounted() || !f.scene.Driver.Attached() {
		t.Fatal("Expected scene mounted and driver attached")
	}
	if f.scene.Driver.AnchorCount() != len(f.scene.Lookouts) {
		t.Errorf("Expected %d anchors, got %d", len(f.scene.Lookouts), f.scene.Driver.AnchorCount())
	}
	for _, l := range f.scene.Lookouts {
		b, ok := l.Bounds()
		if !ok {
			t.Errorf("Expected lookout %s to be mounted", l.ID())
		}
		if b.Width <= 0 || b.Height <= 0 {
			t.Errorf("Expected lookout %s to have a size, got %+v", l.ID(), b)
		}
	}
}

func TestLookoutsFollowPointer(t *testing.T) {
	f := newFixture(t)

	f.in.MoveTo(0, 0)
	f.tick(t)
	for i, o := range f.scene.Driver.Offsets() {
		if o.Face.X >= 0 || o.Face.Y >= 0 || o.BodySkew <= 0 {
			t.Errorf("Expected shape %d to look up-left, got %+v", i, o)
		}
	}

	f.in.MoveTo(f.scene.screenWidth/2, f.scene.screenHeight-30)
	f.tick(t)
	primary, _ := f.scene.Driver.Offset("primary")
	if primary.Face.X <= 0 || primary.Face.Y <= 0 {
		t.Errorf("Expected primary to look down-right, got %+v", primary)
	}
}

func TestHoveringPasswordNeutralizesSameTick(t *testing.T) {
	f := newFixture(t)
	f.in.MoveTo(10, 10)
	f.tick(t)
	if neutral(f.scene.Driver.Offsets()) {
		t.Fatal("Expected offsets before hovering the password field")
	}

	f.in.MoveTo(f.passwordCentre())
	f.tick(t)

	if !f.scene.Driver.State().PointerInside {
		t.Error("Expected PointerInside while hovering the password field")
	}
	if !neutral(f.scene.Driver.Offsets()) {
		t.Errorf("Expected neutral offsets on the hover tick, got %+v", f.scene.Driver.Offsets())
	}
}

func TestTypingAfterLeavingKeepsSuppressionForDebounce(t *testing.T) {
	f := newFixture(t)

	f.in.Click(f.passwordCentre())
	f.tick(t)
	// Pointer leaves the field but focus stays: leave clears suppression.
	f.in.MoveTo(10, 10)
	f.tick(t)
	if f.scene.Driver.State().Suppressed() {
		t.Fatal("Expected pointer leave to clear suppression")
	}

	f.in.Type("a")
	f.tick(t)
	f.tick(t) // key-up
	if !f.scene.Driver.State().Typing {
		t.Fatal("Expected typing in the focused password field")
	}

	f.clk.Advance(999 * time.Millisecond)
	f.in.MoveTo(20, 20)
	f.tick(t)
	if !neutral(f.scene.Driver.Offsets()) {
		t.Error("Expected offsets suppressed inside the debounce window")
	}

	f.clk.Advance(time.Millisecond)
	f.tick(t)
	f.in.MoveTo(30, 30)
	f.tick(t)
	if neutral(f.scene.Driver.Offsets()) {
		t.Error("Expected offsets to react once typing settled")
	}
	if f.scene.Form.Credentials().Password != "a" {
		t.Errorf("Expected password 'a', got '%s'", f.scene.Form.Credentials().Password)
	}
}

func TestUnmountWithPendingTimer(t *testing.T) {
	f := newFixture(t)

	f.in.Click(f.passwordCentre())
	f.tick(t)
	f.in.Type("x")
	f.tick(t)
	if pending, _ := f.scene.Driver.TypingPending(); !pending {
		t.Fatal("Expected a pending typing timer")
	}

	f.scene.Unmount()
	state := f.scene.Driver.State()
	rev := f.scene.Driver.Revision()

	f.clk.Advance(5 * time.Second)
	f.in.MoveTo(0, 0)
	f.tick(t)
	f.scene.Driver.Update()

	if f.scene.Driver.State() != state || f.scene.Driver.Revision() != rev {
		t.Error("Expected no driver mutation after unmount")
	}
	if f.scene.Driver.Attached() {
		t.Error("Expected driver detached after unmount")
	}
	if f.scene.Driver.AnchorCount() != 0 {
		t.Errorf("Expected anchors released, got %d", f.scene.Driver.AnchorCount())
	}
	for _, l := range f.scene.Lookouts {
		if _, ok := l.Bounds(); ok {
			t.Errorf("Expected lookout %s unmounted", l.ID())
		}
	}

	// Remounting a torn-down scene is refused.
	f.scene.Mount()
	if f.scene.Mounted() {
		t.Error("Expected a closed scene to stay unmounted")
	}
}

func TestResizeMovesAnchors(t *testing.T) {
	f := newFixture(t)
	before, _ := f.scene.Lookouts[0].Bounds()

	f.scene.Resize(1920, 1080)

	after, _ := f.scene.Lookouts[0].Bounds()
	if after == before {
		t.Error("Expected anchor bounds to follow the new layout")
	}
}

func TestDrawEyesOpenAndClosed(t *testing.T) {
	f := newFixture(t)
	screen := rendertest.NewImage(1280, 720)

	f.scene.Draw(screen)
	openLines := f.r.Lines
	if f.r.Polygons < len(f.scene.Lookouts) {
		t.Errorf("Expected at least one polygon per lookout, got %d", f.r.Polygons)
	}
	if f.r.Rings != 2*len(f.scene.Lookouts) {
		t.Errorf("Expected two eye outlines per lookout, got %d", f.r.Rings)
	}

	f.r.Reset()
	f.in.MoveTo(f.passwordCentre())
	f.tick(t)
	f.scene.Draw(screen)

	// Closed eyes add two eyelid strokes per lookout.
	if f.r.Lines != openLines+2*len(f.scene.Lookouts) {
		t.Errorf("Expected %d lines with eyes closed, got %d", openLines+2*len(f.scene.Lookouts), f.r.Lines)
	}
	if f.r.Rings != 0 {
		t.Errorf("Expected no eye outlines with eyes closed, got %d", f.r.Rings)
	}
}

func TestDrawOrderFollowsZIndex(t *testing.T) {
	f := newFixture(t)

	var ids []string
	for _, i := range f.scene.drawOrder() {
		ids = append(ids, f.scene.Lookouts[i].ID())
	}
	expected := []string{"primary", "tertiary", "quaternary", "secondary"}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("Expected draw order %v, got %v", expected, ids)
		}
	}
}

func TestF1TogglesHUD(t *testing.T) {
	f := newFixture(t)
	if f.scene.HUD.Visible() {
		t.Fatal("Expected HUD hidden by default")
	}

	f.in.Press(render.KeyF1)
	f.tick(t)

	if !f.scene.HUD.Visible() {
		t.Error("Expected F1 to show the HUD")
	}
}
