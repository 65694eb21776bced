package hud

import (
	"strings"
	"testing"
	"time"

	"chosenoffset.com/lookout/internal/anim"
	"chosenoffset.com/lookout/internal/render/rendertest"
)

type fakeSource struct {
	state   anim.InteractionState
	offsets []anim.OffsetVector
	pending bool
}

func (f *fakeSource) Configs() []anim.ShapeConfig {
	return []anim.ShapeConfig{{ID: "primary"}, {ID: "secondary"}}
}
func (f *fakeSource) Offsets() []anim.OffsetVector { return f.offsets }
func (f *fakeSource) State() anim.InteractionState { return f.state }
func (f *fakeSource) Revision() uint64             { return 7 }
func (f *fakeSource) AnchorCount() int             { return 1 }
func (f *fakeSource) TypingPending() (bool, time.Duration) {
	return f.pending, 250 * time.Millisecond
}

func TestLinesShowStateAndOffsets(t *testing.T) {
	h := New(DefaultConfig(), 800, 600)
	h.SetSource(&fakeSource{
		state:   anim.InteractionState{Typing: true},
		offsets: []anim.OffsetVector{{Face: anim.FaceOffset{X: -18}}, {}},
		pending: true,
	})

	text := strings.Join(h.Lines(), "\n")
	for _, want := range []string{"Pointer inside: no", "Typing: yes", "Settles in: 250ms", "Revision: 7", "Anchors: 1/2", "primary", "secondary", "-18.0"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected HUD to contain %q, got:\n%s", want, text)
		}
	}
}

func TestDrawOnlyWhenVisible(t *testing.T) {
	h := New(DefaultConfig(), 800, 600)
	h.SetSource(&fakeSource{offsets: make([]anim.OffsetVector, 2)})
	r := rendertest.NewRenderer()
	screen := rendertest.NewImage(800, 600)

	h.Draw(r, screen)
	if screen.Draws != 0 || len(r.Texts) != 0 {
		t.Error("Expected hidden HUD to draw nothing")
	}

	h.Toggle()
	h.Draw(r, screen)
	if screen.Draws != 1 {
		t.Errorf("Expected panel to be drawn once, got %d", screen.Draws)
	}
	if len(r.Texts) != len(h.Lines()) {
		t.Errorf("Expected %d text lines, got %d", len(h.Lines()), len(r.Texts))
	}
}

func TestPanelIsReusedUntilHeightChanges(t *testing.T) {
	src := &fakeSource{offsets: make([]anim.OffsetVector, 2)}
	h := New(Config{Visible: true, Position: "bottom-right", Opacity: 0.5}, 800, 600)
	h.SetSource(src)
	r := rendertest.NewRenderer()
	screen := rendertest.NewImage(800, 600)

	h.Draw(r, screen)
	first := h.panel
	h.Draw(r, screen)
	if h.panel != first {
		t.Error("Expected panel image to be reused")
	}

	src.pending = true
	h.Draw(r, screen)
	if h.panel == first {
		t.Error("Expected a new panel when the line count changes")
	}
	if !first.(*rendertest.Image).Disposed {
		t.Error("Expected the old panel to be disposed")
	}
}

func TestCalculatePosition(t *testing.T) {
	h := New(Config{Position: "top-right"}, 800, 600)
	if x, y := h.calculatePosition(); x != 800-330-10 || y != 10 {
		t.Errorf("Expected (460, 10), got (%d, %d)", x, y)
	}
}
