package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/engine"
	"github.com/lixenwraith/reverb/scene"
	"github.com/lixenwraith/reverb/vmath"
)

var testLink = core.RGB{R: 90, G: 90, B: 90}

func newTestRenderer(t *testing.T) (*Renderer, *scene.Scene, *engine.MockTimeProvider) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 20+constant.StatusBarHeight)

	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	r := NewRenderer(screen, engine.NewPausableClockWithProvider(mock), testCanvas, testLink)
	sc := scene.New(scene.Options{Bounds: testCanvas, MaxNodeSize: 20, Visuals: r, Seed: 1})
	return r, sc, mock
}

func statusLine(r *Renderer) string {
	cols, rows := r.buf.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		sb.WriteRune(r.buf.Get(x, rows-1).Rune)
	}
	return sb.String()
}

// TestRendererLayout verifies the canvas excludes the status rows
func TestRendererLayout(t *testing.T) {
	r, _, _ := newTestRenderer(t)

	vp := r.Viewport()
	if vp.Cols != 60 || vp.Rows != 20 {
		t.Errorf("Expected 60x20 canvas grid, got %dx%d", vp.Cols, vp.Rows)
	}
}

// TestRendererDrawsScene verifies black hole, node and status bar placement
func TestRendererDrawsScene(t *testing.T) {
	r, sc, _ := newTestRenderer(t)

	sc.Dispatch(scene.TouchEvent{Phase: scene.TouchBegan, Point: vmath.Pt(300, 300)})
	sc.Dispatch(scene.TouchEvent{Phase: scene.TouchEnded, Point: vmath.Pt(300, 300)})
	if r.Sprites() != 1 {
		t.Fatalf("Expected 1 sprite, got %d", r.Sprites())
	}

	r.Draw(sc)

	root := sc.Nodes()[0]
	if got := r.buf.Get(30, 10).Bg; got != root.Style().Stroke {
		t.Errorf("Root cell: expected stroke %v, got %v", root.Style().Stroke, got)
	}
	if got := r.buf.Get(30, 19).Bg; got != core.RGBBlack {
		t.Errorf("Black hole cell: expected black, got %v", got)
	}
	if got := r.buf.Get(30, 0).Bg; got != core.RGBCanvas {
		t.Errorf("Top cell: expected canvas, got %v", got)
	}
	if line := statusLine(r); !strings.Contains(line, "scene.nodes=1") {
		t.Errorf("Status bar missing node count: %q", line)
	}
}

// TestRendererDrawsLinks verifies a leaf link is rasterized between its endpoints
func TestRendererDrawsLinks(t *testing.T) {
	r, sc, _ := newTestRenderer(t)

	for _, p := range []vmath.Point{vmath.Pt(100, 450), vmath.Pt(180, 450)} {
		sc.Dispatch(scene.TouchEvent{Phase: scene.TouchBegan, Point: p})
		sc.Dispatch(scene.TouchEvent{Phase: scene.TouchEnded, Point: p})
	}
	if len(sc.Links()) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(sc.Links()))
	}

	r.Draw(sc)

	c := r.buf.Get(14, 5)
	if c.Rune != constant.LinkGlyph || c.Fg != testLink {
		t.Errorf("Expected link glyph between nodes, got %q fg=%v", c.Rune, c.Fg)
	}
}

// TestRendererFadeAndRelease verifies a removed node shrinks in place until released
func TestRendererFadeAndRelease(t *testing.T) {
	r, sc, mock := newTestRenderer(t)

	sc.Dispatch(scene.TouchEvent{Phase: scene.TouchBegan, Point: vmath.Pt(300, 300)})
	sc.Dispatch(scene.TouchEvent{Phase: scene.TouchEnded, Point: vmath.Pt(300, 300)})
	root := sc.Nodes()[0]
	r.Draw(sc)

	sc.Remove(root.ID)
	if len(sc.Nodes()) != 0 {
		t.Fatal("Expected node removed from scene")
	}

	mock.Advance(constant.FadeDuration / 2)
	r.Draw(sc)
	if c := r.buf.Get(30, 10); c.Rune != constant.NodeGlyph || c.Fg != root.Style().Fill {
		t.Errorf("Expected shrunken glyph at last position, got %q", c.Rune)
	}

	mock.Advance(constant.FadeDuration)
	r.Draw(sc)
	if c := r.buf.Get(30, 10); c.Rune != ' ' || c.Bg != core.RGBCanvas {
		t.Errorf("Expected faded node invisible, got %q bg=%v", c.Rune, c.Bg)
	}

	sc.Advance(constant.TeardownDelay)
	if r.Sprites() != 0 {
		t.Errorf("Expected sprite released, got %d", r.Sprites())
	}
}

// TestRendererPulseScales verifies the visual pulse starts at the clock time of the call
func TestRendererPulseScales(t *testing.T) {
	r, _, mock := newTestRenderer(t)

	r.Attach(7, core.StyleFor(core.Category1, false), 20)
	mock.Advance(time.Second)
	r.Pulse(7, scene.PulseLeaf)

	sp := r.sprites[7]
	if sp.anim.start != time.Second {
		t.Errorf("Expected pulse start at 1s, got %v", sp.anim.start)
	}

	mock.Advance(constant.LeafAnimationDuration / 10)
	if got := sp.anim.Scale(time.Second + constant.LeafAnimationDuration/10); !near(got, constant.LeafPulseScale) {
		t.Errorf("Expected leaf peak, got %f", got)
	}

	r.StopPulse(7)
	if sp.anim.active {
		t.Error("Expected pulse stopped")
	}

	r.Pulse(99, scene.PulseRoot)
	r.Release(99)
}
