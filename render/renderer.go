package render

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/physics"
	"github.com/lixenwraith/reverb/scene"
	"github.com/lixenwraith/reverb/status"
	"github.com/lixenwraith/reverb/vmath"
)

// Clock supplies animation time; engine.PausableClock satisfies it
type Clock interface {
	Elapsed() time.Duration
}

// sprite is the visual handle of one node. pos is refreshed from the scene each
// frame and frozen once the node is removed
type sprite struct {
	id     scene.NodeID
	style  core.Style
	radius float64
	pos    vmath.Point
	placed bool
	anim   animation
	fade   fadeOut
}

// Renderer is the tcell-backed visual sink
type Renderer struct {
	screen   tcell.Screen
	clock    Clock
	canvas   physics.Bounds
	link     core.RGB
	viewport Viewport
	buf      *Buffer
	sprites  map[scene.NodeID]*sprite
	status   string
}

// NewRenderer creates a renderer drawing canvas onto screen
func NewRenderer(screen tcell.Screen, clock Clock, canvas physics.Bounds, link core.RGB) *Renderer {
	r := &Renderer{
		screen:  screen,
		clock:   clock,
		canvas:  canvas,
		link:    link,
		buf:     NewBuffer(0, 0),
		sprites: make(map[scene.NodeID]*sprite),
	}
	r.layout()
	return r
}

// Viewport returns the current canvas to cell mapping
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Sprites returns the number of attached visual handles
func (r *Renderer) Sprites() int {
	return len(r.sprites)
}

// SetStatus sets extra text shown after the metrics
func (r *Renderer) SetStatus(s string) {
	r.status = s
}

func (r *Renderer) Attach(id scene.NodeID, style core.Style, radius float64) {
	r.sprites[id] = &sprite{id: id, style: style, radius: radius}
}

func (r *Renderer) Pulse(id scene.NodeID, kind scene.PulseKind) {
	if sp, ok := r.sprites[id]; ok {
		sp.anim = animation{kind: kind, start: r.clock.Elapsed(), active: true}
	}
}

func (r *Renderer) StopPulse(id scene.NodeID) {
	if sp, ok := r.sprites[id]; ok {
		sp.anim.active = false
	}
}

func (r *Renderer) Fade(id scene.NodeID, d time.Duration) {
	if sp, ok := r.sprites[id]; ok && !sp.fade.active {
		sp.fade = fadeOut{start: r.clock.Elapsed(), duration: d, active: true}
	}
}

func (r *Renderer) Release(id scene.NodeID) {
	delete(r.sprites, id)
}

// layout follows the screen size; the bottom rows hold the status bar
func (r *Renderer) layout() {
	cols, rows := r.screen.Size()
	if w, h := r.buf.Size(); w == cols && h == rows {
		return
	}
	r.buf.Resize(cols, rows)
	r.viewport = NewViewport(r.canvas, cols, rows-constant.StatusBarHeight)
}

// Draw renders one frame of sc and shows it
func (r *Renderer) Draw(sc *scene.Scene) {
	now := r.clock.Elapsed()
	r.layout()

	r.buf.Fill(core.RGBCanvas)

	bh := sc.BlackHole()
	r.buf.FillCircle(r.viewport, bh.Center, bh.Radius, core.RGBBlack)

	for _, l := range sc.Links() {
		x0, y0 := r.viewport.ToCell(l.A.Pos)
		x1, y1 := r.viewport.ToCell(l.B.Pos)
		r.buf.Line(x0, y0, x1, y1, constant.LinkGlyph, r.link)
	}

	var fading []*sprite
	for _, sp := range r.sprites {
		if sp.fade.active && sp.placed {
			fading = append(fading, sp)
		}
	}
	slices.SortFunc(fading, func(a, b *sprite) int {
		return cmp.Compare(a.id, b.id)
	})
	for _, sp := range fading {
		r.drawSprite(sp, now)
	}

	for _, n := range sc.Nodes() {
		sp, ok := r.sprites[n.ID]
		if !ok {
			continue
		}
		sp.pos = n.Pos
		sp.placed = true
		r.drawSprite(sp, now)
	}

	r.drawStatus(sc.Stats())

	r.buf.Flush(r.screen)
	r.screen.Show()
}

func (r *Renderer) drawSprite(sp *sprite, now time.Duration) {
	if sp.anim.active && sp.anim.Done(now) {
		sp.anim.active = false
	}
	scale := sp.anim.Scale(now) * sp.fade.Scale(now)
	r.buf.Disc(r.viewport, sp.pos, sp.radius*scale, sp.style.Fill, sp.style.Stroke)
}

func (r *Renderer) drawStatus(stats *status.Registry) {
	var items []string
	stats.Ints.Range(func(key string, v *atomic.Int64) {
		items = append(items, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	stats.Floats.Range(func(key string, v *status.AtomicFloat) {
		items = append(items, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	if r.status != "" {
		items = append(items, r.status)
	}

	cols, rows := r.buf.Size()
	for y := rows - constant.StatusBarHeight; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.buf.SetWithBg(x, y, ' ', core.RGBWhite, core.RGBBlack)
		}
	}
	r.buf.Text(0, rows-constant.StatusBarHeight, strings.Join(items, " "), core.RGBWhite, core.RGBBlack)
}

var _ scene.VisualSink = (*Renderer)(nil)
