package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reverb/render"
	"github.com/lixenwraith/reverb/scene"
	"github.com/lixenwraith/reverb/vmath"
)

// TouchState is the adapter's view of the primary button
type TouchState uint8

const (
	TouchUp TouchState = iota
	TouchDown
)

// Touch turns tcell mouse reports into began/moved/ended touches in canvas space.
// tcell reports button state, not transitions, so the adapter keeps the last state
type Touch struct {
	viewport func() render.Viewport
	state    TouchState
	last     vmath.Point
}

// NewTouch creates an adapter reading the current viewport on every event
func NewTouch(viewport func() render.Viewport) *Touch {
	return &Touch{viewport: viewport}
}

// State returns whether the primary button is held
func (t *Touch) State() TouchState {
	return t.state
}

// Translate converts a mouse event, false when it carries no touch transition
func (t *Touch) Translate(ev *tcell.EventMouse) (scene.TouchEvent, bool) {
	x, y := ev.Position()
	p := t.viewport().ToCanvas(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case t.state == TouchUp && pressed:
		t.state = TouchDown
		t.last = p
		return scene.TouchEvent{Phase: scene.TouchBegan, Point: p}, true

	case t.state == TouchDown && pressed:
		if p == t.last {
			return scene.TouchEvent{}, false
		}
		t.last = p
		return scene.TouchEvent{Phase: scene.TouchMoved, Point: p}, true

	case t.state == TouchDown && !pressed:
		t.state = TouchUp
		return scene.TouchEvent{Phase: scene.TouchEnded, Point: p}, true
	}

	return scene.TouchEvent{}, false
}

// Cancel ends a touch in progress at its last point, used when focus is lost
func (t *Touch) Cancel() (scene.TouchEvent, bool) {
	if t.state == TouchUp {
		return scene.TouchEvent{}, false
	}
	t.state = TouchUp
	return scene.TouchEvent{Phase: scene.TouchEnded, Point: t.last}, true
}
