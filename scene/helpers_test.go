package scene

import (
	"time"

	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/physics"
	"github.com/lixenwraith/reverb/vmath"
)

type call struct {
	op   string
	id   NodeID
	at   time.Duration
	kind PulseKind
}

// recorder captures both sinks' calls stamped with simulation time
type recorder struct {
	now    func() time.Duration
	calls  []call
	voices map[NodeID]core.Voice
}

func newRecorder() *recorder {
	return &recorder{now: func() time.Duration { return 0 }, voices: make(map[NodeID]core.Voice)}
}

func (r *recorder) add(op string, id NodeID, kind PulseKind) {
	r.calls = append(r.calls, call{op: op, id: id, at: r.now(), kind: kind})
}

func (r *recorder) find(op string, id NodeID) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op && c.id == id {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) reset() { r.calls = nil }

type visualRec struct{ *recorder }

func (v visualRec) Attach(id NodeID, _ core.Style, _ float64) { v.add("v.attach", id, 0) }
func (v visualRec) Pulse(id NodeID, k PulseKind)              { v.add("v.pulse", id, k) }
func (v visualRec) StopPulse(id NodeID)                       { v.add("v.stop", id, 0) }
func (v visualRec) Fade(id NodeID, _ time.Duration)           { v.add("v.fade", id, 0) }
func (v visualRec) Release(id NodeID)                         { v.add("v.release", id, 0) }

type soundRec struct{ *recorder }

func (s soundRec) Attach(id NodeID, voice core.Voice) {
	s.voices[id] = voice
	s.add("s.attach", id, 0)
}
func (s soundRec) Play(id NodeID)                  { s.add("s.play", id, 0) }
func (s soundRec) Stop(id NodeID)                  { s.add("s.stop", id, 0) }
func (s soundRec) Fade(id NodeID, _ time.Duration) { s.add("s.fade", id, 0) }
func (s soundRec) Release(id NodeID)               { s.add("s.release", id, 0) }

var canvas = physics.Bounds{Width: 600, Height: 600}

// neverHit disables grabbing so every touch creates a node
func neverHit(*Node, vmath.Point) bool { return false }

func newTestScene(hit HitTester) (*Scene, *recorder) {
	rec := newRecorder()
	s := New(Options{
		Bounds:      canvas,
		MaxNodeSize: 30,
		HitTest:     hit,
		Visuals:     visualRec{rec},
		Sounds:      soundRec{rec},
		Seed:        42,
	})
	rec.now = s.Now
	return s, rec
}

func touch(s *Scene, phase TouchPhase, x, y float64) {
	s.Dispatch(TouchEvent{Phase: phase, Point: vmath.Pt(x, y)})
}

// tap presses and releases at the same point
func tap(s *Scene, x, y float64) {
	touch(s, TouchBegan, x, y)
	touch(s, TouchEnded, x, y)
}

func last(s *Scene) *Node {
	return s.nodes[len(s.nodes)-1]
}
