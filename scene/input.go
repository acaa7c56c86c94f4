package scene

import (
	"log"

	"github.com/lixenwraith/reverb/vmath"
)

// TouchPhase tags a TouchEvent
type TouchPhase uint8

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	}
	return "unknown"
}

// TouchEvent is one pointer sample in canvas space
type TouchEvent struct {
	Phase TouchPhase
	Point vmath.Point
}

// InputState is the touch state machine state
type InputState uint8

const (
	StateIdle InputState = iota
	StateDragging
)

func (s InputState) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// HitTester reports whether a touch at p grabs n
type HitTester func(n *Node, p vmath.Point) bool

// PaddingHit grabs nodes by their padding circle
func PaddingHit(n *Node, p vmath.Point) bool {
	return n.Contains(p)
}

type touchState struct {
	state    InputState
	selected NodeID
}

// Dispatch feeds one touch event through the Idle/Dragging state machine
func (s *Scene) Dispatch(ev TouchEvent) {
	switch ev.Phase {
	case TouchBegan:
		s.touchBegan(ev.Point)
	case TouchMoved:
		s.touchMoved(ev.Point)
	case TouchEnded:
		s.touchEnded(ev.Point)
	}
}

// State returns the current input state and the dragged node, if any
func (s *Scene) State() (InputState, NodeID) {
	return s.touch.state, s.touch.selected
}

func (s *Scene) touchBegan(p vmath.Point) {
	if hit := s.hitTest(p); hit != nil {
		for _, n := range s.nodes {
			if !n.Root {
				s.sounds.Stop(n.ID)
			}
		}
		s.touch = touchState{state: StateDragging, selected: hit.ID}
		s.Reverb(hit.ID)
		return
	}

	s.touch = touchState{}
	s.spawn(p, s.firstWithin(p, s.proximity))
}

func (s *Scene) touchMoved(p vmath.Point) {
	if s.touch.state != StateDragging {
		return
	}
	if n, ok := s.live[s.touch.selected]; ok {
		n.Place(p)
	}
}

func (s *Scene) touchEnded(p vmath.Point) {
	prev := s.touch
	s.touch = touchState{}

	if prev.state != StateDragging || !s.blackHole.Contains(p) {
		return
	}
	if s.Remove(prev.selected) {
		log.Printf("scene: node %d dropped into black hole", prev.selected)
	}
}

// hitTest returns the first node in insertion order grabbed by a touch at p
func (s *Scene) hitTest(p vmath.Point) *Node {
	for _, n := range s.nodes {
		if s.hit(n, p) {
			return n
		}
	}
	return nil
}

// firstWithin returns the first node in insertion order whose center is closer than
// threshold. Earlier nodes win over nearer ones
func (s *Scene) firstWithin(p vmath.Point, threshold float64) *Node {
	for _, n := range s.nodes {
		if vmath.DistSq(n.Pos, p) < threshold*threshold {
			return n
		}
	}
	return nil
}
