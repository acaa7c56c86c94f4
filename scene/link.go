package scene

import "github.com/lixenwraith/reverb/physics"

// Link is the spring mirroring a parent-child edge.
// Endpoints are non-owning; the scene drops a link in the same step either endpoint leaves
type Link struct {
	A, B *Node

	// Rest is fixed at creation: the initial separation capped at MaxLinkLength
	Rest float64
}

func newLink(a, b *Node) *Link {
	return &Link{A: a, B: b, Rest: physics.RestLength(&a.Body, &b.Body)}
}

// Bounce applies one tick of correction, false when the endpoints coincide
func (l *Link) Bounce() bool {
	return physics.Relax(&l.A.Body, &l.B.Body, l.Rest)
}

// Touches reports whether id is one of the link's endpoints
func (l *Link) Touches(id NodeID) bool {
	return l.A.ID == id || l.B.ID == id
}
