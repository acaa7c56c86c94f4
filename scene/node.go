package scene

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/physics"
	"github.com/lixenwraith/reverb/vmath"
)

// NodeID identifies a node for its whole lifetime, including the fade after removal.
// Zero is never assigned
type NodeID uint64

// Node is a point mass in the forest
type Node struct {
	physics.Body

	ID NodeID

	// Radius is fixed at creation, animation scales only the drawn size
	Radius float64
	// PaddingRadius is the invisible touch target, never used by physics
	PaddingRadius float64

	Root     bool
	Category core.Category

	// Parent is zero for roots
	Parent   NodeID
	children []NodeID
}

func newNode(id NodeID, at vmath.Point, root bool, cat core.Category, maxSize float64, rng *rand.Rand) *Node {
	radius := constant.RootRadius
	if !root {
		hi := min(constant.MaxLeafRadius, maxSize)
		lo := min(constant.MinLeafRadius, hi)
		radius = lo + rng.Float64()*(hi-lo)
	}

	return &Node{
		Body:          physics.NewBody(at, randomSign(rng)*constant.SpawnJitter, randomSign(rng)*constant.SpawnJitter),
		ID:            id,
		Radius:        radius,
		PaddingRadius: max(radius, constant.MaxLeafRadius),
		Root:          root,
		Category:      cat,
	}
}

func randomSign(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Children returns the node's direct children in attach order
func (n *Node) Children() []NodeID {
	return n.children
}

// Contains reports whether p falls inside the padding circle
func (n *Node) Contains(p vmath.Point) bool {
	return vmath.DistSq(n.Pos, p) <= n.PaddingRadius*n.PaddingRadius
}

// Style resolves the node's palette entry
func (n *Node) Style() core.Style {
	return core.StyleFor(n.Category, n.Root)
}

// Pulse returns the animation this node plays on reverb
func (n *Node) Pulse() PulseKind {
	if n.Root {
		return PulseRoot
	}
	return PulseLeaf
}

// CascadeDelay is the wait between this node firing and its children firing
func (n *Node) CascadeDelay() time.Duration {
	if n.Root {
		return constant.RootCascadeDelay
	}
	return constant.LeafCascadeDelay
}

func (n *Node) detachChild(id NodeID) {
	for i, c := range n.children {
		if c == id {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
