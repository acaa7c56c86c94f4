package scene

import (
	"log"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/engine"
	"github.com/lixenwraith/reverb/physics"
	"github.com/lixenwraith/reverb/status"
	"github.com/lixenwraith/reverb/vmath"
)

// Options configures a Scene. Zero fields take defaults
type Options struct {
	Bounds physics.Bounds

	// MaxNodeSize caps leaf radii
	MaxNodeSize float64

	// ProximityThreshold is the attach distance for new touches
	ProximityThreshold float64

	// HitTest decides which node a touch grabs, PaddingHit when nil
	HitTest HitTester

	Visuals VisualSink
	Sounds  SoundSink
	Status  *status.Registry

	// Seed drives radius and spawn jitter
	Seed uint64
}

// Scene owns every node and link of a session.
// Not safe for concurrent use: touch dispatch, Advance and Tick must run on one goroutine
type Scene struct {
	bounds      physics.Bounds
	maxNodeSize float64
	proximity   float64
	blackHole   BlackHole
	hit         HitTester

	nodes  []*Node
	links  []*Link
	live   map[NodeID]*Node
	fading map[NodeID]*Node
	nextID NodeID

	category core.Category
	touch    touchState

	timeline *engine.Timeline[task]
	rng      *rand.Rand

	visuals VisualSink
	sounds  SoundSink

	stats     *status.Registry
	statNodes *atomic.Int64
	statLinks *atomic.Int64
	statFade  *atomic.Int64
	statPulse *atomic.Int64
	statTicks *atomic.Int64
	statTime  *status.AtomicFloat
}

// New creates an empty scene
func New(opts Options) *Scene {
	if opts.MaxNodeSize <= 0 {
		opts.MaxNodeSize = constant.MaxLeafRadius
	}
	if opts.ProximityThreshold <= 0 {
		opts.ProximityThreshold = constant.ProximityThreshold
	}
	if opts.HitTest == nil {
		opts.HitTest = PaddingHit
	}
	if opts.Visuals == nil {
		opts.Visuals = NopVisuals{}
	}
	if opts.Sounds == nil {
		opts.Sounds = NopSounds{}
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	s := &Scene{
		bounds:      opts.Bounds,
		maxNodeSize: opts.MaxNodeSize,
		proximity:   opts.ProximityThreshold,
		blackHole:   DefaultBlackHole(opts.Bounds),
		hit:         opts.HitTest,
		live:        make(map[NodeID]*Node),
		fading:      make(map[NodeID]*Node),
		timeline:    engine.NewTimeline[task](),
		rng:         rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		visuals:     opts.Visuals,
		sounds:      opts.Sounds,
		stats:       opts.Status,
	}

	s.statNodes = s.stats.Ints.Get("scene.nodes")
	s.statLinks = s.stats.Ints.Get("scene.links")
	s.statFade = s.stats.Ints.Get("scene.fading")
	s.statPulse = s.stats.Ints.Get("cascade.pulses")
	s.statTicks = s.stats.Ints.Get("scene.ticks")
	s.statTime = s.stats.Floats.Get("scene.time")

	return s
}

// Nodes returns live nodes in creation order. The slice must not be modified
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Links returns live links in creation order. The slice must not be modified
func (s *Scene) Links() []*Link {
	return s.links
}

// Node resolves a live node
func (s *Scene) Node(id NodeID) (*Node, bool) {
	n, ok := s.live[id]
	return n, ok
}

// Alive reports whether id is still in the scene
func (s *Scene) Alive(id NodeID) bool {
	_, ok := s.live[id]
	return ok
}

// Fading reports whether id was removed and still awaits teardown
func (s *Scene) Fading(id NodeID) bool {
	_, ok := s.fading[id]
	return ok
}

func (s *Scene) Bounds() physics.Bounds  { return s.bounds }
func (s *Scene) BlackHole() BlackHole    { return s.blackHole }
func (s *Scene) Stats() *status.Registry { return s.stats }

// Now returns the simulation time
func (s *Scene) Now() time.Duration {
	return s.timeline.Now()
}

// PendingTasks returns the number of scheduled cascade and teardown tasks
func (s *Scene) PendingTasks() int {
	return s.timeline.Pending()
}

// Advance moves simulation time by dt, fires due cascade and teardown tasks, then ticks physics
func (s *Scene) Advance(dt time.Duration) {
	s.timeline.Advance(dt, s.fire)
	s.Tick()
	s.statTime.Set(s.Now().Seconds())
}

// Tick runs one physics step: every node moves (or falls into the black hole),
// then every link corrects against the post-motion positions
func (s *Scene) Tick() {
	// Removal mutates s.nodes, walk a snapshot
	for _, n := range slices.Clone(s.nodes) {
		if !s.Alive(n.ID) {
			continue
		}
		if s.blackHole.Contains(n.Pos) {
			s.Remove(n.ID)
			log.Printf("scene: node %d swallowed by black hole", n.ID)
			continue
		}
		n.Move(s.bounds)
	}

	for _, l := range s.links {
		if s.Alive(l.A.ID) && s.Alive(l.B.ID) {
			l.Bounce()
		}
	}

	s.statTicks.Add(1)
}

// spawn creates a node at p, as a leaf of parent when parent is non-nil, otherwise as a new root
func (s *Scene) spawn(p vmath.Point, parent *Node) *Node {
	s.nextID++
	id := s.nextID

	var n *Node
	if parent != nil {
		n = newNode(id, p, false, parent.Category, s.maxNodeSize, s.rng)
		n.Parent = parent.ID
		parent.children = append(parent.children, id)
		s.links = append(s.links, newLink(parent, n))
	} else {
		s.category = s.category.Next()
		n = newNode(id, p, true, s.category, s.maxNodeSize, s.rng)
	}

	s.nodes = append(s.nodes, n)
	s.live[id] = n

	style := n.Style()
	s.visuals.Attach(id, style, n.Radius)
	s.sounds.Attach(id, style.Voice)
	s.syncCounts()

	log.Printf("scene: node %d created at (%.1f, %.1f) root=%t category=%d parent=%d",
		id, p.X, p.Y, n.Root, n.Category, n.Parent)

	if n.Root {
		s.Reverb(id)
	}
	return n
}

// Remove takes id and its whole subtree out of the scene immediately.
// Each removed node fades out and its handles are released after TeardownDelay.
// Returns false if id is not live
func (s *Scene) Remove(id NodeID) bool {
	n, ok := s.live[id]
	if !ok {
		return false
	}

	doomed := s.subtree(n)
	gone := make(map[NodeID]struct{}, len(doomed))
	for _, d := range doomed {
		gone[d.ID] = struct{}{}
		delete(s.live, d.ID)
		s.fading[d.ID] = d

		s.visuals.Fade(d.ID, constant.FadeDuration)
		s.sounds.Fade(d.ID, constant.FadeDuration)
		s.timeline.Schedule(constant.TeardownDelay, task{kind: taskRelease, node: d.ID})
	}

	if parent, ok := s.live[n.Parent]; ok {
		parent.detachChild(id)
	}

	s.nodes = slices.DeleteFunc(s.nodes, func(x *Node) bool {
		_, g := gone[x.ID]
		return g
	})
	s.links = slices.DeleteFunc(s.links, func(l *Link) bool {
		_, ga := gone[l.A.ID]
		_, gb := gone[l.B.ID]
		return ga || gb
	})

	if _, g := gone[s.touch.selected]; g {
		s.touch = touchState{}
	}

	s.syncCounts()
	return true
}

// subtree lists n and its live descendants, parents before children
func (s *Scene) subtree(n *Node) []*Node {
	out := []*Node{n}
	for i := 0; i < len(out); i++ {
		for _, c := range out[i].children {
			if child, ok := s.live[c]; ok {
				out = append(out, child)
			}
		}
	}
	return out
}

func (s *Scene) syncCounts() {
	s.statNodes.Store(int64(len(s.nodes)))
	s.statLinks.Store(int64(len(s.links)))
	s.statFade.Store(int64(len(s.fading)))
}
