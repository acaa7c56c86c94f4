package scene

import (
	"testing"
	"time"

	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/vmath"
)

// buildChain creates root -> leaf -> grand along the x axis
func buildChain(t *testing.T) (*Scene, *recorder, *Node, *Node, *Node) {
	t.Helper()
	s, rec := newTestScene(neverHit)
	tap(s, 200, 300)
	tap(s, 300, 300) // 100 from root
	tap(s, 400, 300) // 200 from root, 100 from leaf
	root, leaf, grand := s.nodes[0], s.nodes[1], s.nodes[2]
	if leaf.Parent != root.ID || grand.Parent != leaf.ID {
		t.Fatalf("unexpected tree: leaf parent %d, grand parent %d", leaf.Parent, grand.Parent)
	}
	return s, rec, root, leaf, grand
}

func step(s *Scene, total, dt time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += dt {
		s.Advance(dt)
	}
}

func TestLeafCascadeTiming(t *testing.T) {
	s, rec, _, leaf, grand := buildChain(t)

	// Let the creation cascade finish
	step(s, 5*time.Second, 10*time.Millisecond)
	rec.reset()

	start := s.Now()
	s.hit = func(n *Node, _ vmath.Point) bool { return n.ID == leaf.ID }
	touch(s, TouchBegan, 0, 0)

	if got := rec.find("v.pulse", leaf.ID); len(got) != 1 || got[0].at != start || got[0].kind != PulseLeaf {
		t.Fatalf("leaf pulses %+v, want one leaf pulse at %v", got, start)
	}

	want := start + constant.LeafCascadeDelay
	for s.Now() < want-10*time.Millisecond {
		s.Advance(10 * time.Millisecond)
		if got := rec.find("v.pulse", grand.ID); len(got) != 0 {
			t.Fatalf("child fired at %v, before %v", got[0].at, want)
		}
	}

	step(s, 100*time.Millisecond, 10*time.Millisecond)
	got := rec.find("v.pulse", grand.ID)
	if len(got) != 1 {
		t.Fatalf("child pulses = %d, want 1", len(got))
	}
	if got[0].at != want {
		t.Errorf("child fired at %v, want %v", got[0].at, want)
	}
	if len(rec.find("s.play", grand.ID)) != 1 {
		t.Error("child sound not played")
	}
}

func TestRootCascadeDepthDelays(t *testing.T) {
	s, rec, root, leaf, grand := buildChain(t)
	step(s, 5*time.Second, 10*time.Millisecond)
	rec.reset()

	start := s.Now()
	s.Reverb(root.ID)
	step(s, 3*time.Second, 10*time.Millisecond)

	cases := []struct {
		name string
		id   NodeID
		at   time.Duration
	}{
		{"root", root.ID, start},
		{"depth 1", leaf.ID, start},
		{"depth 2", grand.ID, start + constant.LeafCascadeDelay},
	}
	for _, c := range cases {
		got := rec.find("v.pulse", c.id)
		if len(got) != 1 {
			t.Errorf("%s: %d pulses, want 1", c.name, len(got))
			continue
		}
		if got[0].at != c.at {
			t.Errorf("%s fired at %v, want %v", c.name, got[0].at, c.at)
		}
	}
	if k := rec.find("v.pulse", root.ID)[0].kind; k != PulseRoot {
		t.Errorf("root pulse kind %v", k)
	}
}

func TestCascadeStopsNodeAndChildrenFirst(t *testing.T) {
	s, rec, _, leaf, grand := buildChain(t)
	rec.reset()

	s.Reverb(leaf.ID)

	var order []string
	for _, c := range rec.calls {
		order = append(order, c.op)
	}
	if len(rec.find("s.stop", leaf.ID)) != 1 || len(rec.find("s.stop", grand.ID)) != 1 {
		t.Fatalf("stop calls missing: %v", order)
	}
	if order[len(order)-1] != "s.play" {
		t.Errorf("play should come after the stops: %v", order)
	}
}

func TestConcurrentCascadesOverlap(t *testing.T) {
	s, rec, _, leaf, grand := buildChain(t)
	step(s, 5*time.Second, 10*time.Millisecond)
	rec.reset()

	s.Reverb(leaf.ID)
	step(s, 500*time.Millisecond, 10*time.Millisecond)
	s.Reverb(leaf.ID)
	step(s, 3*time.Second, 10*time.Millisecond)

	if got := rec.find("v.pulse", grand.ID); len(got) != 2 {
		t.Errorf("child pulses = %d, want 2 (retriggers are not merged)", len(got))
	}
}

func TestCascadeSkipsRemovedNodes(t *testing.T) {
	s, rec, _, leaf, grand := buildChain(t)
	step(s, 5*time.Second, 10*time.Millisecond)
	rec.reset()

	s.Reverb(leaf.ID)
	s.Remove(leaf.ID)
	step(s, 3*time.Second, 10*time.Millisecond)

	if got := rec.find("v.pulse", grand.ID); len(got) != 0 {
		t.Errorf("removed subtree pulsed %d times", len(got))
	}
	if got := rec.find("s.play", leaf.ID); len(got) != 1 {
		t.Errorf("leaf plays = %d, want only the one before removal", len(got))
	}
}
