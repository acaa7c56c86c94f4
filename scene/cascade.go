package scene

type taskKind uint8

const (
	// taskCascade reverbs the children of node
	taskCascade taskKind = iota
	// taskRelease frees the handles of a removed node
	taskRelease
)

// task is a scheduled record resolved by id at fire time, never a captured node
type task struct {
	kind taskKind
	node NodeID
}

// Reverb restarts the node's pulse and sound, then after its cascade delay reverbs
// every child it has at that moment. Concurrent cascades over the same subtree are not merged
func (s *Scene) Reverb(id NodeID) {
	n, ok := s.live[id]
	if !ok {
		return
	}

	s.silence(n)
	s.visuals.Pulse(id, n.Pulse())
	s.sounds.Play(id)
	s.statPulse.Add(1)

	s.timeline.Schedule(n.CascadeDelay(), task{kind: taskCascade, node: id})
}

// silence stops the node and its direct children
func (s *Scene) silence(n *Node) {
	s.sounds.Stop(n.ID)
	s.visuals.StopPulse(n.ID)
	for _, c := range n.children {
		if s.Alive(c) {
			s.sounds.Stop(c)
			s.visuals.StopPulse(c)
		}
	}
}

func (s *Scene) fire(t task) {
	switch t.kind {
	case taskCascade:
		n, ok := s.live[t.node]
		if !ok {
			return
		}
		for _, c := range n.children {
			s.Reverb(c)
		}

	case taskRelease:
		n, ok := s.fading[t.node]
		if !ok {
			return
		}
		delete(s.fading, t.node)
		s.visuals.Release(n.ID)
		s.sounds.Release(n.ID)
		s.syncCounts()
	}
}
