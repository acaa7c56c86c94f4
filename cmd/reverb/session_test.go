package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/lixenwraith/reverb/audio"
	"github.com/lixenwraith/reverb/config"
	"github.com/lixenwraith/reverb/engine"
	"github.com/lixenwraith/reverb/scene"
)

func newTestSession(t *testing.T) (*session, *engine.MockTimeProvider) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 21)

	bank, err := audio.NewBank(beep.SampleRate(8000))
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	s, err := newSession(config.Default(), screen, engine.NewPausableClockWithProvider(mock), audio.NewMixer(bank, false), 7)
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}
	return s, mock
}

func click(s *session, x, y int) {
	s.handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	s.handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSessionClickCreatesNodes(t *testing.T) {
	s, _ := newTestSession(t)

	click(s, 10, 3)
	click(s, 50, 3)
	if got := len(s.scene.Nodes()); got != 2 {
		t.Fatalf("Expected 2 roots, got %d", got)
	}
	if s.mixer.Active() != 2 {
		t.Errorf("Expected 2 audio slots, got %d", s.mixer.Active())
	}
	if s.render.Sprites() != 2 {
		t.Errorf("Expected 2 sprites, got %d", s.render.Sprites())
	}
}

func TestSessionKeys(t *testing.T) {
	s, _ := newTestSession(t)

	if !s.handle(key(' ')) || !s.clock.IsPaused() {
		t.Error("Space should pause")
	}
	if !s.handle(key('m')) || !s.mixer.IsMuted() {
		t.Error("m should mute")
	}
	if got := s.flags(); got != "[paused] [muted]" {
		t.Errorf("Expected both flags, got %q", got)
	}
	s.handle(key(' '))
	if s.clock.IsPaused() {
		t.Error("Second space should resume")
	}
	if !s.handle(tcell.NewEventResize(120, 21)) {
		t.Error("Resize should not quit")
	}
	if s.handle(key('q')) {
		t.Error("q should quit")
	}
}

func TestSessionFocusLossEndsDrag(t *testing.T) {
	s, _ := newTestSession(t)

	click(s, 30, 10)
	s.handle(tcell.NewEventMouse(30, 10, tcell.Button1, tcell.ModNone))
	if state, _ := s.scene.State(); state != scene.StateDragging {
		t.Fatalf("Expected dragging, got %v", state)
	}

	s.handle(tcell.NewEventFocus(false))
	if state, _ := s.scene.State(); state != scene.StateIdle {
		t.Errorf("Expected idle after focus loss, got %v", state)
	}
}

func TestSessionFrameAndTick(t *testing.T) {
	s, mock := newTestSession(t)

	click(s, 30, 10)
	mock.Advance(time.Second)
	for i := 0; i < 10; i++ {
		s.tick(16 * time.Millisecond)
	}
	s.handle(key('m'))
	s.frame()

	cells, w, h := s.screen.(tcell.SimulationScreen).GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[(h-1)*w+x]
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		}
	}
	if line := sb.String(); !strings.Contains(line, "scene.nodes=1") || !strings.Contains(line, "[muted]") {
		t.Errorf("Unexpected status bar %q", line)
	}
	if s.scene.Now() != 160*time.Millisecond {
		t.Errorf("Expected 160ms of simulation time, got %v", s.scene.Now())
	}
}
