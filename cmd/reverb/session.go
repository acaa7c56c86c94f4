package main

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reverb/audio"
	"github.com/lixenwraith/reverb/config"
	"github.com/lixenwraith/reverb/engine"
	"github.com/lixenwraith/reverb/input"
	"github.com/lixenwraith/reverb/render"
	"github.com/lixenwraith/reverb/scene"
	"github.com/lixenwraith/reverb/status"
)

// session wires one scene to the terminal and the speaker.
// Every method runs on the loop goroutine
type session struct {
	screen tcell.Screen
	clock  *engine.PausableClock
	scene  *scene.Scene
	render *render.Renderer
	touch  *input.Touch
	keys   *input.KeyTable
	mixer  *audio.Mixer
}

func newSession(cfg *config.Config, screen tcell.Screen, clock *engine.PausableClock, mixer *audio.Mixer, seed uint64) (*session, error) {
	link, err := cfg.LinkRGB()
	if err != nil {
		return nil, err
	}

	r := render.NewRenderer(screen, clock, cfg.Bounds(), link)
	s := &session{
		screen: screen,
		clock:  clock,
		render: r,
		touch:  input.NewTouch(r.Viewport),
		keys:   input.DefaultKeyTable(),
		mixer:  mixer,
	}
	s.scene = scene.New(scene.Options{
		Bounds:      cfg.Bounds(),
		MaxNodeSize: cfg.Session.MaxNodeSize,
		Visuals:     r,
		Sounds:      mixer,
		Status:      status.NewRegistry(),
		Seed:        seed,
	})
	return s, nil
}

// handle processes one terminal event, false to quit
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		if te, ok := s.touch.Translate(ev); ok {
			s.scene.Dispatch(te)
		}
		return true

	case *tcell.EventFocus:
		if !ev.Focused {
			if te, ok := s.touch.Cancel(); ok {
				s.scene.Dispatch(te)
			}
		}
		return true
	}

	switch s.keys.Classify(ev) {
	case input.IntentQuit:
		return false
	case input.IntentTogglePause:
		s.clock.Toggle()
	case input.IntentToggleMute:
		s.mixer.ToggleMute()
	case input.IntentResize:
		s.screen.Sync()
	}
	return true
}

func (s *session) tick(dt time.Duration) {
	s.scene.Advance(dt)
}

func (s *session) frame() {
	s.render.SetStatus(s.flags())
	s.render.Draw(s.scene)
}

// flags lists the session toggles shown in the status bar
func (s *session) flags() string {
	var out []string
	if s.clock.IsPaused() {
		out = append(out, "[paused]")
	}
	if s.mixer.IsMuted() {
		out = append(out, "[muted]")
	}
	return strings.Join(out, " ")
}
