package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/scene"
)

// Mixer is the beep-backed sound sink: one voice slot per node, all voices summed
// into a single speaker stream. Without a speaker it keeps bookkeeping and stays silent
type Mixer struct {
	mu          sync.Mutex
	bank        *Bank
	mixer       *beep.Mixer
	master      *effects.Volume
	slots       map[scene.NodeID]*slot
	initialized bool
}

// slot is a node's audio handle
type slot struct {
	voice  core.Voice
	gain   float64
	active *fader
}

// NewMixer creates a mixer over bank, muted when muted is true
func NewMixer(bank *Bank, muted bool) *Mixer {
	m := &Mixer{
		bank:  bank,
		mixer: &beep.Mixer{},
		slots: make(map[scene.NodeID]*slot),
	}
	m.master = &effects.Volume{Streamer: m.mixer, Base: 2, Silent: muted}
	return m
}

// Initialize opens the speaker and starts streaming the mix
func (m *Mixer) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	rate := m.bank.Format().SampleRate
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(m.master)
	m.initialized = true
	return nil
}

// Cleanup stops all voices and closes the speaker
func (m *Mixer) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.locked(func() {
		m.mixer.Clear()
	})
	speaker.Close()
	m.initialized = false
}

// locked runs fn holding the speaker lock when streaming
func (m *Mixer) locked(fn func()) {
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// ToggleMute flips the master mute and returns true if now muted
func (m *Mixer) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	var muted bool
	m.locked(func() {
		m.master.Silent = !m.master.Silent
		muted = m.master.Silent
	})
	return muted
}

// IsMuted returns the master mute state
func (m *Mixer) IsMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	var muted bool
	m.locked(func() { muted = m.master.Silent })
	return muted
}

// Ready returns ErrNotInitialized until the speaker is streaming
func (m *Mixer) Ready() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return ErrNotInitialized
	}
	return nil
}

// Active returns the number of attached nodes
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}

// Attach binds a voice to a node; leaf voices play quieter than the root loop
func (m *Mixer) Attach(id scene.NodeID, voice core.Voice) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gain := constant.LeafVolume
	if voice.Looped() {
		gain = constant.RootVolume
	}
	m.slots[id] = &slot{voice: voice, gain: gain}
}

// Play restarts the node's voice from the beginning
func (m *Mixer) Play(id scene.NodeID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sl, ok := m.slots[id]
	if !ok {
		return
	}
	m.stopSlot(sl)

	src, err := m.bank.Streamer(sl.voice)
	if err != nil {
		log.Printf("audio: node %d: %v", id, err)
		return
	}
	sl.active = newFader(beep.ResampleRatio(constant.ResampleQuality, 1, src))

	if !m.initialized {
		return
	}
	m.locked(func() {
		m.mixer.Add(newVolume(sl.active, sl.gain))
	})
}

// Stop silences the node's voice immediately
func (m *Mixer) Stop(id scene.NodeID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sl, ok := m.slots[id]; ok {
		m.stopSlot(sl)
	}
}

func (m *Mixer) stopSlot(sl *slot) {
	if sl.active != nil {
		sl.active.Stop()
		sl.active = nil
	}
}

// Fade ramps the node's volume and playback rate to zero over d
func (m *Mixer) Fade(id scene.NodeID, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sl, ok := m.slots[id]
	if !ok || sl.active == nil {
		return
	}
	sl.active.Fade(m.bank.Format().SampleRate.N(d))
}

// Release stops and forgets the node's voice
func (m *Mixer) Release(id scene.NodeID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sl, ok := m.slots[id]; ok {
		m.stopSlot(sl)
		delete(m.slots, id)
	}
}

var _ scene.SoundSink = (*Mixer)(nil)
