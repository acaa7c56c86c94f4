package scene

import (
	"time"

	"github.com/lixenwraith/reverb/core"
)

// PulseKind selects the animation a node plays when its cascade fires
type PulseKind uint8

const (
	// PulseRoot repeats a soft pulse until stopped
	PulseRoot PulseKind = iota
	// PulseLeaf plays one strong pulse followed by a few softer ones
	PulseLeaf
)

// VisualSink owns the rendering handle of every node.
// Positions are pulled from Scene each frame; the sink keeps the last known
// position of a fading node itself
type VisualSink interface {
	Attach(id NodeID, style core.Style, radius float64)
	Pulse(id NodeID, kind PulseKind)
	StopPulse(id NodeID)
	Fade(id NodeID, d time.Duration)
	Release(id NodeID)
}

// SoundSink owns the audio handle of every node
type SoundSink interface {
	Attach(id NodeID, voice core.Voice)
	Play(id NodeID)
	Stop(id NodeID)
	Fade(id NodeID, d time.Duration)
	Release(id NodeID)
}

// NopVisuals discards all visual calls
type NopVisuals struct{}

func (NopVisuals) Attach(NodeID, core.Style, float64) {}
func (NopVisuals) Pulse(NodeID, PulseKind)            {}
func (NopVisuals) StopPulse(NodeID)                   {}
func (NopVisuals) Fade(NodeID, time.Duration)         {}
func (NopVisuals) Release(NodeID)                     {}

// NopSounds discards all audio calls
type NopSounds struct{}

func (NopSounds) Attach(NodeID, core.Voice)  {}
func (NopSounds) Play(NodeID)                {}
func (NopSounds) Stop(NodeID)                {}
func (NopSounds) Fade(NodeID, time.Duration) {}
func (NopSounds) Release(NodeID)             {}
