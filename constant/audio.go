package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// ResampleQuality for playback-rate fades
	ResampleQuality = 4
)

// Voice levels
const (
	// LeafVolume is the linear gain of leaf voices
	LeafVolume = 0.65

	// RootVolume is the linear gain of the looping root percussion
	RootVolume = 1.0

	// MinPlaybackRatio keeps the fading resampler above zero
	MinPlaybackRatio = 0.01
)

// Voice shapes
const (
	// MelodyNoteDuration is one note of a leaf melody
	MelodyNoteDuration = 275 * time.Millisecond

	// MelodyNotes per leaf melody, fills one leaf interval
	MelodyNotes = 4

	// PercussionPeriod is the loop length of the root beat
	PercussionPeriod = time.Second

	// PercussionHit is the decaying kick length within one period
	PercussionHit = 120 * time.Millisecond

	// NoteAttack and NoteRelease shape every melody note
	NoteAttack  = 10 * time.Millisecond
	NoteRelease = 120 * time.Millisecond
)
