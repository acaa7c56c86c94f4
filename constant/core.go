package constant

import "time"

// Loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the simulation update interval, one physics tick per frame
	TickInterval = 16 * time.Millisecond

	// EventChannelSize buffers input events between the poller and the loop
	EventChannelSize = 256
)

// Cascade timing, in simulation time
const (
	// LeafInterval is the beat length of a leaf melody
	LeafInterval = 1100 * time.Millisecond

	// LeafCascadeDelay is the wait before a leaf reverbs its children (1.1 beats)
	LeafCascadeDelay = LeafInterval * 11 / 10

	// RootCascadeDelay is the wait before a root reverbs its children
	RootCascadeDelay = 0

	// LeafAnimationDuration is one scale pulse (10% up, 90% down)
	LeafAnimationDuration = 760 * time.Millisecond

	// RootAnimationDelay precedes the first root pulse
	RootAnimationDelay = 100 * time.Millisecond

	// LeafSoftPulseCount is the number of softer pulses after the first leaf pulse
	LeafSoftPulseCount = 5
)

// Removal timing
const (
	// FadeDuration ramps visual scale and audio volume/rate to zero
	FadeDuration = 3 * time.Second

	// TeardownDelay releases render and audio handles after removal
	TeardownDelay = 3500 * time.Millisecond
)
