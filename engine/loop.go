package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// maxCatchUpTicks bounds fixed ticks run per frame after a stall
const maxCatchUpTicks = 4

// LoopHandlers are the callbacks a Loop serializes onto its goroutine
type LoopHandlers[E any] struct {
	// Event handles one input event, returns false to end the loop
	Event func(E) bool
	// Tick advances the simulation by one fixed interval
	Tick func(dt time.Duration)
	// Frame renders after the ticks due for this frame
	Frame func()
}

// Loop owns the only mutator goroutine of a session.
// Input events, fixed simulation ticks and frames never run concurrently
type Loop[E any] struct {
	clock         *PausableClock
	tickInterval  time.Duration
	frameInterval time.Duration
	handlers      LoopHandlers[E]

	nextTick  time.Duration // Next tick deadline in clock time for drift correction
	tickCount atomic.Uint64
}

// NewLoop creates a loop ticking every tickInterval of clock time and drawing every frameInterval of real time
func NewLoop[E any](clock *PausableClock, tickInterval, frameInterval time.Duration, handlers LoopHandlers[E]) *Loop[E] {
	return &Loop[E]{
		clock:         clock,
		tickInterval:  tickInterval,
		frameInterval: frameInterval,
		handlers:      handlers,
	}
}

// Ticks returns the number of simulation ticks run so far
func (l *Loop[E]) Ticks() uint64 {
	return l.tickCount.Load()
}

// Run blocks until ctx is cancelled, events is closed, or the event handler asks to stop
func (l *Loop[E]) Run(ctx context.Context, events <-chan E) error {
	frameTicker := time.NewTicker(l.frameInterval)
	defer frameTicker.Stop()

	l.nextTick = l.clock.Elapsed() + l.tickInterval

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if l.handlers.Event != nil && !l.handlers.Event(ev) {
				return nil
			}

		case <-frameTicker.C:
			l.step()
			if l.handlers.Frame != nil {
				l.handlers.Frame()
			}
		}
	}
}

// step runs the fixed ticks due at the current clock time
func (l *Loop[E]) step() {
	now := l.clock.Elapsed()

	for n := 0; n < maxCatchUpTicks && now >= l.nextTick; n++ {
		if l.handlers.Tick != nil {
			l.handlers.Tick(l.tickInterval)
		}
		l.tickCount.Add(1)
		l.nextTick += l.tickInterval
	}

	// Drop backlog instead of spiralling after a long stall
	if now-l.nextTick > l.tickInterval*2 {
		l.nextTick = now + l.tickInterval
	}
}
