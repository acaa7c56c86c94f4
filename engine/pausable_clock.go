package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock measures simulation time: real elapsed time minus time spent paused
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	startTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock on the monotonic system time
func NewPausableClock() *PausableClock {
	return NewPausableClockWithProvider(NewMonotonicTimeProvider())
}

// NewPausableClockWithProvider creates a clock reading from source
func NewPausableClockWithProvider(source TimeProvider) *PausableClock {
	return &PausableClock{
		source:    source,
		startTime: source.Now(),
	}
}

// Elapsed returns simulation time since creation (frozen while paused)
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime
	}
	return pc.source.Now().Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops simulation time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues simulation time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// Toggle flips the pause state and returns true if now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
