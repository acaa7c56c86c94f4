package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/reverb/constant"
)

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero gain is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fader ends a node's voice: Stop cuts it at the next buffer, Fade ramps gain and
// playback rate linearly to zero. Runs on the speaker goroutine; control fields are atomics
type fader struct {
	streamer  *beep.Resampler
	stopped   atomic.Bool
	fadeTotal atomic.Int64 // Samples in the ramp, zero when not fading
	fadePos   int64
}

func newFader(s *beep.Resampler) *fader {
	return &fader{streamer: s}
}

// Fade starts a ramp of n samples, later calls are ignored
func (f *fader) Fade(n int) {
	f.fadeTotal.CompareAndSwap(0, int64(max(n, 1)))
}

func (f *fader) Stop() {
	f.stopped.Store(true)
}

// Gain returns the current linear gain in [0, 1]
func (f *fader) Gain() float64 {
	total := f.fadeTotal.Load()
	if total == 0 {
		return 1
	}
	return max(1-float64(f.fadePos)/float64(total), 0)
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.stopped.Load() {
		return 0, false
	}

	fading := f.fadeTotal.Load() != 0
	gain := f.Gain()
	if fading {
		if gain == 0 {
			return 0, false
		}
		f.streamer.SetRatio(max(gain, constant.MinPlaybackRatio))
	}

	n, ok = f.streamer.Stream(samples)
	if !fading {
		return n, ok
	}

	total := float64(f.fadeTotal.Load())
	for i := 0; i < n; i++ {
		g := max(1-float64(f.fadePos)/total, 0)
		samples[i][0] *= g
		samples[i][1] *= g
		f.fadePos++
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }
