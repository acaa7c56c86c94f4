package render

import (
	"time"

	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/scene"
)

// animation is the scale pulse a sprite is playing, keyed on clock time
type animation struct {
	kind   scene.PulseKind
	start  time.Duration
	active bool
}

// Scale returns the pulse multiplier at now, 1 when idle or finished
func (a animation) Scale(now time.Duration) float64 {
	if !a.active {
		return 1
	}
	t := now - a.start
	if t < 0 {
		return 1
	}

	d := constant.LeafAnimationDuration
	switch a.kind {
	case scene.PulseRoot:
		if t < constant.RootAnimationDelay {
			return 1
		}
		return pulse((t-constant.RootAnimationDelay)%d, d, constant.RootPulseScale)

	case scene.PulseLeaf:
		if t < d {
			return pulse(t, d, constant.LeafPulseScale)
		}
		t -= d
		if t < d*constant.LeafSoftPulseCount {
			return pulse(t%d, d, constant.LeafSoftPulseScale)
		}
	}
	return 1
}

// Done reports whether a finite pulse has played out
func (a animation) Done(now time.Duration) bool {
	if !a.active || a.kind == scene.PulseRoot {
		return !a.active
	}
	return now-a.start >= constant.LeafAnimationDuration*(1+constant.LeafSoftPulseCount)
}

// pulse rises linearly to peak over the first part of d and settles back to 1
func pulse(t, d time.Duration, peak float64) float64 {
	rise := time.Duration(float64(d) * constant.PulseRiseFraction)
	if t < rise {
		return 1 + (peak-1)*float64(t)/float64(rise)
	}
	settle := time.Duration(float64(d) * constant.PulseSettleFraction)
	return peak - (peak-1)*min(float64(t-rise)/float64(settle), 1)
}

// fadeOut shrinks a sprite linearly to nothing
type fadeOut struct {
	start    time.Duration
	duration time.Duration
	active   bool
}

// Scale returns the remaining size fraction at now
func (f fadeOut) Scale(now time.Duration) float64 {
	if !f.active {
		return 1
	}
	if f.duration <= 0 {
		return 0
	}
	return max(1-float64(now-f.start)/float64(f.duration), 0)
}
