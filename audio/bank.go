package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
)

// Root notes of the four leaf melodies (A2, B2, C3, D3)
var melodyRoots = [core.CategoryCount]float64{110.00, 123.47, 130.81, 146.83}

// Semitone steps of every leaf melody
var melodySteps = [constant.MelodyNotes]int{0, 7, 12, 7}

// Bank holds one pre-rendered buffer per voice
type Bank struct {
	format  beep.Format
	buffers [core.VoiceCount]*beep.Buffer
}

// NewBank synthesizes every voice at the given sample rate
func NewBank(rate beep.SampleRate) (*Bank, error) {
	b := &Bank{format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}}

	for v := core.VoiceLoA; v <= core.VoiceLoD; v++ {
		s, err := melody(rate, melodyRoots[v])
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", v, err)
		}
		b.buffers[v] = b.render(s)
	}
	b.buffers[core.VoicePercussion] = b.render(percussion(rate))

	return b, nil
}

func (b *Bank) render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(b.format)
	buf.Append(s)
	return buf
}

// Format returns the bank's sample format
func (b *Bank) Format() beep.Format {
	return b.format
}

// Len returns the length of a voice in samples
func (b *Bank) Len(v core.Voice) int {
	if v < 0 || v >= core.VoiceCount {
		return 0
	}
	return b.buffers[v].Len()
}

// Streamer returns a fresh playback of v; looped voices repeat until stopped
func (b *Bank) Streamer(v core.Voice) (beep.Streamer, error) {
	if v < 0 || v >= core.VoiceCount {
		return nil, ErrUnknownVoice
	}
	buf := b.buffers[v]
	if v.Looped() {
		return beep.Loop(-1, buf.Streamer(0, buf.Len())), nil
	}
	return buf.Streamer(0, buf.Len()), nil
}

// melody is a short arpeggio over root, one leaf interval long
func melody(rate beep.SampleRate, root float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(melodySteps))
	for _, step := range melodySteps {
		freq := root * math.Pow(2, float64(step)/12)
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, err
		}
		note := beep.Take(rate.N(constant.MelodyNoteDuration), tone)
		notes = append(notes, NewEnvelope(note, constant.MelodyNoteDuration, constant.NoteAttack, constant.NoteRelease, rate))
	}
	return beep.Seq(notes...), nil
}

// percussion is one period of the root beat: a pitch-dropping kick followed by silence
func percussion(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		&kick{rate: rate, samples: rate.N(constant.PercussionHit)},
		beep.Silence(rate.N(constant.PercussionPeriod-constant.PercussionHit)),
	)
}

// kick generates a decaying sine sweep
type kick struct {
	rate    beep.SampleRate
	samples int
	pos     int
	phase   float64
}

func (k *kick) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if k.pos >= k.samples {
			return i, i > 0
		}
		env := 1 - float64(k.pos)/float64(k.samples)
		freq := 50 * (1 + 2*env)
		k.phase += freq / float64(k.rate)
		v := 0.6 * env * math.Sin(2*math.Pi*k.phase)

		samples[i][0] = v
		samples[i][1] = v
		k.pos++
	}
	return len(samples), true
}

func (k *kick) Err() error { return nil }
