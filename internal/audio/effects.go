package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveNoise
)

// Sound shapes
const (
	shotFreqStart = 1320.0
	shotFreqEnd   = 660.0
	shotDuration  = 70 * time.Millisecond
	shotRelease   = 40 * time.Millisecond

	hitDuration = 180 * time.Millisecond
	hitAttack   = 5 * time.Millisecond
	hitRelease  = 150 * time.Millisecond
)

// oscillator generates a fixed-length wave whose frequency slides linearly
// from freqStart to freqEnd.
type oscillator struct {
	freqStart float64
	freqEnd   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates an oscillator lasting the given duration.
func NewOscillator(freqStart, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqStart: freqStart,
		freqEnd:   freqEnd,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freqStart + (o.freqEnd-o.freqStart)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over the given duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero
// volume is silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ShotSound is a short falling square-wave blip.
func ShotSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(shotFreqStart, shotFreqEnd, shotDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, shotDuration, 0, shotRelease, rate)
	// Square waves are loud at unity gain
	return newVolume(shaped, vol*0.3)
}

// HitSound is a noise burst with a fast attack and long tail.
func HitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, 0, hitDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, hitDuration, hitAttack, hitRelease, rate)
	return newVolume(shaped, vol*0.6)
}
