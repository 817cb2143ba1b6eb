// Package audio plays the catcher's sound cues as short synthesized tones.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Envelope timings shared by every tone.
const (
	toneAttack  = 10 * time.Millisecond
	goldenGap   = 10 * time.Millisecond // second golden note starts 60ms after the first
	defaultRate = beep.SampleRate(44100)
)

// oscillator generates a raw periodic wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of the wave.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a tone in linearly and lets it die away exponentially.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

// NewEnvelope shapes s over duration with the given attack.
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if rest := e.total - e.attack; rest > 0 {
			// Decays to 1% at the end of the tone
			progress := float64(e.position-e.attack) / float64(rest)
			vol = math.Pow(0.01, progress)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(NewEnvelope(NewOscillator(freq, d, wave, rate), d, toneAttack, rate), vol)
}

// CatchSound is a short bright blip.
func CatchSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return tone(880, 100*time.Millisecond, WaveSine, rate, vol)
}

// GoldenSound is a rising two-note chime.
func GoldenSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return beep.Seq(
		tone(1200, 50*time.Millisecond, WaveTriangle, rate, vol),
		beep.Silence(rate.N(goldenGap)),
		tone(1500, 100*time.Millisecond, WaveTriangle, rate, vol),
	)
}

// MissSound is a low buzz.
func MissSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return tone(220, 200*time.Millisecond, WaveSaw, rate, vol)
}

// BombSound is a long low square wave.
func BombSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return tone(100, 500*time.Millisecond, WaveSquare, rate, vol)
}
