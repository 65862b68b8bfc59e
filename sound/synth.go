// Package sound synthesises the short cues played on game events.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// Cue identifies a game event with a sound.
type Cue int

const (
	CueSip     Cue = iota // water collected
	CueSurface            // a worm came out of dormancy
	CueCaught             // a worm reached the player
	CueExhausted
)

func (c Cue) String() string {
	switch c {
	case CueSip:
		return "sip"
	case CueSurface:
		return "surface"
	case CueCaught:
		return "caught"
	case CueExhausted:
		return "exhausted"
	}
	return "unknown"
}

// oscillator produces a wave whose frequency glides linearly from
// startFreq to endFreq over its duration.
type oscillator struct {
	startFreq float64
	endFreq   float64
	wave      Wave
	rate      beep.SampleRate
	rng       *rand.Rand

	phase    float64
	position int
	length   int
}

// Tone returns a fixed-pitch oscillator.
func Tone(freq float64, d time.Duration, w Wave, rate beep.SampleRate) beep.Streamer {
	return Sweep(freq, freq, d, w, rate)
}

// Sweep returns an oscillator gliding between two pitches.
func Sweep(from, to float64, d time.Duration, w Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: from,
		endFreq:   to,
		wave:      w,
		rate:      rate,
		rng:       rand.New(rand.NewSource(int64(from*1000) + int64(d))),
		length:    rate.N(d),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * o.phase)
		case Square:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2 * (o.phase - 0.5)
		case Noise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.position) / float64(o.length)
		freq := o.startFreq + (o.endFreq-o.startFreq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Envelope shapes s, which should last d, with a linear attack and release.
func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att, rel := rate.N(attack), rate.N(release)
	if att+rel > total {
		att = total * att / (att + rel)
		rel = total - att
	}
	return &envelope{s: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left <= e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales s by a linear factor. Zero or less is silent since the
// volume effect works in log space.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// Build returns the streamer for a cue at the given master volume. The
// result is finite and can be handed straight to a mixer.
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueSip:
		const d = 250 * time.Millisecond
		s = beep.Mix(
			gain(Envelope(Tone(1046.5, d, Sine, rate), d, 5*time.Millisecond, 220*time.Millisecond, rate), 0.7),
			gain(Envelope(Tone(2093, d, Sine, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate), 0.3),
		)
	case CueSurface:
		const d = 400 * time.Millisecond
		s = beep.Mix(
			gain(Envelope(Sweep(45, 90, d, Saw, rate), d, 80*time.Millisecond, 200*time.Millisecond, rate), 0.6),
			gain(Envelope(Tone(0, d, Noise, rate), d, 150*time.Millisecond, 200*time.Millisecond, rate), 0.25),
		)
	case CueCaught:
		const d = 350 * time.Millisecond
		s = Envelope(Tone(110, d, Square, rate), d, 5*time.Millisecond, 150*time.Millisecond, rate)
	case CueExhausted:
		const d = 700 * time.Millisecond
		s = Envelope(Sweep(440, 110, d, Sine, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate)
	default:
		return nil
	}
	return gain(s, volume)
}
