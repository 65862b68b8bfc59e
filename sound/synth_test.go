package sound

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/telemetry"
)

const rate = beep.SampleRate(44100)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	for _, w := range []Wave{Sine, Square, Saw, Noise} {
		got := drain(t, Tone(440, 100*time.Millisecond, w, rate))
		if len(got) != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", w, len(got), rate.N(100*time.Millisecond))
		}
		for i, v := range got {
			if v < -1 || v > 1 {
				t.Fatalf("wave %d: sample %d = %v out of range", w, i, v)
			}
		}
	}
}

func TestSquareIsTwoLevel(t *testing.T) {
	for i, v := range drain(t, Tone(220, 50*time.Millisecond, Square, rate)) {
		if v != 1 && v != -1 {
			t.Fatalf("sample %d = %v", i, v)
		}
	}
}

func TestSweepRaisesZeroCrossings(t *testing.T) {
	crossings := func(xs []float64) int {
		n := 0
		for i := 1; i < len(xs); i++ {
			if (xs[i-1] < 0) != (xs[i] < 0) {
				n++
			}
		}
		return n
	}
	d := 200 * time.Millisecond
	s := drain(t, Sweep(100, 1000, d, Sine, rate))
	half := len(s) / 2
	if a, b := crossings(s[:half]), crossings(s[half:]); b <= a {
		t.Errorf("rising sweep should cross zero more often later: %d then %d", a, b)
	}
}

func TestEnvelopeFadesInAndOut(t *testing.T) {
	d := 100 * time.Millisecond
	s := drain(t, Envelope(Tone(0, d, Square, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate))
	if math.Abs(s[0]) > 1e-9 {
		t.Errorf("first sample = %v, want silence", s[0])
	}
	mid := len(s) / 2
	if math.Abs(s[mid]) != 1 {
		t.Errorf("sustain sample = %v, want full scale", s[mid])
	}
	if last := math.Abs(s[len(s)-1]); last > 0.01 {
		t.Errorf("last sample = %v, want near silence", last)
	}
}

func TestEnvelopeClampsOverlongRamps(t *testing.T) {
	d := 20 * time.Millisecond
	s := drain(t, Envelope(Tone(0, d, Square, rate), d, 30*time.Millisecond, 30*time.Millisecond, rate))
	if len(s) != rate.N(d) {
		t.Errorf("got %d samples, want %d", len(s), rate.N(d))
	}
	for i, v := range s {
		if math.Abs(v) > 1 {
			t.Fatalf("sample %d = %v", i, v)
		}
	}
}

func TestBuildCues(t *testing.T) {
	for _, c := range []Cue{CueSip, CueSurface, CueCaught, CueExhausted} {
		t.Run(c.String(), func(t *testing.T) {
			s := Build(c, rate, 0.5)
			if s == nil {
				t.Fatal("nil streamer")
			}
			out := drain(t, s)
			if len(out) == 0 || len(out) > rate.N(time.Second) {
				t.Errorf("cue length %d samples", len(out))
			}
			peak := 0.0
			for _, v := range out {
				peak = math.Max(peak, math.Abs(v))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak %v outside (0, 1]", peak)
			}
		})
	}
	if Build(Cue(99), rate, 1) != nil {
		t.Error("unknown cue should build nothing")
	}
}

func TestBuildSilentAtZeroVolume(t *testing.T) {
	for i, v := range drain(t, Build(CueCaught, rate, 0)) {
		if v != 0 {
			t.Fatalf("sample %d = %v, want silence", i, v)
		}
	}
}

func TestNilPlayerIsSafe(t *testing.T) {
	var p *Player
	p.Play(CueSip)
	p.SetMuted(true)
	p.Close()
	if !p.Muted() {
		t.Error("nil player should report muted")
	}
}

func TestDisabledPlayerStaysSilent(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: false, SampleRate: 44100, Volume: 0.5}, slog.New(slog.DiscardHandler))
	p.Init()
	p.Init()
	p.Play(CueCaught)
	p.PlayTick(game.TickResult{GameOver: true}, telemetry.CauseCaught)

	if p.initialized {
		t.Error("disabled player opened the speaker")
	}
	if n := p.mixer.Len(); n != 0 {
		t.Errorf("mixer holds %d streamers, want 0", n)
	}
	p.Close()
}

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name  string
		res   game.TickResult
		cause telemetry.Cause
		want  []Cue
	}{
		{"quiet", game.TickResult{}, telemetry.CauseNone, nil},
		{"sip", game.TickResult{WaterCollected: 1}, telemetry.CauseNone, []Cue{CueSip}},
		{"surface", game.TickResult{Activated: 2}, telemetry.CauseNone, []Cue{CueSurface}},
		{"both", game.TickResult{WaterCollected: 1, Activated: 1}, telemetry.CauseNone, []Cue{CueSip, CueSurface}},
		{"caught", game.TickResult{GameOver: true, Collided: true, WaterCollected: 1}, telemetry.CauseCaught, []Cue{CueCaught}},
		{"exhausted", game.TickResult{GameOver: true}, telemetry.CauseExhausted, []Cue{CueExhausted}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CuesFor(tt.res, tt.cause)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cue %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
