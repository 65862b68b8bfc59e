package telemetry

import (
	"math"
	"testing"
	"time"
)

// stepClock is a manual clock for PerfCollector.
type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePlayer)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseWorms)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTick <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.MaxTick < stats.AvgTick || stats.P99Tick > stats.MaxTick {
		t.Errorf("inconsistent tick stats: %+v", stats)
	}
	for _, phase := range []string{PhasePlayer, PhaseWorms} {
		if _, ok := stats.PhasePct[phase]; !ok {
			t.Errorf("expected %s phase to be tracked", phase)
		}
	}
}

func TestPerfCollector_PhaseShares(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(10)
	pc.now = clk.now

	for i := 0; i < 4; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePlayer)
		clk.advance(100 * time.Microsecond)
		pc.StartPhase(PhaseWorms)
		clk.advance(300 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTick != 400*time.Microsecond || stats.MaxTick != 400*time.Microsecond {
		t.Errorf("tick = avg %v max %v, want 400µs", stats.AvgTick, stats.MaxTick)
	}
	tests := []struct {
		phase string
		want  float64
	}{
		{PhasePlayer, 25},
		{PhaseWorms, 75},
	}
	for _, tt := range tests {
		if got := stats.PhasePct[tt.phase]; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s share = %v%%, want %v%%", tt.phase, got, tt.want)
		}
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseWorms)
		pc.EndTick()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sample count = %d, want window size 5", pc.sampleCount)
	}
	if stats := pc.Stats(); stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyAndNil(t *testing.T) {
	stats := NewPerfCollector(10).Stats()
	if stats.AvgTick != 0 || stats.PhasePct == nil {
		t.Errorf("empty collector stats = %+v", stats)
	}

	var pc *PerfCollector
	pc.StartTick()
	pc.StartPhase(PhasePlayer)
	pc.EndTick()
	pc.RecordFrame()
	if stats := pc.Stats(); stats.PhasePct == nil {
		t.Error("nil collector should return an empty map")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms frames, got %v", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTick:  150 * time.Microsecond,
		PhasePct: map[string]float64{PhaseWorms: 60, PhasePickups: 10},
	}
	row := s.ToCSV(2, 1200)
	if row.Session != 2 || row.WindowEnd != 1200 || row.AvgTickUS != 150 {
		t.Errorf("row identity wrong: %+v", row)
	}
	if row.WormsPct != 60 || row.PickupsPct != 10 || row.PlayerPct != 0 {
		t.Errorf("phase columns wrong: %+v", row)
	}
}
