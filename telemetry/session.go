package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SessionStats summarises one play session from reset to game over.
type SessionStats struct {
	Session        int     `csv:"session"`
	Seed           int64   `csv:"seed"`
	Ticks          int64   `csv:"ticks"`
	SurvivalSec    float64 `csv:"survival_sec"`
	Cause          Cause   `csv:"cause"`
	FinalStamina   float64 `csv:"final_stamina"`
	MinStamina     float64 `csv:"min_stamina"`
	WatersTaken    int     `csv:"waters_taken"`
	VillageTicks   int     `csv:"village_ticks"`
	Activations    int     `csv:"activations"`
	SpawnFallbacks int     `csv:"spawn_fallbacks"`
}

// SessionTracker accumulates a SessionStats across ticks.
type SessionTracker struct {
	dt    float64
	stats SessionStats
}

// NewSessionTracker starts tracking the given session.
func NewSessionTracker(session int, seed int64, dt float64, stamina float64) *SessionTracker {
	return &SessionTracker{
		dt: dt,
		stats: SessionStats{
			Session:      session,
			Seed:         seed,
			FinalStamina: stamina,
			MinStamina:   stamina,
		},
	}
}

// Record folds one tick into the session totals.
func (t *SessionTracker) Record(s TickSample) {
	t.stats.Ticks = s.Tick
	t.stats.FinalStamina = s.Stamina
	if s.Stamina < t.stats.MinStamina {
		t.stats.MinStamina = s.Stamina
	}
	t.stats.WatersTaken += s.WatersTaken
	if s.InVillage {
		t.stats.VillageTicks++
	}
	t.stats.Activations += s.Activations
	t.stats.SpawnFallbacks += s.SpawnFallbacks
}

// Finish stamps the cause and returns the completed record.
func (t *SessionTracker) Finish(cause Cause) SessionStats {
	t.stats.Cause = cause
	t.stats.SurvivalSec = float64(t.stats.Ticks) * t.dt
	return t.stats
}

// Ticks returns the number of ticks recorded so far.
func (t *SessionTracker) Ticks() int64 {
	return t.stats.Ticks
}

// LogValue implements slog.LogValuer for structured logging.
func (s SessionStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", s.Session),
		slog.Int64("ticks", s.Ticks),
		slog.Float64("survival_sec", s.SurvivalSec),
		slog.String("cause", string(s.Cause)),
		slog.Float64("final_stamina", s.FinalStamina),
		slog.Float64("min_stamina", s.MinStamina),
		slog.Int("waters_taken", s.WatersTaken),
		slog.Int("village_ticks", s.VillageTicks),
		slog.Int("activations", s.Activations),
		slog.Int("spawn_fallbacks", s.SpawnFallbacks),
	)
}

// SurvivalSummary aggregates survival time across sessions.
type SurvivalSummary struct {
	Sessions    int
	MeanSec     float64
	StdDevSec   float64
	MedianSec   float64
	CaughtRate  float64 // fraction of sessions ended by a worm
	FallbackSum int
}

// SummarizeSessions computes survival statistics over finished sessions.
func SummarizeSessions(sessions []SessionStats) SurvivalSummary {
	n := len(sessions)
	if n == 0 {
		return SurvivalSummary{}
	}

	survival := make([]float64, n)
	caught := 0
	fallbacks := 0
	for i, s := range sessions {
		survival[i] = s.SurvivalSec
		if s.Cause == CauseCaught {
			caught++
		}
		fallbacks += s.SpawnFallbacks
	}

	mean, std := stat.MeanStdDev(survival, nil)
	if n == 1 {
		std = 0
	}
	sort.Float64s(survival)

	return SurvivalSummary{
		Sessions:    n,
		MeanSec:     mean,
		StdDevSec:   std,
		MedianSec:   stat.Quantile(0.5, stat.Empirical, survival, nil),
		CaughtRate:  float64(caught) / float64(n),
		FallbackSum: fallbacks,
	}
}
