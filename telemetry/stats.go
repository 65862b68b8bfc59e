package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	Session         int     `csv:"session"`
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Player activity
	MovingTicks  int `csv:"moving_ticks"`
	IdleTicks    int `csv:"idle_ticks"`
	WatersTaken  int `csv:"waters_taken"`
	VillageTicks int `csv:"village_ticks"`

	// Pursuers
	Activations    int     `csv:"activations"`
	Deactivations  int     `csv:"deactivations"`
	SpawnFallbacks int     `csv:"spawn_fallbacks"`
	Collisions     int     `csv:"collisions"`
	ActiveWormMean float64 `csv:"active_worm_mean"`
	NearestP10     float64 `csv:"nearest_worm_p10"`
	NearestP50     float64 `csv:"nearest_worm_p50"`

	// Stamina distribution over the window
	StaminaMean float64 `csv:"stamina_mean"`
	StaminaP10  float64 `csv:"stamina_p10"`
	StaminaP50  float64 `csv:"stamina_p50"`
	StaminaP90  float64 `csv:"stamina_p90"`
}

// Summarize returns the mean and 10th/50th/90th percentiles of values.
// Returns zeros for an empty slice.
func Summarize(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", s.Session),
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("moving_ticks", s.MovingTicks),
		slog.Int("idle_ticks", s.IdleTicks),
		slog.Int("waters_taken", s.WatersTaken),
		slog.Int("village_ticks", s.VillageTicks),
		slog.Int("activations", s.Activations),
		slog.Int("deactivations", s.Deactivations),
		slog.Int("spawn_fallbacks", s.SpawnFallbacks),
		slog.Int("collisions", s.Collisions),
		slog.Float64("active_worm_mean", s.ActiveWormMean),
		slog.Float64("nearest_worm_p10", s.NearestP10),
		slog.Float64("nearest_worm_p50", s.NearestP50),
		slog.Float64("stamina_mean", s.StaminaMean),
		slog.Float64("stamina_p10", s.StaminaP10),
		slog.Float64("stamina_p50", s.StaminaP50),
		slog.Float64("stamina_p90", s.StaminaP90),
	)
}

// LogStats logs the window stats using the given logger.
func (s WindowStats) LogStats(log *slog.Logger) {
	log.Info("stats", "window", s)
}
