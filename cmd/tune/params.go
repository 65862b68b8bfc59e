package main

import (
	"github.com/pthm-cable/werm/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the worm difficulty parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "worm_accel", Path: "worm.accel", Min: 0.05, Max: 1.0, Default: 0.3},
			{Name: "worm_max_speed", Path: "worm.max_speed", Min: 2.0, Max: 8.0, Default: 4.0},
			{Name: "worm_inactive_ticks", Path: "worm.inactive_ticks", Min: 15, Max: 240, Default: 60},
			{Name: "sensor_length", Path: "sensors.length", Min: 50, Max: 400, Default: 200},
			{Name: "avoidance_gain", Path: "sensors.avoidance_gain", Min: 0.2, Max: 4.0, Default: 1.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg. Order matches
// Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Worm.Accel = clamped[0]
	cfg.Worm.MaxSpeed = clamped[1]
	cfg.Worm.InactiveTicks = int(clamped[2] + 0.5)
	cfg.Sensors.Length = clamped[3]
	cfg.Sensors.AvoidanceGain = clamped[4]
	cfg.Recompute()
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Worm.Accel,
		cfg.Worm.MaxSpeed,
		float64(cfg.Worm.InactiveTicks),
		cfg.Sensors.Length,
		cfg.Sensors.AvoidanceGain,
	}
}
