package main

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/telemetry"
)

func TestDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if math.Abs(got[i]-spec.Default) > 1e-9 {
			t.Errorf("%s: config %v, spec default %v", spec.Path, got[i], spec.Default)
		}
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("%s: default outside bounds", spec.Path)
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{-1, 100, 59.6, 300, 2})

	if cfg.Worm.Accel != 0.05 || cfg.Worm.MaxSpeed != 8 {
		t.Errorf("accel/speed not clamped: %v %v", cfg.Worm.Accel, cfg.Worm.MaxSpeed)
	}
	if cfg.Worm.InactiveTicks != 60 {
		t.Errorf("inactive ticks = %d, want rounded 60", cfg.Worm.InactiveTicks)
	}
	if cfg.Sensors.Length != 300 || cfg.Sensors.AvoidanceGain != 2 {
		t.Errorf("sensor params = %v %v", cfg.Sensors.Length, cfg.Sensors.AvoidanceGain)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("tuned config invalid: %v", err)
	}
}

func TestScore(t *testing.T) {
	target := Target{SurvivalSec: 100, CaughtRate: 0.5}
	tests := []struct {
		name string
		sum  telemetry.SurvivalSummary
		want float64
	}{
		{"on target", telemetry.SurvivalSummary{Sessions: 3, MeanSec: 100, CaughtRate: 0.5}, 0},
		{"half survival", telemetry.SurvivalSummary{Sessions: 3, MeanSec: 50, CaughtRate: 0.5}, 0.25},
		{"all caught", telemetry.SurvivalSummary{Sessions: 3, MeanSec: 100, CaughtRate: 1}, 0.25},
		{"no games", telemetry.SurvivalSummary{}, noGames},
	}
	for _, tt := range tests {
		if got := Score(tt.sum, target); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Score = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEvaluateFinishesGames(t *testing.T) {
	if testing.Short() {
		t.Skip("runs autopilot games")
	}
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	// No pickups and fast decay, so the autopilot tires out quickly.
	cfg.Environment.Waters.Count = 0
	cfg.Environment.Villages.Count = 0
	cfg.Stamina.Decay = 1

	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, Target{SurvivalSec: 60, CaughtRate: 0.5}, 1, 50000, []int64{1, 2}, cfg)

	score := fe.Evaluate(pv.DefaultVector())
	if sum := fe.LastSummary(); sum.Sessions == 0 || score >= noGames {
		t.Errorf("no game finished: %+v score %v", sum, score)
	}
}

func TestEvaluateLogsGameSetupFailure(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, Target{SurvivalSec: 60, CaughtRate: 0.5}, 1, 100, []int64{1, 2}, cfg)
	fe.log = slog.New(slog.NewTextHandler(&buf, nil))
	fe.newGame = func(*config.Config, game.Options) (*game.Game, error) {
		return nil, errors.New("output dir unwritable")
	}

	if score := fe.Evaluate(pv.DefaultVector()); score != noGames {
		t.Errorf("score = %v, want %v", score, noGames)
	}
	out := buf.String()
	if n := strings.Count(out, "evaluation game setup failed"); n != 2 {
		t.Errorf("logged %d setup failures, want one per seed:\n%s", n, out)
	}
	if !strings.Contains(out, "output dir unwritable") {
		t.Errorf("log lacks the cause:\n%s", out)
	}
}
