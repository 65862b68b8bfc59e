package main

import (
	"log/slog"
	"sync"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/telemetry"
)

// Target describes the difficulty the tuner aims for.
type Target struct {
	SurvivalSec float64 // desired mean autopilot survival
	CaughtRate  float64 // desired share of games ended by a worm
}

// FitnessEvaluator runs headless autopilot games and scores how far the
// result is from the target.
type FitnessEvaluator struct {
	params     *ParamVector
	target     Target
	sessions   int   // finished games per seed
	maxTicks   int64 // per seed cap
	seeds      []int64
	baseConfig *config.Config
	log        *slog.Logger
	newGame    func(*config.Config, game.Options) (*game.Game, error)

	mu          sync.Mutex
	lastSummary telemetry.SurvivalSummary
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target Target, sessions int, maxTicks int64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		target:     target,
		sessions:   sessions,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
		log:        slog.Default(),
		newGame:    game.NewGame,
	}
}

// LastSummary returns the survival summary of the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() telemetry.SurvivalSummary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// Evaluate computes fitness for raw parameter values (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	results := make([][]telemetry.SessionStats, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSessions(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var all []telemetry.SessionStats
	for _, r := range results {
		all = append(all, r...)
	}
	sum := telemetry.SummarizeSessions(all)

	fe.mu.Lock()
	fe.lastSummary = sum
	fe.mu.Unlock()

	return Score(sum, fe.target)
}

// runSessions plays autopilot games with one seed until enough have
// finished or the tick cap is hit.
func (fe *FitnessEvaluator) runSessions(cfg *config.Config, seed int64) []telemetry.SessionStats {
	var sessions []telemetry.SessionStats
	g, err := fe.newGame(cfg, game.Options{
		Seed:   seed,
		Logger: slog.New(slog.DiscardHandler),
		SessionCallback: func(s telemetry.SessionStats) {
			if s.Cause != telemetry.CauseAbandoned {
				sessions = append(sessions, s)
			}
		},
	})
	if err != nil {
		fe.log.Warn("evaluation game setup failed", "seed", seed, "error", err)
		return nil
	}
	defer g.Close()

	pilot := game.NewAutopilot(cfg, seed)
	for tick := int64(0); tick < fe.maxTicks && len(sessions) < fe.sessions; tick++ {
		if g.Tick(pilot.Next(g)).GameOver {
			g.Reset()
		}
	}
	return sessions
}

// noGames scores an evaluation in which no game finished.
const noGames = 1e6

// Score is the squared relative survival error plus the squared caught
// rate error.
func Score(sum telemetry.SurvivalSummary, t Target) float64 {
	if sum.Sessions == 0 {
		return noGames
	}
	survivalErr := (sum.MeanSec - t.SurvivalSec) / t.SurvivalSec
	caughtErr := sum.CaughtRate - t.CaughtRate
	return survivalErr*survivalErr + caughtErr*caughtErr
}
