package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/telemetry"
)

// runHeadless plays autopilot sessions back to back, resetting on every
// game over, until a limit is reached or ctx is cancelled.
func runHeadless(ctx context.Context, cfg *config.Config, f runFlags, logger *slog.Logger) error {
	var sessions []telemetry.SessionStats
	opts := gameOptions(cfg, f, logger)
	opts.SessionCallback = func(s telemetry.SessionStats) {
		if s.Cause != telemetry.CauseAbandoned {
			sessions = append(sessions, s)
		}
	}

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()

	pilot := game.NewAutopilot(cfg, f.seed)

	logger.Info("starting headless simulation",
		"seed", f.seed,
		"max_ticks", f.maxTicks,
		"sessions", f.sessions,
	)

	var total int64
	for ctx.Err() == nil {
		res := g.Tick(pilot.Next(g))
		total++

		if res.GameOver {
			if f.sessions > 0 && len(sessions) >= f.sessions {
				break
			}
			g.Reset()
		}
		if f.maxTicks > 0 && total >= f.maxTicks {
			logger.Info("max ticks reached", "tick", total)
			break
		}
	}

	sum := telemetry.SummarizeSessions(sessions)
	logger.Info("headless run finished",
		"ticks", total,
		"sessions", sum.Sessions,
		"mean_survival_sec", sum.MeanSec,
		"median_survival_sec", sum.MedianSec,
		"stddev_survival_sec", sum.StdDevSec,
		"caught_rate", sum.CaughtRate,
		"spawn_fallbacks", sum.FallbackSum,
	)
	return nil
}
