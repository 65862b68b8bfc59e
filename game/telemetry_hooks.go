package game

import (
	"github.com/pthm-cable/werm/telemetry"
)

// recordTelemetry folds one tick into the window and session trackers and
// closes the session when the tick ended the game.
func (g *Game) recordTelemetry(sample telemetry.TickSample) {
	g.collector.Record(sample)
	g.sessionStats.Record(sample)

	if g.collector.ShouldFlush(g.tick) {
		g.flushWindow()
	}
	if g.gameOver {
		g.endSession(g.cause)
	}
}

// flushWindow emits the current stats window to every sink.
func (g *Game) flushWindow() {
	stats := g.collector.Flush(g.tick)
	perfStats := g.perf.Stats()

	if g.opts.StatsCallback != nil {
		g.opts.StatsCallback(stats)
	}

	if g.logStats {
		stats.LogStats(g.log)
		perfStats.LogStats(g.log)
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		g.log.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, g.session, stats.WindowEndTick); err != nil {
		g.log.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logStats {
			bm.LogBookmark(g.log)
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			g.log.Error("failed to write bookmark", "error", err)
		}
	}
}

// endSession flushes the partial window and records the finished session.
func (g *Game) endSession(cause telemetry.Cause) {
	if g.collector.Pending() {
		g.flushWindow()
	}

	stats := g.sessionStats.Finish(cause)
	if cause == telemetry.CauseAbandoned {
		g.log.Info("session abandoned", "session", stats)
	} else {
		g.log.Info("game over", "session", stats)
	}

	if g.opts.SessionCallback != nil {
		g.opts.SessionCallback(stats)
	}
	if err := g.outputManager.WriteSession(stats); err != nil {
		g.log.Error("failed to write session", "error", err)
	}
}
