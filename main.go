package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/game"
)

// runFlags are the command-line settings shared by every mode.
type runFlags struct {
	configPath  string
	headless    bool
	terminal    bool
	logStats    bool
	statsWindow float64
	outputDir   string
	seed        int64
	maxTicks    int64
	sessions    int
	mute        bool
	logFile     string
	debug       bool
}

func main() {
	var f runFlags
	flag.StringVar(&f.configPath, "config", "", "Path to config.yaml (empty = use defaults)")
	flag.BoolVar(&f.headless, "headless", false, "Run without graphics, driven by the autopilot")
	flag.BoolVar(&f.terminal, "tui", false, "Play in the terminal instead of a window")
	flag.BoolVar(&f.logStats, "log-stats", false, "Output stats via slog")
	flag.Float64Var(&f.statsWindow, "stats-window", 0, "Stats window size in seconds (0 = use config)")
	flag.StringVar(&f.outputDir, "output-dir", "", "Output directory for CSV logs and config snapshot")
	flag.Int64Var(&f.seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.Int64Var(&f.maxTicks, "max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	flag.IntVar(&f.sessions, "sessions", 0, "Headless: stop after N finished games (0 = unlimited)")
	flag.BoolVar(&f.mute, "mute", false, "Disable sound")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file instead of stdout")
	flag.BoolVar(&f.debug, "debug", false, "Log worm activation and deactivation")
	flag.Parse()

	logger, closeLog, err := newLogger(f)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if f.mute {
		cfg.Audio.Enabled = false
	}

	if f.seed == 0 {
		f.seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case f.headless:
		err = runHeadless(ctx, cfg, f, logger)
	case f.terminal:
		err = runTerminal(ctx, cfg, f, logger)
	default:
		err = runGraphical(cfg, f, logger)
	}
	if err != nil {
		slog.Error("exiting", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger builds the JSON logger. The terminal frontend owns stdout, so
// it logs to -log-file or nowhere.
func newLogger(f runFlags) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var w io.Writer = os.Stdout
	closeFn := func() {}
	switch {
	case f.logFile != "":
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, err
		}
		w = file
		closeFn = func() { file.Close() }
	case f.terminal:
		return slog.New(slog.DiscardHandler), closeFn, nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), closeFn, nil
}

// gameOptions maps the flags onto game options.
func gameOptions(cfg *config.Config, f runFlags, logger *slog.Logger) game.Options {
	statsWindowSec := cfg.Telemetry.StatsWindow
	if f.statsWindow > 0 {
		statsWindowSec = f.statsWindow
	}
	return game.Options{
		Seed:           f.seed,
		Logger:         logger,
		LogStats:       f.logStats,
		StatsWindowSec: statsWindowSec,
		OutputDir:      f.outputDir,
	}
}
