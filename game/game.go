// Package game owns the world: player, stamina, environment and the worm
// roster, advanced one tick at a time by a frontend or a headless driver.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/werm/components"
	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
	"github.com/pthm-cable/werm/systems"
	"github.com/pthm-cable/werm/telemetry"
)

// Options configures a game instance beyond the static config.
type Options struct {
	Seed           int64
	Logger         *slog.Logger // nil = slog.Default()
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // empty = no CSV output

	// Optional hooks, called synchronously from Tick.
	StatsCallback   func(telemetry.WindowStats)
	SessionCallback func(telemetry.SessionStats)
}

// Game holds the complete game state.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand
	log  *slog.Logger

	// Rebuilt on every Reset
	world         *ecs.World
	wormMap       *ecs.Map1[components.Worm]
	wormFilter    *ecs.Filter1[components.Worm]
	rockMap       *ecs.Map1[components.Rock]
	rockFilter    *ecs.Filter1[components.Rock]
	waterMap      *ecs.Map1[components.Water]
	waterFilter   *ecs.Filter1[components.Water]
	villageMap    *ecs.Map1[components.Village]
	villageFilter *ecs.Filter1[components.Village]

	// Rocks and villages never change within a session, so the sensor
	// obstacle list is built once per reset.
	obstacles    []geom.Rect
	obstacleGrid *systems.ObstacleGrid

	pursuers *systems.PursuerSystem

	// State
	player   geom.Vec
	stamina  float64
	gameOver bool
	cause    telemetry.Cause
	tick     int64
	session  int

	// Telemetry
	collector     *telemetry.Collector
	sessionStats  *telemetry.SessionTracker
	perf          *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
	logStats      bool
}

// NewGame creates a game with a freshly generated world.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		log:       logger,
		collector: telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		bookmarks: telemetry.NewBookmarkDetector(10, telemetry.BookmarkThresholds{
			CloseCallDist: cfg.Telemetry.CloseCallDist,
			SwarmWorms:    cfg.Telemetry.SwarmWorms,
			CrisisStamina: cfg.Telemetry.CrisisStamina,
		}),
		outputManager: om,
		logStats:      opts.LogStats,
	}
	g.rebuild()

	return g, nil
}

// Reset discards every entity and rebuilds the world with fresh random
// placement. Must be called between ticks.
func (g *Game) Reset() {
	if !g.gameOver && g.tick > 0 {
		g.endSession(telemetry.CauseAbandoned)
	}
	g.rebuild()
	g.log.Info("reset", "session", g.session, "rocks", len(g.Rocks()), "waters", len(g.Waters()), "villages", len(g.Villages()))
}

// rebuild constructs a new ECS world and all session state.
func (g *Game) rebuild() {
	world := ecs.NewWorld()
	g.world = world
	g.wormMap = ecs.NewMap1[components.Worm](world)
	g.wormFilter = ecs.NewFilter1[components.Worm](world)
	g.rockMap = ecs.NewMap1[components.Rock](world)
	g.rockFilter = ecs.NewFilter1[components.Rock](world)
	g.waterMap = ecs.NewMap1[components.Water](world)
	g.waterFilter = ecs.NewFilter1[components.Water](world)
	g.villageMap = ecs.NewMap1[components.Village](world)
	g.villageFilter = ecs.NewFilter1[components.Village](world)

	g.pursuers = systems.NewPursuerSystem(g.cfg, g.rng)
	g.obstacleGrid = systems.NewObstacleGrid(g.cfg.World.Width, g.cfg.World.Height, g.cfg.Sensors.Length)

	g.player = geom.V(g.cfg.World.Width/2, g.cfg.World.Height/2)
	g.stamina = g.cfg.Stamina.Max
	g.gameOver = false
	g.cause = telemetry.CauseNone
	g.tick = 0
	g.session++

	g.spawnEnvironment()
	g.spawnWorms()

	g.collector.StartSession(g.session)
	g.bookmarks.Reset()
	g.sessionStats = telemetry.NewSessionTracker(g.session, g.opts.Seed, g.cfg.Derived.DT, g.stamina)
}

// Close flushes telemetry and releases output files.
func (g *Game) Close() error {
	if g.collector.Pending() {
		g.flushWindow()
	}
	return g.outputManager.Close()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Player returns the player's world position.
func (g *Game) Player() geom.Vec {
	return g.player
}

// Stamina returns the player's stamina in [0, max].
func (g *Game) Stamina() float64 {
	return g.stamina
}

// StaminaFraction returns stamina as a fraction of max, for bars.
func (g *Game) StaminaFraction() float64 {
	return g.stamina / g.cfg.Stamina.Max
}

// GameOver reports whether the session has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Cause returns why the session ended, or CauseNone while running.
func (g *Game) Cause() telemetry.Cause {
	return g.cause
}

// Ticks returns the number of ticks simulated this session.
func (g *Game) Ticks() int64 {
	return g.tick
}

// Session returns the 1-based session counter.
func (g *Game) Session() int {
	return g.session
}

// Elapsed returns simulated time since the last reset.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.tick) * time.Second / time.Duration(g.cfg.World.TickRate)
}

// WormView is the read-only state a frontend needs to draw a worm.
type WormView struct {
	Pos     geom.Vec
	Vel     geom.Vec
	State   components.Lifecycle
	Idle    int
	Visible bool
}

// Worms returns every worm in roster order.
func (g *Game) Worms() []WormView {
	var views []WormView
	query := g.wormFilter.Query()
	for query.Next() {
		w := query.Get()
		views = append(views, WormView{Pos: w.Pos, Vel: w.Vel, State: w.State, Idle: w.Idle, Visible: w.Visible()})
	}
	return views
}

// Rocks returns the rock obstacles.
func (g *Game) Rocks() []geom.Rect {
	var rects []geom.Rect
	query := g.rockFilter.Query()
	for query.Next() {
		rects = append(rects, query.Get().Rect)
	}
	return rects
}

// Waters returns the water pickups still on the map.
func (g *Game) Waters() []geom.Rect {
	var rects []geom.Rect
	query := g.waterFilter.Query()
	for query.Next() {
		rects = append(rects, query.Get().Rect)
	}
	return rects
}

// Villages returns the village regeneration zones.
func (g *Game) Villages() []geom.Rect {
	var rects []geom.Rect
	query := g.villageFilter.Query()
	for query.Next() {
		rects = append(rects, query.Get().Rect)
	}
	return rects
}

// Obstacles returns what worm sensors see: rocks and villages.
func (g *Game) Obstacles() []geom.Rect {
	return g.obstacles
}

// Perf returns the tick timing collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}

// Steering exposes the worm controller for debug drawing.
func (g *Game) Steering() systems.Steering {
	return g.pursuers.Steering()
}
