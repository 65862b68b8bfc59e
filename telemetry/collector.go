package telemetry

// Collector accumulates tick samples within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	session         int
	windowStartTick int64

	movingTicks    int
	idleTicks      int
	watersTaken    int
	villageTicks   int
	activations    int
	deactivations  int
	spawnFallbacks int
	collisions     int

	stamina     []float64
	activeWorms []float64
	nearest     []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record adds one tick's sample to the current window.
func (c *Collector) Record(s TickSample) {
	if s.Moved {
		c.movingTicks++
	} else {
		c.idleTicks++
	}
	if s.InVillage {
		c.villageTicks++
	}
	if s.Collided {
		c.collisions++
	}
	c.watersTaken += s.WatersTaken
	c.activations += s.Activations
	c.deactivations += s.Deactivations
	c.spawnFallbacks += s.SpawnFallbacks

	c.stamina = append(c.stamina, s.Stamina)
	c.activeWorms = append(c.activeWorms, float64(s.ActiveWorms))
	if s.ActiveWorms > 0 {
		c.nearest = append(c.nearest, s.NearestWorm)
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64) WindowStats {
	staminaMean, staminaP10, staminaP50, staminaP90 := Summarize(c.stamina)
	activeMean, _, _, _ := Summarize(c.activeWorms)
	_, nearP10, nearP50, _ := Summarize(c.nearest)

	stats := WindowStats{
		Session:         c.session,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		MovingTicks:  c.movingTicks,
		IdleTicks:    c.idleTicks,
		WatersTaken:  c.watersTaken,
		VillageTicks: c.villageTicks,

		Activations:    c.activations,
		Deactivations:  c.deactivations,
		SpawnFallbacks: c.spawnFallbacks,
		Collisions:     c.collisions,
		ActiveWormMean: activeMean,
		NearestP10:     nearP10,
		NearestP50:     nearP50,

		StaminaMean: staminaMean,
		StaminaP10:  staminaP10,
		StaminaP50:  staminaP50,
		StaminaP90:  staminaP90,
	}

	c.windowStartTick = currentTick
	c.reset()

	return stats
}

// StartSession discards the partial window and restarts tick counting for a
// new session.
func (c *Collector) StartSession(session int) {
	c.session = session
	c.windowStartTick = 0
	c.reset()
}

// Pending reports whether the current window holds any samples.
func (c *Collector) Pending() bool {
	return len(c.stamina) > 0
}

func (c *Collector) reset() {
	c.movingTicks = 0
	c.idleTicks = 0
	c.watersTaken = 0
	c.villageTicks = 0
	c.activations = 0
	c.deactivations = 0
	c.spawnFallbacks = 0
	c.collisions = 0
	c.stamina = c.stamina[:0]
	c.activeWorms = c.activeWorms[:0]
	c.nearest = c.nearest[:0]
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
