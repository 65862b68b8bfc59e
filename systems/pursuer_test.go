package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/werm/components"
	"github.com/pthm-cable/werm/config"
	"github.com/pthm-cable/werm/geom"
)

func newTestPursuers(t *testing.T, mutate func(*config.Config)) *PursuerSystem {
	t.Helper()
	cfg := config.MustLoad("").Clone()
	if mutate != nil {
		mutate(cfg)
		cfg.Recompute()
	}
	return NewPursuerSystem(cfg, rand.New(rand.NewSource(1)))
}

func TestSpawnAwayKeepsDistance(t *testing.T) {
	cfg := config.MustLoad("")
	s := NewSpawner(cfg, rand.New(rand.NewSource(42)))
	player := geom.V(1000, 750)

	ok := 0
	for i := 0; i < 50; i++ {
		p, found := s.SpawnAway(player)
		if found {
			ok++
			if d := geom.Distance(p, player); d < cfg.Worm.MinSpawnDist {
				t.Errorf("trial %d: spawn %v only %v from player", i, p, d)
			}
		} else if p != player {
			t.Errorf("trial %d: fallback %v is not the player position", i, p)
		}
	}
	if ok < 49 {
		t.Errorf("only %d/50 spawns satisfied the distance constraint", ok)
	}
}

func TestSpawnAwayStaysInBounds(t *testing.T) {
	cfg := config.MustLoad("")
	s := NewSpawner(cfg, rand.New(rand.NewSource(3)))
	corner := geom.V(10, 10)
	r := cfg.Worm.Radius

	for i := 0; i < 200; i++ {
		p, found := s.SpawnAway(corner)
		if !found {
			continue
		}
		if p.X < r || p.Y < r || p.X > cfg.World.Width-r || p.Y > cfg.World.Height-r {
			t.Fatalf("spawn %v outside inset bounds", p)
		}
	}
}

func TestSpawnAwayFallback(t *testing.T) {
	cfg := config.MustLoad("").Clone()
	cfg.Worm.MinSpawnDist = 1e6 // unreachable
	s := NewSpawner(cfg, rand.New(rand.NewSource(1)))
	player := geom.V(500, 500)

	p, found := s.SpawnAway(player)
	if found {
		t.Fatal("expected fallback")
	}
	if p != player {
		t.Errorf("fallback = %v, want player position %v", p, player)
	}
}

func TestWormStartsParkedAndInactive(t *testing.T) {
	sys := newTestPursuers(t, nil)
	parked := geom.V(-9999, -9999)
	w := components.NewWorm(parked)

	out := sys.Update(&w, geom.V(1000, 750), nil, false)
	if out != (PursuerOutcome{}) {
		t.Errorf("unexpected outcome %+v", out)
	}
	if w.State != components.Inactive || w.Visible() || w.Pos != parked {
		t.Errorf("worm should stay parked: %+v", w)
	}
}

func TestWormActivatesOnMove(t *testing.T) {
	sys := newTestPursuers(t, nil)
	player := geom.V(1000, 750)
	w := components.NewWorm(geom.V(-9999, -9999))
	w.Idle = 12

	out := sys.Update(&w, player, nil, true)
	if !out.Activated {
		t.Fatal("expected activation")
	}
	if w.State != components.Active || !w.Visible() || w.Idle != 0 {
		t.Errorf("worm not active after move: %+v", w)
	}
	// One tick of movement at most MaxSpeed from the spawn point
	if d := geom.Distance(w.Pos, player); d < 300-4 {
		t.Errorf("worm spawned too close: %v", d)
	}
}

func TestWormDeactivatesAfterIdleThreshold(t *testing.T) {
	sys := newTestPursuers(t, nil)
	player := geom.V(1000, 750)
	w := components.NewWorm(geom.V(-9999, -9999))
	sys.Update(&w, player, nil, true)

	for tick := 1; tick <= 60; tick++ {
		out := sys.Update(&w, player, nil, false)
		if out.Deactivated || w.State != components.Active {
			t.Fatalf("deactivated early at idle tick %d", tick)
		}
	}

	out := sys.Update(&w, player, nil, false)
	if !out.Deactivated || w.State != components.Inactive || w.Visible() {
		t.Fatalf("expected deactivation on idle tick 61, got %+v / %+v", out, w)
	}

	frozen := w.Pos
	for tick := 0; tick < 30; tick++ {
		out := sys.Update(&w, player, nil, false)
		if out.Activated || out.Deactivated || out.Collided {
			t.Fatalf("dormant worm reported %+v", out)
		}
	}
	if w.Pos != frozen || w.Visible() {
		t.Errorf("dormant worm changed: %+v", w)
	}

	out = sys.Update(&w, player, nil, true)
	if !out.Activated || !w.Visible() {
		t.Fatalf("expected reactivation, got %+v", out)
	}
}

func TestWormShortThreshold(t *testing.T) {
	sys := newTestPursuers(t, func(c *config.Config) { c.Worm.InactiveTicks = 2 })
	player := geom.V(1000, 750)
	w := components.NewWorm(geom.V(-9999, -9999))
	sys.Update(&w, player, nil, true)

	sys.Update(&w, player, nil, false)
	sys.Update(&w, player, nil, false)
	if w.State != components.Active {
		t.Fatal("should still be active after 2 idle ticks")
	}
	sys.Update(&w, player, nil, false)
	if w.State != components.Inactive {
		t.Fatal("should be inactive after 3 idle ticks")
	}
}

func TestWormCollision(t *testing.T) {
	sys := newTestPursuers(t, nil)
	player := geom.V(1000, 750)

	near := components.Worm{Pos: geom.V(1035.2, 750), State: components.Active}
	out := sys.Update(&near, player, nil, true)
	if !out.Collided {
		t.Errorf("worm at %v should touch player", near.Pos)
	}
	if near.State != components.Active {
		t.Errorf("collision changed worm state")
	}

	far := components.Worm{Pos: geom.V(1400, 750), State: components.Active}
	if out := sys.Update(&far, player, nil, true); out.Collided {
		t.Errorf("worm at %v should not touch player", far.Pos)
	}
}

func TestWormClampedToWorld(t *testing.T) {
	sys := newTestPursuers(t, nil)
	w := components.Worm{Pos: geom.V(26, 26), Vel: geom.V(-4, -4), State: components.Active}

	sys.Update(&w, geom.V(1000, 750), nil, true)
	if w.Pos.X != 25 || w.Pos.Y != 25 {
		t.Errorf("worm at %v, want clamped to (25, 25)", w.Pos)
	}
}
