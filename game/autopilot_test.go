package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/werm/components"
	"github.com/pthm-cable/werm/geom"
)

func TestInputDirection(t *testing.T) {
	tests := []struct {
		in    Input
		moved bool
		want  geom.Vec
	}{
		{Input{}, false, geom.V(0, 0)},
		{Input{DX: 1}, true, geom.V(1, 0)},
		{Input{DY: -1}, true, geom.V(0, -1)},
		{Input{DX: -1, DY: 1}, true, geom.V(-1/math.Sqrt2, 1/math.Sqrt2)},
		{Input{DX: 3}, true, geom.V(1, 0)},
	}
	for _, tt := range tests {
		if tt.in.Moved() != tt.moved {
			t.Errorf("%+v.Moved() = %v", tt.in, !tt.moved)
		}
		if d := tt.in.Direction(); geom.Distance(d, tt.want) > eps {
			t.Errorf("%+v.Direction() = %v, want %v", tt.in, d, tt.want)
		}
	}

	if got := (Input{DX: 1}).Combine(Input{DX: -1, DY: 1}); got != (Input{DY: 1}) {
		t.Errorf("opposite keys should cancel, got %+v", got)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		v    geom.Vec
		want Input
	}{
		{geom.V(0, 0), Input{}},
		{geom.V(10, 0), Input{DX: 1}},
		{geom.V(-10, 1), Input{DX: -1}},
		{geom.V(5, 5), Input{DX: 1, DY: 1}},
		{geom.V(1, -10), Input{DY: -1}},
		{geom.V(-7, -6), Input{DX: -1, DY: -1}},
	}
	for _, tt := range tests {
		if got := quantize(tt.v); got != tt.want {
			t.Errorf("quantize(%v) = %+v, want %+v", tt.v, got, tt.want)
		}
	}
}

func TestAutopilotFleesVisibleWorm(t *testing.T) {
	g := newTestGame(t, emptyWorld(1), Options{})
	p := g.Player()
	setWorm(g, components.Worm{Pos: geom.V(p.X+100, p.Y), State: components.Active})

	ap := NewAutopilot(g.Config(), 1)
	if in := ap.Next(g); in.DX != -1 {
		t.Errorf("autopilot should run left from a worm on its right, got %+v", in)
	}
}

func TestAutopilotSeeksWaterWhenThirsty(t *testing.T) {
	g := newTestGame(t, emptyWorld(0), Options{})
	g.stamina = 20
	p := g.Player()
	g.waterMap.NewEntity(&components.Water{Rect: geom.NewRect(p.X, p.Y-300, 25, 25)})

	ap := NewAutopilot(g.Config(), 1)
	if in := ap.Next(g); in != (Input{DY: -1}) {
		t.Errorf("autopilot should head up toward water, got %+v", in)
	}
}

func TestAutopilotRestsInVillage(t *testing.T) {
	g := newTestGame(t, emptyWorld(0), Options{})
	g.stamina = 60
	p := g.Player()
	g.villageMap.NewEntity(&components.Village{Rect: geom.NewRect(p.X-60, p.Y-60, 120, 120)})

	ap := NewAutopilot(g.Config(), 1)
	if in := ap.Next(g); in.Moved() {
		t.Errorf("autopilot should rest inside a village, got %+v", in)
	}
}

func TestAutopilotSessionsStayValid(t *testing.T) {
	g := newTestGame(t, nil, Options{Seed: 5})
	cfg := g.Config()
	ap := NewAutopilot(cfg, 5)

	games := 0
	for tick := 0; tick < 20000 && games < 3; tick++ {
		res := g.Tick(ap.Next(g))
		if s := g.Stamina(); s < 0 || s > cfg.Stamina.Max {
			t.Fatalf("stamina %v out of range", s)
		}
		p := g.Player()
		r := cfg.Player.Radius
		if p.X < r || p.Y < r || p.X > cfg.World.Width-r || p.Y > cfg.World.Height-r {
			t.Fatalf("player %v outside bounds", p)
		}
		for _, w := range g.Worms() {
			if w.Visible != (w.State == components.Active) {
				t.Fatalf("visibility diverged from lifecycle: %+v", w)
			}
		}
		if res.GameOver {
			games++
			g.Reset()
		}
	}
}
