package game

import "github.com/pthm-cable/werm/geom"

// Input is one tick of directional intent. Each axis is -1, 0 or 1;
// frontends fold key state into it.
type Input struct {
	DX, DY int
}

// Moved reports whether the input asks the player to move.
func (in Input) Moved() bool {
	return in.DX != 0 || in.DY != 0
}

// Direction returns the unit movement direction, so diagonals are not
// faster than straight lines. Zero when not moving.
func (in Input) Direction() geom.Vec {
	return geom.Normalize(geom.V(float64(sign(in.DX)), float64(sign(in.DY))))
}

// Combine adds two inputs and clamps each axis, so opposite keys cancel.
func (in Input) Combine(o Input) Input {
	return Input{DX: sign(in.DX + o.DX), DY: sign(in.DY + o.DY)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
