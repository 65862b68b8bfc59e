package tui

import "github.com/pthm-cable/werm/game"

// holdTicks is how long one key event keeps an axis pressed. Terminals only
// report presses and auto-repeat, never releases, so a held key is a stream
// of presses that each renew the hold.
const holdTicks = 18

// keyLatch turns key presses into held directions.
type keyLatch struct {
	dx, dy       int
	xLeft, yLeft int
}

func (k *keyLatch) pressX(d int) {
	k.dx, k.xLeft = d, holdTicks
}

func (k *keyLatch) pressY(d int) {
	k.dy, k.yLeft = d, holdTicks
}

// next returns the input for this tick and ages the holds.
func (k *keyLatch) next() game.Input {
	var in game.Input
	if k.xLeft > 0 {
		in.DX = k.dx
		k.xLeft--
	}
	if k.yLeft > 0 {
		in.DY = k.dy
		k.yLeft--
	}
	return in
}

func (k *keyLatch) clear() {
	*k = keyLatch{}
}
