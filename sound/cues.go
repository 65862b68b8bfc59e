package sound

import (
	"github.com/pthm-cable/werm/game"
	"github.com/pthm-cable/werm/telemetry"
)

// CuesFor maps one tick's outcome to the cues it should trigger. A tick
// that ends the game plays only the game-over cue.
func CuesFor(res game.TickResult, cause telemetry.Cause) []Cue {
	if res.GameOver {
		if cause == telemetry.CauseExhausted {
			return []Cue{CueExhausted}
		}
		return []Cue{CueCaught}
	}
	var cues []Cue
	if res.WaterCollected > 0 {
		cues = append(cues, CueSip)
	}
	if res.Activated > 0 {
		cues = append(cues, CueSurface)
	}
	return cues
}

// PlayTick plays every cue for a tick's outcome.
func (p *Player) PlayTick(res game.TickResult, cause telemetry.Cause) {
	for _, c := range CuesFor(res, cause) {
		p.Play(c)
	}
}
