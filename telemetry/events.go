// Package telemetry provides survival tracking, window statistics and CSV output.
package telemetry

// TickSample is what one simulation tick contributes to telemetry.
type TickSample struct {
	Tick           int64
	Moved          bool
	Stamina        float64
	ActiveWorms    int
	NearestWorm    float64 // distance to the closest active worm; 0 when none
	WatersTaken    int
	InVillage      bool
	Activations    int
	Deactivations  int
	SpawnFallbacks int
	Collided       bool
}

// Cause identifies why a session ended.
type Cause string

const (
	CauseNone      Cause = ""
	CauseExhausted Cause = "exhausted" // stamina reached zero
	CauseCaught    Cause = "caught"    // a worm touched the player
	CauseAbandoned Cause = "abandoned" // reset before game over
)
