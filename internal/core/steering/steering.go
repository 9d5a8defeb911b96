// Package steering computes bounded force vectors for a pusher.
//
// Every function here is pure: it reads a pusher's position and velocity from the
// current snapshot and returns the force to emit this turn. The physics engine applies
// the force, caps the resulting speed and reports the next positions; nothing in this
// package predicts anything beyond the upcoming step.
package steering

// Limits are the per-turn bounds the engine imposes on a pusher.
type Limits struct {
	// Accel is the largest force magnitude a pusher may emit in one turn.
	Accel float64
	// Speed caps the pusher velocity after the force is applied.
	Speed float64
}

// DefaultLimits matches the standard game rules.
func DefaultLimits() Limits {
	return Limits{Accel: 2.0, Speed: 6.0}
}

// DefaultTolerance is how close the upcoming step must pass to a RunTo target to count as arrived.
const DefaultTolerance = 0.1
