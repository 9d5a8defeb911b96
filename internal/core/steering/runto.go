package steering

import "github.com/zeusync/markerpush/internal/core/physics"

// RunTo computes a force that drives a pusher at pos, moving with vel, through target.
//
// The component of vel perpendicular to the line toward target is cancelled first,
// using up to the whole acceleration budget; whatever budget is left accelerates
// straight at target. arrived reports whether the next step, with its velocity capped
// at lim.Speed, passes within tolerance of target. Only the segment covered by that one
// step is checked.
//
// A pusher already sitting on target gets a zero force and arrived = true.
func RunTo(pos, vel, target physics.Vec2, lim Limits, tolerance float64) (force physics.Vec2, arrived bool) {
	toTarget := target.Sub(pos)
	if toTarget.IsZero() {
		return physics.Zero2, true
	}
	direction := toTarget.Norm()

	perp := direction.Perp()
	force = perp.Scale(-perp.Dot(vel)).Limit(lim.Accel)

	residual := lim.Accel - force.Mag()
	force = force.Add(direction.Scale(residual))

	nvel := vel.Add(force).Limit(lim.Speed)
	return force, closestApproach(pos, nvel, target) < tolerance
}

// closestApproach returns the distance between target and the nearest point of the
// segment pos -> pos+step.
func closestApproach(pos, step, target physics.Vec2) float64 {
	t := 0.0
	if sq := step.SquaredMag(); sq > 0 {
		t = physics.Clamp(target.Sub(pos).Dot(step)/sq, 0, 1)
	}
	return pos.Add(step.Scale(t)).DistanceTo(target)
}
