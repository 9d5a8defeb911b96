package steering

import (
	"math"

	"github.com/zeusync/markerpush/internal/core/physics"
)

const (
	arriveEpsilon = 0.01
	frameEpsilon  = 0.0001
)

// MoveTo computes a force that brings a pusher to rest at target.
//
// Velocity perpendicular to the target direction is cancelled first (clamped to accel).
// The remaining budget sqrt(accel^2 - f_perp^2) follows a triangular accelerate-then-brake
// profile along the target axis, planned for the fewest steps that can still stop on target.
func MoveTo(pos, vel, target physics.Vec2, accel float64) physics.Vec2 {
	a1, a2 := physics.V2(1, 0), physics.V2(0, 1)
	dist := pos.DistanceTo(target)
	if dist >= frameEpsilon {
		a1 = target.Sub(pos).Scale(1 / dist)
		a2 = a1.Perp()
	}

	v1 := a1.Dot(vel)
	v2 := a2.Dot(vel)

	f2 := physics.Clamp(-v2, -accel, accel)
	f1 := 0.0
	if math.Abs(f2) < accel {
		raccel := math.Sqrt(accel*accel - f2*f2)
		f1 = axisAccel(-dist, v1, 0, raccel)
	}

	return a1.Scale(f1).Add(a2.Scale(f2))
}

// axisAccel is the one dimensional planner behind MoveTo.
func axisAccel(pos, vel, target, alim float64) float64 {
	dist := target - pos
	if math.Abs(dist) < arriveEpsilon {
		return physics.Clamp(-vel, -alim, alim)
	}

	steps := math.Ceil((-1 + math.Sqrt(1+8.0*math.Abs(dist)/alim)) / 2.0)
	if steps < 1 {
		steps = 1
	}

	// constant acceleration that covers dist in steps, and the speed it implies now
	a := 2 * dist / ((steps + 1) * steps)
	ideal := a * steps

	return physics.Clamp(ideal-vel, -alim, alim)
}

// OrbitOptions tune MoveAround.
type OrbitOptions struct {
	// Threshold is the dot product between marker->destination and marker->pusher
	// below which the pusher counts as behind the marker.
	Threshold float64
	// Radius of the waypoint circle around the marker.
	Radius float64
	// MaxStep is the largest angle, in radians, the waypoint advances per turn.
	MaxStep float64
}

func DefaultOrbitOptions() OrbitOptions {
	return OrbitOptions{Threshold: -0.8, Radius: 4, MaxStep: math.Pi / 4}
}

// MoveAround walks a pusher around a marker, a bounded angle per turn, toward the side
// opposite destination. It reports inPosition with a zero force once the pusher is there;
// otherwise the force is a MoveTo toward the next waypoint on the orbit.
func MoveAround(pos, vel, marker, destination physics.Vec2, accel float64, opts OrbitOptions) (force physics.Vec2, inPosition bool) {
	toDest := destination.Sub(marker)
	toPusher := pos.Sub(marker)
	if toDest.IsZero() || toPusher.IsZero() {
		return physics.Zero2, false
	}
	mToT := toDest.Norm()
	mToP := toPusher.Norm()

	dot := physics.Clamp(mToT.Dot(mToP), -1, 1)
	if dot < opts.Threshold {
		return physics.Zero2, true
	}

	angle := math.Acos(dot)
	if angle > opts.MaxStep {
		angle = opts.MaxStep
	}
	if mToT.Cross(mToP) <= 0 {
		angle = -angle
	}

	waypoint := marker.Add(mToP.Rotate(angle).Scale(opts.Radius))
	return MoveTo(pos, vel, waypoint, accel), false
}
