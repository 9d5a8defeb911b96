package steering

import "github.com/zeusync/markerpush/internal/core/physics"

// BehindOptions tune GetBehind.
type BehindOptions struct {
	// Threshold is the minimum dot product between marker->destination and
	// pusher->marker at which the pusher counts as behind the marker.
	Threshold float64
	// MinStandoff and MaxStandoff bound the preferred orbit distance.
	MinStandoff float64
	MaxStandoff float64
	// CapForce limits the combined orbit and radial force to the acceleration limit.
	// When false the radial correction is added on top of a full orbit force.
	CapForce bool
}

func DefaultBehindOptions() BehindOptions {
	return BehindOptions{Threshold: 0.7, MinStandoff: 6, MaxStandoff: 8}
}

// GetBehind steers a pusher around a marker until it sits on the side opposite
// destination, so a straight run through the marker pushes it toward destination.
//
// inPosition is true when the pusher is already behind the marker; the returned force
// is then zero and the caller is expected to start the push. Otherwise the force orbits
// the marker at full acceleration, turning clockwise when
// cross(pusher->marker, marker->destination) >= 0 and counter-clockwise when it is
// negative, plus a radial term that keeps the pusher inside the standoff band.
//
// Near a zero cross product the orbit direction can flip from one turn to the next.
func GetBehind(pos, vel, marker, destination physics.Vec2, accel float64, opts BehindOptions) (force physics.Vec2, inPosition bool) {
	toDest := destination.Sub(marker)
	toMarker := marker.Sub(pos)
	if toDest.IsZero() || toMarker.IsZero() {
		return physics.Zero2, false
	}
	mToT := toDest.Norm()
	pToM := toMarker.Norm()

	if mToT.Dot(pToM) > opts.Threshold {
		return physics.Zero2, true
	}

	if pToM.Cross(mToT) >= 0 {
		force = pToM.Perp().Scale(-accel)
	} else {
		force = pToM.Perp().Scale(accel)
	}

	force = force.Add(radialCorrection(vel, pToM, toMarker.Mag(), opts))
	if opts.CapForce {
		force = force.Limit(accel)
	}
	return force, false
}

// radialCorrection pulls the pusher in when it is beyond the band, pushes it out when
// inside, and cancels radial velocity when it is within the band.
func radialCorrection(vel, pToM physics.Vec2, dist float64, opts BehindOptions) physics.Vec2 {
	switch {
	case dist > opts.MaxStandoff:
		return pToM.Scale(dist - opts.MaxStandoff)
	case dist < opts.MinStandoff:
		return pToM.Scale(-(opts.MinStandoff - dist))
	default:
		return pToM.Scale(-vel.Dot(pToM))
	}
}
