package steering

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/markerpush/internal/core/physics"
)

func TestMoveToStopsOnTarget(t *testing.T) {
	lim := DefaultLimits()
	tests := []struct {
		name   string
		pos    physics.Vec2
		vel    physics.Vec2
		target physics.Vec2
	}{
		{name: "from rest", pos: physics.V2(0, 0), target: physics.V2(30, 0)},
		{name: "with drift", pos: physics.V2(0, 0), vel: physics.V2(0, 3), target: physics.V2(20, 15)},
		{name: "moving away", pos: physics.V2(50, 50), vel: physics.V2(-4, 2), target: physics.V2(10, 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			for tick := 0; tick < 30; tick++ {
				force := MoveTo(pos, vel, tt.target, lim.Accel)
				require.LessOrEqual(t, force.Mag(), lim.Accel+eps)
				vel = vel.Add(force).Limit(lim.Speed)
				pos = pos.Add(vel)
			}
			assert.InDelta(t, 0, pos.DistanceTo(tt.target), 0.01)
			assert.InDelta(t, 0, vel.Mag(), 0.01)
		})
	}
}

func TestMoveToAtRestOnTarget(t *testing.T) {
	assert.Equal(t, physics.Zero2, MoveTo(physics.V2(4, 4), physics.V2(0, 0), physics.V2(4, 4), 2))
}

func TestMoveToForceWithinAccelLimit(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		force := MoveTo(randVec(r, 100), randVec(r, 8), randVec(r, 100), 2)
		require.LessOrEqual(t, force.Mag(), 2+eps)
	}
}

func TestMoveAround(t *testing.T) {
	opts := DefaultOrbitOptions()
	marker := physics.V2(5, 0)
	dest := physics.V2(10, 0)

	force, in := MoveAround(physics.V2(0, 0), physics.V2(0, 0), marker, dest, 2, opts)
	assert.True(t, in)
	assert.Equal(t, physics.Zero2, force)

	// above the marker: the waypoint rotates toward the back side (-x)
	force, in = MoveAround(physics.V2(5, 5), physics.V2(0, 0), marker, dest, 2, opts)
	assert.False(t, in)
	assert.Less(t, force.Xv, 0.0)
	assert.LessOrEqual(t, force.Mag(), 2+eps)

	// below the marker: same, mirrored
	force, in = MoveAround(physics.V2(5, -5), physics.V2(0, 0), marker, dest, 2, opts)
	assert.False(t, in)
	assert.Less(t, force.Xv, 0.0)
}
