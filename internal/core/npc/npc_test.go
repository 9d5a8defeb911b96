package npc

import (
	"github.com/zeusync/markerpush/internal/core/physics"
)

// seqRand replays a fixed sequence and records the bounds it was asked for.
type seqRand struct {
	vals  []int
	calls []int
}

func (s *seqRand) Intn(n int) int {
	s.calls = append(s.calls, n)
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

func testTurn(markers ...Marker) *Turn {
	return &Turn{
		Number: 1,
		Pushers: []Pusher{
			{Pos: physics.V2(0, 0)},
			{Pos: physics.V2(50, 50)},
			{Pos: physics.V2(90, 90)},
			{Pos: physics.V2(10, 90)},
			{Pos: physics.V2(90, 10)},
			{Pos: physics.V2(60, 40)},
		},
		Markers: markers,
	}
}

func marker(x, y float64, c Color) Marker {
	return Marker{Pos: physics.V2(x, y), Color: c}
}
