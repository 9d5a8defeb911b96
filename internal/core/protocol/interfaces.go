// Package protocol speaks the game engine's whitespace-separated text protocol.
//
// The engine first sends the static map (vertices, then region outlines), then one
// snapshot per turn: turn number, the two scores, region colours, every pusher and every
// marker. A negative turn number ends the game. After each snapshot the player answers
// with one "fx fy" pair per own pusher on a single line.
package protocol

import (
	"github.com/zeusync/markerpush/internal/core/npc"
	"github.com/zeusync/markerpush/internal/core/physics"
)

// Source yields the static map once and then one snapshot per turn.
type Source interface {
	ReadField() (*npc.Field, error)
	// ReadTurn returns the next snapshot. When the engine signals the end of the game the
	// returned turn reports Over and carries nothing else.
	ReadTurn() (*npc.Turn, error)
}

// Sink accepts the forces for one turn, in own pusher order.
type Sink interface {
	WriteForces(forces []physics.Vec2) error
}
