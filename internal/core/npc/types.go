package npc

import (
	"github.com/zeusync/markerpush/internal/core/physics"
)

// Color tags a marker (and a region) with its owner. The agent always plays as ColorRed
// unless configured otherwise.
type Color int

const (
	ColorRed Color = iota
	ColorBlue
	ColorGrey
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGrey:
		return "grey"
	default:
		return "unknown"
	}
}

// Pusher is a controlled body as reported by the latest snapshot.
type Pusher struct {
	Pos physics.Vec2
	Vel physics.Vec2
}

// Marker is a body the pushers move around; its colour changes when the engine converts it.
type Marker struct {
	Pos   physics.Vec2
	Vel   physics.Vec2
	Color Color
}

// AtHome reports whether an own-colour marker touches the home square in the field corner.
func (m Marker) AtHome(own Color, homeSize, markerRadius float64) bool {
	return m.Color == own &&
		m.Pos.Xv < homeSize+markerRadius &&
		m.Pos.Yv < homeSize+markerRadius
}

// Field is the static board read once at startup.
type Field struct {
	Vertices []physics.Vec3
	// Regions lists, for each region, the indices of its outline vertices.
	Regions [][]int
}

// Turn is one snapshot from the engine. It is replaced wholesale every turn.
//
// Marker indices are not guaranteed to be stable between turns; a task's Marker index
// is only meaningful against the Turn it is evaluated with.
type Turn struct {
	Number       int
	Scores       [2]int
	RegionColors []Color
	// Pushers holds both sides, own side first.
	Pushers []Pusher
	Markers []Marker
}

// Over reports whether the turn is the end-of-game sentinel.
func (t *Turn) Over() bool { return t.Number < 0 }

// Task is the job state a pusher carries from one turn to the next.
type Task struct {
	Busy bool
	// JobTime counts turns spent on the current job.
	JobTime     int
	Marker      int
	Destination physics.Vec2
}

// Decision is what a strategy returns for one pusher in one turn.
type Decision struct {
	Task   Task
	Force  physics.Vec2
	Events []JobEvent
}
