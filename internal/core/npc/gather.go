package npc

import (
	"github.com/zeusync/markerpush/internal/core/physics"
	"github.com/zeusync/markerpush/internal/core/steering"
)

// GatherConfig tunes the gather strategy.
type GatherConfig struct {
	Limits       steering.Limits
	Behind       steering.BehindOptions
	RunTolerance float64
	// JobTimeout is the number of turns after which a job is abandoned.
	JobTimeout int
	// ArriveRadius is how close the marker must get to its destination to finish the job.
	ArriveRadius float64
	// PushOffset is how far behind the marker the pusher aims its run.
	PushOffset   float64
	FieldSize    float64
	MarkerRadius float64
	Home         physics.Vec2
	OwnColor     Color
}

func DefaultGatherConfig() GatherConfig {
	return GatherConfig{
		Limits:       steering.DefaultLimits(),
		Behind:       steering.DefaultBehindOptions(),
		RunTolerance: steering.DefaultTolerance,
		JobTimeout:   35,
		ArriveRadius: 5,
		PushOffset:   1,
		FieldSize:    100,
		MarkerRadius: 2,
		Home:         physics.V2(10, 10),
		OwnColor:     ColorRed,
	}
}

// Gather hands every idle pusher a random marker. Markers of another colour are pushed
// home to be converted; own-colour markers are pushed to a random spot on the field.
type Gather struct {
	cfg GatherConfig
	rng RandomSource
}

func NewGather(cfg GatherConfig, rng RandomSource) *Gather {
	return &Gather{cfg: cfg, rng: rng}
}

func (g *Gather) Name() string { return "gather" }

func (g *Gather) Begin(*Turn) {}

// Decide advances one pusher's task by one turn.
//
// A busy task first ages by one turn and is dropped when it reaches the timeout or when its
// marker is within ArriveRadius of the destination. An idle task then draws a random
// marker and claims it unless a teammate in committed is already busy with it. A busy
// pusher orbits behind its marker and, once there, runs through the point just behind it.
func (g *Gather) Decide(idx int, task Task, committed []Task, turn *Turn) Decision {
	var events []JobEvent

	if task.Busy {
		task.JobTime++
		switch {
		case task.Marker < 0 || task.Marker >= len(turn.Markers):
			task.Busy = false
			events = append(events, g.event(JobLost, idx, task))
		case turn.Markers[task.Marker].Pos.DistanceTo(task.Destination) < g.cfg.ArriveRadius:
			task.Busy = false
			events = append(events, g.event(JobCompleted, idx, task))
		case task.JobTime >= g.cfg.JobTimeout:
			task.Busy = false
			events = append(events, g.event(JobTimedOut, idx, task))
		}
	}

	if !task.Busy && len(turn.Markers) > 0 {
		mdex := g.rng.Intn(len(turn.Markers))
		if claimedByTeammate(idx, mdex, committed) {
			events = append(events, JobEvent{Kind: JobRejected, Pusher: idx, Marker: mdex})
		} else {
			task = Task{Busy: true, Marker: mdex, Destination: g.destinationFor(turn.Markers[mdex])}
			events = append(events, g.event(JobClaimed, idx, task))
		}
	}

	force := physics.Zero2
	if task.Busy && idx < len(turn.Pushers) {
		force = g.push(turn.Pushers[idx], turn.Markers[task.Marker], task.Destination)
	}
	return Decision{Task: task, Force: force, Events: events}
}

func (g *Gather) destinationFor(m Marker) physics.Vec2 {
	if m.Color == g.cfg.OwnColor {
		return g.randomFieldPosition()
	}
	return g.cfg.Home
}

// randomFieldPosition picks a whole-unit spot at least one marker radius from every edge.
func (g *Gather) randomFieldPosition() physics.Vec2 {
	span := int(g.cfg.FieldSize-g.cfg.MarkerRadius*2) + 1
	return physics.V2(
		g.cfg.MarkerRadius+float64(g.rng.Intn(span)),
		g.cfg.MarkerRadius+float64(g.rng.Intn(span)),
	)
}

func (g *Gather) push(p Pusher, m Marker, dest physics.Vec2) physics.Vec2 {
	force, behind := steering.GetBehind(p.Pos, p.Vel, m.Pos, dest, g.cfg.Limits.Accel, g.cfg.Behind)
	if !behind {
		return force
	}
	target := m.Pos.Sub(dest.Sub(m.Pos).Norm().Scale(g.cfg.PushOffset))
	force, _ = steering.RunTo(p.Pos, p.Vel, target, g.cfg.Limits, g.cfg.RunTolerance)
	return force
}

func (g *Gather) event(kind JobEventKind, idx int, task Task) JobEvent {
	return JobEvent{Kind: kind, Pusher: idx, Marker: task.Marker, Destination: task.Destination, JobTime: task.JobTime}
}

func claimedByTeammate(idx, mdex int, committed []Task) bool {
	for j, t := range committed {
		if j != idx && t.Busy && t.Marker == mdex {
			return true
		}
	}
	return false
}
