package telemetry

import (
	"github.com/zeusync/markerpush/internal/core/npc"
	"github.com/zeusync/markerpush/internal/core/physics"
)

// Frame is the JSON document broadcast to spectators after every turn.
type Frame struct {
	Turn     int    `json:"turn"`
	Strategy string `json:"strategy"`
	// Scores is (own, other).
	Scores  [2]int        `json:"scores"`
	AtHome  int           `json:"markers_at_home"`
	Pushers []PusherFrame `json:"pushers"`
}

type PusherFrame struct {
	Busy        bool       `json:"busy"`
	JobTime     int        `json:"job_time"`
	Marker      int        `json:"marker"`
	Destination [2]float64 `json:"destination"`
	Force       [2]float64 `json:"force"`
}

// NewFrame builds a frame from the tasks and forces a team produced for turn.
// scores must already be ordered (own, other).
func NewFrame(strategy string, turn *npc.Turn, scores [2]int, tasks []npc.Task, forces []physics.Vec2, atHome int) Frame {
	f := Frame{
		Turn:     turn.Number,
		Strategy: strategy,
		Scores:   scores,
		AtHome:   atHome,
		Pushers:  make([]PusherFrame, len(tasks)),
	}
	for i, t := range tasks {
		pf := PusherFrame{Busy: t.Busy, JobTime: t.JobTime, Marker: -1}
		if t.Busy {
			pf.Marker = t.Marker
			pf.Destination = [2]float64{t.Destination.Xv, t.Destination.Yv}
		}
		if i < len(forces) {
			pf.Force = [2]float64{forces[i].Xv, forces[i].Yv}
		}
		f.Pushers[i] = pf
	}
	return f
}
