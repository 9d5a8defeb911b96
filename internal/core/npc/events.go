package npc

import "github.com/zeusync/markerpush/internal/core/physics"

// JobEventKind labels a task transition.
type JobEventKind int

const (
	JobClaimed JobEventKind = iota
	JobCompleted
	JobTimedOut
	// JobLost means the tracked marker vanished from the snapshot or changed colour.
	JobLost
	// JobRejected means the randomly picked marker was already a teammate's job.
	JobRejected
)

func (k JobEventKind) String() string {
	switch k {
	case JobClaimed:
		return "claimed"
	case JobCompleted:
		return "completed"
	case JobTimedOut:
		return "timed_out"
	case JobLost:
		return "lost"
	case JobRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Topic is the bus event type a JobEvent of this kind is published under.
func (k JobEventKind) Topic() string { return "job." + k.String() }

// Finished reports whether the kind ends a job.
func (k JobEventKind) Finished() bool {
	return k == JobCompleted || k == JobTimedOut || k == JobLost
}

// JobTopics lists every job event type.
var JobTopics = []string{
	JobClaimed.Topic(),
	JobCompleted.Topic(),
	JobTimedOut.Topic(),
	JobLost.Topic(),
	JobRejected.Topic(),
}

// JobEvent is the payload of every job.* bus event.
type JobEvent struct {
	Kind        JobEventKind
	Turn        int
	Pusher      int
	Marker      int
	Destination physics.Vec2
	JobTime     int
}
