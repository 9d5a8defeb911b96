package npc

import (
	"fmt"

	"github.com/zeusync/markerpush/internal/core/events/bus"
	"github.com/zeusync/markerpush/internal/core/physics"
)

// EventSource is the Source of every event a Team publishes.
const EventSource = "team"

// Team owns the tasks of our pushers across turns and runs a Strategy over them.
type Team struct {
	size              int
	strategy          Strategy
	events            bus.EventBus
	commitImmediately bool
	tasks             []Task
}

// NewTeam creates a team of size idle pushers. events may be nil.
//
// With commitImmediately set, a pusher deciding later in a turn sees the tasks its
// teammates claimed earlier in the same turn; otherwise only last turn's tasks are visible.
func NewTeam(size int, strategy Strategy, events bus.EventBus, commitImmediately bool) *Team {
	return &Team{
		size:              size,
		strategy:          strategy,
		events:            events,
		commitImmediately: commitImmediately,
		tasks:             make([]Task, size),
	}
}

// Step runs one turn and returns one force per own pusher, in pusher order.
func (t *Team) Step(turn *Turn) ([]physics.Vec2, error) {
	if len(turn.Pushers) < t.size {
		return nil, fmt.Errorf("turn %d: got %d pushers, want at least %d", turn.Number, len(turn.Pushers), t.size)
	}

	t.strategy.Begin(turn)

	committed := make([]Task, t.size)
	copy(committed, t.tasks)

	forces := make([]physics.Vec2, t.size)
	var published []bus.Event
	for i := 0; i < t.size; i++ {
		d := t.strategy.Decide(i, t.tasks[i], committed, turn)
		t.tasks[i] = d.Task
		if t.commitImmediately {
			committed[i] = d.Task
		}
		forces[i] = d.Force
		for _, ev := range d.Events {
			ev.Turn = turn.Number
			published = append(published, bus.NewEvent(ev.Kind.Topic(), EventSource, ev))
		}
	}

	if t.events != nil && len(published) > 0 {
		if err := t.events.PublishBatch(published...); err != nil {
			return forces, fmt.Errorf("turn %d: publish job events: %w", turn.Number, err)
		}
	}
	return forces, nil
}

// Tasks returns a copy of the current tasks.
func (t *Team) Tasks() []Task {
	out := make([]Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

func (t *Team) Strategy() Strategy { return t.strategy }
