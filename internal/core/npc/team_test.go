package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/markerpush/internal/core/events/bus"
	"github.com/zeusync/markerpush/internal/core/physics"
)

func collect(t *testing.T, eb bus.EventBus, topics ...string) *[]JobEvent {
	t.Helper()
	var got []JobEvent
	for _, topic := range topics {
		_, err := eb.Subscribe(topic, func(e bus.Event) error {
			got = append(got, e.Data().(JobEvent))
			return nil
		})
		require.NoError(t, err)
	}
	return &got
}

func TestTeamClaimsAreNotVisibleWithinTurn(t *testing.T) {
	rng := &seqRand{vals: []int{0, 0, 0}}
	team := NewTeam(3, NewGather(DefaultGatherConfig(), rng), nil, false)
	turn := testTurn(marker(40, 40, ColorBlue))

	forces, err := team.Step(turn)
	require.NoError(t, err)

	assert.Len(t, forces, 3)
	for i, task := range team.Tasks() {
		assert.True(t, task.Busy, "pusher %d", i)
		assert.Equal(t, 0, task.Marker)
	}
}

func TestTeamCommitImmediately(t *testing.T) {
	rng := &seqRand{vals: []int{0, 0, 0}}
	team := NewTeam(3, NewGather(DefaultGatherConfig(), rng), nil, true)
	turn := testTurn(marker(40, 40, ColorBlue))

	_, err := team.Step(turn)
	require.NoError(t, err)

	tasks := team.Tasks()
	assert.True(t, tasks[0].Busy)
	assert.False(t, tasks[1].Busy)
	assert.False(t, tasks[2].Busy)
}

func TestTeamRejectsAgainstPreviousTurn(t *testing.T) {
	rng := &seqRand{vals: []int{0, 1, 0}}
	eb := bus.New()
	got := collect(t, eb, JobTopics...)
	team := NewTeam(2, NewGather(DefaultGatherConfig(), rng), eb, false)
	turn := testTurn(marker(40, 40, ColorBlue), marker(60, 60, ColorBlue))

	_, err := team.Step(turn)
	require.NoError(t, err)
	// pusher 1 drops its job and re-picks next turn
	team.tasks[1] = Task{}
	turn.Number = 2
	_, err = team.Step(turn)
	require.NoError(t, err)

	require.Len(t, *got, 3)
	assert.Equal(t, JobClaimed, (*got)[0].Kind)
	assert.Equal(t, JobClaimed, (*got)[1].Kind)
	// turn 2: pusher 1 picks marker 0, held by pusher 0
	assert.Equal(t, JobRejected, (*got)[2].Kind)
	assert.Equal(t, 2, (*got)[2].Turn)
	assert.Equal(t, 1, (*got)[2].Pusher)
}

func TestTeamForcesFollowPusherOrder(t *testing.T) {
	cfg := DefaultGatherConfig()
	cfg.Home = physics.V2(30, 0)
	team := NewTeam(1, NewGather(cfg, &seqRand{vals: []int{0}}), nil, false)

	forces, err := team.Step(testTurn(marker(5, 0, ColorBlue)))
	require.NoError(t, err)

	require.Len(t, forces, 1)
	assert.InDelta(t, 2, forces[0].Xv, 1e-9)
}

func TestTeamShortPusherList(t *testing.T) {
	team := NewTeam(3, NewGather(DefaultGatherConfig(), &seqRand{}), nil, false)

	_, err := team.Step(&Turn{Pushers: make([]Pusher, 2)})
	assert.Error(t, err)
}

func TestTeamSurfacesHandlerErrors(t *testing.T) {
	eb := bus.New()
	_, err := eb.Subscribe(JobClaimed.Topic(), func(bus.Event) error { return assert.AnError })
	require.NoError(t, err)
	team := NewTeam(1, NewGather(DefaultGatherConfig(), &seqRand{}), eb, false)

	forces, err := team.Step(testTurn(marker(40, 40, ColorBlue)))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, forces, 1)
}
