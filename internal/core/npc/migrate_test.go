package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/markerpush/internal/core/physics"
)

func testField() *Field {
	return &Field{
		Vertices: []physics.Vec3{
			{Xv: 0, Yv: 0},
			{Xv: 50, Yv: 0},
			{Xv: 50, Yv: 50},
			{Xv: 100, Yv: 50},
		},
		Regions: [][]int{{0, 1, 2}, {1, 2, 3}},
	}
}

func TestBorderVertices(t *testing.T) {
	field := testField()

	tests := []struct {
		name   string
		colors []Color
		own    Color
		want   []int
	}{
		{name: "red against blue", colors: []Color{ColorRed, ColorBlue}, own: ColorRed, want: []int{1, 2}},
		{name: "blue against red", colors: []Color{ColorRed, ColorBlue}, own: ColorBlue, want: []int{1, 2}},
		{name: "all red", colors: []Color{ColorRed, ColorRed}, own: ColorRed, want: nil},
		{name: "no own region", colors: []Color{ColorGrey, ColorBlue}, own: ColorRed, want: nil},
		{name: "short colour list", colors: []Color{ColorRed}, own: ColorRed, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BorderVertices(field, tt.colors, tt.own))
		})
	}
	assert.Nil(t, BorderVertices(nil, nil, ColorRed))
}

func TestMigrateHandsOutEachVertexOnce(t *testing.T) {
	rng := &seqRand{vals: []int{1, 0}}
	m := NewMigrate(DefaultMigrateConfig(), testField(), rng)
	turn := testTurn(marker(40, 40, ColorRed), marker(60, 60, ColorRed))
	turn.RegionColors = []Color{ColorRed, ColorBlue}

	m.Begin(turn)
	first := m.Decide(0, Task{}, nil, turn)
	second := m.Decide(1, Task{}, nil, turn)

	assert.Equal(t, []int{2, 1}, rng.calls)
	assert.Equal(t, Task{Busy: true, Marker: 0, Destination: physics.V2(50, 50)}, first.Task)
	assert.Equal(t, Task{Busy: true, Marker: 1, Destination: physics.V2(50, 0)}, second.Task)
	assert.False(t, first.Force.IsZero())
}

func TestMigrateDropsConvertedMarker(t *testing.T) {
	m := NewMigrate(DefaultMigrateConfig(), testField(), &seqRand{})
	turn := testTurn(marker(40, 40, ColorBlue))
	turn.RegionColors = []Color{ColorRed, ColorBlue}
	m.Begin(turn)

	d := m.Decide(0, Task{Busy: true, Marker: 0, Destination: physics.V2(50, 50)}, nil, turn)

	assert.False(t, d.Task.Busy)
	assert.Equal(t, physics.Zero2, d.Force)
	require.Len(t, d.Events, 1)
	assert.Equal(t, JobLost, d.Events[0].Kind)
}

func TestMigrateTimesOut(t *testing.T) {
	m := NewMigrate(DefaultMigrateConfig(), testField(), &seqRand{})
	turn := testTurn(marker(40, 40, ColorRed))
	// all red, so nothing to re-claim
	turn.RegionColors = []Color{ColorRed, ColorRed}
	m.Begin(turn)

	d := m.Decide(0, Task{Busy: true, JobTime: 59, Marker: 0, Destination: physics.V2(50, 50)}, nil, turn)

	assert.False(t, d.Task.Busy)
	assert.Equal(t, 60, d.Task.JobTime)
	require.Len(t, d.Events, 1)
	assert.Equal(t, JobTimedOut, d.Events[0].Kind)
}

func TestMigrateReclaimResetsJobTime(t *testing.T) {
	m := NewMigrate(DefaultMigrateConfig(), testField(), &seqRand{vals: []int{0}})
	turn := testTurn(marker(40, 40, ColorRed))
	turn.RegionColors = []Color{ColorRed, ColorBlue}
	m.Begin(turn)

	d := m.Decide(0, Task{Busy: true, JobTime: 59, Marker: 0, Destination: physics.V2(0, 0)}, nil, turn)

	assert.True(t, d.Task.Busy)
	assert.Equal(t, 0, d.Task.JobTime)
	assert.Equal(t, physics.V2(50, 0), d.Task.Destination)
}

func TestMigrateWithoutOwnMarker(t *testing.T) {
	m := NewMigrate(DefaultMigrateConfig(), testField(), &seqRand{})
	turn := testTurn()
	m.Begin(turn)

	d := m.Decide(0, Task{}, nil, turn)

	assert.Equal(t, Decision{}, d)
}
