package npc

import (
	"github.com/zeusync/markerpush/internal/core/physics"
	"github.com/zeusync/markerpush/internal/core/steering"
)

// MigrateConfig tunes the migrate strategy.
type MigrateConfig struct {
	Accel      float64
	Orbit      steering.OrbitOptions
	JobTimeout int
	PushOffset float64
	OwnColor   Color
}

func DefaultMigrateConfig() MigrateConfig {
	return MigrateConfig{
		Accel:      steering.DefaultLimits().Accel,
		Orbit:      steering.DefaultOrbitOptions(),
		JobTimeout: 60,
		PushOffset: 1,
		OwnColor:   ColorRed,
	}
}

// Migrate gives pusher i the marker with index i and keeps moving it, while it stays our
// colour, onto map vertices on the border between our regions and anybody else's.
type Migrate struct {
	cfg        MigrateConfig
	field      *Field
	rng        RandomSource
	candidates []int
}

func NewMigrate(cfg MigrateConfig, field *Field, rng RandomSource) *Migrate {
	return &Migrate{cfg: cfg, field: field, rng: rng}
}

func (m *Migrate) Name() string { return "migrate" }

// Begin refreshes the pool of border vertices. Each vertex is handed out at most once per turn.
func (m *Migrate) Begin(turn *Turn) {
	m.candidates = BorderVertices(m.field, turn.RegionColors, m.cfg.OwnColor)
}

func (m *Migrate) Decide(idx int, task Task, _ []Task, turn *Turn) Decision {
	var events []JobEvent

	if task.Busy {
		task.JobTime++
		if task.JobTime >= m.cfg.JobTimeout {
			task.Busy = false
			events = append(events, JobEvent{Kind: JobTimedOut, Pusher: idx, Marker: task.Marker, Destination: task.Destination, JobTime: task.JobTime})
		}
	}

	if idx >= len(turn.Markers) || idx >= len(turn.Pushers) {
		if task.Busy {
			task.Busy = false
			events = append(events, JobEvent{Kind: JobLost, Pusher: idx, Marker: task.Marker, Destination: task.Destination, JobTime: task.JobTime})
		}
		return Decision{Task: task, Events: events}
	}
	marker := turn.Markers[idx]

	if marker.Color != m.cfg.OwnColor {
		if task.Busy {
			task.Busy = false
			events = append(events, JobEvent{Kind: JobLost, Pusher: idx, Marker: task.Marker, Destination: task.Destination, JobTime: task.JobTime})
		}
		return Decision{Task: task, Events: events}
	}

	if !task.Busy && len(m.candidates) > 0 {
		choice := m.rng.Intn(len(m.candidates))
		vertex := m.candidates[choice]
		m.candidates = append(m.candidates[:choice], m.candidates[choice+1:]...)
		task = Task{Busy: true, Marker: idx, Destination: m.field.Vertices[vertex].Flat()}
		events = append(events, JobEvent{Kind: JobClaimed, Pusher: idx, Marker: idx, Destination: task.Destination})
	}

	force := physics.Zero2
	if task.Busy {
		p := turn.Pushers[idx]
		var behind bool
		force, behind = steering.MoveAround(p.Pos, p.Vel, marker.Pos, task.Destination, m.cfg.Accel, m.cfg.Orbit)
		if behind {
			target := marker.Pos.Sub(task.Destination.Sub(marker.Pos).Norm().Scale(m.cfg.PushOffset))
			force = steering.MoveTo(p.Pos, p.Vel, target, m.cfg.Accel)
		}
	}
	return Decision{Task: task, Force: force, Events: events}
}

// BorderVertices returns, in index order, the vertices incident on at least one region of
// colour own and at least one region of another colour.
func BorderVertices(field *Field, regionColors []Color, own Color) []int {
	if field == nil {
		return nil
	}
	masks := make([]int, len(field.Vertices))
	for i, region := range field.Regions {
		if i >= len(regionColors) {
			break
		}
		bit := 1 << uint(regionColors[i])
		for _, v := range region {
			if v >= 0 && v < len(masks) {
				masks[v] |= bit
			}
		}
	}

	ownBit := 1 << uint(own)
	var out []int
	for v, mask := range masks {
		if mask&ownBit != 0 && mask != ownBit {
			out = append(out, v)
		}
	}
	return out
}
