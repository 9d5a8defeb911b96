package match

import (
	"math"

	"github.com/zeusync/markerpush/internal/config"
	"github.com/zeusync/markerpush/internal/core/npc"
	"github.com/zeusync/markerpush/internal/core/physics"
	"github.com/zeusync/markerpush/internal/core/steering"
)

// StrategyOptions translates configuration into strategy factory options.
func StrategyOptions(cfg *config.Config, field *npc.Field, rng npc.RandomSource) npc.Options {
	own := npc.Color(cfg.Game.OwnColor)
	limits := steering.Limits{Accel: cfg.Game.AccelLimit, Speed: cfg.Game.SpeedLimit}

	return npc.Options{
		Field: field,
		Rand:  rng,
		Gather: npc.GatherConfig{
			Limits: limits,
			Behind: steering.BehindOptions{
				Threshold:   cfg.Gather.BehindThreshold,
				MinStandoff: cfg.Gather.MinStandoff,
				MaxStandoff: cfg.Gather.MaxStandoff,
				CapForce:    cfg.Gather.CapManeuverForce,
			},
			RunTolerance: cfg.Gather.RunTolerance,
			JobTimeout:   cfg.Gather.JobTimeout,
			ArriveRadius: cfg.Gather.ArriveRadius,
			PushOffset:   cfg.Gather.PushOffset,
			FieldSize:    cfg.Game.FieldSize,
			MarkerRadius: cfg.Game.MarkerRadius,
			Home:         physics.V2(cfg.Game.Home.X, cfg.Game.Home.Y),
			OwnColor:     own,
		},
		Migrate: npc.MigrateConfig{
			Accel: limits.Accel,
			Orbit: steering.OrbitOptions{
				Threshold: cfg.Migrate.BehindThreshold,
				Radius:    cfg.Migrate.OrbitRadius,
				MaxStep:   cfg.Migrate.MaxStepDegrees * math.Pi / 180,
			},
			JobTimeout: cfg.Migrate.JobTimeout,
			PushOffset: cfg.Gather.PushOffset,
			OwnColor:   own,
		},
	}
}
