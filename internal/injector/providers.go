package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/markerpush/internal/config"
	"github.com/zeusync/markerpush/internal/core/events/bus"
	"github.com/zeusync/markerpush/internal/core/npc"
	"github.com/zeusync/markerpush/internal/core/observability/log"
	"github.com/zeusync/markerpush/internal/match"
	"github.com/zeusync/markerpush/internal/telemetry"
)

// App is everything the pusher command needs for one match.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Runner  *match.Runner
	Hub     *telemetry.Hub
	Journal npc.Journal
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	npc.NewJournal,
	npc.DefaultRegistry,
	ProvideHub,
	ProvideRunner,
	wire.Struct(new(App), "*"),
)

// ProvideLogger builds the process logger at the configured level.
func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	l := log.New(level)
	return l, l.Sync, nil
}

func ProvideHub(logger log.Log) *telemetry.Hub {
	return telemetry.NewHub(logger.With(log.String("component", "telemetry")))
}

// ProvideRunner attaches the hub only when a telemetry address is configured.
func ProvideRunner(cfg *config.Config, logger log.Log, eb bus.EventBus, journal npc.Journal, registry *npc.Registry, hub *telemetry.Hub) *match.Runner {
	var opts []match.Option
	if cfg.Telemetry.Addr != "" {
		opts = append(opts, match.WithTelemetry(hub))
	}
	return match.NewRunner(cfg, logger, eb, journal, registry, opts...)
}
