// Package match drives one game: it reads snapshots from the engine, lets the team decide,
// and writes the forces back until the engine ends the game.
package match

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/zeusync/markerpush/internal/config"
	"github.com/zeusync/markerpush/internal/core/events/bus"
	"github.com/zeusync/markerpush/internal/core/npc"
	"github.com/zeusync/markerpush/internal/core/observability/log"
	"github.com/zeusync/markerpush/internal/core/physics"
	"github.com/zeusync/markerpush/internal/core/protocol"
	"github.com/zeusync/markerpush/internal/telemetry"
)

// Result summarises a finished match.
type Result struct {
	MatchID string
	Turns   int
	Scores  [2]int
	Jobs    npc.Summary
}

type Runner struct {
	cfg      *config.Config
	log      log.Log
	events   bus.EventBus
	journal  npc.Journal
	registry *npc.Registry
	rng      npc.RandomSource
	hub      *telemetry.Hub
}

type Option func(*Runner)

// WithRand replaces the seeded random source built from the configuration.
func WithRand(rng npc.RandomSource) Option { return func(r *Runner) { r.rng = rng } }

// WithTelemetry broadcasts a frame to hub after every turn.
func WithTelemetry(hub *telemetry.Hub) Option { return func(r *Runner) { r.hub = hub } }

// NewRunner builds a runner. Nil collaborators are replaced with defaults.
func NewRunner(cfg *config.Config, logger log.Log, eb bus.EventBus, journal npc.Journal, registry *npc.Registry, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Nop()
	}
	if eb == nil {
		eb = bus.New()
	}
	if journal == nil {
		journal = npc.NewJournal()
	}
	if registry == nil {
		registry = npc.DefaultRegistry()
	}
	r := &Runner{cfg: cfg, log: logger, events: eb, journal: journal, registry: registry}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = npc.NewRandomSource(npc.SeedFromString(cfg.Seed))
	}
	return r
}

func (r *Runner) Journal() npc.Journal { return r.journal }

// Run plays a match to the end-of-game sentinel. Cancelling ctx stops the loop between turns.
func (r *Runner) Run(ctx context.Context, src protocol.Source, sink protocol.Sink) (Result, error) {
	res := Result{MatchID: uuid.NewString()}
	logger := r.log.With(log.String("match", res.MatchID), log.String("strategy", r.cfg.Strategy))

	field, err := src.ReadField()
	if err != nil {
		return res, errors.Wrap(err, "read field")
	}
	strategy, err := r.registry.New(r.cfg.Strategy, StrategyOptions(r.cfg, field, r.rng))
	if err != nil {
		return res, errors.Wrap(err, "build strategy")
	}
	team := npc.NewTeam(r.cfg.Game.PushersPerSide, strategy, r.events, r.cfg.Gather.CommitClaimsImmediately)

	subs, err := r.subscribe(logger)
	if err != nil {
		return res, err
	}
	defer func() {
		for _, s := range subs {
			_ = r.events.Unsubscribe(s)
		}
	}()

	logger.Info("match started",
		log.Int("vertices", len(field.Vertices)),
		log.Int("regions", len(field.Regions)),
		log.Int("pushers", r.cfg.Game.PushersPerSide))

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		turn, err := src.ReadTurn()
		if err != nil {
			return res, errors.Wrapf(err, "after turn %d", res.Turns)
		}
		if turn.Over() {
			break
		}

		forces, err := team.Step(turn)
		if forces == nil {
			return res, errors.Wrap(err, "decide")
		}
		if err != nil {
			logger.Warn("job event handler failed", log.Int("turn", turn.Number), log.Error(err))
		}
		if err := sink.WriteForces(forces); err != nil {
			return res, err
		}

		r.observe(logger, &res, turn, team, forces)
		res.Turns++
	}

	res.Jobs = r.journal.Summary()
	logger.Info("match finished",
		log.Int("turns", res.Turns),
		log.Int("score_own", res.Scores[0]),
		log.Int("score_other", res.Scores[1]),
		log.Int("jobs_completed", res.Jobs.Completed),
		log.Int("jobs_timed_out", res.Jobs.TimedOut),
		log.Int("jobs_lost", res.Jobs.Lost),
		log.Int("picks_rejected", res.Jobs.Rejected))

	if path := r.cfg.Journal.Path; path != "" {
		if err := r.saveJournal(path); err != nil {
			return res, err
		}
		logger.Info("journal written", log.String("path", path))
	}
	return res, nil
}

// observe logs score changes and feeds the spectator hub.
func (r *Runner) observe(logger log.Log, res *Result, turn *npc.Turn, team *npc.Team, forces []physics.Vec2) {
	own := npc.Color(r.cfg.Game.OwnColor)
	scores := ownScores(turn.Scores, own)
	if scores != res.Scores {
		logger.Info("score changed",
			log.Int("turn", turn.Number),
			log.Int("own", scores[0]),
			log.Int("other", scores[1]),
			log.Int("own_delta", scores[0]-res.Scores[0]),
			log.Int("other_delta", scores[1]-res.Scores[1]))
		res.Scores = scores
	}

	atHome := 0
	for _, m := range turn.Markers {
		if m.AtHome(own, r.cfg.Game.HomeSize, r.cfg.Game.MarkerRadius) {
			atHome++
		}
	}
	logger.Debug("turn decided", log.Int("turn", turn.Number), log.Int("markers", len(turn.Markers)), log.Int("at_home", atHome))

	if r.hub != nil {
		frame := telemetry.NewFrame(team.Strategy().Name(), turn, scores, team.Tasks(), forces, atHome)
		if err := r.hub.Broadcast(frame); err != nil {
			logger.Warn("telemetry broadcast failed", log.Error(err))
		}
	}
}

// ownScores reorders the engine's (red, blue) scores as (own, other).
func ownScores(scores [2]int, own npc.Color) [2]int {
	if own == npc.ColorBlue {
		scores[0], scores[1] = scores[1], scores[0]
	}
	return scores
}

func (r *Runner) subscribe(logger log.Log) ([]bus.Subscription, error) {
	subs, err := npc.RecordJobs(r.events, r.journal)
	if err != nil {
		return nil, errors.Wrap(err, "subscribe journal")
	}
	for _, topic := range npc.JobTopics {
		sub, err := r.events.Subscribe(topic, func(e bus.Event) error {
			ev, ok := e.Data().(npc.JobEvent)
			if !ok {
				return nil
			}
			logger.Debug("job "+ev.Kind.String(),
				log.Int("turn", ev.Turn),
				log.Int("pusher", ev.Pusher),
				log.Int("marker", ev.Marker),
				log.Vec("destination", ev.Destination.Xv, ev.Destination.Yv),
				log.Int("job_time", ev.JobTime))
			return nil
		})
		if err != nil {
			for _, s := range subs {
				_ = s.Cancel()
			}
			return nil, errors.Wrapf(err, "subscribe %s", topic)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (r *Runner) saveJournal(path string) error {
	b, err := r.journal.Save()
	if err != nil {
		return errors.Wrap(err, "encode journal")
	}
	return errors.Wrap(os.WriteFile(path, b, 0o644), "write journal")
}
