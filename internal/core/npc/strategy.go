package npc

import (
	"fmt"
	"sort"
	"sync"
)

// Strategy decides what every pusher does in a turn.
//
// Begin is called once per turn before any Decide call. Decide is called for each own
// pusher in index order; committed holds every teammate's task as of the end of the
// previous turn (or as already updated this turn, when the team commits immediately).
type Strategy interface {
	Name() string
	Begin(turn *Turn)
	Decide(idx int, task Task, committed []Task, turn *Turn) Decision
}

// Options carry everything a strategy factory may need.
type Options struct {
	Field   *Field
	Rand    RandomSource
	Gather  GatherConfig
	Migrate MigrateConfig
}

// Factory builds a strategy from Options.
type Factory func(Options) (Strategy, error)

// Registry maps strategy names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	r.factories[name] = f
	r.mu.Unlock()
}

func (r *Registry) New(name string, opts Options) (Strategy, error) {
	r.mu.RLock()
	f := r.factories[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return f(opts)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RegisterBuiltins adds the gather and migrate strategies.
func RegisterBuiltins(r *Registry) {
	r.Register("gather", func(o Options) (Strategy, error) {
		if o.Rand == nil {
			return nil, fmt.Errorf("gather: random source is required")
		}
		return NewGather(o.Gather, o.Rand), nil
	})
	r.Register("migrate", func(o Options) (Strategy, error) {
		if o.Rand == nil {
			return nil, fmt.Errorf("migrate: random source is required")
		}
		if o.Field == nil {
			return nil, fmt.Errorf("migrate: field is required")
		}
		return NewMigrate(o.Migrate, o.Field, o.Rand), nil
	})
}

// DefaultRegistry returns a registry holding the builtin strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}
