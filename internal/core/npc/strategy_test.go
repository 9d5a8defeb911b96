package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"gather", "migrate"}, r.Names())

	s, err := r.New("gather", Options{Rand: &seqRand{}, Gather: DefaultGatherConfig()})
	require.NoError(t, err)
	assert.Equal(t, "gather", s.Name())

	s, err = r.New("migrate", Options{Rand: &seqRand{}, Field: testField(), Migrate: DefaultMigrateConfig()})
	require.NoError(t, err)
	assert.Equal(t, "migrate", s.Name())
}

func TestRegistryErrors(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.New("scatter", Options{})
	assert.ErrorContains(t, err, "unknown strategy")

	_, err = r.New("gather", Options{})
	assert.Error(t, err)

	_, err = r.New("migrate", Options{Rand: &seqRand{}})
	assert.Error(t, err)
}

func TestRegistryCustomStrategy(t *testing.T) {
	r := NewRegistry()
	r.Register("idle", func(Options) (Strategy, error) { return idleStrategy{}, nil })

	s, err := r.New("idle", Options{})
	require.NoError(t, err)
	assert.Equal(t, Decision{}, s.Decide(0, Task{}, nil, testTurn()))
}

type idleStrategy struct{}

func (idleStrategy) Name() string                             { return "idle" }
func (idleStrategy) Begin(*Turn)                              {}
func (idleStrategy) Decide(int, Task, []Task, *Turn) Decision { return Decision{} }
