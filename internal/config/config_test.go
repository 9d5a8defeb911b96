package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 35, c.Gather.JobTimeout)
	assert.Equal(t, 0.7, c.Gather.BehindThreshold)
	assert.Equal(t, Point{X: 10, Y: 10}, c.Game.Home)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	doc := `
strategy: migrate
seed: match-7
gather:
  job_timeout: 50
  cap_maneuver_force: true
telemetry:
  addr: 127.0.0.1:9090
`
	c, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "migrate", c.Strategy)
	assert.Equal(t, "match-7", c.Seed)
	assert.Equal(t, 50, c.Gather.JobTimeout)
	assert.True(t, c.Gather.CapManeuverForce)
	assert.Equal(t, 0.7, c.Gather.BehindThreshold, "untouched keys keep defaults")
	assert.Equal(t, 3, c.Game.PushersPerSide)
	assert.Equal(t, "127.0.0.1:9090", c.Telemetry.Addr)
}

func TestLoadYAMLEmpty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadYAMLUnknownKey(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("gather:\n  jobtimeout: 3\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "no strategy", mutate: func(c *Config) { c.Strategy = "" }},
		{name: "no pushers", mutate: func(c *Config) { c.Game.PushersPerSide = 0 }},
		{name: "zero accel", mutate: func(c *Config) { c.Game.AccelLimit = 0 }},
		{name: "tiny field", mutate: func(c *Config) { c.Game.FieldSize = 4 }},
		{name: "bad color", mutate: func(c *Config) { c.Game.OwnColor = 3 }},
		{name: "grey is not a side", mutate: func(c *Config) { c.Game.OwnColor = 2 }},
		{name: "inverted band", mutate: func(c *Config) { c.Gather.MinStandoff = 9 }},
		{name: "zero timeout", mutate: func(c *Config) { c.Gather.JobTimeout = 0 }},
		{name: "zero orbit", mutate: func(c *Config) { c.Migrate.OrbitRadius = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	c := Default()
	c.Seed = "abc"
	out, err := c.YAML()
	require.NoError(t, err)

	back, err := LoadYAML(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
