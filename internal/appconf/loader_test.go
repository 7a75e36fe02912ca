package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  env: production
  api_keys: [alpha, beta]
search:
  min_connection_minutes: 20
  transfer_penalty_minutes: 45
  avg_speed_kmph: 110
`)

	base := Config{Port: 4000, Env: Development, ApiKeys: []string{"test"}}
	cfg, err := LoadFromFile(path, base)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.ApiKeys)
	assert.Equal(t, 20, cfg.Search.MinConnectionMinutes)
	assert.Equal(t, 45, cfg.Search.TransferPenaltyMinutes)
	assert.Equal(t, 110.0, cfg.Search.AvgSpeedKmph)
}

func TestLoadFromFileKeepsBaseForMissingValues(t *testing.T) {
	path := writeConfigFile(t, `
search:
  horizon_hours: 24
`)

	base := Config{Port: 4000, Env: Test, ApiKeys: []string{"test"}}
	cfg, err := LoadFromFile(path, base)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, []string{"test"}, cfg.ApiKeys)
	assert.Equal(t, 24, cfg.Search.HorizonHours)
}

func TestLoadFromFileRejectsInvalidValues(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 99999
`)

	_, err := LoadFromFile(path, Config{})
	assert.Error(t, err)
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yml"), Config{})
	assert.Error(t, err)
}

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Production, EnvFlagToEnvironment("production"))
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Development, EnvFlagToEnvironment("development"))
	assert.Equal(t, Development, EnvFlagToEnvironment("bogus"))
}
