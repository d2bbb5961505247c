package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SHARE_SCORE_SIGNING_KEY", "signing-secret")
	t.Setenv("SHARE_REPLAY_CODE_KEY", "0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, uint32(42), cfg.Sim.DefaultSeed)
	assert.Equal(t, 0.1, cfg.Sim.TickCap)
}

func TestLoadOverrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SIM_DEFAULT_SEED", "7")
	t.Setenv("SIM_TICK_CAP", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, uint32(7), cfg.Sim.DefaultSeed)
	assert.Equal(t, 0.25, cfg.Sim.TickCap)
}

func TestLoadRejectsMissingSigningKey(t *testing.T) {
	t.Setenv("SHARE_SCORE_SIGNING_KEY", "")
	t.Setenv("SHARE_REPLAY_CODE_KEY", "0123456789abcdef")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadReplayKeyLength(t *testing.T) {
	t.Setenv("SHARE_SCORE_SIGNING_KEY", "signing-secret")
	t.Setenv("SHARE_REPLAY_CODE_KEY", "too-short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTickCap(t *testing.T) {
	setValidEnv(t)

	for _, value := range []string{"0", "-1", "nope"} {
		t.Setenv("SIM_TICK_CAP", value)
		_, err := Load()
		assert.Error(t, err, value)
	}
}
