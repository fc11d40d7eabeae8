package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Len(t, cfg.SystemRates, len(DefaultSystemOrder))
	assert.Equal(t, EnvironmentSpace, cfg.DefaultEnvironment)
	assert.Greater(t, cfg.FrameBudget.Milliseconds(), int64(0))
}

func TestDefaultEngineConfig_MatchesDeclaredOrder(t *testing.T) {
	cfg := DefaultEngineConfig()
	for i, name := range DefaultSystemOrder {
		assert.Equal(t, name, cfg.SystemRates[i].Name)
	}
}
