package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MAX_PARCELS", "")
	t.Setenv("HISTORY_LIMIT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 36, cfg.MaxParcels)
	require.Equal(t, 1000.0, cfg.MaxRate)
	require.Equal(t, 50, cfg.HistoryLimit)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MAX_PARCELS", "48")
	t.Setenv("MAX_RATE", "250.5")
	t.Setenv("HISTORY_LIMIT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 48, cfg.MaxParcels)
	require.Equal(t, 250.5, cfg.MaxRate)
	require.Equal(t, 50, cfg.HistoryLimit, "invalid values fall back to the default")
}
