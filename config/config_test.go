package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TMDB_API_KEY", "key")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("DATABASE_URL", "reelrank.db")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5010", cfg.ServerPort)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 1, cfg.TMDBRetries)
	require.False(t, cfg.Debug)
}

func TestLoadFailsWithoutRequiredVars(t *testing.T) {
	for _, key := range []string{"TMDB_API_KEY", "SESSION_SECRET", "DATABASE_URL"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := Load()
			require.ErrorContains(t, err, key)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TMDB_RETRIES", "3")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, 3, cfg.TMDBRetries)
	require.True(t, cfg.Debug)
}
