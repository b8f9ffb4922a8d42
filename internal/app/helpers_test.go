package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/meal-planner/config"
	"github.com/stretchr/testify/require"
)

// testConfig writes a small catalog and returns a config pointing at it.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	rp := filepath.Join(dir, "recipes.txt")
	pp := filepath.Join(dir, "prices.txt")
	require.NoError(t, os.WriteFile(rp, []byte("Toast\n- pane, 2, fette\n- burro, 10, g\n"), 0o600))
	require.NoError(t, os.WriteFile(pp, []byte("pane, 0.20\nburro, 0.01\n"), 0o600))

	return config.Config{
		Server: config.ServerConfig{
			Port:              "8080",
			RateLimit:         100,
			RateWindow:        time.Minute,
			MutationRateLimit: 10,
		},
		Catalog: config.CatalogConfig{
			RecipesFile:            rp,
			PricesFile:             pp,
			ReloadFailureThreshold: 2,
			ReloadCooldown:         time.Minute,
		},
		Cache: config.CacheConfig{Size: 8, TTL: time.Minute},
		Log:   config.LogConfig{Level: "disabled"},
	}
}
